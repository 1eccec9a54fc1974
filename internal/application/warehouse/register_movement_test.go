package warehouse_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganeshsutar/coldstrg-sub001/internal/application/dto"
	"github.com/ganeshsutar/coldstrg-sub001/internal/application/warehouse"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/occupancy"
)

const (
	testOrgID  = "org-1"
	testUserID = "user-1"
)

func newMovementUC(store *memStore) *warehouse.RegisterMovementUseCase {
	return warehouse.NewRegisterMovementUseCase(
		&memTxRunner{store: store},
		&memChamberRepo{store: store},
		&memFloorRepo{store: store},
		&memAmadRepo{store: store},
		&memMovementRepo{store: store},
	)
}

func loadingRequest(chamberID string, floor, rack int, qty int64, amadID string) dto.RegisterMovementRequest {
	return dto.RegisterMovementRequest{
		AmadID:      amadID,
		ChamberID:   chamberID,
		FloorNumber: floor,
		RackNumber:  rack,
		Quantity:    decimal.NewFromInt(qty),
	}
}

func rackBalance(store *memStore, chamberID string, floor, rack int) decimal.Decimal {
	events, _ := (&memMovementRepo{store: store}).ListByRack(chamberID, floor, rack)
	return occupancy.FoldBalance(events)
}

func TestRegisterLoading_Exitosa(t *testing.T) {
	store := newMemStore()
	store.addChamber("cham-1", 100, true)
	store.addFloor("cham-1", 1, 1, 10)
	store.addAmad("amad-1", 500)

	resp, err := newMovementUC(store).RegisterLoading(context.Background(), testOrgID, testUserID,
		loadingRequest("cham-1", 1, 3, 60, "amad-1"))

	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeLOADING, resp.Type)
	assert.True(t, rackBalance(store, "cham-1", 1, 3).Equal(decimal.NewFromInt(60)))
}

// Rack en 90 con capacidad 100: cargar 20 se rechaza y el libro no cambia.
func TestRegisterLoading_RechazoPorCapacidad(t *testing.T) {
	store := newMemStore()
	store.addChamber("cham-1", 100, true)
	store.addFloor("cham-1", 1, 1, 10)
	store.addAmad("amad-1", 500)
	store.addEvent(entity.MovementTypeLOADING, "cham-1", 1, 3, 90, "amad-1")
	before := len(store.events)

	_, err := newMovementUC(store).RegisterLoading(context.Background(), testOrgID, testUserID,
		loadingRequest("cham-1", 1, 3, 20, "amad-1"))

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.Len(t, store.events, before, "el libro no debe cambiar en un rechazo")
	assert.True(t, rackBalance(store, "cham-1", 1, 3).Equal(decimal.NewFromInt(90)))
}

// No se puede colocar en racks más de lo que el amad tiene disponible.
func TestRegisterLoading_AmadSinDisponible(t *testing.T) {
	store := newMemStore()
	store.addChamber("cham-1", 100, true)
	store.addFloor("cham-1", 1, 1, 10)
	store.addAmad("amad-1", 50)
	store.addEvent(entity.MovementTypeLOADING, "cham-1", 1, 1, 40, "amad-1")

	_, err := newMovementUC(store).RegisterLoading(context.Background(), testOrgID, testUserID,
		loadingRequest("cham-1", 1, 2, 20, "amad-1"))

	assert.ErrorIs(t, err, domain.ErrInsufficientSource)
}

func TestRegisterUnloading_SaldoInsuficiente(t *testing.T) {
	store := newMemStore()
	store.addChamber("cham-1", 100, true)
	store.addFloor("cham-1", 1, 1, 10)
	store.addAmad("amad-1", 500)
	store.addEvent(entity.MovementTypeLOADING, "cham-1", 1, 3, 20, "amad-1")

	_, err := newMovementUC(store).RegisterUnloading(context.Background(), testOrgID, testUserID,
		loadingRequest("cham-1", 1, 3, 30, "amad-1"))

	assert.ErrorIs(t, err, domain.ErrInsufficientSource)
	assert.True(t, rackBalance(store, "cham-1", 1, 3).Equal(decimal.NewFromInt(20)))
}

func TestRegisterLoading_RackSinConfigurar(t *testing.T) {
	store := newMemStore()
	store.addChamber("cham-1", 100, true)
	store.addFloor("cham-1", 1, 1, 4)
	store.addAmad("amad-1", 500)

	_, err := newMovementUC(store).RegisterLoading(context.Background(), testOrgID, testUserID,
		loadingRequest("cham-1", 1, 9, 10, "amad-1"))

	assert.ErrorIs(t, err, domain.ErrUnconfiguredRack)
}

func TestRegisterLoading_CamaraInactiva(t *testing.T) {
	store := newMemStore()
	store.addChamber("cham-1", 100, false)
	store.addFloor("cham-1", 1, 1, 10)
	store.addAmad("amad-1", 500)

	_, err := newMovementUC(store).RegisterLoading(context.Background(), testOrgID, testUserID,
		loadingRequest("cham-1", 1, 1, 10, "amad-1"))

	assert.ErrorIs(t, err, domain.ErrChamberInactive)
}

// Pisos solapados: el error de configuración se devuelve antes de escribir.
func TestRegisterLoading_ConfiguracionInvalida(t *testing.T) {
	store := newMemStore()
	store.addChamber("cham-1", 100, true)
	store.addFloor("cham-1", 1, 1, 10)
	store.addFloor("cham-1", 2, 5, 15)
	store.addAmad("amad-1", 500)

	_, err := newMovementUC(store).RegisterLoading(context.Background(), testOrgID, testUserID,
		loadingRequest("cham-1", 1, 3, 10, "amad-1"))

	assert.ErrorIs(t, err, domain.ErrFloorConfiguration)
	assert.Empty(t, store.events)
}

func TestRegisterLoading_OtraOrganizacion(t *testing.T) {
	store := newMemStore()
	store.addChamber("cham-1", 100, true)
	store.addFloor("cham-1", 1, 1, 10)
	store.addAmad("amad-1", 500)

	_, err := newMovementUC(store).RegisterLoading(context.Background(), "org-ajena", testUserID,
		loadingRequest("cham-1", 1, 1, 10, "amad-1"))

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Anulaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestVoidMovement_AnulaCarga(t *testing.T) {
	store := newMemStore()
	store.addChamber("cham-1", 100, true)
	store.addFloor("cham-1", 1, 1, 10)
	store.addAmad("amad-1", 500)
	uc := newMovementUC(store)

	resp, err := uc.RegisterLoading(context.Background(), testOrgID, testUserID,
		loadingRequest("cham-1", 1, 3, 60, "amad-1"))
	require.NoError(t, err)

	void, err := uc.VoidMovement(context.Background(), testOrgID, testUserID, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeVOID, void.Type)
	assert.Equal(t, resp.ID, void.VoidOf)
	assert.True(t, rackBalance(store, "cham-1", 1, 3).IsZero())
}

// Anular la carga cuando parte ya se descargó dejaría el saldo negativo.
func TestVoidMovement_RechazaSaldoNegativo(t *testing.T) {
	store := newMemStore()
	store.addChamber("cham-1", 100, true)
	store.addFloor("cham-1", 1, 1, 10)
	store.addAmad("amad-1", 500)
	uc := newMovementUC(store)

	loading, err := uc.RegisterLoading(context.Background(), testOrgID, testUserID,
		loadingRequest("cham-1", 1, 3, 60, "amad-1"))
	require.NoError(t, err)
	_, err = uc.RegisterUnloading(context.Background(), testOrgID, testUserID,
		loadingRequest("cham-1", 1, 3, 20, "amad-1"))
	require.NoError(t, err)

	_, err = uc.VoidMovement(context.Background(), testOrgID, testUserID, loading.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.True(t, rackBalance(store, "cham-1", 1, 3).Equal(decimal.NewFromInt(40)))
}

// Anular la descarga re-acredita el rack. Si entre medio volvió a cargarse a
// capacidad, el re-crédito la excedería: el guardián corre igual que en una
// carga y la anulación se rechaza sin tocar el libro.
func TestVoidMovement_RechazaPorCapacidad(t *testing.T) {
	store := newMemStore()
	store.addChamber("cham-1", 100, true)
	store.addFloor("cham-1", 1, 1, 10)
	store.addAmad("amad-1", 500)
	uc := newMovementUC(store)

	_, err := uc.RegisterLoading(context.Background(), testOrgID, testUserID,
		loadingRequest("cham-1", 1, 3, 100, "amad-1"))
	require.NoError(t, err)
	unloading, err := uc.RegisterUnloading(context.Background(), testOrgID, testUserID,
		loadingRequest("cham-1", 1, 3, 50, "amad-1"))
	require.NoError(t, err)
	_, err = uc.RegisterLoading(context.Background(), testOrgID, testUserID,
		loadingRequest("cham-1", 1, 3, 50, "amad-1"))
	require.NoError(t, err)

	_, err = uc.VoidMovement(context.Background(), testOrgID, testUserID, unloading.ID)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.True(t, rackBalance(store, "cham-1", 1, 3).Equal(decimal.NewFromInt(100)))
}

// Con capacidad de sobra, anular una descarga re-acredita el rack sin más.
func TestVoidMovement_AnulaDescarga(t *testing.T) {
	store := newMemStore()
	store.addChamber("cham-1", 100, true)
	store.addFloor("cham-1", 1, 1, 10)
	store.addAmad("amad-1", 500)
	uc := newMovementUC(store)

	_, err := uc.RegisterLoading(context.Background(), testOrgID, testUserID,
		loadingRequest("cham-1", 1, 3, 80, "amad-1"))
	require.NoError(t, err)
	unloading, err := uc.RegisterUnloading(context.Background(), testOrgID, testUserID,
		loadingRequest("cham-1", 1, 3, 30, "amad-1"))
	require.NoError(t, err)

	void, err := uc.VoidMovement(context.Background(), testOrgID, testUserID, unloading.ID)
	require.NoError(t, err)
	assert.Equal(t, unloading.ID, void.VoidOf)
	assert.True(t, rackBalance(store, "cham-1", 1, 3).Equal(decimal.NewFromInt(80)))
}

// Dos cargas del mismo amad a racks distintos no comparten el lock de rack:
// el tope de disponible se rechequea detrás del lock del amad, contra el
// libro que el competidor ya comprometió.
func TestRegisterLoading_AmadCompetidorEnOtroRack(t *testing.T) {
	store := newMemStore()
	store.addChamber("cham-1", 200, true)
	store.addFloor("cham-1", 1, 1, 10)
	store.addAmad("amad-1", 100)

	// El competidor compromete 80 del amad justo antes de que este escritor
	// obtenga el lock: cualquier foto previa del libro ya está vieja.
	store.onLockAmad = func() {
		store.onLockAmad = nil
		store.addEvent(entity.MovementTypeLOADING, "cham-1", 1, 1, 80, "amad-1")
	}

	_, err := newMovementUC(store).RegisterLoading(context.Background(), testOrgID, testUserID,
		loadingRequest("cham-1", 1, 2, 30, "amad-1"))

	assert.ErrorIs(t, err, domain.ErrInsufficientSource)
}

func TestVoidMovement_NoAnulaDosVeces(t *testing.T) {
	store := newMemStore()
	store.addChamber("cham-1", 100, true)
	store.addFloor("cham-1", 1, 1, 10)
	store.addAmad("amad-1", 500)
	uc := newMovementUC(store)

	resp, err := uc.RegisterLoading(context.Background(), testOrgID, testUserID,
		loadingRequest("cham-1", 1, 3, 60, "amad-1"))
	require.NoError(t, err)

	_, err = uc.VoidMovement(context.Background(), testOrgID, testUserID, resp.ID)
	require.NoError(t, err)
	_, err = uc.VoidMovement(context.Background(), testOrgID, testUserID, resp.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
