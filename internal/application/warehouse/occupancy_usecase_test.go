package warehouse_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganeshsutar/coldstrg-sub001/internal/application/dto"
	"github.com/ganeshsutar/coldstrg-sub001/internal/application/warehouse"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"
	"github.com/ganeshsutar/coldstrg-sub001/pkg/logger"
)

func newOccupancyUC(store *memStore) *warehouse.OccupancyUseCase {
	return warehouse.NewOccupancyUseCase(
		&memChamberRepo{store: store},
		&memFloorRepo{store: store},
		&memMovementRepo{store: store},
		&memOverrideRepo{store: store},
		logger.Nop(),
	)
}

func TestGetRackOccupancy_ProyeccionCompleta(t *testing.T) {
	store := newMemStore()
	store.addChamber("cham-1", 100, true)
	store.addFloor("cham-1", 1, 1, 5)
	store.addAmad("amad-1", 500)
	store.addEvent(entity.MovementTypeLOADING, "cham-1", 1, 2, 60, "amad-1")
	store.addEvent(entity.MovementTypeLOADING, "cham-1", 1, 3, 100, "amad-1")

	items, err := newOccupancyUC(store).GetRackOccupancy(testOrgID, "cham-1")
	require.NoError(t, err)
	require.Len(t, items, 5, "todos los racks del piso, cargados o no")

	byRack := make(map[int]dto.RackOccupancyDTO, len(items))
	for _, it := range items {
		byRack[it.RackNumber] = it
	}
	assert.Equal(t, "EMPTY", byRack[1].Status)
	assert.Equal(t, "PARTIAL", byRack[2].Status)
	assert.True(t, byRack[2].NetQuantity.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, "FULL", byRack[3].Status)
	assert.Equal(t, "amad-1", byRack[2].LastAmadID)
}

// Pisos solapados: la consulta devuelve el error de configuración con el
// detalle de racks en disputa, nunca una proyección con racks duplicados.
func TestGetRackOccupancy_PisosSolapados(t *testing.T) {
	store := newMemStore()
	store.addChamber("cham-1", 100, true)
	store.addFloor("cham-1", 1, 1, 10)
	store.addFloor("cham-1", 2, 5, 15)

	_, err := newOccupancyUC(store).GetRackOccupancy(testOrgID, "cham-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFloorConfiguration)

	var overlapErr *domain.FloorOverlapError
	require.True(t, errors.As(err, &overlapErr))
	require.Len(t, overlapErr.Overlaps, 1)
	assert.Equal(t, 5, overlapErr.Overlaps[0].FromRack)
	assert.Equal(t, 10, overlapErr.Overlaps[0].ToRack)
}

func TestGetRackOccupancy_OtraOrganizacion(t *testing.T) {
	store := newMemStore()
	chamber := store.addChamber("cham-1", 100, true)
	chamber.OrganizationID = "org-ajena"

	_, err := newOccupancyUC(store).GetRackOccupancy(testOrgID, "cham-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetRackOccupancy_ConMarcasManuales(t *testing.T) {
	store := newMemStore()
	store.addChamber("cham-1", 100, true)
	store.addFloor("cham-1", 1, 1, 5)
	uc := newOccupancyUC(store)

	err := uc.SetOverride(testOrgID, "cham-1", testUserID, dto.SetOverrideRequest{
		FloorNumber: 1,
		RackNumber:  4,
		State:       entity.RackOverrideMAINTENANCE,
		Reason:      "evaporador en reparación",
	})
	require.NoError(t, err)

	items, err := uc.GetRackOccupancy(testOrgID, "cham-1")
	require.NoError(t, err)
	for _, it := range items {
		if it.RackNumber == 4 {
			assert.Equal(t, entity.RackOverrideMAINTENANCE, it.Override)
			assert.Equal(t, entity.RackOverrideMAINTENANCE, it.State)
		} else {
			assert.Empty(t, it.Override)
		}
	}

	require.NoError(t, uc.ClearOverride(testOrgID, "cham-1", 1, 4))
	items, err = uc.GetRackOccupancy(testOrgID, "cham-1")
	require.NoError(t, err)
	for _, it := range items {
		assert.Empty(t, it.Override)
	}
}

func TestSetOverride_EstadoInvalido(t *testing.T) {
	store := newMemStore()
	store.addChamber("cham-1", 100, true)
	store.addFloor("cham-1", 1, 1, 5)

	err := newOccupancyUC(store).SetOverride(testOrgID, "cham-1", testUserID, dto.SetOverrideRequest{
		FloorNumber: 1,
		RackNumber:  2,
		State:       "CERRADO",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetOverride_RackSinConfigurar(t *testing.T) {
	store := newMemStore()
	store.addChamber("cham-1", 100, true)
	store.addFloor("cham-1", 1, 1, 5)

	err := newOccupancyUC(store).SetOverride(testOrgID, "cham-1", testUserID, dto.SetOverrideRequest{
		FloorNumber: 2,
		RackNumber:  1,
		State:       entity.RackOverrideRESERVED,
	})
	assert.ErrorIs(t, err, domain.ErrUnconfiguredRack)
}

func TestGetChamberStats_Resumen(t *testing.T) {
	store := newMemStore()
	store.addChamber("cham-1", 100, true)
	store.addFloor("cham-1", 1, 1, 4)
	store.addAmad("amad-1", 500)
	store.addEvent(entity.MovementTypeLOADING, "cham-1", 1, 1, 100, "amad-1")
	store.addEvent(entity.MovementTypeLOADING, "cham-1", 1, 2, 30, "amad-1")

	stats, err := newOccupancyUC(store).GetChamberStats(testOrgID, "cham-1")
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalRacks)
	assert.Equal(t, 2, stats.EmptyRacks)
	assert.Equal(t, 1, stats.PartialRacks)
	assert.Equal(t, 1, stats.FullRacks)
	assert.Equal(t, 2, stats.OccupiedRacks)
	assert.True(t, stats.OccupancyPct.Equal(decimal.NewFromInt(50)))
	assert.True(t, stats.TotalQuantity.Equal(decimal.NewFromInt(130)))
}

// El pre-chequeo responde razonado pero sin error HTTP: la UI decide.
func TestCheckCapacity_Orientativo(t *testing.T) {
	store := newMemStore()
	store.addChamber("cham-1", 100, true)
	store.addFloor("cham-1", 1, 1, 5)
	store.addAmad("amad-1", 500)
	store.addEvent(entity.MovementTypeLOADING, "cham-1", 1, 1, 90, "amad-1")
	uc := newOccupancyUC(store)

	res, err := uc.CheckCapacity(testOrgID, "cham-1", 1, 1, decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.True(t, res.Allowed, "90+10 justo en la capacidad")

	res, err = uc.CheckCapacity(testOrgID, "cham-1", 1, 1, decimal.NewFromInt(20))
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.NotEmpty(t, res.Reason)

	_, err = uc.CheckCapacity(testOrgID, "cham-1", 3, 1, decimal.NewFromInt(5))
	assert.ErrorIs(t, err, domain.ErrUnconfiguredRack)
}
