package warehouse

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ganeshsutar/coldstrg-sub001/internal/application/dto"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/occupancy"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/repository"
	"github.com/ganeshsutar/coldstrg-sub001/pkg/metrics"
)

// RegisterMovementUseCase registra cargas, descargas y anulaciones en el libro
// de forma transaccional. El guardián de capacidad corre dos veces: un
// pre-chequeo sin efectos contra la proyección, y el chequeo definitivo dentro
// de la transacción con la coordenada serializada (lock de rack), que cierra
// la carrera chequear-y-anexar entre operadores concurrentes.
type RegisterMovementUseCase struct {
	txRunner     TxRunner
	chamberRepo  repository.ChamberRepository
	floorRepo    repository.FloorRepository
	amadRepo     repository.AmadRepository
	movementRepo repository.MovementRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	chamberRepo repository.ChamberRepository,
	floorRepo repository.FloorRepository,
	amadRepo repository.AmadRepository,
	movementRepo repository.MovementRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:     txRunner,
		chamberRepo:  chamberRepo,
		floorRepo:    floorRepo,
		amadRepo:     amadRepo,
		movementRepo: movementRepo,
	}
}

// RegisterLoading anexa una carga (crédito) en la coordenada indicada.
func (uc *RegisterMovementUseCase) RegisterLoading(ctx context.Context, organizationID, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	return uc.register(ctx, organizationID, userID, entity.MovementTypeLOADING, in)
}

// RegisterUnloading anexa una descarga (débito) en la coordenada indicada.
func (uc *RegisterMovementUseCase) RegisterUnloading(ctx context.Context, organizationID, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	return uc.register(ctx, organizationID, userID, entity.MovementTypeUNLOADING, in)
}

func (uc *RegisterMovementUseCase) register(ctx context.Context, organizationID, userID, kind string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.AmadID == "" || in.ChamberID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	chamber, amad, err := uc.validateTargets(organizationID, in.ChamberID, in.AmadID)
	if err != nil {
		return nil, err
	}
	if err := uc.validateCoordinate(chamber, in.FloorNumber, in.RackNumber); err != nil {
		return nil, err
	}

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	event := &entity.MovementEvent{
		ID:             uuid.New().String(),
		OrganizationID: organizationID,
		AmadID:         amad.ID,
		ChamberID:      chamber.ID,
		FloorNumber:    in.FloorNumber,
		RackNumber:     in.RackNumber,
		Type:           kind,
		Quantity:       in.Quantity,
		Date:           date,
		CreatedAt:      time.Now(),
		CreatedBy:      userID,
	}

	err = uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, _ repository.ShiftBatchRepository) error {
		// Serializar los escritores: primero el amad, después la coordenada.
		// El orden es el mismo en todos los caminos de escritura; invertirlo
		// en alguno podría abrazar locks.
		if kind == entity.MovementTypeLOADING {
			if err := movRepo.LockAmad(amad.ID); err != nil {
				return err
			}
		}
		if err := movRepo.LockRack(chamber.ID, in.FloorNumber, in.RackNumber); err != nil {
			return err
		}
		rackEvents, err := movRepo.ListByRack(chamber.ID, in.FloorNumber, in.RackNumber)
		if err != nil {
			return err
		}
		switch kind {
		case entity.MovementTypeLOADING:
			current := occupancy.FoldBalance(rackEvents)
			if err := occupancy.CheckCapacity(chamber.RackCapacity, current, in.Quantity); err != nil {
				return err
			}
			// Lo colocado del amad entre todos los racks no puede superar lo
			// disponible por sub-unidad. El pliegue corre detrás del lock del
			// amad: dos cargas concurrentes a racks distintos no comparten el
			// lock de rack, pero sí este.
			amadEvents, err := movRepo.ListByAmad(amad.ID)
			if err != nil {
				return err
			}
			placed := occupancy.FoldAmadBalance(amadEvents, amad.ID)
			if placed.Add(in.Quantity).GreaterThan(amad.AvailableQty) {
				return domain.ErrInsufficientSource
			}
		case entity.MovementTypeUNLOADING:
			available := occupancy.FoldAmadBalance(rackEvents, amad.ID)
			if err := occupancy.CheckSource(available, in.Quantity); err != nil {
				return err
			}
		}
		return movRepo.Create(event)
	})
	if err != nil {
		if errors.Is(err, domain.ErrCapacityExceeded) {
			metrics.CapacityRejections.Inc()
		}
		return nil, err
	}

	metrics.MovementsAppended.WithLabelValues(kind).Inc()
	return toMovementResponse(event), nil
}

// VoidMovement anula un evento anexando un registro VOID que lo referencia.
// Nunca se edita el original. Anular un crédito retira mercadería y no puede
// dejar el saldo del rack en negativo; anular un débito re-acredita el rack y
// pasa por el guardián de capacidad igual que una carga.
func (uc *RegisterMovementUseCase) VoidMovement(ctx context.Context, organizationID, userID, movementID string) (*dto.MovementResponse, error) {
	original, err := uc.movementRepo.GetByID(movementID)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, domain.ErrNotFound
	}
	if original.OrganizationID != organizationID {
		return nil, domain.ErrForbidden
	}
	if original.Type == entity.MovementTypeVOID || original.ShiftBatchID != "" {
		// Los lados de un traslado no se anulan sueltos: se haría con un
		// contra-traslado, no rompiendo el par.
		return nil, domain.ErrConflict
	}
	chamber, err := uc.chamberRepo.GetByID(original.ChamberID)
	if err != nil {
		return nil, err
	}
	if chamber == nil {
		return nil, domain.ErrNotFound
	}

	void := &entity.MovementEvent{
		ID:             uuid.New().String(),
		OrganizationID: organizationID,
		ChamberID:      original.ChamberID,
		FloorNumber:    original.FloorNumber,
		RackNumber:     original.RackNumber,
		Type:           entity.MovementTypeVOID,
		Quantity:       decimal.Zero,
		VoidOf:         original.ID,
		Date:           time.Now(),
		CreatedAt:      time.Now(),
		CreatedBy:      userID,
	}

	err = uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, _ repository.ShiftBatchRepository) error {
		if err := movRepo.LockRack(original.ChamberID, original.FloorNumber, original.RackNumber); err != nil {
			return err
		}
		rackEvents, err := movRepo.ListByRack(original.ChamberID, original.FloorNumber, original.RackNumber)
		if err != nil {
			return err
		}
		for _, ev := range rackEvents {
			if ev.Type == entity.MovementTypeVOID && ev.VoidOf == original.ID {
				return domain.ErrConflict // ya anulado
			}
		}
		current := occupancy.FoldBalance(rackEvents)
		if original.IsCredit() {
			if current.Sub(original.Quantity).LessThan(decimal.Zero) {
				return domain.ErrConflict
			}
		} else {
			if err := occupancy.CheckCapacity(chamber.RackCapacity, current, original.Quantity); err != nil {
				return err
			}
		}
		return movRepo.Create(void)
	})
	if err != nil {
		if errors.Is(err, domain.ErrCapacityExceeded) {
			metrics.CapacityRejections.Inc()
		}
		return nil, err
	}

	metrics.MovementsAppended.WithLabelValues(entity.MovementTypeVOID).Inc()
	return toMovementResponse(void), nil
}

// ListByChamber lista los eventos del libro de una cámara.
func (uc *RegisterMovementUseCase) ListByChamber(organizationID, chamberID string) (*dto.MovementListResponse, error) {
	chamber, err := uc.chamberRepo.GetByID(chamberID)
	if err != nil {
		return nil, err
	}
	if chamber == nil {
		return nil, domain.ErrNotFound
	}
	if chamber.OrganizationID != organizationID {
		return nil, domain.ErrForbidden
	}
	events, err := uc.movementRepo.ListByChamber(chamberID)
	if err != nil {
		return nil, err
	}
	return toMovementList(events), nil
}

// ListByAmad lista los eventos del libro de un amad.
func (uc *RegisterMovementUseCase) ListByAmad(organizationID, amadID string) (*dto.MovementListResponse, error) {
	amad, err := uc.amadRepo.GetByID(amadID)
	if err != nil {
		return nil, err
	}
	if amad == nil {
		return nil, domain.ErrNotFound
	}
	if amad.OrganizationID != organizationID {
		return nil, domain.ErrForbidden
	}
	events, err := uc.movementRepo.ListByAmad(amadID)
	if err != nil {
		return nil, err
	}
	return toMovementList(events), nil
}

func (uc *RegisterMovementUseCase) validateTargets(organizationID, chamberID, amadID string) (*entity.Chamber, *entity.Amad, error) {
	chamber, err := uc.chamberRepo.GetByID(chamberID)
	if err != nil {
		return nil, nil, err
	}
	if chamber == nil {
		return nil, nil, domain.ErrNotFound
	}
	if chamber.OrganizationID != organizationID {
		return nil, nil, domain.ErrForbidden
	}
	if !chamber.Active {
		return nil, nil, domain.ErrChamberInactive
	}
	amad, err := uc.amadRepo.GetByID(amadID)
	if err != nil {
		return nil, nil, err
	}
	if amad == nil {
		return nil, nil, domain.ErrNotFound
	}
	if amad.OrganizationID != organizationID {
		return nil, nil, domain.ErrForbidden
	}
	return chamber, amad, nil
}

// validateCoordinate verifica que la coordenada caiga en un piso configurado
// y que la configuración esté sana. Errores de configuración se devuelven
// antes de cualquier escritura.
func (uc *RegisterMovementUseCase) validateCoordinate(chamber *entity.Chamber, floorNumber, rackNumber int) error {
	floors, err := uc.floorRepo.ListByChamber(chamber.ID)
	if err != nil {
		return err
	}
	if err := occupancy.ValidateFloors(chamber.ID, floors); err != nil {
		return err
	}
	if occupancy.FloorCovering(floors, floorNumber, rackNumber) == nil {
		return domain.ErrUnconfiguredRack
	}
	return nil
}

func toMovementResponse(ev *entity.MovementEvent) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:           ev.ID,
		AmadID:       ev.AmadID,
		ChamberID:    ev.ChamberID,
		FloorNumber:  ev.FloorNumber,
		RackNumber:   ev.RackNumber,
		Type:         ev.Type,
		Quantity:     ev.Quantity,
		ShiftBatchID: ev.ShiftBatchID,
		VoidOf:       ev.VoidOf,
		Date:         ev.Date,
		CreatedAt:    ev.CreatedAt,
		CreatedBy:    ev.CreatedBy,
	}
}

func toMovementList(events []*entity.MovementEvent) *dto.MovementListResponse {
	items := make([]dto.MovementResponse, 0, len(events))
	for _, ev := range events {
		items = append(items, *toMovementResponse(ev))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}
}
