package warehouse

import (
	"context"
	"fmt"
	"sort"
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

// ShiftCoordinator compromete el paso final del asistente de traslado: un
// header ShiftBatch más un par SHIFT_OUT/SHIFT_IN por línea, todo en una sola
// transacción. Las precondiciones (saldo de origen por amad, capacidad de
// destino) se revalidan en el commit contra el libro, con ambos racks
// serializados, nunca solo contra lo que vio el asistente al abrirse: eso
// cierra la ventana chequear-en-UI / escribir-después.
type ShiftCoordinator struct {
	txRunner    TxRunner
	chamberRepo repository.ChamberRepository
	floorRepo   repository.FloorRepository
	amadRepo    repository.AmadRepository
	batchRepo   repository.ShiftBatchRepository
}

// NewShiftCoordinator construye el coordinador.
func NewShiftCoordinator(
	txRunner TxRunner,
	chamberRepo repository.ChamberRepository,
	floorRepo repository.FloorRepository,
	amadRepo repository.AmadRepository,
	batchRepo repository.ShiftBatchRepository,
) *ShiftCoordinator {
	return &ShiftCoordinator{
		txRunner:    txRunner,
		chamberRepo: chamberRepo,
		floorRepo:   floorRepo,
		amadRepo:    amadRepo,
		batchRepo:   batchRepo,
	}
}

type rackCoord struct {
	chamberID   string
	floorNumber int
	rackNumber  int
}

func (c rackCoord) key() string {
	return fmt.Sprintf("%s|%d|%d", c.chamberID, c.floorNumber, c.rackNumber)
}

// CommitShift valida y compromete el traslado. Postcondición: reproyectando
// después del commit, el rack de origen queda debitado y el de destino
// acreditado por exactamente el total del lote, y el total del header es igual
// a la suma de sus líneas. Si cualquier escritura falla, la transacción
// revierte todo: jamás queda un header sin su par, ni un débito sin crédito.
func (uc *ShiftCoordinator) CommitShift(ctx context.Context, organizationID, userID string, in dto.CommitShiftRequest) (*dto.ShiftBatchResponse, error) {
	if in.AmadID == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	source := rackCoord{in.SourceChamberID, in.SourceFloor, in.SourceRack}
	dest := rackCoord{in.DestinationChamberID, in.DestinationFloor, in.DestinationRack}
	if source == dest {
		return nil, domain.ErrInvalidInput
	}

	total := decimal.Zero
	for _, line := range in.Lines {
		if !line.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		total = total.Add(line.Quantity)
	}

	sourceChamber, err := uc.validChamber(organizationID, source)
	if err != nil {
		return nil, err
	}
	destChamber := sourceChamber
	if dest.chamberID != source.chamberID {
		if destChamber, err = uc.validChamber(organizationID, dest); err != nil {
			return nil, err
		}
	} else if err := uc.validCoordinate(destChamber, dest); err != nil {
		return nil, err
	}

	amad, err := uc.amadRepo.GetByID(in.AmadID)
	if err != nil {
		return nil, err
	}
	if amad == nil {
		return nil, domain.ErrNotFound
	}
	if amad.OrganizationID != organizationID {
		return nil, domain.ErrForbidden
	}

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	batch := &entity.ShiftBatch{
		ID:                   uuid.New().String(),
		OrganizationID:       organizationID,
		SourceChamberID:      source.chamberID,
		DestinationChamberID: dest.chamberID,
		Date:                 date,
		Reason:               in.Reason,
		TotalQuantity:        total,
		Status:               entity.ShiftStatusCOMPLETED,
		CreatedAt:            time.Now(),
		CreatedBy:            userID,
	}

	err = uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, batchRepo repository.ShiftBatchRepository) error {
		// Serializar ambos racks en orden determinista para no interbloquear
		// con otro traslado que los tome al revés.
		if err := lockOrdered(movRepo, source, dest); err != nil {
			return err
		}

		sourceEvents, err := movRepo.ListByRack(source.chamberID, source.floorNumber, source.rackNumber)
		if err != nil {
			return err
		}
		available := occupancy.FoldAmadBalance(sourceEvents, amad.ID)
		if err := occupancy.CheckSource(available, total); err != nil {
			return err
		}

		destEvents, err := movRepo.ListByRack(dest.chamberID, dest.floorNumber, dest.rackNumber)
		if err != nil {
			return err
		}
		current := occupancy.FoldBalance(destEvents)
		if err := occupancy.CheckCapacity(destChamber.RackCapacity, current, total); err != nil {
			return err
		}

		if err := batchRepo.Create(batch); err != nil {
			return err
		}
		for _, line := range in.Lines {
			debit := shiftEvent(batch, amad.ID, source, entity.MovementTypeSHIFTOUT, line.Quantity, userID)
			if err := movRepo.Create(debit); err != nil {
				return err
			}
			credit := shiftEvent(batch, amad.ID, dest, entity.MovementTypeSHIFTIN, line.Quantity, userID)
			if err := movRepo.Create(credit); err != nil {
				// El débito ya se escribió en esta tx; el rollback la revierte
				// entera, pero el llamador debe saber que el par quedó cojo.
				return fmt.Errorf("%w: crédito en destino: %v", domain.ErrPartialShift, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ShiftsCommitted.Inc()
	return toShiftBatchResponse(batch), nil
}

// GetByID obtiene un lote de traslado.
func (uc *ShiftCoordinator) GetByID(organizationID, id string) (*dto.ShiftBatchResponse, error) {
	batch, err := uc.batchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	if batch.OrganizationID != organizationID {
		return nil, domain.ErrForbidden
	}
	return toShiftBatchResponse(batch), nil
}

// List lista lotes de traslado de la organización con paginación.
func (uc *ShiftCoordinator) List(organizationID string, limit, offset int) (*dto.ShiftListResponse, error) {
	list, err := uc.batchRepo.ListByOrganization(organizationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShiftBatchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toShiftBatchResponse(b))
	}
	return &dto.ShiftListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *ShiftCoordinator) validChamber(organizationID string, coord rackCoord) (*entity.Chamber, error) {
	chamber, err := uc.chamberRepo.GetByID(coord.chamberID)
	if err != nil {
		return nil, err
	}
	if chamber == nil {
		return nil, domain.ErrNotFound
	}
	if chamber.OrganizationID != organizationID {
		return nil, domain.ErrForbidden
	}
	if !chamber.Active {
		return nil, domain.ErrChamberInactive
	}
	if err := uc.validCoordinate(chamber, coord); err != nil {
		return nil, err
	}
	return chamber, nil
}

func (uc *ShiftCoordinator) validCoordinate(chamber *entity.Chamber, coord rackCoord) error {
	floors, err := uc.floorRepo.ListByChamber(chamber.ID)
	if err != nil {
		return err
	}
	if err := occupancy.ValidateFloors(chamber.ID, floors); err != nil {
		return err
	}
	if occupancy.FloorCovering(floors, coord.floorNumber, coord.rackNumber) == nil {
		return domain.ErrUnconfiguredRack
	}
	return nil
}

func lockOrdered(movRepo repository.MovementRepository, coords ...rackCoord) error {
	sort.Slice(coords, func(i, j int) bool { return coords[i].key() < coords[j].key() })
	for _, c := range coords {
		if err := movRepo.LockRack(c.chamberID, c.floorNumber, c.rackNumber); err != nil {
			return err
		}
	}
	return nil
}

func shiftEvent(batch *entity.ShiftBatch, amadID string, coord rackCoord, kind string, qty decimal.Decimal, userID string) *entity.MovementEvent {
	return &entity.MovementEvent{
		ID:             uuid.New().String(),
		OrganizationID: batch.OrganizationID,
		AmadID:         amadID,
		ChamberID:      coord.chamberID,
		FloorNumber:    coord.floorNumber,
		RackNumber:     coord.rackNumber,
		Type:           kind,
		Quantity:       qty,
		ShiftBatchID:   batch.ID,
		Date:           batch.Date,
		CreatedAt:      time.Now(),
		CreatedBy:      userID,
	}
}

func toShiftBatchResponse(b *entity.ShiftBatch) *dto.ShiftBatchResponse {
	return &dto.ShiftBatchResponse{
		ID:                   b.ID,
		SourceChamberID:      b.SourceChamberID,
		DestinationChamberID: b.DestinationChamberID,
		Date:                 b.Date,
		Reason:               b.Reason,
		TotalQuantity:        b.TotalQuantity,
		Status:               b.Status,
		CreatedAt:            b.CreatedAt,
	}
}
