package warehouse

import (
	"github.com/shopspring/decimal"

	"github.com/ganeshsutar/coldstrg-sub001/internal/application/dto"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/occupancy"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/repository"
	"github.com/ganeshsutar/coldstrg-sub001/pkg/logger"
)

// OccupancyUseCase consultas derivadas: ocupación por rack, resumen por cámara
// y pre-chequeo de capacidad. Todo se recalcula del libro en cada llamada;
// nada de esto se persiste ni se cachea.
type OccupancyUseCase struct {
	chamberRepo  repository.ChamberRepository
	floorRepo    repository.FloorRepository
	movementRepo repository.MovementRepository
	overrideRepo repository.RackOverrideRepository
	log          *logger.Logger
}

// NewOccupancyUseCase construye el caso de uso.
func NewOccupancyUseCase(
	chamberRepo repository.ChamberRepository,
	floorRepo repository.FloorRepository,
	movementRepo repository.MovementRepository,
	overrideRepo repository.RackOverrideRepository,
	log *logger.Logger,
) *OccupancyUseCase {
	return &OccupancyUseCase{
		chamberRepo:  chamberRepo,
		floorRepo:    floorRepo,
		movementRepo: movementRepo,
		overrideRepo: overrideRepo,
		log:          log,
	}
}

// GetRackOccupancy proyecta el libro de la cámara y devuelve la ocupación por
// rack con las marcas manuales aplicadas. Pisos solapados devuelven el error
// de configuración en vez de duplicar racks en silencio.
func (uc *OccupancyUseCase) GetRackOccupancy(organizationID, chamberID string) ([]dto.RackOccupancyDTO, error) {
	chamber, occs, err := uc.projectChamber(organizationID, chamberID)
	if err != nil {
		return nil, err
	}

	overrides, err := uc.overrideRepo.ListByChamber(chamber.ID)
	if err != nil {
		return nil, err
	}
	occupancy.ApplyOverrides(occs, overrides)

	items := make([]dto.RackOccupancyDTO, 0, len(occs))
	for i := range occs {
		items = append(items, toOccupancyDTO(&occs[i]))
	}
	return items, nil
}

// GetChamberStats devuelve el resumen derivado de la cámara.
func (uc *OccupancyUseCase) GetChamberStats(organizationID, chamberID string) (*dto.ChamberStatsDTO, error) {
	chamber, occs, err := uc.projectChamber(organizationID, chamberID)
	if err != nil {
		return nil, err
	}
	stats := occupancy.Aggregate(chamber, occs)
	return &dto.ChamberStatsDTO{
		ChamberID:     stats.ChamberID,
		TotalRacks:    stats.TotalRacks,
		EmptyRacks:    stats.EmptyRacks,
		PartialRacks:  stats.PartialRacks,
		FullRacks:     stats.FullRacks,
		OccupiedRacks: stats.OccupiedRacks,
		OccupancyPct:  stats.OccupancyPct,
		TotalQuantity: stats.TotalQuantity,
	}, nil
}

// CheckCapacity es el pre-chequeo de admisión contra la proyección actual.
// Es orientativo: dos llamadores concurrentes pueden pasar contra la misma
// foto vieja, por eso toda escritura repite el chequeo dentro de su
// transacción con el rack serializado.
func (uc *OccupancyUseCase) CheckCapacity(organizationID, chamberID string, floorNumber, rackNumber int, quantity decimal.Decimal) (*dto.CapacityCheckResponse, error) {
	chamber, occs, err := uc.projectChamber(organizationID, chamberID)
	if err != nil {
		return nil, err
	}
	for i := range occs {
		occ := &occs[i]
		if occ.FloorNumber != floorNumber || occ.RackNumber != rackNumber {
			continue
		}
		if err := occupancy.CheckCapacity(chamber.RackCapacity, occ.NetQuantity, quantity); err != nil {
			return &dto.CapacityCheckResponse{Allowed: false, Reason: err.Error()}, nil
		}
		return &dto.CapacityCheckResponse{Allowed: true}, nil
	}
	return nil, domain.ErrUnconfiguredRack
}

// SetOverride marca un rack como RESERVED o MAINTENANCE.
func (uc *OccupancyUseCase) SetOverride(organizationID, chamberID, userID string, in dto.SetOverrideRequest) error {
	chamber, err := uc.ownedChamber(organizationID, chamberID)
	if err != nil {
		return err
	}
	if in.State != entity.RackOverrideRESERVED && in.State != entity.RackOverrideMAINTENANCE {
		return domain.ErrInvalidInput
	}
	floors, err := uc.floorRepo.ListByChamber(chamber.ID)
	if err != nil {
		return err
	}
	if occupancy.FloorCovering(floors, in.FloorNumber, in.RackNumber) == nil {
		return domain.ErrUnconfiguredRack
	}
	return uc.overrideRepo.Upsert(&entity.RackOverride{
		ChamberID:   chamber.ID,
		FloorNumber: in.FloorNumber,
		RackNumber:  in.RackNumber,
		State:       in.State,
		Reason:      in.Reason,
		CreatedBy:   userID,
	})
}

// ClearOverride quita la marca manual de un rack.
func (uc *OccupancyUseCase) ClearOverride(organizationID, chamberID string, floorNumber, rackNumber int) error {
	chamber, err := uc.ownedChamber(organizationID, chamberID)
	if err != nil {
		return err
	}
	return uc.overrideRepo.Delete(chamber.ID, floorNumber, rackNumber)
}

// projectChamber carga configuración y libro, valida pisos y proyecta.
// Saldos crudos negativos se reportan a auditoría por log: indican libro
// corrupto o una carrera perdida, nunca se recortan en silencio.
func (uc *OccupancyUseCase) projectChamber(organizationID, chamberID string) (*entity.Chamber, []occupancy.RackOccupancy, error) {
	chamber, err := uc.ownedChamber(organizationID, chamberID)
	if err != nil {
		return nil, nil, err
	}
	floors, err := uc.floorRepo.ListByChamber(chamber.ID)
	if err != nil {
		return nil, nil, err
	}
	if err := occupancy.ValidateFloors(chamber.ID, floors); err != nil {
		return nil, nil, err
	}
	events, err := uc.movementRepo.ListByChamber(chamber.ID)
	if err != nil {
		return nil, nil, err
	}
	occs := occupancy.Project(chamber, floors, events)

	for _, bad := range occupancy.NegativeBalances(occs) {
		uc.log.Warn().
			Str("chamber_id", chamber.ID).
			Int("floor", bad.FloorNumber).
			Int("rack", bad.RackNumber).
			Str("balance", bad.Balance.String()).
			Msg("saldo negativo en rack: libro inconsistente, requiere conciliación manual")
	}
	return chamber, occs, nil
}

func (uc *OccupancyUseCase) ownedChamber(organizationID, chamberID string) (*entity.Chamber, error) {
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
	return chamber, nil
}

func toOccupancyDTO(occ *occupancy.RackOccupancy) dto.RackOccupancyDTO {
	out := dto.RackOccupancyDTO{
		ChamberID:   occ.ChamberID,
		FloorNumber: occ.FloorNumber,
		RackNumber:  occ.RackNumber,
		NetQuantity: occ.NetQuantity,
		Status:      occ.Status,
		State:       occ.State(),
		Override:    occ.Override,
		LastAmadID:  occ.LastAmadID,
	}
	for _, share := range occ.Lots {
		out.Lots = append(out.Lots, dto.LotShareDTO{AmadID: share.AmadID, Quantity: share.Quantity})
	}
	return out
}
