package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ganeshsutar/coldstrg-sub001/internal/application/dto"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/occupancy"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/repository"
)

// FloorUseCase casos de uso CRUD para pisos. Editar o borrar un piso con
// mercadería cargada en su rango deja huérfana la historia de esos racks en
// las proyecciones futuras, así que las mutaciones se validan contra el libro
// antes de aplicarse.
type FloorUseCase struct {
	chamberRepo  repository.ChamberRepository
	floorRepo    repository.FloorRepository
	movementRepo repository.MovementRepository
}

// NewFloorUseCase construye el caso de uso.
func NewFloorUseCase(
	chamberRepo repository.ChamberRepository,
	floorRepo repository.FloorRepository,
	movementRepo repository.MovementRepository,
) *FloorUseCase {
	return &FloorUseCase{chamberRepo: chamberRepo, floorRepo: floorRepo, movementRepo: movementRepo}
}

// Create agrega un piso a la cámara. El conjunto resultante debe seguir libre
// de solapamientos; si no, se devuelve el error de configuración sin escribir.
func (uc *FloorUseCase) Create(organizationID, chamberID string, in dto.CreateFloorRequest) (*dto.FloorResponse, error) {
	chamber, err := uc.ownedChamber(organizationID, chamberID)
	if err != nil {
		return nil, err
	}
	if in.FloorNumber < 1 || in.FromRack < 1 || in.ToRack < in.FromRack {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.floorRepo.ListByChamber(chamber.ID)
	if err != nil {
		return nil, err
	}
	for _, f := range existing {
		if f.FloorNumber == in.FloorNumber {
			return nil, domain.ErrDuplicate
		}
	}

	now := time.Now()
	floor := &entity.Floor{
		ID:          uuid.New().String(),
		ChamberID:   chamber.ID,
		FloorNumber: in.FloorNumber,
		FromRack:    in.FromRack,
		ToRack:      in.ToRack,
		RacksPerRow: in.RacksPerRow,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := occupancy.ValidateFloors(chamber.ID, append(existing, floor)); err != nil {
		return nil, err
	}
	if err := uc.floorRepo.Create(floor); err != nil {
		return nil, err
	}
	return toFloorResponse(floor), nil
}

// Update cambia el rango de un piso. Además de revalidar solapamientos, se
// rechaza encoger el rango por fuera de un rack con saldo proyectado distinto
// de cero: eso dejaría mercadería invisible para el proyector.
func (uc *FloorUseCase) Update(organizationID, floorID string, in dto.UpdateFloorRequest) (*dto.FloorResponse, error) {
	floor, err := uc.floorRepo.GetByID(floorID)
	if err != nil {
		return nil, err
	}
	if floor == nil {
		return nil, domain.ErrNotFound
	}
	chamber, err := uc.ownedChamber(organizationID, floor.ChamberID)
	if err != nil {
		return nil, err
	}

	updated := *floor
	if in.FromRack != nil {
		updated.FromRack = *in.FromRack
	}
	if in.ToRack != nil {
		updated.ToRack = *in.ToRack
	}
	if in.RacksPerRow != nil {
		updated.RacksPerRow = in.RacksPerRow
	}
	if updated.FromRack < 1 || updated.ToRack < updated.FromRack {
		return nil, domain.ErrInvalidInput
	}

	floors, err := uc.floorRepo.ListByChamber(chamber.ID)
	if err != nil {
		return nil, err
	}
	replaced := make([]*entity.Floor, 0, len(floors))
	for _, f := range floors {
		if f.ID == floor.ID {
			replaced = append(replaced, &updated)
		} else {
			replaced = append(replaced, f)
		}
	}
	if err := occupancy.ValidateFloors(chamber.ID, replaced); err != nil {
		return nil, err
	}
	if err := uc.guardLoadedRacks(chamber, floors, floor, &updated); err != nil {
		return nil, err
	}

	updated.UpdatedAt = time.Now()
	if err := uc.floorRepo.Update(&updated); err != nil {
		return nil, err
	}
	return toFloorResponse(&updated), nil
}

// Delete elimina un piso sin mercadería en su rango.
func (uc *FloorUseCase) Delete(organizationID, floorID string) error {
	floor, err := uc.floorRepo.GetByID(floorID)
	if err != nil {
		return err
	}
	if floor == nil {
		return domain.ErrNotFound
	}
	chamber, err := uc.ownedChamber(organizationID, floor.ChamberID)
	if err != nil {
		return err
	}
	floors, err := uc.floorRepo.ListByChamber(chamber.ID)
	if err != nil {
		return err
	}
	// Borrar el piso equivale a encogerlo a rango vacío.
	if err := uc.guardLoadedRacks(chamber, floors, floor, nil); err != nil {
		return err
	}
	return uc.floorRepo.Delete(floorID)
}

// ListByChamber lista los pisos de una cámara.
func (uc *FloorUseCase) ListByChamber(organizationID, chamberID string) ([]dto.FloorResponse, error) {
	if _, err := uc.ownedChamber(organizationID, chamberID); err != nil {
		return nil, err
	}
	floors, err := uc.floorRepo.ListByChamber(chamberID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FloorResponse, 0, len(floors))
	for _, f := range floors {
		items = append(items, *toFloorResponse(f))
	}
	return items, nil
}

// guardLoadedRacks rechaza una mutación que saque de cobertura un rack cuyo
// saldo proyectado no es cero. updated=nil representa el borrado del piso.
func (uc *FloorUseCase) guardLoadedRacks(chamber *entity.Chamber, floors []*entity.Floor, old *entity.Floor, updated *entity.Floor) error {
	events, err := uc.movementRepo.ListByChamber(chamber.ID)
	if err != nil {
		return err
	}
	occs := occupancy.Project(chamber, floors, events)
	for _, occ := range occs {
		if occ.FloorNumber != old.FloorNumber || occ.Balance.IsZero() {
			continue
		}
		if updated == nil || !updated.Covers(occ.RackNumber) {
			return domain.ErrConflict
		}
	}
	return nil
}

func (uc *FloorUseCase) ownedChamber(organizationID, chamberID string) (*entity.Chamber, error) {
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

func toFloorResponse(f *entity.Floor) *dto.FloorResponse {
	if f == nil {
		return nil
	}
	return &dto.FloorResponse{
		ID:          f.ID,
		ChamberID:   f.ChamberID,
		FloorNumber: f.FloorNumber,
		FromRack:    f.FromRack,
		ToRack:      f.ToRack,
		RacksPerRow: f.RacksPerRow,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
