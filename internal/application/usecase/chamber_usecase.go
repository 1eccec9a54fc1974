package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ganeshsutar/coldstrg-sub001/internal/application/dto"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/occupancy"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/repository"
)

// ChamberUseCase casos de uso CRUD para cámaras de frío. La salida de
// servicio normal es la baja suave (flag Active); el borrado duro existe solo
// para cámaras sin historial, porque el libro de movimientos referencia a las
// demás para siempre.
type ChamberUseCase struct {
	chamberRepo  repository.ChamberRepository
	floorRepo    repository.FloorRepository
	movementRepo repository.MovementRepository
}

// NewChamberUseCase construye el caso de uso.
func NewChamberUseCase(
	chamberRepo repository.ChamberRepository,
	floorRepo repository.FloorRepository,
	movementRepo repository.MovementRepository,
) *ChamberUseCase {
	return &ChamberUseCase{chamberRepo: chamberRepo, floorRepo: floorRepo, movementRepo: movementRepo}
}

// Create crea una cámara y, si se pide, auto-genera sus pisos repartiendo
// TotalRacks en FloorCount rangos contiguos (el resto va al último piso).
func (uc *ChamberUseCase) Create(organizationID string, in dto.CreateChamberRequest) (*dto.ChamberResponse, error) {
	if in.Code == "" || in.Name == "" || in.FloorCount <= 0 || in.TotalRacks <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.RackCapacity.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.chamberRepo.GetByCode(organizationID, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	chamber := &entity.Chamber{
		ID:             uuid.New().String(),
		OrganizationID: organizationID,
		Code:           in.Code,
		RoomNumber:     in.RoomNumber,
		Name:           in.Name,
		FloorCount:     in.FloorCount,
		TotalRacks:     in.TotalRacks,
		RacksPerRow:    in.RacksPerRow,
		RackCapacity:   in.RackCapacity,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.chamberRepo.Create(chamber); err != nil {
		return nil, err
	}

	if in.GenerateFloors {
		floors := occupancy.GenerateFloors(chamber)
		for _, f := range floors {
			f.ID = uuid.New().String()
			f.CreatedAt = now
			f.UpdatedAt = now
		}
		if err := uc.floorRepo.CreateAll(floors); err != nil {
			return nil, err
		}
	}
	return toChamberResponse(chamber), nil
}

// GetByID obtiene una cámara por ID, verificando la organización.
func (uc *ChamberUseCase) GetByID(organizationID, id string) (*dto.ChamberResponse, error) {
	chamber, err := uc.ownedChamber(organizationID, id)
	if err != nil {
		return nil, err
	}
	return toChamberResponse(chamber), nil
}

// Update actualiza campos editables de la cámara. Active=false es la baja
// suave; la estructura (FloorCount, TotalRacks) no se toca por aquí porque
// reconfigurarla con mercadería cargada rompe la proyección histórica.
func (uc *ChamberUseCase) Update(organizationID, id string, in dto.UpdateChamberRequest) (*dto.ChamberResponse, error) {
	chamber, err := uc.ownedChamber(organizationID, id)
	if err != nil {
		return nil, err
	}
	if in.RoomNumber != nil {
		chamber.RoomNumber = *in.RoomNumber
	}
	if in.Name != nil {
		chamber.Name = *in.Name
	}
	if in.RacksPerRow != nil {
		chamber.RacksPerRow = *in.RacksPerRow
	}
	if in.RackCapacity != nil {
		if in.RackCapacity.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		chamber.RackCapacity = *in.RackCapacity
	}
	if in.Active != nil {
		chamber.Active = *in.Active
	}
	chamber.UpdatedAt = time.Now()
	if err := uc.chamberRepo.Update(chamber); err != nil {
		return nil, err
	}
	return toChamberResponse(chamber), nil
}

// Delete borra definitivamente una cámara sin historial, con sus pisos. Con
// movimientos registrados el borrado se rechaza: el libro referencia a la
// cámara para siempre y la salida de servicio es la baja suave.
func (uc *ChamberUseCase) Delete(organizationID, id string) error {
	chamber, err := uc.ownedChamber(organizationID, id)
	if err != nil {
		return err
	}
	referenced, err := uc.movementRepo.ExistsByChamber(chamber.ID)
	if err != nil {
		return err
	}
	if referenced {
		return domain.ErrConflict
	}
	floors, err := uc.floorRepo.ListByChamber(chamber.ID)
	if err != nil {
		return err
	}
	for _, f := range floors {
		if err := uc.floorRepo.Delete(f.ID); err != nil {
			return err
		}
	}
	return uc.chamberRepo.Delete(chamber.ID)
}

// List lista cámaras de la organización con paginación.
func (uc *ChamberUseCase) List(organizationID string, limit, offset int) (*dto.ChamberListResponse, error) {
	list, err := uc.chamberRepo.ListByOrganization(organizationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ChamberResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toChamberResponse(c))
	}
	return &dto.ChamberListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *ChamberUseCase) ownedChamber(organizationID, id string) (*entity.Chamber, error) {
	chamber, err := uc.chamberRepo.GetByID(id)
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

func toChamberResponse(c *entity.Chamber) *dto.ChamberResponse {
	if c == nil {
		return nil
	}
	return &dto.ChamberResponse{
		ID:           c.ID,
		Code:         c.Code,
		RoomNumber:   c.RoomNumber,
		Name:         c.Name,
		FloorCount:   c.FloorCount,
		TotalRacks:   c.TotalRacks,
		RacksPerRow:  c.RacksPerRow,
		RackCapacity: c.RackCapacity,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
