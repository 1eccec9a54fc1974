package usecase

import (
	"github.com/ganeshsutar/coldstrg-sub001/internal/application/dto"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/repository"
)

// AmadUseCase consultas de solo lectura sobre amads (lotes externos).
type AmadUseCase struct {
	repo repository.AmadRepository
}

// NewAmadUseCase construye el caso de uso.
func NewAmadUseCase(repo repository.AmadRepository) *AmadUseCase {
	return &AmadUseCase{repo: repo}
}

// GetByID obtiene un amad por ID, verificando la organización.
func (uc *AmadUseCase) GetByID(organizationID, id string) (*dto.AmadResponse, error) {
	amad, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if amad == nil {
		return nil, domain.ErrNotFound
	}
	if amad.OrganizationID != organizationID {
		return nil, domain.ErrForbidden
	}
	return toAmadResponse(amad), nil
}

// List lista amads de la organización con paginación.
func (uc *AmadUseCase) List(organizationID string, limit, offset int) (*dto.AmadListResponse, error) {
	list, err := uc.repo.ListByOrganization(organizationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AmadResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAmadResponse(a))
	}
	return &dto.AmadListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toAmadResponse(a *entity.Amad) *dto.AmadResponse {
	return &dto.AmadResponse{
		ID:            a.ID,
		PartyName:     a.PartyName,
		CommodityName: a.CommodityName,
		SubUnit:       a.SubUnit,
		AvailableQty:  a.AvailableQty,
		CreatedAt:     a.CreatedAt,
	}
}
