package repository

import "github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"

// ChamberRepository define el puerto de persistencia para cámaras (DIP).
type ChamberRepository interface {
	Create(chamber *entity.Chamber) error
	GetByID(id string) (*entity.Chamber, error)
	GetByCode(organizationID, code string) (*entity.Chamber, error)
	Update(chamber *entity.Chamber) error
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.Chamber, error)

	// Delete borra la cámara de forma definitiva. El caso de uso solo lo
	// permite cuando el libro de movimientos no la referencia.
	Delete(id string) error
}
