package repository

import "github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"

// FloorRepository define el puerto de persistencia para pisos.
type FloorRepository interface {
	Create(floor *entity.Floor) error
	CreateAll(floors []*entity.Floor) error
	GetByID(id string) (*entity.Floor, error)
	Update(floor *entity.Floor) error
	Delete(id string) error
	ListByChamber(chamberID string) ([]*entity.Floor, error)
}
