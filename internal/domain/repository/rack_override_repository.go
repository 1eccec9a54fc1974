package repository

import "github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"

// RackOverrideRepository define el puerto de las marcas manuales
// RESERVED/MAINTENANCE por coordenada (cámara, piso, rack).
type RackOverrideRepository interface {
	Upsert(override *entity.RackOverride) error
	Delete(chamberID string, floorNumber, rackNumber int) error
	ListByChamber(chamberID string) ([]*entity.RackOverride, error)
}
