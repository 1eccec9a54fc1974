package repository

import "github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"

// ShiftBatchRepository define el puerto de persistencia de lotes de traslado.
// El header se escribe en la misma transacción que sus pares SHIFT_OUT/SHIFT_IN.
type ShiftBatchRepository interface {
	Create(batch *entity.ShiftBatch) error
	GetByID(id string) (*entity.ShiftBatch, error)
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.ShiftBatch, error)
}
