package repository

import "github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"

// AmadRepository define el puerto de solo lectura sobre los amads (lotes).
// Este servicio consulta cantidades para validar cargas y traslados;
// los amads los administra otro módulo.
type AmadRepository interface {
	GetByID(id string) (*entity.Amad, error)
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.Amad, error)
}
