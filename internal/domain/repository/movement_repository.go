package repository

import "github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"

// MovementRepository define el puerto del libro de movimientos, append-only:
// los eventos nunca se editan ni se borran; una anulación es un nuevo registro
// VOID que referencia al original.
type MovementRepository interface {
	Create(event *entity.MovementEvent) error
	GetByID(id string) (*entity.MovementEvent, error)
	ListByChamber(chamberID string) ([]*entity.MovementEvent, error)
	ListByAmad(amadID string) ([]*entity.MovementEvent, error)
	ListByRack(chamberID string, floorNumber, rackNumber int) ([]*entity.MovementEvent, error)
	ExistsByChamber(chamberID string) (bool, error)

	// LockRack serializa los escritores de una coordenada dentro de la
	// transacción en curso. Chequear capacidad y luego anexar solo es atómico
	// detrás de este lock.
	LockRack(chamberID string, floorNumber, rackNumber int) error

	// LockAmad serializa las cargas de un mismo amad dentro de la transacción
	// en curso. Dos cargas a racks distintos no comparten el lock de rack;
	// el tope de disponible del amad solo es atómico detrás de este.
	LockAmad(amadID string) error
}
