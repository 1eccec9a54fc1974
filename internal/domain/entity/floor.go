package entity

import "time"

// Floor representa un piso de una cámara: un sub-rango de números de rack.
// FromRack..ToRack es inclusivo; los rangos de una cámara no deben solaparse.
// Un número de rack sin piso que lo cubra queda "sin configurar" y se excluye
// de la proyección y de los chequeos de capacidad.
type Floor struct {
	ID          string
	ChamberID   string
	FloorNumber int // único por cámara, base 1
	FromRack    int
	ToRack      int
	RacksPerRow *int // override del ancho de grilla de la cámara; nil = heredar
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RackCount devuelve cuántos racks cubre el piso.
func (f *Floor) RackCount() int {
	if f.ToRack < f.FromRack {
		return 0
	}
	return f.ToRack - f.FromRack + 1
}

// Covers indica si el número de rack cae dentro del rango del piso.
func (f *Floor) Covers(rackNumber int) bool {
	return rackNumber >= f.FromRack && rackNumber <= f.ToRack
}
