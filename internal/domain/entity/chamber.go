package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Chamber representa una cámara de frío física, subdividida en pisos y racks.
// RackCapacity es la capacidad por rack en la unidad de la cámara (ej. 100 bultos).
type Chamber struct {
	ID             string
	OrganizationID string
	Code           string // único por organización
	RoomNumber     string
	Name           string
	FloorCount     int
	TotalRacks     int
	RacksPerRow    int // ancho de la grilla para renderizado
	RackCapacity   decimal.Decimal
	Active         bool // desactivación suave; nunca se borra con movimientos asociados
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
