package entity

import "time"

// Estados manuales de un rack. No son derivables del libro de movimientos:
// los fija un operador y prevalecen sobre el estado proyectado.
const (
	RackOverrideRESERVED    = "RESERVED"
	RackOverrideMAINTENANCE = "MAINTENANCE"
)

// RackOverride marca un rack como reservado o en mantenimiento,
// por coordenada (cámara, piso, rack).
type RackOverride struct {
	ChamberID   string
	FloorNumber int
	RackNumber  int
	State       string
	Reason      string
	CreatedAt   time.Time
	CreatedBy   string
}
