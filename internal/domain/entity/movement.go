package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de evento del libro de movimientos.
const (
	MovementTypeLOADING   = "LOADING"   // carga directa (crédito)
	MovementTypeUNLOADING = "UNLOADING" // descarga directa (débito)
	MovementTypeSHIFTOUT  = "SHIFT_OUT" // débito en origen de un traslado
	MovementTypeSHIFTIN   = "SHIFT_IN"  // crédito en destino de un traslado
	MovementTypeVOID      = "VOID"      // anulación: referencia al evento original, nunca edición in situ
)

// MovementEvent es un evento inmutable del libro append-only: un cambio de
// cantidad con signo en una coordenada (cámara, piso, rack), atado a un amad.
// Es el sistema de registro; la ocupación es siempre una vista derivada de él.
type MovementEvent struct {
	ID             string
	OrganizationID string
	AmadID         string // referencia externa al lote (amad); vacío en eventos VOID
	ChamberID      string
	FloorNumber    int
	RackNumber     int
	Type           string
	Quantity       decimal.Decimal // sin signo; el signo lo da el tipo
	ShiftBatchID   string          // lote de traslado al que pertenece (SHIFT_OUT/SHIFT_IN)
	VoidOf         string          // ID del evento anulado (solo tipo VOID)
	Date           time.Time
	CreatedAt      time.Time
	CreatedBy      string
}

// Sign devuelve +1 para créditos (LOADING, SHIFT_IN), -1 para débitos
// (UNLOADING, SHIFT_OUT) y 0 para eventos que no afectan el saldo (VOID).
func (m *MovementEvent) Sign() int {
	switch m.Type {
	case MovementTypeLOADING, MovementTypeSHIFTIN:
		return 1
	case MovementTypeUNLOADING, MovementTypeSHIFTOUT:
		return -1
	}
	return 0
}

// IsCredit indica si el evento suma saldo al rack.
func (m *MovementEvent) IsCredit() bool { return m.Sign() > 0 }

// SignedQuantity devuelve la cantidad con el signo aplicado.
func (m *MovementEvent) SignedQuantity() decimal.Decimal {
	switch m.Sign() {
	case 1:
		return m.Quantity
	case -1:
		return m.Quantity.Neg()
	}
	return decimal.Zero
}
