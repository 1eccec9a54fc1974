package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado de un lote de traslado. Solo existe COMPLETED: el par débito/crédito
// se escribe en una única transacción, así que un lote nunca queda a medias
// en la base de datos.
const ShiftStatusCOMPLETED = "COMPLETED"

// ShiftBatch agrupa los pares SHIFT_OUT/SHIFT_IN creados en una misma
// transacción de traslado. Invariante: TotalQuantity == suma de débitos
// SHIFT_OUT == suma de créditos SHIFT_IN del lote.
type ShiftBatch struct {
	ID                   string
	OrganizationID       string
	SourceChamberID      string
	DestinationChamberID string
	Date                 time.Time
	Reason               string // texto libre para auditoría
	TotalQuantity        decimal.Decimal
	Status               string
	CreatedAt            time.Time
	CreatedBy            string
}
