package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Amad es el registro externo de mercadería entrante de una parte (lote).
// Este servicio solo lo consulta para validar cantidades; nunca lo modifica.
type Amad struct {
	ID             string
	OrganizationID string
	PartyName      string
	CommodityName  string
	SubUnit        string          // unidad de conteo (ej. "bulto 50kg")
	AvailableQty   decimal.Decimal // cantidad disponible por sub-unidad
	CreatedAt      time.Time
}
