package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AmadResponse representación HTTP (solo lectura) de un amad.
type AmadResponse struct {
	ID            string          `json:"id"`
	PartyName     string          `json:"party_name"`
	CommodityName string          `json:"commodity_name"`
	SubUnit       string          `json:"sub_unit"`
	AvailableQty  decimal.Decimal `json:"available_qty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// AmadListResponse listado paginado de amads.
type AmadListResponse struct {
	Items []AmadResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
