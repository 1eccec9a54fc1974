package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/movements/loading y /unloading.
type RegisterMovementRequest struct {
	AmadID      string          `json:"amad_id"`
	ChamberID   string          `json:"chamber_id"`
	FloorNumber int             `json:"floor_number"`
	RackNumber  int             `json:"rack_number"`
	Quantity    decimal.Decimal `json:"quantity"`
	Date        *time.Time      `json:"date,omitempty"` // omitido = ahora
}

// MovementResponse representación HTTP de un evento del libro.
type MovementResponse struct {
	ID           string          `json:"id"`
	AmadID       string          `json:"amad_id,omitempty"`
	ChamberID    string          `json:"chamber_id"`
	FloorNumber  int             `json:"floor_number"`
	RackNumber   int             `json:"rack_number"`
	Type         string          `json:"type"`
	Quantity     decimal.Decimal `json:"quantity"`
	ShiftBatchID string          `json:"shift_batch_id,omitempty"`
	VoidOf       string          `json:"void_of,omitempty"`
	Date         time.Time       `json:"date"`
	CreatedAt    time.Time       `json:"created_at"`
	CreatedBy    string          `json:"created_by,omitempty"`
}

// MovementListResponse listado de eventos de una cámara o un amad.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
