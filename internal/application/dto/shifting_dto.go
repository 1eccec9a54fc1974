package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftLineRequest cantidad a trasladar por sub-unidad del amad.
type ShiftLineRequest struct {
	SubUnit  string          `json:"sub_unit"`
	Quantity decimal.Decimal `json:"quantity"`
}

// CommitShiftRequest body para POST /api/shifts: paso final del asistente de
// traslado. Origen, destino y amad vienen de los pasos 1-2; las cantidades por
// sub-unidad y el motivo, del paso 3. El commit revalida todo contra el libro.
type CommitShiftRequest struct {
	SourceChamberID      string             `json:"source_chamber_id"`
	SourceFloor          int                `json:"source_floor"`
	SourceRack           int                `json:"source_rack"`
	DestinationChamberID string             `json:"destination_chamber_id"`
	DestinationFloor     int                `json:"destination_floor"`
	DestinationRack      int                `json:"destination_rack"`
	AmadID               string             `json:"amad_id"`
	Reason               string             `json:"reason"`
	Date                 *time.Time         `json:"date,omitempty"`
	Lines                []ShiftLineRequest `json:"lines"`
}

// ShiftBatchResponse representación HTTP de un lote de traslado.
type ShiftBatchResponse struct {
	ID                   string          `json:"id"`
	SourceChamberID      string          `json:"source_chamber_id"`
	DestinationChamberID string          `json:"destination_chamber_id"`
	Date                 time.Time       `json:"date"`
	Reason               string          `json:"reason"`
	TotalQuantity        decimal.Decimal `json:"total_quantity"`
	Status               string          `json:"status"`
	CreatedAt            time.Time       `json:"created_at"`
}

// ShiftListResponse listado paginado de lotes de traslado.
type ShiftListResponse struct {
	Items []ShiftBatchResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
