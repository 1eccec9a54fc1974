package dto

import "github.com/shopspring/decimal"

// LotShareDTO porción de un amad en un rack.
type LotShareDTO struct {
	AmadID   string          `json:"amad_id"`
	Quantity decimal.Decimal `json:"quantity"`
}

// RackOccupancyDTO estado derivado de un rack. Siempre recalculado del libro;
// state aplica la precedencia de marcas manuales sobre el estado derivado.
type RackOccupancyDTO struct {
	ChamberID   string          `json:"chamber_id"`
	FloorNumber int             `json:"floor_number"`
	RackNumber  int             `json:"rack_number"`
	NetQuantity decimal.Decimal `json:"net_quantity"`
	Status      string          `json:"status"`
	State       string          `json:"state"`
	Override    string          `json:"override,omitempty"`
	Lots        []LotShareDTO   `json:"lots,omitempty"`
	LastAmadID  string          `json:"last_amad_id,omitempty"`
}

// ChamberStatsDTO resumen derivado por cámara.
type ChamberStatsDTO struct {
	ChamberID     string          `json:"chamber_id"`
	TotalRacks    int             `json:"total_racks"`
	EmptyRacks    int             `json:"empty_racks"`
	PartialRacks  int             `json:"partial_racks"`
	FullRacks     int             `json:"full_racks"`
	OccupiedRacks int             `json:"occupied_racks"`
	OccupancyPct  decimal.Decimal `json:"occupancy_pct"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
}

// CapacityCheckResponse respuesta del pre-chequeo de capacidad. Es orientativo:
// la admisión definitiva se repite dentro de la transacción de escritura.
type CapacityCheckResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// SetOverrideRequest body para PUT /api/chambers/:id/overrides.
type SetOverrideRequest struct {
	FloorNumber int    `json:"floor_number"`
	RackNumber  int    `json:"rack_number"`
	State       string `json:"state"` // RESERVED | MAINTENANCE
	Reason      string `json:"reason,omitempty"`
}
