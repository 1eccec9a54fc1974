package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateChamberRequest body para POST /api/chambers.
// Si GenerateFloors es true, los pisos se auto-generan repartiendo
// TotalRacks en FloorCount rangos contiguos.
type CreateChamberRequest struct {
	Code           string          `json:"code"`
	RoomNumber     string          `json:"room_number"`
	Name           string          `json:"name"`
	FloorCount     int             `json:"floor_count"`
	TotalRacks     int             `json:"total_racks"`
	RacksPerRow    int             `json:"racks_per_row"`
	RackCapacity   decimal.Decimal `json:"rack_capacity"`
	GenerateFloors bool            `json:"generate_floors"`
}

// UpdateChamberRequest body para PUT /api/chambers/:id (campos opcionales).
type UpdateChamberRequest struct {
	RoomNumber   *string          `json:"room_number,omitempty"`
	Name         *string          `json:"name,omitempty"`
	RacksPerRow  *int             `json:"racks_per_row,omitempty"`
	RackCapacity *decimal.Decimal `json:"rack_capacity,omitempty"`
	Active       *bool            `json:"active,omitempty"`
}

// ChamberResponse representación HTTP de una cámara.
type ChamberResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	RoomNumber   string          `json:"room_number"`
	Name         string          `json:"name"`
	FloorCount   int             `json:"floor_count"`
	TotalRacks   int             `json:"total_racks"`
	RacksPerRow  int             `json:"racks_per_row"`
	RackCapacity decimal.Decimal `json:"rack_capacity"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ChamberListResponse listado paginado de cámaras.
type ChamberListResponse struct {
	Items []ChamberResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
