package dto

import "time"

// CreateFloorRequest body para POST /api/chambers/:id/floors.
type CreateFloorRequest struct {
	FloorNumber int  `json:"floor_number"`
	FromRack    int  `json:"from_rack"`
	ToRack      int  `json:"to_rack"`
	RacksPerRow *int `json:"racks_per_row,omitempty"`
}

// UpdateFloorRequest body para PUT /api/floors/:id (campos opcionales).
type UpdateFloorRequest struct {
	FromRack    *int `json:"from_rack,omitempty"`
	ToRack      *int `json:"to_rack,omitempty"`
	RacksPerRow *int `json:"racks_per_row,omitempty"`
}

// FloorResponse representación HTTP de un piso.
type FloorResponse struct {
	ID          string    `json:"id"`
	ChamberID   string    `json:"chamber_id"`
	FloorNumber int       `json:"floor_number"`
	FromRack    int       `json:"from_rack"`
	ToRack      int       `json:"to_rack"`
	RacksPerRow *int      `json:"racks_per_row,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
