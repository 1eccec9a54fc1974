package occupancy

import (
	"github.com/shopspring/decimal"

	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"
)

// ChamberStats es el resumen derivado de una cámara. Nunca se persiste.
type ChamberStats struct {
	ChamberID     string
	TotalRacks    int // racks cubiertos por pisos activos
	EmptyRacks    int
	PartialRacks  int
	FullRacks     int
	OccupiedRacks int // PARTIAL + FULL
	OccupancyPct  decimal.Decimal
	TotalQuantity decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// Aggregate reduce la salida del proyector a conteos y porcentaje de ocupación.
func Aggregate(chamber *entity.Chamber, occupancies []RackOccupancy) ChamberStats {
	stats := ChamberStats{ChamberID: chamber.ID, TotalRacks: len(occupancies)}
	for _, occ := range occupancies {
		switch occ.Status {
		case StatusEMPTY:
			stats.EmptyRacks++
		case StatusPARTIAL:
			stats.PartialRacks++
		case StatusFULL:
			stats.FullRacks++
		}
		stats.TotalQuantity = stats.TotalQuantity.Add(occ.NetQuantity)
	}
	stats.OccupiedRacks = stats.PartialRacks + stats.FullRacks
	if stats.TotalRacks > 0 {
		stats.OccupancyPct = decimal.NewFromInt(int64(stats.OccupiedRacks)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(stats.TotalRacks))).
			Round(2)
	}
	return stats
}
