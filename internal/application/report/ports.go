package report

import (
	"context"

	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/occupancy"
)

// OccupancyPDFGenerator genera la planilla de ocupación de una cámara en PDF.
// El caso de uso entrega la proyección ya calculada; el generador solo dibuja.
type OccupancyPDFGenerator interface {
	GenerateOccupancyPDF(
		ctx context.Context,
		chamber *entity.Chamber,
		stats occupancy.ChamberStats,
		racks []occupancy.RackOccupancy,
	) ([]byte, error)
}
