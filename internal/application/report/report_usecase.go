package report

import (
	"context"
	"fmt"
	"time"

	"github.com/ganeshsutar/coldstrg-sub001/internal/domain"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/occupancy"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/repository"
)

// ReportUseCase genera la planilla de ocupación imprimible de una cámara.
// La planilla es la misma proyección que sirve la API, congelada en papel:
// se recalcula del libro al momento de la descarga, nunca de un caché.
type ReportUseCase struct {
	chamberRepo  repository.ChamberRepository
	floorRepo    repository.FloorRepository
	movementRepo repository.MovementRepository
	overrideRepo repository.RackOverrideRepository
	generator    OccupancyPDFGenerator
}

// NewReportUseCase construye el caso de uso inyectando sus dependencias.
func NewReportUseCase(
	chamberRepo repository.ChamberRepository,
	floorRepo repository.FloorRepository,
	movementRepo repository.MovementRepository,
	overrideRepo repository.RackOverrideRepository,
	generator OccupancyPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		chamberRepo:  chamberRepo,
		floorRepo:    floorRepo,
		movementRepo: movementRepo,
		overrideRepo: overrideRepo,
		generator:    generator,
	}
}

// DownloadOccupancyPDF proyecta la cámara y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)      si todo sale bien.
//   - domain.ErrNotFound             si la cámara no existe.
//   - domain.ErrForbidden            si la cámara es de otra organización.
//   - domain.ErrFloorConfiguration   si los pisos están solapados.
func (uc *ReportUseCase) DownloadOccupancyPDF(
	ctx context.Context,
	organizationID, chamberID string,
) (pdfBytes []byte, filename string, err error) {
	chamber, err := uc.chamberRepo.GetByID(chamberID)
	if err != nil {
		return nil, "", fmt.Errorf("report: obtener cámara: %w", err)
	}
	if chamber == nil {
		return nil, "", domain.ErrNotFound
	}
	if chamber.OrganizationID != organizationID {
		return nil, "", domain.ErrForbidden
	}

	floors, err := uc.floorRepo.ListByChamber(chamber.ID)
	if err != nil {
		return nil, "", fmt.Errorf("report: obtener pisos: %w", err)
	}
	if err := occupancy.ValidateFloors(chamber.ID, floors); err != nil {
		return nil, "", err
	}

	events, err := uc.movementRepo.ListByChamber(chamber.ID)
	if err != nil {
		return nil, "", fmt.Errorf("report: obtener movimientos: %w", err)
	}
	occs := occupancy.Project(chamber, floors, events)

	overrides, err := uc.overrideRepo.ListByChamber(chamber.ID)
	if err != nil {
		return nil, "", fmt.Errorf("report: obtener marcas: %w", err)
	}
	occupancy.ApplyOverrides(occs, overrides)

	stats := occupancy.Aggregate(chamber, occs)

	pdfBytes, err = uc.generator.GenerateOccupancyPDF(ctx, chamber, stats, occs)
	if err != nil {
		return nil, "", fmt.Errorf("report: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("ocupacion_%s_%s.pdf", chamber.Code, time.Now().Format("20060102"))
	return pdfBytes, filename, nil
}
