package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ganeshsutar/coldstrg-sub001/internal/application/report"
)

// ReportHandler descarga de la planilla de ocupación en PDF (protegido).
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// DownloadOccupancyPDF godoc
// @Summary      Descargar planilla de ocupación en PDF
// @Description  Proyección de la cámara al momento de la descarga, en formato imprimible
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la cámara"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chambers/{id}/report.pdf [get]
func (h *ReportHandler) DownloadOccupancyPDF(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	chamberID := c.Params("id")
	pdfBytes, filename, err := h.uc.DownloadOccupancyPDF(c.Context(), organizationID, chamberID)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
