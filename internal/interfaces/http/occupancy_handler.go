package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/ganeshsutar/coldstrg-sub001/internal/application/dto"
	"github.com/ganeshsutar/coldstrg-sub001/internal/application/warehouse"
)

// OccupancyHandler maneja las consultas derivadas de ocupación (protegido).
type OccupancyHandler struct {
	uc *warehouse.OccupancyUseCase
}

// NewOccupancyHandler construye el handler.
func NewOccupancyHandler(uc *warehouse.OccupancyUseCase) *OccupancyHandler {
	return &OccupancyHandler{uc: uc}
}

// GetRackOccupancy godoc
// @Summary      Ocupación por rack de una cámara
// @Description  Proyección recalculada del libro en cada llamada; nunca cacheada
// @Tags         occupancy
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cámara"
// @Success      200  {array}   dto.RackOccupancyDTO
// @Failure      409  {object}  dto.ErrorResponse  "Pisos solapados"
// @Router       /api/chambers/{id}/occupancy [get]
func (h *OccupancyHandler) GetRackOccupancy(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	chamberID := c.Params("id")
	out, err := h.uc.GetRackOccupancy(organizationID, chamberID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetChamberStats godoc
// @Summary      Resumen derivado de la cámara
// @Tags         occupancy
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cámara"
// @Success      200  {object}  dto.ChamberStatsDTO
// @Router       /api/chambers/{id}/stats [get]
func (h *OccupancyHandler) GetChamberStats(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	chamberID := c.Params("id")
	out, err := h.uc.GetChamberStats(organizationID, chamberID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CheckCapacity godoc
// @Summary      Pre-chequeo de capacidad para una carga
// @Description  Orientativo: la admisión definitiva se repite en la transacción de escritura
// @Tags         occupancy
// @Security     Bearer
// @Produce      json
// @Param        id        path   string  true  "ID de la cámara"
// @Param        floor     query  int     true  "Número de piso"
// @Param        rack      query  int     true  "Número de rack"
// @Param        quantity  query  string  true  "Cantidad a cargar"
// @Success      200  {object}  dto.CapacityCheckResponse
// @Failure      422  {object}  dto.ErrorResponse  "Coordenada sin configurar"
// @Router       /api/chambers/{id}/capacity-check [get]
func (h *OccupancyHandler) CheckCapacity(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	chamberID := c.Params("id")
	floor := c.QueryInt("floor", 0)
	rack := c.QueryInt("rack", 0)
	quantity, err := decimal.NewFromString(c.Query("quantity", "0"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity inválida"})
	}
	out, err := h.uc.CheckCapacity(organizationID, chamberID, floor, rack, quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetOverride godoc
// @Summary      Marcar un rack como RESERVED o MAINTENANCE
// @Tags         occupancy
// @Security     Bearer
// @Accept       json
// @Param        id    path  string                  true  "ID de la cámara"
// @Param        body  body  dto.SetOverrideRequest  true  "Coordenada y estado manual"
// @Success      204
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/chambers/{id}/overrides [put]
func (h *OccupancyHandler) SetOverride(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	userID := GetUserID(c)
	chamberID := c.Params("id")
	var in dto.SetOverrideRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetOverride(organizationID, chamberID, userID, in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ClearOverride godoc
// @Summary      Quitar la marca manual de un rack
// @Tags         occupancy
// @Security     Bearer
// @Param        id     path   string  true  "ID de la cámara"
// @Param        floor  query  int     true  "Número de piso"
// @Param        rack   query  int     true  "Número de rack"
// @Success      204
// @Router       /api/chambers/{id}/overrides [delete]
func (h *OccupancyHandler) ClearOverride(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	chamberID := c.Params("id")
	floor := c.QueryInt("floor", 0)
	rack := c.QueryInt("rack", 0)
	if err := h.uc.ClearOverride(organizationID, chamberID, floor, rack); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
