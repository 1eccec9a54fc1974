package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ganeshsutar/coldstrg-sub001/internal/application/dto"
	"github.com/ganeshsutar/coldstrg-sub001/internal/application/usecase"
)

// FloorHandler maneja las peticiones HTTP para pisos (protegido).
type FloorHandler struct {
	uc *usecase.FloorUseCase
}

// NewFloorHandler construye el handler.
func NewFloorHandler(uc *usecase.FloorUseCase) *FloorHandler {
	return &FloorHandler{uc: uc}
}

// Create godoc
// @Summary      Agregar un piso a la cámara
// @Tags         floors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la cámara"
// @Param        body  body  dto.CreateFloorRequest  true  "Rango de racks del piso"
// @Success      201   {object}  dto.FloorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Solapamiento o número de piso duplicado"
// @Router       /api/chambers/{id}/floors [post]
func (h *FloorHandler) Create(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	chamberID := c.Params("id")
	var in dto.CreateFloorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(organizationID, chamberID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByChamber godoc
// @Summary      Listar pisos de una cámara
// @Tags         floors
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cámara"
// @Success      200  {array}   dto.FloorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chambers/{id}/floors [get]
func (h *FloorHandler) ListByChamber(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	chamberID := c.Params("id")
	out, err := h.uc.ListByChamber(organizationID, chamberID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Cambiar el rango de un piso
// @Description  Rechaza encoger el rango por fuera de un rack con saldo
// @Tags         floors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del piso"
// @Param        body  body  dto.UpdateFloorRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.FloorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/floors/{id} [put]
func (h *FloorHandler) Update(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	floorID := c.Params("id")
	var in dto.UpdateFloorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(organizationID, floorID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un piso sin mercadería en su rango
// @Tags         floors
// @Security     Bearer
// @Param        id  path  string  true  "ID del piso"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse  "El rango tiene racks con saldo"
// @Router       /api/floors/{id} [delete]
func (h *FloorHandler) Delete(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	floorID := c.Params("id")
	if err := h.uc.Delete(organizationID, floorID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
