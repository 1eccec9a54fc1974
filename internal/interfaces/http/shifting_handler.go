package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ganeshsutar/coldstrg-sub001/internal/application/dto"
	"github.com/ganeshsutar/coldstrg-sub001/internal/application/warehouse"
)

// ShiftingHandler maneja el commit y consulta de traslados (protegido).
type ShiftingHandler struct {
	uc *warehouse.ShiftCoordinator
}

// NewShiftingHandler construye el handler.
func NewShiftingHandler(uc *warehouse.ShiftCoordinator) *ShiftingHandler {
	return &ShiftingHandler{uc: uc}
}

// CommitShift godoc
// @Summary      Comprometer un traslado entre racks
// @Description  Escribe header + pares SHIFT_OUT/SHIFT_IN en una sola transacción, revalidando saldo y capacidad
// @Tags         shifts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CommitShiftRequest  true  "Origen, destino, amad y líneas"
// @Success      201   {object}  dto.ShiftBatchResponse
// @Failure      409   {object}  dto.ErrorResponse  "Saldo insuficiente o capacidad de destino excedida"
// @Router       /api/shifts [post]
func (h *ShiftingHandler) CommitShift(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	userID := GetUserID(c)
	if organizationID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CommitShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CommitShift(c.Context(), organizationID, userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener un lote de traslado
// @Tags         shifts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  dto.ShiftBatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shifts/{id} [get]
func (h *ShiftingHandler) GetByID(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	id := c.Params("id")
	out, err := h.uc.GetByID(organizationID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar lotes de traslado de la organización
// @Tags         shifts
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ShiftListResponse
// @Router       /api/shifts [get]
func (h *ShiftingHandler) List(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	limit, offset := pageParams(c)
	out, err := h.uc.List(organizationID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
