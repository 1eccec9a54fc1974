package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/ganeshsutar/coldstrg-sub001/internal/application/dto"
	"github.com/ganeshsutar/coldstrg-sub001/internal/application/warehouse"
)

// MovementHandler maneja las escrituras y consultas del libro de movimientos
// (protegido).
type MovementHandler struct {
	uc *warehouse.RegisterMovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *warehouse.RegisterMovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// RegisterLoading godoc
// @Summary      Registrar carga en un rack
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "amad, coordenada y cantidad"
// @Success      201   {object}  dto.MovementResponse
// @Failure      409   {object}  dto.ErrorResponse  "Capacidad excedida o cámara inactiva"
// @Failure      422   {object}  dto.ErrorResponse  "Coordenada sin configurar"
// @Router       /api/movements/loading [post]
func (h *MovementHandler) RegisterLoading(c *fiber.Ctx) error {
	return h.register(c, h.uc.RegisterLoading)
}

// RegisterUnloading godoc
// @Summary      Registrar descarga de un rack
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "amad, coordenada y cantidad"
// @Success      201   {object}  dto.MovementResponse
// @Failure      409   {object}  dto.ErrorResponse  "Saldo insuficiente del amad en el rack"
// @Router       /api/movements/unloading [post]
func (h *MovementHandler) RegisterUnloading(c *fiber.Ctx) error {
	return h.register(c, h.uc.RegisterUnloading)
}

// VoidMovement godoc
// @Summary      Anular un movimiento del libro
// @Description  Anexa un evento VOID que referencia al original; nada se edita in situ
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento a anular"
// @Success      201  {object}  dto.MovementResponse
// @Failure      409  {object}  dto.ErrorResponse  "Ya anulado, lado de un traslado, o dejaría saldo negativo"
// @Router       /api/movements/{id}/void [post]
func (h *MovementHandler) VoidMovement(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	userID := GetUserID(c)
	movementID := c.Params("id")
	out, err := h.uc.VoidMovement(c.Context(), organizationID, userID, movementID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos por cámara o por amad
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        chamber_id  query  string  false  "Filtrar por cámara"
// @Param        amad_id     query  string  false  "Filtrar por amad"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse  "Falta el filtro"
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	chamberID := c.Query("chamber_id")
	amadID := c.Query("amad_id")

	switch {
	case chamberID != "":
		out, err := h.uc.ListByChamber(organizationID, chamberID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	case amadID != "":
		out, err := h.uc.ListByAmad(organizationID, amadID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "chamber_id o amad_id es requerido"})
}

func (h *MovementHandler) register(
	c *fiber.Ctx,
	fn func(ctx context.Context, organizationID, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error),
) error {
	organizationID := GetOrganizationID(c)
	userID := GetUserID(c)
	if organizationID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := fn(c.Context(), organizationID, userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
