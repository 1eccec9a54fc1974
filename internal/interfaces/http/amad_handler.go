package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ganeshsutar/coldstrg-sub001/internal/application/usecase"
)

// AmadHandler consultas de solo lectura sobre amads (protegido).
type AmadHandler struct {
	uc *usecase.AmadUseCase
}

// NewAmadHandler construye el handler.
func NewAmadHandler(uc *usecase.AmadUseCase) *AmadHandler {
	return &AmadHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obtener amad por ID
// @Tags         amads
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del amad"
// @Success      200  {object}  dto.AmadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/amads/{id} [get]
func (h *AmadHandler) GetByID(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	id := c.Params("id")
	out, err := h.uc.GetByID(organizationID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar amads de la organización
// @Tags         amads
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.AmadListResponse
// @Router       /api/amads [get]
func (h *AmadHandler) List(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	limit, offset := pageParams(c)
	out, err := h.uc.List(organizationID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
