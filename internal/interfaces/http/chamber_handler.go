package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ganeshsutar/coldstrg-sub001/internal/application/dto"
	"github.com/ganeshsutar/coldstrg-sub001/internal/application/usecase"
)

// ChamberHandler maneja las peticiones HTTP para cámaras (protegido).
type ChamberHandler struct {
	uc *usecase.ChamberUseCase
}

// NewChamberHandler construye el handler.
func NewChamberHandler(uc *usecase.ChamberUseCase) *ChamberHandler {
	return &ChamberHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cámara de frío
// @Tags         chambers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateChamberRequest  true  "Datos de la cámara; generate_floors=true auto-genera los pisos"
// @Success      201   {object}  dto.ChamberResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/chambers [post]
func (h *ChamberHandler) Create(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	if organizationID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	var in dto.CreateChamberRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(organizationID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener cámara por ID
// @Tags         chambers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cámara"
// @Success      200  {object}  dto.ChamberResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chambers/{id} [get]
func (h *ChamberHandler) GetByID(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(organizationID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cámara (active=false es baja suave)
// @Tags         chambers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la cámara"
// @Param        body  body  dto.UpdateChamberRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ChamberResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/chambers/{id} [put]
func (h *ChamberHandler) Update(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	id := c.Params("id")
	var in dto.UpdateChamberRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(organizationID, id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar cámara sin historial (con movimientos, usar baja suave)
// @Tags         chambers
// @Security     Bearer
// @Param        id  path  string  true  "ID de la cámara"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/chambers/{id} [delete]
func (h *ChamberHandler) Delete(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(organizationID, id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar cámaras de la organización
// @Tags         chambers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ChamberListResponse
// @Router       /api/chambers [get]
func (h *ChamberHandler) List(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	limit, offset := pageParams(c)
	out, err := h.uc.List(organizationID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// pageParams lee limit/offset con defaults y tope.
func pageParams(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
