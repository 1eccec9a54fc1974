package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ganeshsutar/coldstrg-sub001/internal/application/dto"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain"
)

// respondError traduce los errores de dominio al status y código HTTP. Los
// handlers comparten esta tabla para que un mismo error se vea igual en toda
// la API.
func respondError(c *fiber.Ctx, err error) error {
	var overlapErr *domain.FloorOverlapError
	if errors.As(err, &overlapErr) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "FLOOR_OVERLAP",
			Message: "configuración de pisos solapada",
			Details: overlapErr.Overlaps,
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrChamberInactive):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CHAMBER_INACTIVE", Message: "la cámara está desactivada"})
	case errors.Is(err, domain.ErrUnconfiguredRack):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNCONFIGURED_RACK", Message: "la coordenada no está cubierta por ningún piso"})
	case errors.Is(err, domain.ErrCapacityExceeded):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CAPACITY_EXCEEDED", Message: "la carga excede la capacidad del rack"})
	case errors.Is(err, domain.ErrInsufficientSource):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_SOURCE", Message: "saldo insuficiente en el rack de origen"})
	case errors.Is(err, domain.ErrFloorConfiguration):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "FLOOR_CONFIGURATION", Message: err.Error()})
	case errors.Is(err, domain.ErrPartialShift):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PARTIAL_SHIFT", Message: "el traslado fue revertido por un fallo de escritura"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
