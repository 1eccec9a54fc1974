package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrChamberInactive    = errors.New("cámara inactiva")
	ErrUnconfiguredRack   = errors.New("rack fuera de todo piso configurado")
	ErrCapacityExceeded   = errors.New("capacidad del rack excedida")
	ErrInsufficientSource = errors.New("cantidad insuficiente en el rack de origen")
	ErrFloorConfiguration = errors.New("configuración de pisos inválida")
	ErrPartialShift       = errors.New("traslado incompleto: un lado del par no se escribió")
)

// FloorOverlap describe un par de pisos cuyos rangos de racks se solapan.
type FloorOverlap struct {
	FloorA   int
	FloorB   int
	FromRack int // inicio del tramo solapado
	ToRack   int // fin del tramo solapado
}

// FloorOverlapError reporta los solapamientos detectados en los pisos de una
// cámara. Se devuelve sin corregir nada: la configuración la arregla el
// operador, nunca el motor.
type FloorOverlapError struct {
	ChamberID string
	Overlaps  []FloorOverlap
}

func (e *FloorOverlapError) Error() string {
	return fmt.Sprintf("configuración de pisos inválida en cámara %s: %d solapamiento(s)", e.ChamberID, len(e.Overlaps))
}

// Is permite errors.Is(err, ErrFloorConfiguration).
func (e *FloorOverlapError) Is(target error) bool {
	return target == ErrFloorConfiguration
}
