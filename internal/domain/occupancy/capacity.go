package occupancy

import (
	"github.com/shopspring/decimal"

	"github.com/ganeshsutar/coldstrg-sub001/internal/domain"
)

// CheckCapacity rechaza una carga que dejaría el rack por encima de su
// capacidad. Es el guardián de admisión: necesario pero no suficiente bajo
// concurrencia, porque dos llamadores pueden pasar el chequeo contra la misma
// foto vieja del libro. El que escribe debe repetir este chequeo dentro de la
// transacción, con el rack serializado (ver capa de aplicación).
func CheckCapacity(capacity, current, add decimal.Decimal) error {
	if add.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if capacity.GreaterThan(decimal.Zero) && current.Add(add).GreaterThan(capacity) {
		return domain.ErrCapacityExceeded
	}
	return nil
}

// CheckSource rechaza un débito mayor que el saldo disponible.
func CheckSource(available, take decimal.Decimal) error {
	if take.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if available.LessThan(take) {
		return domain.ErrInsufficientSource
	}
	return nil
}
