package warehouse

import (
	"context"

	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el rechequeo de capacidad, el
// header del traslado y el par débito/crédito se comprometan todos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		batchRepo repository.ShiftBatchRepository,
	) error) error
}
