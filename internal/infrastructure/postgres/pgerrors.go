package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ganeshsutar/coldstrg-sub001/internal/domain"
)

// Traducción de errores del driver a los centinelas del dominio. Ningún
// adaptador deja escapar un SQLSTATE crudo: el caso de uso ve ErrDuplicate
// o un error envuelto con el contexto de la operación.

// writeErr envuelve un error de escritura. Una violación de constraint único
// (23505) se vuelve domain.ErrDuplicate.
func writeErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrDuplicate
	}
	if strings.Contains(err.Error(), "23505") {
		return domain.ErrDuplicate
	}
	return fmt.Errorf("%s: %w", op, err)
}

// noRows indica ausencia de filas en un Get. Los adaptadores la traducen a
// (nil, nil); decidir si eso es ErrNotFound le toca al caso de uso.
func noRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
