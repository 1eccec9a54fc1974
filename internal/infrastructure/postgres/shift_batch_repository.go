package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/repository"
)

var _ repository.ShiftBatchRepository = (*ShiftBatchRepo)(nil)

// ShiftBatchRepo implementación de ShiftBatchRepository sobre PostgreSQL
// (usable con pool o tx).
type ShiftBatchRepo struct {
	q Querier
}

// NewShiftBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShiftBatchRepository(q Querier) *ShiftBatchRepo {
	return &ShiftBatchRepo{q: q}
}

// Create persiste el header de un lote de traslado.
func (r *ShiftBatchRepo) Create(batch *entity.ShiftBatch) error {
	query := `
		INSERT INTO shift_batches (id, organization_id, source_chamber_id, destination_chamber_id, date, reason, total_quantity, status, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.OrganizationID, batch.SourceChamberID,
		batch.DestinationChamberID, batch.Date, batch.Reason,
		batch.TotalQuantity, batch.Status, batch.CreatedAt, nullable(batch.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("create shift batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *ShiftBatchRepo) GetByID(id string) (*entity.ShiftBatch, error) {
	query := shiftBatchSelect + ` WHERE id = $1`
	var b entity.ShiftBatch
	err := scanShiftBatch(r.q.QueryRow(context.Background(), query, id), &b)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shift batch: %w", err)
	}
	return &b, nil
}

// ListByOrganization lista lotes de una organización, más recientes primero.
func (r *ShiftBatchRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.ShiftBatch, error) {
	query := shiftBatchSelect + ` WHERE organization_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list shift batches: %w", err)
	}
	defer rows.Close()
	var list []*entity.ShiftBatch
	for rows.Next() {
		var b entity.ShiftBatch
		if err := scanShiftBatch(rows, &b); err != nil {
			return nil, fmt.Errorf("scan shift batch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

const shiftBatchSelect = `
	SELECT id, organization_id, source_chamber_id, destination_chamber_id, date, reason, total_quantity, status, created_at, created_by
	FROM shift_batches`

func scanShiftBatch(row pgx.Row, b *entity.ShiftBatch) error {
	var createdBy *string
	err := row.Scan(
		&b.ID, &b.OrganizationID, &b.SourceChamberID, &b.DestinationChamberID,
		&b.Date, &b.Reason, &b.TotalQuantity, &b.Status, &b.CreatedAt, &createdBy,
	)
	if err != nil {
		return err
	}
	b.CreatedBy = deref(createdBy)
	return nil
}
