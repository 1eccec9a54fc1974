package postgres

import (
	"context"
	"fmt"

	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/repository"
)

var _ repository.RackOverrideRepository = (*RackOverrideRepo)(nil)

// RackOverrideRepo implementación de RackOverrideRepository sobre PostgreSQL.
// Clave primaria compuesta (chamber_id, floor_number, rack_number): un rack
// tiene a lo sumo una marca manual vigente.
type RackOverrideRepo struct {
	q Querier
}

// NewRackOverrideRepository construye el adaptador de marcas manuales.
func NewRackOverrideRepository(q Querier) *RackOverrideRepo {
	return &RackOverrideRepo{q: q}
}

// Upsert inserta o reemplaza la marca de una coordenada.
func (r *RackOverrideRepo) Upsert(override *entity.RackOverride) error {
	query := `
		INSERT INTO rack_overrides (chamber_id, floor_number, rack_number, state, reason, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, now(), $6)
		ON CONFLICT (chamber_id, floor_number, rack_number)
		DO UPDATE SET state = EXCLUDED.state, reason = EXCLUDED.reason, created_at = now(), created_by = EXCLUDED.created_by`
	_, err := r.q.Exec(context.Background(), query,
		override.ChamberID, override.FloorNumber, override.RackNumber,
		override.State, override.Reason, nullable(override.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("upsert rack override: %w", err)
	}
	return nil
}

// Delete quita la marca de una coordenada. Borrar una marca inexistente no es error.
func (r *RackOverrideRepo) Delete(chamberID string, floorNumber, rackNumber int) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM rack_overrides WHERE chamber_id = $1 AND floor_number = $2 AND rack_number = $3`,
		chamberID, floorNumber, rackNumber,
	)
	if err != nil {
		return fmt.Errorf("delete rack override: %w", err)
	}
	return nil
}

// ListByChamber lista las marcas vigentes de una cámara.
func (r *RackOverrideRepo) ListByChamber(chamberID string) ([]*entity.RackOverride, error) {
	query := `
		SELECT chamber_id, floor_number, rack_number, state, reason, created_at, created_by
		FROM rack_overrides WHERE chamber_id = $1`
	rows, err := r.q.Query(context.Background(), query, chamberID)
	if err != nil {
		return nil, fmt.Errorf("list rack overrides: %w", err)
	}
	defer rows.Close()
	var list []*entity.RackOverride
	for rows.Next() {
		var o entity.RackOverride
		var createdBy *string
		if err := rows.Scan(&o.ChamberID, &o.FloorNumber, &o.RackNumber,
			&o.State, &o.Reason, &o.CreatedAt, &createdBy); err != nil {
			return nil, fmt.Errorf("scan rack override: %w", err)
		}
		o.CreatedBy = deref(createdBy)
		list = append(list, &o)
	}
	return list, rows.Err()
}
