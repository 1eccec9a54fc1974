package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/repository"
)

var _ repository.FloorRepository = (*FloorRepo)(nil)

// FloorRepo implementación del puerto FloorRepository sobre PostgreSQL.
type FloorRepo struct {
	q Querier
}

// NewFloorRepository construye el adaptador de persistencia para pisos.
func NewFloorRepository(q Querier) *FloorRepo {
	return &FloorRepo{q: q}
}

// Create persiste un nuevo piso.
func (r *FloorRepo) Create(floor *entity.Floor) error {
	query := `
		INSERT INTO floors (id, chamber_id, floor_number, from_rack, to_rack, racks_per_row, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		floor.ID, floor.ChamberID, floor.FloorNumber, floor.FromRack,
		floor.ToRack, floor.RacksPerRow, floor.CreatedAt, floor.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert floor", err)
	}
	return nil
}

// CreateAll persiste los pisos auto-generados de una cámara nueva.
func (r *FloorRepo) CreateAll(floors []*entity.Floor) error {
	for _, f := range floors {
		if err := r.Create(f); err != nil {
			return err
		}
	}
	return nil
}

// GetByID obtiene un piso por ID.
func (r *FloorRepo) GetByID(id string) (*entity.Floor, error) {
	query := floorSelect + ` WHERE id = $1`
	var f entity.Floor
	err := scanFloor(r.q.QueryRow(context.Background(), query, id), &f)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get floor: %w", err)
	}
	return &f, nil
}

// Update actualiza el rango de un piso existente.
func (r *FloorRepo) Update(floor *entity.Floor) error {
	query := `
		UPDATE floors
		SET from_rack = $2, to_rack = $3, racks_per_row = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		floor.ID, floor.FromRack, floor.ToRack, floor.RacksPerRow, floor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update floor: %w", err)
	}
	return nil
}

// Delete elimina un piso.
func (r *FloorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM floors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete floor: %w", err)
	}
	return nil
}

// ListByChamber lista los pisos de una cámara ordenados por número.
func (r *FloorRepo) ListByChamber(chamberID string) ([]*entity.Floor, error) {
	query := floorSelect + ` WHERE chamber_id = $1 ORDER BY floor_number`
	rows, err := r.q.Query(context.Background(), query, chamberID)
	if err != nil {
		return nil, fmt.Errorf("list floors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Floor
	for rows.Next() {
		var f entity.Floor
		if err := scanFloor(rows, &f); err != nil {
			return nil, fmt.Errorf("scan floor: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

const floorSelect = `
	SELECT id, chamber_id, floor_number, from_rack, to_rack, racks_per_row, created_at, updated_at
	FROM floors`

func scanFloor(row pgx.Row, f *entity.Floor) error {
	return row.Scan(
		&f.ID, &f.ChamberID, &f.FloorNumber, &f.FromRack, &f.ToRack,
		&f.RacksPerRow, &f.CreatedAt, &f.UpdatedAt,
	)
}
