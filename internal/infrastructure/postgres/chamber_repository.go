package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/repository"
)

var _ repository.ChamberRepository = (*ChamberRepo)(nil)

// ChamberRepo implementación del puerto ChamberRepository sobre PostgreSQL.
type ChamberRepo struct {
	q Querier
}

// NewChamberRepository construye el adaptador de persistencia para cámaras.
func NewChamberRepository(q Querier) *ChamberRepo {
	return &ChamberRepo{q: q}
}

// Create persiste una nueva cámara.
func (r *ChamberRepo) Create(chamber *entity.Chamber) error {
	query := `
		INSERT INTO chambers (id, organization_id, code, room_number, name, floor_count, total_racks, racks_per_row, rack_capacity, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		chamber.ID, chamber.OrganizationID, chamber.Code, chamber.RoomNumber,
		chamber.Name, chamber.FloorCount, chamber.TotalRacks, chamber.RacksPerRow,
		chamber.RackCapacity, chamber.Active, chamber.CreatedAt, chamber.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert chamber", err)
	}
	return nil
}

// GetByID obtiene una cámara por ID.
func (r *ChamberRepo) GetByID(id string) (*entity.Chamber, error) {
	query := chamberSelect + ` WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByCode obtiene una cámara por código dentro de una organización.
func (r *ChamberRepo) GetByCode(organizationID, code string) (*entity.Chamber, error) {
	query := chamberSelect + ` WHERE organization_id = $1 AND code = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, organizationID, code))
}

// Update actualiza una cámara existente.
func (r *ChamberRepo) Update(chamber *entity.Chamber) error {
	query := `
		UPDATE chambers
		SET room_number = $2, name = $3, racks_per_row = $4, rack_capacity = $5, active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		chamber.ID, chamber.RoomNumber, chamber.Name, chamber.RacksPerRow,
		chamber.RackCapacity, chamber.Active, chamber.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update chamber: %w", err)
	}
	return nil
}

// Delete borra una cámara de forma definitiva.
func (r *ChamberRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM chambers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete chamber: %w", err)
	}
	return nil
}

// ListByOrganization lista cámaras de una organización con paginación.
func (r *ChamberRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.Chamber, error) {
	query := chamberSelect + ` WHERE organization_id = $1 ORDER BY code LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list chambers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Chamber
	for rows.Next() {
		var c entity.Chamber
		if err := scanChamber(rows, &c); err != nil {
			return nil, fmt.Errorf("scan chamber: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

const chamberSelect = `
	SELECT id, organization_id, code, room_number, name, floor_count, total_racks, racks_per_row, rack_capacity, active, created_at, updated_at
	FROM chambers`

func (r *ChamberRepo) scanOne(row pgx.Row) (*entity.Chamber, error) {
	var c entity.Chamber
	if err := scanChamber(row, &c); err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chamber: %w", err)
	}
	return &c, nil
}

func scanChamber(row pgx.Row, c *entity.Chamber) error {
	return row.Scan(
		&c.ID, &c.OrganizationID, &c.Code, &c.RoomNumber, &c.Name,
		&c.FloorCount, &c.TotalRacks, &c.RacksPerRow, &c.RackCapacity,
		&c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
}
