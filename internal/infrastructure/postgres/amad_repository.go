package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/repository"
)

var _ repository.AmadRepository = (*AmadRepo)(nil)

// AmadRepo implementación de solo lectura de AmadRepository sobre PostgreSQL.
// Los amads los escribe otro servicio; aquí solo se consultan.
type AmadRepo struct {
	q Querier
}

// NewAmadRepository construye el adaptador de lectura de amads.
func NewAmadRepository(q Querier) *AmadRepo {
	return &AmadRepo{q: q}
}

// GetByID obtiene un amad por ID.
func (r *AmadRepo) GetByID(id string) (*entity.Amad, error) {
	query := amadSelect + ` WHERE id = $1`
	var a entity.Amad
	err := scanAmad(r.q.QueryRow(context.Background(), query, id), &a)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get amad: %w", err)
	}
	return &a, nil
}

// ListByOrganization lista amads de una organización con paginación.
func (r *AmadRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.Amad, error) {
	query := amadSelect + ` WHERE organization_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list amads: %w", err)
	}
	defer rows.Close()
	var list []*entity.Amad
	for rows.Next() {
		var a entity.Amad
		if err := scanAmad(rows, &a); err != nil {
			return nil, fmt.Errorf("scan amad: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

const amadSelect = `
	SELECT id, organization_id, party_name, commodity_name, sub_unit, available_qty, created_at
	FROM amads`

func scanAmad(row pgx.Row, a *entity.Amad) error {
	return row.Scan(
		&a.ID, &a.OrganizationID, &a.PartyName, &a.CommodityName,
		&a.SubUnit, &a.AvailableQty, &a.CreatedAt,
	)
}
