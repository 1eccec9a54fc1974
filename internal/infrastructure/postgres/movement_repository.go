package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). La tabla es append-only: no hay UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create anexa un evento al libro.
func (r *MovementRepo) Create(event *entity.MovementEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movement_events (id, organization_id, amad_id, chamber_id, floor_number, rack_number, type, quantity, shift_batch_id, void_of, date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.OrganizationID, nullable(event.AmadID), event.ChamberID,
		event.FloorNumber, event.RackNumber, event.Type, event.Quantity,
		nullable(event.ShiftBatchID), nullable(event.VoidOf),
		event.Date, event.CreatedAt, nullable(event.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("create movement event: %w", err)
	}
	return nil
}

// GetByID obtiene un evento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.MovementEvent, error) {
	query := movementSelect + ` WHERE id = $1`
	var m entity.MovementEvent
	err := scanMovement(r.q.QueryRow(context.Background(), query, id), &m)
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement event: %w", err)
	}
	return &m, nil
}

// ListByChamber devuelve el libro completo de una cámara. El proyector
// necesita todos los eventos, sin paginación: el orden no afecta al fold.
func (r *MovementRepo) ListByChamber(chamberID string) ([]*entity.MovementEvent, error) {
	query := movementSelect + ` WHERE chamber_id = $1 ORDER BY created_at`
	return r.list(query, chamberID)
}

// ListByAmad lista los eventos que tocaron a un amad, en cualquier cámara.
func (r *MovementRepo) ListByAmad(amadID string) ([]*entity.MovementEvent, error) {
	query := movementSelect + ` WHERE amad_id = $1 ORDER BY created_at`
	return r.list(query, amadID)
}

// ListByRack lista el libro de una sola coordenada.
func (r *MovementRepo) ListByRack(chamberID string, floorNumber, rackNumber int) ([]*entity.MovementEvent, error) {
	query := movementSelect + ` WHERE chamber_id = $1 AND floor_number = $2 AND rack_number = $3 ORDER BY created_at`
	return r.list(query, chamberID, floorNumber, rackNumber)
}

// ExistsByChamber indica si la cámara tiene algún movimiento registrado.
func (r *MovementRepo) ExistsByChamber(chamberID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM movement_events WHERE chamber_id = $1)`, chamberID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by chamber: %w", err)
	}
	return exists, nil
}

// LockRack toma un advisory lock transaccional sobre la coordenada. Se libera
// solo en el Commit/Rollback de la transacción en curso; llamado fuera de una
// transacción no serializa nada útil.
func (r *MovementRepo) LockRack(chamberID string, floorNumber, rackNumber int) error {
	key := fmt.Sprintf("%s|%d|%d", chamberID, floorNumber, rackNumber)
	_, err := r.q.Exec(context.Background(),
		`SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key,
	)
	if err != nil {
		return fmt.Errorf("lock rack %s: %w", key, err)
	}
	return nil
}

// LockAmad toma un advisory lock transaccional sobre el amad, con el mismo
// esquema que LockRack. El prefijo separa el espacio de claves del de las
// coordenadas.
func (r *MovementRepo) LockAmad(amadID string) error {
	_, err := r.q.Exec(context.Background(),
		`SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, "amad|"+amadID,
	)
	if err != nil {
		return fmt.Errorf("lock amad %s: %w", amadID, err)
	}
	return nil
}

func (r *MovementRepo) list(query string, args ...any) ([]*entity.MovementEvent, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movement events: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementEvent
	for rows.Next() {
		var m entity.MovementEvent
		if err := scanMovement(rows, &m); err != nil {
			return nil, fmt.Errorf("scan movement event: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

const movementSelect = `
	SELECT id, organization_id, amad_id, chamber_id, floor_number, rack_number, type, quantity, shift_batch_id, void_of, date, created_at, created_by
	FROM movement_events`

func scanMovement(row pgx.Row, m *entity.MovementEvent) error {
	var amadID, shiftBatchID, voidOf, createdBy *string
	err := row.Scan(
		&m.ID, &m.OrganizationID, &amadID, &m.ChamberID, &m.FloorNumber,
		&m.RackNumber, &m.Type, &m.Quantity, &shiftBatchID, &voidOf,
		&m.Date, &m.CreatedAt, &createdBy,
	)
	if err != nil {
		return err
	}
	m.AmadID = deref(amadID)
	m.ShiftBatchID = deref(shiftBatchID)
	m.VoidOf = deref(voidOf)
	m.CreatedBy = deref(createdBy)
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
