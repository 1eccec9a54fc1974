package warehouse_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"
	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los puertos de persistencia. El txRunner falso hace
// snapshot/restore del estado para imitar Commit/Rollback: si fn devuelve
// error, el almacén vuelve exactamente a como estaba.
// ──────────────────────────────────────────────────────────────────────────────

var errForcedWrite = errors.New("fallo forzado de escritura")

type memStore struct {
	chambers  map[string]*entity.Chamber
	floors    map[string][]*entity.Floor
	amads     map[string]*entity.Amad
	events    []*entity.MovementEvent
	batches   map[string]*entity.ShiftBatch
	overrides map[string]*entity.RackOverride

	// failCreateAt fuerza el fallo del n-ésimo Create de movimientos dentro
	// de la transacción en curso (base 1); 0 desactiva el fallo.
	failCreateAt int
	createCount  int

	// onLockAmad corre al tomar el lock del amad. Simula al competidor que
	// comprometió su escritura justo antes de que este escritor serialice.
	onLockAmad func()
}

func newMemStore() *memStore {
	return &memStore{
		chambers: make(map[string]*entity.Chamber),
		floors:   make(map[string][]*entity.Floor),
		amads:    make(map[string]*entity.Amad),
		batches:  make(map[string]*entity.ShiftBatch),
	}
}

func (s *memStore) addChamber(id string, capacity int64, active bool) *entity.Chamber {
	c := &entity.Chamber{
		ID:             id,
		OrganizationID: testOrgID,
		Code:           "C-" + id,
		Name:           "Cámara " + id,
		FloorCount:     1,
		TotalRacks:     10,
		RackCapacity:   decimal.NewFromInt(capacity),
		Active:         active,
	}
	s.chambers[id] = c
	return c
}

func (s *memStore) addFloor(chamberID string, number, from, to int) {
	s.floors[chamberID] = append(s.floors[chamberID], &entity.Floor{
		ID:          fmt.Sprintf("%s-f%d", chamberID, number),
		ChamberID:   chamberID,
		FloorNumber: number,
		FromRack:    from,
		ToRack:      to,
	})
}

func (s *memStore) addAmad(id string, available int64) *entity.Amad {
	a := &entity.Amad{
		ID:             id,
		OrganizationID: testOrgID,
		PartyName:      "Parte " + id,
		CommodityName:  "Papa",
		SubUnit:        "bulto 50kg",
		AvailableQty:   decimal.NewFromInt(available),
	}
	s.amads[id] = a
	return a
}

func (s *memStore) addEvent(kind, chamberID string, floor, rack int, qty int64, amadID string) {
	s.events = append(s.events, &entity.MovementEvent{
		ID:             fmt.Sprintf("seed-%d", len(s.events)+1),
		OrganizationID: testOrgID,
		AmadID:         amadID,
		ChamberID:      chamberID,
		FloorNumber:    floor,
		RackNumber:     rack,
		Type:           kind,
		Quantity:       decimal.NewFromInt(qty),
		Date:           time.Now(),
		CreatedAt:      time.Now(),
	})
}

// ── Repos ────────────────────────────────────────────────────────────────────

type memChamberRepo struct{ store *memStore }

func (r *memChamberRepo) Create(c *entity.Chamber) error { r.store.chambers[c.ID] = c; return nil }
func (r *memChamberRepo) GetByID(id string) (*entity.Chamber, error) {
	return r.store.chambers[id], nil
}
func (r *memChamberRepo) GetByCode(orgID, code string) (*entity.Chamber, error) {
	for _, c := range r.store.chambers {
		if c.OrganizationID == orgID && c.Code == code {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memChamberRepo) Update(c *entity.Chamber) error { r.store.chambers[c.ID] = c; return nil }
func (r *memChamberRepo) Delete(id string) error         { delete(r.store.chambers, id); return nil }
func (r *memChamberRepo) ListByOrganization(orgID string, limit, offset int) ([]*entity.Chamber, error) {
	var out []*entity.Chamber
	for _, c := range r.store.chambers {
		if c.OrganizationID == orgID {
			out = append(out, c)
		}
	}
	return out, nil
}

type memFloorRepo struct{ store *memStore }

func (r *memFloorRepo) Create(f *entity.Floor) error {
	r.store.floors[f.ChamberID] = append(r.store.floors[f.ChamberID], f)
	return nil
}
func (r *memFloorRepo) CreateAll(floors []*entity.Floor) error {
	for _, f := range floors {
		if err := r.Create(f); err != nil {
			return err
		}
	}
	return nil
}
func (r *memFloorRepo) GetByID(id string) (*entity.Floor, error) {
	for _, floors := range r.store.floors {
		for _, f := range floors {
			if f.ID == id {
				return f, nil
			}
		}
	}
	return nil, nil
}
func (r *memFloorRepo) Update(f *entity.Floor) error {
	floors := r.store.floors[f.ChamberID]
	for i := range floors {
		if floors[i].ID == f.ID {
			floors[i] = f
		}
	}
	return nil
}
func (r *memFloorRepo) Delete(id string) error {
	for chamberID, floors := range r.store.floors {
		kept := floors[:0]
		for _, f := range floors {
			if f.ID != id {
				kept = append(kept, f)
			}
		}
		r.store.floors[chamberID] = kept
	}
	return nil
}
func (r *memFloorRepo) ListByChamber(chamberID string) ([]*entity.Floor, error) {
	return r.store.floors[chamberID], nil
}

type memAmadRepo struct{ store *memStore }

func (r *memAmadRepo) GetByID(id string) (*entity.Amad, error) { return r.store.amads[id], nil }
func (r *memAmadRepo) ListByOrganization(orgID string, limit, offset int) ([]*entity.Amad, error) {
	var out []*entity.Amad
	for _, a := range r.store.amads {
		if a.OrganizationID == orgID {
			out = append(out, a)
		}
	}
	return out, nil
}

type memMovementRepo struct{ store *memStore }

func (r *memMovementRepo) Create(ev *entity.MovementEvent) error {
	r.store.createCount++
	if r.store.failCreateAt > 0 && r.store.createCount == r.store.failCreateAt {
		return errForcedWrite
	}
	r.store.events = append(r.store.events, ev)
	return nil
}
func (r *memMovementRepo) GetByID(id string) (*entity.MovementEvent, error) {
	for _, ev := range r.store.events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return nil, nil
}
func (r *memMovementRepo) ListByChamber(chamberID string) ([]*entity.MovementEvent, error) {
	var out []*entity.MovementEvent
	for _, ev := range r.store.events {
		if ev.ChamberID == chamberID {
			out = append(out, ev)
		}
	}
	return out, nil
}
func (r *memMovementRepo) ListByAmad(amadID string) ([]*entity.MovementEvent, error) {
	var out []*entity.MovementEvent
	for _, ev := range r.store.events {
		if ev.AmadID == amadID {
			out = append(out, ev)
		}
	}
	return out, nil
}
func (r *memMovementRepo) ListByRack(chamberID string, floorNumber, rackNumber int) ([]*entity.MovementEvent, error) {
	var out []*entity.MovementEvent
	for _, ev := range r.store.events {
		if ev.ChamberID == chamberID && ev.FloorNumber == floorNumber && ev.RackNumber == rackNumber {
			out = append(out, ev)
		}
	}
	return out, nil
}
func (r *memMovementRepo) ExistsByChamber(chamberID string) (bool, error) {
	for _, ev := range r.store.events {
		if ev.ChamberID == chamberID {
			return true, nil
		}
	}
	return false, nil
}
func (r *memMovementRepo) LockRack(chamberID string, floorNumber, rackNumber int) error { return nil }
func (r *memMovementRepo) LockAmad(amadID string) error {
	if r.store.onLockAmad != nil {
		r.store.onLockAmad()
	}
	return nil
}

type memOverrideRepo struct{ store *memStore }

func overrideKey(chamberID string, floor, rack int) string {
	return fmt.Sprintf("%s|%d|%d", chamberID, floor, rack)
}

func (r *memOverrideRepo) Upsert(o *entity.RackOverride) error {
	if r.store.overrides == nil {
		r.store.overrides = make(map[string]*entity.RackOverride)
	}
	r.store.overrides[overrideKey(o.ChamberID, o.FloorNumber, o.RackNumber)] = o
	return nil
}
func (r *memOverrideRepo) Delete(chamberID string, floorNumber, rackNumber int) error {
	delete(r.store.overrides, overrideKey(chamberID, floorNumber, rackNumber))
	return nil
}
func (r *memOverrideRepo) ListByChamber(chamberID string) ([]*entity.RackOverride, error) {
	var out []*entity.RackOverride
	for _, o := range r.store.overrides {
		if o.ChamberID == chamberID {
			out = append(out, o)
		}
	}
	return out, nil
}

type memBatchRepo struct{ store *memStore }

func (r *memBatchRepo) Create(b *entity.ShiftBatch) error { r.store.batches[b.ID] = b; return nil }
func (r *memBatchRepo) GetByID(id string) (*entity.ShiftBatch, error) {
	return r.store.batches[id], nil
}
func (r *memBatchRepo) ListByOrganization(orgID string, limit, offset int) ([]*entity.ShiftBatch, error) {
	var out []*entity.ShiftBatch
	for _, b := range r.store.batches {
		if b.OrganizationID == orgID {
			out = append(out, b)
		}
	}
	return out, nil
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

type memTxRunner struct{ store *memStore }

func (t *memTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	batchRepo repository.ShiftBatchRepository,
) error) error {
	// Snapshot para imitar rollback.
	eventsBefore := make([]*entity.MovementEvent, len(t.store.events))
	copy(eventsBefore, t.store.events)
	batchesBefore := make(map[string]*entity.ShiftBatch, len(t.store.batches))
	for k, v := range t.store.batches {
		batchesBefore[k] = v
	}
	t.store.createCount = 0

	err := fn(&memMovementRepo{store: t.store}, &memBatchRepo{store: t.store})
	if err != nil {
		t.store.events = eventsBefore
		t.store.batches = batchesBefore
		return err
	}
	return nil
}
