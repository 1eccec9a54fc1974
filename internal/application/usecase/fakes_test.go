package usecase_test

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"
)

// Dobles en memoria de los puertos de lectura/escritura que usan los casos de
// uso de configuración. Sin transacciones: estos casos de uso no las usan.

const testOrgID = "org-1"

type fakeStore struct {
	chambers map[string]*entity.Chamber
	floors   []*entity.Floor
	amads    map[string]*entity.Amad
	events   []*entity.MovementEvent
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		chambers: make(map[string]*entity.Chamber),
		amads:    make(map[string]*entity.Amad),
	}
}

func (s *fakeStore) addChamber(id string, floorCount, totalRacks int) *entity.Chamber {
	c := &entity.Chamber{
		ID:             id,
		OrganizationID: testOrgID,
		Code:           "C-" + id,
		Name:           "Cámara " + id,
		FloorCount:     floorCount,
		TotalRacks:     totalRacks,
		RackCapacity:   decimal.NewFromInt(100),
		Active:         true,
	}
	s.chambers[id] = c
	return c
}

func (s *fakeStore) addFloor(id, chamberID string, number, from, to int) *entity.Floor {
	f := &entity.Floor{
		ID:          id,
		ChamberID:   chamberID,
		FloorNumber: number,
		FromRack:    from,
		ToRack:      to,
	}
	s.floors = append(s.floors, f)
	return f
}

func (s *fakeStore) addLoading(chamberID string, floor, rack int, qty int64) {
	s.addEvent(entity.MovementTypeLOADING, chamberID, floor, rack, qty)
}

func (s *fakeStore) addUnloading(chamberID string, floor, rack int, qty int64) {
	s.addEvent(entity.MovementTypeUNLOADING, chamberID, floor, rack, qty)
}

func (s *fakeStore) addEvent(kind, chamberID string, floor, rack int, qty int64) {
	s.events = append(s.events, &entity.MovementEvent{
		ID:             fmt.Sprintf("ev-%d", len(s.events)+1),
		OrganizationID: testOrgID,
		AmadID:         "amad-1",
		ChamberID:      chamberID,
		FloorNumber:    floor,
		RackNumber:     rack,
		Type:           kind,
		Quantity:       decimal.NewFromInt(qty),
		Date:           time.Now(),
		CreatedAt:      time.Now(),
	})
}

type fakeChamberRepo struct{ store *fakeStore }

func (r *fakeChamberRepo) Create(c *entity.Chamber) error { r.store.chambers[c.ID] = c; return nil }
func (r *fakeChamberRepo) GetByID(id string) (*entity.Chamber, error) {
	return r.store.chambers[id], nil
}
func (r *fakeChamberRepo) GetByCode(orgID, code string) (*entity.Chamber, error) {
	for _, c := range r.store.chambers {
		if c.OrganizationID == orgID && c.Code == code {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeChamberRepo) Update(c *entity.Chamber) error { r.store.chambers[c.ID] = c; return nil }
func (r *fakeChamberRepo) Delete(id string) error         { delete(r.store.chambers, id); return nil }
func (r *fakeChamberRepo) ListByOrganization(orgID string, limit, offset int) ([]*entity.Chamber, error) {
	var out []*entity.Chamber
	for _, c := range r.store.chambers {
		if c.OrganizationID == orgID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeFloorRepo struct{ store *fakeStore }

func (r *fakeFloorRepo) Create(f *entity.Floor) error {
	r.store.floors = append(r.store.floors, f)
	return nil
}
func (r *fakeFloorRepo) CreateAll(floors []*entity.Floor) error {
	r.store.floors = append(r.store.floors, floors...)
	return nil
}
func (r *fakeFloorRepo) GetByID(id string) (*entity.Floor, error) {
	for _, f := range r.store.floors {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, nil
}
func (r *fakeFloorRepo) Update(f *entity.Floor) error {
	for i := range r.store.floors {
		if r.store.floors[i].ID == f.ID {
			r.store.floors[i] = f
		}
	}
	return nil
}
func (r *fakeFloorRepo) Delete(id string) error {
	kept := r.store.floors[:0]
	for _, f := range r.store.floors {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	r.store.floors = kept
	return nil
}
func (r *fakeFloorRepo) ListByChamber(chamberID string) ([]*entity.Floor, error) {
	var out []*entity.Floor
	for _, f := range r.store.floors {
		if f.ChamberID == chamberID {
			out = append(out, f)
		}
	}
	return out, nil
}

type fakeMovementRepo struct{ store *fakeStore }

func (r *fakeMovementRepo) Create(ev *entity.MovementEvent) error {
	r.store.events = append(r.store.events, ev)
	return nil
}
func (r *fakeMovementRepo) GetByID(id string) (*entity.MovementEvent, error) {
	for _, ev := range r.store.events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return nil, nil
}
func (r *fakeMovementRepo) ListByChamber(chamberID string) ([]*entity.MovementEvent, error) {
	var out []*entity.MovementEvent
	for _, ev := range r.store.events {
		if ev.ChamberID == chamberID {
			out = append(out, ev)
		}
	}
	return out, nil
}
func (r *fakeMovementRepo) ListByAmad(amadID string) ([]*entity.MovementEvent, error) {
	var out []*entity.MovementEvent
	for _, ev := range r.store.events {
		if ev.AmadID == amadID {
			out = append(out, ev)
		}
	}
	return out, nil
}
func (r *fakeMovementRepo) ListByRack(chamberID string, floorNumber, rackNumber int) ([]*entity.MovementEvent, error) {
	var out []*entity.MovementEvent
	for _, ev := range r.store.events {
		if ev.ChamberID == chamberID && ev.FloorNumber == floorNumber && ev.RackNumber == rackNumber {
			out = append(out, ev)
		}
	}
	return out, nil
}
func (r *fakeMovementRepo) ExistsByChamber(chamberID string) (bool, error) {
	for _, ev := range r.store.events {
		if ev.ChamberID == chamberID {
			return true, nil
		}
	}
	return false, nil
}
func (r *fakeMovementRepo) LockRack(chamberID string, floorNumber, rackNumber int) error { return nil }
func (r *fakeMovementRepo) LockAmad(amadID string) error                                 { return nil }

type fakeAmadRepo struct{ store *fakeStore }

func (r *fakeAmadRepo) GetByID(id string) (*entity.Amad, error) { return r.store.amads[id], nil }
func (r *fakeAmadRepo) ListByOrganization(orgID string, limit, offset int) ([]*entity.Amad, error) {
	var out []*entity.Amad
	for _, a := range r.store.amads {
		if a.OrganizationID == orgID {
			out = append(out, a)
		}
	}
	return out, nil
}
