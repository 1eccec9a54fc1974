// Package occupancy implementa el motor de ocupación de racks: una proyección
// pura, recalculada en cada lectura, del libro de movimientos contra la
// configuración espacial. Nunca se persiste ni se cachea un saldo mutable:
// el libro es la única fuente de verdad.
package occupancy

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"
)

// Estados derivados de un rack (función pura de saldo vs. capacidad).
const (
	StatusEMPTY   = "EMPTY"
	StatusPARTIAL = "PARTIAL"
	StatusFULL    = "FULL"
)

// LotShare es la porción de un amad presente en un rack.
type LotShare struct {
	AmadID   string
	Quantity decimal.Decimal
}

// RackOccupancy es el estado derivado de un rack. Nunca se persiste.
//
// NetQuantity está recortado a >= 0 para presentación; Balance conserva el
// saldo crudo con signo: un Balance negativo real indica corrupción del libro
// o una carrera perdida del guardián de capacidad, y debe reportarse en
// auditoría, no recortarse en silencio.
type RackOccupancy struct {
	ChamberID   string
	FloorNumber int
	RackNumber  int
	NetQuantity decimal.Decimal
	Balance     decimal.Decimal
	Status      string
	Override    string     // RESERVED/MAINTENANCE si hay marca manual; vacío si no
	Lots        []LotShare // amads con saldo positivo en el rack, orden estable
	LastAmadID  string     // amad del crédito más reciente no agotado (heurística último-en-cargar)
}

// State devuelve el estado efectivo: la marca manual prevalece sobre el derivado.
func (r *RackOccupancy) State() string {
	if r.Override != "" {
		return r.Override
	}
	return r.Status
}

// StatusFor clasifica un saldo contra la capacidad del rack.
func StatusFor(net, capacity decimal.Decimal) string {
	if net.LessThanOrEqual(decimal.Zero) {
		return StatusEMPTY
	}
	if capacity.GreaterThan(decimal.Zero) && net.GreaterThanOrEqual(capacity) {
		return StatusFULL
	}
	return StatusPARTIAL
}

type coord struct {
	floor int
	rack  int
}

// Project reproduce el libro de movimientos de una cámara contra sus pisos y
// devuelve la ocupación por rack.
//
// El pliegue es conmutativo: cada evento activo suma o resta su cantidad según
// el signo, en cualquier orden, de modo que el orden de llegada de los eventos
// no importa y la proyección es segura sobre un almacén parcialmente ordenado.
// Dos llamadas sobre el mismo conjunto inmutable de eventos devuelven
// exactamente el mismo resultado.
//
// Pisos solapados NO se corrigen aquí: el rack solapado sale enumerado una vez
// por cada piso que lo cubre. El llamador valida con ValidateFloors y reporta
// el error de configuración antes de confiar en el resultado.
func Project(chamber *entity.Chamber, floors []*entity.Floor, events []*entity.MovementEvent) []RackOccupancy {
	// Eventos anulados: un registro VOID referencia al original; ambos se
	// excluyen del pliegue. El libro nunca se edita in situ.
	voided := make(map[string]bool)
	for _, ev := range events {
		if ev.Type == entity.MovementTypeVOID && ev.VoidOf != "" {
			voided[ev.VoidOf] = true
		}
	}

	balances := make(map[coord]decimal.Decimal)
	lotBalances := make(map[coord]map[string]decimal.Decimal)
	lastCredit := make(map[coord]*entity.MovementEvent)

	for _, ev := range events {
		if ev.Type == entity.MovementTypeVOID || voided[ev.ID] {
			continue
		}
		if ev.ChamberID != chamber.ID || ev.Sign() == 0 {
			continue
		}
		c := coord{floor: ev.FloorNumber, rack: ev.RackNumber}
		balances[c] = balances[c].Add(ev.SignedQuantity())

		lots := lotBalances[c]
		if lots == nil {
			lots = make(map[string]decimal.Decimal)
			lotBalances[c] = lots
		}
		lots[ev.AmadID] = lots[ev.AmadID].Add(ev.SignedQuantity())

		if ev.IsCredit() && creditNewerThan(ev, lastCredit[c]) {
			lastCredit[c] = ev
		}
	}

	// Enumerar los racks de cada piso activo; racks sin piso quedan fuera.
	ordered := make([]*entity.Floor, len(floors))
	copy(ordered, floors)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].FloorNumber != ordered[j].FloorNumber {
			return ordered[i].FloorNumber < ordered[j].FloorNumber
		}
		return ordered[i].FromRack < ordered[j].FromRack
	})

	var result []RackOccupancy
	for _, f := range ordered {
		for rack := f.FromRack; rack <= f.ToRack; rack++ {
			c := coord{floor: f.FloorNumber, rack: rack}
			balance := balances[c]
			net := balance
			if net.LessThan(decimal.Zero) {
				net = decimal.Zero
			}
			occ := RackOccupancy{
				ChamberID:   chamber.ID,
				FloorNumber: f.FloorNumber,
				RackNumber:  rack,
				NetQuantity: net,
				Balance:     balance,
				Status:      StatusFor(net, chamber.RackCapacity),
				Lots:        positiveLotShares(lotBalances[c]),
			}
			if net.GreaterThan(decimal.Zero) {
				occ.LastAmadID = attributeLot(lotBalances[c], lastCredit[c])
			}
			result = append(result, occ)
		}
	}
	return result
}

// creditNewerThan compara créditos por fecha, luego por fecha de creación y
// por último por ID, para que el resultado no dependa del orden de los eventos.
func creditNewerThan(ev, cur *entity.MovementEvent) bool {
	if cur == nil {
		return true
	}
	if !ev.Date.Equal(cur.Date) {
		return ev.Date.After(cur.Date)
	}
	if !ev.CreatedAt.Equal(cur.CreatedAt) {
		return ev.CreatedAt.After(cur.CreatedAt)
	}
	return ev.ID > cur.ID
}

// positiveLotShares devuelve los amads con saldo positivo, orden estable por ID.
func positiveLotShares(lots map[string]decimal.Decimal) []LotShare {
	if len(lots) == 0 {
		return nil
	}
	var shares []LotShare
	for amadID, qty := range lots {
		if qty.GreaterThan(decimal.Zero) {
			shares = append(shares, LotShare{AmadID: amadID, Quantity: qty})
		}
	}
	sort.Slice(shares, func(i, j int) bool { return shares[i].AmadID < shares[j].AmadID })
	return shares
}

// attributeLot atribuye el rack al amad del crédito más reciente que conserve
// saldo positivo. Heurística "gana el último en cargar" bajo el supuesto de un
// amad activo por rack; con varios amads conviviendo el dato es orientativo y
// la verdad está en Lots.
func attributeLot(lots map[string]decimal.Decimal, last *entity.MovementEvent) string {
	if last != nil && lots[last.AmadID].GreaterThan(decimal.Zero) {
		return last.AmadID
	}
	// El último cargador ya se agotó: tomar cualquier amad con saldo, orden estable.
	shares := positiveLotShares(lots)
	if len(shares) > 0 {
		return shares[len(shares)-1].AmadID
	}
	return ""
}

// NegativeBalances filtra los racks cuyo saldo crudo es negativo: señal de
// libro corrupto o de una carrera perdida, para el camino de auditoría.
func NegativeBalances(occupancies []RackOccupancy) []RackOccupancy {
	var bad []RackOccupancy
	for _, occ := range occupancies {
		if occ.Balance.LessThan(decimal.Zero) {
			bad = append(bad, occ)
		}
	}
	return bad
}

// AvailableForAmad devuelve el saldo de un amad concreto en el rack.
func (r *RackOccupancy) AvailableForAmad(amadID string) decimal.Decimal {
	for _, share := range r.Lots {
		if share.AmadID == amadID {
			return share.Quantity
		}
	}
	return decimal.Zero
}
