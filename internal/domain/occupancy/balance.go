package occupancy

import (
	"github.com/shopspring/decimal"

	"github.com/ganeshsutar/coldstrg-sub001/internal/domain/entity"
)

// FoldBalance pliega el saldo crudo de los eventos de una coordenada,
// respetando anulaciones. Es el mismo pliegue conmutativo del proyector,
// acotado a un rack: lo usa el camino de escritura para rechequear capacidad
// dentro de la transacción, con el rack ya serializado.
func FoldBalance(events []*entity.MovementEvent) decimal.Decimal {
	return foldFiltered(events, "")
}

// FoldAmadBalance pliega el saldo de un amad concreto en la coordenada.
func FoldAmadBalance(events []*entity.MovementEvent, amadID string) decimal.Decimal {
	return foldFiltered(events, amadID)
}

func foldFiltered(events []*entity.MovementEvent, amadID string) decimal.Decimal {
	voided := make(map[string]bool)
	for _, ev := range events {
		if ev.Type == entity.MovementTypeVOID && ev.VoidOf != "" {
			voided[ev.VoidOf] = true
		}
	}
	balance := decimal.Zero
	for _, ev := range events {
		if ev.Type == entity.MovementTypeVOID || voided[ev.ID] {
			continue
		}
		if amadID != "" && ev.AmadID != amadID {
			continue
		}
		balance = balance.Add(ev.SignedQuantity())
	}
	return balance
}
