package metrics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
)

// ReasonCost costo acumulado de merma para un motivo.
type ReasonCost struct {
	Reason   string
	Entries  int
	Quantity decimal.Decimal
	Cost     decimal.Decimal // Σ UnitCost × Quantity
}

// WastageByReason agrupa las mermas por motivo, de mayor a menor costo (empates en orden de aparición).
// Una merma de un ingrediente inexistente cuenta como entrada pero aporta costo cero.
func WastageByReason(logs []*entity.WastageLog, ingredients []*entity.Ingredient) []ReasonCost {
	idx := NewIngredientIndex(ingredients)
	pos := make(map[string]int)
	out := make([]ReasonCost, 0)
	for _, l := range logs {
		if l == nil {
			continue
		}
		i, ok := pos[l.Reason]
		if !ok {
			i = len(out)
			pos[l.Reason] = i
			out = append(out, ReasonCost{Reason: l.Reason, Quantity: decimal.Zero, Cost: decimal.Zero})
		}
		out[i].Entries++
		out[i].Quantity = out[i].Quantity.Add(l.Quantity)
		if ing, ok := idx[l.IngredientID]; ok {
			out[i].Cost = out[i].Cost.Add(ing.UnitCost.Mul(l.Quantity))
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Cost.GreaterThan(out[b].Cost)
	})
	return out
}
