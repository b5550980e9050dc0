package metrics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
)

// DefaultTopN cantidad de ingredientes del ranking del tablero.
const DefaultTopN = 5

// RankedIngredient ingrediente del ranking por valor de stock.
type RankedIngredient struct {
	IngredientID string
	Name         string
	Category     string
	Value        decimal.Decimal
	WidthPercent decimal.Decimal // Value / valor del primero × 100
}

// TopIngredients devuelve los n ingredientes con mayor UnitCost × CurrentStock,
// de mayor a menor, con empates en el orden original.
func TopIngredients(ingredients []*entity.Ingredient, n int) []RankedIngredient {
	if n <= 0 {
		return []RankedIngredient{}
	}
	ranked := make([]RankedIngredient, 0, len(ingredients))
	for _, ing := range ingredients {
		if ing == nil {
			continue
		}
		ranked = append(ranked, RankedIngredient{
			IngredientID: ing.ID,
			Name:         ing.Name,
			Category:     ing.Category,
			Value:        ing.StockValue(),
		})
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Value.GreaterThan(ranked[b].Value)
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	maxVal := one
	if len(ranked) > 0 {
		maxVal = orOne(ranked[0].Value)
	}
	for i := range ranked {
		ranked[i].WidthPercent = ranked[i].Value.Mul(hundred).Div(maxVal)
	}
	return ranked
}
