package metrics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
)

// Palette colores del gráfico radial, asignados por posición (cíclico).
var Palette = []string{"#10b981", "#3b82f6", "#f59e0b", "#8b5cf6", "#ef4444"}

// CategoryShare valor acumulado de una categoría y su participación en el total.
type CategoryShare struct {
	Label      string
	Value      decimal.Decimal
	Percentage decimal.Decimal // Value / total × 100
	Offset     decimal.Decimal // suma de Percentage de las entradas anteriores
	Color      string
}

// CategoryDistribution agrupa el valor de stock por categoría y lo ordena de mayor a menor.
// Los empates conservan el orden de primera aparición en la colección.
// Si el total es cero se divide por 1, por lo que todos los porcentajes quedan en 0.
func CategoryDistribution(ingredients []*entity.Ingredient) []CategoryShare {
	index := make(map[string]int)
	shares := make([]CategoryShare, 0)
	total := decimal.Zero
	for _, ing := range ingredients {
		if ing == nil {
			continue
		}
		v := ing.StockValue()
		i, ok := index[ing.Category]
		if !ok {
			i = len(shares)
			index[ing.Category] = i
			shares = append(shares, CategoryShare{Label: ing.Category, Value: decimal.Zero})
		}
		shares[i].Value = shares[i].Value.Add(v)
		total = total.Add(v)
	}

	sort.SliceStable(shares, func(a, b int) bool {
		return shares[a].Value.GreaterThan(shares[b].Value)
	})

	denom := orOne(total)
	offset := decimal.Zero
	for i := range shares {
		pct := shares[i].Value.Mul(hundred).Div(denom)
		shares[i].Percentage = pct
		shares[i].Offset = offset
		shares[i].Color = Palette[i%len(Palette)]
		offset = offset.Add(pct)
	}
	return shares
}
