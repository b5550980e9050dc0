package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
)

// WeightedAverageCost costo promedio ponderado tras una entrada de mercancía (servicio de dominio).
// nuevo = ((stock * costo) + (entrada * costoEntrada)) / (stock + entrada)
func WeightedAverageCost(stock, cost, inQty, inCost decimal.Decimal) decimal.Decimal {
	sum := stock.Add(inQty)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stock.Mul(cost).Add(inQty.Mul(inCost))
	return num.Div(sum)
}

// Restock entrada de mercancía para un ingrediente.
// UnitCost en cero conserva el costo vigente; ExpiryDate en cero conserva el vencimiento actual.
type Restock struct {
	Quantity   decimal.Decimal
	UnitCost   decimal.Decimal
	ExpiryDate time.Time
	Date       time.Time
}

// ApplyRestock suma la entrada al stock, recalcula el costo unitario y marca la fecha de reposición.
func ApplyRestock(ing *entity.Ingredient, r Restock) {
	inCost := r.UnitCost
	if inCost.IsZero() {
		inCost = ing.UnitCost
	}
	// El costo se redondea a 2 decimales para no arrastrar periódicos al persistir.
	ing.UnitCost = WeightedAverageCost(ing.CurrentStock, ing.UnitCost, r.Quantity, inCost).Round(2)
	ing.CurrentStock = ing.CurrentStock.Add(r.Quantity)
	if !r.ExpiryDate.IsZero() {
		ing.ExpiryDate = r.ExpiryDate
	}
	ing.LastRestocked = r.Date
}
