package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
)

// RecipeCosting costo de producción y margen bruto de una receta.
type RecipeCosting struct {
	MenuItemID         string
	Name               string
	Category           string
	Price              decimal.Decimal
	ProductionCost     decimal.Decimal
	GrossProfit        decimal.Decimal // Price - ProductionCost
	GrossMarginPercent decimal.Decimal
}

// IngredientIndex búsqueda de ingredientes por ID. Ante IDs repetidos gana el primero.
type IngredientIndex map[string]*entity.Ingredient

// NewIngredientIndex construye el índice a partir de la colección.
func NewIngredientIndex(ingredients []*entity.Ingredient) IngredientIndex {
	idx := make(IngredientIndex, len(ingredients))
	for _, ing := range ingredients {
		if ing == nil {
			continue
		}
		if _, ok := idx[ing.ID]; !ok {
			idx[ing.ID] = ing
		}
	}
	return idx
}

// ProductionCost suma UnitCost × Quantity de las líneas de la receta.
// Una línea cuyo ingrediente no existe aporta cero.
func (idx IngredientIndex) ProductionCost(item *entity.MenuItem) decimal.Decimal {
	cost := decimal.Zero
	if item == nil {
		return cost
	}
	for _, line := range item.Ingredients {
		ing, ok := idx[line.IngredientID]
		if !ok {
			continue
		}
		cost = cost.Add(ing.UnitCost.Mul(line.Quantity))
	}
	return cost
}

// Cost calcula el costeo de item con el índice.
// Con precio cero se usa 1 como precio para el margen, lo que produce un margen muy negativo en vez de un error.
func (idx IngredientIndex) Cost(item *entity.MenuItem) RecipeCosting {
	if item == nil {
		return RecipeCosting{Price: decimal.Zero, ProductionCost: decimal.Zero, GrossProfit: decimal.Zero, GrossMarginPercent: decimal.Zero}
	}
	cost := idx.ProductionCost(item)
	price := orOne(item.Price)
	return RecipeCosting{
		MenuItemID:         item.ID,
		Name:               item.Name,
		Category:           item.Category,
		Price:              item.Price,
		ProductionCost:     cost,
		GrossProfit:        item.Price.Sub(cost),
		GrossMarginPercent: price.Sub(cost).Mul(hundred).Div(price),
	}
}

// CostRecipe calcula el costeo de una sola receta contra la colección completa.
func CostRecipe(item *entity.MenuItem, ingredients []*entity.Ingredient) RecipeCosting {
	return NewIngredientIndex(ingredients).Cost(item)
}

// RecipeMargins costea las primeras limit recetas en el orden recibido. limit < 0 = todas.
func RecipeMargins(items []*entity.MenuItem, ingredients []*entity.Ingredient, limit int) []RecipeCosting {
	idx := NewIngredientIndex(ingredients)
	out := make([]RecipeCosting, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if limit >= 0 && len(out) >= limit {
			break
		}
		out = append(out, idx.Cost(item))
	}
	return out
}
