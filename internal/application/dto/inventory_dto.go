package dto

import "github.com/shopspring/decimal"

// ReplenishmentSuggestionDTO ingrediente bajo su nivel mínimo con la cantidad sugerida de pedido.
type ReplenishmentSuggestionDTO struct {
	IngredientID       string          `json:"ingredient_id"`
	Name               string          `json:"name"`
	Category           string          `json:"category"`
	Unit               string          `json:"unit"`
	SupplierID         string          `json:"supplier_id"`
	SupplierName       string          `json:"supplier_name"` // vacío si el proveedor no existe
	CurrentStock       decimal.Decimal `json:"current_stock"`
	MinStockLevel      decimal.Decimal `json:"min_stock_level"`
	IdealStock         decimal.Decimal `json:"ideal_stock"`         // MinStockLevel * 1.5
	SuggestedOrderQty  decimal.Decimal `json:"suggested_order_qty"` // IdealStock - CurrentStock
	UnitCost           decimal.Decimal `json:"unit_cost"`
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"` // SuggestedOrderQty * UnitCost
	UsedInRecipes      int             `json:"used_in_recipes"`      // recetas que consumen el ingrediente
	Priority           int             `json:"priority"`             // 1 = más urgente
}

// SupplierOrderDTO pedido agregado por proveedor.
type SupplierOrderDTO struct {
	SupplierID    string          `json:"supplier_id"`
	SupplierName  string          `json:"supplier_name"`
	Items         int             `json:"items"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
}

// ReplenishmentPlanDTO lista de reposición con totales por proveedor.
type ReplenishmentPlanDTO struct {
	Items              []ReplenishmentSuggestionDTO `json:"items"`
	BySupplier         []SupplierOrderDTO           `json:"by_supplier"`
	TotalEstimatedCost decimal.Decimal              `json:"total_estimated_cost"`
}
