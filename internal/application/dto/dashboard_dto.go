package dto

import "github.com/shopspring/decimal"

// DashboardOverviewDTO respuesta de GET /api/dashboard/overview.
// Los montos viajan sin redondeo; los porcentajes se redondean a 1 decimal.
type DashboardOverviewDTO struct {
	Stats                QuickStatsDTO      `json:"stats"`
	CategoryDistribution []CategoryShareDTO `json:"category_distribution"`
	TopItems             []TopIngredientDTO `json:"top_items"`
	RecipeMargins        []RecipeMarginDTO  `json:"recipe_margins"`
	WastageByReason      []WastageReasonDTO `json:"wastage_by_reason"`
	SupplierCount        int                `json:"supplier_count"`
	Labels               DashboardLabelsDTO `json:"labels"`
}

// QuickStatsDTO KPIs de las tarjetas superiores.
type QuickStatsDTO struct {
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
	LowStockItems       int             `json:"low_stock_items"`
	ExpiringSoon        int             `json:"expiring_soon"`
	PendingPayables     decimal.Decimal `json:"pending_payables"`
}

// CategoryShareDTO porción del gráfico radial.
type CategoryShareDTO struct {
	Label      string          `json:"label"`
	Value      decimal.Decimal `json:"value"`
	Percentage decimal.Decimal `json:"percentage"`
	Offset     decimal.Decimal `json:"offset"` // desplazamiento acumulado (en %)
	Color      string          `json:"color"`
}

// TopIngredientDTO barra del ranking por valor.
type TopIngredientDTO struct {
	IngredientID string          `json:"ingredient_id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Value        decimal.Decimal `json:"value"`
	WidthPercent decimal.Decimal `json:"width_percent"`
}

// RecipeMarginDTO tarjeta de margen de una receta.
type RecipeMarginDTO struct {
	MenuItemID         string          `json:"menu_item_id"`
	Name               string          `json:"name"`
	Price              decimal.Decimal `json:"price"`
	ProductionCost     decimal.Decimal `json:"production_cost"`
	GrossMarginPercent decimal.Decimal `json:"gross_margin_percent"`
}

// WastageReasonDTO costo de mermas por motivo.
type WastageReasonDTO struct {
	Reason   string          `json:"reason"`
	Entries  int             `json:"entries"`
	Quantity decimal.Decimal `json:"quantity"`
	Cost     decimal.Decimal `json:"cost"`
}

// DashboardLabelsDTO textos ya formateados para las tarjetas (ej. "Rs. 29,250").
type DashboardLabelsDTO struct {
	TotalInventoryValue string `json:"total_inventory_value"`
	PendingPayables     string `json:"pending_payables"`
	PayablesSubtitle    string `json:"payables_subtitle"` // "Owed to N vendors"
	ExpiryWindow        string `json:"expiry_window"`     // "Critical window: 7 days"
}
