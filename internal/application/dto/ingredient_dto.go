package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// IngredientRequest entrada para crear o reemplazar un ingrediente.
type IngredientRequest struct {
	Name          string          `json:"name" validate:"required"`
	Category      string          `json:"category" validate:"required"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	Unit          string          `json:"unit"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	ExpiryDate    string          `json:"expiry_date"` // YYYY-MM-DD
	SupplierID    string          `json:"supplier_id"`
	LastRestocked string          `json:"last_restocked"` // YYYY-MM-DD, vacío = hoy
}

// IngredientFilter filtros del listado de inventario.
type IngredientFilter struct {
	Search   string `query:"search"`   // subcadena del nombre, sin distinguir mayúsculas
	Category string `query:"category"` // "All" o vacío = todas
}

// RestockRequest entrada de mercancía para un ingrediente existente.
type RestockRequest struct {
	Quantity   decimal.Decimal `json:"quantity" validate:"required"`
	UnitCost   decimal.Decimal `json:"unit_cost"`   // cero = conserva el costo vigente
	ExpiryDate string          `json:"expiry_date"` // YYYY-MM-DD, vacío = conserva el vencimiento
	Date       string          `json:"date"`        // YYYY-MM-DD, vacío = hoy
}

// IngredientResponse salida de un ingrediente con su estado y valor de stock.
type IngredientResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	Unit          string          `json:"unit"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	ExpiryDate    string          `json:"expiry_date"`
	SupplierID    string          `json:"supplier_id"`
	LastRestocked string          `json:"last_restocked"`
	Status        string          `json:"status"`      // In Stock | Low Stock | Out of Stock | Expired
	StockValue    decimal.Decimal `json:"stock_value"` // unit_cost × current_stock
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CategoriesResponse categorías para el filtro ("All" primero).
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
