package entity

import "time"

// StockStatus estado de disponibilidad de un ingrediente.
type StockStatus string

const (
	StockStatusInStock    StockStatus = "In Stock"
	StockStatusLowStock   StockStatus = "Low Stock"
	StockStatusOutOfStock StockStatus = "Out of Stock"
	StockStatusExpired    StockStatus = "Expired"
)

// StatusAt clasifica el ingrediente en el instante now.
// Prioridad: vencido > agotado > bajo mínimo > en stock. Sin fecha de vencimiento nunca está vencido.
func (i Ingredient) StatusAt(now time.Time) StockStatus {
	if !i.ExpiryDate.IsZero() && i.ExpiryDate.Before(now) {
		return StockStatusExpired
	}
	if i.CurrentStock.IsZero() {
		return StockStatusOutOfStock
	}
	if i.CurrentStock.LessThanOrEqual(i.MinStockLevel) {
		return StockStatusLowStock
	}
	return StockStatusInStock
}
