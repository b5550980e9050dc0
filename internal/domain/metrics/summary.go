package metrics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
)

// ExpiryWindow ventana crítica de vencimiento por defecto.
const ExpiryWindow = 7 * 24 * time.Hour

// Summary KPIs del tablero.
type Summary struct {
	TotalInventoryValue decimal.Decimal // Σ UnitCost × CurrentStock
	LowStockItems       int             // CurrentStock ≤ MinStockLevel
	ExpiringSoon        int             // ExpiryDate - now < ventana (incluye vencidos)
	PendingPayables     decimal.Decimal // Σ Supplier.Balance
}

// Summarize calcula los KPIs con la ventana de vencimiento por defecto (7 días).
func Summarize(ingredients []*entity.Ingredient, suppliers []*entity.Supplier, now time.Time) Summary {
	return SummarizeWithWindow(ingredients, suppliers, now, ExpiryWindow)
}

// SummarizeWithWindow calcula los KPIs usando window como ventana de vencimiento.
func SummarizeWithWindow(
	ingredients []*entity.Ingredient,
	suppliers []*entity.Supplier,
	now time.Time,
	window time.Duration,
) Summary {
	return Summary{
		TotalInventoryValue: InventoryValue(ingredients),
		LowStockItems:       CountLowStock(ingredients),
		ExpiringSoon:        CountExpiring(ingredients, now, window),
		PendingPayables:     PendingPayables(suppliers),
	}
}

// InventoryValue suma UnitCost × CurrentStock de todos los ingredientes. Vacío = 0.
func InventoryValue(ingredients []*entity.Ingredient) decimal.Decimal {
	total := decimal.Zero
	for _, ing := range ingredients {
		if ing == nil {
			continue
		}
		total = total.Add(ing.StockValue())
	}
	return total
}

// CountLowStock cuenta los ingredientes con stock igual o inferior a su mínimo.
func CountLowStock(ingredients []*entity.Ingredient) int {
	n := 0
	for _, ing := range ingredients {
		if ing == nil {
			continue
		}
		if ing.CurrentStock.LessThanOrEqual(ing.MinStockLevel) {
			n++
		}
	}
	return n
}

// CountExpiring cuenta los ingredientes cuyo vencimiento está a menos de window de now.
// No hay cota inferior: un ingrediente ya vencido también cuenta.
// Un ingrediente sin fecha de vencimiento no cuenta.
func CountExpiring(ingredients []*entity.Ingredient, now time.Time, window time.Duration) int {
	n := 0
	for _, ing := range ingredients {
		if ing == nil || ing.ExpiryDate.IsZero() {
			continue
		}
		if ing.ExpiryDate.Sub(now) < window {
			n++
		}
	}
	return n
}

// PendingPayables suma los saldos adeudados a proveedores (con signo).
func PendingPayables(suppliers []*entity.Supplier) decimal.Decimal {
	total := decimal.Zero
	for _, s := range suppliers {
		if s == nil {
			continue
		}
		total = total.Add(s.Balance)
	}
	return total
}
