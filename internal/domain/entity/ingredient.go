package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida admitidas para ingredientes (masa, volumen o conteo).
const (
	UnitKilogram = "kg"
	UnitGram     = "grams"
	UnitLiter    = "liters"
	UnitCount    = "units"
)

// IsValidUnit indica si u pertenece al vocabulario de unidades.
func IsValidUnit(u string) bool {
	switch u {
	case UnitKilogram, UnitGram, UnitLiter, UnitCount:
		return true
	}
	return false
}

// Ingredient representa una materia prima en stock con cantidad, costo y vencimiento.
// UnitCost está en unidades enteras de moneda (PKR); SupplierID no se valida contra Supplier.
type Ingredient struct {
	ID            string
	Name          string
	Category      string // etiqueta libre
	CurrentStock  decimal.Decimal
	Unit          string
	MinStockLevel decimal.Decimal // umbral de reorden
	UnitCost      decimal.Decimal
	ExpiryDate    time.Time // zero = sin fecha válida
	SupplierID    string
	LastRestocked time.Time // informativo
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// StockValue devuelve UnitCost × CurrentStock.
func (i Ingredient) StockValue() decimal.Decimal {
	return i.UnitCost.Mul(i.CurrentStock)
}
