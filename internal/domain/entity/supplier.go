package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa un proveedor. Balance es el saldo que el restaurante le adeuda (puede ser negativo).
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Phone         string
	Location      string
	PaymentTerms  string // texto libre, ej. "Net 30"
	Balance       decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
