package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierRequest entrada para crear o reemplazar un proveedor.
type SupplierRequest struct {
	Name          string          `json:"name" validate:"required"`
	ContactPerson string          `json:"contact_person"`
	Phone         string          `json:"phone"`
	Location      string          `json:"location"`
	PaymentTerms  string          `json:"payment_terms"`
	Balance       decimal.Decimal `json:"balance"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ContactPerson string          `json:"contact_person"`
	Phone         string          `json:"phone"`
	Location      string          `json:"location"`
	PaymentTerms  string          `json:"payment_terms"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
