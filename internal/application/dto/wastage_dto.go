package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// WastageRequest entrada para registrar una merma.
type WastageRequest struct {
	IngredientID string          `json:"ingredient_id" validate:"required"`
	Quantity     decimal.Decimal `json:"quantity"`
	Reason       string          `json:"reason"` // burnt | spoiled | expired | dropped
	Date         string          `json:"date"`   // YYYY-MM-DD, vacío = hoy
	LoggedBy     string          `json:"logged_by"`
}

// WastageResponse salida de una merma.
type WastageResponse struct {
	ID           string          `json:"id"`
	IngredientID string          `json:"ingredient_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	Reason       string          `json:"reason"`
	Date         string          `json:"date"`
	LoggedBy     string          `json:"logged_by"`
	CreatedAt    time.Time       `json:"created_at"`
}
