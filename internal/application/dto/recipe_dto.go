package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeLineDTO vínculo ingrediente-cantidad de una receta.
type RecipeLineDTO struct {
	IngredientID string          `json:"ingredient_id"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// RecipeRequest entrada para crear o reemplazar una receta.
// Las líneas con cantidad cero se descartan (quitar un vínculo = omitirlo).
type RecipeRequest struct {
	Name        string          `json:"name" validate:"required"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Ingredients []RecipeLineDTO `json:"ingredients"`
}

// RecipeResponse receta con su costeo.
type RecipeResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Category           string          `json:"category"`
	Price              decimal.Decimal `json:"price"`
	Ingredients        []RecipeLineDTO `json:"ingredients"`
	ProductionCost     decimal.Decimal `json:"production_cost"`
	GrossProfit        decimal.Decimal `json:"gross_profit"`
	GrossMarginPercent decimal.Decimal `json:"gross_margin_percent"` // redondeado a 1 decimal
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
