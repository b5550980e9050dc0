package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
)

func TestStatusAt_Prioridad(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	base := entity.Ingredient{
		CurrentStock:  decimal.NewFromInt(20),
		MinStockLevel: decimal.NewFromInt(10),
		ExpiryDate:    now.AddDate(0, 1, 0),
	}

	assert.Equal(t, entity.StockStatusInStock, base.StatusAt(now))

	low := base
	low.CurrentStock = decimal.NewFromInt(10)
	assert.Equal(t, entity.StockStatusLowStock, low.StatusAt(now))

	out := base
	out.CurrentStock = decimal.Zero
	assert.Equal(t, entity.StockStatusOutOfStock, out.StatusAt(now))

	expired := out
	expired.ExpiryDate = now.AddDate(0, 0, -1)
	assert.Equal(t, entity.StockStatusExpired, expired.StatusAt(now), "vencido tiene prioridad sobre agotado")

	noDate := base
	noDate.ExpiryDate = time.Time{}
	assert.Equal(t, entity.StockStatusInStock, noDate.StatusAt(now))
}

func TestNormalizeLines(t *testing.T) {
	m := entity.MenuItem{Ingredients: []entity.RecipeLine{
		{IngredientID: "1", Quantity: decimal.RequireFromString("0.5")},
		{IngredientID: "2", Quantity: decimal.Zero},
		{IngredientID: "3", Quantity: decimal.NewFromInt(1)},
		{IngredientID: "1", Quantity: decimal.NewFromInt(2)},
		{IngredientID: "3", Quantity: decimal.Zero},
	}}

	m.NormalizeLines()

	require.Len(t, m.Ingredients, 1)
	assert.Equal(t, "1", m.Ingredients[0].IngredientID)
	assert.True(t, m.Ingredients[0].Quantity.Equal(decimal.NewFromInt(2)))
}

func TestValidVocabularies(t *testing.T) {
	assert.True(t, entity.IsValidUnit(entity.UnitLiter))
	assert.False(t, entity.IsValidUnit("cups"))
	assert.True(t, entity.IsValidWastageReason(entity.WastageBurnt))
	assert.False(t, entity.IsValidWastageReason("stolen"))
}
