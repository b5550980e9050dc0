package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
	"github.com/jhoicas/restaurant-ops/internal/domain/inventory"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestWeightedAverageCost(t *testing.T) {
	// 10 kg a 100 + 30 kg a 200 = 7000 / 40 = 175
	got := inventory.WeightedAverageCost(d("10"), d("100"), d("30"), d("200"))
	assert.True(t, d("175").Equal(got), "costo ponderado esperado 175, obtenido %s", got)

	// Sin stock previo el costo es el de la entrada
	got = inventory.WeightedAverageCost(decimal.Zero, d("100"), d("5"), d("80"))
	assert.True(t, d("80").Equal(got))

	assert.True(t, inventory.WeightedAverageCost(decimal.Zero, d("1"), decimal.Zero, d("1")).IsZero(),
		"sin unidades el costo debe ser cero")
}

func TestApplyRestock(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	expiry := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	ing := &entity.Ingredient{
		CurrentStock: d("10"),
		UnitCost:     d("100"),
		ExpiryDate:   expiry,
	}

	inventory.ApplyRestock(ing, inventory.Restock{Quantity: d("30"), UnitCost: d("200"), Date: day})

	assert.True(t, d("40").Equal(ing.CurrentStock))
	assert.True(t, d("175").Equal(ing.UnitCost))
	assert.Equal(t, expiry, ing.ExpiryDate, "sin fecha nueva se conserva el vencimiento")
	assert.Equal(t, day, ing.LastRestocked)
}

func TestApplyRestock_SinCostoConservaElVigente(t *testing.T) {
	newExpiry := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ing := &entity.Ingredient{CurrentStock: d("3"), UnitCost: d("12.5")}

	inventory.ApplyRestock(ing, inventory.Restock{Quantity: d("7"), ExpiryDate: newExpiry})

	assert.True(t, d("12.5").Equal(ing.UnitCost))
	assert.True(t, d("10").Equal(ing.CurrentStock))
	assert.Equal(t, newExpiry, ing.ExpiryDate)
}
