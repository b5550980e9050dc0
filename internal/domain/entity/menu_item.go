package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeLine vincula un ingrediente con la cantidad usada por porción.
// IngredientID puede no resolver; en ese caso aporta costo cero.
type RecipeLine struct {
	IngredientID string
	Quantity     decimal.Decimal
}

// MenuItem representa una receta vendible: precio de venta y líneas de ingredientes ordenadas.
type MenuItem struct {
	ID          string
	Name        string
	Category    string
	Price       decimal.Decimal
	Ingredients []RecipeLine
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NormalizeLines elimina las líneas con cantidad cero (un vínculo en cero no se persiste)
// y fusiona IDs repetidos conservando la última cantidad en la posición de la primera aparición.
func (m *MenuItem) NormalizeLines() {
	pos := make(map[string]int, len(m.Ingredients))
	out := make([]RecipeLine, 0, len(m.Ingredients))
	for _, l := range m.Ingredients {
		if i, ok := pos[l.IngredientID]; ok {
			out[i].Quantity = l.Quantity
			continue
		}
		pos[l.IngredientID] = len(out)
		out = append(out, l)
	}
	kept := out[:0]
	for _, l := range out {
		if l.Quantity.IsZero() {
			continue
		}
		kept = append(kept, l)
	}
	m.Ingredients = kept
}
