package dto

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurant-ops/internal/domain/metrics"
)

// Number decimal que viaja como número JSON sin comillas (formato del estado persistido)
// y se deserializa de forma tolerante: cadenas numéricas se convierten y
// cualquier valor no numérico queda en cero.
type Number struct {
	decimal.Decimal
}

// NewNumber envuelve d.
func NewNumber(d decimal.Decimal) Number { return Number{Decimal: d} }

// MarshalJSON escribe el valor como número.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.Decimal.String()), nil
}

// UnmarshalJSON aplica metrics.CoerceOrZero al valor recibido. Nunca falla.
func (n *Number) UnmarshalJSON(b []byte) error {
	var v any
	d := json.NewDecoder(bytes.NewReader(b))
	d.UseNumber()
	if err := d.Decode(&v); err != nil {
		n.Decimal = decimal.Zero
		return nil
	}
	n.Decimal = metrics.CoerceOrZero(v)
	return nil
}
