package metrics

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// CoerceOrZero convierte v a decimal de forma explícita. Acepta números, cadenas numéricas
// (con espacios alrededor), booleanos (1/0) y json.Number. Cualquier otro valor,
// incluidos NaN, infinitos y cadenas no numéricas, se convierte en cero.
func CoerceOrZero(v any) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return n
	case *decimal.Decimal:
		if n == nil {
			return decimal.Zero
		}
		return *n
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(n)
	case float32:
		return CoerceOrZero(float64(n))
	case int:
		return decimal.NewFromInt(int64(n))
	case int32:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case uint:
		return decimal.NewFromInt(int64(n))
	case uint32:
		return decimal.NewFromInt(int64(n))
	case uint64:
		if n > math.MaxInt64 {
			return decimal.Zero
		}
		return decimal.NewFromInt(int64(n))
	case bool:
		if n {
			return one
		}
		return decimal.Zero
	case json.Number:
		return parseOrZero(string(n))
	case string:
		return parseOrZero(n)
	default:
		return decimal.Zero
	}
}

func parseOrZero(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
