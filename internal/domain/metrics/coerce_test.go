package metrics_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/restaurant-ops/internal/domain/metrics"
)

func TestCoerceOrZero(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "0"},
		{"float", 12.5, "12.5"},
		{"int", 7, "7"},
		{"cadena numérica", " 450 ", "450"},
		{"cadena vacía", "", "0"},
		{"cadena no numérica", "abc", "0"},
		{"true", true, "1"},
		{"false", false, "0"},
		{"NaN", math.NaN(), "0"},
		{"infinito", math.Inf(1), "0"},
		{"json.Number", json.Number("0.25"), "0.25"},
		{"slice", []int{1}, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := metrics.CoerceOrZero(tc.in)
			assert.True(t, dec(tc.want).Equal(got), "esperado %s, obtenido %s", tc.want, got)
		})
	}
}
