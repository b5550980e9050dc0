// Package metrics contiene el motor de agregación del tablero de operaciones:
// estadísticas resumen, distribución de valor por categoría, ranking top-N y
// costeo/margen de recetas.
//
// Todas las funciones son puras y reentrantes: reciben instantáneas de solo
// lectura de las colecciones, nunca las modifican y nunca devuelven error.
// Las condiciones anómalas se absorben en los números calculados:
//   - una referencia a ingrediente que no resuelve aporta cero;
//   - un denominador cero se sustituye por 1;
//   - elementos nil en las colecciones se ignoran.
package metrics

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// orOne devuelve d, o 1 si d es cero.
func orOne(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return one
	}
	return d
}
