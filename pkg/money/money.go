// Package money formatea importes para etiquetas de tablero y reportes,
// con separadores de miles según la configuración regional.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter antepone el símbolo de moneda y agrupa miles según el locale.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter crea un formateador. Un locale inválido cae en inglés.
func NewFormatter(symbol, locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{symbol: strings.TrimSpace(symbol), printer: message.NewPrinter(tag)}
}

// Format devuelve p.ej. "Rs. 29,250". Se conservan hasta dos decimales.
func (f *Formatter) Format(amount decimal.Decimal) string {
	n := f.Number(amount)
	if f.symbol == "" {
		return n
	}
	return f.symbol + " " + n
}

// Number formatea el importe sin símbolo.
func (f *Formatter) Number(amount decimal.Decimal) string {
	v := amount.Round(2).InexactFloat64()
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// Symbol devuelve el símbolo configurado.
func (f *Formatter) Symbol() string { return f.symbol }
