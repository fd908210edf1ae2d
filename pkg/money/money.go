// Package money formatea montos para documentos impresos según la moneda del restaurante.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer = message.NewPrinter(language.Spanish)
	cop     = currency.MustParseISO("COP")
)

// Format devuelve el monto con símbolo de moneda y separadores locales (ej. "$ 12.500,00").
// Si el código ISO no es válido se formatea en COP.
func Format(amount decimal.Decimal, iso string) string {
	unit, err := currency.ParseISO(strings.ToUpper(iso))
	if err != nil {
		unit = cop
	}
	f, _ := amount.Float64()
	return printer.Sprint(currency.Symbol(unit.Amount(f)))
}

// ValidISO informa si el código de moneda ISO 4217 es reconocido.
func ValidISO(iso string) bool {
	_, err := currency.ParseISO(strings.ToUpper(iso))
	return err == nil
}
