// Package money formata valores monetários em R$ no padrão pt-BR
// (milhar com ponto, decimal com vírgula). Usado em PDFs e listagens.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// BRL formata um valor como "R$ 1.234,56" ("-R$ ..." para negativos).
func BRL(v decimal.Decimal) string {
	f, _ := v.Abs().Float64()
	s := printer.Sprintf("R$ %v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
	if v.IsNegative() {
		return "-" + s
	}
	return s
}
