package utils

import "github.com/shopspring/decimal"

// RoundToCents arredonda o valor para duas casas decimais e o converte para float64
func RoundToCents(d decimal.Decimal) float64 {
	if d.IsZero() {
		return 0
	}

	return d.Round(2).InexactFloat64()
}
