package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatMoney formata um valor com exatamente duas casas decimais
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
