package value

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	moneyPlaces   = 2
	percentPlaces = 1
)

// FormatMoney renders an amount with two decimals, rounding half away from zero.
func FormatMoney(amount float64) string {
	return formatFixed(amount, moneyPlaces)
}

// FormatPercent renders a percentage with one decimal, without the sign.
func FormatPercent(percent float64) string {
	return formatFixed(percent, percentPlaces)
}

func formatFixed(x float64, places int32) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', int(places), 64)
	}

	return decimal.NewFromFloat(x).StringFixed(places)
}
