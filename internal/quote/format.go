package quote

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// RoundCents rounds a computed amount half away from zero to two decimals. NaN and
// infinities round to zero.
func RoundCents(amount float64) decimal.Decimal {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(amount).Round(2)
}

// FormatUSD renders an amount as dollars and cents with thousands grouping, e.g. $1,234.50.
func FormatUSD(amount float64) string {
	rounded, _ := RoundCents(amount).Float64()
	if rounded < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -rounded)
	}
	return "$" + humanize.FormatFloat("#,###.##", rounded)
}

// FormatArea renders square feet with two decimals.
func FormatArea(sqft float64) string {
	return RoundCents(sqft).StringFixed(2) + " sq ft"
}

// FormatInches renders a length without trailing zeros, e.g. 48″ or 36.5″.
func FormatInches(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "″"
}
