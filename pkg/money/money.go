// Package money formats decimal amounts for display.
package money

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Format renders an amount as dollars with thousands separators, e.g. "$19,425.00" or "-$120.50".
func Format(v decimal.Decimal) string {
	rounded := v.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	f, _ := rounded.Float64()
	return sign + "$" + humanize.FormatFloat("#,###.##", f)
}

// FormatFloat renders a plain float amount the same way as Format.
func FormatFloat(v float64) string {
	return Format(decimal.NewFromFloat(v))
}

// ToFloat converts a decimal to a float64 rounded to cents.
func ToFloat(v decimal.Decimal) float64 {
	f, _ := v.Round(2).Float64()
	return f
}
