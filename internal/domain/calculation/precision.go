package calculation

import "github.com/shopspring/decimal"

// guardDigits are carried on top of Precision.Places by divisions and
// compounding so that results rounded to Places are stable.
const guardDigits = 8

// Precision is the decimal working precision. Rounding is half-up
// (half away from zero), as implemented by decimal.Round and decimal.DivRound.
type Precision struct {
	Places int32
}

// DefaultPrecision keeps 20 fractional digits, well beyond cent-level money
// compounded over a 84 month term.
var DefaultPrecision = Precision{Places: 20}

func (p Precision) scale() int32 {
	if p.Places <= 0 {
		return DefaultPrecision.Places + guardDigits
	}
	return p.Places + guardDigits
}

// Div divides a by b at the working scale.
func (p Precision) Div(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, p.scale())
}

// Mul multiplies and rounds to the working scale.
func (p Precision) Mul(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b).Round(p.scale())
}

// Round rounds a value to Places.
func (p Precision) Round(v decimal.Decimal) decimal.Decimal {
	places := p.Places
	if places <= 0 {
		places = DefaultPrecision.Places
	}
	return v.Round(places)
}

// Pow raises base to a non-negative integer exponent by repeated multiplication,
// rounding at every step.
func (p Precision) Pow(base decimal.Decimal, exp int) decimal.Decimal {
	result := decimal.NewFromInt(1)
	for i := 0; i < exp; i++ {
		result = p.Mul(result, base)
	}
	return result
}
