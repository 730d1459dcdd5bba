package calculation

import "github.com/shopspring/decimal"

const maxSolverIterations = 100

var (
	one               = decimal.NewFromInt(1)
	two               = decimal.NewFromInt(2)
	derivativeStep    = decimal.New(1, -8)
	residualTolerance = decimal.New(1, -10)
	minDerivative     = decimal.New(1, -20)
	zeroRateThreshold = decimal.New(1, -9)
	defaultRateSeed   = decimal.New(3, -3)
)

// PayoffInput describes a lease for payoff purposes. MoneyFactor is optional and
// only used to seed the rate solver.
type PayoffInput struct {
	CapCost        decimal.Decimal
	ResidualValue  decimal.Decimal
	MonthlyPayment decimal.Decimal
	TermMonths     int
	MonthsElapsed  int
	MoneyFactor    *decimal.Decimal
}

// RateResult is the outcome of solving for the implicit periodic rate.
// It is either Converged or FallbackRequired.
type RateResult interface {
	isRateResult()
}

// Converged carries the periodic rate that reproduces the contract's residual.
type Converged struct {
	Rate       decimal.Decimal
	Iterations int
}

// FallbackRequired signals that the payoff must be computed on a straight-line basis.
type FallbackRequired struct {
	Reason string
}

func (Converged) isRateResult()        {}
func (FallbackRequired) isRateResult() {}

// balanceAfter returns the balance subject to rent charge after k periods:
//
//	BSRC_k = BSRC_0*(1+r)^k - payment*((1+r)^k - 1)/r
func (c *Calculator) balanceAfter(bsrc0, payment, rate decimal.Decimal, k int) decimal.Decimal {
	if k <= 0 {
		return bsrc0
	}
	if rate.IsZero() {
		return bsrc0.Sub(payment.Mul(decimal.NewFromInt(int64(k))))
	}
	growth := c.precision.Pow(one.Add(rate), k)
	annuity := c.precision.Div(growth.Sub(one), rate)
	return c.precision.Mul(bsrc0, growth).Sub(c.precision.Mul(payment, annuity))
}

// SolveImplicitRate finds the periodic rate r for which the balance after the
// full term equals residualValue - payment, using Newton-Raphson with a centered
// difference derivative.
func (c *Calculator) SolveImplicitRate(in PayoffInput) RateResult {
	if in.TermMonths <= 0 {
		return FallbackRequired{Reason: "term must be positive"}
	}

	bsrc0 := in.CapCost.Sub(in.MonthlyPayment)
	target := in.ResidualValue.Sub(in.MonthlyPayment)
	residual := func(rate decimal.Decimal) decimal.Decimal {
		return c.balanceAfter(bsrc0, in.MonthlyPayment, rate, in.TermMonths).Sub(target)
	}

	rate := defaultRateSeed
	if in.MoneyFactor != nil && in.MoneyFactor.IsPositive() {
		rate = in.MoneyFactor.Mul(two)
	}

	step := derivativeStep.Mul(two)
	for i := 0; i < maxSolverIterations; i++ {
		value := residual(rate)
		if value.Abs().LessThan(residualTolerance) {
			return Converged{Rate: rate, Iterations: i}
		}

		slope := c.precision.Div(
			residual(rate.Add(derivativeStep)).Sub(residual(rate.Sub(derivativeStep))),
			step,
		)
		if slope.Abs().LessThan(minDerivative) {
			return FallbackRequired{Reason: "derivative too close to zero"}
		}

		next := rate.Sub(c.precision.Div(value, slope))
		if next.IsNegative() {
			next = decimal.Zero
		}
		rate = next
	}

	return FallbackRequired{Reason: "rate did not converge"}
}

// ComputeLeasePayoff returns the adjusted lease balance after MonthsElapsed months
// using the constant-yield method. Solver failure or a zero rate falls back to
// straight-line depreciation, so a usable payoff is always returned.
func (c *Calculator) ComputeLeasePayoff(in PayoffInput) decimal.Decimal {
	if in.MonthsElapsed >= in.TermMonths {
		return in.ResidualValue
	}

	converged, ok := c.SolveImplicitRate(in).(Converged)
	if !ok || converged.Rate.Abs().LessThan(zeroRateThreshold) {
		return c.StraightLinePayoff(in)
	}

	periods := in.MonthsElapsed + 1
	if periods > in.TermMonths {
		periods = in.TermMonths
	}

	bsrc0 := in.CapCost.Sub(in.MonthlyPayment)
	return c.balanceAfter(bsrc0, in.MonthlyPayment, converged.Rate, periods).Add(in.MonthlyPayment)
}

// StraightLinePayoff is residual plus the depreciation not yet paid.
func (c *Calculator) StraightLinePayoff(in PayoffInput) decimal.Decimal {
	remaining := in.TermMonths - in.MonthsElapsed
	if remaining <= 0 {
		return in.ResidualValue
	}
	monthly := c.Depreciation(in.CapCost, in.ResidualValue, in.TermMonths)
	return in.ResidualValue.Add(monthly.Mul(decimal.NewFromInt(int64(remaining))))
}
