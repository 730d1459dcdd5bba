package calculation

import "github.com/shopspring/decimal"

var aprFactor = decimal.NewFromInt(2400)

// Calculator evaluates lease formulas under a fixed Precision.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	precision Precision
}

// NewCalculator creates a Calculator bound to the given precision.
func NewCalculator(p Precision) *Calculator {
	return &Calculator{precision: p}
}

// Precision returns the precision the calculator was built with.
func (c *Calculator) Precision() Precision {
	return c.precision
}

// Depreciation is the monthly depreciation charge: (netCapCost - residualValue) / termMonths.
func (c *Calculator) Depreciation(netCapCost, residualValue decimal.Decimal, termMonths int) decimal.Decimal {
	return c.precision.Div(netCapCost.Sub(residualValue), decimal.NewFromInt(int64(termMonths)))
}

// RentCharge is the monthly finance charge: (netCapCost + residualValue) * moneyFactor.
func (c *Calculator) RentCharge(netCapCost, residualValue, moneyFactor decimal.Decimal) decimal.Decimal {
	return netCapCost.Add(residualValue).Mul(moneyFactor)
}

// MonthlyPayment is depreciation plus rent charge, before tax.
func (c *Calculator) MonthlyPayment(netCapCost, residualValue, moneyFactor decimal.Decimal, termMonths int) decimal.Decimal {
	return c.Depreciation(netCapCost, residualValue, termMonths).
		Add(c.RentCharge(netCapCost, residualValue, moneyFactor))
}

// TotalCost is the full cost of carrying the lease to term.
func (c *Calculator) TotalCost(monthlyPayment decimal.Decimal, termMonths int, downPayment, totalTax decimal.Decimal) decimal.Decimal {
	return monthlyPayment.Mul(decimal.NewFromInt(int64(termMonths))).Add(downPayment).Add(totalTax)
}

// MoneyFactorToAPR converts a money factor to an annual percentage rate.
func (c *Calculator) MoneyFactorToAPR(moneyFactor decimal.Decimal) decimal.Decimal {
	return c.precision.Round(moneyFactor.Mul(aprFactor))
}

// APRToMoneyFactor converts an annual percentage rate to a money factor.
func (c *Calculator) APRToMoneyFactor(apr decimal.Decimal) decimal.Decimal {
	return c.precision.Div(apr, aprFactor)
}
