package scenario

import (
	"fmt"

	"github.com/diillson/lease-exit-go/internal/domain/calculation"
	"github.com/diillson/lease-exit-go/internal/domain/entity"
	"github.com/diillson/lease-exit-go/pkg/money"
	"github.com/shopspring/decimal"
)

// BuyoutParams are the inputs for purchasing the vehicle from the lessor.
// MoneyFactor only seeds the payoff solver and may be zero.
type BuyoutParams struct {
	NetCapCost     decimal.Decimal
	ResidualValue  decimal.Decimal
	MoneyFactor    decimal.Decimal
	MonthlyPayment decimal.Decimal
	TermMonths     int
	MonthsElapsed  int
	PurchaseFee    decimal.Decimal
	StateCode      string
}

func (p BuyoutParams) payoffInput() calculation.PayoffInput {
	in := calculation.PayoffInput{
		CapCost:        p.NetCapCost,
		ResidualValue:  p.ResidualValue,
		MonthlyPayment: p.MonthlyPayment,
		TermMonths:     p.TermMonths,
		MonthsElapsed:  p.MonthsElapsed,
	}
	if p.MoneyFactor.IsPositive() {
		mf := p.MoneyFactor
		in.MoneyFactor = &mf
	}
	return in
}

// Buyout prices purchasing the vehicle: constant-yield payoff, purchase option
// fee and sales tax on the residual value.
func (e *Evaluator) Buyout(p BuyoutParams) (entity.ScenarioResult, error) {
	details, err := e.buyoutDetails(p)
	if err != nil {
		return entity.ScenarioResult{}, err
	}

	total := details.PayoffAmount.Add(details.PurchaseFee).Add(details.SalesTax)
	remaining := remainingMonths(p.TermMonths, p.MonthsElapsed)

	var warnings []string
	if remaining > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"The payoff of %s is an estimate with %d months remaining; contact your leasing company for an exact quote.",
			money.Format(details.PayoffAmount), remaining))
	}

	return entity.ScenarioResult{
		Type:        entity.ScenarioBuyout,
		TotalCost:   total,
		NetCost:     total,
		LineItems:   buyoutLineItems(details, remaining),
		Warnings:    warnings,
		Disclaimers: disclaimers("Payoff uses the constant-yield method; your lessor's figure may differ slightly."),
		Details:     details,
	}, nil
}

func (e *Evaluator) buyoutDetails(p BuyoutParams) (entity.BuyoutDetails, error) {
	rate, err := e.taxes.Rate(p.StateCode)
	if err != nil {
		return entity.BuyoutDetails{}, err
	}

	payoff := e.calc.ComputeLeasePayoff(p.payoffInput())

	return entity.BuyoutDetails{
		PayoffAmount:          payoff,
		ResidualValue:         p.ResidualValue,
		RemainingDepreciation: payoff.Sub(p.ResidualValue),
		PurchaseFee:           p.PurchaseFee,
		SalesTax:              p.ResidualValue.Mul(rate),
		TaxRate:               rate,
	}, nil
}

func buyoutLineItems(b entity.BuyoutDetails, remaining int) []entity.LineItem {
	items := []entity.LineItem{
		item("Lease payoff", b.PayoffAmount, entity.LineItemLiability,
			"Adjusted lease balance owed to the lessor"),
		subItem("Residual value", b.ResidualValue, entity.LineItemLiability,
			"Purchase price fixed in the contract"),
	}
	if remaining > 0 {
		items = append(items, subItem("Remaining depreciation", b.RemainingDepreciation, entity.LineItemLiability,
			fmt.Sprintf("Depreciation not yet paid over %d remaining months", remaining)))
	}
	items = append(items,
		item("Purchase option fee", b.PurchaseFee, entity.LineItemFee, "Fee charged to exercise the purchase option"),
		item("Sales tax", b.SalesTax, entity.LineItemTax,
			fmt.Sprintf("%s%% of the residual value", b.TaxRate.Mul(decimal.NewFromInt(100)).String())),
	)
	return items
}
