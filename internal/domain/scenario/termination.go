package scenario

import (
	"fmt"

	"github.com/diillson/lease-exit-go/internal/domain/entity"
	"github.com/diillson/lease-exit-go/pkg/money"
	"github.com/shopspring/decimal"
)

const earlyPenaltyMonths = 12

// EarlyTerminationParams are the inputs for ending the lease early.
// WholesaleValue is optional.
type EarlyTerminationParams struct {
	NetCapCost     decimal.Decimal
	ResidualValue  decimal.Decimal
	MoneyFactor    decimal.Decimal
	MonthlyPayment decimal.Decimal
	TermMonths     int
	MonthsElapsed  int
	WholesaleValue *decimal.Decimal
	ExcessWear     decimal.Decimal
	ExcessMileage  decimal.Decimal
}

// EarlyTermination applies the contract's "lesser of" clause: the gap between
// payoff and wholesale value, or the remaining obligations.
func (e *Evaluator) EarlyTermination(p EarlyTerminationParams) (entity.ScenarioResult, error) {
	payoffParams := BuyoutParams{
		NetCapCost:     p.NetCapCost,
		ResidualValue:  p.ResidualValue,
		MoneyFactor:    p.MoneyFactor,
		MonthlyPayment: p.MonthlyPayment,
		TermMonths:     p.TermMonths,
		MonthsElapsed:  p.MonthsElapsed,
	}
	payoff := e.calc.ComputeLeasePayoff(payoffParams.payoffInput())

	remaining := remainingMonths(p.TermMonths, p.MonthsElapsed)
	remainingPayments := p.MonthlyPayment.Mul(months(remaining))
	optionB := remainingPayments.Add(p.ExcessWear).Add(p.ExcessMileage)

	details := entity.EarlyTerminationDetails{
		PayoffAmount:      payoff,
		WholesaleValue:    p.WholesaleValue,
		OptionB:           optionB,
		RemainingPayments: remainingPayments,
		ExcessWear:        p.ExcessWear,
		ExcessMileage:     p.ExcessMileage,
		Chosen:            entity.TerminationRemainingOption,
	}

	cost := optionB
	if p.WholesaleValue != nil {
		optionA := decimal.Max(decimal.Zero, payoff.Sub(*p.WholesaleValue))
		details.OptionA = &optionA
		if optionA.LessThan(optionB) {
			cost = optionA
			details.Chosen = entity.TerminationGapOption
		}
	}

	var lineItems []entity.LineItem
	if details.Chosen == entity.TerminationGapOption {
		lineItems = []entity.LineItem{
			item("Early termination charge", cost, entity.LineItemLiability,
				"Payoff less the vehicle's wholesale value"),
			subItem("Lease payoff", payoff, entity.LineItemLiability, "Adjusted lease balance owed to the lessor"),
			subItem("Wholesale value credit", p.WholesaleValue.Neg(), entity.LineItemAsset,
				"Value the lessor recovers at auction"),
		}
	} else {
		lineItems = []entity.LineItem{
			item("Remaining payments", remainingPayments, entity.LineItemLiability,
				fmt.Sprintf("%d payments of %s", remaining, money.Format(p.MonthlyPayment))),
		}
		if p.ExcessWear.IsPositive() {
			lineItems = append(lineItems, item("Excess wear", p.ExcessWear, entity.LineItemFee,
				"Estimated charges for damage beyond normal wear"))
		}
		if p.ExcessMileage.IsPositive() {
			lineItems = append(lineItems, item("Excess mileage", p.ExcessMileage, entity.LineItemFee,
				"Projected charge for miles over the allowance"))
		}
	}

	var warnings []string
	if p.WholesaleValue == nil {
		warnings = append(warnings,
			"No wholesale value was provided, so only the remaining obligations were considered; this is a conservative estimate.")
	}
	if p.MonthsElapsed < earlyPenaltyMonths {
		warnings = append(warnings, fmt.Sprintf(
			"Terminating within the first %d months usually carries the steepest penalties.", earlyPenaltyMonths))
	}

	return entity.ScenarioResult{
		Type:        entity.ScenarioEarlyTermination,
		TotalCost:   cost,
		NetCost:     cost,
		LineItems:   lineItems,
		Warnings:    warnings,
		Disclaimers: disclaimers("Early termination terms vary by lessor; request the exact figure in writing."),
		Details:     details,
	}, nil
}
