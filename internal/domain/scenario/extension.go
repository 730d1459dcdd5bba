package scenario

import (
	"fmt"

	"github.com/diillson/lease-exit-go/internal/domain/entity"
	"github.com/diillson/lease-exit-go/internal/domain/tax"
	"github.com/diillson/lease-exit-go/pkg/money"
	"github.com/shopspring/decimal"
)

const warrantyWarningMonths = 6

// ExtensionParams are the inputs for continuing the lease month to month.
type ExtensionParams struct {
	MonthlyPayment  decimal.Decimal
	StateCode       string
	ExtensionMonths int
}

// Extension prices keeping the vehicle for extra months at the current payment plus tax.
func (e *Evaluator) Extension(p ExtensionParams) (entity.ScenarioResult, error) {
	if p.ExtensionMonths <= 0 {
		return entity.ScenarioResult{}, fmt.Errorf("%w: got %d", ErrInvalidExtension, p.ExtensionMonths)
	}

	rule, err := e.taxes.Lookup(p.StateCode)
	if err != nil {
		return entity.ScenarioResult{}, err
	}

	monthlyTax := decimal.Zero
	if rule.Timing != tax.TimingNone {
		monthlyTax = p.MonthlyPayment.Mul(rule.Rate)
	}

	n := months(p.ExtensionMonths)
	payments := p.MonthlyPayment.Mul(n)
	taxes := monthlyTax.Mul(n)
	total := payments.Add(taxes)

	lineItems := []entity.LineItem{
		item("Extension payments", payments, entity.LineItemLiability,
			fmt.Sprintf("%d payments of %s", p.ExtensionMonths, money.Format(p.MonthlyPayment))),
	}
	if taxes.IsPositive() {
		lineItems = append(lineItems, item("Tax on extension payments", taxes, entity.LineItemTax,
			fmt.Sprintf("%s per month", money.Format(monthlyTax))))
	}

	warnings := []string{
		"Extensions are at the lessor's discretion; the payment, rate and terms may change.",
	}
	if p.ExtensionMonths > warrantyWarningMonths {
		warnings = append(warnings, fmt.Sprintf(
			"An extension of %d months may outlast the factory warranty; check your coverage.", p.ExtensionMonths))
	}

	return entity.ScenarioResult{
		Type:        entity.ScenarioExtension,
		TotalCost:   total,
		NetCost:     total,
		LineItems:   lineItems,
		Warnings:    warnings,
		Disclaimers: disclaimers("You still face the return or buyout decision when the extension ends."),
		Details: entity.ExtensionDetails{
			ExtensionMonths: p.ExtensionMonths,
			MonthlyPayment:  p.MonthlyPayment,
			MonthlyTax:      monthlyTax,
		},
	}, nil
}
