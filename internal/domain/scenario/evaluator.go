// Package scenario evaluates each lease exit path into an itemized
// ScenarioResult with warnings and disclaimers.
package scenario

import (
	"errors"

	"github.com/diillson/lease-exit-go/internal/domain/calculation"
	"github.com/diillson/lease-exit-go/internal/domain/entity"
	"github.com/diillson/lease-exit-go/internal/domain/tax"
	"github.com/shopspring/decimal"
)

var (
	// ErrElapsedOutOfRange is returned when months elapsed falls outside [0, term].
	ErrElapsedOutOfRange = errors.New("months elapsed out of range")
	// ErrInvalidExtension is returned for an extension of zero or fewer months.
	ErrInvalidExtension = errors.New("extension months must be positive")
)

// Evaluator runs the scenario cost models. It is immutable and safe for concurrent use.
type Evaluator struct {
	calc  *calculation.Calculator
	taxes *tax.Table
}

// NewEvaluator creates an Evaluator using the given calculator and tax table.
func NewEvaluator(calc *calculation.Calculator, taxes *tax.Table) *Evaluator {
	return &Evaluator{calc: calc, taxes: taxes}
}

// Calculator exposes the calculator the evaluator was built with.
func (e *Evaluator) Calculator() *calculation.Calculator {
	return e.calc
}

// Taxes exposes the tax table the evaluator was built with.
func (e *Evaluator) Taxes() *tax.Table {
	return e.taxes
}

const (
	disclaimerEstimate = "Figures are estimates for comparison only and are not a quote from your leasing company."
	disclaimerTaxes    = "Tax estimates use state-level rates; county and city taxes may apply."
	disclaimerContract = "Your lease contract governs all fees and charges; review it before acting."
)

func disclaimers(extra ...string) []string {
	out := []string{disclaimerEstimate, disclaimerTaxes, disclaimerContract}
	return append(out, extra...)
}

func months(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

func remainingMonths(term, elapsed int) int {
	if elapsed >= term {
		return 0
	}
	return term - elapsed
}

func item(label string, amount decimal.Decimal, kind entity.LineItemType, description string) entity.LineItem {
	return entity.LineItem{Label: label, Amount: amount, Type: kind, Description: description}
}

func subItem(label string, amount decimal.Decimal, kind entity.LineItemType, description string) entity.LineItem {
	li := item(label, amount, kind, description)
	li.SubItem = true
	return li
}
