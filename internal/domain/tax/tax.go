// Package tax holds the static state lease-tax rule table and the policy for
// applying it to a lease.
package tax

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnsupportedState is returned when a state code has no tax rule.
var ErrUnsupportedState = errors.New("unsupported state")

// Timing says when lease tax is collected.
type Timing string

const (
	// TimingUpfront taxes the total of scheduled payments at signing.
	TimingUpfront Timing = "upfront"
	// TimingMonthly adds tax to every payment.
	TimingMonthly Timing = "monthly"
	// TimingNone means no sales tax on leases.
	TimingNone Timing = "none"
)

// StateTaxRule describes how one state taxes vehicle leases.
type StateTaxRule struct {
	StateCode            string          `json:"state_code"`
	Timing               Timing          `json:"timing"`
	Rate                 decimal.Decimal `json:"rate"`
	AppliesToDownPayment bool            `json:"applies_to_down_payment"`
}

// LeaseTax is the tax owed on a lease under a state rule.
type LeaseTax struct {
	Rule        StateTaxRule    `json:"rule"`
	UpfrontTax  decimal.Decimal `json:"upfront_tax"`
	MonthlyTax  decimal.Decimal `json:"monthly_tax"`
	TotalTax    decimal.Decimal `json:"total_tax"`
	TaxedAmount decimal.Decimal `json:"taxed_amount"`
}

// Table is an immutable lookup of tax rules by state code.
type Table struct {
	rules map[string]StateTaxRule
	codes []string
}

// NewTable builds a table from rules. Later duplicates replace earlier ones.
func NewTable(rules []StateTaxRule) *Table {
	t := &Table{rules: make(map[string]StateTaxRule, len(rules))}
	for _, r := range rules {
		code := strings.ToUpper(strings.TrimSpace(r.StateCode))
		r.StateCode = code
		t.rules[code] = r
	}
	for code := range t.rules {
		t.codes = append(t.codes, code)
	}
	sort.Strings(t.codes)
	return t
}

// DefaultTable returns a table built from the built-in state rules.
func DefaultTable() *Table {
	return NewTable(defaultRules())
}

// SupportedStates lists the known state codes in alphabetical order.
func (t *Table) SupportedStates() []string {
	out := make([]string, len(t.codes))
	copy(out, t.codes)
	return out
}

// Lookup returns the rule for a state code, case-insensitively.
func (t *Table) Lookup(stateCode string) (StateTaxRule, error) {
	code := strings.ToUpper(strings.TrimSpace(stateCode))
	rule, ok := t.rules[code]
	if !ok {
		return StateTaxRule{}, fmt.Errorf("%w %q: supported states are %s",
			ErrUnsupportedState, stateCode, strings.Join(t.codes, ", "))
	}
	return rule, nil
}

// Rate returns the tax rate that applies to a one-off purchase in the state.
func (t *Table) Rate(stateCode string) (decimal.Decimal, error) {
	rule, err := t.Lookup(stateCode)
	if err != nil {
		return decimal.Zero, err
	}
	if rule.Timing == TimingNone {
		return decimal.Zero, nil
	}
	return rule.Rate, nil
}

// CalculateLeaseTax applies the state's rule to a lease. Upfront states tax the
// total of scheduled payments at signing; monthly states tax each payment and,
// when the rule says so, the cap cost reduction once at signing.
func (t *Table) CalculateLeaseTax(stateCode string, monthlyPayment decimal.Decimal, termMonths int, capCostReduction decimal.Decimal) (LeaseTax, error) {
	rule, err := t.Lookup(stateCode)
	if err != nil {
		return LeaseTax{}, err
	}

	months := decimal.NewFromInt(int64(termMonths))
	result := LeaseTax{
		Rule:        rule,
		UpfrontTax:  decimal.Zero,
		MonthlyTax:  decimal.Zero,
		TotalTax:    decimal.Zero,
		TaxedAmount: decimal.Zero,
	}

	switch rule.Timing {
	case TimingUpfront:
		result.TaxedAmount = monthlyPayment.Mul(months)
		result.UpfrontTax = result.TaxedAmount.Mul(rule.Rate)
		result.TotalTax = result.UpfrontTax
	case TimingMonthly:
		result.MonthlyTax = monthlyPayment.Mul(rule.Rate)
		result.TaxedAmount = monthlyPayment.Mul(months)
		if rule.AppliesToDownPayment && capCostReduction.IsPositive() {
			result.UpfrontTax = capCostReduction.Mul(rule.Rate)
			result.TaxedAmount = result.TaxedAmount.Add(capCostReduction)
		}
		result.TotalTax = result.MonthlyTax.Mul(months).Add(result.UpfrontTax)
	}

	return result, nil
}
