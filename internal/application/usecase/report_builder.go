package usecase

import (
	"fmt"
	"time"

	"github.com/diillson/lease-exit-go/internal/domain/analysis"
	"github.com/diillson/lease-exit-go/internal/domain/calculation"
	"github.com/diillson/lease-exit-go/internal/domain/entity"
	"github.com/diillson/lease-exit-go/internal/domain/tax"
	"github.com/diillson/lease-exit-go/pkg/money"
	"github.com/diillson/lease-exit-go/pkg/version"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// analysisResult is everything the engine produced for one run.
type analysisResult struct {
	comparison     entity.ComparisonData
	series         *entity.TimelineSeries
	crossovers     []entity.CrossoverPoint
	recommendation *entity.RecommendationResult
}

// reportBuilder turns engine output into a display-ready entity.Report.
type reportBuilder struct {
	calc      *calculation.Calculator
	taxes     *tax.Table
	newID     func() string
	now       func() time.Time
	generator string
}

func newReportBuilder(calc *calculation.Calculator, taxes *tax.Table) *reportBuilder {
	return &reportBuilder{
		calc:      calc,
		taxes:     taxes,
		newID:     func() string { return uuid.New().String() },
		now:       time.Now,
		generator: version.Generator(),
	}
}

func (b *reportBuilder) build(l entity.Lease, fingerprint string, res analysisResult) (entity.Report, error) {
	summary, err := b.summary(l, res.comparison)
	if err != nil {
		return entity.Report{}, err
	}

	report := entity.Report{
		ID:              b.newID(),
		GeneratedAt:     b.now().UTC(),
		LeaseName:       l.Name,
		Fingerprint:     fingerprint,
		Generator:       b.generator,
		Summary:         summary,
		Scenarios:       scenarioRows(res.comparison),
		Tie:             res.comparison.Tie,
		SavingsVsReturn: money.Format(res.comparison.SavingsVsReturn),
		Recommendation:  res.recommendation,
	}
	if best := res.comparison.BestOption; best != nil {
		report.BestOption = best.Type.Label()
	}
	if eq := res.comparison.Equity; eq != nil {
		report.Equity = formatEquity(*eq)
	}
	if res.series != nil {
		report.TimelineColumns, report.Timeline = timelineRows(*res.series)
	}
	for _, c := range res.crossovers {
		report.Crossovers = append(report.Crossovers, c.Message)
	}

	return report, nil
}

// summary lists the contract terms, the cost of carrying the lease to term and
// the tax owed on it.
func (b *reportBuilder) summary(l entity.Lease, comparison entity.ComparisonData) ([]entity.SummaryItem, error) {
	leaseTax, err := b.taxes.CalculateLeaseTax(l.StateCode, l.MonthlyPayment, l.TermMonths, l.DownPayment)
	if err != nil {
		return nil, err
	}

	apr := b.calc.MoneyFactorToAPR(l.MoneyFactor)
	total := b.calc.TotalCost(l.MonthlyPayment, l.TermMonths, l.DownPayment, leaseTax.TotalTax)

	items := []entity.SummaryItem{
		{Label: "Net cap cost", Value: money.Format(l.NetCapCost)},
		{Label: "Residual value", Value: money.Format(l.ResidualValue)},
		{Label: "Money factor", Value: fmt.Sprintf("%s (%s%% APR)", l.MoneyFactor.String(), apr.StringFixed(2))},
		{Label: "Monthly payment", Value: money.Format(l.MonthlyPayment)},
		{Label: "Monthly depreciation", Value: money.Format(b.calc.Depreciation(l.NetCapCost, l.ResidualValue, l.TermMonths))},
		{Label: "Monthly rent charge", Value: money.Format(b.calc.RentCharge(l.NetCapCost, l.ResidualValue, l.MoneyFactor))},
		{Label: "Term", Value: fmt.Sprintf("%d months (%d elapsed, %d remaining)", l.TermMonths, l.MonthsElapsed, l.MonthsRemaining())},
		{Label: "Lease tax", Value: formatTaxRule(leaseTax.Rule)},
		{Label: "Total lease tax", Value: money.Format(leaseTax.TotalTax)},
		{Label: "Total lease cost", Value: money.Format(total)},
	}

	for _, r := range comparison.Scenarios {
		if d, ok := r.Details.(entity.BuyoutDetails); ok {
			items = append(items, entity.SummaryItem{Label: "Payoff today", Value: money.Format(d.PayoffAmount)})
			break
		}
	}

	return items, nil
}

func formatTaxRule(rule tax.StateTaxRule) string {
	if rule.Timing == tax.TimingNone {
		return fmt.Sprintf("%s, no sales tax on leases", rule.StateCode)
	}
	return fmt.Sprintf("%s, %s at %s%%", rule.StateCode, rule.Timing, rule.Rate.Mul(hundred).String())
}

func formatEquity(eq entity.Equity) string {
	kind := "Negative"
	if eq.Positive {
		kind = "Positive"
	}
	return fmt.Sprintf("%s equity of %s (market value %s vs. buyout %s before tax)",
		kind, money.Format(eq.Amount.Abs()), money.Format(eq.MarketValue), money.Format(eq.BuyoutCostExTax))
}

func scenarioRows(comparison entity.ComparisonData) []entity.ScenarioRow {
	rows := make([]entity.ScenarioRow, 0, len(comparison.Scenarios))
	for i, r := range comparison.Scenarios {
		row := entity.ScenarioRow{
			Rank:        i + 1,
			Scenario:    string(r.Type),
			Label:       r.Type.Label(),
			TotalCost:   money.Format(r.TotalCost),
			NetCost:     money.Format(r.NetCost),
			NetCostRaw:  money.ToFloat(r.NetCost),
			Best:        comparison.BestOption != nil && comparison.BestOption.Type == r.Type,
			Incomplete:  r.Incomplete,
			Warnings:    r.Warnings,
			Disclaimers: r.Disclaimers,
		}
		for _, item := range r.LineItems {
			line := fmt.Sprintf("%s: %s", item.Label, money.Format(item.Amount))
			if item.SubItem {
				line = "  - " + line
			}
			row.LineItems = append(row.LineItems, line)
		}
		rows = append(rows, row)
	}
	return rows
}

func timelineRows(series entity.TimelineSeries) ([]string, []entity.TimelineRow) {
	columns := make([]string, len(series.Scenarios))
	for i, s := range series.Scenarios {
		columns[i] = s.Label()
	}

	rows := make([]entity.TimelineRow, 0, len(series.Data))
	for _, p := range series.Data {
		row := entity.TimelineRow{Month: p.Month, Costs: make([]string, len(series.Scenarios))}
		for i, s := range series.Scenarios {
			if cost, ok := p.Cost(s); ok {
				row.Costs[i] = money.FormatFloat(cost)
			}
		}
		if c, ok := analysis.Cheapest(p); ok {
			row.Cheapest = c.Scenario.Label()
			row.CheapestCost = c.Cost
		}
		rows = append(rows, row)
	}
	return columns, rows
}
