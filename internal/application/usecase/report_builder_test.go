package usecase

import (
	"testing"
	"time"

	"github.com/diillson/lease-exit-go/internal/domain/analysis"
	"github.com/diillson/lease-exit-go/internal/domain/calculation"
	"github.com/diillson/lease-exit-go/internal/domain/entity"
	"github.com/diillson/lease-exit-go/internal/domain/tax"
)

func f64(v float64) *float64 {
	return &v
}

func TestReportBuilder_Build(t *testing.T) {
	b := newReportBuilder(calculation.NewCalculator(calculation.DefaultPrecision), tax.DefaultTable())
	b.newID = func() string { return "report-1" }
	b.now = func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.FixedZone("EST", -5*3600)) }
	b.generator = "lease-exit 1.4.0 (commit: abc1234)"

	lease := sampleRecord().Lease
	ret := entity.ScenarioResult{
		Type: entity.ScenarioReturn, TotalCost: d("2755"), NetCost: d("2755"),
		LineItems: []entity.LineItem{
			{Label: "Remaining payments", Amount: d("2359.98")},
			{Label: "Disposition fee", Amount: d("395")},
		},
	}
	transfer := entity.ScenarioResult{Type: entity.ScenarioLeaseTransfer, TotalCost: d("575"), NetCost: d("575")}
	sell := entity.ScenarioResult{
		Type: entity.ScenarioSellPrivately, TotalCost: d("21000"), NetCost: d("-1200.5"),
		LineItems: []entity.LineItem{
			{Label: "Buyout cost", Amount: d("21000")},
			{Label: "Lease payoff", Amount: d("19700"), SubItem: true},
		},
	}

	res := analysisResult{
		comparison: entity.ComparisonData{
			Scenarios:       []entity.ScenarioResult{sell, transfer, ret},
			BestOption:      &sell,
			ReturnOption:    ret,
			SavingsVsReturn: d("3955.5"),
			Equity:          &entity.Equity{MarketValue: d("22000"), BuyoutCostExTax: d("20000"), Amount: d("2000"), Positive: true},
		},
		series: &entity.TimelineSeries{
			Scenarios: []entity.ScenarioType{entity.ScenarioReturn, entity.ScenarioExtension},
			Data: []entity.TimelineDataPoint{
				{Month: 0, Return: 2755, Buyout: 21000, EarlyTermination: 3000},
				{Month: 1, Return: 2361.67, Buyout: 20600, EarlyTermination: 2900, Extension: f64(2507.44)},
			},
		},
		crossovers: []entity.CrossoverPoint{{Month: 1, Message: "At month 1, Return becomes cheaper than Lease Transfer"}},
	}

	report, err := b.build(lease, "abc123", res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.ID != "report-1" || report.Fingerprint != "abc123" || report.GeneratedAt.Location() != time.UTC {
		t.Errorf("unexpected identity fields: %s %s %v", report.ID, report.Fingerprint, report.GeneratedAt)
	}
	if report.Generator != "lease-exit 1.4.0 (commit: abc1234)" {
		t.Errorf("unexpected generator %q", report.Generator)
	}
	if report.BestOption != "Sell Privately" || report.SavingsVsReturn != "$3,955.50" {
		t.Errorf("unexpected best option %q / savings %q", report.BestOption, report.SavingsVsReturn)
	}
	if report.Equity != "Positive equity of $2,000.00 (market value $22,000.00 vs. buyout $20,000.00 before tax)" {
		t.Errorf("unexpected equity %q", report.Equity)
	}

	first := report.Scenarios[0]
	if first.Rank != 1 || !first.Best || first.NetCost != "-$1,200.50" || first.NetCostRaw != -1200.5 {
		t.Errorf("unexpected first row: %+v", first)
	}
	if len(first.LineItems) != 2 || first.LineItems[1] != "  - Lease payoff: $19,700.00" {
		t.Errorf("unexpected line items: %v", first.LineItems)
	}
	if report.Scenarios[2].Best {
		t.Errorf("only one row should be best")
	}

	if len(report.TimelineColumns) != 2 || report.TimelineColumns[1] != "Extension" {
		t.Errorf("unexpected timeline columns: %v", report.TimelineColumns)
	}
	if report.Timeline[0].Costs[1] != "" || report.Timeline[1].Costs[1] != "$2,507.44" {
		t.Errorf("unexpected timeline costs: %+v", report.Timeline)
	}
	if report.Timeline[1].Cheapest != "Return Vehicle" || report.Timeline[1].CheapestCost != 2361.67 {
		t.Errorf("unexpected cheapest: %+v", report.Timeline[1])
	}
	if len(report.Crossovers) != 1 {
		t.Errorf("expected crossover messages")
	}
}

func TestReportBuilder_UnsupportedState(t *testing.T) {
	b := newReportBuilder(calculation.NewCalculator(calculation.DefaultPrecision), tax.DefaultTable())
	lease := sampleRecord().Lease
	lease.StateCode = "ZZ"
	if _, err := b.build(lease, "k", analysisResult{}); err == nil {
		t.Error("expected error for an unsupported state")
	}
}

func TestFormatTaxRule(t *testing.T) {
	table := tax.DefaultTable()
	tests := []struct {
		state string
		want  string
	}{
		{"TX", "TX, upfront at 6.25%"},
		{"OR", "OR, no sales tax on leases"},
	}
	for _, tc := range tests {
		rule, err := table.Lookup(tc.state)
		if err != nil {
			t.Fatalf("lookup %s: %v", tc.state, err)
		}
		if got := formatTaxRule(rule); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.state, tc.want, got)
		}
	}
}

func TestFingerprint(t *testing.T) {
	lease := sampleRecord().Lease
	opts := analysis.DefaultOptions()

	base := fingerprint(lease, nil, opts, 20, false)
	if base != fingerprint(lease, nil, opts, 20, false) {
		t.Fatal("fingerprint is not stable")
	}

	changed := map[string]string{
		"market value": fingerprint(lease, &entity.MarketValue{Value: d("20000")}, opts, 20, false),
		"precision":    fingerprint(lease, nil, opts, 10, false),
		"timeline":     fingerprint(lease, nil, opts, 20, true),
	}
	opts.TransferFee = d("500")
	changed["options"] = fingerprint(lease, nil, opts, 20, false)

	for name, fp := range changed {
		if fp == base {
			t.Errorf("%s should change the fingerprint", name)
		}
	}
}
