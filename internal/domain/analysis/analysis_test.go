package analysis

import (
	"errors"
	"strings"
	"testing"

	"github.com/diillson/lease-exit-go/internal/domain/calculation"
	"github.com/diillson/lease-exit-go/internal/domain/entity"
	"github.com/diillson/lease-exit-go/internal/domain/scenario"
	"github.com/diillson/lease-exit-go/internal/domain/tax"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func f(v float64) *float64 {
	return &v
}

func newAnalyzer(opts Options) *Analyzer {
	eval := scenario.NewEvaluator(calculation.NewCalculator(calculation.DefaultPrecision), tax.DefaultTable())
	return NewAnalyzer(eval, opts)
}

func sampleLease(elapsed int) entity.Lease {
	return entity.Lease{
		NetCapCost:          d("30000"),
		ResidualValue:       d("18000"),
		MoneyFactor:         d("0.00125"),
		MonthlyPayment:      d("393.33"),
		TermMonths:          36,
		MonthsElapsed:       elapsed,
		CurrentMileage:      elapsed * 1000,
		AllowedMilesPerYear: 12000,
		OverageFeePerMile:   d("0.25"),
		DispositionFee:      d("395"),
		PurchaseFee:         d("300"),
		StateCode:           "TX",
	}
}

func TestCompare_WithoutMarketValue(t *testing.T) {
	data, err := newAnalyzer(DefaultOptions()).Compare(sampleLease(24), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(data.Scenarios) != 6 {
		t.Fatalf("expected 6 scenarios, got %d", len(data.Scenarios))
	}
	last := data.Scenarios[len(data.Scenarios)-1]
	if last.Type != entity.ScenarioSellPrivately || !last.Incomplete {
		t.Errorf("expected incomplete sell-privately last, got %s (incomplete=%v)", last.Type, last.Incomplete)
	}
	if data.BestOption == nil || data.BestOption.Incomplete {
		t.Fatalf("expected a complete best option")
	}
	if data.HasMarketValue || data.Equity != nil {
		t.Errorf("expected no market value and no equity")
	}
	if data.ReturnOption.Type != entity.ScenarioReturn {
		t.Errorf("expected return baseline, got %s", data.ReturnOption.Type)
	}
	want := data.ReturnOption.NetCost.Sub(data.BestOption.NetCost)
	if !data.SavingsVsReturn.Equal(want) {
		t.Errorf("expected savings %s, got %s", want, data.SavingsVsReturn)
	}

	for i := 1; i < len(data.Scenarios)-1; i++ {
		if data.Scenarios[i].NetCost.LessThan(data.Scenarios[i-1].NetCost) {
			t.Errorf("scenarios not sorted at %d", i)
		}
	}
}

func TestCompare_WithMarketValue(t *testing.T) {
	market := &entity.MarketValue{Value: d("24000")}
	data, err := newAnalyzer(DefaultOptions()).Compare(sampleLease(24), market)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !data.HasMarketValue || data.Equity == nil {
		t.Fatalf("expected equity summary")
	}
	for _, s := range data.Scenarios {
		if s.Incomplete {
			t.Errorf("%s should be complete when a market value is present", s.Type)
		}
	}

	var buyout entity.BuyoutDetails
	for _, s := range data.Scenarios {
		if s.Type == entity.ScenarioBuyout {
			buyout = s.Details.(entity.BuyoutDetails)
		}
	}
	exTax := buyout.PayoffAmount.Add(d("300"))
	if !data.Equity.BuyoutCostExTax.Equal(exTax) || !data.Equity.Amount.Equal(d("24000").Sub(exTax)) {
		t.Errorf("unexpected equity: %+v", data.Equity)
	}
	if !data.Equity.Positive {
		t.Errorf("expected positive equity")
	}
}

func TestCompare_InvalidLease(t *testing.T) {
	a := newAnalyzer(DefaultOptions())

	bad := sampleLease(12)
	bad.TermMonths = 0
	if _, err := a.Compare(bad, nil); !errors.Is(err, ErrInvalidLease) {
		t.Errorf("expected ErrInvalidLease for zero term, got %v", err)
	}

	bad = sampleLease(40)
	if _, err := a.Compare(bad, nil); !errors.Is(err, ErrInvalidLease) {
		t.Errorf("expected ErrInvalidLease for elapsed beyond term, got %v", err)
	}

	bad = sampleLease(12)
	bad.StateCode = "XX"
	if _, err := a.Compare(bad, nil); !errors.Is(err, tax.ErrUnsupportedState) {
		t.Errorf("expected ErrUnsupportedState, got %v", err)
	}
}

func result(kind entity.ScenarioType, net string, incomplete bool) entity.ScenarioResult {
	return entity.ScenarioResult{Type: kind, NetCost: d(net), TotalCost: d(net), Incomplete: incomplete}
}

func TestRank(t *testing.T) {
	tests := []struct {
		name     string
		results  []entity.ScenarioResult
		wantBest entity.ScenarioType
		wantTie  bool
	}{
		{
			name: "exactly 100 apart is a tie",
			results: []entity.ScenarioResult{
				result(entity.ScenarioReturn, "1100", false),
				result(entity.ScenarioBuyout, "1000", false),
			},
			wantBest: entity.ScenarioBuyout,
			wantTie:  true,
		},
		{
			name: "more than 100 apart is not a tie",
			results: []entity.ScenarioResult{
				result(entity.ScenarioReturn, "1100.01", false),
				result(entity.ScenarioBuyout, "1000", false),
			},
			wantBest: entity.ScenarioBuyout,
			wantTie:  false,
		},
		{
			name: "incomplete is ranked last and never best",
			results: []entity.ScenarioResult{
				result(entity.ScenarioSellPrivately, "-5000", true),
				result(entity.ScenarioReturn, "4000", false),
				result(entity.ScenarioExtension, "2500", false),
			},
			wantBest: entity.ScenarioExtension,
			wantTie:  false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ranked, best, tie := Rank(tc.results)
			if best == nil || best.Type != tc.wantBest {
				t.Fatalf("expected best %s, got %+v", tc.wantBest, best)
			}
			if tie != tc.wantTie {
				t.Errorf("expected tie=%v, got %v", tc.wantTie, tie)
			}
			for i, r := range ranked {
				if r.Incomplete && i != len(ranked)-1 {
					t.Errorf("incomplete result ranked at %d of %d", i, len(ranked))
				}
			}
		})
	}
}

func TestRank_AllIncomplete(t *testing.T) {
	_, best, tie := Rank([]entity.ScenarioResult{result(entity.ScenarioSellPrivately, "10", true)})
	if best != nil || tie {
		t.Errorf("expected no best option and no tie")
	}
}

func TestTimeline(t *testing.T) {
	a := newAnalyzer(DefaultOptions())

	series, err := a.Timeline(sampleLease(30), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if series.MonthsRemaining != 6 || len(series.Data) != 7 {
		t.Fatalf("expected 7 points for 6 remaining months, got %d (%d)", len(series.Data), series.MonthsRemaining)
	}
	for _, s := range series.Scenarios {
		if s == entity.ScenarioSellPrivately {
			t.Errorf("sell-privately should not be listed without a market value")
		}
	}

	for i, p := range series.Data {
		if p.Month != i {
			t.Errorf("expected month %d, got %d", i, p.Month)
		}
		if p.SellPrivately != nil {
			t.Errorf("month %d: sell-privately should be nil without a market value", i)
		}
		last := i == len(series.Data)-1
		if (p.Extension != nil) != last {
			t.Errorf("month %d: extension should only be set at the final month", i)
		}
		if (p.LeaseTransfer == nil) != last {
			t.Errorf("month %d: lease transfer should only be nil at the final month", i)
		}
		if i > 0 && p.Buyout > series.Data[i-1].Buyout {
			t.Errorf("month %d: buyout cost should not rise over time", i)
		}
	}

	final := series.Data[len(series.Data)-1]
	if final.Buyout != 19425 {
		t.Errorf("expected final buyout 19425, got %v", final.Buyout)
	}
}

func TestTimeline_WithMarketValue(t *testing.T) {
	series, err := newAnalyzer(DefaultOptions()).Timeline(sampleLease(33), &entity.MarketValue{Value: d("21000")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !series.HasMarketValue {
		t.Errorf("expected HasMarketValue")
	}
	for _, p := range series.Data {
		if p.SellPrivately == nil {
			t.Fatalf("month %d: expected sell-privately cost", p.Month)
		}
	}
	if got := *series.Data[len(series.Data)-1].SellPrivately; got != -1575 {
		t.Errorf("expected final sell-privately net -1575, got %v", got)
	}
}

func TestTimeline_AtLeaseEnd(t *testing.T) {
	series, err := newAnalyzer(DefaultOptions()).Timeline(sampleLease(36), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Data) != 1 || series.Data[0].Extension == nil {
		t.Fatalf("expected a single point with extension, got %+v", series.Data)
	}
}

func TestFindCrossovers(t *testing.T) {
	series := entity.TimelineSeries{Data: []entity.TimelineDataPoint{
		{Month: 0, Return: 1000, Buyout: 1200, EarlyTermination: 1500, LeaseTransfer: f(900)},
		{Month: 1, Return: 900, Buyout: 1100, EarlyTermination: 1400, LeaseTransfer: f(900)},
		{Month: 2, Return: 800, Buyout: 700, EarlyTermination: 1300, LeaseTransfer: f(900)},
		{Month: 3, Return: 700, Buyout: 600, EarlyTermination: 1200, Extension: f(100)},
	}}

	got := FindCrossovers(series)
	if len(got) != 3 {
		t.Fatalf("expected 3 crossovers, got %d: %+v", len(got), got)
	}

	// Month 1: return and transfer tie at 900, return wins by scenario order.
	want := []struct {
		month     int
		scenario  entity.ScenarioType
		overtakes entity.ScenarioType
	}{
		{1, entity.ScenarioReturn, entity.ScenarioLeaseTransfer},
		{2, entity.ScenarioBuyout, entity.ScenarioReturn},
		{3, entity.ScenarioExtension, entity.ScenarioBuyout},
	}
	for i, w := range want {
		if got[i].Month != w.month || got[i].Scenario != w.scenario || got[i].Overtakes != w.overtakes {
			t.Errorf("crossover %d: expected %+v, got %+v", i, w, got[i])
		}
		if got[i].Message == "" {
			t.Errorf("crossover %d: expected a message", i)
		}
	}
}

func TestFindCrossovers_NoChange(t *testing.T) {
	series := entity.TimelineSeries{Data: []entity.TimelineDataPoint{
		{Month: 0, Return: 100, Buyout: 200, EarlyTermination: 300},
		{Month: 1, Return: 90, Buyout: 200, EarlyTermination: 300},
	}}
	if got := FindCrossovers(series); len(got) != 0 {
		t.Errorf("expected no crossovers, got %+v", got)
	}
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name       string
		later      float64
		wantWait   bool
		wantSaving float64
	}{
		{"saving of exactly 100 does not wait", 400.10, false, 100},
		{"saving of 101 waits", 399.10, true, 101},
		{"no saving", 600, false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			series := entity.TimelineSeries{Data: []entity.TimelineDataPoint{
				{Month: 0, Return: 500.10, Buyout: 800, EarlyTermination: 900},
				{Month: 1, Return: 700, Buyout: tc.later, EarlyTermination: 900},
			}}

			got, err := Recommend(series)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.BestNow.Scenario != entity.ScenarioReturn || got.BestNow.Cost != 500.10 {
				t.Errorf("unexpected best now: %+v", got.BestNow)
			}
			if got.ShouldWait != tc.wantWait {
				t.Errorf("expected shouldWait=%v, got %v", tc.wantWait, got.ShouldWait)
			}
			if got.Savings != tc.wantSaving {
				t.Errorf("expected savings %v, got %v", tc.wantSaving, got.Savings)
			}
			if got.Message == "" {
				t.Errorf("expected a message")
			}
		})
	}
}

func TestRecommend_MessageNamesTheAction(t *testing.T) {
	tests := []struct {
		name    string
		series  entity.TimelineSeries
		want    string
		notWant string
	}{
		{
			name: "buyout later",
			series: entity.TimelineSeries{MonthsRemaining: 2, Data: []entity.TimelineDataPoint{
				{Month: 0, Return: 900, Buyout: 1200, EarlyTermination: 1500},
				{Month: 1, Return: 800, Buyout: 500, EarlyTermination: 1000},
				{Month: 2, Return: 700, Buyout: 650, EarlyTermination: 650},
			}},
			want: "Waiting until month 1 to buy out the lease could save $400.00",
		},
		{
			name: "termination at lease end",
			series: entity.TimelineSeries{MonthsRemaining: 2, Data: []entity.TimelineDataPoint{
				{Month: 0, Return: 900, Buyout: 1200, EarlyTermination: 1500},
				{Month: 1, Return: 800, Buyout: 1100, EarlyTermination: 1000},
				{Month: 2, Return: 700, Buyout: 650, EarlyTermination: 0},
			}},
			want:    "Waiting until month 2 to finish the lease and hand the vehicle back",
			notWant: "to Early Termination",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Recommend(tc.series)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.ShouldWait {
				t.Fatalf("expected a wait recommendation, got %+v", got)
			}
			if !strings.Contains(got.Message, tc.want) {
				t.Errorf("expected message to contain %q, got %q", tc.want, got.Message)
			}
			if tc.notWant != "" && strings.Contains(got.Message, tc.notWant) {
				t.Errorf("message should not contain %q: %q", tc.notWant, got.Message)
			}
		})
	}
}

func TestRecommend_EmptySeries(t *testing.T) {
	if _, err := Recommend(entity.TimelineSeries{}); !errors.Is(err, ErrEmptyTimeline) {
		t.Errorf("expected ErrEmptyTimeline, got %v", err)
	}
}
