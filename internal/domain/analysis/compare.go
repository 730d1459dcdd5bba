package analysis

import (
	"sort"

	"github.com/diillson/lease-exit-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// tieThreshold is the net cost gap at or under which the two best options are shown as tied.
var tieThreshold = decimal.NewFromInt(100)

// Compare evaluates every scenario at the lease's current month and ranks them
// by net cost. Incomplete scenarios are ranked last and never chosen as best.
func (a *Analyzer) Compare(l entity.Lease, market *entity.MarketValue) (entity.ComparisonData, error) {
	if err := validateLease(l); err != nil {
		return entity.ComparisonData{}, err
	}

	snap, err := a.evaluate(l, market, l.MonthsElapsed, l.CurrentMileage)
	if err != nil {
		return entity.ComparisonData{}, err
	}

	ranked, best, tie := Rank(snap.all())

	data := entity.ComparisonData{
		Scenarios:       ranked,
		BestOption:      best,
		ReturnOption:    snap.ret,
		SavingsVsReturn: decimal.Zero,
		Tie:             tie,
		HasMarketValue:  market != nil,
	}
	if best != nil {
		data.SavingsVsReturn = snap.ret.NetCost.Sub(best.NetCost)
	}

	if market != nil {
		if details, ok := snap.buyout.Details.(entity.BuyoutDetails); ok {
			exTax := details.PayoffAmount.Add(details.PurchaseFee)
			amount := market.Value.Sub(exTax)
			data.Equity = &entity.Equity{
				MarketValue:     market.Value,
				BuyoutCostExTax: exTax,
				Amount:          amount,
				Positive:        amount.IsPositive(),
			}
		}
	}

	return data, nil
}

// Rank sorts results by net cost with incomplete results last, and returns the
// best complete result and whether the two best complete results are tied.
func Rank(results []entity.ScenarioResult) ([]entity.ScenarioResult, *entity.ScenarioResult, bool) {
	ranked := make([]entity.ScenarioResult, len(results))
	copy(ranked, results)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Incomplete != ranked[j].Incomplete {
			return !ranked[i].Incomplete
		}
		return ranked[i].NetCost.LessThan(ranked[j].NetCost)
	})

	var complete []int
	for i := range ranked {
		if !ranked[i].Incomplete {
			complete = append(complete, i)
		}
	}

	if len(complete) == 0 {
		return ranked, nil, false
	}

	best := ranked[complete[0]]
	tie := false
	if len(complete) > 1 {
		gap := ranked[complete[1]].NetCost.Sub(best.NetCost).Abs()
		tie = gap.LessThanOrEqual(tieThreshold)
	}

	return ranked, &best, tie
}
