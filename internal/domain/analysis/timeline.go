package analysis

import (
	"github.com/diillson/lease-exit-go/internal/domain/entity"
	"github.com/diillson/lease-exit-go/pkg/money"
)

// Timeline re-evaluates the scenarios at every whole month from now until the
// end of the term. Extension only applies at the final month; sell-privately
// only when a market value is known; a transfer needs months left to transfer.
func (a *Analyzer) Timeline(l entity.Lease, market *entity.MarketValue) (entity.TimelineSeries, error) {
	if err := validateLease(l); err != nil {
		return entity.TimelineSeries{}, err
	}

	remaining := l.MonthsRemaining()
	series := entity.TimelineSeries{
		Data:            make([]entity.TimelineDataPoint, 0, remaining+1),
		MonthsRemaining: remaining,
		HasMarketValue:  market != nil,
		Scenarios:       timelineScenarios(market != nil),
	}

	calc := a.eval.Calculator()
	for offset := 0; offset <= remaining; offset++ {
		elapsed := l.MonthsElapsed + offset
		snap, err := a.evaluate(l, market, elapsed, projectedOdometer(l, calc, offset))
		if err != nil {
			return entity.TimelineSeries{}, err
		}

		point := entity.TimelineDataPoint{
			Month:            offset,
			Return:           money.ToFloat(snap.ret.NetCost),
			Buyout:           money.ToFloat(snap.buyout.NetCost),
			EarlyTermination: money.ToFloat(snap.termination.NetCost),
		}
		if market != nil {
			point.SellPrivately = floatPtr(money.ToFloat(snap.sell.NetCost))
		}
		if offset == remaining {
			point.Extension = floatPtr(money.ToFloat(snap.extension.NetCost))
		}
		if l.TermMonths-elapsed > 0 {
			point.LeaseTransfer = floatPtr(money.ToFloat(snap.transfer.NetCost))
		}

		series.Data = append(series.Data, point)
	}

	return series, nil
}

func timelineScenarios(hasMarketValue bool) []entity.ScenarioType {
	out := make([]entity.ScenarioType, 0, len(entity.ScenarioOrder))
	for _, s := range entity.ScenarioOrder {
		if s == entity.ScenarioSellPrivately && !hasMarketValue {
			continue
		}
		out = append(out, s)
	}
	return out
}

func floatPtr(v float64) *float64 {
	return &v
}
