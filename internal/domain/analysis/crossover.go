package analysis

import (
	"errors"
	"fmt"

	"github.com/diillson/lease-exit-go/internal/domain/entity"
	"github.com/diillson/lease-exit-go/pkg/money"
	"github.com/shopspring/decimal"
)

// ErrEmptyTimeline is returned when a recommendation is requested for a series without data.
var ErrEmptyTimeline = errors.New("timeline has no data points")

// waitThreshold is the saving that must be strictly exceeded before waiting is recommended.
var waitThreshold = decimal.NewFromInt(100)

// Cheapest returns the lowest-cost applicable scenario at a point. Ties go to
// the scenario that comes first in entity.ScenarioOrder.
func Cheapest(p entity.TimelineDataPoint) (entity.ScenarioCost, bool) {
	var best entity.ScenarioCost
	found := false
	for _, s := range entity.ScenarioOrder {
		cost, ok := p.Cost(s)
		if !ok {
			continue
		}
		if !found || cost < best.Cost {
			best = entity.ScenarioCost{Scenario: s, Month: p.Month, Cost: cost}
			found = true
		}
	}
	return best, found
}

// FindCrossovers reports, in chronological order, every month at which the
// cheapest scenario differs from the month before.
func FindCrossovers(series entity.TimelineSeries) []entity.CrossoverPoint {
	var points []entity.CrossoverPoint
	for i := 1; i < len(series.Data); i++ {
		prev, okPrev := Cheapest(series.Data[i-1])
		curr, okCurr := Cheapest(series.Data[i])
		if !okPrev || !okCurr || prev.Scenario == curr.Scenario {
			continue
		}
		points = append(points, entity.CrossoverPoint{
			Month:     series.Data[i].Month,
			Scenario:  curr.Scenario,
			Overtakes: prev.Scenario,
			Message: fmt.Sprintf("At month %d, %s becomes cheaper than %s",
				series.Data[i].Month, curr.Scenario.Label(), prev.Scenario.Label()),
		})
	}
	return points
}

// Recommend compares the cheapest option now with the cheapest option anywhere
// on the timeline and advises waiting only when that saves more than $100.
func Recommend(series entity.TimelineSeries) (entity.RecommendationResult, error) {
	if len(series.Data) == 0 {
		return entity.RecommendationResult{}, ErrEmptyTimeline
	}

	bestNow, ok := Cheapest(series.Data[0])
	if !ok {
		return entity.RecommendationResult{}, ErrEmptyTimeline
	}

	bestOverall := bestNow
	for _, p := range series.Data[1:] {
		if c, ok := Cheapest(p); ok && c.Cost < bestOverall.Cost {
			bestOverall = c
		}
	}

	savings := decimal.NewFromFloat(bestNow.Cost).Sub(decimal.NewFromFloat(bestOverall.Cost))
	shouldWait := savings.GreaterThan(waitThreshold)

	var message string
	if shouldWait {
		message = fmt.Sprintf("Waiting until month %d to %s could save %s compared with the best option today (%s).",
			bestOverall.Month, waitAction(series, bestOverall), money.Format(savings), bestNow.Scenario.Label())
	} else {
		message = fmt.Sprintf("%s is the best option now; waiting would not save more than %s.",
			bestNow.Scenario.Label(), money.Format(waitThreshold))
	}

	return entity.RecommendationResult{
		BestNow:     bestNow,
		BestOverall: bestOverall,
		ShouldWait:  shouldWait,
		Savings:     money.ToFloat(savings),
		Message:     message,
	}, nil
}

// waitAction phrases the deferred choice. Terminating once no payments remain
// is simply finishing the lease.
func waitAction(series entity.TimelineSeries, c entity.ScenarioCost) string {
	if c.Scenario == entity.ScenarioEarlyTermination && series.MonthsRemaining > 0 && c.Month >= series.MonthsRemaining {
		return "finish the lease and hand the vehicle back"
	}
	return c.Scenario.Action()
}
