package entity

// TimelineDataPoint holds the cost of each exit path if executed at Month offsets from now.
// A nil cost means the scenario is not applicable at that month.
type TimelineDataPoint struct {
	Month            int      `json:"month"`
	Return           float64  `json:"return"`
	Buyout           float64  `json:"buyout"`
	SellPrivately    *float64 `json:"sell_privately"`
	EarlyTermination float64  `json:"early_termination"`
	Extension        *float64 `json:"extension"`
	LeaseTransfer    *float64 `json:"lease_transfer"`
}

// Cost returns the cost recorded for a scenario and whether it is applicable.
func (p TimelineDataPoint) Cost(s ScenarioType) (float64, bool) {
	switch s {
	case ScenarioReturn:
		return p.Return, true
	case ScenarioBuyout:
		return p.Buyout, true
	case ScenarioEarlyTermination:
		return p.EarlyTermination, true
	case ScenarioSellPrivately:
		return deref(p.SellPrivately)
	case ScenarioExtension:
		return deref(p.Extension)
	case ScenarioLeaseTransfer:
		return deref(p.LeaseTransfer)
	}
	return 0, false
}

func deref(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

// TimelineSeries is the month-by-month projection of every scenario.
type TimelineSeries struct {
	Data            []TimelineDataPoint `json:"data"`
	MonthsRemaining int                 `json:"months_remaining"`
	HasMarketValue  bool                `json:"has_market_value"`
	Scenarios       []ScenarioType      `json:"scenarios"`
}

// CrossoverPoint records a change in which scenario is cheapest between two consecutive months.
type CrossoverPoint struct {
	Month     int          `json:"month"`
	Scenario  ScenarioType `json:"scenario"`
	Overtakes ScenarioType `json:"overtakes"`
	Message   string       `json:"message"`
}

// ScenarioCost is a scenario's cost at a given month.
type ScenarioCost struct {
	Scenario ScenarioType `json:"scenario"`
	Month    int          `json:"month"`
	Cost     float64      `json:"cost"`
}

// RecommendationResult compares acting now with the cheapest point on the timeline.
type RecommendationResult struct {
	BestNow     ScenarioCost `json:"best_now"`
	BestOverall ScenarioCost `json:"best_overall"`
	ShouldWait  bool         `json:"should_wait"`
	Savings     float64      `json:"savings"`
	Message     string       `json:"message"`
}
