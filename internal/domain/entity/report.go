package entity

import "time"

// Report is a display-ready snapshot of one lease analysis. Every amount is
// already formatted so exporters and the console render it as-is.
type Report struct {
	ID              string                `json:"id"`
	GeneratedAt     time.Time             `json:"generated_at"`
	LeaseName       string                `json:"lease_name"`
	Fingerprint     string                `json:"fingerprint"`
	Generator       string                `json:"generator"`
	Summary         []SummaryItem         `json:"summary"`
	Scenarios       []ScenarioRow         `json:"scenarios"`
	BestOption      string                `json:"best_option,omitempty"`
	Tie             bool                  `json:"tie"`
	SavingsVsReturn string                `json:"savings_vs_return"`
	Equity          string                `json:"equity,omitempty"`
	TimelineColumns []string              `json:"timeline_columns,omitempty"`
	Timeline        []TimelineRow         `json:"timeline,omitempty"`
	Crossovers      []string              `json:"crossovers,omitempty"`
	Recommendation  *RecommendationResult `json:"recommendation,omitempty"`
}

// SummaryItem is a labelled fact about the lease, e.g. "Total lease cost".
type SummaryItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ScenarioRow is one ranked exit scenario.
type ScenarioRow struct {
	Rank        int      `json:"rank"`
	Scenario    string   `json:"scenario"`
	Label       string   `json:"label"`
	TotalCost   string   `json:"total_cost"`
	NetCost     string   `json:"net_cost"`
	NetCostRaw  float64  `json:"net_cost_raw"`
	Best        bool     `json:"best"`
	Incomplete  bool     `json:"incomplete"`
	LineItems   []string `json:"line_items"`
	Warnings    []string `json:"warnings,omitempty"`
	Disclaimers []string `json:"disclaimers,omitempty"`
}

// TimelineRow is one month of the projection. Costs follow Report.TimelineColumns;
// an empty string marks a scenario that does not apply that month.
type TimelineRow struct {
	Month        int      `json:"month"`
	Costs        []string `json:"costs"`
	Cheapest     string   `json:"cheapest"`
	CheapestCost float64  `json:"cheapest_cost"`
}
