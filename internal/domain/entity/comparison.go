package entity

import "github.com/shopspring/decimal"

// Equity compares the market value of the vehicle against the pre-tax cost of buying it out.
type Equity struct {
	MarketValue     decimal.Decimal `json:"market_value"`
	BuyoutCostExTax decimal.Decimal `json:"buyout_cost_ex_tax"`
	Amount          decimal.Decimal `json:"amount"`
	Positive        bool            `json:"positive"`
}

// ComparisonData is the ranked result of every exit scenario for one lease.
type ComparisonData struct {
	Scenarios       []ScenarioResult `json:"scenarios"`
	BestOption      *ScenarioResult  `json:"best_option"`
	ReturnOption    ScenarioResult   `json:"return_option"`
	SavingsVsReturn decimal.Decimal  `json:"savings_vs_return"`
	Tie             bool             `json:"tie"`
	Equity          *Equity          `json:"equity,omitempty"`
	HasMarketValue  bool             `json:"has_market_value"`
}
