package entity

import "github.com/shopspring/decimal"

// Lease holds the contractual facts of a vehicle lease needed by every exit calculation.
// Money fields are decimals; counts are whole months or miles.
type Lease struct {
	Name                string          `json:"name,omitempty"`
	NetCapCost          decimal.Decimal `json:"net_cap_cost"`
	ResidualValue       decimal.Decimal `json:"residual_value"`
	MoneyFactor         decimal.Decimal `json:"money_factor"`
	MonthlyPayment      decimal.Decimal `json:"monthly_payment"`
	TermMonths          int             `json:"term_months"`
	MonthsElapsed       int             `json:"months_elapsed"`
	CurrentMileage      int             `json:"current_mileage"`
	AllowedMilesPerYear int             `json:"allowed_miles_per_year"`
	OverageFeePerMile   decimal.Decimal `json:"overage_fee_per_mile"`
	DispositionFee      decimal.Decimal `json:"disposition_fee"`
	PurchaseFee         decimal.Decimal `json:"purchase_fee"`
	DownPayment         decimal.Decimal `json:"down_payment"`
	StateCode           string          `json:"state_code"`
}

// MonthsRemaining returns the number of scheduled payments still owed.
func (l Lease) MonthsRemaining() int {
	remaining := l.TermMonths - l.MonthsElapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// MarketValue is an externally supplied estimate of what the vehicle would sell for.
type MarketValue struct {
	Value decimal.Decimal `json:"value"`
}

// LeaseRecord is a lease as stored on disk together with the optional
// valuations that accompany it.
type LeaseRecord struct {
	Lease          Lease
	MarketValue    *MarketValue
	WholesaleValue *decimal.Decimal
}
