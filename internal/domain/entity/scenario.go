package entity

import "github.com/shopspring/decimal"

// ScenarioType identifies a lease exit path.
type ScenarioType string

const (
	ScenarioReturn           ScenarioType = "return"
	ScenarioBuyout           ScenarioType = "buyout"
	ScenarioSellPrivately    ScenarioType = "sell-privately"
	ScenarioEarlyTermination ScenarioType = "early-termination"
	ScenarioExtension        ScenarioType = "extension"
	ScenarioLeaseTransfer    ScenarioType = "lease-transfer"
)

// ScenarioOrder is the fixed ordering used for display and for breaking ties.
var ScenarioOrder = []ScenarioType{
	ScenarioReturn,
	ScenarioBuyout,
	ScenarioSellPrivately,
	ScenarioEarlyTermination,
	ScenarioExtension,
	ScenarioLeaseTransfer,
}

// Action describes acting on the scenario, for use after "to" in a sentence.
func (s ScenarioType) Action() string {
	switch s {
	case ScenarioReturn:
		return "return the vehicle"
	case ScenarioBuyout:
		return "buy out the lease"
	case ScenarioSellPrivately:
		return "sell the vehicle privately"
	case ScenarioEarlyTermination:
		return "terminate the lease early"
	case ScenarioExtension:
		return "extend the lease"
	case ScenarioLeaseTransfer:
		return "transfer the lease"
	default:
		return "choose " + string(s)
	}
}

// Label returns a human readable name for the scenario.
func (s ScenarioType) Label() string {
	switch s {
	case ScenarioReturn:
		return "Return Vehicle"
	case ScenarioBuyout:
		return "Buyout"
	case ScenarioSellPrivately:
		return "Sell Privately"
	case ScenarioEarlyTermination:
		return "Early Termination"
	case ScenarioExtension:
		return "Extension"
	case ScenarioLeaseTransfer:
		return "Lease Transfer"
	default:
		return string(s)
	}
}

// LineItemType categorizes a line item.
type LineItemType string

const (
	LineItemAsset     LineItemType = "asset"
	LineItemLiability LineItemType = "liability"
	LineItemFee       LineItemType = "fee"
	LineItemTax       LineItemType = "tax"
)

// LineItem is one auditable component of a scenario total. Sub-items break down
// their parent and are not summed on their own.
type LineItem struct {
	Label       string          `json:"label"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Type        LineItemType    `json:"type"`
	SubItem     bool            `json:"sub_item,omitempty"`
}

// ScenarioResult is the itemized outcome of one exit path.
// NetCost is the cost to the lessee's wallet; a negative value is a net profit.
type ScenarioResult struct {
	Type        ScenarioType    `json:"type"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	NetCost     decimal.Decimal `json:"net_cost"`
	LineItems   []LineItem      `json:"line_items"`
	Warnings    []string        `json:"warnings"`
	Disclaimers []string        `json:"disclaimers"`
	Incomplete  bool            `json:"incomplete,omitempty"`
	Details     ScenarioDetails `json:"details,omitempty"`
}

// TopLevelTotal sums the line items that are not sub-items.
func (r ScenarioResult) TopLevelTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range r.LineItems {
		if item.SubItem {
			continue
		}
		total = total.Add(item.Amount)
	}
	return total
}

// ScenarioDetails carries the fields specific to one scenario kind.
// The set of implementations is closed to this package.
type ScenarioDetails interface {
	Scenario() ScenarioType
	isScenarioDetails()
}

// ReturnDetails is attached to return scenario results.
type ReturnDetails struct {
	RemainingPayments   decimal.Decimal    `json:"remaining_payments"`
	DispositionFee      decimal.Decimal    `json:"disposition_fee"`
	ExcessMileageCost   decimal.Decimal    `json:"excess_mileage_cost"`
	WearAndTearEstimate decimal.Decimal    `json:"wear_and_tear_estimate"`
	Mileage             *MileageProjection `json:"mileage,omitempty"`
}

// BuyoutDetails is attached to buyout scenario results.
type BuyoutDetails struct {
	PayoffAmount          decimal.Decimal `json:"payoff_amount"`
	ResidualValue         decimal.Decimal `json:"residual_value"`
	RemainingDepreciation decimal.Decimal `json:"remaining_depreciation"`
	PurchaseFee           decimal.Decimal `json:"purchase_fee"`
	SalesTax              decimal.Decimal `json:"sales_tax"`
	TaxRate               decimal.Decimal `json:"tax_rate"`
}

// SellPrivatelyDetails is attached to sell-privately scenario results.
type SellPrivatelyDetails struct {
	Buyout             BuyoutDetails   `json:"buyout"`
	BuyoutCost         decimal.Decimal `json:"buyout_cost"`
	EstimatedSalePrice decimal.Decimal `json:"estimated_sale_price"`
	Shortfall          decimal.Decimal `json:"shortfall"`
}

// EarlyTerminationOption names which side of the "lesser of" clause was chosen.
type EarlyTerminationOption string

const (
	TerminationGapOption       EarlyTerminationOption = "payoff-minus-wholesale"
	TerminationRemainingOption EarlyTerminationOption = "remaining-obligations"
)

// EarlyTerminationDetails is attached to early termination scenario results.
type EarlyTerminationDetails struct {
	PayoffAmount      decimal.Decimal        `json:"payoff_amount"`
	WholesaleValue    *decimal.Decimal       `json:"wholesale_value,omitempty"`
	OptionA           *decimal.Decimal       `json:"option_a,omitempty"`
	OptionB           decimal.Decimal        `json:"option_b"`
	RemainingPayments decimal.Decimal        `json:"remaining_payments"`
	ExcessWear        decimal.Decimal        `json:"excess_wear"`
	ExcessMileage     decimal.Decimal        `json:"excess_mileage"`
	Chosen            EarlyTerminationOption `json:"chosen"`
}

// ExtensionDetails is attached to extension scenario results.
type ExtensionDetails struct {
	ExtensionMonths int             `json:"extension_months"`
	MonthlyPayment  decimal.Decimal `json:"monthly_payment"`
	MonthlyTax      decimal.Decimal `json:"monthly_tax"`
}

// LeaseTransferDetails is attached to lease transfer scenario results.
type LeaseTransferDetails struct {
	TransferFee       decimal.Decimal `json:"transfer_fee"`
	MarketplaceFee    decimal.Decimal `json:"marketplace_fee"`
	RegistrationFee   decimal.Decimal `json:"registration_fee"`
	IncentivePayments decimal.Decimal `json:"incentive_payments"`
	MonthsRemaining   int             `json:"months_remaining"`
}

func (ReturnDetails) Scenario() ScenarioType           { return ScenarioReturn }
func (BuyoutDetails) Scenario() ScenarioType           { return ScenarioBuyout }
func (SellPrivatelyDetails) Scenario() ScenarioType    { return ScenarioSellPrivately }
func (EarlyTerminationDetails) Scenario() ScenarioType { return ScenarioEarlyTermination }
func (ExtensionDetails) Scenario() ScenarioType        { return ScenarioExtension }
func (LeaseTransferDetails) Scenario() ScenarioType    { return ScenarioLeaseTransfer }

func (ReturnDetails) isScenarioDetails()           {}
func (BuyoutDetails) isScenarioDetails()           {}
func (SellPrivatelyDetails) isScenarioDetails()    {}
func (EarlyTerminationDetails) isScenarioDetails() {}
func (ExtensionDetails) isScenarioDetails()        {}
func (LeaseTransferDetails) isScenarioDetails()    {}

// MileageProjection is the end-of-lease mileage forecast.
type MileageProjection struct {
	AverageMilesPerMonth decimal.Decimal `json:"average_miles_per_month"`
	ProjectedEndMileage  int64           `json:"projected_end_mileage"`
	AllowedMiles         decimal.Decimal `json:"allowed_miles"`
	OverageMiles         decimal.Decimal `json:"overage_miles"`
	OverageCost          decimal.Decimal `json:"overage_cost"`
}
