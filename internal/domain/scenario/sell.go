package scenario

import (
	"fmt"

	"github.com/diillson/lease-exit-go/internal/domain/entity"
	"github.com/diillson/lease-exit-go/pkg/money"
	"github.com/shopspring/decimal"
)

// SellPrivatelyParams are the inputs for buying the vehicle out and reselling it.
// When MarketValueMissing is set, EstimatedSalePrice is a placeholder and the
// result is flagged incomplete.
type SellPrivatelyParams struct {
	Buyout             BuyoutParams
	EstimatedSalePrice decimal.Decimal
	MarketValueMissing bool
}

// SellPrivately prices a buyout followed by a private sale. NetCost is negative
// when the sale clears the buyout cost.
func (e *Evaluator) SellPrivately(p SellPrivatelyParams) (entity.ScenarioResult, error) {
	buyout, err := e.buyoutDetails(p.Buyout)
	if err != nil {
		return entity.ScenarioResult{}, err
	}

	buyoutCost := buyout.PayoffAmount.Add(buyout.PurchaseFee).Add(buyout.SalesTax)
	sale := p.EstimatedSalePrice
	net := buyoutCost.Sub(sale)
	shortfall := decimal.Max(decimal.Zero, buyout.PayoffAmount.Sub(sale))
	remaining := remainingMonths(p.Buyout.TermMonths, p.Buyout.MonthsElapsed)

	lineItems := []entity.LineItem{
		item("Buyout cost", buyoutCost, entity.LineItemLiability, "Payoff, purchase fee and sales tax"),
		subItem("Lease payoff", buyout.PayoffAmount, entity.LineItemLiability, "Adjusted lease balance owed to the lessor"),
		subItem("Purchase option fee", buyout.PurchaseFee, entity.LineItemFee, "Fee charged to exercise the purchase option"),
		subItem("Sales tax", buyout.SalesTax, entity.LineItemTax, "Tax on the residual value"),
		item("Sale proceeds", sale.Neg(), entity.LineItemAsset, "Estimated private sale price"),
	}

	var warnings []string
	if p.MarketValueMissing {
		warnings = append(warnings,
			"No market value was provided; the residual value is used as a placeholder sale price.")
	}
	if sale.LessThan(buyout.PayoffAmount) {
		warnings = append(warnings, fmt.Sprintf(
			"The sale price is %s below the payoff; you must cover the shortfall before the title can transfer.",
			money.Format(shortfall)))
	}
	if remaining > 0 {
		warnings = append(warnings,
			"Coordinate the buyout and the sale closely; the payoff changes every month and some lessors restrict third-party buyouts.")
	}

	return entity.ScenarioResult{
		Type:        entity.ScenarioSellPrivately,
		TotalCost:   buyoutCost,
		NetCost:     net,
		LineItems:   lineItems,
		Warnings:    warnings,
		Disclaimers: disclaimers("Private sale prices vary with condition, region and demand."),
		Incomplete:  p.MarketValueMissing,
		Details: entity.SellPrivatelyDetails{
			Buyout:             buyout,
			BuyoutCost:         buyoutCost,
			EstimatedSalePrice: sale,
			Shortfall:          shortfall,
		},
	}, nil
}
