package scenario

import (
	"fmt"

	"github.com/diillson/lease-exit-go/internal/domain/entity"
	"github.com/diillson/lease-exit-go/pkg/money"
	"github.com/shopspring/decimal"
)

const shortLeaseMonths = 6

var highTransferFee = decimal.NewFromInt(500)

// LeaseTransferParams are the inputs for handing the lease to a new lessee.
type LeaseTransferParams struct {
	TransferFee       decimal.Decimal
	MarketplaceFee    decimal.Decimal
	RegistrationFee   decimal.Decimal
	IncentivePayments decimal.Decimal
	MonthsRemaining   int
}

// LeaseTransfer prices transferring the lease: lessor, marketplace and
// registration fees plus any incentive paid to attract a taker.
func (e *Evaluator) LeaseTransfer(p LeaseTransferParams) (entity.ScenarioResult, error) {
	total := p.TransferFee.Add(p.MarketplaceFee).Add(p.RegistrationFee).Add(p.IncentivePayments)

	lineItems := []entity.LineItem{
		item("Transfer fee", p.TransferFee, entity.LineItemFee, "Charged by the lessor to process the transfer"),
		item("Marketplace fee", p.MarketplaceFee, entity.LineItemFee, "Listing fee for a lease transfer marketplace"),
		item("Registration fee", p.RegistrationFee, entity.LineItemFee, "Title and registration update for the new lessee"),
	}
	if p.IncentivePayments.IsPositive() {
		lineItems = append(lineItems, item("Incentive payments", p.IncentivePayments, entity.LineItemLiability,
			"Cash offered to the new lessee to take over the lease"))
	}

	var warnings []string
	if p.TransferFee.GreaterThan(highTransferFee) {
		warnings = append(warnings, fmt.Sprintf(
			"The transfer fee of %s is high; confirm it with your lessor.", money.Format(p.TransferFee)))
	}
	if p.MonthsRemaining < shortLeaseMonths {
		warnings = append(warnings, fmt.Sprintf(
			"Only %d months remain; short leases are hard to transfer.", p.MonthsRemaining))
	}

	return entity.ScenarioResult{
		Type:        entity.ScenarioLeaseTransfer,
		TotalCost:   total,
		NetCost:     total,
		LineItems:   lineItems,
		Warnings:    warnings,
		Disclaimers: disclaimers("Some lessors keep the original lessee liable after a transfer."),
		Details: entity.LeaseTransferDetails{
			TransferFee:       p.TransferFee,
			MarketplaceFee:    p.MarketplaceFee,
			RegistrationFee:   p.RegistrationFee,
			IncentivePayments: p.IncentivePayments,
			MonthsRemaining:   p.MonthsRemaining,
		},
	}, nil
}
