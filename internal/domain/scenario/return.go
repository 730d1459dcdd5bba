package scenario

import (
	"fmt"

	"github.com/diillson/lease-exit-go/internal/domain/calculation"
	"github.com/diillson/lease-exit-go/internal/domain/entity"
	"github.com/diillson/lease-exit-go/pkg/money"
	"github.com/shopspring/decimal"
)

// ReturnParams are the inputs for returning the vehicle to the lessor.
type ReturnParams struct {
	MonthlyPayment      decimal.Decimal
	TermMonths          int
	MonthsElapsed       int
	DispositionFee      decimal.Decimal
	CurrentMileage      int
	AllowedMilesPerYear int
	OverageFeePerMile   decimal.Decimal
	WearAndTearEstimate decimal.Decimal
}

// Return prices handing the vehicle back: remaining payments, disposition fee,
// projected excess mileage and estimated wear and tear.
func (e *Evaluator) Return(p ReturnParams) (entity.ScenarioResult, error) {
	if p.MonthsElapsed < 0 || p.MonthsElapsed > p.TermMonths {
		return entity.ScenarioResult{}, fmt.Errorf("%w: %d not in [0, %d]", ErrElapsedOutOfRange, p.MonthsElapsed, p.TermMonths)
	}

	remaining := remainingMonths(p.TermMonths, p.MonthsElapsed)
	remainingPayments := p.MonthlyPayment.Mul(months(remaining))

	var warnings []string
	var projection *entity.MileageProjection
	excessMileage := decimal.Zero

	if p.MonthsElapsed > 0 {
		proj, err := e.calc.ProjectMileage(calculation.MileageInput{
			CurrentMileage:      p.CurrentMileage,
			MonthsElapsed:       p.MonthsElapsed,
			TermMonths:          p.TermMonths,
			AllowedMilesPerYear: p.AllowedMilesPerYear,
			OverageFeePerMile:   p.OverageFeePerMile,
		})
		if err != nil {
			return entity.ScenarioResult{}, err
		}
		projection = &proj
		excessMileage = proj.OverageCost
	} else {
		warnings = append(warnings, "No months have elapsed yet, so end-of-lease mileage cannot be projected.")
	}

	wear := p.WearAndTearEstimate
	total := remainingPayments.Add(p.DispositionFee).Add(excessMileage).Add(wear)

	lineItems := []entity.LineItem{
		item("Remaining payments", remainingPayments, entity.LineItemLiability,
			fmt.Sprintf("%d payments of %s", remaining, money.Format(p.MonthlyPayment))),
		item("Disposition fee", p.DispositionFee, entity.LineItemFee,
			"Charged by the lessor when the vehicle is returned instead of purchased"),
	}
	if projection != nil {
		lineItems = append(lineItems, item("Excess mileage", excessMileage, entity.LineItemFee,
			fmt.Sprintf("%s projected miles over the allowance at %s per mile",
				projection.OverageMiles.StringFixed(0), money.Format(p.OverageFeePerMile))))
	}
	if wear.IsPositive() {
		lineItems = append(lineItems, item("Wear and tear", wear, entity.LineItemFee,
			"Estimated charges for damage beyond normal wear"))
	}

	if projection != nil && projection.OverageMiles.IsPositive() {
		warnings = append(warnings, fmt.Sprintf(
			"You are projected to finish the lease at %d miles, %s miles over your allowance (%s).",
			projection.ProjectedEndMileage, projection.OverageMiles.StringFixed(0), money.Format(excessMileage)))
	}
	if wear.IsPositive() {
		warnings = append(warnings, fmt.Sprintf(
			"A wear and tear estimate of %s is included; a pre-inspection can confirm the actual charge.",
			money.Format(wear)))
	}

	return entity.ScenarioResult{
		Type:        entity.ScenarioReturn,
		TotalCost:   total,
		NetCost:     total,
		LineItems:   lineItems,
		Warnings:    warnings,
		Disclaimers: disclaimers("Mileage projections assume you keep driving at your average monthly rate."),
		Details: entity.ReturnDetails{
			RemainingPayments:   remainingPayments,
			DispositionFee:      p.DispositionFee,
			ExcessMileageCost:   excessMileage,
			WearAndTearEstimate: wear,
			Mileage:             projection,
		},
	}, nil
}
