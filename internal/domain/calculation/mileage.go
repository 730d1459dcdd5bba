package calculation

import (
	"errors"
	"fmt"

	"github.com/diillson/lease-exit-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ErrInvalidElapsedMonths is returned when mileage cannot be projected because no months have elapsed.
var ErrInvalidElapsedMonths = errors.New("months elapsed must be greater than zero to project mileage")

var monthsPerYear = decimal.NewFromInt(12)

// MileageInput is the odometer and allowance data used to project end-of-lease overage.
type MileageInput struct {
	CurrentMileage      int
	MonthsElapsed       int
	TermMonths          int
	AllowedMilesPerYear int
	OverageFeePerMile   decimal.Decimal
}

// ProjectMileage extrapolates the average monthly mileage to the end of the term
// and prices any miles above the allowance.
func (c *Calculator) ProjectMileage(in MileageInput) (entity.MileageProjection, error) {
	if in.MonthsElapsed <= 0 {
		return entity.MileageProjection{}, fmt.Errorf("%w: got %d", ErrInvalidElapsedMonths, in.MonthsElapsed)
	}

	average := c.precision.Div(decimal.NewFromInt(int64(in.CurrentMileage)), decimal.NewFromInt(int64(in.MonthsElapsed)))
	projected := average.Mul(decimal.NewFromInt(int64(in.TermMonths))).Round(0)

	allowed := c.precision.Div(
		decimal.NewFromInt(int64(in.AllowedMilesPerYear)).Mul(decimal.NewFromInt(int64(in.TermMonths))),
		monthsPerYear,
	)

	overage := decimal.Max(decimal.Zero, projected.Sub(allowed))

	return entity.MileageProjection{
		AverageMilesPerMonth: average,
		ProjectedEndMileage:  projected.IntPart(),
		AllowedMiles:         allowed,
		OverageMiles:         overage,
		OverageCost:          overage.Mul(in.OverageFeePerMile),
	}, nil
}
