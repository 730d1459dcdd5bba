package calculation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestMoneyPrimitives(t *testing.T) {
	calc := NewCalculator(DefaultPrecision)

	dep := calc.Depreciation(d("30000"), d("18000"), 36)
	if !dep.Round(2).Equal(d("333.33")) {
		t.Errorf("depreciation: expected 333.33, got %s", dep.StringFixed(2))
	}

	rent := calc.RentCharge(d("30000"), d("18000"), d("0.00125"))
	if !rent.Equal(d("60")) {
		t.Errorf("rent charge: expected 60, got %s", rent)
	}

	payment := calc.MonthlyPayment(d("30000"), d("18000"), d("0.00125"), 36)
	if !payment.Round(2).Equal(d("393.33")) {
		t.Errorf("monthly payment: expected 393.33, got %s", payment.StringFixed(2))
	}

	total := calc.TotalCost(d("393.33"), 36, d("2000"), d("884.99"))
	if !total.Equal(d("17044.87")) {
		t.Errorf("total cost: expected 17044.87, got %s", total)
	}
}

func TestMoneyFactorAPRRoundTrip(t *testing.T) {
	calc := NewCalculator(DefaultPrecision)

	factors := []string{"0", "0.00125", "0.0025", "0.00001", "0.003417"}
	for _, f := range factors {
		t.Run("mf_"+f, func(t *testing.T) {
			mf := d(f)
			back := calc.APRToMoneyFactor(calc.MoneyFactorToAPR(mf))
			if !back.Equal(mf) {
				t.Errorf("expected %s, got %s", mf, back)
			}
		})
	}

	aprs := []string{"0", "3", "5", "4.9", "7.25", "12"}
	for _, a := range aprs {
		t.Run("apr_"+a, func(t *testing.T) {
			apr := d(a)
			back := calc.MoneyFactorToAPR(calc.APRToMoneyFactor(apr))
			if !back.Equal(apr) {
				t.Errorf("expected %s, got %s", apr, back)
			}
		})
	}

	if got := calc.MoneyFactorToAPR(d("0.00125")); !got.Equal(d("3")) {
		t.Errorf("expected APR 3, got %s", got)
	}
}

func TestProjectMileage(t *testing.T) {
	calc := NewCalculator(DefaultPrecision)

	tests := []struct {
		name          string
		in            MileageInput
		wantProjected int64
		wantOverage   string
		wantCost      string
	}{
		{
			name: "over allowance",
			in: MileageInput{
				CurrentMileage: 20000, MonthsElapsed: 12, TermMonths: 36,
				AllowedMilesPerYear: 12000, OverageFeePerMile: d("0.25"),
			},
			wantProjected: 60000,
			wantOverage:   "24000",
			wantCost:      "6000",
		},
		{
			name: "under allowance",
			in: MileageInput{
				CurrentMileage: 9000, MonthsElapsed: 12, TermMonths: 36,
				AllowedMilesPerYear: 12000, OverageFeePerMile: d("0.25"),
			},
			wantProjected: 27000,
			wantOverage:   "0",
			wantCost:      "0",
		},
		{
			name: "rounds projected mileage",
			in: MileageInput{
				CurrentMileage: 10001, MonthsElapsed: 7, TermMonths: 24,
				AllowedMilesPerYear: 10000, OverageFeePerMile: d("0.20"),
			},
			wantProjected: 34289,
			wantOverage:   "14289",
			wantCost:      "2857.8",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calc.ProjectMileage(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ProjectedEndMileage != tc.wantProjected {
				t.Errorf("projected: expected %d, got %d", tc.wantProjected, got.ProjectedEndMileage)
			}
			if !got.OverageMiles.Equal(d(tc.wantOverage)) {
				t.Errorf("overage: expected %s, got %s", tc.wantOverage, got.OverageMiles)
			}
			if !got.OverageCost.Equal(d(tc.wantCost)) {
				t.Errorf("overage cost: expected %s, got %s", tc.wantCost, got.OverageCost)
			}
		})
	}
}

func TestProjectMileage_NoElapsedMonths(t *testing.T) {
	calc := NewCalculator(DefaultPrecision)

	for _, elapsed := range []int{0, -3} {
		_, err := calc.ProjectMileage(MileageInput{CurrentMileage: 100, MonthsElapsed: elapsed, TermMonths: 36})
		if !errors.Is(err, ErrInvalidElapsedMonths) {
			t.Fatalf("expected ErrInvalidElapsedMonths for %d months elapsed, got %v", elapsed, err)
		}
	}
}
