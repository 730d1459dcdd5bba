// Package analysis ranks the exit scenarios for a lease, projects them month
// by month and derives crossover points and a wait-or-act recommendation.
package analysis

import (
	"errors"
	"fmt"

	"github.com/diillson/lease-exit-go/internal/domain/calculation"
	"github.com/diillson/lease-exit-go/internal/domain/entity"
	"github.com/diillson/lease-exit-go/internal/domain/scenario"
	"github.com/shopspring/decimal"
)

// ErrInvalidLease is returned for a lease whose term or elapsed months are inconsistent.
var ErrInvalidLease = errors.New("invalid lease")

// Options are the assumptions a lease record does not carry.
type Options struct {
	WearAndTearEstimate decimal.Decimal
	WholesaleValue      *decimal.Decimal
	ExtensionMonths     int
	TransferFee         decimal.Decimal
	MarketplaceFee      decimal.Decimal
	RegistrationFee     decimal.Decimal
	IncentivePayments   decimal.Decimal
}

// DefaultOptions returns typical assumptions for a lease transfer and extension.
func DefaultOptions() Options {
	return Options{
		WearAndTearEstimate: decimal.Zero,
		ExtensionMonths:     6,
		TransferFee:         decimal.NewFromInt(350),
		MarketplaceFee:      decimal.NewFromInt(150),
		RegistrationFee:     decimal.NewFromInt(75),
		IncentivePayments:   decimal.Zero,
	}
}

// Analyzer runs every scenario for a lease. It is immutable and safe for concurrent use.
type Analyzer struct {
	eval *scenario.Evaluator
	opts Options
}

// NewAnalyzer creates an Analyzer. A non-positive ExtensionMonths falls back to the default.
func NewAnalyzer(eval *scenario.Evaluator, opts Options) *Analyzer {
	if opts.ExtensionMonths <= 0 {
		opts.ExtensionMonths = DefaultOptions().ExtensionMonths
	}
	return &Analyzer{eval: eval, opts: opts}
}

// Options returns the assumptions the analyzer applies.
func (a *Analyzer) Options() Options {
	return a.opts
}

func validateLease(l entity.Lease) error {
	if l.TermMonths <= 0 {
		return fmt.Errorf("%w: term must be positive, got %d", ErrInvalidLease, l.TermMonths)
	}
	if l.MonthsElapsed < 0 || l.MonthsElapsed > l.TermMonths {
		return fmt.Errorf("%w: months elapsed %d not in [0, %d]", ErrInvalidLease, l.MonthsElapsed, l.TermMonths)
	}
	return nil
}

// snapshot is the set of scenario results at one point in time.
type snapshot struct {
	ret         entity.ScenarioResult
	buyout      entity.ScenarioResult
	sell        entity.ScenarioResult
	termination entity.ScenarioResult
	extension   entity.ScenarioResult
	transfer    entity.ScenarioResult
}

func (s snapshot) all() []entity.ScenarioResult {
	return []entity.ScenarioResult{s.ret, s.buyout, s.sell, s.termination, s.extension, s.transfer}
}

// evaluate runs all six scenarios as if elapsed months had passed and the
// odometer read mileage.
func (a *Analyzer) evaluate(l entity.Lease, market *entity.MarketValue, elapsed, mileage int) (snapshot, error) {
	var s snapshot
	var err error

	s.ret, err = a.eval.Return(scenario.ReturnParams{
		MonthlyPayment:      l.MonthlyPayment,
		TermMonths:          l.TermMonths,
		MonthsElapsed:       elapsed,
		DispositionFee:      l.DispositionFee,
		CurrentMileage:      mileage,
		AllowedMilesPerYear: l.AllowedMilesPerYear,
		OverageFeePerMile:   l.OverageFeePerMile,
		WearAndTearEstimate: a.opts.WearAndTearEstimate,
	})
	if err != nil {
		return s, fmt.Errorf("return scenario: %w", err)
	}

	buyout := scenario.BuyoutParams{
		NetCapCost:     l.NetCapCost,
		ResidualValue:  l.ResidualValue,
		MoneyFactor:    l.MoneyFactor,
		MonthlyPayment: l.MonthlyPayment,
		TermMonths:     l.TermMonths,
		MonthsElapsed:  elapsed,
		PurchaseFee:    l.PurchaseFee,
		StateCode:      l.StateCode,
	}
	s.buyout, err = a.eval.Buyout(buyout)
	if err != nil {
		return s, fmt.Errorf("buyout scenario: %w", err)
	}

	sell := scenario.SellPrivatelyParams{Buyout: buyout}
	if market != nil {
		sell.EstimatedSalePrice = market.Value
	} else {
		sell.EstimatedSalePrice = l.ResidualValue
		sell.MarketValueMissing = true
	}
	s.sell, err = a.eval.SellPrivately(sell)
	if err != nil {
		return s, fmt.Errorf("sell-privately scenario: %w", err)
	}

	excessMileage := decimal.Zero
	if ret, ok := s.ret.Details.(entity.ReturnDetails); ok {
		excessMileage = ret.ExcessMileageCost
	}
	s.termination, err = a.eval.EarlyTermination(scenario.EarlyTerminationParams{
		NetCapCost:     l.NetCapCost,
		ResidualValue:  l.ResidualValue,
		MoneyFactor:    l.MoneyFactor,
		MonthlyPayment: l.MonthlyPayment,
		TermMonths:     l.TermMonths,
		MonthsElapsed:  elapsed,
		WholesaleValue: a.opts.WholesaleValue,
		ExcessWear:     a.opts.WearAndTearEstimate,
		ExcessMileage:  excessMileage,
	})
	if err != nil {
		return s, fmt.Errorf("early-termination scenario: %w", err)
	}

	s.extension, err = a.eval.Extension(scenario.ExtensionParams{
		MonthlyPayment:  l.MonthlyPayment,
		StateCode:       l.StateCode,
		ExtensionMonths: a.opts.ExtensionMonths,
	})
	if err != nil {
		return s, fmt.Errorf("extension scenario: %w", err)
	}

	s.transfer, err = a.eval.LeaseTransfer(scenario.LeaseTransferParams{
		TransferFee:       a.opts.TransferFee,
		MarketplaceFee:    a.opts.MarketplaceFee,
		RegistrationFee:   a.opts.RegistrationFee,
		IncentivePayments: a.opts.IncentivePayments,
		MonthsRemaining:   l.TermMonths - elapsed,
	})
	if err != nil {
		return s, fmt.Errorf("lease-transfer scenario: %w", err)
	}

	return s, nil
}

// projectedOdometer estimates the odometer reading offset months from now at
// the lease's average monthly mileage.
func projectedOdometer(l entity.Lease, calc *calculation.Calculator, offset int) int {
	if l.MonthsElapsed <= 0 || offset <= 0 {
		return l.CurrentMileage
	}
	average := calc.Precision().Div(decimal.NewFromInt(int64(l.CurrentMileage)), decimal.NewFromInt(int64(l.MonthsElapsed)))
	extra := average.Mul(decimal.NewFromInt(int64(offset))).Round(0).IntPart()
	return l.CurrentMileage + int(extra)
}
