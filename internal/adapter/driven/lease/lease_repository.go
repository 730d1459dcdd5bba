package lease

import (
	"errors"
	"fmt"
	"strings"

	"github.com/diillson/lease-exit-go/internal/adapter/driven/config"
	"github.com/diillson/lease-exit-go/internal/domain/entity"
	"github.com/diillson/lease-exit-go/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ErrInvalidRecord is returned when a lease file is missing fields or breaks a lease invariant.
var ErrInvalidRecord = errors.New("invalid lease record")

// leaseFile is the on-disk layout. Money is kept as strings so nothing is lost
// to binary floating point before it reaches decimal.
type leaseFile struct {
	Name                string `json:"name" yaml:"name" toml:"name"`
	NetCapCost          string `json:"net_cap_cost" yaml:"net_cap_cost" toml:"net_cap_cost"`
	ResidualValue       string `json:"residual_value" yaml:"residual_value" toml:"residual_value"`
	MoneyFactor         string `json:"money_factor" yaml:"money_factor" toml:"money_factor"`
	MonthlyPayment      string `json:"monthly_payment" yaml:"monthly_payment" toml:"monthly_payment"`
	TermMonths          int    `json:"term_months" yaml:"term_months" toml:"term_months"`
	MonthsElapsed       int    `json:"months_elapsed" yaml:"months_elapsed" toml:"months_elapsed"`
	CurrentMileage      int    `json:"current_mileage" yaml:"current_mileage" toml:"current_mileage"`
	AllowedMilesPerYear int    `json:"allowed_miles_per_year" yaml:"allowed_miles_per_year" toml:"allowed_miles_per_year"`
	OverageFeePerMile   string `json:"overage_fee_per_mile" yaml:"overage_fee_per_mile" toml:"overage_fee_per_mile"`
	DispositionFee      string `json:"disposition_fee" yaml:"disposition_fee" toml:"disposition_fee"`
	PurchaseFee         string `json:"purchase_fee" yaml:"purchase_fee" toml:"purchase_fee"`
	DownPayment         string `json:"down_payment" yaml:"down_payment" toml:"down_payment"`
	StateCode           string `json:"state" yaml:"state" toml:"state"`
	MarketValue         string `json:"market_value" yaml:"market_value" toml:"market_value"`
	WholesaleValue      string `json:"wholesale_value" yaml:"wholesale_value" toml:"wholesale_value"`
}

// LeaseRepositoryImpl implementa o LeaseRepository.
type LeaseRepositoryImpl struct{}

// NewLeaseRepository cria uma nova implementação do LeaseRepository.
func NewLeaseRepository() repository.LeaseRepository {
	return &LeaseRepositoryImpl{}
}

// LoadLease reads and validates a lease record.
func (r *LeaseRepositoryImpl) LoadLease(filePath string) (*entity.LeaseRecord, error) {
	var file leaseFile
	if err := config.DecodeFile(filePath, &file); err != nil {
		return nil, fmt.Errorf("loading lease %s: %w", filePath, err)
	}

	record, err := file.toRecord()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return record, nil
}

func (f leaseFile) toRecord() (*entity.LeaseRecord, error) {
	p := parser{}
	l := entity.Lease{
		Name:                f.Name,
		NetCapCost:          p.required("net_cap_cost", f.NetCapCost),
		ResidualValue:       p.required("residual_value", f.ResidualValue),
		MoneyFactor:         p.required("money_factor", f.MoneyFactor),
		MonthlyPayment:      p.required("monthly_payment", f.MonthlyPayment),
		TermMonths:          f.TermMonths,
		MonthsElapsed:       f.MonthsElapsed,
		CurrentMileage:      f.CurrentMileage,
		AllowedMilesPerYear: f.AllowedMilesPerYear,
		OverageFeePerMile:   p.optional("overage_fee_per_mile", f.OverageFeePerMile),
		DispositionFee:      p.optional("disposition_fee", f.DispositionFee),
		PurchaseFee:         p.optional("purchase_fee", f.PurchaseFee),
		DownPayment:         p.optional("down_payment", f.DownPayment),
		StateCode:           strings.ToUpper(strings.TrimSpace(f.StateCode)),
	}
	market := p.pointer("market_value", f.MarketValue)
	wholesale := p.pointer("wholesale_value", f.WholesaleValue)

	if len(p.problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRecord, strings.Join(p.problems, "; "))
	}
	if err := validate(l); err != nil {
		return nil, err
	}

	record := &entity.LeaseRecord{Lease: l, WholesaleValue: wholesale}
	if market != nil {
		record.MarketValue = &entity.MarketValue{Value: *market}
	}
	return record, nil
}

func validate(l entity.Lease) error {
	var problems []string
	if l.TermMonths <= 0 {
		problems = append(problems, fmt.Sprintf("term_months must be positive, got %d", l.TermMonths))
	}
	if l.MonthsElapsed < 0 || l.MonthsElapsed > l.TermMonths {
		problems = append(problems, fmt.Sprintf("months_elapsed must be between 0 and %d, got %d", l.TermMonths, l.MonthsElapsed))
	}
	if l.CurrentMileage < 0 || l.AllowedMilesPerYear < 0 {
		problems = append(problems, "mileage values must not be negative")
	}
	if l.StateCode == "" {
		problems = append(problems, "state is required")
	}
	if !l.NetCapCost.IsPositive() {
		problems = append(problems, "net_cap_cost must be positive")
	}
	if l.ResidualValue.IsNegative() || l.MonthlyPayment.IsNegative() || l.MoneyFactor.IsNegative() {
		problems = append(problems, "residual_value, monthly_payment and money_factor must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRecord, strings.Join(problems, "; "))
	}
	return nil
}

// parser collects every field problem so a bad file is reported in one pass.
type parser struct {
	problems []string
}

func (p *parser) parse(field, value string) (decimal.Decimal, bool) {
	v, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		p.problems = append(p.problems, fmt.Sprintf("%s: %q is not a number", field, value))
		return decimal.Zero, false
	}
	return v, true
}

func (p *parser) required(field, value string) decimal.Decimal {
	if strings.TrimSpace(value) == "" {
		p.problems = append(p.problems, field+" is required")
		return decimal.Zero
	}
	v, _ := p.parse(field, value)
	return v
}

func (p *parser) optional(field, value string) decimal.Decimal {
	if strings.TrimSpace(value) == "" {
		return decimal.Zero
	}
	v, _ := p.parse(field, value)
	return v
}

func (p *parser) pointer(field, value string) *decimal.Decimal {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	v, ok := p.parse(field, value)
	if !ok {
		return nil
	}
	return &v
}
