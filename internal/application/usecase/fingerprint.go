package usecase

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/diillson/lease-exit-go/internal/domain/analysis"
	"github.com/diillson/lease-exit-go/internal/domain/entity"
	"github.com/diillson/lease-exit-go/pkg/version"
	"github.com/shopspring/decimal"
)

// fingerprint identifies one analysis run: two runs of the same build with the
// same fingerprint produce the same report content.
func fingerprint(l entity.Lease, market *entity.MarketValue, opts analysis.Options, places int, timeline bool) string {
	h := xxhash.New()
	fmt.Fprintf(h, "lease|%s|%s|%s|%s|%s|%d|%d|%d|%d|%s|%s|%s|%s|%s",
		l.Name, l.NetCapCost, l.ResidualValue, l.MoneyFactor, l.MonthlyPayment,
		l.TermMonths, l.MonthsElapsed, l.CurrentMileage, l.AllowedMilesPerYear,
		l.OverageFeePerMile, l.DispositionFee, l.PurchaseFee, l.DownPayment, l.StateCode)
	fmt.Fprintf(h, "|market|%s", optionalDecimal(marketValue(market)))
	fmt.Fprintf(h, "|opts|%s|%s|%d|%s|%s|%s|%s",
		opts.WearAndTearEstimate, optionalDecimal(opts.WholesaleValue), opts.ExtensionMonths,
		opts.TransferFee, opts.MarketplaceFee, opts.RegistrationFee, opts.IncentivePayments)
	fmt.Fprintf(h, "|places|%d|timeline|%t|version|%s", places, timeline, version.Version)
	return strconv.FormatUint(h.Sum64(), 16)
}

func marketValue(m *entity.MarketValue) *decimal.Decimal {
	if m == nil {
		return nil
	}
	return &m.Value
}

func optionalDecimal(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return d.String()
}
