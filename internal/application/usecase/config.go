package usecase

import (
	"fmt"

	"github.com/diillson/lease-exit-go/internal/shared/types"
	"github.com/shopspring/decimal"
)

// ApplyConfig fills every argument the command line left unset from the
// config file. Flags always win.
func ApplyConfig(args *types.CLIArgs, cfg *types.Config) error {
	if cfg == nil {
		return nil
	}

	setString(&args.LeaseFile, cfg.LeaseFile)
	setString(&args.ReportName, cfg.ReportName)
	setString(&args.Dir, cfg.Dir)
	setString(&args.S3Bucket, cfg.S3Bucket)
	setString(&args.S3Prefix, cfg.S3Prefix)
	setString(&args.AWSProfile, cfg.AWSProfile)
	setString(&args.AWSRegion, cfg.AWSRegion)
	setString(&args.CacheAddr, cfg.CacheAddr)

	if len(args.ReportType) == 0 {
		args.ReportType = cfg.ReportType
	}
	if args.PrecisionPlaces == 0 {
		args.PrecisionPlaces = cfg.PrecisionPlaces
	}
	if args.ExtensionMonths == 0 {
		args.ExtensionMonths = cfg.ExtensionMonths
	}
	args.Timeline = args.Timeline || cfg.Timeline

	decimals := []struct {
		key   string
		value string
		dst   **decimal.Decimal
	}{
		{"wear_and_tear_estimate", cfg.WearAndTearEstimate, &args.WearAndTear},
		{"wholesale_value", cfg.WholesaleValue, &args.WholesaleValue},
		{"transfer_fee", cfg.TransferFee, &args.TransferFee},
		{"marketplace_fee", cfg.MarketplaceFee, &args.MarketplaceFee},
		{"registration_fee", cfg.RegistrationFee, &args.RegistrationFee},
		{"incentive_payments", cfg.IncentivePayments, &args.IncentivePayments},
	}
	for _, d := range decimals {
		if *d.dst != nil || d.value == "" {
			continue
		}
		v, err := decimal.NewFromString(d.value)
		if err != nil {
			return fmt.Errorf("config %s: %q is not a number", d.key, d.value)
		}
		*d.dst = &v
	}

	return nil
}

func setString(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}
