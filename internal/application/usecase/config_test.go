package usecase

import (
	"testing"

	"github.com/diillson/lease-exit-go/internal/shared/types"
)

func TestApplyConfig(t *testing.T) {
	args := &types.CLIArgs{
		ReportName:  "from-flag",
		TransferFee: dp("100"),
	}
	cfg := &types.Config{
		LeaseFile:       "lease.toml",
		ReportName:      "from-config",
		ReportType:      []string{"pdf"},
		ExtensionMonths: 3,
		TransferFee:     "999",
		MarketplaceFee:  "80.5",
		Timeline:        true,
		S3Bucket:        "bucket",
	}

	if err := ApplyConfig(args, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if args.LeaseFile != "lease.toml" || args.S3Bucket != "bucket" || !args.Timeline || args.ExtensionMonths != 3 {
		t.Errorf("config values not applied: %+v", args)
	}
	if args.ReportName != "from-flag" || !args.TransferFee.Equal(d("100")) {
		t.Errorf("flags must win over config: %+v", args)
	}
	if args.MarketplaceFee == nil || !args.MarketplaceFee.Equal(d("80.5")) {
		t.Errorf("expected marketplace fee from config, got %v", args.MarketplaceFee)
	}
	if len(args.ReportType) != 1 || args.ReportType[0] != "pdf" {
		t.Errorf("expected report type from config, got %v", args.ReportType)
	}
	if args.WholesaleValue != nil {
		t.Errorf("empty config value must stay unset")
	}
}

func TestApplyConfig_InvalidDecimal(t *testing.T) {
	err := ApplyConfig(&types.CLIArgs{}, &types.Config{WholesaleValue: "lots"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestApplyConfig_Nil(t *testing.T) {
	if err := ApplyConfig(&types.CLIArgs{}, nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
