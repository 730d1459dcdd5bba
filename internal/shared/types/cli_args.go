package types

import "github.com/shopspring/decimal"

// CLIArgs represents the command-line arguments. Pointer fields are nil when
// the flag was not given so config file values can fill them in.
type CLIArgs struct {
	LeaseFile         string
	ConfigFile        string
	MarketValue       *decimal.Decimal
	WholesaleValue    *decimal.Decimal
	WearAndTear       *decimal.Decimal
	TransferFee       *decimal.Decimal
	MarketplaceFee    *decimal.Decimal
	RegistrationFee   *decimal.Decimal
	IncentivePayments *decimal.Decimal
	ExtensionMonths   int
	PrecisionPlaces   int
	Timeline          bool
	ReportName        string
	ReportType        []string
	Dir               string
	S3Bucket          string
	S3Prefix          string
	AWSProfile        string
	AWSRegion         string
	CacheAddr         string
	NoCache           bool
}
