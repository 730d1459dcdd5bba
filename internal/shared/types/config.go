package types

// Config represents the application configuration that can be loaded from a file.
// Money values are strings so they are parsed as exact decimals.
type Config struct {
	LeaseFile           string   `json:"lease_file" yaml:"lease_file" toml:"lease_file"`
	PrecisionPlaces     int      `json:"precision_places" yaml:"precision_places" toml:"precision_places"`
	WearAndTearEstimate string   `json:"wear_and_tear_estimate" yaml:"wear_and_tear_estimate" toml:"wear_and_tear_estimate"`
	WholesaleValue      string   `json:"wholesale_value" yaml:"wholesale_value" toml:"wholesale_value"`
	ExtensionMonths     int      `json:"extension_months" yaml:"extension_months" toml:"extension_months"`
	TransferFee         string   `json:"transfer_fee" yaml:"transfer_fee" toml:"transfer_fee"`
	MarketplaceFee      string   `json:"marketplace_fee" yaml:"marketplace_fee" toml:"marketplace_fee"`
	RegistrationFee     string   `json:"registration_fee" yaml:"registration_fee" toml:"registration_fee"`
	IncentivePayments   string   `json:"incentive_payments" yaml:"incentive_payments" toml:"incentive_payments"`
	ReportName          string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType          []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir                 string   `json:"dir" yaml:"dir" toml:"dir"`
	Timeline            bool     `json:"timeline" yaml:"timeline" toml:"timeline"`
	S3Bucket            string   `json:"s3_bucket" yaml:"s3_bucket" toml:"s3_bucket"`
	S3Prefix            string   `json:"s3_prefix" yaml:"s3_prefix" toml:"s3_prefix"`
	AWSProfile          string   `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile"`
	AWSRegion           string   `json:"aws_region" yaml:"aws_region" toml:"aws_region"`
	CacheAddr           string   `json:"cache_addr" yaml:"cache_addr" toml:"cache_addr"`
}
