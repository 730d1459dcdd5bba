package types

import "errors"

var (
	ErrNoLeaseFile           = errors.New("no lease file given. Use --lease-file or set lease_file in the config file")
	ErrUnsupportedReportType = errors.New("unsupported report type")
)
