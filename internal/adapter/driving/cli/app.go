package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/diillson/lease-exit-go/internal/application/usecase"
	"github.com/diillson/lease-exit-go/internal/shared/types"
	"github.com/diillson/lease-exit-go/pkg/version"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	leaseExitUseCase *usecase.LeaseExitUseCase
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:          "lease-exit",
		Short:        "Compare the cost of every way out of a vehicle lease",
		Version:      formattedVersion,
		SilenceUsage: true,
		RunE:         app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Lease Exit version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("lease-file", "l", "", "Path to a TOML, YAML, or JSON lease file")
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.StringP("market-value", "m", "", "Estimated private sale value of the vehicle")
	flags.StringP("wholesale-value", "w", "", "Wholesale value the lessor would credit on early termination")
	flags.String("wear-and-tear", "", "Estimated excess wear and tear charge at return")
	flags.IntP("extension-months", "e", 0, "Months to extend the lease for the extension scenario (default 6)")
	flags.String("transfer-fee", "", "Lessor fee for a lease transfer (default 350)")
	flags.String("marketplace-fee", "", "Listing fee for a lease transfer marketplace (default 150)")
	flags.String("registration-fee", "", "Registration fee for a lease transfer (default 75)")
	flags.String("incentive-payments", "", "Cash incentive offered to whoever takes over the lease")
	flags.Int("precision", 0, "Decimal places kept in intermediate calculations (default 20)")
	flags.BoolP("timeline", "t", false, "Project every scenario month by month until the end of the lease")
	flags.StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.String("s3-bucket", "", "Upload exported reports to this S3 bucket")
	flags.String("s3-prefix", "", "Key prefix for uploaded reports")
	flags.StringP("profile", "p", "", "AWS profile used for S3 uploads")
	flags.StringP("region", "r", "", "AWS region used for S3 uploads")
	flags.String("cache-addr", "", "Redis address used to cache reports, e.g. localhost:6379")
	flags.Bool("no-cache", false, "Always analyse from scratch")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct. Flags that
// were not given stay unset so a config file can supply them.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	leaseFile, _ := flags.GetString("lease-file")
	configFile, _ := flags.GetString("config-file")
	extensionMonths, _ := flags.GetInt("extension-months")
	precision, _ := flags.GetInt("precision")
	timeline, _ := flags.GetBool("timeline")
	reportName, _ := flags.GetString("report-name")
	dir, _ := flags.GetString("dir")
	s3Bucket, _ := flags.GetString("s3-bucket")
	s3Prefix, _ := flags.GetString("s3-prefix")
	profile, _ := flags.GetString("profile")
	region, _ := flags.GetString("region")
	cacheAddr, _ := flags.GetString("cache-addr")
	noCache, _ := flags.GetBool("no-cache")

	// O tipo padrão (csv) é aplicado depois do arquivo de configuração
	var reportType []string
	if flags.Changed("report-type") {
		reportType, _ = flags.GetStringSlice("report-type")
	}

	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		LeaseFile:       leaseFile,
		ConfigFile:      configFile,
		ExtensionMonths: extensionMonths,
		PrecisionPlaces: precision,
		Timeline:        timeline,
		ReportName:      reportName,
		ReportType:      reportType,
		Dir:             dir,
		S3Bucket:        s3Bucket,
		S3Prefix:        s3Prefix,
		AWSProfile:      profile,
		AWSRegion:       region,
		CacheAddr:       cacheAddr,
		NoCache:         noCache,
	}

	decimals := []struct {
		flag string
		dst  **decimal.Decimal
	}{
		{"market-value", &args.MarketValue},
		{"wholesale-value", &args.WholesaleValue},
		{"wear-and-tear", &args.WearAndTear},
		{"transfer-fee", &args.TransferFee},
		{"marketplace-fee", &args.MarketplaceFee},
		{"registration-fee", &args.RegistrationFee},
		{"incentive-payments", &args.IncentivePayments},
	}
	for _, d := range decimals {
		v, err := decimalFlag(flags, d.flag)
		if err != nil {
			return nil, err
		}
		*d.dst = v
	}

	return args, nil
}

func decimalFlag(flags *pflag.FlagSet, name string) (*decimal.Decimal, error) {
	raw, _ := flags.GetString(name)
	if raw == "" {
		return nil, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid value %q for --%s: must be a number", raw, name)
	}
	if v.IsNegative() {
		return nil, fmt.Errorf("invalid value %q for --%s: must not be negative", raw, name)
	}
	return &v, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	_, err = app.leaseExitUseCase.RunLeaseExit(ctx, cliArgs)
	return err
}

// SetLeaseExitUseCase sets the lease exit use case for the CLI app.
func (app *CLIApp) SetLeaseExitUseCase(useCase *usecase.LeaseExitUseCase) {
	app.leaseExitUseCase = useCase
}
