package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/diillson/lease-exit-go/internal/domain/analysis"
	"github.com/diillson/lease-exit-go/internal/domain/calculation"
	"github.com/diillson/lease-exit-go/internal/domain/entity"
	"github.com/diillson/lease-exit-go/internal/domain/repository"
	"github.com/diillson/lease-exit-go/internal/domain/scenario"
	"github.com/diillson/lease-exit-go/internal/domain/tax"
	"github.com/diillson/lease-exit-go/internal/shared/types"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

const reportCacheTTL = 24 * time.Hour

// paymentTolerance is how far the recorded payment may drift from depreciation
// plus rent charge before the user is warned.
var paymentTolerance = decimal.NewFromInt(1)

// CacheFactory returns the cache for a Redis address; an empty address means in-process.
type CacheFactory func(addr string) repository.CacheRepository

// PublisherFactory returns the publisher for the configured bucket.
type PublisherFactory func(args *types.CLIArgs) repository.ReportPublisher

// LeaseExitUseCase handles the lease exit analysis.
type LeaseExitUseCase struct {
	leaseRepo    repository.LeaseRepository
	exportRepo   repository.ExportRepository
	configRepo   repository.ConfigRepository
	console      types.ConsoleInterface
	newCache     CacheFactory
	newPublisher PublisherFactory
	taxes        *tax.Table
}

// NewLeaseExitUseCase creates a new lease exit use case.
func NewLeaseExitUseCase(
	leaseRepo repository.LeaseRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
	newCache CacheFactory,
	newPublisher PublisherFactory,
) *LeaseExitUseCase {
	return &LeaseExitUseCase{
		leaseRepo:    leaseRepo,
		exportRepo:   exportRepo,
		configRepo:   configRepo,
		console:      console,
		newCache:     newCache,
		newPublisher: newPublisher,
		taxes:        tax.DefaultTable(),
	}
}

// RunLeaseExit loads the lease, analyses every exit scenario, prints the
// result and exports it when a report name is set.
func (uc *LeaseExitUseCase) RunLeaseExit(ctx context.Context, args *types.CLIArgs) (*entity.Report, error) {
	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		if err := ApplyConfig(args, cfg); err != nil {
			return nil, err
		}
	}

	if args.LeaseFile == "" {
		return nil, types.ErrNoLeaseFile
	}
	if len(args.ReportType) == 0 {
		args.ReportType = []string{"csv"}
	}

	record, err := uc.leaseRepo.LoadLease(args.LeaseFile)
	if err != nil {
		return nil, err
	}

	lease := record.Lease
	market := record.MarketValue
	if args.MarketValue != nil {
		market = &entity.MarketValue{Value: *args.MarketValue}
	}
	opts := analysisOptions(args, record)

	precision := calculation.DefaultPrecision
	if args.PrecisionPlaces > 0 {
		precision = calculation.Precision{Places: int32(args.PrecisionPlaces)}
	}
	calc := calculation.NewCalculator(precision)

	uc.checkPayment(lease, calc)

	key := fingerprint(lease, market, opts, int(precision.Places), args.Timeline)

	var cache repository.CacheRepository
	if !args.NoCache && uc.newCache != nil {
		cache = uc.newCache(args.CacheAddr)
		if closer, ok := cache.(io.Closer); ok {
			defer func() {
				if err := closer.Close(); err != nil {
					uc.console.LogWarning("Could not close report cache: %s", err)
				}
			}()
		}
	}

	report := uc.cachedReport(ctx, cache, key)
	if report == nil {
		status := uc.console.Status("Analysing lease exit options...")
		built, err := uc.analyse(lease, market, opts, calc, key, args.Timeline)
		status.Stop()
		if err != nil {
			return nil, err
		}
		report = &built

		if cache != nil {
			if err := cache.Set(ctx, key, built, reportCacheTTL); err != nil {
				uc.console.LogWarning("Could not cache report: %s", err)
			}
		}
	}

	uc.displayReport(*report)

	if args.ReportName != "" && len(args.ReportType) > 0 {
		paths := uc.exportReport(*report, args)
		uc.publishReports(ctx, args, paths)
	}

	return report, nil
}

func (uc *LeaseExitUseCase) cachedReport(ctx context.Context, cache repository.CacheRepository, key string) *entity.Report {
	if cache == nil {
		return nil
	}
	report, found, err := cache.Get(ctx, key)
	if err != nil {
		uc.console.LogWarning("Cache unavailable, analysing from scratch: %s", err)
		return nil
	}
	if !found {
		return nil
	}
	uc.console.LogInfo("Using cached report %s", report.ID)
	return report
}

func (uc *LeaseExitUseCase) analyse(
	lease entity.Lease,
	market *entity.MarketValue,
	opts analysis.Options,
	calc *calculation.Calculator,
	key string,
	withTimeline bool,
) (entity.Report, error) {
	analyzer := analysis.NewAnalyzer(scenario.NewEvaluator(calc, uc.taxes), opts)

	comparison, err := analyzer.Compare(lease, market)
	if err != nil {
		return entity.Report{}, fmt.Errorf("comparing scenarios: %w", err)
	}
	res := analysisResult{comparison: comparison}

	if withTimeline {
		series, err := analyzer.Timeline(lease, market)
		if err != nil {
			return entity.Report{}, fmt.Errorf("projecting timeline: %w", err)
		}
		rec, err := analysis.Recommend(series)
		if err != nil {
			return entity.Report{}, fmt.Errorf("building recommendation: %w", err)
		}
		res.series = &series
		res.crossovers = analysis.FindCrossovers(series)
		res.recommendation = &rec
	}

	return newReportBuilder(calc, uc.taxes).build(lease, key, res)
}

// checkPayment warns when the recorded payment is far from depreciation plus
// rent charge, which usually means it includes tax or add-ons.
func (uc *LeaseExitUseCase) checkPayment(l entity.Lease, calc *calculation.Calculator) {
	if l.TermMonths <= 0 {
		return
	}
	base := calc.MonthlyPayment(l.NetCapCost, l.ResidualValue, l.MoneyFactor, l.TermMonths)
	if l.MonthlyPayment.Sub(base).Abs().GreaterThan(paymentTolerance) {
		uc.console.LogWarning("Monthly payment %s differs from depreciation plus rent charge (%s); it may include tax or add-ons.",
			l.MonthlyPayment.StringFixed(2), base.StringFixed(2))
	}
}

func analysisOptions(args *types.CLIArgs, record *entity.LeaseRecord) analysis.Options {
	opts := analysis.DefaultOptions()
	if args.WearAndTear != nil {
		opts.WearAndTearEstimate = *args.WearAndTear
	}
	opts.WholesaleValue = record.WholesaleValue
	if args.WholesaleValue != nil {
		opts.WholesaleValue = args.WholesaleValue
	}
	if args.ExtensionMonths > 0 {
		opts.ExtensionMonths = args.ExtensionMonths
	}
	if args.TransferFee != nil {
		opts.TransferFee = *args.TransferFee
	}
	if args.MarketplaceFee != nil {
		opts.MarketplaceFee = *args.MarketplaceFee
	}
	if args.RegistrationFee != nil {
		opts.RegistrationFee = *args.RegistrationFee
	}
	if args.IncentivePayments != nil {
		opts.IncentivePayments = *args.IncentivePayments
	}
	return opts
}

// exportReport writes every requested format and returns the paths written.
func (uc *LeaseExitUseCase) exportReport(report entity.Report, args *types.CLIArgs) []string {
	var paths []string
	progress := uc.console.ProgressWithTotal(len(args.ReportType))
	defer progress.Stop()

	for _, reportType := range args.ReportType {
		var (
			path string
			err  error
		)
		switch strings.ToLower(strings.TrimSpace(reportType)) {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(report, args.ReportName, args.Dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(report, args.ReportName, args.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(report, args.ReportName, args.Dir)
		default:
			err = fmt.Errorf("%w: %s", types.ErrUnsupportedReportType, reportType)
		}
		progress.Increment()

		if err != nil {
			uc.console.LogError("Failed to export to %s: %s", strings.ToUpper(reportType), err)
			continue
		}
		uc.console.LogSuccess("Successfully exported to %s: %s", strings.ToUpper(reportType), path)
		paths = append(paths, path)
	}
	return paths
}

func (uc *LeaseExitUseCase) publishReports(ctx context.Context, args *types.CLIArgs, paths []string) {
	if args.S3Bucket == "" || uc.newPublisher == nil || len(paths) == 0 {
		return
	}
	publisher := uc.newPublisher(args)
	for _, p := range paths {
		uri, err := publisher.Publish(ctx, p)
		if err != nil {
			uc.console.LogError("Failed to publish %s: %s", p, err)
			continue
		}
		uc.console.LogSuccess("Published report to %s", uri)
	}
}

// displayReport prints the summary, the ranked scenarios and, when present,
// the timeline and recommendation.
func (uc *LeaseExitUseCase) displayReport(report entity.Report) {
	title := "Lease Exit Analysis"
	if report.LeaseName != "" {
		title = fmt.Sprintf("%s: %s", title, report.LeaseName)
	}
	uc.console.Printf("\n%s\n", pterm.FgYellow.Sprint(title))

	summary := uc.console.CreateTable()
	summary.AddColumn("Lease")
	summary.AddColumn("Value")
	for _, item := range report.Summary {
		summary.AddRow(item.Label, item.Value)
	}
	uc.console.Print(summary.Render())

	table := uc.console.CreateTable()
	table.AddColumn("#")
	table.AddColumn("Scenario")
	table.AddColumn("Total Cost")
	table.AddColumn("Net Cost")
	table.AddColumn("Breakdown")
	for _, row := range report.Scenarios {
		label := row.Label
		switch {
		case row.Best:
			label = pterm.FgGreen.Sprintf("%s (best)", label)
		case row.Incomplete:
			label = pterm.FgGray.Sprintf("%s (incomplete)", label)
		}
		table.AddRow(row.Rank, label, row.TotalCost, row.NetCost, strings.Join(row.LineItems, "\n"))
	}
	uc.console.Print(table.Render())

	if report.BestOption != "" {
		uc.console.LogSuccess("Best option: %s, saving %s compared with returning the vehicle.", report.BestOption, report.SavingsVsReturn)
	} else {
		uc.console.LogWarning("No complete scenario could be ranked.")
	}
	if report.Tie {
		uc.console.LogInfo("The two cheapest options are within $100 of each other.")
	}
	if report.Equity != "" {
		uc.console.LogInfo("%s", report.Equity)
	}

	for _, row := range report.Scenarios {
		for _, w := range row.Warnings {
			uc.console.LogWarning("%s: %s", row.Label, w)
		}
	}

	if len(report.Timeline) > 0 {
		bars := make([]types.TimelineBar, 0, len(report.Timeline))
		for _, row := range report.Timeline {
			bars = append(bars, types.TimelineBar{Month: row.Month, Scenario: row.Cheapest, Cost: row.CheapestCost})
		}
		uc.console.DisplayTimelineBars(bars)
		for _, c := range report.Crossovers {
			uc.console.LogInfo("%s", c)
		}
	}

	if rec := report.Recommendation; rec != nil {
		if rec.ShouldWait {
			uc.console.LogWarning("%s", rec.Message)
		} else {
			uc.console.LogSuccess("%s", rec.Message)
		}
	}
}
