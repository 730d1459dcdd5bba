package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/diillson/lease-exit-go/internal/adapter/driven/cache"
	"github.com/diillson/lease-exit-go/internal/domain/entity"
	"github.com/diillson/lease-exit-go/internal/domain/repository"
	"github.com/diillson/lease-exit-go/internal/shared/types"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func sampleRecord() *entity.LeaseRecord {
	return &entity.LeaseRecord{Lease: entity.Lease{
		Name:                "Civic EX",
		NetCapCost:          d("30000"),
		ResidualValue:       d("18000"),
		MoneyFactor:         d("0.00125"),
		MonthlyPayment:      d("393.33"),
		TermMonths:          36,
		MonthsElapsed:       30,
		CurrentMileage:      30000,
		AllowedMilesPerYear: 12000,
		OverageFeePerMile:   d("0.25"),
		DispositionFee:      d("395"),
		PurchaseFee:         d("300"),
		StateCode:           "TX",
	}}
}

type mockLeaseRepo struct {
	record *entity.LeaseRecord
	err    error
	paths  []string
}

func (m *mockLeaseRepo) LoadLease(path string) (*entity.LeaseRecord, error) {
	m.paths = append(m.paths, path)
	if m.err != nil {
		return nil, m.err
	}
	r := *m.record
	return &r, nil
}

type mockConfigRepo struct {
	cfg *types.Config
	err error
}

func (m *mockConfigRepo) LoadConfigFile(string) (*types.Config, error) {
	return m.cfg, m.err
}

type mockExportRepo struct {
	exported []string
	failPDF  bool
}

func (m *mockExportRepo) write(report entity.Report, name, dir, ext string) (string, error) {
	p := filepath.Join(dir, fmt.Sprintf("%s.%s", name, ext))
	m.exported = append(m.exported, p)
	return p, nil
}

func (m *mockExportRepo) ExportToCSV(r entity.Report, name, dir string) (string, error) {
	return m.write(r, name, dir, "csv")
}

func (m *mockExportRepo) ExportToJSON(r entity.Report, name, dir string) (string, error) {
	return m.write(r, name, dir, "json")
}

func (m *mockExportRepo) ExportToPDF(r entity.Report, name, dir string) (string, error) {
	if m.failPDF {
		return "", errors.New("disk full")
	}
	return m.write(r, name, dir, "pdf")
}

type mockPublisher struct {
	published []string
}

func (m *mockPublisher) Publish(_ context.Context, p string) (string, error) {
	m.published = append(m.published, p)
	return "s3://bucket/" + filepath.Base(p), nil
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) (*entity.Report, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (failingCache) Set(context.Context, string, entity.Report, time.Duration) error {
	return errors.New("connection refused")
}

// mockConsole records log lines and discards everything else.
type mockConsole struct {
	warnings []string
	errors   []string
	infos    []string
	bars     []types.TimelineBar
}

func (c *mockConsole) Print(...interface{})              {}
func (c *mockConsole) Printf(string, ...interface{})     {}
func (c *mockConsole) Println(...interface{})            {}
func (c *mockConsole) LogSuccess(string, ...interface{}) {}

func (c *mockConsole) LogInfo(format string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}

func (c *mockConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}

func (c *mockConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}

func (c *mockConsole) Status(string) types.StatusHandle           { return nopHandle{} }
func (c *mockConsole) ProgressWithTotal(int) types.ProgressHandle { return nopHandle{} }
func (c *mockConsole) CreateTable() types.TableInterface          { return &nopTable{} }

func (c *mockConsole) DisplayTimelineBars(bars []types.TimelineBar) {
	c.bars = bars
}

type nopHandle struct{}

func (nopHandle) Update(string) {}
func (nopHandle) Increment()    {}
func (nopHandle) Stop()         {}

type nopTable struct{}

func (*nopTable) AddColumn(string, ...interface{}) {}
func (*nopTable) AddRow(...interface{})            {}
func (*nopTable) Render() string                   { return "" }

type fixture struct {
	leases    *mockLeaseRepo
	exports   *mockExportRepo
	config    *mockConfigRepo
	console   *mockConsole
	cache     *cache.MemoryCache
	publisher *mockPublisher
	uc        *LeaseExitUseCase
}

func newFixture() *fixture {
	f := &fixture{
		leases:    &mockLeaseRepo{record: sampleRecord()},
		exports:   &mockExportRepo{},
		config:    &mockConfigRepo{},
		console:   &mockConsole{},
		cache:     cache.NewMemoryCache(),
		publisher: &mockPublisher{},
	}
	f.uc = NewLeaseExitUseCase(f.leases, f.exports, f.config, f.console,
		func(string) repository.CacheRepository { return f.cache },
		func(*types.CLIArgs) repository.ReportPublisher { return f.publisher },
	)
	return f
}
