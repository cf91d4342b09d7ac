package store

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/finboard/internal/aggregate"
	"fjacquet/finboard/internal/fileutils"
	"fjacquet/finboard/internal/logging"
	"fjacquet/finboard/internal/models"
	"fjacquet/finboard/internal/notification"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed default_seed.yaml
var defaultSeed []byte

// SeriesPoint is one month of the income/expense chart.
type SeriesPoint struct {
	Month    string `yaml:"month"`
	Income   string `yaml:"income"`
	Expenses string `yaml:"expenses"`
}

// ExpenseItem is one entry of the expenses breakdown widget.
type ExpenseItem struct {
	Label  string `yaml:"label"`
	Amount string `yaml:"amount"`
}

// DeductionItem is one slice of the salary deduction chart.
type DeductionItem struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Seed is the dashboard data a session starts from.
type Seed struct {
	Transactions  []models.Record             `yaml:"transactions"`
	Recent        []models.Record             `yaml:"recent"`
	Series        []SeriesPoint               `yaml:"series"`
	Expenses      []ExpenseItem               `yaml:"expenses"`
	Deductions    []DeductionItem             `yaml:"deductions"`
	Salary        string                      `yaml:"salary"`
	SpendingLimit string                      `yaml:"spending_limit"`
	Notifications []notification.Notification `yaml:"notifications"`
}

// SeriesTotals converts the chart series.
func (s *Seed) SeriesTotals() ([]aggregate.PeriodTotals, error) {
	out := make([]aggregate.PeriodTotals, 0, len(s.Series))
	for _, p := range s.Series {
		income, err := parseSeedAmount("series.income", p.Income)
		if err != nil {
			return nil, err
		}
		expenses, err := parseSeedAmount("series.expenses", p.Expenses)
		if err != nil {
			return nil, err
		}
		out = append(out, aggregate.PeriodTotals{Period: p.Month, Income: income, Expenses: expenses})
	}
	return out, nil
}

// CategoryAmounts converts the expenses breakdown entries.
func (s *Seed) CategoryAmounts() ([]aggregate.CategoryAmount, error) {
	out := make([]aggregate.CategoryAmount, 0, len(s.Expenses))
	for _, e := range s.Expenses {
		amount, err := parseSeedAmount("expenses.amount", e.Amount)
		if err != nil {
			return nil, err
		}
		out = append(out, aggregate.CategoryAmount{Category: e.Label, Amount: amount})
	}
	return out, nil
}

// DeductionSlices converts the salary deduction slices.
func (s *Seed) DeductionSlices() ([]aggregate.DeductionSlice, error) {
	out := make([]aggregate.DeductionSlice, 0, len(s.Deductions))
	for _, d := range s.Deductions {
		value, err := parseSeedAmount("deductions.value", d.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, aggregate.DeductionSlice{Name: d.Name, Value: value})
	}
	return out, nil
}

// SalaryAmount parses the salary.
func (s *Seed) SalaryAmount() (decimal.Decimal, error) {
	return parseSeedAmount("salary", s.Salary)
}

// Limit parses the spending limit.
func (s *Seed) Limit() (decimal.Decimal, error) {
	return parseSeedAmount("spending_limit", s.SpendingLimit)
}

func parseSeedAmount(key, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	amount, _, err := models.ParseAmount(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("seed %s: %w", key, err)
	}
	return amount, nil
}

// ParseSeed decodes a YAML seed document.
func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("error parsing seed: %w", err)
	}
	return &seed, nil
}

// DefaultSeed returns the built-in dashboard data.
func DefaultSeed() *Seed {
	seed, err := ParseSeed(defaultSeed)
	if err != nil {
		panic(fmt.Sprintf("embedded seed is invalid: %v", err))
	}
	return seed
}

// SeedStore loads the seed from a file, falling back to the built-in data.
type SeedStore struct {
	SeedFile string
	logger   logging.Logger
}

// NewSeedStore creates a store for the given seed file. An empty name selects the
// built-in seed.
func NewSeedStore(seedFile string, logger logging.Logger) *SeedStore {
	return &SeedStore{
		SeedFile: seedFile,
		logger:   logger,
	}
}

// FindSeedFile looks for a seed file in standard locations
func (s *SeedStore) FindSeedFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if fileutils.FileExists(filename) {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join("database", filename),
	}
	for _, location := range locations {
		if fileutils.FileExists(location) {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		seedPath := filepath.Join(homeDir, ".finboard", filename)
		if fileutils.FileExists(seedPath) {
			return seedPath, nil
		}
	}

	return "", os.ErrNotExist
}

// Load reads the configured seed file. A missing file falls back to the built-in
// seed with a warning; a malformed one is an error.
func (s *SeedStore) Load() (*Seed, error) {
	if s.SeedFile == "" {
		s.logger.Debug("Using built-in seed")
		return DefaultSeed(), nil
	}

	filePath, err := s.FindSeedFile(s.SeedFile)
	if err != nil {
		s.logger.Warn("Seed file not found, using built-in seed",
			logging.Field{Key: logging.FieldFile, Value: s.SeedFile})
		return DefaultSeed(), nil
	}

	data, err := fileutils.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading seed file: %w", err)
	}

	seed, err := ParseSeed(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}

	s.logger.Debug("Loaded seed",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(seed.Transactions)})
	return seed, nil
}
