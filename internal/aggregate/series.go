package aggregate

import (
	"fmt"
	"sort"
	"time"

	"fjacquet/finboard/internal/logging"
	"fjacquet/finboard/internal/models"

	"github.com/shopspring/decimal"
)

// DateRange represents a date range with start and end dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String returns the date range in the format "YYYY-MM-DD_YYYY-MM-DD"
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s",
		dr.Start.Format("2006-01-02"),
		dr.End.Format("2006-01-02"))
}

// Extend widens the range to include day. Zero days are ignored.
func (dr DateRange) Extend(day time.Time) DateRange {
	if day.IsZero() {
		return dr
	}
	if dr.Start.IsZero() || day.Before(dr.Start) {
		dr.Start = day
	}
	if dr.End.IsZero() || day.After(dr.End) {
		dr.End = day
	}
	return dr
}

// MonthlySeries is an income/expense series built from raw transactions.
type MonthlySeries struct {
	Points  []PeriodTotals
	Range   DateRange
	Undated int
}

// SeriesBuilder groups transactions into calendar months.
type SeriesBuilder struct {
	logger logging.Logger
}

// NewSeriesBuilder creates a new SeriesBuilder instance
func NewSeriesBuilder(logger logging.Logger) *SeriesBuilder {
	return &SeriesBuilder{
		logger: logger,
	}
}

// Build sums income and absolute expenses per month, oldest month first. Months
// are labelled with their short name and year ("Apr 2025"). Undated
// transactions are counted but left out of every month.
func (sb *SeriesBuilder) Build(txs []models.Transaction) MonthlySeries {
	type bucket struct {
		month    time.Time
		income   decimal.Decimal
		expenses decimal.Decimal
	}

	buckets := make(map[time.Time]*bucket)
	var series MonthlySeries

	for _, tx := range txs {
		if !tx.HasDate() {
			series.Undated++
			continue
		}
		series.Range = series.Range.Extend(tx.Date)

		month := time.Date(tx.Date.Year(), tx.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		b, ok := buckets[month]
		if !ok {
			b = &bucket{month: month, income: decimal.Zero, expenses: decimal.Zero}
			buckets[month] = b
		}
		switch {
		case tx.IsIncome():
			b.income = b.income.Add(tx.Amount)
		case tx.IsExpense():
			b.expenses = b.expenses.Add(tx.Amount.Abs())
		}
	}

	sorted := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		sorted = append(sorted, b)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].month.Before(sorted[j].month)
	})

	series.Points = make([]PeriodTotals, 0, len(sorted))
	for _, b := range sorted {
		series.Points = append(series.Points, PeriodTotals{
			Period:   b.month.Format("Jan 2006"),
			Income:   b.income,
			Expenses: b.expenses,
		})
	}

	if series.Undated > 0 {
		sb.logger.Warn("Undated transactions left out of the monthly series",
			logging.Field{Key: logging.FieldSkipped, Value: series.Undated})
	}
	sb.logger.Debug("Built monthly series",
		logging.Field{Key: logging.FieldCount, Value: len(series.Points)},
		logging.Field{Key: "range", Value: series.Range.String()})

	return series
}
