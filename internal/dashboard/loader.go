// Package dashboard assembles everything the dashboard page shows in one load.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"fjacquet/finboard/internal/aggregate"
	"fjacquet/finboard/internal/filter"
	"fjacquet/finboard/internal/ledger"
	"fjacquet/finboard/internal/logging"
	"fjacquet/finboard/internal/models"
	"fjacquet/finboard/internal/notification"
	"fjacquet/finboard/internal/store"

	"github.com/shopspring/decimal"
)

// Options configures a Loader.
type Options struct {
	// Delay is waited before every load to stand in for a remote call.
	Delay time.Duration
	// SpendingLimit overrides the seed's limit when LimitSet is true.
	SpendingLimit decimal.Decimal
	LimitSet      bool
}

// Query narrows the recent transactions widget.
type Query struct {
	Tab    filter.Tab
	Search string
}

// View is the loaded dashboard. SpendingLimit is computed over the unfiltered
// recent list; CategorySpending covers the whole ledger.
type View struct {
	Recent           []models.Transaction
	SpendingLimit    aggregate.SpendingLimit
	Summary          aggregate.IncomeExpenseSummary
	Breakdown        []aggregate.CategoryShare
	CategorySpending []aggregate.CategoryShare
	Deduction        aggregate.SalaryDeduction
	Notifications    []notification.Notification
	UnreadCount      int
	Version          uint64
}

// Loader builds dashboard views from the ledger and the seed.
type Loader struct {
	ledger *ledger.Service
	seed   *store.Seed
	opts   Options
	logger logging.Logger
}

// NewLoader creates a loader.
func NewLoader(svc *ledger.Service, seed *store.Seed, opts Options, logger logging.Logger) *Loader {
	if seed == nil {
		seed = store.DefaultSeed()
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Loader{ledger: svc, seed: seed, opts: opts, logger: logger}
}

// Load waits the configured delay, then computes every widget. The wait ends
// early with the context error when ctx is done.
func (l *Loader) Load(ctx context.Context, q Query) (*View, error) {
	start := time.Now()
	if err := wait(ctx, l.opts.Delay); err != nil {
		return nil, err
	}

	snap, err := l.ledger.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	limit, err := l.limit()
	if err != nil {
		return nil, err
	}
	recent := l.recent()
	spending, err := aggregate.ComputeSpendingLimit(recent, limit)
	if err != nil {
		return nil, err
	}

	series, err := l.seed.SeriesTotals()
	if err != nil {
		return nil, err
	}
	pairs, err := l.seed.CategoryAmounts()
	if err != nil {
		return nil, err
	}
	salary, err := l.seed.SalaryAmount()
	if err != nil {
		return nil, err
	}
	slices, err := l.seed.DeductionSlices()
	if err != nil {
		return nil, err
	}
	deduction, err := aggregate.ComputeSalaryDeduction(salary, slices)
	if err != nil {
		return nil, err
	}

	view := &View{
		Recent:           filter.Apply(recent, filter.Criteria{Tab: q.Tab, Search: q.Search}),
		SpendingLimit:    spending,
		Summary:          aggregate.ComputeIncomeExpenseSummary(series),
		Breakdown:        aggregate.ComputeCategoryBreakdown(pairs),
		CategorySpending: aggregate.ComputeCategoryBreakdown(aggregate.SpendingByCategory(snap.Items)),
		Deduction:        deduction,
		Notifications:    l.seed.Notifications,
		UnreadCount:      notification.UnreadCount(l.seed.Notifications),
		Version:          snap.Version,
	}

	l.logger.Debug("Dashboard loaded",
		logging.F(logging.FieldVersion, snap.Version),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))
	return view, nil
}

func (l *Loader) limit() (decimal.Decimal, error) {
	if l.opts.LimitSet {
		return l.opts.SpendingLimit, nil
	}
	limit, err := l.seed.Limit()
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read spending limit: %w", err)
	}
	return limit, nil
}

// recent normalizes the seed's recent records. Records that cannot be turned
// into transactions are left out.
func (l *Loader) recent() []models.Transaction {
	out := make([]models.Transaction, 0, len(l.seed.Recent))
	for _, r := range l.seed.Recent {
		tx, err := models.NewTransactionFromRecord(r, l.ledger.Location())
		if err != nil {
			l.logger.WithError(err).Warn("Skipping recent transaction",
				logging.F(logging.FieldTransactionID, r.ID))
			continue
		}
		out = append(out, tx)
	}
	return out
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
