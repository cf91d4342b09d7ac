package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"fjacquet/finboard/internal/filter"
	"fjacquet/finboard/internal/logging"
	"fjacquet/finboard/internal/models"
	"fjacquet/finboard/internal/parsererror"
	"fjacquet/finboard/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() models.Draft {
	return models.Draft{
		Merchant: "Netflix",
		Account:  "GTBank",
		Category: "Subscription",
		Date:     "2025-04-15",
		Amount:   "2500",
		Type:     "expense",
	}
}

func newTestService(t *testing.T) (*Service, *store.MockRepository, *logging.MockLogger) {
	t.Helper()
	repo := store.NewMockRepository()
	logger := logging.NewMockLogger()
	return NewService(repo, time.UTC, logger), repo, logger
}

func seedRepo(t *testing.T, repo store.Repository, ids ...string) {
	t.Helper()
	for _, id := range ids {
		_, err := repo.Append(context.Background(), models.Transaction{
			ID:       id,
			Merchant: "Seed " + id,
			Amount:   decimal.NewFromInt(-100),
		})
		require.NoError(t, err)
	}
}

func TestCreateTransaction_Valid(t *testing.T) {
	svc, repo, logger := newTestService(t)
	seedRepo(t, repo, "1", "2", "3")

	tx, err := svc.CreateTransaction(context.Background(), validDraft())
	require.NoError(t, err)

	assert.NotEmpty(t, tx.ID)
	assert.NotContains(t, []string{"1", "2", "3"}, tx.ID)
	assert.Equal(t, "Netflix", tx.Merchant)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(-2500)))
	assert.Equal(t, time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), tx.Date)

	snap, err := repo.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Items, 4)
	assert.Equal(t, tx.ID, snap.Items[3].ID, "new transaction goes at the end")
	assert.Equal(t, uint64(4), snap.Version)

	assert.True(t, logger.HasEntry("INFO", "Transaction created"))
}

func TestCreateTransaction_IncomeKeepsPositiveAmount(t *testing.T) {
	svc, _, _ := newTestService(t)
	d := validDraft()
	d.Type = "income"
	d.Amount = "N 150,000"

	tx, err := svc.CreateTransaction(context.Background(), d)
	require.NoError(t, err)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(150000)))
	assert.True(t, tx.IsIncome())
}

func TestCreateTransaction_EmptyMerchant(t *testing.T) {
	svc, repo, _ := newTestService(t)
	seedRepo(t, repo, "1")
	d := validDraft()
	d.Merchant = "  "

	_, err := svc.CreateTransaction(context.Background(), d)
	require.Error(t, err)

	var verr *parsererror.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"merchant"}, verr.FieldNames())

	snap, err := repo.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Items, 1, "collection is unchanged")
	assert.Equal(t, 1, repo.AppendCalls, "only the seed append reached the repository")
}

func TestCreateTransaction_ReportsEveryFailingField(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateTransaction(context.Background(), models.Draft{
		Date:   "not a date",
		Amount: "-5",
		Type:   "transfer",
	})

	var verr *parsererror.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"merchant", "account", "category", "date", "amount", "type"}, verr.FieldNames())
}

func TestCreateTransaction_RetriesOnIDCollision(t *testing.T) {
	svc, repo, logger := newTestService(t)
	seedRepo(t, repo, "taken")

	ids := []string{"taken", "taken", "fresh"}
	svc.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	tx, err := svc.CreateTransaction(context.Background(), validDraft())
	require.NoError(t, err)
	assert.Equal(t, "fresh", tx.ID)
	assert.Len(t, logger.GetEntriesByLevel("DEBUG"), 2)
}

func TestCreateTransaction_GivesUpAfterRepeatedCollisions(t *testing.T) {
	svc, repo, _ := newTestService(t)
	repo.DuplicateAppends = maxIDAttempts

	_, err := svc.CreateTransaction(context.Background(), validDraft())
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrDuplicateID)
	assert.Equal(t, maxIDAttempts, repo.AppendCalls)
}

func TestCreateTransaction_RepositoryFailure(t *testing.T) {
	svc, repo, _ := newTestService(t)
	boom := errors.New("disk full")
	repo.AppendError = boom

	_, err := svc.CreateTransaction(context.Background(), validDraft())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestCreateTransaction_CancelledContext(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CreateTransaction(ctx, validDraft())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCreateTransaction_UniqueIDs(t *testing.T) {
	svc, _, _ := newTestService(t)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		tx, err := svc.CreateTransaction(context.Background(), validDraft())
		require.NoError(t, err)
		assert.False(t, seen[tx.ID], "duplicate id %s", tx.ID)
		seen[tx.ID] = true
	}
}

func TestList(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateTransaction(ctx, validDraft())
	require.NoError(t, err)
	income := validDraft()
	income.Merchant = "Salary"
	income.Type = "income"
	_, err = svc.CreateTransaction(ctx, income)
	require.NoError(t, err)

	all, err := svc.List(ctx, filter.Criteria{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	incomeOnly, err := svc.List(ctx, filter.Criteria{Tab: filter.TabIncome})
	require.NoError(t, err)
	require.Len(t, incomeOnly, 1)
	assert.Equal(t, "Salary", incomeOnly[0].Merchant)
}

func TestList_SnapshotError(t *testing.T) {
	svc, repo, _ := newTestService(t)
	repo.SnapshotError = errors.New("unavailable")

	_, err := svc.List(context.Background(), filter.Criteria{})
	assert.Error(t, err)
}

func TestImport(t *testing.T) {
	svc, repo, logger := newTestService(t)
	seedRepo(t, repo, "existing")

	records := []models.Record{
		{ID: "a", Merchant: "Netflix", Account: "GTBank", Category: "Subscription", Date: "Apr 15, 2025", Amount: "-N2,500"},
		{ID: "b", Label: "Transfer", Date: "Apr 12, 2025", Amount: "N10,000", Type: "income"},
		{ID: "c", Merchant: "Broken", Date: "2025-04-10", Amount: "abc"},
		{ID: "d", Merchant: "Conflict", Date: "2025-04-10", Amount: "-500", Type: "income"},
		{ID: "e", Merchant: "Someday", Date: "sometime soon", Amount: "-200"},
		{ID: "existing", Merchant: "Again", Date: "2025-04-10", Amount: "-1"},
	}

	result, err := svc.Import(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Imported: 3, Skipped: 3, Undated: 1}, result)

	snap, err := repo.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Items, 4)
	assert.Equal(t, "a", snap.Items[1].ID)
	assert.Equal(t, "Transfer", snap.Items[2].Merchant)
	assert.False(t, snap.Items[3].HasDate())
	assert.Equal(t, "sometime soon", snap.Items[3].RawDate)

	assert.True(t, logger.HasEntry("WARN", "Record date could not be parsed, transaction kept undated"))
	assert.True(t, logger.HasEntry("WARN", "Skipping record with existing id"))
}

func TestImport_StopsOnRepositoryFailure(t *testing.T) {
	svc, repo, _ := newTestService(t)
	repo.AppendError = errors.New("closed")

	result, err := svc.Import(context.Background(), []models.Record{
		{ID: "a", Merchant: "Netflix", Date: "2025-04-15", Amount: "-1"},
	})
	require.Error(t, err)
	assert.Equal(t, 0, result.Imported)
}
