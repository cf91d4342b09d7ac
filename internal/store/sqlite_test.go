package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/finboard/internal/logging"
	"fjacquet/finboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "data", "finboard.db")

	repo, err := NewSQLiteRepository(dbPath, logging.NewMockLogger())
	require.NoError(t, err)

	dated := models.Transaction{
		ID:       "1",
		Merchant: "Spotify",
		Account:  "GTBank",
		Category: "Subscription",
		Date:     time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC),
		RawDate:  "Apr 15, 2025",
		Amount:   decimal.RequireFromString("-3000.50"),
	}
	undated := models.Transaction{ID: "2", Merchant: "Mystery", RawDate: "whenever", Amount: decimal.NewFromInt(5)}

	v, err := repo.Append(ctx, dated)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)
	v, err = repo.Append(ctx, undated)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), v)

	_, err = repo.Append(ctx, dated)
	assert.True(t, errors.Is(err, ErrDuplicateID))

	require.NoError(t, repo.Close())

	reopened, err := NewSQLiteRepository(dbPath, logging.NewMockLogger())
	require.NoError(t, err)
	defer reopened.Close()

	snap, err := reopened.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), snap.Version)
	require.Len(t, snap.Items, 2)

	got := snap.Items[0]
	assert.Equal(t, dated.ID, got.ID)
	assert.Equal(t, dated.Merchant, got.Merchant)
	assert.Equal(t, dated.Account, got.Account)
	assert.Equal(t, dated.Category, got.Category)
	assert.Equal(t, dated.Date, got.Date)
	assert.Equal(t, dated.RawDate, got.RawDate)
	assert.True(t, dated.Amount.Equal(got.Amount))

	assert.False(t, snap.Items[1].HasDate())
	assert.Equal(t, "whenever", snap.Items[1].RawDate)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "m.db")
	require.NoError(t, RunMigrations(dbPath))
	require.NoError(t, RunMigrations(dbPath))
}
