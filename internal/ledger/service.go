// Package ledger creates, lists and imports transactions on top of a store.Repository.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fjacquet/finboard/internal/filter"
	"fjacquet/finboard/internal/logging"
	"fjacquet/finboard/internal/models"
	"fjacquet/finboard/internal/store"

	"github.com/google/uuid"
)

// maxIDAttempts bounds how many fresh ids are tried when a generated id collides.
const maxIDAttempts = 5

// Service owns transaction creation and reads for one repository.
type Service struct {
	repo   store.Repository
	loc    *time.Location
	logger logging.Logger
	newID  func() string
}

// ImportResult summarizes an Import call.
type ImportResult struct {
	Imported int
	Skipped  int
	Undated  int
}

// NewService creates a ledger service. A nil loc means UTC.
func NewService(repo store.Repository, loc *time.Location, logger logging.Logger) *Service {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Service{
		repo:   repo,
		loc:    loc,
		logger: logger,
		newID:  func() string { return uuid.New().String() },
	}
}

// Location returns the location calendar days are resolved in.
func (s *Service) Location() *time.Location {
	return s.loc
}

// CreateTransaction validates the draft, assigns a fresh id and appends the
// transaction at the end of the collection. Invalid input is reported as a
// *parsererror.ValidationError listing every failing field.
func (s *Service) CreateTransaction(ctx context.Context, draft models.Draft) (models.Transaction, error) {
	if err := draft.Validate(); err != nil {
		return models.Transaction{}, err
	}

	for attempt := 1; attempt <= maxIDAttempts; attempt++ {
		tx, err := draft.Build(s.newID(), s.loc)
		if err != nil {
			return models.Transaction{}, err
		}

		version, err := s.repo.Append(ctx, tx)
		if errors.Is(err, store.ErrDuplicateID) {
			s.logger.Debug("Generated transaction id already taken, retrying",
				logging.F(logging.FieldTransactionID, tx.ID))
			continue
		}
		if err != nil {
			return models.Transaction{}, fmt.Errorf("failed to store transaction: %w", err)
		}

		s.logger.Info("Transaction created",
			logging.F(logging.FieldTransactionID, tx.ID),
			logging.F(logging.FieldMerchant, tx.Merchant),
			logging.F(logging.FieldAmount, tx.Amount.String()),
			logging.F(logging.FieldVersion, version))
		return tx, nil
	}

	return models.Transaction{}, fmt.Errorf("failed to allocate a transaction id after %d attempts: %w",
		maxIDAttempts, store.ErrDuplicateID)
}

// Snapshot returns the current collection.
func (s *Service) Snapshot(ctx context.Context) (store.Snapshot, error) {
	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("failed to read transactions: %w", err)
	}
	return snap, nil
}

// List returns the transactions matching c in collection order.
func (s *Service) List(ctx context.Context, c filter.Criteria) ([]models.Transaction, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(snap.Items, c), nil
}

// Import appends records in order. Records with a bad amount, a sign contradicting
// their type tag or an id already present are skipped. Records whose date does not
// parse are kept undated and counted.
func (s *Service) Import(ctx context.Context, records []models.Record) (ImportResult, error) {
	var result ImportResult

	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		tx, err := models.NewTransactionFromRecord(r, s.loc)
		if err != nil {
			s.logger.WithError(err).Warn("Skipping record",
				logging.F(logging.FieldTransactionID, r.ID),
				logging.F(logging.FieldAmount, r.Amount))
			result.Skipped++
			continue
		}

		if _, err := s.repo.Append(ctx, tx); err != nil {
			if errors.Is(err, store.ErrDuplicateID) {
				s.logger.Warn("Skipping record with existing id",
					logging.F(logging.FieldTransactionID, tx.ID))
				result.Skipped++
				continue
			}
			return result, fmt.Errorf("failed to import record %s: %w", r.ID, err)
		}

		if !tx.HasDate() {
			s.logger.Warn("Record date could not be parsed, transaction kept undated",
				logging.F(logging.FieldTransactionID, tx.ID),
				logging.F(logging.FieldDate, tx.RawDate))
			result.Undated++
		}
		result.Imported++
	}

	s.logger.Info("Import finished",
		logging.F(logging.FieldCount, result.Imported),
		logging.F(logging.FieldSkipped, result.Skipped))
	return result, nil
}
