package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fjacquet/finboard/internal/dateutils"
	"fjacquet/finboard/internal/fileutils"
	"fjacquet/finboard/internal/logging"
	"fjacquet/finboard/internal/models"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

// SQLiteRepository persists the collection in a SQLite file. The version is the
// number of stored rows.
type SQLiteRepository struct {
	db     *sql.DB
	logger logging.Logger
}

var _ Repository = (*SQLiteRepository)(nil)

// NewSQLiteRepository opens dbPath, creating it and its directory if needed, and
// applies pending migrations.
func NewSQLiteRepository(dbPath string, logger logging.Logger) (*SQLiteRepository, error) {
	if err := fileutils.EnsureParentDirectory(dbPath); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	logger.Debug("SQLite repository ready",
		logging.Field{Key: logging.FieldFile, Value: dbPath})

	return &SQLiteRepository{db: db, logger: logger}, nil
}

// Close releases the database handle.
func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Append inserts tx after every stored row.
func (r *SQLiteRepository) Append(ctx context.Context, tx models.Transaction) (uint64, error) {
	dbtx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin append: %w", err)
	}
	defer dbtx.Rollback() //nolint:errcheck

	var exists int
	err = dbtx.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions WHERE id = ?`, tx.ID).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("check id %s: %w", tx.ID, err)
	}
	if exists > 0 {
		version, err := countRows(ctx, dbtx)
		if err != nil {
			return 0, err
		}
		return version, fmt.Errorf("append %s: %w", tx.ID, ErrDuplicateID)
	}

	_, err = dbtx.ExecContext(ctx, `
		INSERT INTO transactions (id, merchant, account, category, date_iso, date_raw, amount)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		tx.ID, tx.Merchant, tx.Account, tx.Category,
		dateutils.ToISODate(tx.Date), tx.RawDate, tx.Amount.String())
	if err != nil {
		return 0, fmt.Errorf("insert transaction %s: %w", tx.ID, err)
	}

	version, err := countRows(ctx, dbtx)
	if err != nil {
		return 0, err
	}
	if err := dbtx.Commit(); err != nil {
		return 0, fmt.Errorf("commit append: %w", err)
	}

	r.logger.Debug("Transaction saved to SQLite",
		logging.Field{Key: logging.FieldTransactionID, Value: tx.ID},
		logging.Field{Key: logging.FieldVersion, Value: version})

	return version, nil
}

// Snapshot reads every row in insertion order.
func (r *SQLiteRepository) Snapshot(ctx context.Context) (Snapshot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, merchant, account, category, date_iso, date_raw, amount
		FROM transactions
		ORDER BY seq ASC`)
	if err != nil {
		return Snapshot{}, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	items := []models.Transaction{}
	for rows.Next() {
		var (
			tx      models.Transaction
			dateISO string
			amount  string
		)
		if err := rows.Scan(&tx.ID, &tx.Merchant, &tx.Account, &tx.Category, &dateISO, &tx.RawDate, &amount); err != nil {
			return Snapshot{}, fmt.Errorf("scan transaction: %w", err)
		}
		if dateISO != "" {
			day, err := time.Parse(dateutils.DateLayoutISO, dateISO)
			if err != nil {
				return Snapshot{}, fmt.Errorf("stored date of %s: %w", tx.ID, err)
			}
			tx.Date = day
		}
		tx.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return Snapshot{}, fmt.Errorf("stored amount of %s: %w", tx.ID, err)
		}
		items = append(items, tx)
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("read transactions: %w", err)
	}

	return Snapshot{Version: uint64(len(items)), Items: items}, nil
}

func countRows(ctx context.Context, dbtx *sql.Tx) (uint64, error) {
	var n uint64
	if err := dbtx.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}
