// Package store keeps the transaction collection and loads dashboard seed data.
package store

import (
	"context"
	"errors"

	"fjacquet/finboard/internal/models"
)

// ErrDuplicateID is returned when appending a transaction whose id is taken.
var ErrDuplicateID = errors.New("transaction id already exists")

// Snapshot is a versioned copy of the collection. Items are in insertion order
// and owned by the caller.
type Snapshot struct {
	Version uint64
	Items   []models.Transaction
}

// Repository is an append-only transaction collection. Every successful Append
// bumps the version by one.
type Repository interface {
	Append(ctx context.Context, tx models.Transaction) (uint64, error)
	Snapshot(ctx context.Context) (Snapshot, error)
	Close() error
}

// Backends
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)
