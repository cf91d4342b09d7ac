package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"fjacquet/finboard/internal/models"
)

type memoryState struct {
	version uint64
	items   []models.Transaction
	ids     map[string]struct{}
}

// MemoryRepository holds the collection in process. Writers are serialized and
// publish a fresh immutable state; readers never block.
type MemoryRepository struct {
	mu    sync.Mutex
	state atomic.Pointer[memoryState]
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository creates an empty repository.
func NewMemoryRepository() *MemoryRepository {
	r := &MemoryRepository{}
	r.state.Store(&memoryState{ids: map[string]struct{}{}})
	return r
}

// Append adds tx at the end of the collection.
func (r *MemoryRepository) Append(ctx context.Context, tx models.Transaction) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.state.Load()
	if _, exists := cur.ids[tx.ID]; exists {
		return cur.version, fmt.Errorf("append %s: %w", tx.ID, ErrDuplicateID)
	}

	items := make([]models.Transaction, len(cur.items), len(cur.items)+1)
	copy(items, cur.items)
	items = append(items, tx)

	ids := make(map[string]struct{}, len(cur.ids)+1)
	for id := range cur.ids {
		ids[id] = struct{}{}
	}
	ids[tx.ID] = struct{}{}

	next := &memoryState{version: cur.version + 1, items: items, ids: ids}
	r.state.Store(next)
	return next.version, nil
}

// Snapshot returns a copy of the current collection.
func (r *MemoryRepository) Snapshot(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	cur := r.state.Load()
	items := make([]models.Transaction, len(cur.items))
	copy(items, cur.items)
	return Snapshot{Version: cur.version, Items: items}, nil
}

// Close is a no-op.
func (r *MemoryRepository) Close() error {
	return nil
}
