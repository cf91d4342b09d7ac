package store

import (
	"context"

	"fjacquet/finboard/internal/models"
)

// MockRepository wraps a MemoryRepository and lets tests inject failures.
type MockRepository struct {
	*MemoryRepository

	// Error flags for testing error conditions
	AppendError   error
	SnapshotError error
	CloseError    error

	// DuplicateAppends makes the next n appends fail with ErrDuplicateID.
	DuplicateAppends int
	AppendCalls      int
	Closed           bool
}

var _ Repository = (*MockRepository)(nil)

// NewMockRepository creates an empty mock.
func NewMockRepository() *MockRepository {
	return &MockRepository{MemoryRepository: NewMemoryRepository()}
}

// Append records the call and fails when configured to.
func (m *MockRepository) Append(ctx context.Context, tx models.Transaction) (uint64, error) {
	m.AppendCalls++
	if m.AppendError != nil {
		return 0, m.AppendError
	}
	if m.DuplicateAppends > 0 {
		m.DuplicateAppends--
		return 0, ErrDuplicateID
	}
	return m.MemoryRepository.Append(ctx, tx)
}

// Snapshot fails when configured to.
func (m *MockRepository) Snapshot(ctx context.Context) (Snapshot, error) {
	if m.SnapshotError != nil {
		return Snapshot{}, m.SnapshotError
	}
	return m.MemoryRepository.Snapshot(ctx)
}

// Close marks the mock closed.
func (m *MockRepository) Close() error {
	m.Closed = true
	return m.CloseError
}
