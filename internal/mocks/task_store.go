package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/Harsha0o/ai-productivity-assistant/internal/domain"
	"github.com/Harsha0o/ai-productivity-assistant/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
// WithTx returns the same mock so transactional code paths can be exercised.
type MockTaskStore struct {
	CreateFn              func(ctx context.Context, task *domain.Task) error
	GetByIDFn             func(ctx context.Context, id int64) (*domain.Task, error)
	GetForUpdateFn        func(ctx context.Context, id int64) (*domain.Task, error)
	ListFn                func(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, int, error)
	UpdateFn              func(ctx context.Context, task *domain.Task) error
	DeleteFn              func(ctx context.Context, id int64) error
	FindIncompleteByIDsFn func(ctx context.Context, ids []int64) ([]*domain.Task, error)
	ListRecentFn          func(ctx context.Context, limit int) ([]*domain.Task, error)

	mu    sync.Mutex
	calls map[string]int
}

var _ store.TaskStore = (*MockTaskStore)(nil)

func (m *MockTaskStore) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

// Calls returns how many times method was invoked.
func (m *MockTaskStore) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// Create implements store.TaskStore.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	m.record("Create")
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return nil
}

// GetByID implements store.TaskStore.
func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	m.record("GetByID")
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrTaskNotFound
}

// GetForUpdate implements store.TaskStore.
func (m *MockTaskStore) GetForUpdate(ctx context.Context, id int64) (*domain.Task, error) {
	m.record("GetForUpdate")
	if m.GetForUpdateFn != nil {
		return m.GetForUpdateFn(ctx, id)
	}
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrTaskNotFound
}

// List implements store.TaskStore.
func (m *MockTaskStore) List(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, int, error) {
	m.record("List")
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	return []*domain.Task{}, 0, nil
}

// Update implements store.TaskStore.
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	m.record("Update")
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}
	return nil
}

// Delete implements store.TaskStore.
func (m *MockTaskStore) Delete(ctx context.Context, id int64) error {
	m.record("Delete")
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// FindIncompleteByIDs implements store.TaskStore.
func (m *MockTaskStore) FindIncompleteByIDs(ctx context.Context, ids []int64) ([]*domain.Task, error) {
	m.record("FindIncompleteByIDs")
	if m.FindIncompleteByIDsFn != nil {
		return m.FindIncompleteByIDsFn(ctx, ids)
	}
	return []*domain.Task{}, nil
}

// ListRecent implements store.TaskStore.
func (m *MockTaskStore) ListRecent(ctx context.Context, limit int) ([]*domain.Task, error) {
	m.record("ListRecent")
	if m.ListRecentFn != nil {
		return m.ListRecentFn(ctx, limit)
	}
	return []*domain.Task{}, nil
}

// WithTx implements store.TaskStore.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}

// MockStatsStore implements store.StatsStore for testing.
type MockStatsStore struct {
	GetTaskStatsFn func(ctx context.Context) (domain.TaskStats, error)
}

var _ store.StatsStore = (*MockStatsStore)(nil)

// GetTaskStats implements store.StatsStore.
func (m *MockStatsStore) GetTaskStats(ctx context.Context) (domain.TaskStats, error) {
	if m.GetTaskStatsFn != nil {
		return m.GetTaskStatsFn(ctx)
	}
	return domain.NewTaskStats(0, 0, nil, nil), nil
}

// MockTransactor implements store.Transactor by running the function
// directly with a nil transaction.
type MockTransactor struct {
	// Err, when set, is returned without running the function.
	Err error

	mu    sync.Mutex
	count int
}

var _ store.Transactor = (*MockTransactor)(nil)

// RunInTx implements store.Transactor.
func (m *MockTransactor) RunInTx(ctx context.Context, fn store.TxFn) error {
	m.mu.Lock()
	m.count++
	m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	return fn(ctx, nil)
}

// CallCount returns how many transactions were started.
func (m *MockTransactor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}
