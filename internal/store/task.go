package store

import (
	"context"
	"database/sql"

	"github.com/Harsha0o/ai-productivity-assistant/internal/domain"
)

// Pagination bounds for TaskStore.List.
const (
	DefaultListLimit = 100
	MaxListLimit     = 100
)

// TaskFilter narrows TaskStore.List results.
type TaskFilter struct {
	// Completed filters on completion state when non-nil.
	Completed *bool
	Skip      int
	Limit     int
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task and sets its ID and timestamps from the store.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// GetForUpdate retrieves a task with a row-level lock using SELECT FOR UPDATE.
	// It must be called within a transaction.
	// Returns ErrTaskNotFound if the task does not exist.
	GetForUpdate(ctx context.Context, id int64) (*domain.Task, error)

	// List returns one page of tasks, newest first, together with the total
	// number of tasks matching the filter.
	List(ctx context.Context, filter TaskFilter) ([]*domain.Task, int, error)

	// Update saves every mutable field of an existing task and refreshes UpdatedAt.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task by ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// FindIncompleteByIDs returns the incomplete tasks among ids in the order
	// the ids were given. Unknown and completed ids are skipped.
	FindIncompleteByIDs(ctx context.Context, ids []int64) ([]*domain.Task, error)

	// ListRecent returns up to limit tasks, newest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.Task, error)

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) TaskStore
}

// StatsStore provides aggregate views over stored tasks.
type StatsStore interface {
	// GetTaskStats returns totals, completion rate and per-category and
	// per-priority counts over all tasks.
	GetTaskStats(ctx context.Context) (domain.TaskStats, error)
}
