package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/Harsha0o/ai-productivity-assistant/internal/domain"
	"github.com/Harsha0o/ai-productivity-assistant/internal/platform/logger"
	"github.com/Harsha0o/ai-productivity-assistant/internal/store"
)

const taskColumns = `id, title, description, completed, priority, category, due_date, ai_generated, created_at, updated_at`

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// WithTx implements store.TaskStore.WithTx
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{
		db:     tx,
		logger: s.logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task        domain.Task
		description sql.NullString
		priority    string
		category    string
		dueDate     sql.NullTime
	)

	if err := row.Scan(
		&task.ID,
		&task.Title,
		&description,
		&task.Completed,
		&priority,
		&category,
		&dueDate,
		&task.AIGenerated,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if description.Valid {
		task.Description = &description.String
	}
	if dueDate.Valid {
		due := dueDate.Time.UTC()
		task.DueDate = &due
	}
	task.Priority = domain.Priority(priority)
	task.Category = domain.Category(category)
	task.CreatedAt = task.CreatedAt.UTC()
	task.UpdatedAt = task.UpdatedAt.UTC()

	return &task, nil
}

func (s *PostgresTaskStore) queryTasks(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// Create implements store.TaskStore.Create
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create", slog.String("error", err.Error()))
		return err
	}

	now := time.Now().UTC()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = task.CreatedAt
	}

	query := `
		INSERT INTO tasks (title, description, completed, priority, category, due_date, ai_generated, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.Completed,
		string(task.Priority),
		string(task.Category),
		task.DueDate,
		task.AIGenerated,
		task.CreatedAt,
		task.UpdatedAt,
	).Scan(&task.ID)
	if err != nil {
		log.Error("failed to create task", slog.String("error", err.Error()))
		return store.NewStoreError("task", "create", "failed to insert task", MapError(err))
	}

	log.Info("task created successfully",
		slog.Int64("task_id", task.ID),
		slog.Bool("ai_generated", task.AIGenerated))
	return nil
}

// GetByID implements store.TaskStore.GetByID
func (s *PostgresTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	return s.get(ctx, "SELECT "+taskColumns+" FROM tasks WHERE id = $1", id)
}

// GetForUpdate implements store.TaskStore.GetForUpdate
func (s *PostgresTaskStore) GetForUpdate(ctx context.Context, id int64) (*domain.Task, error) {
	return s.get(ctx, "SELECT "+taskColumns+" FROM tasks WHERE id = $1 FOR UPDATE", id)
}

func (s *PostgresTaskStore) get(ctx context.Context, query string, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.Int64("task_id", id))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task", slog.String("error", err.Error()), slog.Int64("task_id", id))
		return nil, store.NewStoreError("task", "get", "failed to load task", MapError(err))
	}

	return task, nil
}

// List implements store.TaskStore.List
func (s *PostgresTaskStore) List(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	limit := filter.Limit
	if limit <= 0 {
		limit = store.DefaultListLimit
	}
	if limit > store.MaxListLimit {
		limit = store.MaxListLimit
	}
	skip := filter.Skip
	if skip < 0 {
		skip = 0
	}

	var completed any
	if filter.Completed != nil {
		completed = *filter.Completed
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM tasks WHERE ($1::boolean IS NULL OR completed = $1::boolean)`
	if err := s.db.QueryRowContext(ctx, countQuery, completed).Scan(&total); err != nil {
		log.Error("failed to count tasks", slog.String("error", err.Error()))
		return nil, 0, store.NewStoreError("task", "list", "failed to count tasks", MapError(err))
	}

	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE ($1::boolean IS NULL OR completed = $1::boolean)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	tasks, err := s.queryTasks(ctx, query, completed, limit, skip)
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, 0, store.NewStoreError("task", "list", "failed to list tasks", MapError(err))
	}

	log.Debug("tasks listed",
		slog.Int("count", len(tasks)),
		slog.Int("total", total),
		slog.Int("skip", skip),
		slog.Int("limit", limit))
	return tasks, total, nil
}

// Update implements store.TaskStore.Update
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return err
	}

	updatedAt := time.Now().UTC()

	query := `
		UPDATE tasks
		SET title = $1, description = $2, completed = $3, priority = $4, category = $5,
			due_date = $6, ai_generated = $7, updated_at = $8
		WHERE id = $9
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.Completed,
		string(task.Priority),
		string(task.Category),
		task.DueDate,
		task.AIGenerated,
		updatedAt,
		task.ID,
	)
	if err != nil {
		log.Error("failed to update task", slog.String("error", err.Error()), slog.Int64("task_id", task.ID))
		return store.NewStoreError("task", "update", "failed to update task", mapWriteError(err, store.ErrUpdateFailed))
	}

	if err := checkRowsAffected(result, store.ErrTaskNotFound); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			log.Debug("task not found for update", slog.Int64("task_id", task.ID))
			return err
		}
		return store.NewStoreError("task", "update", "failed to confirm update", mapWriteError(err, store.ErrUpdateFailed))
	}

	task.UpdatedAt = updatedAt
	log.Info("task updated successfully", slog.Int64("task_id", task.ID))
	return nil
}

// Delete implements store.TaskStore.Delete
func (s *PostgresTaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete task", slog.String("error", err.Error()), slog.Int64("task_id", id))
		return store.NewStoreError("task", "delete", "failed to delete task", mapWriteError(err, store.ErrDeleteFailed))
	}

	if err := checkRowsAffected(result, store.ErrTaskNotFound); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			log.Debug("task not found for delete", slog.Int64("task_id", id))
			return err
		}
		return store.NewStoreError("task", "delete", "failed to confirm delete", mapWriteError(err, store.ErrDeleteFailed))
	}

	log.Info("task deleted successfully", slog.Int64("task_id", id))
	return nil
}

// FindIncompleteByIDs implements store.TaskStore.FindIncompleteByIDs
func (s *PostgresTaskStore) FindIncompleteByIDs(ctx context.Context, ids []int64) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(ids) == 0 {
		return []*domain.Task{}, nil
	}

	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE id = ANY($1::bigint[]) AND completed = FALSE
		ORDER BY array_position($1::bigint[], id)
	`
	tasks, err := s.queryTasks(ctx, query, ids)
	if err != nil {
		log.Error("failed to find incomplete tasks", slog.String("error", err.Error()), slog.Int("id_count", len(ids)))
		return nil, store.NewStoreError("task", "find", "failed to load tasks by id", MapError(err))
	}

	log.Debug("incomplete tasks loaded", slog.Int("requested", len(ids)), slog.Int("found", len(tasks)))
	return tasks, nil
}

// ListRecent implements store.TaskStore.ListRecent
func (s *PostgresTaskStore) ListRecent(ctx context.Context, limit int) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		return []*domain.Task{}, nil
	}

	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at DESC, id DESC LIMIT $1`
	tasks, err := s.queryTasks(ctx, query, limit)
	if err != nil {
		log.Error("failed to list recent tasks", slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "list", "failed to list recent tasks", MapError(err))
	}

	return tasks, nil
}
