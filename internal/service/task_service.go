package service

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

// CreateTaskParams holds the fields of a new task.
type CreateTaskParams struct {
	Title       string
	Description *string
	Priority    domain.Priority
	Category    domain.Category
	DueDate     *time.Time
}

// UpdateTaskParams holds a partial update. Nil fields are left unchanged.
type UpdateTaskParams struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *domain.Priority
	Category    *domain.Category
	DueDate     *time.Time
}

// IsEmpty reports whether the update changes nothing.
func (p UpdateTaskParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil &&
		p.Priority == nil && p.Category == nil && p.DueDate == nil
}

// TaskService provides task CRUD operations
type TaskService interface {
	// CreateTask validates and stores a new task
	CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error)

	// GetTask retrieves a task by its ID
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// ListTasks returns one page of tasks, newest first, and the total count
	ListTasks(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, int, error)

	// UpdateTask applies a partial update inside a transaction
	UpdateTask(ctx context.Context, id int64, params UpdateTaskParams) (*domain.Task, error)

	// DeleteTask removes a task
	DeleteTask(ctx context.Context, id int64) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	tasks  store.TaskStore
	tx     store.Transactor
	logger *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(tasks store.TaskStore, tx store.Transactor, logger *slog.Logger) (TaskService, error) {
	if tasks == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "task store cannot be nil"}
	}
	if tx == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "transactor cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		tasks:  tasks,
		tx:     tx,
		logger: logger.With(slog.String("component", "task_service")),
	}, nil
}

// CreateTask implements TaskService.
func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(params.Title, params.Description, params.Priority, params.Category, params.DueDate)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		log.ErrorContext(ctx, "failed to create task", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	log.InfoContext(ctx, "task created", slog.Int64("task_id", task.ID))
	return task, nil
}

// GetTask implements TaskService.
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}
	return task, nil
}

// ListTasks implements TaskService.
func (s *taskServiceImpl) ListTasks(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, int, error) {
	tasks, total, err := s.tasks.List(ctx, filter)
	if err != nil {
		return nil, 0, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}
	return tasks, total, nil
}

// UpdateTask implements TaskService.
// The row is locked for the duration of the read-modify-write.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, id int64, params UpdateTaskParams) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.Int64("task_id", id))

	var updated *domain.Task
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txTasks := s.tasks.WithTx(tx)

		task, err := txTasks.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		applyUpdate(task, params)
		task.UpdatedAt = time.Now().UTC()
		if err := task.Validate(); err != nil {
			return err
		}

		if err := txTasks.Update(ctx, task); err != nil {
			return err
		}

		updated = task
		return nil
	})
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return nil, err
		}
		if !errors.Is(err, store.ErrTaskNotFound) {
			log.ErrorContext(ctx, "failed to update task", slog.String("error", err.Error()))
		}
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	log.DebugContext(ctx, "task updated")
	return updated, nil
}

func applyUpdate(task *domain.Task, params UpdateTaskParams) {
	if params.Title != nil {
		task.Title = *params.Title
	}
	if params.Description != nil {
		task.Description = params.Description
	}
	if params.Completed != nil {
		task.Completed = *params.Completed
	}
	if params.Priority != nil {
		task.Priority = *params.Priority
	}
	if params.Category != nil {
		task.Category = *params.Category
	}
	if params.DueDate != nil {
		task.DueDate = params.DueDate
	}
}

// DeleteTask implements TaskService.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).InfoContext(ctx, "task deleted", slog.Int64("task_id", id))
	return nil
}
