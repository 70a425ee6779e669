package service

import (
	"errors"
	"fmt"

	"github.com/Harsha0o/ai-productivity-assistant/internal/store"
)

// Common service errors. Callers check for them with errors.Is; the API layer
// maps them to HTTP status codes.
var (
	// ErrTaskNotFound indicates that the requested task does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrTaskNotFound = errors.New("task not found")

	// ErrNoTasksFound indicates that none of the requested tasks exist or all
	// of them are already completed.
	// API layer should map this to HTTP 404 Not Found.
	ErrNoTasksFound = errors.New("no tasks found")
)

// TaskServiceError wraps unexpected errors from the task services with the
// operation that failed.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "create_task", "categorize_task")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
// It returns known sentinel errors directly without wrapping.
func NewTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrTaskNotFound), errors.Is(err, store.ErrTaskNotFound):
		return ErrTaskNotFound
	case errors.Is(err, ErrNoTasksFound):
		return ErrNoTasksFound
	}

	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
