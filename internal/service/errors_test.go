package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Harsha0o/ai-productivity-assistant/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "task not found", ErrTaskNotFound.Error())
	assert.Equal(t, "no tasks found", ErrNoTasksFound.Error())
	assert.False(t, errors.Is(ErrTaskNotFound, ErrNoTasksFound))
}

func TestTaskServiceError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *TaskServiceError
		expected string
	}{
		{
			name:     "with underlying error",
			err:      &TaskServiceError{Operation: "create_task", Message: "failed to save task", Err: errors.New("connection reset")},
			expected: "task service create_task failed: failed to save task: connection reset",
		},
		{
			name:     "without underlying error",
			err:      &TaskServiceError{Operation: "create_service", Message: "task store cannot be nil"},
			expected: "task service create_service failed: task store cannot be nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestNewTaskServiceError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, NewTaskServiceError("get_task", "msg", nil))
	})

	t.Run("store not found maps to service sentinel", func(t *testing.T) {
		err := NewTaskServiceError("get_task", "msg", fmt.Errorf("lookup: %w", store.ErrTaskNotFound))
		assert.Same(t, ErrTaskNotFound, err)
	})

	t.Run("service sentinels pass through", func(t *testing.T) {
		assert.Same(t, ErrNoTasksFound, NewTaskServiceError("prioritize", "msg", ErrNoTasksFound))
		assert.Same(t, ErrTaskNotFound, NewTaskServiceError("get_task", "msg", ErrTaskNotFound))
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		cause := errors.New("disk full")
		err := NewTaskServiceError("create_task", "failed to save task", cause)

		var serviceErr *TaskServiceError
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, "create_task", serviceErr.Operation)
		assert.ErrorIs(t, err, cause)
	})
}
