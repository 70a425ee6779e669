package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Harsha0o/ai-productivity-assistant/internal/domain"
	"github.com/Harsha0o/ai-productivity-assistant/internal/jsonx"
	"github.com/Harsha0o/ai-productivity-assistant/internal/service"
	"github.com/Harsha0o/ai-productivity-assistant/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"service task not found", service.ErrTaskNotFound, http.StatusNotFound},
		{"no tasks found", service.ErrNoTasksFound, http.StatusNotFound},
		{"wrapped store not found", fmt.Errorf("get: %w", store.ErrTaskNotFound), http.StatusNotFound},
		{"duplicate", store.ErrDuplicate, http.StatusConflict},
		{
			"duplicate inside store error",
			store.NewStoreError("task", "create", "failed to insert task", fmt.Errorf("%w: unique", store.ErrDuplicate)),
			http.StatusConflict,
		},
		{"update failure", fmt.Errorf("%w: connection reset", store.ErrUpdateFailed), http.StatusInternalServerError},
		{"delete failure", fmt.Errorf("%w: connection reset", store.ErrDeleteFailed), http.StatusInternalServerError},
		{"field validation", domain.NewValidationError("title", "cannot be empty", nil), http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"invalid priority", domain.ErrInvalidPriority, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"transaction failure", store.ErrTransactionFailed, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"task not found", service.ErrTaskNotFound, "Task not found"},
		{"no tasks found", service.ErrNoTasksFound, "No tasks found"},
		{"field validation", domain.NewValidationError("due_date", "must be an ISO-8601 date or date-time", domain.ErrInvalidDueDate),
			"Invalid due_date: must be an ISO-8601 date or date-time"},
		{"invalid id", domain.ErrInvalidID, "Invalid ID"},
		{"validation", domain.ErrValidation, "Validation failed"},
		{"internal details are hidden", errors.New("pq: relation tasks does not exist"), "An unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.message, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestHandleAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		err             error
		defaultMsg      string
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "not found ignores default message",
			err:             service.ErrTaskNotFound,
			defaultMsg:      "Custom default message",
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Task not found",
		},
		{
			name:            "unexpected error uses default message",
			err:             errors.New("database connection error"),
			defaultMsg:      "Friendly server error message",
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Friendly server error message",
		},
		{
			name:            "unexpected error without default message",
			err:             errors.New("database connection error"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "An unexpected error occurred",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(rr, req, tc.err, tc.defaultMsg)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			var response map[string]any
			require.NoError(t, jsonx.Unmarshal(rr.Body.Bytes(), &response))
			assert.Equal(t, tc.expectedMessage, response["error"])
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "domain validation error",
			err:      domain.NewValidationError("skip", "must be a non-negative integer", domain.ErrInvalidFormat),
			expected: "Invalid skip: must be a non-negative integer",
		},
		{
			name:     "validator message string",
			err:      errors.New("Key: 'CreateTaskRequest.Title' Error:Field validation for 'Title' failed on the 'required' tag"),
			expected: "Invalid Title: required field",
		},
		{name: "generic", err: errors.New("validation error"), expected: "Validation error"},
		{name: "nil", err: nil, expected: "Validation error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeValidationError(tc.err))
		})
	}
}
