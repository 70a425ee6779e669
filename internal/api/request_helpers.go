package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Harsha0o/ai-productivity-assistant/internal/domain"
	"github.com/Harsha0o/ai-productivity-assistant/internal/store"
	"github.com/go-chi/chi/v5"
)

// getPathID extracts a positive integer ID from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// parseTaskFilter reads skip, limit and completed from the query string.
// skip defaults to 0 and limit to store.DefaultListLimit.
func parseTaskFilter(r *http.Request) (store.TaskFilter, error) {
	q := r.URL.Query()
	filter := store.TaskFilter{Limit: store.DefaultListLimit}

	if v := q.Get("skip"); v != "" {
		skip, err := strconv.Atoi(v)
		if err != nil || skip < 0 {
			return store.TaskFilter{}, domain.NewValidationError("skip", "must be a non-negative integer", domain.ErrInvalidFormat)
		}
		filter.Skip = skip
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 || limit > store.MaxListLimit {
			return store.TaskFilter{}, domain.NewValidationError("limit", "must be between 1 and 100", domain.ErrInvalidFormat)
		}
		filter.Limit = limit
	}

	if v := q.Get("completed"); v != "" {
		completed, err := strconv.ParseBool(v)
		if err != nil {
			return store.TaskFilter{}, domain.NewValidationError("completed", "must be true or false", domain.ErrInvalidFormat)
		}
		filter.Completed = &completed
	}

	return filter, nil
}

// parseOptionalDueDate parses a due date from a request body field.
func parseOptionalDueDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	return domain.ParseDueDate(*value)
}
