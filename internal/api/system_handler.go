package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Harsha0o/ai-productivity-assistant/internal/api/shared"
	"github.com/Harsha0o/ai-productivity-assistant/internal/platform/logger"
	"github.com/Harsha0o/ai-productivity-assistant/internal/redact"
)

// healthCheckTimeout bounds the database ping of the health endpoint.
const healthCheckTimeout = 2 * time.Second

// Pinger checks connectivity to a dependency. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// WelcomeResponse is returned by the root endpoint.
type WelcomeResponse struct {
	Message   string `json:"message"`
	Version   string `json:"version"`
	AIEnabled bool   `json:"ai_enabled"`
}

// HealthResponse reports service health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// SystemHandler serves the root and health endpoints
type SystemHandler struct {
	db          Pinger
	aiAvailable bool
	version     string
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger, aiAvailable bool, version string) *SystemHandler {
	return &SystemHandler{db: db, aiAvailable: aiAvailable, version: version}
}

// Root handles GET / requests
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, WelcomeResponse{
		Message:   "Welcome to the AI Productivity Assistant API",
		Version:   h.version,
		AIEnabled: h.aiAvailable,
	})
}

// Health handles GET /health requests. The service stays "healthy" while the
// database is down; the database field reports the ping result.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	database := "healthy"
	if err := h.db.PingContext(ctx); err != nil {
		logger.FromContext(r.Context()).Warn("database health check failed",
			slog.String("error", redact.Error(err)))
		database = "unhealthy"
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:   "healthy",
		Database: database,
	})
}
