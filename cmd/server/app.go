package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Harsha0o/ai-productivity-assistant/internal/assistant"
	"github.com/Harsha0o/ai-productivity-assistant/internal/config"
	"github.com/Harsha0o/ai-productivity-assistant/internal/generation"
	"github.com/Harsha0o/ai-productivity-assistant/internal/platform/gemini"
	"github.com/Harsha0o/ai-productivity-assistant/internal/platform/postgres"
	"github.com/Harsha0o/ai-productivity-assistant/internal/redact"
	"github.com/Harsha0o/ai-productivity-assistant/internal/service"
	"github.com/Harsha0o/ai-productivity-assistant/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	taskStore  store.TaskStore
	statsStore store.StatsStore
	transactor store.Transactor

	// generator is nil when the AI backend is unavailable.
	generator generation.Generator
	cache     *generation.CachedGenerator
	assistant *assistant.Assistant

	taskService service.TaskService
	aiService   service.AIService
}

// newApplication creates a new application instance with all dependencies initialized.
// The AI backend is resolved once here; a missing key or a failed client setup
// leaves the assistant on fallbacks for the lifetime of the process.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.taskStore = postgres.NewPostgresTaskStore(db, logger)
	app.statsStore = postgres.NewPostgresStatsStore(db, logger)
	app.transactor = store.NewSQLTransactor(db)

	app.generator, app.cache = setupGenerator(ctx, cfg.LLM, logger)
	app.assistant = assistant.New(app.generator, logger)

	var err error
	app.taskService, err = service.NewTaskService(app.taskStore, app.transactor, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	app.aiService, err = service.NewAIService(
		app.assistant,
		cfg.LLM.ModelName,
		app.taskStore,
		app.statsStore,
		app.transactor,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AI service: %w", err)
	}

	logger.Info("Application initialized successfully", "ai_available", app.assistant.IsAvailable())
	return app, nil
}

// setupGenerator builds the generative backend, optionally behind a response
// cache. It returns a nil Generator when the backend cannot be used.
func setupGenerator(
	ctx context.Context,
	cfg config.LLMConfig,
	logger *slog.Logger,
) (generation.Generator, *generation.CachedGenerator) {
	if cfg.GeminiAPIKey == "" {
		logger.Warn("Gemini API key not configured, AI features will use fallbacks")
		return nil, nil
	}

	gen, err := gemini.NewGenerator(ctx, logger.With("component", "llm_generator"), cfg)
	if err != nil {
		logger.Error("Failed to initialize LLM generator, AI features will use fallbacks",
			"error", redact.Error(err))
		return nil, nil
	}
	logger.Info("LLM generator initialized successfully", "model", gen.Model())

	if cfg.CacheTTL() <= 0 {
		return gen, nil
	}

	cached, err := generation.NewCachedGenerator(gen, cfg.CacheTTL(), cfg.CacheMaxEntries, logger)
	if err != nil {
		logger.Warn("Generation cache disabled", "error", redact.Error(err))
		return gen, nil
	}
	return cached, cached
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.cache != nil {
		app.cache.Close()
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", redact.Error(err))
		}
	}

	app.logger.Info("Application shutdown completed")
}
