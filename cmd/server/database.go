package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Harsha0o/ai-productivity-assistant/internal/config"
	"github.com/Harsha0o/ai-productivity-assistant/internal/platform/postgres"
	"github.com/Harsha0o/ai-productivity-assistant/internal/redact"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	connMaxLifetime = 5 * time.Minute
	pingTimeout     = 5 * time.Second
)

// setupDatabase opens the connection pool and verifies it with a ping.
func setupDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established",
		"url", redact.String(cfg.URL),
		"max_open_conns", cfg.MaxOpenConns)
	return db, nil
}

// migrateOnStartup applies every pending migration.
func migrateOnStartup(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if err := postgres.Migrate(ctx, db, postgres.MigrateUp, logger); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	logger.Info("Database migrations applied")
	return nil
}

// runMigration executes a single migration command against the configured
// database and closes the connection afterwards.
func runMigration(ctx context.Context, cfg *config.Config, command string, logger *slog.Logger) error {
	// Use a correlation ID for all migration logs to allow tracing the entire operation
	migrationLogger := logger.With(
		"correlation_id", uuid.New().String(),
		"component", "migrations",
		"command", command,
	)

	start := time.Now()
	migrationLogger.Info("Starting migration operation")

	db, err := setupDatabase(ctx, cfg.Database, migrationLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			migrationLogger.Error("Error closing database connection", "error", redact.Error(err))
		}
	}()

	if err := postgres.Migrate(ctx, db, command, migrationLogger); err != nil {
		return err
	}

	migrationLogger.Info("Migration operation completed", "duration_ms", time.Since(start).Milliseconds())
	return nil
}
