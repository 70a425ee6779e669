// Package main implements the entry point for the AI productivity assistant
// API server, which manages to-do tasks and offers AI-assisted parsing,
// prioritization, categorization and productivity insights.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/Harsha0o/ai-productivity-assistant/internal/config"
	"github.com/Harsha0o/ai-productivity-assistant/internal/platform/logger"
	"github.com/Harsha0o/ai-productivity-assistant/internal/redact"
)

// version is reported by the root endpoint.
const version = "1.0.0"

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults to ./config.yaml when present)")
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, reset, status, version) and exit")
	flag.Parse()

	cfg, err := loadAppConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	ctx := context.Background()

	if *migrateCmd != "" {
		if err := runMigration(ctx, cfg, *migrateCmd, l); err != nil {
			l.Error("Migration failed", "command", *migrateCmd, "error", redact.Error(err))
			os.Exit(1)
		}
		return
	}

	if err := run(ctx, cfg, l); err != nil {
		l.Error("Server exited with error", "error", redact.Error(err))
		os.Exit(1)
	}
}

// loadAppConfig loads the configuration from the given file, or from the
// environment and an optional ./config.yaml when path is empty.
func loadAppConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// run connects to the database, applies pending migrations when configured
// and serves HTTP until the process is asked to stop.
func run(ctx context.Context, cfg *config.Config, l *slog.Logger) error {
	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName)

	db, err := setupDatabase(ctx, cfg.Database, l)
	if err != nil {
		return err
	}

	if cfg.Database.AutoMigrate {
		if err := migrateOnStartup(ctx, db, l); err != nil {
			_ = db.Close()
			return err
		}
	}

	app, err := newApplication(ctx, cfg, l, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
