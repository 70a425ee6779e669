package postgres

import (
	"context"
	"log/slog"

	"github.com/Harsha0o/ai-productivity-assistant/internal/domain"
	"github.com/Harsha0o/ai-productivity-assistant/internal/platform/logger"
	"github.com/Harsha0o/ai-productivity-assistant/internal/store"
)

// PostgresStatsStore implements the store.StatsStore interface.
type PostgresStatsStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresStatsStore creates a new PostgreSQL implementation of the StatsStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresStatsStore(db store.DBTX, logger *slog.Logger) *PostgresStatsStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresStatsStore{
		db:     db,
		logger: logger.With(slog.String("component", "stats_store")),
	}
}

// Ensure PostgresStatsStore implements store.StatsStore interface
var _ store.StatsStore = (*PostgresStatsStore)(nil)

// GetTaskStats implements store.StatsStore.GetTaskStats
func (s *PostgresStatsStore) GetTaskStats(ctx context.Context) (domain.TaskStats, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var total, completed int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE completed) FROM tasks`,
	).Scan(&total, &completed)
	if err != nil {
		log.Error("failed to count tasks", slog.String("error", err.Error()))
		return domain.TaskStats{}, store.NewStoreError("task_stats", "get", "failed to count tasks", MapError(err))
	}

	byCategory := make(map[domain.Category]int)
	if err := s.countBy(ctx, "category", func(key string, n int) {
		byCategory[domain.Category(key)] = n
	}); err != nil {
		log.Error("failed to count tasks by category", slog.String("error", err.Error()))
		return domain.TaskStats{}, store.NewStoreError("task_stats", "get", "failed to group by category", MapError(err))
	}

	byPriority := make(map[domain.Priority]int)
	if err := s.countBy(ctx, "priority", func(key string, n int) {
		byPriority[domain.Priority(key)] = n
	}); err != nil {
		log.Error("failed to count tasks by priority", slog.String("error", err.Error()))
		return domain.TaskStats{}, store.NewStoreError("task_stats", "get", "failed to group by priority", MapError(err))
	}

	stats := domain.NewTaskStats(total, completed, byCategory, byPriority)
	log.Debug("task stats computed",
		slog.Int("total", stats.Total),
		slog.Int("completed", stats.Completed))
	return stats, nil
}

// countBy groups tasks by column, which must be a trusted column name.
func (s *PostgresStatsStore) countBy(ctx context.Context, column string, add func(key string, n int)) error {
	rows, err := s.db.QueryContext(ctx, `SELECT `+column+`, COUNT(*) FROM tasks GROUP BY `+column)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			key string
			n   int
		)
		if err := rows.Scan(&key, &n); err != nil {
			return err
		}
		add(key, n)
	}
	return rows.Err()
}
