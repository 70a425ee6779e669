package postgres

import (
	"context"
	"testing"

	"github.com/Harsha0o/ai-productivity-assistant/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	versions, err := MigrationVersions()
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, versions)

	content, err := migrationsFS.ReadFile("migrations/00001_create_tasks.sql")
	require.NoError(t, err)
	assert.Contains(t, string(content), "-- +goose Up")
	assert.Contains(t, string(content), "-- +goose Down")
	assert.Contains(t, string(content), "CREATE TABLE IF NOT EXISTS tasks")
}

func TestMigrateRejectsUnknownCommand(t *testing.T) {
	err := Migrate(context.Background(), nil, "sideways", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration command")
}

func TestGooseLogger(t *testing.T) {
	l, buf := logger.NewTestLogger()
	gl := &gooseLogger{logger: l}

	gl.Printf("OK   %s (%d ms)\n", "00001_create_tasks.sql", 12)
	gl.Fatalf("failed: %v", "boom")

	entries := buf.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "OK   00001_create_tasks.sql (12 ms)", entries[0]["msg"])
	assert.Equal(t, "ERROR", entries[1]["level"])
	assert.Equal(t, "failed: boom", entries[1]["msg"])
}
