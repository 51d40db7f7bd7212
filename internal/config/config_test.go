package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinylink/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Empty(t, cfg.Database.Fallback)
	assert.Equal(t, 10, cfg.Database.MaxConns)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, 5432, cfg.Database.Postgres.Port)
	assert.Equal(t, "127.0.0.1", cfg.Database.MySQL.Host)
	assert.Equal(t, 3306, cfg.Database.MySQL.Port)
	assert.Equal(t, "root", cfg.Database.MySQL.User)
	assert.Equal(t, "tinylink", cfg.Database.MySQL.Database)
	assert.Equal(t, "db.sqlite", cfg.Database.SQLite.Path)
	assert.Equal(t, "http://localhost:4000", cfg.App.BaseURL)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_DatabaseFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_TYPE", "postgresql")
	t.Setenv("DB_FALLBACK", "mysql,sqlite")
	t.Setenv("DB_CONNECT_TIMEOUT", "250ms")
	t.Setenv("PG_HOST", "db.example.supabase.co")
	t.Setenv("PG_SSL", "true")
	t.Setenv("SQLITE_PATH", ":memory:")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgresql", cfg.Database.Type)
	assert.Equal(t, []string{"mysql", "sqlite"}, cfg.Database.Fallback)
	assert.Equal(t, 250*time.Millisecond, cfg.Database.ConnectTimeout)
	assert.Equal(t, "db.example.supabase.co", cfg.Database.Postgres.Host)
	assert.True(t, cfg.Database.Postgres.SSL)
	assert.Equal(t, ":memory:", cfg.Database.SQLite.Path)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "not-a-number")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BASE_URL=https://tiny.example\nDB_TYPE=mysql\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("DB_TYPE", "postgres")
	t.Cleanup(func() { _ = os.Unsetenv("BASE_URL") })

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://tiny.example", cfg.App.BaseURL)
	assert.Equal(t, "postgres", cfg.Database.Type, "process env wins over .env")
}

func TestLogConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, config.LogConfig{Level: tt.in}.SlogLevel())
		})
	}
}
