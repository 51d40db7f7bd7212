package store_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinylink/internal/config"
	"tinylink/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sqliteConfig(path string) *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Type:           "sqlite",
		MaxConns:       10,
		ConnectTimeout: 2 * time.Second,
		SQLite:         config.SQLiteConfig{Path: path},
	}
}

func newSQLiteStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), sqliteConfig(":memory:"), discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_DefaultsToSQLite(t *testing.T) {
	s := newSQLiteStore(t)

	assert.Equal(t, store.KindSQLite, s.Kind())
	assert.Nil(t, s.Pool())
	require.NoError(t, s.Ping(context.Background()))
}

func TestCreateLink_ThenFindByCode(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	created, err := s.CreateLink(ctx, "abc123", "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "abc123", created.Code)
	assert.Equal(t, "https://example.com", created.URL)
	assert.Zero(t, created.Visits)
	assert.Nil(t, created.LastVisited)

	found, err := s.FindByCode(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "https://example.com", found.URL)
	assert.Zero(t, found.Visits)
	assert.Nil(t, found.LastVisited)
	assert.True(t, created.CreatedAt.Equal(found.CreatedAt), "created %s, found %s", created.CreatedAt, found.CreatedAt)
	assert.Zero(t, created.CreatedAt.Nanosecond()%int(time.Microsecond))
}

func TestCreateLink_DuplicateCode(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	_, err := s.CreateLink(ctx, "dup", "https://first.example.com")
	require.NoError(t, err)

	_, err = s.CreateLink(ctx, "dup", "https://second.example.com")
	require.ErrorIs(t, err, store.ErrCodeExists)

	found, err := s.FindByCode(ctx, "dup")
	require.NoError(t, err)
	assert.Equal(t, "https://first.example.com", found.URL)
}

func TestFindByCode_NotFound(t *testing.T) {
	s := newSQLiteStore(t)

	_, err := s.FindByCode(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestIncrementVisits(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	created, err := s.CreateLink(ctx, "visit", "https://example.com")
	require.NoError(t, err)

	for range 3 {
		require.NoError(t, s.IncrementVisits(ctx, "visit"))
	}

	found, err := s.FindByCode(ctx, "visit")
	require.NoError(t, err)
	assert.Equal(t, int64(3), found.Visits)
	require.NotNil(t, found.LastVisited)
	assert.False(t, found.LastVisited.Before(created.CreatedAt))
}

func TestIncrementVisits_UnknownCode(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.IncrementVisits(ctx, "ghost"))

	links, err := s.ListLinks(ctx)
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestListLinks_NewestFirst(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	for _, code := range []string{"a", "b", "c"} {
		_, err := s.CreateLink(ctx, code, "https://example.com/"+code)
		require.NoError(t, err)
	}

	links, err := s.ListLinks(ctx)
	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.Equal(t, "c", links[0].Code)
	assert.Equal(t, "b", links[1].Code)
	assert.Equal(t, "a", links[2].Code)
}

func TestListLinks_Empty(t *testing.T) {
	s := newSQLiteStore(t)

	links, err := s.ListLinks(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, links)
	assert.Empty(t, links)
}

func TestDeleteLink(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	_, err := s.CreateLink(ctx, "gone", "https://example.com")
	require.NoError(t, err)

	deleted, err := s.DeleteLink(ctx, "gone")
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = s.FindByCode(ctx, "gone")
	assert.ErrorIs(t, err, store.ErrNotFound)

	deleted, err = s.DeleteLink(ctx, "gone")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteLink_LeavesOthers(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	_, err := s.CreateLink(ctx, "keep", "https://example.com")
	require.NoError(t, err)

	deleted, err := s.DeleteLink(ctx, "other")
	require.NoError(t, err)
	assert.False(t, deleted)

	links, err := s.ListLinks(ctx)
	require.NoError(t, err)
	assert.Len(t, links, 1)
}

func TestOpen_FileSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.sqlite")
	ctx := context.Background()

	s, err := store.Open(ctx, sqliteConfig(path), discardLogger())
	require.NoError(t, err)
	_, err = s.CreateLink(ctx, "persist", "https://example.com")
	require.NoError(t, err)
	require.NoError(t, s.IncrementVisits(ctx, "persist"))
	require.NoError(t, s.Close())

	s, err = store.Open(ctx, sqliteConfig(path), discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	found, err := s.FindByCode(ctx, "persist")
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.Visits)
	assert.NotNil(t, found.LastVisited)
}

func TestOpen_FallsBackWhenRemoteRefuses(t *testing.T) {
	cfg := sqliteConfig(":memory:")
	cfg.Type = "postgres"
	cfg.Fallback = []string{"mysql"}
	cfg.ConnectTimeout = time.Second
	cfg.Postgres = config.PostgresConfig{Host: "127.0.0.1", Port: 1, User: "postgres", Database: "tinylink"}
	cfg.MySQL = config.MySQLConfig{Host: "127.0.0.1", Port: 1, User: "root", Database: "tinylink"}

	s, err := store.Open(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.Equal(t, store.KindSQLite, s.Kind())

	link, err := s.CreateLink(context.Background(), "fallback", "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "fallback", link.Code)
}

func TestOpen_AllBackendsFail(t *testing.T) {
	cfg := sqliteConfig(filepath.Join(t.TempDir(), "missing", "dir", "links.sqlite"))

	_, err := store.Open(context.Background(), cfg, discardLogger())
	require.ErrorIs(t, err, store.ErrNoBackend)

	var connErr *store.ConnectError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, store.KindSQLite, connErr.Kind)
}

func TestOpenKind_NoFallback(t *testing.T) {
	cfg := sqliteConfig(":memory:")
	cfg.ConnectTimeout = time.Second
	cfg.Postgres = config.PostgresConfig{Host: "127.0.0.1", Port: 1, User: "postgres", Database: "tinylink"}

	_, err := store.OpenKind(context.Background(), cfg, store.KindPostgres)

	var connErr *store.ConnectError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, store.KindPostgres, connErr.Kind)
}

func TestZeroStore_NotReady(t *testing.T) {
	var s store.Store
	ctx := context.Background()

	_, err := s.CreateLink(ctx, "x", "https://example.com")
	assert.ErrorIs(t, err, store.ErrNotReady)

	_, err = s.FindByCode(ctx, "x")
	assert.ErrorIs(t, err, store.ErrNotReady)

	assert.ErrorIs(t, s.IncrementVisits(ctx, "x"), store.ErrNotReady)

	_, err = s.ListLinks(ctx)
	assert.ErrorIs(t, err, store.ErrNotReady)

	_, err = s.DeleteLink(ctx, "x")
	assert.ErrorIs(t, err, store.ErrNotReady)

	assert.ErrorIs(t, s.Ping(ctx), store.ErrNotReady)
	assert.NoError(t, s.Close())
	assert.Equal(t, store.PoolStats{}, s.Stats())
}

func TestClosedStore_Unavailable(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	_, err := s.CreateLink(ctx, "abc123", "https://example.com")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.CreateLink(ctx, "def456", "https://example.com")
	assert.ErrorIs(t, err, store.ErrUnavailable)

	_, err = s.FindByCode(ctx, "abc123")
	assert.ErrorIs(t, err, store.ErrUnavailable)
	assert.NotErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, s.IncrementVisits(ctx, "abc123"), store.ErrUnavailable)

	_, err = s.ListLinks(ctx)
	assert.ErrorIs(t, err, store.ErrUnavailable)

	_, err = s.DeleteLink(ctx, "abc123")
	assert.ErrorIs(t, err, store.ErrUnavailable)

	assert.ErrorIs(t, s.Ping(ctx), store.ErrUnavailable)
}

func TestOpen_PathWithURIReservedCharacters(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "links?v=2#main.sqlite")

	s, err := store.Open(context.Background(), sqliteConfig(path), discardLogger())
	require.NoError(t, err)
	_, err = s.CreateLink(context.Background(), "abc123", "https://example.com")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = os.Stat(path)
	require.NoError(t, err, "database file should use the literal path")

	s, err = store.Open(context.Background(), sqliteConfig(path), discardLogger())
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	found, err := s.FindByCode(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", found.URL)
}

func TestStats_SQLite(t *testing.T) {
	s := newSQLiteStore(t)

	stats := s.Stats()
	assert.Equal(t, 1, stats.Max)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		raw     string
		want    store.Kind
		wantErr bool
	}{
		{"postgres", store.KindPostgres, false},
		{"postgresql", store.KindPostgres, false},
		{"PostgreSQL", store.KindPostgres, false},
		{"mysql", store.KindMySQL, false},
		{"sqlite", store.KindSQLite, false},
		{"", store.KindSQLite, false},
		{"oracle", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := store.ParseKind(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
