package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"tinylink/internal/config"
	"tinylink/internal/domain"
)

// PoolStats is a point-in-time view of the active backend's connection pool.
type PoolStats struct {
	Acquired int
	Idle     int
	Total    int
	Max      int
}

// backend is implemented once per database engine. Every method is a single
// statement against the links table.
type backend interface {
	Kind() Kind
	Migrate(ctx context.Context) error
	CreateLink(ctx context.Context, code, url string, now time.Time) (*domain.Link, error)
	FindByCode(ctx context.Context, code string) (*domain.Link, error)
	IncrementVisits(ctx context.Context, code string, now time.Time) error
	ListLinks(ctx context.Context) ([]domain.Link, error)
	DeleteLink(ctx context.Context, code string) (bool, error)
	Ping(ctx context.Context) error
	Stats() PoolStats
	Close() error
}

// Store dispatches link operations to the backend chosen by Open. The zero
// value is usable but every operation fails with ErrNotReady.
type Store struct {
	b   backend
	now func() time.Time
}

// Timestamps are truncated to microseconds, the finest precision every
// backend stores, so a created link reads back unchanged.
func newStore(b backend) *Store {
	return &Store{
		b:   b,
		now: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// Open tries DB_TYPE, then DB_FALLBACK, then SQLite, and returns a store bound
// to the first backend that connects and accepts the schema.
func Open(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*Store, error) {
	chain, invalid := probeChain(cfg.Type, cfg.Fallback)
	for _, err := range invalid {
		logger.Warn("ignoring database type", slog.String("error", err.Error()))
	}

	errs := []error{ErrNoBackend}
	for _, kind := range chain {
		b, err := openBackend(ctx, cfg, kind)
		if err != nil {
			connErr := &ConnectError{Kind: kind, Err: err}
			logger.Warn("database backend unavailable, falling back",
				slog.String("backend", kind.String()),
				slog.String("error", err.Error()))
			errs = append(errs, connErr)
			continue
		}

		logger.Info("database backend selected", slog.String("backend", kind.String()))
		return newStore(b), nil
	}

	return nil, errors.Join(errs...)
}

// OpenKind opens exactly one backend without falling back.
func OpenKind(ctx context.Context, cfg *config.DatabaseConfig, kind Kind) (*Store, error) {
	b, err := openBackend(ctx, cfg, kind)
	if err != nil {
		return nil, &ConnectError{Kind: kind, Err: err}
	}
	return newStore(b), nil
}

func openBackend(ctx context.Context, cfg *config.DatabaseConfig, kind Kind) (backend, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	var (
		b   backend
		err error
	)
	switch kind {
	case KindPostgres:
		b, err = openPostgres(ctx, cfg)
	case KindMySQL:
		b, err = openMySQL(ctx, cfg)
	case KindSQLite:
		b, err = openSQLite(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported backend %q", kind)
	}
	if err != nil {
		return nil, err
	}

	if err := b.Migrate(ctx); err != nil {
		_ = b.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return b, nil
}

func (s *Store) active() (backend, error) {
	if s == nil || s.b == nil {
		return nil, ErrNotReady
	}
	return s.b, nil
}

func (s *Store) Kind() Kind {
	if s == nil || s.b == nil {
		return ""
	}
	return s.b.Kind()
}

// CreateLink inserts a link with zero visits. A duplicate code fails with
// ErrCodeExists and leaves the existing row untouched.
func (s *Store) CreateLink(ctx context.Context, code, url string) (*domain.Link, error) {
	b, err := s.active()
	if err != nil {
		return nil, err
	}
	return b.CreateLink(ctx, code, url, s.now())
}

// FindByCode returns ErrNotFound when no link has the code.
func (s *Store) FindByCode(ctx context.Context, code string) (*domain.Link, error) {
	b, err := s.active()
	if err != nil {
		return nil, err
	}
	return b.FindByCode(ctx, code)
}

// IncrementVisits bumps the counter and lastVisited in one statement. An
// unknown code is not an error.
func (s *Store) IncrementVisits(ctx context.Context, code string) error {
	b, err := s.active()
	if err != nil {
		return err
	}
	return b.IncrementVisits(ctx, code, s.now())
}

// ListLinks returns every link, newest first.
func (s *Store) ListLinks(ctx context.Context) ([]domain.Link, error) {
	b, err := s.active()
	if err != nil {
		return nil, err
	}
	return b.ListLinks(ctx)
}

// DeleteLink reports whether a row was removed.
func (s *Store) DeleteLink(ctx context.Context, code string) (bool, error) {
	b, err := s.active()
	if err != nil {
		return false, err
	}
	return b.DeleteLink(ctx, code)
}

func (s *Store) Ping(ctx context.Context) error {
	b, err := s.active()
	if err != nil {
		return err
	}
	return b.Ping(ctx)
}

func (s *Store) Stats() PoolStats {
	b, err := s.active()
	if err != nil {
		return PoolStats{}
	}
	return b.Stats()
}

// Pool exposes the pgx pool when PostgreSQL is active, nil otherwise.
func (s *Store) Pool() *pgxpool.Pool {
	b, err := s.active()
	if err != nil {
		return nil
	}
	if pg, ok := b.(*pgBackend); ok {
		return pg.pool
	}
	return nil
}

func (s *Store) Close() error {
	if s == nil || s.b == nil {
		return nil
	}
	return s.b.Close()
}
