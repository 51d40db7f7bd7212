package store

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tinylink/internal/config"
	"tinylink/internal/domain"
)

const pgUniqueViolation = "23505"

const pgSchema = `
CREATE TABLE IF NOT EXISTS links (
	id BIGSERIAL PRIMARY KEY,
	code VARCHAR(128) UNIQUE NOT NULL,
	url TEXT NOT NULL,
	visits BIGINT NOT NULL DEFAULT 0,
	"createdAt" TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	"lastVisited" TIMESTAMPTZ NULL
)`

const (
	pgInsert    = `INSERT INTO links (code, url, visits, "createdAt") VALUES ($1, $2, 0, $3) RETURNING id`
	pgSelect    = `SELECT id, code, url, visits, "createdAt", "lastVisited" FROM links`
	pgFind      = pgSelect + ` WHERE code = $1`
	pgList      = pgSelect + ` ORDER BY id DESC`
	pgIncrement = `UPDATE links SET visits = visits + 1, "lastVisited" = $1 WHERE code = $2`
	pgDelete    = `DELETE FROM links WHERE code = $1`
)

type pgBackend struct {
	pool *pgxpool.Pool
}

// postgresDSN builds a URL-form connection string. SSL is required when
// PG_SSL is set or the host is a Supabase instance.
func postgresDSN(cfg *config.PostgresConfig) string {
	sslMode := "disable"
	if cfg.SSL || strings.HasSuffix(cfg.Host, "supabase.co") {
		sslMode = "require"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Database,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

func openPostgres(ctx context.Context, cfg *config.DatabaseConfig) (*pgBackend, error) {
	poolCfg, err := pgxpool.ParseConfig(postgresDSN(&cfg.Postgres))
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	}
	if cfg.ConnectTimeout > 0 {
		poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return &pgBackend{pool: pool}, nil
}

func (b *pgBackend) Kind() Kind {
	return KindPostgres
}

func (b *pgBackend) Migrate(ctx context.Context) error {
	if _, err := b.pool.Exec(ctx, pgSchema); err != nil {
		return fmt.Errorf("failed to create links table: %w", err)
	}
	return nil
}

func (b *pgBackend) CreateLink(ctx context.Context, code, url string, now time.Time) (*domain.Link, error) {
	var id int64
	if err := b.pool.QueryRow(ctx, pgInsert, code, url, now).Scan(&id); err != nil {
		return nil, b.classify("create link", err)
	}
	return &domain.Link{
		ID:        id,
		Code:      code,
		URL:       url,
		CreatedAt: now,
	}, nil
}

func (b *pgBackend) FindByCode(ctx context.Context, code string) (*domain.Link, error) {
	rows, err := b.pool.Query(ctx, pgFind, code)
	if err != nil {
		return nil, b.classify("find link", err)
	}

	link, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByPos[domain.Link])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, b.classify("find link", err)
	}
	return normalizeTimes(link), nil
}

func (b *pgBackend) IncrementVisits(ctx context.Context, code string, now time.Time) error {
	if _, err := b.pool.Exec(ctx, pgIncrement, now, code); err != nil {
		return b.classify("increment visits", err)
	}
	return nil
}

func (b *pgBackend) ListLinks(ctx context.Context) ([]domain.Link, error) {
	rows, err := b.pool.Query(ctx, pgList)
	if err != nil {
		return nil, b.classify("list links", err)
	}

	links, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Link])
	if err != nil {
		return nil, b.classify("list links", err)
	}
	if links == nil {
		links = []domain.Link{}
	}
	for i := range links {
		normalizeTimes(&links[i])
	}
	return links, nil
}

func (b *pgBackend) DeleteLink(ctx context.Context, code string) (bool, error) {
	tag, err := b.pool.Exec(ctx, pgDelete, code)
	if err != nil {
		return false, b.classify("delete link", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (b *pgBackend) Ping(ctx context.Context) error {
	if err := b.pool.Ping(ctx); err != nil {
		return unavailable("ping postgres", err)
	}
	return nil
}

func (b *pgBackend) Stats() PoolStats {
	stat := b.pool.Stat()
	return PoolStats{
		Acquired: int(stat.AcquiredConns()),
		Idle:     int(stat.IdleConns()),
		Total:    int(stat.TotalConns()),
		Max:      int(stat.MaxConns()),
	}
}

func (b *pgBackend) Close() error {
	b.pool.Close()
	return nil
}

// classify maps server-side constraint failures to ErrCodeExists. Any other
// error that did not come from the server means the connection is gone.
func (b *pgBackend) classify(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("failed to %s: %w", op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation {
			return ErrCodeExists
		}
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	return unavailable(op, err)
}

func normalizeTimes(link *domain.Link) *domain.Link {
	link.CreatedAt = link.CreatedAt.UTC()
	if link.LastVisited != nil {
		t := link.LastVisited.UTC()
		link.LastVisited = &t
	}
	return link
}
