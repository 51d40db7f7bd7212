package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"tinylink/internal/domain"
)

// dialect holds what differs between the database/sql engines.
type dialect struct {
	kind              Kind
	schema            string
	quote             func(ident string) string
	isUniqueViolation func(err error) bool
	isConnLost        func(err error) bool
}

type sqlQueries struct {
	insert    string
	find      string
	list      string
	increment string
	delete    string
}

func (d dialect) queries() sqlQueries {
	createdAt, lastVisited := d.quote("createdAt"), d.quote("lastVisited")
	selectAll := fmt.Sprintf("SELECT id, code, url, visits, %s, %s FROM links", createdAt, lastVisited)

	return sqlQueries{
		insert:    fmt.Sprintf("INSERT INTO links (code, url, visits, %s) VALUES (?, ?, 0, ?)", createdAt),
		find:      selectAll + " WHERE code = ?",
		list:      selectAll + " ORDER BY id DESC",
		increment: fmt.Sprintf("UPDATE links SET visits = visits + 1, %s = ? WHERE code = ?", lastVisited),
		delete:    "DELETE FROM links WHERE code = ?",
	}
}

// sqlBackend serves MySQL and SQLite through database/sql.
type sqlBackend struct {
	db     *sql.DB
	d      dialect
	q      sqlQueries
	closed atomic.Bool
}

func newSQLBackend(db *sql.DB, d dialect) *sqlBackend {
	return &sqlBackend{db: db, d: d, q: d.queries()}
}

func (b *sqlBackend) Kind() Kind {
	return b.d.kind
}

func (b *sqlBackend) Migrate(ctx context.Context) error {
	if _, err := b.db.ExecContext(ctx, b.d.schema); err != nil {
		return fmt.Errorf("failed to create links table: %w", err)
	}
	return nil
}

func (b *sqlBackend) CreateLink(ctx context.Context, code, url string, now time.Time) (*domain.Link, error) {
	res, err := b.db.ExecContext(ctx, b.q.insert, code, url, now)
	if err != nil {
		return nil, b.classify("create link", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted id: %w", err)
	}

	return &domain.Link{
		ID:        id,
		Code:      code,
		URL:       url,
		CreatedAt: now,
	}, nil
}

func (b *sqlBackend) FindByCode(ctx context.Context, code string) (*domain.Link, error) {
	link, err := scanLink(b.db.QueryRowContext(ctx, b.q.find, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, b.classify("find link", err)
	}
	return link, nil
}

func (b *sqlBackend) IncrementVisits(ctx context.Context, code string, now time.Time) error {
	if _, err := b.db.ExecContext(ctx, b.q.increment, now, code); err != nil {
		return b.classify("increment visits", err)
	}
	return nil
}

func (b *sqlBackend) ListLinks(ctx context.Context) ([]domain.Link, error) {
	rows, err := b.db.QueryContext(ctx, b.q.list)
	if err != nil {
		return nil, b.classify("list links", err)
	}
	defer func() { _ = rows.Close() }()

	links := []domain.Link{}
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, b.classify("list links", err)
		}
		links = append(links, *link)
	}
	if err := rows.Err(); err != nil {
		return nil, b.classify("list links", err)
	}
	return links, nil
}

func (b *sqlBackend) DeleteLink(ctx context.Context, code string) (bool, error) {
	res, err := b.db.ExecContext(ctx, b.q.delete, code)
	if err != nil {
		return false, b.classify("delete link", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

func (b *sqlBackend) Ping(ctx context.Context) error {
	if err := b.db.PingContext(ctx); err != nil {
		return unavailable("ping "+b.d.kind.String(), err)
	}
	return nil
}

func (b *sqlBackend) Stats() PoolStats {
	stats := b.db.Stats()
	return PoolStats{
		Acquired: stats.InUse,
		Idle:     stats.Idle,
		Total:    stats.OpenConnections,
		Max:      stats.MaxOpenConnections,
	}
}

func (b *sqlBackend) Close() error {
	b.closed.Store(true)
	return b.db.Close()
}

func (b *sqlBackend) classify(op string, err error) error {
	switch {
	case b.closed.Load():
		return unavailable(op, err)
	case b.d.isUniqueViolation(err):
		return ErrCodeExists
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("failed to %s: %w", op, err)
	case errors.Is(err, driver.ErrBadConn), errors.Is(err, sql.ErrConnDone), isNetError(err), b.d.isConnLost(err):
		return unavailable(op, err)
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}

func isNetError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLink(row rowScanner) (*domain.Link, error) {
	var (
		link        domain.Link
		lastVisited sql.NullTime
	)
	if err := row.Scan(&link.ID, &link.Code, &link.URL, &link.Visits, &link.CreatedAt, &lastVisited); err != nil {
		return nil, err
	}

	link.CreatedAt = link.CreatedAt.UTC()
	if lastVisited.Valid {
		t := lastVisited.Time.UTC()
		link.LastVisited = &t
	}
	return &link, nil
}
