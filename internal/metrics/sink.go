package metrics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const metricsSchema = `
CREATE TABLE IF NOT EXISTS http_metrics (
	time TIMESTAMPTZ NOT NULL,
	method TEXT NOT NULL,
	path TEXT NOT NULL,
	status_code INTEGER NOT NULL,
	duration_ms DOUBLE PRECISION NOT NULL,
	client_ip TEXT,
	error TEXT
);
CREATE TABLE IF NOT EXISTS infra_metrics (
	time TIMESTAMPTZ NOT NULL,
	backend TEXT NOT NULL,
	pool_acquired INTEGER NOT NULL,
	pool_idle INTEGER NOT NULL,
	pool_total INTEGER NOT NULL,
	pool_max INTEGER NOT NULL,
	goroutines INTEGER NOT NULL,
	heap_alloc_mb DOUBLE PRECISION NOT NULL
)`

// PgxSink copies batches into PostgreSQL tables next to the links table.
type PgxSink struct {
	pool *pgxpool.Pool
}

func NewPgxSink(pool *pgxpool.Pool) *PgxSink {
	return &PgxSink{pool: pool}
}

func (s *PgxSink) EnsureTables(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, metricsSchema); err != nil {
		return fmt.Errorf("failed to create metrics tables: %w", err)
	}
	return nil
}

func (s *PgxSink) WriteHTTP(ctx context.Context, batch []HTTPMetric) error {
	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = []any{m.Time, m.Method, m.Path, m.StatusCode, m.DurationMs, m.ClientIP, m.Error}
	}

	_, err := s.pool.CopyFrom(ctx,
		pgx.Identifier{"http_metrics"},
		[]string{"time", "method", "path", "status_code", "duration_ms", "client_ip", "error"},
		pgx.CopyFromRows(rows),
	)
	return err
}

func (s *PgxSink) WriteInfra(ctx context.Context, batch []InfraMetric) error {
	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = []any{
			m.Time, m.Backend, m.PoolAcquired, m.PoolIdle, m.PoolTotal, m.PoolMax,
			m.Goroutines, m.HeapAllocMB,
		}
	}

	_, err := s.pool.CopyFrom(ctx,
		pgx.Identifier{"infra_metrics"},
		[]string{
			"time", "backend", "pool_acquired", "pool_idle", "pool_total", "pool_max",
			"goroutines", "heap_alloc_mb",
		},
		pgx.CopyFromRows(rows),
	)
	return err
}

// LogSink summarizes each batch as one log line. Used when the active
// backend is not PostgreSQL.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) WriteHTTP(_ context.Context, batch []HTTPMetric) error {
	var (
		totalMs, maxMs float64
		serverErrors   int
	)
	for _, m := range batch {
		totalMs += m.DurationMs
		maxMs = max(maxMs, m.DurationMs)
		if m.StatusCode >= 500 {
			serverErrors++
		}
	}

	s.logger.Info("http metrics",
		slog.Int("requests", len(batch)),
		slog.Int("server_errors", serverErrors),
		slog.Float64("avg_ms", totalMs/float64(len(batch))),
		slog.Float64("max_ms", maxMs))
	return nil
}

func (s *LogSink) WriteInfra(_ context.Context, batch []InfraMetric) error {
	last := batch[len(batch)-1]
	s.logger.Info("infra metrics",
		slog.String("backend", last.Backend),
		slog.Int("pool_acquired", last.PoolAcquired),
		slog.Int("pool_idle", last.PoolIdle),
		slog.Int("pool_total", last.PoolTotal),
		slog.Int("pool_max", last.PoolMax),
		slog.Int("goroutines", last.Goroutines),
		slog.Float64("heap_alloc_mb", last.HeapAllocMB))
	return nil
}
