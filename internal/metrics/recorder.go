package metrics

//go:generate go tool mockery

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"tinylink/internal/config"
)

// Sink persists flushed batches.
type Sink interface {
	WriteHTTP(ctx context.Context, batch []HTTPMetric) error
	WriteInfra(ctx context.Context, batch []InfraMetric) error
}

type Recorder struct {
	sink         Sink
	logger       *slog.Logger
	cfg          *config.MetricsConfig
	httpCh       chan HTTPMetric
	infraCh      chan InfraMetric
	dropped      atomic.Int64
	dropWarn     rate.Sometimes
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewRecorder(sink Sink, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	return &Recorder{
		sink:       sink,
		logger:     logger,
		cfg:        cfg,
		httpCh:     make(chan HTTPMetric, cfg.BufferSize),
		infraCh:    make(chan InfraMetric, cfg.BufferSize),
		dropWarn:   rate.Sometimes{Interval: 10 * time.Second},
		shutdownCh: make(chan struct{}),
	}
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	if !r.cfg.Enabled {
		return
	}
	select {
	case r.httpCh <- m:
	default:
		r.drop("http")
	}
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	if !r.cfg.Enabled {
		return
	}
	select {
	case r.infraCh <- m:
	default:
		r.drop("infra")
	}
}

// Dropped returns how many metrics were discarded because a buffer was full.
func (r *Recorder) Dropped() int64 {
	return r.dropped.Load()
}

func (r *Recorder) drop(kind string) {
	total := r.dropped.Add(1)
	r.dropWarn.Do(func() {
		r.logger.Warn("metrics buffer full, dropping metric",
			slog.String("kind", kind),
			slog.Int64("dropped_total", total))
	})
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.cfg.Enabled {
		r.logger.Info("metrics recording disabled")
		return
	}

	flushInterval := time.Duration(r.cfg.FlushInterval) * time.Millisecond

	r.wg.Add(2)
	go flushLoop(ctx, r, r.httpCh, flushInterval, r.sink.WriteHTTP, "http")
	go flushLoop(ctx, r, r.infraCh, flushInterval, r.sink.WriteInfra, "infra")

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

// Close stops the flush loops after draining what is buffered.
func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

func flushLoop[T any](
	ctx context.Context,
	r *Recorder,
	ch chan T,
	interval time.Duration,
	write func(context.Context, []T) error,
	kind string,
) {
	defer r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]T, 0, r.cfg.FlushThreshold)
	flush := func(ctx context.Context) {
		if len(batch) == 0 {
			return
		}
		if err := write(ctx, batch); err != nil {
			r.logger.Error("failed to write metrics batch",
				slog.String("kind", kind),
				slog.Int("size", len(batch)),
				slog.String("error", err.Error()))
		}
		batch = batch[:0]
	}

	drain := func() {
		for {
			select {
			case m := <-ch:
				batch = append(batch, m)
			default:
				drainCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				flush(drainCtx)
				cancel()
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return
		case <-r.shutdownCh:
			drain()
			return
		case m := <-ch:
			batch = append(batch, m)
			if len(batch) >= r.cfg.FlushThreshold {
				flush(ctx)
			}
		case <-ticker.C:
			flush(ctx)
		}
	}
}
