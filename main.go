package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/netutil"

	"tinylink/internal/config"
	"tinylink/internal/handler"
	"tinylink/internal/metrics"
	custommiddleware "tinylink/internal/middleware"
	"tinylink/internal/service"
	"tinylink/internal/shortener"
	"tinylink/internal/store"
	"tinylink/internal/validation"
)

const infraInterval = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	st, err := store.Open(ctx, &cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to open link store: %w", err)
	}
	defer func() { _ = st.Close() }()

	short, err := shortener.New()
	if err != nil {
		return fmt.Errorf("failed to create shortener: %w", err)
	}

	recorder, err := newRecorder(ctx, st, &cfg.Metrics, logger)
	if err != nil {
		return err
	}
	recorder.Start(ctx)
	defer recorder.Close()

	if cfg.Metrics.Enabled {
		go collectInfraMetrics(ctx, recorder, st)
	}

	urlValidator := validation.NewURLValidator(cfg.Validation.MaxURLLength, cfg.Validation.AllowPrivateIPs)
	linkService := service.NewLinkService(st, short, cfg.App.BaseURL)
	h := handler.New(linkService, urlValidator, st, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(custommiddleware.Metrics(recorder))

	h.Register(e)

	if cfg.Pprof.Enabled {
		pprofGroup := e.Group("/debug/pprof", custommiddleware.PprofAuth(cfg.Pprof.Secret))
		custommiddleware.RegisterPprof(pprofGroup)
		logger.Info("pprof endpoints enabled", slog.String("path", "/debug/pprof/*"))
	}

	httpAddr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	httpListener, err := listen(httpAddr, cfg.Server.MaxConnections)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}

	var httpsListener net.Listener
	if cfg.TLS.Enabled {
		httpsListener, err = listenTLS(cfg)
		if err != nil {
			_ = httpListener.Close()
			return err
		}
	}

	servers := []*http.Server{serve(newHTTPServer(e), httpListener, "http", logger)}
	if httpsListener != nil {
		servers = append(servers, serve(newHTTPServer(e), httpsListener, "https", logger))
	}

	logger.Info("link service ready",
		slog.String("backend", st.Kind().String()),
		slog.String("base_url", cfg.App.BaseURL))

	<-ctx.Done()
	logger.Info("shutting down servers")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errs []error
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("server shutdown failed: %w", err))
		}
	}
	return errors.Join(errs...)
}

// newRecorder writes metrics next to the links table when PostgreSQL is the
// active backend and falls back to log summaries otherwise.
func newRecorder(ctx context.Context, st *store.Store, cfg *config.MetricsConfig, logger *slog.Logger) (*metrics.Recorder, error) {
	var sink metrics.Sink = metrics.NewLogSink(logger)

	if pool := st.Pool(); pool != nil && cfg.Enabled {
		pgSink := metrics.NewPgxSink(pool)
		if err := pgSink.EnsureTables(ctx); err != nil {
			return nil, fmt.Errorf("failed to prepare metrics sink: %w", err)
		}
		sink = pgSink
	}

	return metrics.NewRecorder(sink, cfg, logger), nil
}

func listen(addr string, maxConns int) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		ln = netutil.LimitListener(ln, maxConns)
	}
	return ln, nil
}

func listenTLS(cfg *config.Config) (net.Listener, error) {
	cert, err := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.TLS.Port))
	ln, err := listen(addr, cfg.Server.MaxConnections)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTPS listener: %w", err)
	}

	return tls.NewListener(ln, &tls.Config{
		MinVersion:   tls.VersionTLS13,
		Certificates: []tls.Certificate{cert},
	}), nil
}

func newHTTPServer(h http.Handler) *http.Server {
	return &http.Server{
		Handler:        h,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14,
	}
}

func serve(srv *http.Server, ln net.Listener, scheme string, logger *slog.Logger) *http.Server {
	logger.Info("starting server",
		slog.String("scheme", scheme),
		slog.String("addr", ln.Addr().String()))

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.String("scheme", scheme), slog.String("error", err.Error()))
		}
	}()
	return srv
}

func collectInfraMetrics(ctx context.Context, recorder *metrics.Recorder, st *store.Store) {
	ticker := time.NewTicker(infraInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pool := st.Stats()

			var mem runtime.MemStats
			runtime.ReadMemStats(&mem)

			recorder.RecordInfra(metrics.InfraMetric{
				Time:         time.Now(),
				Backend:      st.Kind().String(),
				PoolAcquired: pool.Acquired,
				PoolIdle:     pool.Idle,
				PoolTotal:    pool.Total,
				PoolMax:      pool.Max,
				Goroutines:   runtime.NumGoroutine(),
				HeapAllocMB:  float64(mem.HeapAlloc) / 1024 / 1024,
			})
		}
	}
}
