// Command linkctl prepares and inspects the link store outside the HTTP
// service: schema creation, connectivity checks, and JSON export/import.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"tinylink/internal/config"
)

const usage = `usage: linkctl <command> [flags]

commands:
  migrate [-type kind]    create the links table on one backend
  check   [-type kind]    connect to one backend and count links
  export                  write every link as JSON to stdout
  import  -file path      create links from a JSON export, skipping taken codes
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))

	app := &cli{cfg: cfg, logger: logger, stdout: os.Stdout}
	if err := app.run(ctx, os.Args[1:]); err != nil {
		logger.Error("linkctl failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
