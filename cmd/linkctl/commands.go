package main

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"

	"tinylink/internal/config"
	"tinylink/internal/domain"
	"tinylink/internal/store"
)

var errUsage = errors.New("invalid usage")

type cli struct {
	cfg    *config.Config
	logger *slog.Logger
	stdout io.Writer
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(c.stdout, usage)
		return errUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "migrate":
		return c.migrate(ctx, rest)
	case "check":
		return c.check(ctx, rest)
	case "export":
		return c.export(ctx, rest)
	case "import":
		return c.importLinks(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(c.stdout, usage)
		return nil
	default:
		fmt.Fprint(c.stdout, usage)
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// openOne parses the -type flag and connects to exactly that backend.
func (c *cli) openOne(ctx context.Context, name string, args []string) (*store.Store, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stdout)
	kindFlag := fs.String("type", c.cfg.Database.Type, "backend: postgres, mysql or sqlite")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	kind, err := store.ParseKind(*kindFlag)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}
	return store.OpenKind(ctx, &c.cfg.Database, kind)
}

func (c *cli) migrate(ctx context.Context, args []string) error {
	st, err := c.openOne(ctx, "migrate", args)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	fmt.Fprintf(c.stdout, "links table ready on %s\n", st.Kind())
	return nil
}

func (c *cli) check(ctx context.Context, args []string) error {
	st, err := c.openOne(ctx, "check", args)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	links, err := st.ListLinks(ctx)
	if err != nil {
		return fmt.Errorf("failed to list links: %w", err)
	}

	visited := lo.CountBy(links, func(l domain.Link) bool { return l.Visits > 0 })
	fmt.Fprintf(c.stdout, "backend: %s\nlinks: %d\nvisited: %d\n", st.Kind(), len(links), visited)
	return nil
}

func (c *cli) export(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(c.stdout)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	st, err := store.Open(ctx, &c.cfg.Database, c.logger)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	links, err := st.ListLinks(ctx)
	if err != nil {
		return fmt.Errorf("failed to list links: %w", err)
	}

	enc := json.NewEncoder(c.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(links)
}

func (c *cli) importLinks(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(c.stdout)
	file := fs.String("file", "", "JSON file produced by export")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if *file == "" {
		return fmt.Errorf("%w: -file is required", errUsage)
	}

	links, err := readLinks(*file)
	if err != nil {
		return err
	}

	st, err := store.Open(ctx, &c.cfg.Database, c.logger)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	// Exports list newest first; insert oldest first so new ids keep the order.
	slices.SortStableFunc(links, func(a, b domain.Link) int { return cmp.Compare(a.ID, b.ID) })

	var created, skipped int
	for _, l := range links {
		_, err := st.CreateLink(ctx, l.Code, l.URL)
		switch {
		case errors.Is(err, store.ErrCodeExists):
			skipped++
		case err != nil:
			return fmt.Errorf("failed to import %q: %w", l.Code, err)
		default:
			created++
		}
	}

	c.logger.Info("import finished",
		slog.String("backend", st.Kind().String()),
		slog.Int("created", created),
		slog.Int("skipped", skipped))
	fmt.Fprintf(c.stdout, "created: %d\nskipped: %d\n", created, skipped)
	return nil
}

// readLinks decodes an export file, dropping entries without a code or URL
// and keeping the first entry for each code.
func readLinks(path string) ([]domain.Link, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var links []domain.Link
	if err := json.Unmarshal(data, &links); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	links = lo.Filter(links, func(l domain.Link, _ int) bool {
		return strings.TrimSpace(l.Code) != "" && strings.TrimSpace(l.URL) != ""
	})
	return lo.UniqBy(links, func(l domain.Link) string { return l.Code }), nil
}
