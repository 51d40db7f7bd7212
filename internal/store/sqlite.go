package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"tinylink/internal/config"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS links (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	code TEXT UNIQUE NOT NULL,
	url TEXT NOT NULL,
	visits INTEGER NOT NULL DEFAULT 0,
	"createdAt" DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	"lastVisited" DATETIME NULL
)`

var sqliteDialect = dialect{
	kind:   KindSQLite,
	schema: sqliteSchema,
	quote:  func(ident string) string { return `"` + ident + `"` },
	isUniqueViolation: func(err error) bool {
		var liteErr *sqlite.Error
		if errors.As(err, &liteErr) && liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return true
		}
		// libsql reports constraint failures as plain text.
		return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
	},
	isConnLost: func(err error) bool {
		var liteErr *sqlite.Error
		if !errors.As(err, &liteErr) {
			return false
		}
		switch liteErr.Code() & 0xff {
		case sqlite3.SQLITE_IOERR, sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_NOTADB:
			return true
		}
		return false
	},
}

var sqlitePathEscaper = strings.NewReplacer("%", "%25", "?", "%3F", "#", "%23")

// sqliteSource picks the driver for the configured path. libsql and wss URLs
// go to a remote libSQL server, everything else is a local file whose name is
// escaped so it cannot leak into the URI query.
func sqliteSource(path string) (driverName, dsn string) {
	if strings.HasPrefix(path, "libsql://") || strings.HasPrefix(path, "wss://") {
		return "libsql", path
	}
	return "sqlite", "file:" + sqlitePathEscaper.Replace(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

func openSQLite(ctx context.Context, cfg *config.DatabaseConfig) (*sqlBackend, error) {
	driverName, dsn := sqliteSource(cfg.SQLite.Path)

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	// One connection serializes writers and keeps :memory: databases alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite: %w", err)
	}

	return newSQLBackend(db, sqliteDialect), nil
}
