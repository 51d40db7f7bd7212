package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"

	"tinylink/internal/config"
)

const mysqlDuplicateEntry = 1062

const mysqlSchema = "CREATE TABLE IF NOT EXISTS links (" +
	"id BIGINT AUTO_INCREMENT PRIMARY KEY, " +
	"code VARCHAR(128) NOT NULL UNIQUE, " +
	"url TEXT NOT NULL, " +
	"visits BIGINT NOT NULL DEFAULT 0, " +
	"`createdAt` DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6), " +
	"`lastVisited` DATETIME(6) NULL" +
	") ENGINE=InnoDB"

var mysqlDialect = dialect{
	kind:   KindMySQL,
	schema: mysqlSchema,
	quote:  func(ident string) string { return "`" + ident + "`" },
	isUniqueViolation: func(err error) bool {
		var myErr *mysql.MySQLError
		return errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry
	},
	isConnLost: func(err error) bool {
		return errors.Is(err, mysql.ErrInvalidConn)
	},
}

func mysqlConfig(cfg *config.DatabaseConfig) *mysql.Config {
	c := mysql.NewConfig()
	c.User = cfg.MySQL.User
	c.Passwd = cfg.MySQL.Password
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(cfg.MySQL.Host, strconv.Itoa(cfg.MySQL.Port))
	c.DBName = cfg.MySQL.Database
	c.ParseTime = true
	c.Loc = time.UTC
	c.Timeout = cfg.ConnectTimeout
	return c
}

func openMySQL(ctx context.Context, cfg *config.DatabaseConfig) (*sqlBackend, error) {
	connector, err := mysql.NewConnector(mysqlConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create mysql connector: %w", err)
	}

	db := sql.OpenDB(connector)
	if cfg.MaxConns > 0 {
		db.SetMaxOpenConns(cfg.MaxConns)
		db.SetMaxIdleConns(cfg.MaxConns)
	}
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping mysql: %w", err)
	}

	return newSQLBackend(db, mysqlDialect), nil
}
