package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/dhima/looking-glass/pkg/config"
	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// DefaultSQLitePath is used when DB_DRIVER=sqlite and DATABASE_URL is empty.
const DefaultSQLitePath = "looking-glass.db"

// DSN builds the driver-specific connection string for cfg.
func DSN(dialect Dialect, cfg config.App) (string, error) {
	switch dialect.Name {
	case MySQL.Name:
		return mysqlDSN(cfg)
	case Postgres.Name:
		if cfg.DatabaseURL == "" {
			return "", errors.New("DATABASE_URL is required for the postgres driver")
		}
		return cfg.DatabaseURL, nil
	case SQLite.Name:
		if cfg.DatabaseURL == "" {
			return DefaultSQLitePath, nil
		}
		return cfg.DatabaseURL, nil
	default:
		return "", fmt.Errorf("unsupported dialect %q", dialect.Name)
	}
}

// mysqlDSN parses DATABASE_URL or composes one from the MYSQL_* settings, then
// forces the options the repository depends on: DATE/DATETIME scanned as
// time.Time in UTC, and UPDATE reporting matched rather than changed rows.
func mysqlDSN(cfg config.App) (string, error) {
	var mc *mysql.Config
	if cfg.DatabaseURL != "" {
		parsed, err := mysql.ParseDSN(cfg.DatabaseURL)
		if err != nil {
			return "", fmt.Errorf("parse DATABASE_URL: %w", err)
		}
		mc = parsed
	} else {
		if cfg.MySQL.User == "" {
			return "", errors.New("DATABASE_URL or MYSQL_USER is required")
		}
		mc = mysql.NewConfig()
		mc.User = cfg.MySQL.User
		mc.Passwd = cfg.MySQL.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.MySQL.Host, cfg.MySQL.Port)
		mc.DBName = cfg.MySQL.Database
	}

	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.ClientFoundRows = true
	return mc.FormatDSN(), nil
}

// Open resolves the dialect, opens the pool and verifies it with a ping.
// The caller owns the returned *sql.DB and must Close it at shutdown.
func Open(ctx context.Context, cfg config.App) (*sql.DB, Dialect, error) {
	dialect, err := DialectFor(cfg.DatabaseDriver)
	if err != nil {
		return nil, Dialect{}, err
	}

	dsn, err := DSN(dialect, cfg)
	if err != nil {
		return nil, Dialect{}, err
	}

	db, err := sql.Open(dialect.Driver, dsn)
	if err != nil {
		return nil, Dialect{}, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxIdleConns(5)
	db.SetMaxOpenConns(dialect.maxOpenConns)
	db.SetConnMaxLifetime(60 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, Dialect{}, fmt.Errorf("connect to database: %w", err)
	}

	return db, dialect, nil
}

// EnsureSchema creates the daily_log table and its index when missing.
func EnsureSchema(ctx context.Context, db *sql.DB, dialect Dialect) error {
	for _, stmt := range dialect.schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
