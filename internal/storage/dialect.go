package storage

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect captures the per-database differences the repository cares about:
// driver name, clock expression, placeholder style and DDL.
type Dialect struct {
	Name string
	// Driver is the database/sql driver name registered by the imported driver package.
	Driver string
	// now is a SQL expression evaluated once per statement on the datastore clock.
	now string
	// touch is the next updated_at value: the datastore clock, or one tick
	// past the stored value when the clock has not advanced.
	touch        string
	dollarParams bool
	maxOpenConns int
	schema       []string
}

var (
	MySQL = Dialect{
		Name:         "mysql",
		Driver:       "mysql",
		now:          "UTC_TIMESTAMP(6)",
		touch:        "GREATEST(UTC_TIMESTAMP(6), updated_at + INTERVAL 1 MICROSECOND)",
		maxOpenConns: 20,
		schema: []string{
			`CREATE TABLE IF NOT EXISTS daily_log (
				id CHAR(36) NOT NULL PRIMARY KEY,
				title VARCHAR(255) NULL,
				entries TEXT NULL,
				log_date DATE NOT NULL,
				tags TEXT NULL,
				mood VARCHAR(64) NULL,
				created_at DATETIME(6) NOT NULL,
				updated_at DATETIME(6) NOT NULL,
				INDEX idx_daily_log_log_date (log_date)
			)`,
		},
	}

	Postgres = Dialect{
		Name:         "postgres",
		Driver:       "postgres",
		now:          "NOW()",
		touch:        "GREATEST(NOW(), updated_at + INTERVAL '1 microsecond')",
		dollarParams: true,
		maxOpenConns: 20,
		schema: []string{
			`CREATE TABLE IF NOT EXISTS daily_log (
				id UUID PRIMARY KEY,
				title VARCHAR(255) NULL,
				entries TEXT NULL,
				log_date DATE NOT NULL,
				tags TEXT NULL,
				mood VARCHAR(64) NULL,
				created_at TIMESTAMPTZ NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_daily_log_log_date ON daily_log (log_date)`,
		},
	}

	// SQLite serializes writers, so the pool is pinned to a single connection.
	SQLite = Dialect{
		Name:         "sqlite",
		Driver:       "sqlite",
		now:          "strftime('%Y-%m-%d %H:%M:%f', 'now')",
		touch:        "strftime('%Y-%m-%d %H:%M:%f', max(julianday('now'), julianday(updated_at, '+0.001 seconds')))",
		maxOpenConns: 1,
		schema: []string{
			`CREATE TABLE IF NOT EXISTS daily_log (
				id TEXT NOT NULL PRIMARY KEY,
				title TEXT NULL,
				entries TEXT NULL,
				log_date DATE NOT NULL,
				tags TEXT NULL,
				mood TEXT NULL,
				created_at DATETIME NOT NULL,
				updated_at DATETIME NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_daily_log_log_date ON daily_log (log_date)`,
		},
	}
)

// DialectFor resolves a DB_DRIVER value.
func DialectFor(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "mysql":
		return MySQL, nil
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", name)
	}
}

// rebind rewrites '?' placeholders into the dialect's native style.
func (d Dialect) rebind(query string) string {
	if !d.dollarParams {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
