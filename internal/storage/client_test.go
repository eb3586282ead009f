package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dhima/looking-glass/pkg/config"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN_WhenMySQLSettingsProvided_ThenComposesDSNWithRequiredOptions(t *testing.T) {
	// Arrange
	cfg := config.App{MySQL: config.MySQL{
		Host:     "db.internal",
		Port:     "3307",
		User:     "glass",
		Password: "secret",
		Database: "daily_log",
	}}

	// Act
	dsn, err := DSN(MySQL, cfg)

	// Assert
	require.NoError(t, err)
	parsed, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "glass", parsed.User)
	assert.Equal(t, "secret", parsed.Passwd)
	assert.Equal(t, "db.internal:3307", parsed.Addr)
	assert.Equal(t, "daily_log", parsed.DBName)
	assert.True(t, parsed.ParseTime)
	assert.True(t, parsed.ClientFoundRows)
	assert.Equal(t, "UTC", parsed.Loc.String())
}

func TestDSN_WhenMySQLURLProvided_ThenForcesRequiredOptions(t *testing.T) {
	cfg := config.App{DatabaseURL: "user:pw@tcp(localhost:3306)/logs"}

	dsn, err := DSN(MySQL, cfg)

	require.NoError(t, err)
	parsed, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "logs", parsed.DBName)
	assert.True(t, parsed.ParseTime)
	assert.True(t, parsed.ClientFoundRows)
}

func TestDSN_WhenMySQLHasNoCredentials_ThenReturnsError(t *testing.T) {
	_, err := DSN(MySQL, config.App{MySQL: config.MySQL{Host: "localhost", Port: "3306"}})

	assert.Error(t, err)
}

func TestDSN_WhenPostgresWithoutURL_ThenReturnsError(t *testing.T) {
	_, err := DSN(Postgres, config.App{})

	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestDSN_WhenSQLiteWithoutURL_ThenUsesDefaultPath(t *testing.T) {
	dsn, err := DSN(SQLite, config.App{})

	require.NoError(t, err)
	assert.Equal(t, DefaultSQLitePath, dsn)
}

func TestOpen_WhenUnsupportedDriver_ThenReturnsError(t *testing.T) {
	_, _, err := Open(context.Background(), config.App{DatabaseDriver: "mssql"})

	assert.Error(t, err)
}

func TestEnsureSchema_WhenRunTwice_ThenIsIdempotent(t *testing.T) {
	cfg := config.App{DatabaseDriver: "sqlite", DatabaseURL: filepath.Join(t.TempDir(), "schema.db")}
	db, dialect, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, EnsureSchema(context.Background(), db, dialect))
	assert.NoError(t, EnsureSchema(context.Background(), db, dialect))
}
