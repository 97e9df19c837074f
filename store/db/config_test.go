package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDSN(t *testing.T) {
	cfg := &SQLiteConfig{FilePath: ":memory:"}
	require.NoError(t, cfg.Init())

	assert.Equal(t, DriverSQLite, cfg.Driver())
	assert.Equal(t, "file::memory:?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=true", cfg.DSN())

	pool := cfg.Pool()
	assert.Equal(t, 1, pool.MaxOpenConns)
	assert.Equal(t, 1, pool.MaxIdleConns)
}

func TestPostgresDSN(t *testing.T) {
	cfg := &PostgresConfig{Password: "secret", Database: "news"}
	require.NoError(t, cfg.Init())

	assert.Equal(t, DriverPostgres, cfg.Driver())
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=news sslmode=disable TimeZone=UTC connect_timeout=10",
		cfg.DSN())
}

func TestMySQLDSN(t *testing.T) {
	cfg := &MySQLConfig{Password: "secret"}
	require.NoError(t, cfg.Init())

	assert.Equal(t, DriverMySQL, cfg.Driver())
	assert.Equal(t,
		"root:secret@tcp(localhost:3306)/newswire?charset=utf8mb4&parseTime=true&loc=Local&timeout=10s",
		cfg.DSN())
}

func TestInitIdempotent(t *testing.T) {
	cfg := &PostgresConfig{Port: 5433}
	require.NoError(t, cfg.Init())
	require.NoError(t, cfg.Init())
	assert.Equal(t, 5433, cfg.Port)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelInfo, ParseLogLevel("info"))
	assert.Equal(t, LogLevelWarn, ParseLogLevel("WARN"))
	assert.Equal(t, LogLevelError, ParseLogLevel("error"))
	assert.Equal(t, LogLevelSilent, ParseLogLevel("whatever"))
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
