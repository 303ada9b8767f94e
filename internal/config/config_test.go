package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/okulops")
	t.Setenv("ENV", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("MIGRATIONS_PATH", "")
	t.Setenv("CONFLICT_SCAN_INTERVAL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "migrations", cfg.MigrationsPath)
	assert.Equal(t, 10*time.Minute, cfg.ConflictScanInterval)
}

func TestLoad_RequiresDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DSN")
}

func TestLoad_ScanInterval(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/okulops")
	t.Setenv("CONFLICT_SCAN_INTERVAL", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.ConflictScanInterval)
}

func TestLoad_BadScanInterval(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/okulops")
	t.Setenv("CONFLICT_SCAN_INTERVAL", "often")

	_, err := Load()
	assert.Error(t, err)
}
