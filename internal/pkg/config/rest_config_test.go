//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
port: "9090"
seed_on_start: false
database:
  type: sqlite
  dsn: ":memory:"
logger:
  log_level: debug
  log_type: console
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.SeedOnStart)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, ":memory:", cfg.Database.DSN)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
}

func TestInitializeRestConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := InitializeRestConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.SeedOnStart)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
}

func TestInitializeRestConfig_EnvOverride(t *testing.T) {
	t.Setenv("CRUD_PORT", "7070")
	t.Setenv("CRUD_DATABASE_DSN", "override.db")

	cfg, err := InitializeRestConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "override.db", cfg.Database.DSN)
}

func TestInitializeRestConfig_Invalid(t *testing.T) {
	path := writeConfigFile(t, `
port: "not-a-port"
database:
  type: oracle
  dsn: "x"
`)

	_, err := InitializeRestConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
