package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hjson"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 10, cfg.ShutdownTimeoutSec)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadHJSONFile(t *testing.T) {
	// HJSON allows comments and unquoted keys.
	path := filepath.Join(t.TempDir(), "bizlens.hjson")
	content := `{
	  # service listen address
	  addr: ":9090"
	  log_level: debug
	  persist_reports: true
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.PersistReports)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bizlens.hjson")
	require.NoError(t, os.WriteFile(path, []byte(`{addr: ":9090"}`), 0o644))

	t.Setenv("BIZLENS_ADDR", ":7070")
	t.Setenv("BIZLENS_SHUTDOWN_TIMEOUT_SEC", "30")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, 30, cfg.ShutdownTimeoutSec)
}

func TestMalformedFileRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.hjson")
	require.NoError(t, os.WriteFile(path, []byte("{addr: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
