package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadDefaults verifies that Load falls back to built-in defaults when
// no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	t.Setenv("COURSEDIR_SERVER_PORT", "")
	t.Setenv("COURSEDIR_SERVER_LOG_LEVEL", "")

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Empty(t, cfg.Catalog.Path, "empty path selects the embedded catalog")
}

// TestLoadFromEnv verifies that Load reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	catalogPath := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte("courses: []\n"), 0o600))

	t.Setenv("COURSEDIR_SERVER_PORT", "9090")
	t.Setenv("COURSEDIR_SERVER_LOG_LEVEL", "debug")
	t.Setenv("COURSEDIR_SERVER_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("COURSEDIR_CATALOG_PATH", catalogPath)

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, catalogPath, cfg.Catalog.Path)
}

// TestLoadValidationErrors verifies that invalid settings are rejected.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "Invalid port number",
			envVars: map[string]string{"COURSEDIR_SERVER_PORT": "999999"},
		},
		{
			name:    "Invalid log level",
			envVars: map[string]string{"COURSEDIR_SERVER_LOG_LEVEL": "invalid-level"},
		},
		{
			name:    "Missing catalog file",
			envVars: map[string]string{"COURSEDIR_CATALOG_PATH": "/nonexistent/catalog.yaml"},
		},
		{
			name:    "Missing news file",
			envVars: map[string]string{"COURSEDIR_CATALOG_NEWS_PATH": "/nonexistent/news.xml"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "coursedir.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 7070\n  log_level: warn\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Server.LogLevel)

	t.Setenv("COURSEDIR_SERVER_PORT", "7171")
	cfg, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 7171, cfg.Server.Port, "environment overrides the file")

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestDir(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "coursedir", filepath.Base(Dir()))
}
