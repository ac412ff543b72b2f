package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
// An empty value leaves the variable effectively unset for viper.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// TestLoadDefaults verifies that the Load function sets the expected default values
// when no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, map[string]string{
		"DECK_SERVER_PORT":       "",
		"DECK_SERVER_LOG_LEVEL":  "",
		"DECK_DECK_SHUFFLE_SEED": "",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, 5, cfg.Server.ReadHeaderTimeoutSecs)
	assert.Equal(t, int64(0), cfg.Deck.ShuffleSeed, "Default shuffle seed should select a random seed")
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"DECK_SERVER_PORT":                     "9090",
		"DECK_SERVER_LOG_LEVEL":                "debug",
		"DECK_SERVER_SHUTDOWN_TIMEOUT_SECONDS": "30",
		"DECK_DECK_SHUFFLE_SEED":               "42",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	assert.Equal(t, 9090, cfg.Server.Port, "Server port should be loaded from environment variables")
	assert.Equal(t, "debug", cfg.Server.LogLevel, "Log level should be loaded from environment variables")
	assert.Equal(t, 30, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, int64(42), cfg.Deck.ShuffleSeed, "Shuffle seed should be loaded from environment variables")
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "Invalid port number",
			envVars: map[string]string{"DECK_SERVER_PORT": "999999"},
		},
		{
			name:    "Invalid log level",
			envVars: map[string]string{"DECK_SERVER_LOG_LEVEL": "invalid-level"},
		},
		{
			name:    "Negative shuffle seed",
			envVars: map[string]string{"DECK_DECK_SHUFFLE_SEED": "-1"},
		},
		{
			name:    "Zero shutdown timeout",
			envVars: map[string]string{"DECK_SERVER_SHUTDOWN_TIMEOUT_SECONDS": "0"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setupEnv(t, tc.envVars)

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}

// TestLoadFile verifies file values are read and environment variables still win.
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: 7070\n  log_level: warn\ndeck:\n  shuffle_seed: 5\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	setupEnv(t, map[string]string{"DECK_SERVER_LOG_LEVEL": "error"})

	cfg, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port, "Port should come from the config file")
	assert.Equal(t, "error", cfg.Server.LogLevel, "Environment should override the config file")
	assert.Equal(t, int64(5), cfg.Deck.ShuffleSeed)
}

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.Nil(t, cfg)
}
