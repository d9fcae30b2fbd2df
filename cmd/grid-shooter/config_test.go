package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"GRID_SHOOTER_DEBUG", "GRID_SHOOTER_LOG_DIR", "GRID_SHOOTER_MUTE"} {
		// Setenv restores the original value after the test
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.Mute)
	assert.Equal(t, "logs", cfg.LogDir)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("GRID_SHOOTER_DEBUG", "true")
	t.Setenv("GRID_SHOOTER_LOG_DIR", "/tmp/shooter")
	t.Setenv("GRID_SHOOTER_MUTE", "1")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config{Debug: true, LogDir: "/tmp/shooter", Mute: true}, cfg)
}

func TestLoadConfigRejectsBadBool(t *testing.T) {
	t.Setenv("GRID_SHOOTER_DEBUG", "maybe")

	_, err := loadConfig()
	assert.Error(t, err)
}
