package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// defaults is what Load returns with no LAST_BELL_* variables set.
var defaults = Config{
	LogLevel:         "info",
	MouseSensitivity: 0.5,
	MoveSpeed:        2,
	MasterVolume:     1.0,
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, defaults, cfg)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("LAST_BELL_LOG_LEVEL", "debug")
	t.Setenv("LAST_BELL_MOUSE_SENSITIVITY", "1.25")
	t.Setenv("LAST_BELL_MUTE", "true")
	t.Setenv("LAST_BELL_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.InDelta(t, 1.25, cfg.MouseSensitivity, 1e-9)
	assert.True(t, cfg.Mute)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestLoad_RejectsBadVolume(t *testing.T) {
	t.Setenv("LAST_BELL_VOLUME", "1.5")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "volume")
}

func TestLoad_RejectsUnparsable(t *testing.T) {
	t.Setenv("LAST_BELL_MOVE_SPEED", "fast")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestValidate(t *testing.T) {
	cfg := defaults
	require.NoError(t, cfg.Validate())

	cfg.MoveSpeed = 0
	assert.Error(t, cfg.Validate())

	cfg = defaults
	cfg.MouseSensitivity = -1
	assert.Error(t, cfg.Validate())
}
