// Package config loads runtime tuning from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config controls ambient behaviour of a play session. Game rules are not
// configurable; these only tune input feel, audio and diagnostics.
type Config struct {
	LogLevel         string  `env:"LAST_BELL_LOG_LEVEL"         envDefault:"info"`
	MouseSensitivity float64 `env:"LAST_BELL_MOUSE_SENSITIVITY" envDefault:"0.5"`
	MoveSpeed        float64 `env:"LAST_BELL_MOVE_SPEED"        envDefault:"2"`
	MasterVolume     float64 `env:"LAST_BELL_VOLUME"            envDefault:"1.0"`
	Mute             bool    `env:"LAST_BELL_MUTE"              envDefault:"false"`
	Seed             int64   `env:"LAST_BELL_SEED"              envDefault:"0"`
	ShowFPS          bool    `env:"LAST_BELL_SHOW_FPS"          envDefault:"false"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the session cannot run with.
func (c Config) Validate() error {
	if c.MouseSensitivity <= 0 {
		return fmt.Errorf("mouse sensitivity must be > 0, got %v", c.MouseSensitivity)
	}
	if c.MoveSpeed <= 0 {
		return fmt.Errorf("move speed must be > 0, got %v", c.MoveSpeed)
	}
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("volume must be within [0,1], got %v", c.MasterVolume)
	}
	return nil
}
