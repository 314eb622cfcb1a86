// Package config loads the huntgrid settings: embedded defaults, an optional
// YAML file and environment overrides, in that order.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ugaemi/huntgrid/internal/game"
)

//go:embed defaults.yaml
var defaultsYAML []byte

var ErrInvalid = errors.New("config: invalid")

// Config holds all settings.
type Config struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Speeds SpeedsConfig `yaml:"speeds"`

	TickRate int   `yaml:"tick_rate"`
	MaxTicks int   `yaml:"max_ticks"`
	Rounds   int   `yaml:"rounds"`
	Seed     int64 `yaml:"seed"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	TracePath string `yaml:"trace_path"`
}

// ArenaConfig holds the grid and world dimensions.
type ArenaConfig struct {
	Cols      int     `yaml:"cols"`
	Rows      int     `yaml:"rows"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Obstacles int     `yaml:"obstacles"`
}

// SpeedsConfig holds per-agent speeds in world units per tick.
type SpeedsConfig struct {
	Runner      float64 `yaml:"runner"`
	Follower    float64 `yaml:"follower"`
	Interceptor float64 `yaml:"interceptor"`
	RouteCutter float64 `yaml:"route_cutter"`
}

// Load builds the configuration. The file named by CONFIG_PATH, if set, is
// merged over the embedded defaults, then LOG_LEVEL, LOG_FORMAT, SEED, ROUNDS
// and TRACE_PATH override single fields.
func Load() (*Config, error) {
	cfg, err := LoadFile(getEnv("CONFIG_PATH", ""))
	if err != nil {
		return nil, err
	}

	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.TracePath = getEnv("TRACE_PATH", cfg.TracePath)
	cfg.Rounds = getEnvInt("ROUNDS", cfg.Rounds)
	cfg.Seed = int64(getEnvInt("SEED", int(cfg.Seed)))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads the embedded defaults and merges the YAML file at path over
// them. Only fields present in the file change. An empty path yields the
// defaults.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	return cfg, nil
}

// Validate rejects out-of-range values.
func (c *Config) Validate() error {
	a := c.Arena
	switch {
	case a.Cols <= 0 || a.Rows <= 0:
		return fmt.Errorf("%w: arena must have at least one cell, got %dx%d", ErrInvalid, a.Cols, a.Rows)
	case a.Width <= 0 || a.Height <= 0:
		return fmt.Errorf("%w: arena size must be positive, got %gx%g", ErrInvalid, a.Width, a.Height)
	case a.Obstacles < 0:
		return fmt.Errorf("%w: negative obstacle count %d", ErrInvalid, a.Obstacles)
	case a.Obstacles > 0 && a.Cols < 3:
		return fmt.Errorf("%w: obstacles need at least 3 columns, got %d", ErrInvalid, a.Cols)
	case a.Obstacles > (a.Cols-2)*a.Rows:
		return fmt.Errorf("%w: %d obstacles exceed the %d interior cells", ErrInvalid, a.Obstacles, (a.Cols-2)*a.Rows)
	}

	s := c.Speeds
	for _, sp := range []struct {
		name string
		v    float64
	}{
		{"runner", s.Runner},
		{"follower", s.Follower},
		{"interceptor", s.Interceptor},
		{"route_cutter", s.RouteCutter},
	} {
		if sp.v < 0 {
			return fmt.Errorf("%w: %s speed %g is negative", ErrInvalid, sp.name, sp.v)
		}
	}

	switch {
	case c.TickRate < 0:
		return fmt.Errorf("%w: negative tick_rate %d", ErrInvalid, c.TickRate)
	case c.MaxTicks < 0:
		return fmt.Errorf("%w: negative max_ticks %d", ErrInvalid, c.MaxTicks)
	case c.Rounds < 1:
		return fmt.Errorf("%w: rounds must be at least 1, got %d", ErrInvalid, c.Rounds)
	}
	return nil
}

// Settings converts the arena and speeds to round generation settings.
func (c *Config) Settings() game.Settings {
	return game.Settings{
		Cols:      c.Arena.Cols,
		Rows:      c.Arena.Rows,
		Width:     c.Arena.Width,
		Height:    c.Arena.Height,
		Obstacles: c.Arena.Obstacles,
		Speeds: game.Speeds{
			Runner:      c.Speeds.Runner,
			Follower:    c.Speeds.Follower,
			Interceptor: c.Speeds.Interceptor,
			RouteCutter: c.Speeds.RouteCutter,
		},
	}
}

// TickInterval is the wall-clock time between ticks, or zero when ticks run
// back to back.
func (c *Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.TickRate)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
