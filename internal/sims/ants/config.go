package ants

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig reports a configuration the simulation cannot run with.
	ErrInvalidConfig = errors.New("ants: invalid config")
	// ErrOutOfBounds reports a caller-supplied coordinate outside the grid.
	ErrOutOfBounds = errors.New("ants: coordinate out of bounds")
)

// Config controls the ant simulation.
type Config struct {
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Home   Coordinate `yaml:"home"`
	Agents int        `yaml:"agents"`
	Seed   int64      `yaml:"seed"`

	// TickInterval is the wall-clock throttle a front end applies between
	// ticks. The simulation itself never sleeps.
	TickInterval time.Duration `yaml:"tick_interval"`

	// FoodMoveInterval moves every food cell one step after each N ticks.
	// Zero leaves food where the user put it.
	FoodMoveInterval int `yaml:"food_move_interval"`

	Food []Coordinate `yaml:"food,omitempty"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:        50,
		Height:       50,
		Home:         Coordinate{X: 25, Y: 25},
		Agents:       100,
		Seed:         42,
		TickInterval: 100 * time.Millisecond,
	}
}

// Validate checks the config for values the simulation cannot honour.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if !c.contains(c.Home) {
		return fmt.Errorf("%w: home %v outside %dx%d grid", ErrInvalidConfig, c.Home, c.Width, c.Height)
	}
	if c.Agents < 0 {
		return fmt.Errorf("%w: agent count %d is negative", ErrInvalidConfig, c.Agents)
	}
	if c.TickInterval < 0 {
		return fmt.Errorf("%w: tick interval %v is negative", ErrInvalidConfig, c.TickInterval)
	}
	if c.FoodMoveInterval < 0 {
		return fmt.Errorf("%w: food move interval %d is negative", ErrInvalidConfig, c.FoodMoveInterval)
	}
	for _, f := range c.Food {
		if !c.contains(f) {
			return fmt.Errorf("%w: food %v outside %dx%d grid", ErrInvalidConfig, f, c.Width, c.Height)
		}
	}
	return nil
}

func (c Config) contains(p Coordinate) bool {
	return p.X >= 0 && p.X < c.Width && p.Y >= 0 && p.Y < c.Height
}

// LoadConfig reads a YAML config file on top of DefaultConfig. Unknown keys
// are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML config data on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Invalid values are ignored and keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	c.Home = Coordinate{X: c.Width / 2, Y: c.Height / 2}
	if v, ok := cfg["home_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed < c.Width {
			c.Home.X = parsed
		}
	}
	if v, ok := cfg["home_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed < c.Height {
			c.Home.Y = parsed
		}
	}
	if v, ok := cfg["agents"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Agents = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["tick_interval"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed >= 0 {
			c.TickInterval = parsed
		}
	}
	if v, ok := cfg["food_move_interval"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.FoodMoveInterval = parsed
		}
	}
	return c
}
