package app

import (
	"time"

	"github.com/spf13/pflag"
)

// Config represents the command-line parameters for the GUI.
type Config struct {
	Sim          string
	Scale        int
	Seed         int64
	TickInterval time.Duration
	ConfigPath   string
	Params       map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "ants", Scale: 10, Seed: 42, TickInterval: 100 * time.Millisecond}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "time between ticks")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML config file for the ants simulation")
	fs.StringToStringVar(&c.Params, "param", c.Params, "simulation parameters as key=value (e.g. w=80,agents=200)")
}

// ResetSeed returns the seed to reset the simulation with. Without an
// explicit --seed it returns 0, which keeps the seed the simulation was
// configured with (from -config or -param seed=).
func (c *Config) ResetSeed(fs *pflag.FlagSet) int64 {
	if fs.Changed("seed") {
		return c.Seed
	}
	return 0
}
