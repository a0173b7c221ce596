// Package cli implements the headless antsim command line.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"antfarm/internal/core"
	"antfarm/internal/sims/ants"
)

// NewRootCmd builds the antsim command tree.
func NewRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "antsim",
		Short:         "Headless ant foraging simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			logrus.SetLevel(level)
			logrus.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error)")
	root.AddCommand(newRunCmd(), newSweepCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// simFlags are shared by every command that builds a simulation.
type simFlags struct {
	configPath string
	food       []string
	overrides  []string
}

func (f *simFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "YAML config file (defaults are used when empty)")
	cmd.Flags().StringArrayVar(&f.food, "food", nil, "food cell as x,y (repeatable)")
	cmd.Flags().StringArrayVar(&f.overrides, "set", nil, "integer parameter override in key=value form (repeatable)")
}

// config loads the config file, if any, and appends the --food cells.
func (f *simFlags) config() (ants.Config, error) {
	cfg := ants.DefaultConfig()
	if f.configPath != "" {
		loaded, err := ants.LoadConfig(f.configPath)
		if err != nil {
			return ants.Config{}, err
		}
		cfg = loaded
	}
	for _, raw := range f.food {
		c, err := parseCoordinate(raw)
		if err != nil {
			return ants.Config{}, err
		}
		cfg.Food = append(cfg.Food, c)
	}
	if err := cfg.Validate(); err != nil {
		return ants.Config{}, err
	}
	return cfg, nil
}

// build creates a simulation for seed with the --set overrides applied.
func (f *simFlags) build(cfg ants.Config, seed int64) (*ants.Simulation, error) {
	cfg.Seed = seed
	s := ants.NewWithConfig(cfg)
	if err := applyOverrides(s, f.overrides); err != nil {
		return nil, err
	}
	if len(f.overrides) > 0 {
		s.Reset(seed)
	}
	return s, nil
}

// applyOverrides sets each key=value pair through the simulation's integer
// parameter setter.
func applyOverrides(setter core.IntParameterSetter, overrides []string) error {
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("override %q: want key=value", kv)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("override %q: %w", kv, err)
		}
		if !setter.SetIntParameter(strings.TrimSpace(key), n) {
			return fmt.Errorf("override %q: unknown key or value out of range", kv)
		}
	}
	return nil
}

func parseCoordinate(raw string) (ants.Coordinate, error) {
	xs, ys, ok := strings.Cut(raw, ",")
	if !ok {
		return ants.Coordinate{}, fmt.Errorf("coordinate %q: want x,y", raw)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return ants.Coordinate{}, fmt.Errorf("coordinate %q: %w", raw, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return ants.Coordinate{}, fmt.Errorf("coordinate %q: %w", raw, err)
	}
	return ants.Coordinate{X: x, Y: y}, nil
}
