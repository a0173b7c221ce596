//go:build ebiten

package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"antfarm/internal/app"
	"antfarm/internal/core"
	"antfarm/internal/sims/ants"
	"antfarm/internal/ui"
)

func main() {
	cfg := app.NewConfig()
	fs := pflag.NewFlagSet("ants", pflag.ExitOnError)
	cfg.Bind(fs)
	_ = fs.Parse(os.Args[1:])

	var sim core.Sim
	interval := cfg.TickInterval
	if cfg.ConfigPath != "" {
		antsCfg, err := ants.LoadConfig(cfg.ConfigPath)
		if err != nil {
			logrus.Fatalf("loading config: %v", err)
		}
		if !fs.Changed("tick") && antsCfg.TickInterval > 0 {
			interval = antsCfg.TickInterval
		}
		sim = ants.NewWithConfig(antsCfg)
	} else {
		factory, ok := core.Sims()[cfg.Sim]
		if !ok {
			logrus.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.SimNames())
		}
		sim = factory(cfg.Params)
	}
	seed := cfg.ResetSeed(fs)
	sim.Reset(seed)

	game := app.New(sim, cfg.Scale, seed, interval)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(ui.Title(sim.Name(), ui.Status{Interval: interval}))
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logrus.Fatal(err)
	}
}
