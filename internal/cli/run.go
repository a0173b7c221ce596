package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"antfarm/internal/metrics"
	"antfarm/internal/sims/ants"
)

// RunOptions controls a headless run.
type RunOptions struct {
	Ticks    int
	Progress int  // log a progress line every N ticks; 0 disables
	Realtime bool // wait the configured tick interval between ticks

	Recorder *metrics.Recorder
}

// Summary describes the state of a simulation after a run.
type Summary struct {
	Seed           int64
	Ticks          uint64
	FirstDiscovery uint64
	Published      uint64
	Invalidations  uint64
	KnownPaths     int
	Hunting        int
	Following      int
	Returning      int
}

func summarize(s *ants.Simulation) Summary {
	stats := s.Stats()
	states := s.StateCounts()
	return Summary{
		Seed:           s.Seed(),
		Ticks:          stats.Ticks,
		FirstDiscovery: stats.FirstDiscovery,
		Published:      stats.Published,
		Invalidations:  stats.Invalidations,
		KnownPaths:     s.Registry().Len(),
		Hunting:        states[ants.FoodHunt],
		Following:      states[ants.FollowPathFood],
		Returning:      states[ants.FollowPathHome],
	}
}

// Run advances s for opts.Ticks ticks or until ctx is done. A cancelled run
// returns the summary so far together with the context error.
func Run(ctx context.Context, s *ants.Simulation, opts RunOptions) (Summary, error) {
	log := logrus.WithFields(logrus.Fields{"run": s.RunID().String(), "seed": s.Seed()})

	var throttle <-chan time.Time
	if opts.Realtime && s.Config().TickInterval > 0 {
		ticker := time.NewTicker(s.Config().TickInterval)
		defer ticker.Stop()
		throttle = ticker.C
	}

	for i := 0; i < opts.Ticks; i++ {
		if err := ctx.Err(); err != nil {
			return summarize(s), err
		}
		if throttle != nil {
			select {
			case <-ctx.Done():
				return summarize(s), ctx.Err()
			case <-throttle:
			}
		}
		s.AdvanceTick()
		if opts.Recorder != nil {
			opts.Recorder.Observe(s)
		}
		if opts.Progress > 0 && (i+1)%opts.Progress == 0 {
			sum := summarize(s)
			log.WithFields(logrus.Fields{
				"tick":      sum.Ticks,
				"paths":     sum.KnownPaths,
				"hunting":   sum.Hunting,
				"following": sum.Following,
				"returning": sum.Returning,
			}).Info("progress")
		}
	}
	return summarize(s), nil
}

func newRunCmd() *cobra.Command {
	var (
		flags       simFlags
		seed        int64
		opts        RunOptions
		metricsAddr string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one simulation for a number of ticks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Seed
			}
			s, err := flags.build(cfg, seed)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if metricsAddr != "" {
				reg := prometheus.NewRegistry()
				opts.Recorder = metrics.NewRecorder()
				if err := opts.Recorder.Register(reg); err != nil {
					return err
				}
				srv := &http.Server{Addr: metricsAddr, Handler: metrics.Handler(reg)}
				go func() {
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						logrus.Errorf("metrics server: %v", err)
					}
				}()
				defer srv.Close()
				logrus.Infof("serving metrics on %s", metricsAddr)
			}

			start := time.Now()
			sum, err := Run(ctx, s, opts)
			printSummary(cmd, sum)
			logrus.WithField("elapsed", time.Since(start).Round(time.Millisecond)).Info("run complete")
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	flags.bind(cmd)
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for the run (defaults to the config seed)")
	cmd.Flags().IntVar(&opts.Ticks, "ticks", 1000, "number of ticks to simulate")
	cmd.Flags().IntVar(&opts.Progress, "progress", 100, "log progress every N ticks (0 disables)")
	cmd.Flags().BoolVar(&opts.Realtime, "realtime", false, "wait the configured tick interval between ticks")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")
	return cmd
}

func printSummary(cmd *cobra.Command, sum Summary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed=%d ticks=%d first_discovery=%d published=%d invalidated=%d known_paths=%d\n",
		sum.Seed, sum.Ticks, sum.FirstDiscovery, sum.Published, sum.Invalidations, sum.KnownPaths)
	fmt.Fprintf(out, "agents: hunting=%d to_food=%d to_home=%d\n", sum.Hunting, sum.Following, sum.Returning)
}
