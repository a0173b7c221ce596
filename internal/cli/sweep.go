package cli

import (
	"fmt"
	"runtime"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newSweepCmd() *cobra.Command {
	var (
		flags     simFlags
		seeds     int
		startSeed int64
		ticks     int
		workers   int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the same setup across many seeds in parallel",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seeds <= 0 {
				return fmt.Errorf("--seeds must be positive, got %d", seeds)
			}
			cfg, err := flags.config()
			if err != nil {
				return err
			}
			if workers <= 0 {
				workers = 1
			}
			logrus.Infof("sweeping %d seeds from %d (%d workers, %d ticks)", seeds, startSeed, workers, ticks)

			results := make([]Summary, seeds)
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(workers)
			for i := 0; i < seeds; i++ {
				g.Go(func() error {
					// Each simulation stays on one goroutine.
					s, err := flags.build(cfg, startSeed+int64(i))
					if err != nil {
						return err
					}
					sum, err := Run(ctx, s, RunOptions{Ticks: ticks})
					if err != nil {
						return err
					}
					results[i] = sum
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			printSweep(cmd, results)
			return nil
		},
	}
	flags.bind(cmd)
	cmd.Flags().IntVar(&seeds, "seeds", 8, "number of seeds to run")
	cmd.Flags().Int64Var(&startSeed, "start-seed", 1, "first seed; later runs use consecutive seeds")
	cmd.Flags().IntVar(&ticks, "ticks", 1000, "ticks to simulate per seed")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of simulations to run at once")
	return cmd
}

func printSweep(cmd *cobra.Command, results []Summary) {
	sort.Slice(results, func(i, j int) bool { return results[i].Seed < results[j].Seed })
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%8s %8s %10s %9s %11s %6s\n", "seed", "ticks", "first_food", "published", "invalidated", "paths")
	found := 0
	var firstTotal uint64
	for _, r := range results {
		fmt.Fprintf(out, "%8d %8d %10d %9d %11d %6d\n", r.Seed, r.Ticks, r.FirstDiscovery, r.Published, r.Invalidations, r.KnownPaths)
		if r.FirstDiscovery > 0 {
			found++
			firstTotal += r.FirstDiscovery
		}
	}
	if found > 0 {
		fmt.Fprintf(out, "food found in %d/%d runs, mean first discovery at tick %.1f\n",
			found, len(results), float64(firstTotal)/float64(found))
		return
	}
	fmt.Fprintf(out, "food found in 0/%d runs\n", len(results))
}
