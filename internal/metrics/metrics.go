// Package metrics exposes simulation counters to Prometheus.
//
// The simulation is single-threaded, so scrapes never read it directly: the
// driving loop copies the numbers into a Recorder between ticks and the
// collectors read the copy under a lock. A Recorder follows one simulation;
// its counters keep growing across that simulation's resets.
package metrics

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"antfarm/internal/sims/ants"
)

const namespace = "antfarm"

// Recorder holds the latest observed simulation numbers.
type Recorder struct {
	mu     sync.Mutex
	run    uuid.UUID
	base   ants.Stats // totals of earlier runs
	stats  ants.Stats
	states map[ants.State]int
	paths  int
	food   int

	collectors []prometheus.Collector
	ticks      prometheus.CounterFunc
	published  prometheus.CounterFunc
	adoptions  prometheus.CounterFunc
	invalid    prometheus.CounterFunc
	foodMoves  prometheus.CounterFunc
	knownPaths prometheus.GaugeFunc
	foodCells  prometheus.GaugeFunc
	agents     map[ants.State]prometheus.GaugeFunc
}

// NewRecorder builds the collectors. Nothing is registered yet.
func NewRecorder() *Recorder {
	r := &Recorder{states: map[ants.State]int{}, agents: map[ants.State]prometheus.GaugeFunc{}}

	counter := func(name, help string, read func(ants.Stats) uint64) prometheus.CounterFunc {
		c := prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, func() float64 {
			r.mu.Lock()
			defer r.mu.Unlock()
			return float64(read(r.base) + read(r.stats))
		})
		r.collectors = append(r.collectors, c)
		return c
	}
	gauge := func(name, help string, labels prometheus.Labels, read func() int) prometheus.GaugeFunc {
		g := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		}, func() float64 {
			r.mu.Lock()
			defer r.mu.Unlock()
			return float64(read())
		})
		r.collectors = append(r.collectors, g)
		return g
	}

	r.ticks = counter("ticks_total", "Ticks run.", func(s ants.Stats) uint64 { return s.Ticks })
	r.published = counter("paths_published_total", "Food routes published.", func(s ants.Stats) uint64 { return s.Published })
	r.adoptions = counter("path_adoptions_total", "Times an exploring agent took up a known route.", func(s ants.Stats) uint64 { return s.Adoptions })
	r.invalid = counter("paths_invalidated_total", "Routes removed because their food was gone.", func(s ants.Stats) uint64 { return s.Invalidations })
	r.foodMoves = counter("food_moves_total", "Food cells moved by the simulation.", func(s ants.Stats) uint64 { return s.FoodMoves })
	r.knownPaths = gauge("known_paths", "Routes currently published.", nil, func() int { return r.paths })
	r.foodCells = gauge("food_cells", "Cells currently holding food.", nil, func() int { return r.food })
	for _, st := range []ants.State{ants.FoodHunt, ants.FollowPathFood, ants.FollowPathHome} {
		r.agents[st] = gauge("agents", "Agents by state.", prometheus.Labels{"state": st.String()}, func() int { return r.states[st] })
	}
	return r
}

// Register adds every collector to reg.
func (r *Recorder) Register(reg prometheus.Registerer) error {
	for _, c := range r.collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Observe copies the simulation's numbers. Call it between ticks from the
// goroutine that drives the simulation. A new run id means the simulation
// was reset, so the last numbers seen for the old run move into the base.
func (r *Recorder) Observe(s *ants.Simulation) {
	run := s.RunID()
	stats := s.Stats()
	states := s.StateCounts()
	paths := s.Registry().Len()
	food := len(s.Food())

	r.mu.Lock()
	defer r.mu.Unlock()
	if run != r.run {
		r.base = addStats(r.base, r.stats)
		r.run = run
	}
	r.stats = stats
	r.states = states
	r.paths = paths
	r.food = food
}

func addStats(a, b ants.Stats) ants.Stats {
	return ants.Stats{
		Ticks:         a.Ticks + b.Ticks,
		Published:     a.Published + b.Published,
		Adoptions:     a.Adoptions + b.Adoptions,
		Invalidations: a.Invalidations + b.Invalidations,
		FoodMoves:     a.FoodMoves + b.FoodMoves,
	}
}

// Handler serves the registry in the Prometheus text format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
