package ants

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"antfarm/internal/core"
	rng "antfarm/pkg/core"
)

// Simulation owns the grid, the path registry and the colony. One tick steps
// every agent once, in slice order, on the calling goroutine.
type Simulation struct {
	cfg Config

	grid   *Grid
	paths  *PathRegistry
	agents []Agent
	home   Coordinate

	rng   *rng.RNG
	seed  int64
	stats Stats
	runID uuid.UUID
	log   *logrus.Entry

	display []uint8
	dirty   bool
}

// New returns a simulation with the provided dimensions using defaults and a
// home cell in the middle of the grid.
func New(w, h int) *Simulation {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Home = Coordinate{X: w / 2, Y: h / 2}
	return NewWithConfig(cfg)
}

// NewWithConfig returns a simulation configured from the provided options.
// Food listed in the config is placed once; invalid configs fall back to the
// defaults with a warning.
func NewWithConfig(cfg Config) *Simulation {
	if err := cfg.Validate(); err != nil {
		logrus.Warnf("ants: %v; using defaults", err)
		cfg = DefaultConfig()
	}
	s := &Simulation{cfg: cfg}
	s.allocate()
	for _, f := range cfg.Food {
		s.grid.setFood(f, true)
	}
	s.Reset(0)
	return s
}

func (s *Simulation) allocate() {
	s.grid = NewGrid(s.cfg.Width, s.cfg.Height)
	s.paths = NewPathRegistry()
	s.display = make([]uint8, s.cfg.Width*s.cfg.Height)
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "ants" }

// Size reports the grid dimensions.
func (s *Simulation) Size() core.Size { return s.grid.Size() }

// Config returns the active configuration.
func (s *Simulation) Config() Config { return s.cfg }

// Home returns the colony's home cell.
func (s *Simulation) Home() Coordinate { return s.home }

// Grid exposes the board for read-only queries.
func (s *Simulation) Grid() *Grid { return s.grid }

// Registry exposes the published paths for read-only queries.
func (s *Simulation) Registry() *PathRegistry { return s.paths }

// Seed reports the seed the current run was started with.
func (s *Simulation) Seed() int64 { return s.seed }

// RunID identifies the current run; it changes on every Reset.
func (s *Simulation) RunID() uuid.UUID { return s.runID }

// Stats reports counters accumulated since the last reset.
func (s *Simulation) Stats() Stats { return s.stats }

// Tick reports how many ticks have run since the last reset.
func (s *Simulation) Tick() uint64 { return s.stats.Ticks }

// Configure replaces the grid geometry, home cell and colony size, then
// resets the run. Food that still fits on the new grid is kept.
func (s *Simulation) Configure(width, height int, home Coordinate, agentCount int) error {
	next := s.cfg
	next.Width = width
	next.Height = height
	next.Home = home
	next.Agents = agentCount
	next.Food = nil
	if err := next.Validate(); err != nil {
		return err
	}
	food := s.grid.FoodCoordinates()
	s.cfg = next
	s.allocate()
	for _, f := range food {
		if s.grid.InBounds(f) {
			s.grid.setFood(f, true)
		}
	}
	s.Reset(s.seed)
	return nil
}

// Reset discards every agent and published path and places a fresh colony on
// the home cell. Food is left in place; use ClearFood to remove it. A zero
// seed reuses the configured seed.
func (s *Simulation) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	s.seed = effective
	s.rng = rng.NewRNG(effective)
	s.paths.Clear()
	s.home = s.cfg.Home
	s.agents = make([]Agent, s.cfg.Agents)
	for i := range s.agents {
		s.agents[i] = newAgent(s.home)
	}
	s.stats = Stats{}
	s.runID = uuid.New()
	s.log = logrus.WithFields(logrus.Fields{"sim": s.Name(), "run": s.runID.String()})
	s.log.WithFields(logrus.Fields{
		"seed":   effective,
		"agents": len(s.agents),
		"grid":   fmt.Sprintf("%dx%d", s.cfg.Width, s.cfg.Height),
		"home":   s.home,
	}).Info("simulation reset")
	s.dirty = true
}

// Step advances the simulation by one tick.
func (s *Simulation) Step() { s.AdvanceTick() }

// AdvanceTick runs exactly one tick: every agent steps once in order, then
// food moves if the tick lands on the move interval. Changes an agent makes
// are visible to the agents after it in the same tick.
func (s *Simulation) AdvanceTick() {
	s.stats.Ticks++
	published := s.stats.Published
	env := &stepEnv{
		grid:   s.grid,
		paths:  s.paths,
		rng:    s.rng,
		agents: s.agents,
		stats:  &s.stats,
		log:    s.log,
	}
	for i := range s.agents {
		s.agents[i].step(env)
	}
	if published == 0 && s.stats.Published > 0 {
		s.stats.FirstDiscovery = s.stats.Ticks
	}
	if n := s.cfg.FoodMoveInterval; n > 0 && s.stats.Ticks%uint64(n) == 0 {
		s.moveFood()
	}
	if debugAssertions {
		if err := s.CheckInvariants(); err != nil {
			panic(err)
		}
	}
	s.dirty = true
}

// ToggleFood adds or removes food at c. It must be called between ticks.
func (s *Simulation) ToggleFood(c Coordinate) error {
	if !s.grid.InBounds(c) {
		return fmt.Errorf("toggle food at %v: %w", c, ErrOutOfBounds)
	}
	present := s.grid.ToggleFood(c)
	s.log.WithFields(logrus.Fields{"at": c, "present": present}).Debug("food toggled")
	s.dirty = true
	return nil
}

// ToggleCell is ToggleFood in screen-grid terms for the GUI.
func (s *Simulation) ToggleCell(x, y int) error { return s.ToggleFood(Coordinate{X: x, Y: y}) }

// ClearFood removes all food from the grid.
func (s *Simulation) ClearFood() {
	s.grid.ClearFood()
	s.dirty = true
}

// AgentView is a read-only copy of one agent.
type AgentView struct {
	Coordinate Coordinate
	State      State
}

// Agents returns a copy of every agent's position and state in step order.
func (s *Simulation) Agents() []AgentView {
	out := make([]AgentView, len(s.agents))
	for i := range s.agents {
		out[i] = AgentView{Coordinate: s.agents[i].coord, State: s.agents[i].state}
	}
	return out
}

// AgentCoordinates returns a copy of every agent's position in step order.
func (s *Simulation) AgentCoordinates() []Coordinate {
	out := make([]Coordinate, len(s.agents))
	for i := range s.agents {
		out[i] = s.agents[i].coord
	}
	return out
}

// Food returns the food cells in row-major order.
func (s *Simulation) Food() []Coordinate { return s.grid.FoodCoordinates() }

// Paths returns deep copies of the published paths in publication order.
func (s *Simulation) Paths() [][]Coordinate { return s.paths.Snapshot() }

// moveFood shifts every food cell one random step onto a free in-bounds cell.
func (s *Simulation) moveFood() {
	for _, f := range s.grid.FoodCoordinates() {
		dirs := Directions
		s.rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
		for _, d := range dirs {
			next := f.Add(d)
			if !s.grid.InBounds(next) || s.grid.HasFood(next) {
				continue
			}
			s.grid.setFood(f, false)
			s.grid.setFood(next, true)
			s.stats.FoodMoves++
			break
		}
	}
}

func init() {
	core.Register("ants", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
