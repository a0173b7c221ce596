package ants

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"antfarm/pkg/core"
)

// State is the behaviour an agent is currently in.
type State uint8

const (
	// FoodHunt explores by random walk until food or a known route is found.
	FoodHunt State = iota
	// FollowPathFood walks a known route outward to its food end.
	FollowPathFood
	// FollowPathHome walks the remembered route back to the home cell.
	FollowPathHome

	stateCount
)

func (s State) String() string {
	switch s {
	case FoodHunt:
		return "food_hunt"
	case FollowPathFood:
		return "follow_path_food"
	case FollowPathHome:
		return "follow_path_home"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Agent is one ant. Its path is always a private copy; source remembers which
// published path it was taken from so invalidation can find every holder.
type Agent struct {
	coord  Coordinate
	state  State
	path   []Coordinate
	cursor int
	source PathID
}

func newAgent(home Coordinate) Agent {
	return Agent{coord: home, state: FoodHunt, cursor: -1}
}

// Coordinate reports where the agent stands.
func (a *Agent) Coordinate() Coordinate { return a.coord }

// State reports the agent's current behaviour.
func (a *Agent) State() State { return a.state }

// Cursor reports the agent's index into its path, or -1 when the path is empty.
func (a *Agent) Cursor() int { return a.cursor }

// Source reports the published path the agent is following, or 0.
func (a *Agent) Source() PathID { return a.source }

// Path returns a copy of the agent's working path.
func (a *Agent) Path() []Coordinate { return append([]Coordinate(nil), a.path...) }

// stepEnv carries the shared state one tick hands to every agent.
type stepEnv struct {
	grid   *Grid
	paths  *PathRegistry
	rng    *core.RNG
	agents []Agent
	stats  *Stats
	log    logrus.FieldLogger
}

func (a *Agent) step(env *stepEnv) {
	switch a.state {
	case FoodHunt:
		a.hunt(env)
	case FollowPathFood:
		a.followToFood(env)
	case FollowPathHome:
		a.followToHome(env)
	default:
		panic(fmt.Sprintf("ants: agent in unknown state %v", a.state))
	}
}

func (a *Agent) hunt(env *stepEnv) {
	a.anchor()

	if env.grid.FoodAdjacent(a.coord) {
		// The route ends beside the food, never on it.
		a.source = env.paths.Publish(a.path)
		a.state = FollowPathHome
		env.stats.Published++
		env.log.WithFields(logrus.Fields{"path": a.source, "len": len(a.path), "at": a.coord}).Debug("path published")
		return
	}

	if matches := env.paths.AdjacentPaths(a.coord); len(matches) > 0 {
		m := matches[env.rng.IntN(len(matches))]
		cells, ok := env.paths.Cells(m.ID)
		if !ok {
			return
		}
		a.path = cells
		a.cursor = m.Index
		a.coord = cells[m.Index]
		a.source = m.ID
		a.state = FollowPathFood
		env.stats.Adoptions++
		env.log.WithFields(logrus.Fields{"path": m.ID, "index": m.Index}).Debug("path adopted")
		return
	}

	a.wander(env)
}

// anchor seeds an empty path with the agent's own cell so every path starts
// at the cell the agent set out from.
func (a *Agent) anchor() {
	if len(a.path) == 0 {
		a.path = append(a.path[:0], a.coord)
		a.cursor = 0
	}
}

func (a *Agent) wander(env *stepEnv) {
	dirs := Directions
	env.rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
	for _, d := range dirs {
		next := a.coord.Add(d)
		if !env.grid.InBounds(next) {
			continue
		}
		a.moveTo(next)
		return
	}
}

// moveTo takes one exploring step. Stepping back onto a cell already on the
// path closes a loop, so the path is cut back to that cell.
func (a *Agent) moveTo(next Coordinate) {
	a.coord = next
	if i := indexOf(a.path, next); i >= 0 {
		a.path = a.path[:i+1]
		a.cursor = i
		return
	}
	a.path = append(a.path, next)
	a.cursor++
}

func (a *Agent) followToFood(env *stepEnv) {
	if a.cursor < len(a.path)-1 {
		a.cursor++
		a.coord = a.path[a.cursor]
		return
	}
	if env.grid.FoodAdjacent(a.coord) {
		a.state = FollowPathHome
		return
	}
	invalidate(env, a)
}

func (a *Agent) followToHome(env *stepEnv) {
	if a.cursor <= 0 {
		a.state = FollowPathFood
		return
	}
	a.cursor--
	a.coord = a.path[a.cursor]
}

// abandon drops the route the agent was following and resumes exploring from
// where it stands.
func (a *Agent) abandon() {
	if a.cursor >= 0 && a.cursor < len(a.path) {
		a.path = a.path[:a.cursor+1]
	}
	a.source = 0
	a.state = FoodHunt
}

// invalidate removes the stale route a found empty and sends every agent
// following the same published path back to hunting, including agents that
// come later in this tick.
func invalidate(env *stepEnv, a *Agent) {
	id := a.source
	if id != 0 {
		if env.paths.Remove(id) {
			env.stats.Invalidations++
		}
		reset := 0
		for i := range env.agents {
			if env.agents[i].source == id {
				env.agents[i].abandon()
				reset++
			}
		}
		env.log.WithFields(logrus.Fields{"path": id, "agents": reset, "at": a.coord}).Debug("path invalidated")
	}
	a.abandon()
}

func indexOf(path []Coordinate, c Coordinate) int {
	for i, p := range path {
		if p == c {
			return i
		}
	}
	return -1
}
