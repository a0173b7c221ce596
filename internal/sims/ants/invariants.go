package ants

import "fmt"

// InvariantError describes a broken structural rule. It always indicates a
// bug in the simulation, never bad input.
type InvariantError struct {
	Agent  int // -1 for registry-level problems
	Reason string
}

func (e *InvariantError) Error() string {
	if e.Agent < 0 {
		return "ants: invariant violated: " + e.Reason
	}
	return fmt.Sprintf("ants: invariant violated by agent %d: %s", e.Agent, e.Reason)
}

// CheckInvariants verifies every agent and published path and returns the
// first violation found.
func (s *Simulation) CheckInvariants() error {
	for i := range s.agents {
		a := &s.agents[i]
		if !s.grid.InBounds(a.coord) {
			return &InvariantError{Agent: i, Reason: fmt.Sprintf("position %v out of bounds", a.coord)}
		}
		if len(a.path) == 0 {
			if a.cursor != -1 {
				return &InvariantError{Agent: i, Reason: fmt.Sprintf("empty path with cursor %d", a.cursor)}
			}
			if a.state != FoodHunt {
				return &InvariantError{Agent: i, Reason: fmt.Sprintf("empty path in state %v", a.state)}
			}
			continue
		}
		if a.cursor < 0 || a.cursor >= len(a.path) {
			return &InvariantError{Agent: i, Reason: fmt.Sprintf("cursor %d outside path of length %d", a.cursor, len(a.path))}
		}
		if a.path[a.cursor] != a.coord {
			return &InvariantError{Agent: i, Reason: fmt.Sprintf("position %v differs from path cell %v", a.coord, a.path[a.cursor])}
		}
		if a.path[0] != s.home {
			return &InvariantError{Agent: i, Reason: fmt.Sprintf("path starts at %v, not home", a.path[0])}
		}
		if err := validPath(a.path); err != "" {
			return &InvariantError{Agent: i, Reason: err}
		}
		switch a.state {
		case FoodHunt:
			if a.cursor != len(a.path)-1 {
				return &InvariantError{Agent: i, Reason: "hunting agent is not at the end of its path"}
			}
		case FollowPathFood, FollowPathHome:
			if !s.paths.Contains(a.source) {
				return &InvariantError{Agent: i, Reason: fmt.Sprintf("following removed path %d", a.source)}
			}
		}
	}
	for _, id := range s.paths.order {
		cells := s.paths.paths[id].cells
		if len(cells) == 0 {
			return &InvariantError{Agent: -1, Reason: fmt.Sprintf("published path %d is empty", id)}
		}
		if err := validPath(cells); err != "" {
			return &InvariantError{Agent: -1, Reason: fmt.Sprintf("published path %d: %s", id, err)}
		}
	}
	return nil
}

// validPath reports why cells is not an 8-connected, loop-free route, or "".
func validPath(cells []Coordinate) string {
	seen := make(map[Coordinate]struct{}, len(cells))
	for i, c := range cells {
		if _, dup := seen[c]; dup {
			return fmt.Sprintf("cell %v repeats at index %d", c, i)
		}
		seen[c] = struct{}{}
		if i > 0 && !cells[i-1].Adjacent(c) {
			return fmt.Sprintf("cells %v and %v at index %d are not adjacent", cells[i-1], c, i)
		}
	}
	return ""
}
