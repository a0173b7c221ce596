package ants

// Stats counts what happened since the last reset.
type Stats struct {
	Ticks         uint64
	Published     uint64
	Adoptions     uint64
	Invalidations uint64
	FoodMoves     uint64

	// FirstDiscovery is the tick during which the first path was published,
	// or 0 if none has been.
	FirstDiscovery uint64
}

// StateCounts returns how many agents are in each state.
func (s *Simulation) StateCounts() map[State]int {
	counts := make(map[State]int, int(stateCount))
	for st := State(0); st < stateCount; st++ {
		counts[st] = 0
	}
	for i := range s.agents {
		counts[s.agents[i].state]++
	}
	return counts
}
