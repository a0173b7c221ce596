package ants

// PathID identifies one published path. Identity, not content, decides
// equality: two published paths with the same cells have different ids.
// The zero value means "no path".
type PathID uint64

type publishedPath struct {
	id    PathID
	cells []Coordinate
	index map[Coordinate]int
}

// PathMatch pairs a published path with the index of the cell that touched
// the queried neighbourhood.
type PathMatch struct {
	ID    PathID
	Index int
}

// PathRegistry is the arena of known food routes. Paths are stored by id and
// kept in publication order so lookups are deterministic.
type PathRegistry struct {
	next  PathID
	order []PathID
	paths map[PathID]*publishedPath
}

// NewPathRegistry returns an empty registry.
func NewPathRegistry() *PathRegistry {
	return &PathRegistry{paths: make(map[PathID]*publishedPath)}
}

// Publish stores a copy of cells as a new path and returns its id. Identical
// routes are not merged.
func (r *PathRegistry) Publish(cells []Coordinate) PathID {
	r.next++
	p := &publishedPath{
		id:    r.next,
		cells: append([]Coordinate(nil), cells...),
		index: make(map[Coordinate]int, len(cells)),
	}
	for i, c := range p.cells {
		if _, seen := p.index[c]; !seen {
			p.index[c] = i
		}
	}
	r.paths[p.id] = p
	r.order = append(r.order, p.id)
	return p.id
}

// AdjacentPaths returns every (path, index) pair where a published path
// passes through one of the eight cells around c. Neighbours are scanned in
// row-major offset order and, for each, paths in publication order.
func (r *PathRegistry) AdjacentPaths(c Coordinate) []PathMatch {
	if len(r.order) == 0 {
		return nil
	}
	var matches []PathMatch
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Coordinate{X: c.X + dx, Y: c.Y + dy}
			for _, id := range r.order {
				if i, ok := r.paths[id].index[n]; ok {
					matches = append(matches, PathMatch{ID: id, Index: i})
				}
			}
		}
	}
	return matches
}

// Cells returns a copy of the path with the given id.
func (r *PathRegistry) Cells(id PathID) ([]Coordinate, bool) {
	p, ok := r.paths[id]
	if !ok {
		return nil, false
	}
	return append([]Coordinate(nil), p.cells...), true
}

// Contains reports whether id is still published.
func (r *PathRegistry) Contains(id PathID) bool {
	_, ok := r.paths[id]
	return ok
}

// Remove drops the path with the given id. Unknown ids are ignored. The
// return value reports whether anything was removed.
func (r *PathRegistry) Remove(id PathID) bool {
	if _, ok := r.paths[id]; !ok {
		return false
	}
	delete(r.paths, id)
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Len reports how many paths are published.
func (r *PathRegistry) Len() int { return len(r.order) }

// IDs lists published ids in publication order.
func (r *PathRegistry) IDs() []PathID { return append([]PathID(nil), r.order...) }

// Snapshot deep-copies every published path in publication order.
func (r *PathRegistry) Snapshot() [][]Coordinate {
	out := make([][]Coordinate, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, append([]Coordinate(nil), r.paths[id].cells...))
	}
	return out
}

// Clear forgets every path. Ids keep increasing so stale references held by
// agents can never match a later publication.
func (r *PathRegistry) Clear() {
	r.order = nil
	r.paths = make(map[PathID]*publishedPath)
}
