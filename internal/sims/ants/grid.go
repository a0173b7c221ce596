package ants

import "antfarm/internal/core"

// Grid is the bounded board agents walk on. The food layer is a byte grid
// where any non-zero cell holds food.
type Grid struct {
	w, h int
	food *core.ByteGrid
}

// NewGrid allocates an empty grid.
func NewGrid(w, h int) *Grid {
	fg := core.NewByteGrid(w, h)
	return &Grid{w: fg.W, h: fg.H, food: fg}
}

// Size reports the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Coordinate) bool { return g.food.Contains(c.X, c.Y) }

// AdjacentCells returns the in-bounds Moore neighbours of c in row-major
// offset order. The centre cell is excluded.
func (g *Grid) AdjacentCells(c Coordinate) []Coordinate {
	cells := make([]Coordinate, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Coordinate{X: c.X + dx, Y: c.Y + dy}
			if g.InBounds(n) {
				cells = append(cells, n)
			}
		}
	}
	return cells
}

// HasFood reports whether c holds food.
func (g *Grid) HasFood(c Coordinate) bool { return g.food.Get(c.X, c.Y) != 0 }

// FoodAdjacent reports whether any neighbour of c holds food.
func (g *Grid) FoodAdjacent(c Coordinate) bool {
	for _, n := range g.AdjacentCells(c) {
		if g.HasFood(n) {
			return true
		}
	}
	return false
}

// ToggleFood flips the food marker at c and reports whether food is now present.
// The caller guarantees c is in bounds.
func (g *Grid) ToggleFood(c Coordinate) bool {
	if g.HasFood(c) {
		g.food.Set(c.X, c.Y, 0)
		return false
	}
	g.food.Set(c.X, c.Y, 1)
	return true
}

func (g *Grid) setFood(c Coordinate, present bool) {
	var v uint8
	if present {
		v = 1
	}
	g.food.Set(c.X, c.Y, v)
}

// FoodCoordinates lists food cells in row-major order.
func (g *Grid) FoodCoordinates() []Coordinate {
	var out []Coordinate
	cells := g.food.Cells()
	for i, v := range cells {
		if v != 0 {
			out = append(out, Coordinate{X: i % g.w, Y: i / g.w})
		}
	}
	return out
}

// ClearFood removes every food marker.
func (g *Grid) ClearFood() { g.food.Clear() }
