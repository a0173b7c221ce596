package ants

import "fmt"

// Coordinate is a cell position on the grid.
type Coordinate struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// C is shorthand for building a Coordinate.
func C(x, y int) Coordinate { return Coordinate{X: x, Y: y} }

// Add offsets the coordinate by one direction.
func (c Coordinate) Add(d Direction) Coordinate {
	return Coordinate{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Adjacent reports whether o is one of the eight cells surrounding c.
func (c Coordinate) Adjacent(o Coordinate) bool {
	dx, dy := o.X-c.X, o.Y-c.Y
	if dx == 0 && dy == 0 {
		return false
	}
	return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}

func (c Coordinate) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Direction is a unit step to one of the eight neighbouring cells.
type Direction struct {
	DX, DY int
}

// Directions lists the eight unit offsets in the order a random walk
// shuffles them from.
var Directions = [8]Direction{
	{1, 0}, {0, 1}, {-1, 0}, {0, -1},
	{1, 1}, {-1, -1}, {-1, 1}, {1, -1},
}
