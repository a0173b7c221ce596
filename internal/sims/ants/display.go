package ants

import "image/color"

// Display values written to the Cells buffer. Higher layers win when a cell
// holds more than one thing.
const (
	CellEmpty uint8 = iota
	CellPath
	CellAnt
	CellHome
	CellFood
)

var (
	colorEmpty = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorPath  = color.RGBA{R: 0xFF, G: 0x95, B: 0xFF, A: 0xFF}
	colorAnt   = color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}
	colorHome  = color.RGBA{R: 0x00, G: 0x00, B: 0xFF, A: 0xFF}
	colorFood  = color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}
)

// Palette maps display values to colours. With showPaths false path cells
// are drawn as empty ground.
func (s *Simulation) Palette(showPaths bool) []color.RGBA {
	path := colorPath
	if !showPaths {
		path = colorEmpty
	}
	return []color.RGBA{colorEmpty, path, colorAnt, colorHome, colorFood}
}

// Cells exposes the display buffer, rebuilt from the simulation state when
// it has changed. The buffer is owned by the simulation and overwritten on
// the next rebuild; writing to it does not affect the simulation.
func (s *Simulation) Cells() []uint8 {
	if s.dirty {
		s.rebuildDisplay()
		s.dirty = false
	}
	return s.display
}

func (s *Simulation) rebuildDisplay() {
	w := s.cfg.Width
	for i := range s.display {
		s.display[i] = CellEmpty
	}
	raise := func(c Coordinate, v uint8) {
		if !s.grid.InBounds(c) {
			return
		}
		idx := c.Y*w + c.X
		if s.display[idx] < v {
			s.display[idx] = v
		}
	}
	for _, id := range s.paths.order {
		for _, c := range s.paths.paths[id].cells {
			raise(c, CellPath)
		}
	}
	for i := range s.agents {
		raise(s.agents[i].coord, CellAnt)
	}
	raise(s.home, CellHome)
	for _, f := range s.grid.FoodCoordinates() {
		raise(f, CellFood)
	}
}
