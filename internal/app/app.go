//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"antfarm/internal/core"
	"antfarm/internal/render"
	"antfarm/internal/ui"
)

const (
	hudWidth     = 240
	intervalStep = 10 * time.Millisecond
)

type cellToggler interface {
	ToggleCell(x, y int) error
}

type paletteProvider interface {
	Palette(showPaths bool) []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface. It owns input
// and tick timing; the simulation only ever sees whole ticks and toggles
// between them.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	timer   *core.FixedStep

	fallback []color.RGBA

	scale     int
	running   bool
	tickOnce  bool
	showPaths bool
	seed      int64
	title     string
}

// New constructs a Game for the provided simulation. It starts stopped.
func New(sim core.Sim, scale int, seed int64, interval time.Duration) *Game {
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		sim:       sim,
		painter:   render.NewGridPainter(sim.Size().W, sim.Size().H),
		hud:       ui.NewHUD(sim, hudWidth),
		timer:     core.NewFixedStep(interval),
		fallback:  render.BinaryPalette(color.White, color.Black),
		scale:     scale,
		showPaths: true,
		seed:      seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

func (g *Game) status() ui.Status {
	return ui.Status{Running: g.running, Interval: g.timer.Interval(), ShowPaths: g.showPaths}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.running = !g.running
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showPaths = !g.showPaths
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.timer.SetInterval(g.timer.Interval() + intervalStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && g.timer.Interval() > core.MinTickInterval {
		g.timer.SetInterval(g.timer.Interval() - intervalStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.toggleAtCursor()
	}

	if title := ui.Title(g.sim.Name(), g.status()); title != g.title {
		ebiten.SetWindowTitle(title)
		g.title = title
	}

	// Food toggles above land between ticks, never inside one.
	if (g.running && g.timer.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	g.hud.Update(g.status())
	return nil
}

func (g *Game) toggleAtCursor() {
	toggler, ok := g.sim.(cellToggler)
	if !ok {
		return
	}
	mx, my := ebiten.CursorPosition()
	size := g.sim.Size()
	x, y := mx/g.scale, my/g.scale
	if mx < 0 || my < 0 || x >= size.W || y >= size.H {
		return
	}
	if err := toggler.ToggleCell(x, y); err != nil {
		logrus.Warnf("toggle food: %v", err)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	palette := g.fallback
	if provider, ok := g.sim.(paletteProvider); ok {
		palette = provider.Palette(g.showPaths)
	}
	g.painter.Blit(screen, g.sim.Cells(), palette, g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
