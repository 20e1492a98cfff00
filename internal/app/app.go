//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"conways-life/internal/config"
	"conways-life/internal/render"
	"conways-life/internal/sim"
	"conways-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the settings panel to the right of the playfield.
const HUDWidth = 240

// Game adapts a Controller to the ebiten.Game interface. Input becomes
// commands; the frame scheduler turns elapsed time into ticks.
type Game struct {
	ctrl    *sim.Controller
	sched   *sim.FrameScheduler
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	logger  *log.Logger

	onColor  color.Color
	offColor color.Color

	density  float64
	lastCell int
}

// New constructs a Game and the controller it drives.
func New(cfg config.Config, logger *log.Logger) (*Game, error) {
	sched := sim.NewFrameScheduler()
	ctrl, err := sim.New(cfg, sched, sim.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return &Game{
		ctrl:     ctrl,
		sched:    sched,
		painter:  render.NewGridPainter(),
		overlay:  ui.NewOverlay(),
		hud:      ui.NewHUD(ctrl, HUDWidth),
		logger:   logger,
		onColor:  color.Black,
		offColor: color.White,
		density:  cfg.Density,
		lastCell: -1,
	}, nil
}

// Controller exposes the underlying state machine.
func (g *Game) Controller() *sim.Controller { return g.ctrl }

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.handlePointer()

	w, _ := g.ctrl.FieldSize()
	g.hud.Update(w)

	if t, ok := g.sched.Due(); ok {
		g.dispatch(t)
	}
	return nil
}

func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.dispatch(sim.TogglePause{})
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.dispatch(sim.StepOnce{})
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.dispatch(sim.Clear{})
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		g.dispatch(sim.ToggleGridLines{})
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		g.dispatch(sim.ToggleInfluenceMode{})
	case inpututil.IsKeyJustPressed(ebiten.KeyR), inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.dispatch(sim.Randomize{Seed: time.Now().UnixNano(), Density: g.density})
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.dispatch(sim.SetInterval{Ms: g.ctrl.IntervalMs() + 10})
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.dispatch(sim.SetInterval{Ms: g.ctrl.IntervalMs() - 10})
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		g.dispatch(sim.SetInfluenceRadius{Px: g.ctrl.InfluenceRadius() + 5})
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		g.dispatch(sim.SetInfluenceRadius{Px: g.ctrl.InfluenceRadius() - 5})
	}
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4} {
		if i < len(config.CellSizes) && inpututil.IsKeyJustPressed(key) {
			g.dispatch(sim.Resize{CellSize: config.CellSizes[i]})
		}
	}
}

func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	px, py := float64(mx), float64(my)
	if p := g.ctrl.Pointer(); p.X != px || p.Y != py {
		g.dispatch(sim.PointerMove{X: px, Y: py})
	}
	cell, onField := g.ctrl.CellAt(px, py)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && onField {
		g.dispatch(sim.PointerDown{})
		if !g.ctrl.Running() {
			g.dispatch(sim.ToggleCell{Index: cell})
		}
		g.lastCell = cell
	}
	if g.ctrl.MouseDown() && onField && cell != g.lastCell {
		g.dispatch(sim.Paint{Index: cell})
		g.lastCell = cell
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.ctrl.MouseDown() {
		g.dispatch(sim.PointerUp{})
		g.lastCell = -1
	}
}

func (g *Game) dispatch(cmd sim.Command) {
	if err := g.ctrl.Dispatch(cmd); err != nil && g.logger != nil {
		g.logger.Printf("%T rejected: %v", cmd, err)
	}
}

// Draw renders the playfield, overlay, and settings panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctrl.Grid(), g.onColor, g.offColor, g.ctrl.CellSize())
	g.overlay.Draw(screen, g.ctrl)
	w, h := g.ctrl.FieldSize()
	g.hud.Draw(screen, w, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.ctrl.FieldSize()
	return w + HUDWidth, h
}
