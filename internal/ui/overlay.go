//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"conways-life/internal/sim"
)

var (
	gridLineColor  = color.RGBA{R: 180, G: 180, B: 180, A: 255}
	influenceColor = color.RGBA{R: 0, G: 160, B: 0, A: 255}
)

// Overlay draws grid lines and the influence circle over the playfield.
type Overlay struct{}

// NewOverlay constructs an overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Draw renders the overlay for the controller's current settings.
func (o *Overlay) Draw(screen *ebiten.Image, ctrl *sim.Controller) {
	if ctrl.ShowGridLines() {
		o.drawGrid(screen, ctrl)
	}
	if ctrl.ShowInfluence() {
		p := ctrl.Pointer()
		r := float32(ctrl.InfluenceRadius())
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), r, 2, influenceColor, true)
	}
}

func (o *Overlay) drawGrid(screen *ebiten.Image, ctrl *sim.Controller) {
	cell := float32(ctrl.CellSize())
	if cell < 4 {
		// Lines would cover the cells entirely.
		return
	}
	w := float32(ctrl.Cols()) * cell
	h := float32(ctrl.Rows()) * cell
	for x := 0; x <= ctrl.Cols(); x++ {
		xf := float32(x) * cell
		vector.StrokeLine(screen, xf, 0, xf, h, 1, gridLineColor, false)
	}
	for y := 0; y <= ctrl.Rows(); y++ {
		yf := float32(y) * cell
		vector.StrokeLine(screen, 0, yf, w, yf, 1, gridLineColor, false)
	}
}
