//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"conways-life/internal/core"
)

// GridPainter uploads a grid into a one-pixel-per-cell image and draws it
// scaled to the cell size.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter returns an empty painter; the image is allocated on first
// Blit and reallocated whenever the grid dimensions change.
func NewGridPainter() *GridPainter { return &GridPainter{} }

// Blit draws g onto dst with each cell cellSize pixels wide.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, on, off color.Color, cellSize int) {
	if g.Cols() != gp.w || g.Rows() != gp.h || gp.img == nil {
		if gp.img != nil {
			gp.img.Dispose()
		}
		gp.w, gp.h = g.Cols(), g.Rows()
		gp.img = ebiten.NewImage(gp.w, gp.h)
		gp.buf = make([]byte, 4*gp.w*gp.h)
	}
	FillRGBA(gp.buf, g.Cells(), on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)
}
