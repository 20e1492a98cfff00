//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"conways-life/internal/core"
)

// Settings is what the HUD needs from the simulation.
type Settings interface {
	core.ParameterControlsProvider
	core.IntParameterSetter
	core.BoolParameterToggler
	Parameters() core.ParameterSnapshot
}

var (
	panelBg     = color.RGBA{R: 24, G: 26, B: 32, A: 255}
	textBright  = color.RGBA{R: 225, G: 225, B: 235, A: 255}
	textDim     = color.RGBA{R: 150, G: 150, B: 165, A: 255}
	buttonBg    = color.RGBA{R: 60, G: 64, B: 74, A: 255}
	buttonIdle  = color.RGBA{R: 36, G: 38, B: 44, A: 255}
	buttonLabel = color.RGBA{R: 240, G: 240, B: 245, A: 255}
)

const (
	pad       = 12
	rowHeight = 34
	btnSize   = 22
	btnGap    = 6
	titleY    = pad + 14
	rowsTop   = titleY + 16
	lineStep  = 16
)

var statusKeys = []string{"state", "generation", "population", "cols", "rows"}

var keyHelp = []string{
	"space  play/pause",
	"n      step once",
	"c      clear",
	"r/s    random fill",
	"g/i    grid/influence",
	"1-4    cell size",
	"up/dn  interval",
	"[ ]    radius",
	"q      quit",
}

type button struct {
	rect  image.Rectangle
	label string
}

func (b button) hit(x, y int) bool { return image.Pt(x, y).In(b.rect) }

func (b button) draw(dst *ebiten.Image, enabled bool) {
	bg, fg := buttonBg, buttonLabel
	if !enabled {
		bg, fg = buttonIdle, textDim
	}
	r := b.rect
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
	face := basicfont.Face7x13
	lb := text.BoundString(face, b.label)
	text.Draw(dst, b.label, face, r.Min.X+(r.Dx()-lb.Dx())/2, r.Max.Y-(r.Dy()-lb.Dy())/2, fg)
}

// row is one adjustable setting: label, current value and two buttons.
type row struct {
	ctrl        core.ParameterControl
	y           int
	down, up    button
	shown       string
	current     int
	initialized bool
}

// HUD is the settings panel drawn to the right of the playfield.
type HUD struct {
	settings Settings
	width    int
	rows     []row
	snap     core.ParameterSnapshot
	offsetX  int

	panel *ebiten.Image
}

// NewHUD lays out one row per parameter control of s.
func NewHUD(s Settings, width int) *HUD {
	h := &HUD{settings: s, width: max(width, 0)}
	for i, ctrl := range s.ParameterControls() {
		y := rowsTop + i*rowHeight
		by := y + (rowHeight-btnSize)/2
		up := image.Rect(h.width-pad-btnSize, by, h.width-pad, by+btnSize)
		down := up.Sub(image.Pt(btnSize+btnGap, 0))
		r := row{ctrl: ctrl, y: y, shown: "--"}
		r.down, r.up = button{rect: down, label: "-"}, button{rect: up, label: "+"}
		if ctrl.Type == core.ParamTypeBool {
			r.down.label, r.up.label = "<", ">"
		}
		h.rows = append(h.rows, r)
	}
	return h
}

// Update reads the current settings and applies clicks on the panel, which
// starts at panelX in screen space.
func (h *HUD) Update(panelX int) {
	if h == nil {
		return
	}
	h.offsetX = panelX
	h.sync()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	x := mx - h.offsetX
	if x < 0 {
		return
	}
	for i := range h.rows {
		r := &h.rows[i]
		if !r.initialized {
			continue
		}
		switch {
		case r.down.hit(x, my):
			h.adjust(r, -1)
		case r.up.hit(x, my):
			h.adjust(r, 1)
		default:
			continue
		}
		h.sync()
		return
	}
}

func (h *HUD) adjust(r *row, dir int) {
	if r.ctrl.Type == core.ParamTypeBool {
		h.settings.ToggleParameter(r.ctrl.Key)
		return
	}
	if next := r.ctrl.Adjust(r.current, dir); next != r.current {
		h.settings.SetIntParameter(r.ctrl.Key, next)
	}
}

func (h *HUD) sync() {
	h.snap = h.settings.Parameters()
	for i := range h.rows {
		r := &h.rows[i]
		p, ok := h.snap.Lookup(r.ctrl.Key)
		r.initialized = ok
		r.shown = "--"
		if !ok {
			continue
		}
		if r.ctrl.Type == core.ParamTypeBool {
			r.shown = "off"
			if p.Value == "true" {
				r.shown = "on"
			}
			continue
		}
		v, err := strconv.Atoi(p.Value)
		if err != nil {
			r.initialized = false
			continue
		}
		r.current = v
		r.shown = p.Value + p.Unit
	}
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width == 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBg)

	face := basicfont.Face7x13
	text.Draw(h.panel, "Conway's Game of Life", face, pad, titleY, textBright)
	for _, r := range h.rows {
		base := r.y + rowHeight/2 + 5
		text.Draw(h.panel, r.ctrl.Label, face, pad, base, textBright)
		valueColor := textBright
		if !r.initialized {
			valueColor = textDim
		}
		w := text.BoundString(face, r.shown).Dx()
		text.Draw(h.panel, r.shown, face, r.down.rect.Min.X-btnGap-w, base, valueColor)
		r.down.draw(h.panel, r.initialized)
		r.up.draw(h.panel, r.initialized)
	}

	y := rowsTop + len(h.rows)*rowHeight + 20
	for _, key := range statusKeys {
		if p, ok := h.snap.Lookup(key); ok {
			text.Draw(h.panel, p.Label+": "+p.Value, face, pad, y, textDim)
			y += lineStep
		}
	}
	y += lineStep
	for _, line := range keyHelp {
		text.Draw(h.panel, line, face, pad, y, textDim)
		y += lineStep
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
