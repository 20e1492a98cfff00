package term

import (
	"github.com/gdamore/tcell/v2"

	"conways-life/internal/config"
	"conways-life/internal/sim"
)

// Terminal cells are roughly twice as tall as they are wide, so each grid
// cell takes two columns.
const colsPerCell = 2

// Keymap translates key presses into commands.
type Keymap struct {
	// NextSeed supplies the seed for random fills.
	NextSeed func() int64
	Density  float64
}

// Command returns the command bound to ev. quit is set for the exit keys.
func (k Keymap) Command(ev *tcell.EventKey, st sim.State) (cmd sim.Command, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return nil, true
	case tcell.KeyUp:
		return sim.SetInterval{Ms: st.IntervalMs + 10}, false
	case tcell.KeyDown:
		return sim.SetInterval{Ms: st.IntervalMs - 10}, false
	case tcell.KeyRune:
	default:
		return nil, false
	}

	switch r := ev.Rune(); r {
	case 'q':
		return nil, true
	case ' ':
		return sim.TogglePause{}, false
	case 'n':
		return sim.StepOnce{}, false
	case 'c':
		return sim.Clear{}, false
	case 'g':
		return sim.ToggleGridLines{}, false
	case 'i':
		return sim.ToggleInfluenceMode{}, false
	case 'r', 's':
		var seed int64 = 1
		if k.NextSeed != nil {
			seed = k.NextSeed()
		}
		return sim.Randomize{Seed: seed, Density: k.Density}, false
	case '[':
		return sim.SetInfluenceRadius{Px: st.InfluenceRadius - 5}, false
	case ']':
		return sim.SetInfluenceRadius{Px: st.InfluenceRadius + 5}, false
	default:
		if r >= '1' && int(r-'1') < len(config.CellSizes) {
			return sim.Resize{CellSize: config.CellSizes[r-'1']}, false
		}
	}
	return nil, false
}

// Pointer tracks the primary mouse button across events and turns terminal
// mouse positions into pixel-space pointer commands.
type Pointer struct {
	down bool
	last int
}

// Commands returns the commands for one mouse event against st. Positions are
// reported at the centre of the grid cell under the mouse.
func (p *Pointer) Commands(ev *tcell.EventMouse, st sim.State) []sim.Command {
	tx, ty := ev.Position()
	cx, cy := tx/colsPerCell, ty
	px := float64(cx*st.CellSize) + float64(st.CellSize)/2
	py := float64(cy*st.CellSize) + float64(st.CellSize)/2
	idx, onGrid := -1, cx >= 0 && cx < st.Cols && cy >= 0 && cy < st.Rows
	if onGrid {
		idx = cy*st.Cols + cx
	}

	var cmds []sim.Command
	if st.Pointer.X != px || st.Pointer.Y != py {
		cmds = append(cmds, sim.PointerMove{X: px, Y: py})
	}
	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !p.down:
		if !onGrid {
			return cmds
		}
		p.down, p.last = true, idx
		cmds = append(cmds, sim.PointerDown{})
		if !st.Running {
			cmds = append(cmds, sim.ToggleCell{Index: idx})
		}
	case pressed && p.down:
		if onGrid && idx != p.last {
			p.last = idx
			cmds = append(cmds, sim.Paint{Index: idx})
		}
	case !pressed && p.down:
		p.down, p.last = false, -1
		cmds = append(cmds, sim.PointerUp{})
	}
	return cmds
}
