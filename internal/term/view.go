// Package term is a tcell front end. It draws controller snapshots and turns
// keyboard and mouse events into commands for a sim.Loop.
package term

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"conways-life/internal/render"
	"conways-life/internal/sim"
)

var (
	liveStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray).Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

// View renders the grid and status lines on a tcell screen.
type View struct {
	screen tcell.Screen
	keys   Keymap

	mu      sync.Mutex
	state   sim.State
	pointer Pointer
}

// NewView wraps an initialised screen.
func NewView(screen tcell.Screen, keys Keymap) *View {
	screen.EnableMouse()
	return &View{screen: screen, keys: keys, pointer: Pointer{last: -1}}
}

// Update stores st and redraws. It is meant as a sim.OnChange callback.
func (v *View) Update(st sim.State) {
	v.mu.Lock()
	v.state = st
	v.mu.Unlock()
	v.Draw(st)
}

// Draw paints st onto the screen.
func (v *View) Draw(st sim.State) {
	s := v.screen
	s.Clear()
	for y, line := range render.Lines(st.Cols, st.Rows, st.Alive, st.ShowGridLines) {
		x := 0
		for _, r := range line {
			style := deadStyle
			if st.Alive(x/colsPerCell, y) {
				style = liveStyle
			}
			s.SetContent(x, y, r, nil, style)
			x++
		}
	}
	for i, line := range StatusLines(st) {
		drawString(s, 0, st.Rows+1+i, line, statusStyle)
	}
	s.Show()
}

// StatusLines describes the controller settings below the grid.
func StatusLines(st sim.State) []string {
	state := "paused"
	if st.Running {
		state = "running"
	}
	influence := "off"
	if st.ShowInfluence {
		influence = fmt.Sprintf("r=%dpx", st.InfluenceRadius)
	}
	return []string{
		fmt.Sprintf("%s  gen %d  live %d (avg %.1f)", state, st.Stats.Generation, st.Stats.Population, st.Stats.AveragePopulation),
		fmt.Sprintf("%dx%d cells @ %dpx  interval %dms  influence %s", st.Cols, st.Rows, st.CellSize, st.IntervalMs, influence),
		"space play/pause  n step  c clear  r random  g grid  i influence  1-4 size  up/down speed  [ ] radius  q quit",
	}
}

// Run polls screen events and sends the resulting commands until a quit key,
// the end of ctx, or the screen closing.
func (v *View) Run(ctx context.Context, send func(context.Context, sim.Command) error) error {
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		v.mu.Lock()
		st := v.state
		var cmds []sim.Command
		quit := false
		switch ev := ev.(type) {
		case *tcell.EventKey:
			var cmd sim.Command
			cmd, quit = v.keys.Command(ev, st)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		case *tcell.EventMouse:
			cmds = v.pointer.Commands(ev, st)
		case *tcell.EventResize:
			v.screen.Sync()
		}
		v.mu.Unlock()

		if quit {
			return nil
		}
		for _, cmd := range cmds {
			if err := send(ctx, cmd); err != nil {
				return err
			}
		}
	}
}

func drawString(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
