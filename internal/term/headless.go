package term

import (
	"fmt"
	"io"
	"strings"

	"conways-life/internal/render"
	"conways-life/internal/sim"
)

// Headless plays ctrl for up to n generations, ticking sched by hand, and
// writes every frame to w. It stops early when the controller auto-pauses.
// It returns the number of generations advanced.
func Headless(w io.Writer, ctrl *sim.Controller, sched *sim.Manual, n int) (int, error) {
	if err := writeFrame(w, ctrl.Snapshot()); err != nil {
		return 0, err
	}
	if err := ctrl.Dispatch(sim.Play{}); err != nil {
		return 0, err
	}
	steps := 0
	for steps < n {
		tick, ok := sched.Fire()
		if !ok {
			break
		}
		if err := ctrl.Dispatch(tick); err != nil {
			return steps, err
		}
		steps++
		if err := writeFrame(w, ctrl.Snapshot()); err != nil {
			return steps, err
		}
	}
	return steps, ctrl.Dispatch(sim.Pause{})
}

func writeFrame(w io.Writer, st sim.State) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "generation %d: %d live\n", st.Stats.Generation, st.Stats.Population)
	for _, line := range render.Lines(st.Cols, st.Rows, st.Alive, true) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
