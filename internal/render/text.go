package render

import "strings"

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
	gridPosDot   = " ·"
)

// Lines renders a grid as text, two columns per cell so cells look square in
// a terminal. With dots set, dead cells show a faint marker instead of blanks.
func Lines(cols, rows int, alive func(x, y int) bool, dots bool) []string {
	empty := gridPosEmpty
	if dots {
		empty = gridPosDot
	}
	lines := make([]string, rows)
	var sb strings.Builder
	for y := range rows {
		sb.Reset()
		for x := range cols {
			if alive(x, y) {
				sb.WriteString(gridPosBlock)
			} else {
				sb.WriteString(empty)
			}
		}
		lines[y] = sb.String()
	}
	return lines
}
