package life

import (
	"github.com/pkg/errors"

	"conways-life/internal/core"
)

// DefaultSeed is the start-up pattern for a 19x10 grid (950x500 px at 50 px
// cells): a cross of four three-cell bars around an empty centre.
var DefaultSeed = []int{46, 65, 84, 99, 100, 101, 105, 106, 107, 122, 141, 160}

// Pattern is a set of live-cell offsets relative to a top-left anchor.
type Pattern [][2]int

var (
	Block   = Pattern{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	Blinker = Pattern{{0, 0}, {1, 0}, {2, 0}}
	Glider  = Pattern{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
)

// Place sets the pattern's cells alive with its anchor at (x, y). Nothing is
// written if any cell falls outside the grid.
func Place(g *core.Grid, p Pattern, x, y int) error {
	for _, off := range p {
		if !g.InBounds(x+off[0], y+off[1]) {
			return errors.Wrapf(core.ErrOutOfBounds, "pattern cell (%d,%d)", x+off[0], y+off[1])
		}
	}
	for _, off := range p {
		_ = g.Set(x+off[0], y+off[1], core.Alive)
	}
	return nil
}
