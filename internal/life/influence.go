package life

import "conways-life/internal/core"

// Influence describes the pointer perturbation applied after a step.
type Influence struct {
	// Pointer is the cursor position in pixel space.
	Pointer core.Point
	// Radius of the influence circle in pixels.
	Radius float64
	// CellSize is the edge length of one square cell in pixels.
	CellSize int
	// Origin is the pixel position of the grid's top-left corner.
	Origin core.Point
}

// CellCenter returns the pixel centre of cell (x, y).
func CellCenter(x, y, cellSize int, origin core.Point) core.Point {
	half := float64(cellSize) / 2
	return core.Point{
		X: origin.X + float64(x*cellSize) + half,
		Y: origin.Y + float64(y*cellSize) + half,
	}
}

// Touches reports whether the influence circle reaches cell (x, y). The test
// compares centre distance against the summed radii of the circle and the
// cell's inscribed circle, so it approximates circle/square overlap.
func (inf Influence) Touches(x, y int) bool {
	cellRadius := float64(inf.CellSize) / 2
	centre := CellCenter(x, y, inf.CellSize, inf.Origin)
	return centre.Dist(inf.Pointer) < cellRadius+inf.Radius
}

// ApplyInfluence returns a copy of g with every touched cell alive. It never
// kills a cell.
func ApplyInfluence(g *core.Grid, inf Influence) *core.Grid {
	out := g.Clone()
	ApplyInfluenceInPlace(out, inf)
	return out
}

// ApplyInfluenceInPlace is ApplyInfluence writing into g. It returns the number
// of cells brought to life.
func ApplyInfluenceInPlace(g *core.Grid, inf Influence) int {
	if inf.CellSize <= 0 || inf.Radius < 0 {
		return 0
	}
	cols, rows := g.Cols(), g.Rows()
	cells := g.Cells()

	// Only cells whose centre lies within reach of the pointer can match.
	reach := inf.Radius + float64(inf.CellSize)
	cs := float64(inf.CellSize)
	minX := max(0, int((inf.Pointer.X-inf.Origin.X-reach)/cs)-1)
	maxX := min(cols-1, int((inf.Pointer.X-inf.Origin.X+reach)/cs)+1)
	minY := max(0, int((inf.Pointer.Y-inf.Origin.Y-reach)/cs)-1)
	maxY := min(rows-1, int((inf.Pointer.Y-inf.Origin.Y+reach)/cs)+1)

	born := 0
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			idx := y*cols + x
			if cells[idx] == core.Alive || !inf.Touches(x, y) {
				continue
			}
			cells[idx] = core.Alive
			born++
		}
	}
	return born
}
