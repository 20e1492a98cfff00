// Package life implements Conway's Game of Life on a finite grid: cells past
// the edges are absent rather than wrapped.
package life

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"conways-life/internal/core"
)

// ParallelThreshold is the cell count from which callers should prefer
// StepParallel.
const ParallelThreshold = 64 * 1024

/*
Next applies Conway's rules to a single cell.

Live cells survive with two or three live neighbours; dead cells come alive
with exactly three.
*/
func Next(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Neighbors counts live cells in the Moore neighbourhood of (x, y). Positions
// outside the grid count as dead, so edge cells have five neighbours and
// corners three.
func Neighbors(g *core.Grid, x, y int) int {
	cols, rows := g.Cols(), g.Rows()
	cells := g.Cells()

	minX := max(0, x-1)
	maxX := min(cols-1, x+1)
	minY := max(0, y-1)
	maxY := min(rows-1, y+1)

	count := 0
	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if cells[ny*cols+nx] == core.Alive {
				count++
			}
		}
	}
	return count
}

// Step returns the next generation of g. g is not modified.
func Step(g *core.Grid) *core.Grid {
	next, _ := core.NewGrid(g.Cols(), g.Rows())
	stepRows(next.Cells(), g, 0, g.Rows())
	return next
}

// StepInto writes the next generation of src into dst. dst and src must be
// distinct grids of the same dimensions.
func StepInto(dst, src *core.Grid) error {
	if err := checkBuffers(dst, src); err != nil {
		return err
	}
	stepRows(dst.Cells(), src, 0, src.Rows())
	return nil
}

// StepParallel is StepInto split into row bands evaluated concurrently.
// workers <= 0 uses one band per CPU.
func StepParallel(ctx context.Context, dst, src *core.Grid, workers int) error {
	if err := checkBuffers(dst, src); err != nil {
		return err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		rows          = src.Rows()
		out           = dst.Cells()
		rowsPerWorker = (rows + workers - 1) / workers
	)
	eg, ctx := errgroup.WithContext(ctx)
	for i := range workers {
		startRow := i * rowsPerWorker
		endRow := min(startRow+rowsPerWorker, rows)
		if startRow >= rows {
			break
		}
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stepRows(out, src, startRow, endRow)
			return nil
		})
	}
	return eg.Wait()
}

func stepRows(out []core.Cell, src *core.Grid, startRow, endRow int) {
	cols := src.Cols()
	cells := src.Cells()
	for y := startRow; y < endRow; y++ {
		for x := 0; x < cols; x++ {
			idx := y*cols + x
			out[idx] = core.Dead
			if Next(cells[idx] == core.Alive, Neighbors(src, x, y)) {
				out[idx] = core.Alive
			}
		}
	}
}

func checkBuffers(dst, src *core.Grid) error {
	if dst == nil || src == nil {
		return errors.Wrap(core.ErrInvalidDimensions, "nil grid")
	}
	if dst == src {
		return errors.New("step: destination aliases source")
	}
	if !dst.SameSize(src) {
		return errors.Wrapf(core.ErrInvalidDimensions, "step %dx%d into %dx%d",
			src.Cols(), src.Rows(), dst.Cols(), dst.Rows())
	}
	return nil
}
