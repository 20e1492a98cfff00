package core

import "github.com/pkg/errors"

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// IsAlive reports whether the cell is live.
func (c Cell) IsAlive() bool { return c == Alive }

// Grid stores a fixed-size field of cells in row-major order.
type Grid struct {
	cols, rows int
	cells      []Cell
}

// NewGrid allocates an all-dead grid.
func NewGrid(cols, rows int) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "grid %dx%d", cols, rows)
	}
	return &Grid{cols: cols, rows: rows, cells: make([]Cell, cols*rows)}, nil
}

// NewGridWithSeed allocates a grid with the given row-major indices alive. Any
// index outside the grid fails the whole call.
func NewGridWithSeed(cols, rows int, live []int) (*Grid, error) {
	g, err := NewGrid(cols, rows)
	if err != nil {
		return nil, err
	}
	for _, i := range live {
		if err := g.SetAt(i, Alive); err != nil {
			return nil, errors.Wrap(err, "seed")
		}
	}
	return g, nil
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.cols, H: g.rows} }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Cells exposes the backing slice so the rule engine can write generations
// without copying. Views must treat it as read-only.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the row-major index for (x, y).
func (g *Grid) Index(x, y int) int { return y*g.cols + x }

// XY returns the coordinates of a row-major index.
func (g *Grid) XY(i int) (int, int) { return i % g.cols, i / g.cols }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

func (g *Grid) checkXY(x, y int) error {
	if !g.InBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "cell (%d,%d) on %dx%d grid", x, y, g.cols, g.rows)
	}
	return nil
}

func (g *Grid) checkIndex(i int) error {
	if i < 0 || i >= len(g.cells) {
		return errors.Wrapf(ErrIndexOutOfBounds, "%d not in [0,%d)", i, len(g.cells))
	}
	return nil
}

// Get returns the cell at (x, y).
func (g *Grid) Get(x, y int) (Cell, error) {
	if err := g.checkXY(x, y); err != nil {
		return Dead, err
	}
	return g.cells[g.Index(x, y)], nil
}

// Set assigns the cell at (x, y).
func (g *Grid) Set(x, y int, c Cell) error {
	if err := g.checkXY(x, y); err != nil {
		return err
	}
	g.cells[g.Index(x, y)] = c
	return nil
}

// Toggle flips the cell at (x, y).
func (g *Grid) Toggle(x, y int) error {
	if err := g.checkXY(x, y); err != nil {
		return err
	}
	g.flip(g.Index(x, y))
	return nil
}

// At returns the cell at row-major index i.
func (g *Grid) At(i int) (Cell, error) {
	if err := g.checkIndex(i); err != nil {
		return Dead, err
	}
	return g.cells[i], nil
}

// SetAt assigns the cell at row-major index i.
func (g *Grid) SetAt(i int, c Cell) error {
	if err := g.checkIndex(i); err != nil {
		return err
	}
	g.cells[i] = c
	return nil
}

// ToggleAt flips the cell at row-major index i.
func (g *Grid) ToggleAt(i int) error {
	if err := g.checkIndex(i); err != nil {
		return err
	}
	g.flip(i)
	return nil
}

func (g *Grid) flip(i int) {
	if g.cells[i] == Alive {
		g.cells[i] = Dead
		return
	}
	g.cells[i] = Alive
}

// CountAlive returns the number of live cells.
func (g *Grid) CountAlive() (count int) {
	for _, c := range g.cells {
		if c == Alive {
			count++
		}
	}
	return
}

// Live returns the indices of live cells in ascending order.
func (g *Grid) Live() []int {
	var live []int
	for i, c := range g.cells {
		if c == Alive {
			live = append(live, i)
		}
	}
	return live
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}

// Resize returns a new all-dead grid of the requested dimensions. Prior
// contents are discarded.
func (g *Grid) Resize(cols, rows int) (*Grid, error) {
	return NewGrid(cols, rows)
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{cols: g.cols, rows: g.rows, cells: cells}
}

// SameSize reports whether both grids have identical dimensions.
func (g *Grid) SameSize(o *Grid) bool {
	return o != nil && g.cols == o.cols && g.rows == o.rows
}

// Equal reports whether both grids have identical dimensions and contents.
func (g *Grid) Equal(o *Grid) bool {
	if !g.SameSize(o) {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// CopyFrom overwrites the contents with src. Both grids must share dimensions.
func (g *Grid) CopyFrom(src *Grid) error {
	if src == nil {
		return errors.Wrap(ErrInvalidDimensions, "copy from nil grid")
	}
	if !g.SameSize(src) {
		return errors.Wrapf(ErrInvalidDimensions, "copy %dx%d into %dx%d", src.cols, src.rows, g.cols, g.rows)
	}
	copy(g.cells, src.cells)
	return nil
}
