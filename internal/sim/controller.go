// Package sim owns the simulation state machine. A Controller holds the grid
// and its settings and changes them only through Dispatch, one command at a
// time.
package sim

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/pkg/errors"

	"conways-life/internal/config"
	"conways-life/internal/core"
	"conways-life/internal/life"
)

// Controller is the Paused/Running state machine around a grid. It is not safe
// for concurrent use; feed it from a single goroutine such as Loop.Run.
type Controller struct {
	width, height int

	grid  *core.Grid
	spare *core.Grid

	cellSize      int
	intervalMs    int
	radius        int
	showGrid      bool
	showInfluence bool

	running   bool
	mouseDown bool
	pointer   core.Point
	origin    core.Point

	sched  Scheduler
	handle Handle

	stats   Stats
	logger  *log.Logger
	workers int
}

// Option customises a Controller.
type Option func(*Controller)

// WithLogger logs state transitions to l.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithOrigin sets the pixel position of the grid's top-left corner, so pointer
// positions can be reported in window coordinates.
func WithOrigin(p core.Point) Option {
	return func(c *Controller) { c.origin = p }
}

// WithWorkers sets the number of row bands used for large grids. Zero uses one
// per CPU.
func WithWorkers(n int) Option {
	return func(c *Controller) { c.workers = n }
}

// New builds a paused Controller from cfg. cfg.RandomSeed, when non-zero,
// replaces the seed pattern with a random fill.
func New(cfg config.Config, sched Scheduler, opts ...Option) (*Controller, error) {
	if sched == nil {
		return nil, errors.New("sim: nil scheduler")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cols, rows := cfg.Dimensions()
	grid, err := core.NewGridWithSeed(cols, rows, cfg.Seed)
	if err != nil {
		return nil, err
	}
	if cfg.RandomSeed != 0 {
		core.NewRNG(cfg.RandomSeed).Fill(grid, cfg.Density)
	}
	c := &Controller{
		width:         cfg.Width,
		height:        cfg.Height,
		grid:          grid,
		spare:         grid.Clone(),
		cellSize:      cfg.CellSize,
		intervalMs:    cfg.IntervalMs,
		radius:        cfg.InfluenceRadius,
		showGrid:      cfg.ShowGrid,
		showInfluence: cfg.ShowInfluence,
		sched:         sched,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.stats.reset(grid.CountAlive())
	return c, nil
}

// Dispatch applies one command. A rejected command returns an error and leaves
// the controller unchanged.
func (c *Controller) Dispatch(cmd Command) error {
	switch cmd := cmd.(type) {
	case ToggleCell:
		return c.toggleCell(cmd.Index)
	case Paint:
		return c.paint(cmd.Index)
	case Play:
		c.play()
	case Pause:
		c.pause("paused")
	case TogglePause:
		if c.running {
			c.pause("paused")
		} else {
			c.play()
		}
	case Tick:
		return c.tick(cmd)
	case StepOnce:
		if c.running {
			return nil
		}
		if err := c.advance(); err != nil {
			return err
		}
		c.stats.observe(c.grid.CountAlive())
	case Resize:
		return c.resize(cmd.CellSize)
	case Clear:
		c.grid.Clear()
		c.stats.reset(0)
	case SetInterval:
		return c.setInterval(cmd.Ms)
	case SetInfluenceRadius:
		return c.setRadius(cmd.Px)
	case ToggleGridLines:
		c.showGrid = !c.showGrid
	case ToggleInfluenceMode:
		c.showInfluence = !c.showInfluence
	case PointerMove:
		c.pointer = core.Pt(cmd.X, cmd.Y)
	case PointerDown:
		c.mouseDown = true
	case PointerUp:
		c.mouseDown = false
	case Seed:
		return c.seed(cmd.Indices)
	case Randomize:
		return c.randomize(cmd.Seed, cmd.Density)
	default:
		return errors.Errorf("sim: unknown command %T", cmd)
	}
	return nil
}

func (c *Controller) toggleCell(i int) error {
	if err := c.grid.ToggleAt(i); err != nil {
		return err
	}
	c.stats.observe(c.grid.CountAlive())
	return nil
}

func (c *Controller) paint(i int) error {
	if !c.mouseDown || c.running {
		return nil
	}
	if err := c.grid.SetAt(i, core.Alive); err != nil {
		return err
	}
	c.stats.observe(c.grid.CountAlive())
	return nil
}

func (c *Controller) play() {
	if c.running {
		return
	}
	c.running = true
	c.startScheduler()
	c.logf("running every %d ms", c.intervalMs)
}

func (c *Controller) pause(reason string) {
	if !c.running {
		return
	}
	c.running = false
	c.stopScheduler()
	c.logf("%s at generation %d", reason, c.stats.Generation)
}

func (c *Controller) tick(t Tick) error {
	if !c.running {
		return nil
	}
	if t.From != nil && t.From != c.handle {
		return nil
	}
	if err := c.advance(); err != nil {
		return err
	}
	if c.showInfluence {
		life.ApplyInfluenceInPlace(c.grid, c.Influence())
	}
	c.stats.observe(c.grid.CountAlive())
	if !c.showInfluence && c.stats.Population == 0 {
		c.pause("auto-paused on empty grid")
	}
	return nil
}

// advance replaces the grid with its next generation. On failure the grid and
// the generation counter are left as they were.
func (c *Controller) advance() error {
	var err error
	if c.grid.Len() >= life.ParallelThreshold {
		if err = life.StepParallel(context.Background(), c.spare, c.grid, c.workers); err != nil {
			c.logf("parallel step failed: %v", err)
			err = life.StepInto(c.spare, c.grid)
		}
	} else {
		err = life.StepInto(c.spare, c.grid)
	}
	if err != nil {
		return errors.Wrapf(err, "generation %d", c.stats.Generation+1)
	}
	c.grid, c.spare = c.spare, c.grid
	c.stats.Generation++
	return nil
}

func (c *Controller) resize(cellSize int) error {
	cols, rows := config.GridSize(c.width, c.height, cellSize)
	if cols < 1 || rows < 1 {
		return errors.Wrapf(core.ErrInvalidConfiguration, "cell size %d px on %dx%d px field", cellSize, c.width, c.height)
	}
	grid, err := c.grid.Resize(cols, rows)
	if err != nil {
		return err
	}
	c.grid = grid
	c.spare = grid.Clone()
	c.cellSize = cellSize
	c.running = false
	c.stopScheduler()
	c.stats.reset(0)
	c.logf("resized to %dx%d cells of %d px", cols, rows, cellSize)
	return nil
}

func (c *Controller) setInterval(ms int) error {
	if err := config.CheckInterval(ms); err != nil {
		return err
	}
	c.intervalMs = ms
	if c.running {
		c.startScheduler()
	}
	return nil
}

func (c *Controller) setRadius(px int) error {
	if px <= 0 {
		return errors.Wrapf(core.ErrInvalidConfiguration, "influence radius %d px", px)
	}
	c.radius = config.ClampRadius(px)
	return nil
}

func (c *Controller) seed(indices []int) error {
	grid, err := core.NewGridWithSeed(c.grid.Cols(), c.grid.Rows(), indices)
	if err != nil {
		return err
	}
	c.grid = grid
	c.stats.reset(grid.CountAlive())
	return nil
}

func (c *Controller) randomize(seed int64, density float64) error {
	if density < 0 || density > 1 {
		return errors.Wrapf(core.ErrInvalidConfiguration, "density %g not in [0,1]", density)
	}
	core.NewRNG(seed).Fill(c.grid, density)
	c.stats.reset(c.grid.CountAlive())
	return nil
}

// startScheduler replaces any running timer with one at the current interval.
func (c *Controller) startScheduler() {
	c.stopScheduler()
	c.handle = c.sched.Start(c.Interval())
}

func (c *Controller) stopScheduler() {
	if c.handle == nil {
		return
	}
	c.handle.Stop()
	c.handle = nil
}

func (c *Controller) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

// Grid returns the current generation. It is replaced, not copied, on every
// step; do not retain it across commands.
func (c *Controller) Grid() *core.Grid { return c.grid }

// Cols returns the grid width in cells.
func (c *Controller) Cols() int { return c.grid.Cols() }

// Rows returns the grid height in cells.
func (c *Controller) Rows() int { return c.grid.Rows() }

// FieldSize returns the fixed playfield size in pixels.
func (c *Controller) FieldSize() (int, int) { return c.width, c.height }

// CellSize returns the cell edge in pixels.
func (c *Controller) CellSize() int { return c.cellSize }

// Running reports whether ticks advance the grid.
func (c *Controller) Running() bool { return c.running }

// ShowGridLines reports the grid-line display hint.
func (c *Controller) ShowGridLines() bool { return c.showGrid }

// ShowInfluence reports whether influence mode is on.
func (c *Controller) ShowInfluence() bool { return c.showInfluence }

// Pointer returns the last pointer position.
func (c *Controller) Pointer() core.Point { return c.pointer }

// MouseDown reports whether the pointer is pressed.
func (c *Controller) MouseDown() bool { return c.mouseDown }

// InfluenceRadius returns the influence radius in pixels.
func (c *Controller) InfluenceRadius() int { return c.radius }

// IntervalMs returns the tick interval in milliseconds.
func (c *Controller) IntervalMs() int { return c.intervalMs }

// Interval returns the tick interval.
func (c *Controller) Interval() time.Duration {
	return time.Duration(c.intervalMs) * time.Millisecond
}

// Influence returns the perturbation applied after each running step.
func (c *Controller) Influence() life.Influence {
	return life.Influence{
		Pointer:  c.pointer,
		Radius:   float64(c.radius),
		CellSize: c.cellSize,
		Origin:   c.origin,
	}
}

// Stats returns generation and population counters.
func (c *Controller) Stats() Stats { return c.stats }

// CellAt maps a pixel position to the row-major index of the cell under it.
// It reports false outside the grid.
func (c *Controller) CellAt(px, py float64) (int, bool) {
	x := int(math.Floor((px - c.origin.X) / float64(c.cellSize)))
	y := int(math.Floor((py - c.origin.Y) / float64(c.cellSize)))
	if !c.grid.InBounds(x, y) {
		return 0, false
	}
	return c.grid.Index(x, y), true
}
