package sim

// Command is a request processed by Controller.Dispatch. The set of commands
// is closed; every implementation lives in this file.
type Command interface {
	command()
}

// ToggleCell flips the cell at a row-major index.
type ToggleCell struct{ Index int }

// Paint brings the cell at Index to life while the pointer is held down and
// the simulation is paused. It never kills a cell.
type Paint struct{ Index int }

// Play starts the simulation.
type Play struct{}

// Pause stops the simulation.
type Pause struct{}

// TogglePause switches between Play and Pause.
type TogglePause struct{}

// Tick advances a running simulation by one generation. From identifies the
// scheduler handle that produced it; ticks from a stopped handle are dropped.
// A nil From is accepted whenever the simulation runs.
type Tick struct{ From Handle }

// StepOnce advances a paused simulation by exactly one generation.
type StepOnce struct{}

// Resize rebuilds an all-dead grid for a new cell size and pauses.
type Resize struct{ CellSize int }

// Clear kills every cell.
type Clear struct{}

// SetInterval changes the time between ticks.
type SetInterval struct{ Ms int }

// SetInfluenceRadius changes the influence radius in pixels.
type SetInfluenceRadius struct{ Px int }

// ToggleGridLines flips the grid-line display hint.
type ToggleGridLines struct{}

// ToggleInfluenceMode flips influence mode.
type ToggleInfluenceMode struct{}

// PointerMove records the pointer position in pixels.
type PointerMove struct{ X, Y float64 }

// PointerDown marks the pointer as pressed.
type PointerDown struct{}

// PointerUp marks the pointer as released.
type PointerUp struct{}

// Seed replaces the grid with the given live indices.
type Seed struct{ Indices []int }

// Randomize fills the grid with live cells at the given density using a
// deterministic seed.
type Randomize struct {
	Seed    int64
	Density float64
}

func (ToggleCell) command()          {}
func (Paint) command()               {}
func (Play) command()                {}
func (Pause) command()               {}
func (TogglePause) command()         {}
func (Tick) command()                {}
func (StepOnce) command()            {}
func (Resize) command()              {}
func (Clear) command()               {}
func (SetInterval) command()         {}
func (SetInfluenceRadius) command()  {}
func (ToggleGridLines) command()     {}
func (ToggleInfluenceMode) command() {}
func (PointerMove) command()         {}
func (PointerDown) command()         {}
func (PointerUp) command()           {}
func (Seed) command()                {}
func (Randomize) command()           {}
