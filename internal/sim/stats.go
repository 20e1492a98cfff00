package sim

// Stats tracks generation and population counters.
type Stats struct {
	Generation        int
	Population        int
	AveragePopulation float64
}

func (s *Stats) reset(population int) {
	*s = Stats{Population: population, AveragePopulation: float64(population)}
}

// observe records a new population with an exponential moving average.
func (s *Stats) observe(population int) {
	s.Population = population
	s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
}

// State is a copy of everything a view renders. It is safe to hand to another
// goroutine.
type State struct {
	Cols, Rows      int
	Cells           []bool
	CellSize        int
	Running         bool
	ShowGridLines   bool
	ShowInfluence   bool
	Pointer         struct{ X, Y float64 }
	InfluenceRadius int
	IntervalMs      int
	Stats           Stats
}

// Alive reports whether the cell at (x, y) is live.
func (s State) Alive(x, y int) bool {
	if x < 0 || x >= s.Cols || y < 0 || y >= s.Rows {
		return false
	}
	return s.Cells[y*s.Cols+x]
}

// Snapshot copies the current state.
func (c *Controller) Snapshot() State {
	cells := make([]bool, c.grid.Len())
	for i, cell := range c.grid.Cells() {
		cells[i] = cell.IsAlive()
	}
	s := State{
		Cols:            c.grid.Cols(),
		Rows:            c.grid.Rows(),
		Cells:           cells,
		CellSize:        c.cellSize,
		Running:         c.running,
		ShowGridLines:   c.showGrid,
		ShowInfluence:   c.showInfluence,
		InfluenceRadius: c.radius,
		IntervalMs:      c.intervalMs,
		Stats:           c.stats,
	}
	s.Pointer.X, s.Pointer.Y = c.pointer.X, c.pointer.Y
	return s
}
