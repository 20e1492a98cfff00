package core

import "math/rand/v2"

// RNG produces reproducible random fills: the same seed always yields the
// same grid.
type RNG struct {
	r *rand.Rand
}

// NewRNG returns an RNG seeded with seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Fill replaces the contents of g, making each cell alive with probability
// density.
func (r *RNG) Fill(g *Grid, density float64) {
	for i := range g.cells {
		g.cells[i] = Dead
		if r.Chance(density) {
			g.cells[i] = Alive
		}
	}
}
