//go:build !ebiten

package app

import (
	"fmt"
	"log"

	"conways-life/internal/config"
	"conways-life/internal/sim"
)

// HUDWidth matches the GUI build so callers can size windows either way.
const HUDWidth = 240

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New reports that the GUI requires the ebiten build tag.
func New(config.Config, *log.Logger) (*Game, error) {
	return nil, fmt.Errorf("app.New requires building with the 'ebiten' tag")
}

// Controller returns nil in the headless build.
func (g *Game) Controller() *sim.Controller { return nil }

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error {
	return fmt.Errorf("app.Game.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
