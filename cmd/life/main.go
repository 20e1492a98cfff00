//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"conways-life/internal/app"
	"conways-life/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	logger := log.New(os.Stderr, "life: ", log.LstdFlags)
	game, err := app.New(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(cfg.Width+app.HUDWidth, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
