//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"gridsnake/internal/app"
	"gridsnake/internal/snake"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.Normalize()

	var logger *log.Logger
	if cfg.Verbose {
		logger = log.New(os.Stderr, "snake: ", log.LstdFlags)
	}

	sim := snake.NewWithSeed(cfg.ResolveSeed())
	game := app.New(sim, cfg, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("snake")
	ebiten.SetTPS(cfg.FPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
