//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"flames/internal/app"
	"flames/internal/core"
	_ "flames/internal/sims/flame"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	core.SetLogger(app.NewLogger(os.Stderr, cfg.Verbose))

	sim, err := app.NewSim(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("flames - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
