//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/gui"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	cfg, _, err := utils.Resolve(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	opts, err := game.OptionsFromConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	sim, err := game.New(opts)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := sim.Start(ctx); err != nil {
		log.Fatal(err)
	}
	defer sim.Stop()

	g := gui.New(ctx, sim, cfg.CellPixels)
	w, h := g.Layout(0, 0)

	ebiten.SetWindowTitle("go-life")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
