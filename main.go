package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// frame is one completed generation handed from the tick loop to the renderer
type frame struct {
	generation int
	grid       *model.Grid
}

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, fromFile, err := utils.Resolve(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if !fromFile {
		fmt.Println("Using default configuration (config.json not found)")
	}

	// Initialize game
	sim, renderer, err := initializeGame(config)
	if err != nil {
		log.Fatal(err)
	}
	displayGameInfo(config, sim)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The tick loop never waits on the terminal; a slow frame is simply skipped
	frames := make(chan frame, 1)
	sim.OnTick(func(generation int, g *model.Grid) {
		select {
		case frames <- frame{generation: generation, grid: g}:
		default:
		}
	})

	if err := sim.Start(ctx); err != nil {
		log.Fatal(err)
	}
	drawFrame(config, renderer, sim, frame{grid: sim.Snapshot()})

	var (
		stagnantCount  = 0
		totalGenerated = 0
	)

loop:
	for {
		select {
		case <-ctx.Done():
			fmt.Println("\n🛑 Shutting down gracefully...")
			break loop
		case f := <-frames:
			drawFrame(config, renderer, sim, f)
			totalGenerated++

			// Check for max generations limit
			if config.MaxGenerations > 0 && f.generation >= config.MaxGenerations {
				fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
				break loop
			}

			if sim.Status() == game.StatusStagnant {
				stagnantCount++
			} else {
				stagnantCount = 0
			}

			shouldRestart, restartReason := checkRestartConditions(f.grid.CountLivingCells(), stagnantCount, config)
			if shouldRestart && config.AutoRestart {
				fmt.Printf("🔄 Restarting due to %s...\n", restartReason)
				if err := restartGame(ctx, sim); err != nil {
					log.Fatal(err)
				}
				stagnantCount = 0
			}
		}
	}

	if err := sim.Stop(); err != nil {
		log.Fatal(err)
	}

	stats := sim.Stats()
	fmt.Printf("Final stats: %d generations drawn in %.1f seconds\n",
		totalGenerated, stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
