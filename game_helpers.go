package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// initializeGame sets up the simulation and the terminal renderer
func initializeGame(config utils.Config) (*game.Simulation, *model.TerminalRenderer, error) {
	opts, err := game.OptionsFromConfig(config)
	if err != nil {
		return nil, nil, errors.Wrap(err, "[initializeGame] invalid configuration")
	}

	sim, err := game.New(opts)
	if err != nil {
		return nil, nil, errors.Wrap(err, "[initializeGame] failed to create simulation")
	}

	return sim, model.NewTerminalRenderer(), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, sim *game.Simulation) {
	fmt.Printf("Features: Memory Pool: %v, Workers: %d, Auto restart: %v\n",
		config.UseMemoryPool, config.Workers, config.AutoRestart)
	fmt.Printf("Grid: %dx%d | Tick: %v | Initial living cells: %d\n",
		sim.Size(), sim.Size(), config.TickInterval, sim.Snapshot().CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// drawFrame clears the terminal and renders one generation with its status
func drawFrame(config utils.Config, renderer *model.TerminalRenderer, sim *game.Simulation, f frame) {
	if config.ClearScreen {
		renderer.Clear()
	}

	displayGameStatus(f, sim)
	if err := renderer.Render(f.grid); err != nil {
		fmt.Printf("Error rendering generation %d: %+v\n", f.generation, err)
	}
}

// displayGameStatus shows the current game status
func displayGameStatus(f frame, sim *game.Simulation) {
	var (
		livingCells = f.grid.CountLivingCells()
		density     = float64(livingCells) / float64(f.grid.Size()*f.grid.Size()) * 100
		stats       = sim.Stats()
	)

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		f.generation, livingCells, density, sim.Status())
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame stops the tick loop and starts it again on a freshly seeded grid
func restartGame(ctx context.Context, sim *game.Simulation) error {
	if err := sim.Stop(); err != nil {
		return errors.Wrap(err, "[restartGame] failed to stop")
	}
	if err := sim.Start(ctx); err != nil {
		return errors.Wrap(err, "[restartGame] failed to start")
	}

	fmt.Printf("✨ Grid reseeded! Living cells: %d\n", sim.Snapshot().CountLivingCells())
	return nil
}
