package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Config holds the configuration for the game
type Config struct {
	GridPixels     int           `json:"grid_pixels"`
	CellPixels     int           `json:"cell_pixels"`
	TickInterval   time.Duration `json:"tick_interval"`
	Pattern        string        `json:"pattern"`
	PatternX       int           `json:"pattern_x"`
	PatternY       int           `json:"pattern_y"`
	Seed           string        `json:"seed"`
	Workers        int           `json:"workers"`
	UseMemoryPool  bool          `json:"use_memory_pool"`
	MaxGenerations int           `json:"max_generations"`
	ClearScreen    bool          `json:"clear_screen"`

	AutoRestart         bool `json:"auto_restart"`
	StagnationThreshold int  `json:"stagnation_threshold"`
}

// DefaultConfig returns the classic 200px board of 10px cells ticking every 600ms
func DefaultConfig() Config {
	return Config{
		GridPixels:     200,
		CellPixels:     10,
		TickInterval:   600 * time.Millisecond,
		Pattern:        "default",
		Workers:        1,
		UseMemoryPool:  true,
		MaxGenerations: 0, // Run until interrupted
		ClearScreen:    true,

		AutoRestart:         false,
		StagnationThreshold: 5,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.GridPixels, "grid-pixels", c.GridPixels, "board width and height in pixels")
	fs.IntVar(&c.CellPixels, "cell-pixels", c.CellPixels, "cell width and height in pixels")
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "time between generations")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern: default, blinker, block, glider, empty")
	fs.IntVar(&c.PatternX, "pattern-x", c.PatternX, "x anchor for the seed pattern")
	fs.IntVar(&c.PatternY, "pattern-y", c.PatternY, "y anchor for the seed pattern")
	fs.StringVar(&c.Seed, "seed", c.Seed, `explicit live cells "x,y;x,y" (overrides -pattern)`)
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines computing each generation")
	fs.BoolVar(&c.UseMemoryPool, "pool", c.UseMemoryPool, "recycle generation buffers")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations (0 = unlimited)")
	fs.BoolVar(&c.ClearScreen, "clear", c.ClearScreen, "clear the terminal between frames")
	fs.BoolVar(&c.AutoRestart, "auto-restart", c.AutoRestart, "reseed when the board dies out or stagnates")
	fs.IntVar(&c.StagnationThreshold, "stagnation-threshold", c.StagnationThreshold, "stagnant frames before a restart")
}

// GridSize returns the side length in cells, GridPixels / CellPixels
func (c Config) GridSize() (int, error) {
	if c.GridPixels <= 0 || c.CellPixels <= 0 {
		return 0, errors.Wrapf(model.ErrInvalidDimension,
			"[GridSize] grid_pixels=%d cell_pixels=%d must be positive", c.GridPixels, c.CellPixels)
	}

	size := c.GridPixels / c.CellPixels
	if size == 0 {
		return 0, errors.Wrapf(model.ErrInvalidDimension,
			"[GridSize] cell_pixels=%d larger than grid_pixels=%d", c.CellPixels, c.GridPixels)
	}
	return size, nil
}

// SeedCoords returns the explicit seed when set, otherwise the named pattern
func (c Config) SeedCoords() (model.Seed, error) {
	if c.Seed != "" {
		seed, err := model.ParseSeed(c.Seed)
		return seed, errors.Wrap(err, "[SeedCoords] invalid seed")
	}

	seed, err := model.PatternSeed(c.Pattern, c.PatternX, c.PatternY)
	return seed, errors.Wrap(err, "[SeedCoords] invalid pattern")
}

// Resolve builds the configuration from defaults, then the JSON file named by
// -config, then any flags set explicitly in args. A missing file is not an
// error; fromFile reports whether one was read.
func Resolve(fs *flag.FlagSet, args []string) (config Config, fromFile bool, err error) {
	config = DefaultConfig()
	path := fs.String("config", "config.json", "optional JSON configuration file")
	config.Bind(fs)

	if err = fs.Parse(args); err != nil {
		return config, false, errors.Wrap(err, "[Resolve] failed to parse flags")
	}

	fileConfig, err := LoadConfig(*path)
	if errors.Is(err, os.ErrNotExist) {
		return config, false, nil
	}
	if err != nil {
		return config, false, err
	}

	overlay := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
	fileConfig.Bind(overlay)
	fs.Visit(func(f *flag.Flag) {
		if overlay.Lookup(f.Name) == nil {
			return
		}
		if setErr := overlay.Set(f.Name, f.Value.String()); setErr != nil && err == nil {
			err = errors.Wrapf(setErr, "[Resolve] failed to apply flag -%s", f.Name)
		}
	})
	return fileConfig, true, err
}
