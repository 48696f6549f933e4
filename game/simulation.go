// Package game drives a model.Grid on a fixed interval.
//
// Simulation owns the current generation. Every advance, activation and
// snapshot runs under one mutex, so an external mutation never lands in the
// middle of a scan and readers only ever observe completed generations.
package game

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// DefaultInterval is the tick period used when Options.Interval is zero
const DefaultInterval = 600 * time.Millisecond

// ErrAlreadyRunning is returned by Start while the tick loop is active
var ErrAlreadyRunning = errors.New("simulation already running")

// Status summarizes the current generation
type Status string

const (
	StatusActive   Status = "Active"
	StatusStagnant Status = "Stagnant"
	StatusExtinct  Status = "Extinct"
)

// Options configures a Simulation
type Options struct {
	Size     int
	Seed     model.Seed
	Interval time.Duration
	Workers  int
	UsePool  bool
}

// OptionsFromConfig derives simulation options from the user configuration
func OptionsFromConfig(cfg utils.Config) (Options, error) {
	size, err := cfg.GridSize()
	if err != nil {
		return Options{}, errors.Wrap(err, "[OptionsFromConfig] bad grid size")
	}
	seed, err := cfg.SeedCoords()
	if err != nil {
		return Options{}, errors.Wrap(err, "[OptionsFromConfig] bad seed")
	}
	return Options{
		Size:     size,
		Seed:     seed,
		Interval: cfg.TickInterval,
		Workers:  cfg.Workers,
		UsePool:  cfg.UseMemoryPool,
	}, nil
}

// TickFunc observes every completed generation. g is a private copy.
// A TickFunc must not call Stop.
type TickFunc func(generation int, g *model.Grid)

// Simulation is the scheduler around a grid: it issues periodic advances while running
type Simulation struct {
	opts Options
	pool *model.GridPool

	mu         sync.Mutex
	grid       *model.Grid
	generation int
	history    model.History
	stats      *utils.Stats
	lastTick   time.Time
	observers  []TickFunc

	// loop lifecycle
	runMu   sync.Mutex
	cancel  context.CancelFunc
	running *errgroup.Group
}

// New validates opts and seeds the first generation
func New(opts Options) (*Simulation, error) {
	if opts.Size <= 0 {
		return nil, errors.Wrapf(model.ErrInvalidDimension, "[New] size must be positive, got %d", opts.Size)
	}
	if opts.Interval < 0 {
		return nil, errors.Errorf("[New] negative interval %v", opts.Interval)
	}
	if opts.Interval == 0 {
		opts.Interval = DefaultInterval
	}

	s := &Simulation{opts: opts}
	if opts.UsePool {
		s.pool = model.NewGridPool()
	}
	if err := s.reseed(); err != nil {
		return nil, err
	}
	return s, nil
}

// reseed replaces the current grid with a fresh one built from the configured seed
func (s *Simulation) reseed() error {
	grid, err := model.NewGrid(s.opts.Size, s.opts.Seed)
	if err != nil {
		return errors.Wrap(err, "[reseed] failed to build grid")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	model.GridToPool(s.grid, s.pool)
	s.grid = grid
	s.generation = 0
	s.history.Reset()
	s.stats = utils.NewStats()
	s.lastTick = time.Now()
	return nil
}

// OnTick registers an observer called after every completed generation
func (s *Simulation) OnTick(fn TickFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Start seeds a fresh grid and begins advancing it every interval until Stop
// is called or ctx is done. A start after a stop does not resume.
func (s *Simulation) Start(ctx context.Context) error {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	if s.running != nil {
		return ErrAlreadyRunning
	}
	if err := s.reseed(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	eg := &errgroup.Group{}
	eg.Go(func() error {
		return s.loop(ctx)
	})

	s.cancel = cancel
	s.running = eg
	return nil
}

func (s *Simulation) loop(ctx context.Context) error {
	ticker := time.NewTicker(s.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.Step(); err != nil {
				return err
			}
		}
	}
}

// Stop halts the tick loop and waits for it to exit. The grid keeps the last
// completed generation. Stop returns the error that ended the loop, if any.
func (s *Simulation) Stop() error {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	if s.running == nil {
		return nil
	}

	s.cancel()
	err := s.running.Wait()
	s.running = nil
	s.cancel = nil
	return errors.Wrap(err, "[Stop] tick loop failed")
}

// Running reports whether Start has been called without a matching Stop
func (s *Simulation) Running() bool {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	return s.running != nil
}

// Step advances exactly one generation
func (s *Simulation) Step() error {
	s.mu.Lock()

	next, err := s.grid.NextGeneration(model.AdvanceOptions{Pool: s.pool, Workers: s.opts.Workers})
	if err != nil {
		s.mu.Unlock()
		return errors.Wrapf(err, "[Step] generation %d", s.generation)
	}

	s.history.Record(s.grid)
	model.GridToPool(s.grid, s.pool)
	s.grid = next
	s.generation++

	now := time.Now()
	s.stats.Update(s.generation, next.CountLivingCells(), now.Sub(s.lastTick))
	s.lastTick = now

	var (
		generation = s.generation
		observers  = append([]TickFunc(nil), s.observers...)
		snapshot   *model.Grid
	)
	if len(observers) > 0 {
		snapshot = next.Clone()
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn(generation, snapshot)
	}
	return nil
}

// Activate marks the cell at (x, y) alive, as a click on the board does
func (s *Simulation) Activate(x, y int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.grid.SetState(x, y, true); err != nil {
		return errors.Wrap(err, "[Activate] rejected")
	}
	return nil
}

// Snapshot returns a copy of the current generation
func (s *Simulation) Snapshot() *model.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Clone()
}

// Generation returns the number of generations since the last seeding
func (s *Simulation) Generation() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Size returns the grid side length in cells
func (s *Simulation) Size() int {
	return s.opts.Size
}

// Stats returns a copy of the runtime statistics
func (s *Simulation) Stats() utils.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.stats
}

// Status reports whether the current generation is extinct, repeating, or still changing
func (s *Simulation) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.grid.CountLivingCells() == 0:
		return StatusExtinct
	case s.history.IsStagnant(s.grid):
		return StatusStagnant
	}
	return StatusActive
}
