package game

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func newSim(t *testing.T, opts Options) *Simulation {
	t.Helper()
	s, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = s.Stop() })
	return s
}

func gridOf(t *testing.T, size int, seed model.Seed) *model.Grid {
	t.Helper()
	g, err := model.NewGrid(size, seed)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func TestNewValidatesOptions(t *testing.T) {
	if _, err := New(Options{Size: 0}); !errors.Is(err, model.ErrInvalidDimension) {
		t.Fatalf("size 0 err = %v, want ErrInvalidDimension", err)
	}
	if _, err := New(Options{Size: 5, Interval: -time.Second}); err == nil {
		t.Fatalf("expected an error for a negative interval")
	}

	s := newSim(t, Options{Size: 5})
	if s.opts.Interval != DefaultInterval {
		t.Fatalf("interval = %v, expected %v", s.opts.Interval, DefaultInterval)
	}
}

func TestStepAdvancesOneGeneration(t *testing.T) {
	s := newSim(t, Options{Size: 5, Seed: model.Blinker(1, 2), Interval: time.Hour})

	if err := s.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if s.Generation() != 1 {
		t.Fatalf("generation = %d, expected 1", s.Generation())
	}
	want := gridOf(t, 5, model.Seed{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}})
	if !s.Snapshot().Equal(want) {
		t.Fatalf("unexpected generation %v", s.Snapshot().LiveCells())
	}
}

func TestActivate(t *testing.T) {
	s := newSim(t, Options{Size: 4, Interval: time.Hour})

	if err := s.Activate(3, 0); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if alive, _ := s.Snapshot().GetState(3, 0); !alive {
		t.Fatalf("activated cell is dead")
	}

	for _, c := range []model.Coord{{X: 4, Y: 0}, {X: 0, Y: 4}, {X: -1, Y: 2}} {
		if err := s.Activate(c.X, c.Y); !errors.Is(err, model.ErrOutOfRangeCoordinate) {
			t.Fatalf("Activate(%d,%d) err = %v, want ErrOutOfRangeCoordinate", c.X, c.Y, err)
		}
	}
	if got := s.Snapshot().CountLivingCells(); got != 1 {
		t.Fatalf("living cells = %d, expected 1", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newSim(t, Options{Size: 4, Interval: time.Hour})
	snap := s.Snapshot()
	if err := snap.SetState(1, 1, true); err != nil {
		t.Fatalf("SetState: %v", err)
	}
	if alive, _ := s.Snapshot().GetState(1, 1); alive {
		t.Fatalf("mutating a snapshot changed the simulation")
	}
}

func TestStartReseedsAfterStop(t *testing.T) {
	seed := model.Blinker(1, 2)
	s := newSim(t, Options{Size: 5, Seed: seed, Interval: time.Hour})

	for i := 0; i < 3; i++ {
		if err := s.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	if err := s.Activate(0, 0); err != nil {
		t.Fatalf("Activate: %v", err)
	}

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !s.Running() {
		t.Fatalf("Running = false after Start")
	}
	if err := s.Start(context.Background()); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second Start err = %v, want ErrAlreadyRunning", err)
	}
	if s.Generation() != 0 {
		t.Fatalf("generation = %d after Start, expected 0", s.Generation())
	}
	if !s.Snapshot().Equal(gridOf(t, 5, seed)) {
		t.Fatalf("Start did not reseed: %v", s.Snapshot().LiveCells())
	}

	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
	if s.Running() {
		t.Fatalf("Running = true after Stop")
	}
}

func TestTickLoop(t *testing.T) {
	s := newSim(t, Options{Size: 8, Seed: model.Blinker(2, 3), Interval: 2 * time.Millisecond})

	ticks := make(chan int, 64)
	s.OnTick(func(generation int, g *model.Grid) {
		if g.Size() != 8 {
			t.Errorf("observer got size %d", g.Size())
		}
		select {
		case ticks <- generation:
		default:
		}
	})

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for last := 0; last < 3; {
		select {
		case gen := <-ticks:
			if gen <= last {
				t.Fatalf("tick generation %d after %d", gen, last)
			}
			last = gen
		case <-deadline:
			t.Fatalf("timed out waiting for ticks")
		}
	}

	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	stopped := s.Generation()
	time.Sleep(20 * time.Millisecond)
	if s.Generation() != stopped {
		t.Fatalf("generation advanced after Stop: %d -> %d", stopped, s.Generation())
	}
}

func TestContextCancelEndsLoop(t *testing.T) {
	s := newSim(t, Options{Size: 5, Interval: time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	cancel()

	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	stopped := s.Generation()
	time.Sleep(10 * time.Millisecond)
	if s.Generation() != stopped {
		t.Fatalf("generation advanced after cancel")
	}
}

func TestWorkersAndPoolMatchPlainAdvance(t *testing.T) {
	seed := model.Glider(1, 1)
	s := newSim(t, Options{Size: 12, Seed: seed, Interval: time.Hour, Workers: 4, UsePool: true})
	want := gridOf(t, 12, seed)

	for i := 0; i < 8; i++ {
		if err := s.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
		next, err := want.Advance()
		if err != nil {
			t.Fatalf("Advance: %v", err)
		}
		want = next

		if !s.Snapshot().Equal(want) {
			t.Fatalf("generation %d differs from sequential advance", i+1)
		}
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		seed model.Seed
		want Status
	}{
		{"still life", model.Block(2, 2), StatusStagnant},
		{"lonely cell", model.Seed{{X: 3, Y: 3}}, StatusExtinct},
		{"glider", model.Glider(0, 0), StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSim(t, Options{Size: 10, Seed: tt.seed, Interval: time.Hour})
			if err := s.Step(); err != nil {
				t.Fatalf("Step: %v", err)
			}
			if got := s.Status(); got != tt.want {
				t.Fatalf("Status = %q, want %q", got, tt.want)
			}
			if stats := s.Stats(); stats.TotalGenerations != 1 {
				t.Fatalf("stats generations = %d, expected 1", stats.TotalGenerations)
			}
		})
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := utils.DefaultConfig()
	cfg.Workers = 2

	opts, err := OptionsFromConfig(cfg)
	if err != nil {
		t.Fatalf("OptionsFromConfig: %v", err)
	}
	if opts.Size != 20 || opts.Interval != 600*time.Millisecond || opts.Workers != 2 || !opts.UsePool {
		t.Fatalf("unexpected options %+v", opts)
	}
	if opts.Seed.String() != model.DefaultSeed().String() {
		t.Fatalf("seed = %q", opts.Seed.String())
	}

	cfg.CellPixels = 0
	if _, err := OptionsFromConfig(cfg); !errors.Is(err, model.ErrInvalidDimension) {
		t.Fatalf("err = %v, want ErrInvalidDimension", err)
	}
}
