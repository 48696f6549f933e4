package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Grid is a square board of size*size cells indexed [x][y].
// A Grid is not safe for concurrent use; callers driving a tick loop
// must serialize Advance and SetState.
type Grid struct {
	size  int
	cells [][]bool
}

// AdvanceOptions tunes how the next generation is computed
type AdvanceOptions struct {
	// Pool, when set, supplies the output buffer
	Pool *GridPool
	// Workers > 1 splits the columns into disjoint bands computed concurrently
	Workers int
}

// NewGrid creates a size*size grid with every in-range seed coordinate alive.
// Seed coordinates outside the grid are ignored.
func NewGrid(size int, seed Seed) (*Grid, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] size must be positive, got %d", size)
	}

	g := newEmptyGrid(size)
	for _, c := range seed {
		if g.inBounds(c.X, c.Y) {
			g.cells[c.X][c.Y] = true
		}
	}
	return g, nil
}

func newEmptyGrid(size int) *Grid {
	g := &Grid{}
	g.Reset(size)
	return g
}

// Size returns the side length of the grid in cells
func (g *Grid) Size() int {
	return g.size
}

// Reset resizes the grid to size*size and kills every cell
func (g *Grid) Reset(size int) {
	g.size = size

	if len(g.cells) != size {
		g.cells = make([][]bool, size)
	}
	for x := range g.cells {
		if len(g.cells[x]) != size {
			g.cells[x] = make([]bool, size)
			continue
		}
		clear(g.cells[x])
	}
}

// Clear kills every cell
func (g *Grid) Clear() {
	for x := range g.cells {
		clear(g.cells[x])
	}
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// GetState returns whether the cell at (x, y) is alive
func (g *Grid) GetState(x, y int) (bool, error) {
	if !g.inBounds(x, y) {
		return false, errors.Wrapf(ErrOutOfRangeCoordinate, "[GetState] (%d,%d) outside [0,%d)", x, y, g.size)
	}
	return g.cells[x][y], nil
}

// SetState sets a single cell without touching the rest of the grid
func (g *Grid) SetState(x, y int, alive bool) error {
	if !g.inBounds(x, y) {
		return errors.Wrapf(ErrOutOfRangeCoordinate, "[SetState] (%d,%d) outside [0,%d)", x, y, g.size)
	}
	g.cells[x][y] = alive
	return nil
}

// CountLiveNeighbors counts living neighbors of an in-range cell.
// Edges are clamped, not wrapped: corners see 3 candidates, edges 5, interior 8.
func (g *Grid) CountLiveNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.size-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.size-1, y+1)

	for nx := minX; nx <= maxX; nx++ {
		for ny := minY; ny <= maxY; ny++ {
			if nx == x && ny == y {
				continue
			}
			if g.cells[nx][ny] {
				count++
			}
		}
	}

	return count
}

// validate checks the size*size invariant
func (g *Grid) validate() error {
	if g.size <= 0 || len(g.cells) != g.size {
		return errors.Wrapf(ErrCorruptGrid, "[validate] expected %d columns, have %d", g.size, len(g.cells))
	}
	for x, col := range g.cells {
		if len(col) != g.size {
			return errors.Wrapf(ErrCorruptGrid, "[validate] column %d has %d cells, expected %d", x, len(col), g.size)
		}
	}
	return nil
}

// Advance computes the next generation into a new grid.
// The receiver is only read, so it still holds the previous generation afterwards.
func (g *Grid) Advance() (*Grid, error) {
	return g.NextGeneration(AdvanceOptions{})
}

// NextGeneration computes the next generation according to opts
func (g *Grid) NextGeneration(opts AdvanceOptions) (*Grid, error) {
	if err := g.validate(); err != nil {
		return nil, errors.Wrap(err, "[NextGeneration] refusing to advance")
	}

	var next *Grid
	if opts.Pool != nil {
		next = opts.Pool.Get(g.size)
	} else {
		next = newEmptyGrid(g.size)
	}

	if opts.Workers <= 1 {
		g.advanceColumns(next, 0, g.size)
		return next, nil
	}

	var (
		eg            errgroup.Group
		colsPerWorker = (g.size + opts.Workers - 1) / opts.Workers // Ceiling division
	)

	for i := 0; i < opts.Workers; i++ {
		var (
			startCol = i * colsPerWorker
			endCol   = min(startCol+colsPerWorker, g.size)
		)
		if startCol >= g.size {
			break
		}

		eg.Go(func() error {
			g.advanceColumns(next, startCol, endCol)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		GridToPool(next, opts.Pool)
		return nil, errors.Wrap(err, "[NextGeneration] parallel processing failed")
	}

	return next, nil
}

// advanceColumns writes next-generation states for columns [startCol, endCol)
// reading only from g
func (g *Grid) advanceColumns(next *Grid, startCol, endCol int) {
	for x := startCol; x < endCol; x++ {
		for y := 0; y < g.size; y++ {
			next.cells[x][y] = rules.ApplyConwayRules(g.CountLiveNeighbors(x, y), g.cells[x][y])
		}
	}
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{size: g.size, cells: make([][]bool, len(g.cells))}
	for x, col := range g.cells {
		c.cells[x] = append([]bool(nil), col...)
	}
	return c
}

// Equal reports whether both grids have the same size and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for x := 0; x < g.size; x++ {
		for y := 0; y < g.size; y++ {
			if g.cells[x][y] != other.cells[x][y] {
				return false
			}
		}
	}
	return true
}

// LiveCells returns the coordinates of every living cell, ordered by x then y
func (g *Grid) LiveCells() Seed {
	live := Seed{}
	for x := 0; x < g.size; x++ {
		for y := 0; y < g.size; y++ {
			if g.cells[x][y] {
				live = append(live, Coord{X: x, Y: y})
			}
		}
	}
	return live
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for x := 0; x < g.size; x++ {
		for y := 0; y < g.size; y++ {
			if g.cells[x][y] {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 hash of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	for x := 0; x < g.size; x++ {
		for y := 0; y < g.size; y++ {
			if g.cells[x][y] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
