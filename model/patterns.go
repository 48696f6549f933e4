package model

import (
	"strings"

	"github.com/pkg/errors"
)

// Blinker returns a horizontal period-2 oscillator starting at (x, y)
func Blinker(x, y int) Seed {
	return Seed{{x, y}, {x + 1, y}, {x + 2, y}}
}

// Block returns a 2x2 still life with its top-left cell at (x, y)
func Block(x, y int) Seed {
	return Seed{{x, y}, {x + 1, y}, {x, y + 1}, {x + 1, y + 1}}
}

// Glider returns a glider travelling toward +x,+y from the 3x3 box at (x, y)
func Glider(x, y int) Seed {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	var seed Seed
	for dy, row := range pattern {
		for dx, cell := range row {
			if cell {
				seed = append(seed, Coord{X: x + dx, Y: y + dy})
			}
		}
	}
	return seed
}

// DefaultSeed is the starting shape of the classic 20x20 board: a blinker on row 10
func DefaultSeed() Seed {
	return Blinker(6, 10)
}

// PatternSeed builds a named pattern anchored at (x, y).
// "default" ignores the anchor and returns DefaultSeed.
func PatternSeed(name string, x, y int) (Seed, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return DefaultSeed(), nil
	case "blinker":
		return Blinker(x, y), nil
	case "block":
		return Block(x, y), nil
	case "glider":
		return Glider(x, y), nil
	case "empty":
		return Seed{}, nil
	}
	return nil, errors.Wrapf(ErrInvalidSeed, "[PatternSeed] unknown pattern %q", name)
}
