package model

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Coord addresses a single cell as [x][y]
type Coord struct {
	X, Y int
}

// Seed is the set of coordinates marked alive when a grid is created
type Seed []Coord

// Offset returns a copy of the seed shifted by (dx, dy)
func (s Seed) Offset(dx, dy int) Seed {
	out := make(Seed, len(s))
	for i, c := range s {
		out[i] = Coord{X: c.X + dx, Y: c.Y + dy}
	}
	return out
}

// Sort orders the seed by x, then y
func (s Seed) Sort() {
	sort.Slice(s, func(i, j int) bool {
		if s[i].X != s[j].X {
			return s[i].X < s[j].X
		}
		return s[i].Y < s[j].Y
	})
}

// String formats the seed in the same "x,y;x,y" form accepted by ParseSeed
func (s Seed) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
	}
	return strings.Join(parts, ";")
}

// ParseSeed parses a list of coordinates such as "6,10;7,10;8,10".
// An empty string yields an empty seed.
func ParseSeed(raw string) (Seed, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Seed{}, nil
	}

	var seed Seed
	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, errors.Wrapf(ErrInvalidSeed, "[ParseSeed] missing comma in %q", pair)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidSeed, "[ParseSeed] bad x in %q: %v", pair, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidSeed, "[ParseSeed] bad y in %q: %v", pair, err)
		}
		seed = append(seed, Coord{X: x, Y: y})
	}
	return seed, nil
}
