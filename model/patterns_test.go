package model

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseSeed(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"", "", false},
		{"6,10;7,10;8,10", "6,10;7,10;8,10", false},
		{" 1 , 2 ; 3,4 ;", "1,2;3,4", false},
		{"-1,5", "-1,5", false},
		{"1;2", "", true},
		{"a,2", "", true},
		{"1,b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseSeed(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSeed) {
					t.Fatalf("ParseSeed(%q) err = %v, want ErrInvalidSeed", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSeed(%q): %v", tt.raw, err)
			}
			if got.String() != tt.want {
				t.Fatalf("ParseSeed(%q) = %q, want %q", tt.raw, got.String(), tt.want)
			}
		})
	}
}

func TestPatternSeed(t *testing.T) {
	got, err := PatternSeed("default", 0, 0)
	if err != nil {
		t.Fatalf("PatternSeed: %v", err)
	}
	if got.String() != "6,10;7,10;8,10" {
		t.Fatalf("default seed = %q", got.String())
	}

	glider, err := PatternSeed("Glider", 1, 1)
	if err != nil {
		t.Fatalf("PatternSeed: %v", err)
	}
	glider.Sort()
	if glider.String() != "1,3;2,1;2,3;3,2;3,3" {
		t.Fatalf("glider seed = %q", glider.String())
	}

	if _, err := PatternSeed("spaceship", 0, 0); !errors.Is(err, ErrInvalidSeed) {
		t.Fatalf("unknown pattern err = %v, want ErrInvalidSeed", err)
	}
}

func TestDefaultSeedOscillatesOnClassicBoard(t *testing.T) {
	g := mustGrid(t, 20, DefaultSeed())

	g = mustAdvance(t, g)
	expectAlive(t, g, Coord{7, 9}, Coord{7, 10}, Coord{7, 11})

	g = mustAdvance(t, g)
	expectAlive(t, g, DefaultSeed()...)
}

func TestGliderTravels(t *testing.T) {
	g := mustGrid(t, 10, Glider(0, 0))
	for i := 0; i < 4; i++ {
		g = mustAdvance(t, g)
	}
	expectAlive(t, g, Glider(1, 1)...)
}

func TestSeedOffset(t *testing.T) {
	got := Block(0, 0).Offset(2, 3)
	if got.String() != "2,3;3,3;2,4;3,4" {
		t.Fatalf("Offset = %q", got.String())
	}
}
