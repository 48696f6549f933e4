package model

const historyDepth = 5

// History keeps hashes of recent generations for cycle detection
type History struct {
	hashes []string
}

// Record adds the grid's current state to history, keeping the last few entries
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())

	if len(h.hashes) > historyDepth {
		h.hashes = h.hashes[1:]
	}
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = nil
}

// IsStagnant reports whether g repeats one of the last three recorded generations,
// which covers still lifes and oscillators with period up to 3
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) == 0 {
		return false
	}

	current := g.Hash()
	for back := 1; back <= 3 && back <= len(h.hashes); back++ {
		if h.hashes[len(h.hashes)-back] == current {
			return true
		}
	}
	return false
}
