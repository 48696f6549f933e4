package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// Renderer draws a grid generation
type Renderer interface {
	Render(g *Grid) error
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Render writes one line per row y, one two-character block per cell x
func (r *TerminalRenderer) Render(g *Grid) error {
	var b strings.Builder
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if g.cells[x][y] {
				b.WriteString(gridPosBlock)
			} else {
				b.WriteString(gridPosEmpty)
			}
		}
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(r.Out, b.String()); err != nil {
		return errors.Wrap(err, "[Render] failed to write grid")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error clearing terminal:", err)
	}
}
