package gui

import (
	"image/color"

	"github.com/sheikhrachel/go-life/model"
)

var (
	aliveColor  = color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff}
	deadColor   = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	borderColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// minBorderedCell is the smallest cell that still gets a 1px border
const minBorderedCell = 3

// boardPixels returns the side length of the rendered board
func boardPixels(size, cellPixels int) int {
	return size * cellPixels
}

// cellAt maps a board pixel to the cell under it. ok is false outside the board.
func cellAt(px, py, size, cellPixels int) (x, y int, ok bool) {
	if cellPixels <= 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/cellPixels, py/cellPixels
	if x >= size || y >= size {
		return 0, 0, false
	}
	return x, y, true
}

// fillCellsRGBA paints every cell of g as a cellPixels square into buf, which must
// hold 4*side*side bytes for side = size*cellPixels.
func fillCellsRGBA(buf []byte, g *model.Grid, cellPixels int) {
	side := boardPixels(g.Size(), cellPixels)
	bordered := cellPixels >= minBorderedCell

	for py := 0; py < side; py++ {
		for px := 0; px < side; px++ {
			var (
				lx, ly = px % cellPixels, py % cellPixels
				col    = deadColor
			)
			alive, _ := g.GetState(px/cellPixels, py/cellPixels)
			switch {
			case bordered && (lx == 0 || ly == 0 || lx == cellPixels-1 || ly == cellPixels-1):
				col = borderColor
			case alive:
				col = aliveColor
			}

			base := (py*side + px) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
