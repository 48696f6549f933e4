//go:build ebiten

package gui

import (
	"context"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
)

const hudHeight = 20

var hudColor = color.RGBA{R: 40, G: 40, B: 40, A: 255}

// Game adapts a game.Simulation to the ebiten.Game interface.
// Clicking a cell brings it to life, Space starts and stops the simulation,
// N steps once while stopped and Q or Esc quits.
type Game struct {
	ctx  context.Context
	sim  *game.Simulation
	cell int
	side int

	img *ebiten.Image
	buf []byte
}

// New constructs a Game drawing each cell as a cellPixels square
func New(ctx context.Context, sim *game.Simulation, cellPixels int) *Game {
	side := boardPixels(sim.Size(), cellPixels)
	return &Game{
		ctx:  ctx,
		sim:  sim,
		cell: cellPixels,
		side: side,
		img:  ebiten.NewImage(side, side),
		buf:  make([]byte, 4*side*side),
	}
}

// Update handles input. Generations are advanced by the simulation's own ticker.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.sim.Running() {
			if err := g.sim.Stop(); err != nil {
				return err
			}
		} else if err := g.sim.Start(g.ctx); err != nil {
			return err
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !g.sim.Running() {
		if err := g.sim.Step(); err != nil {
			return err
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		px, py := ebiten.CursorPosition()
		if x, y, ok := cellAt(px, py, g.sim.Size(), g.cell); ok {
			if err := g.sim.Activate(x, y); err != nil {
				log.Printf("activate (%d,%d): %v", x, y, err)
			}
		}
	}
	return nil
}

// Draw renders the latest completed generation and a status line
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	snap := g.sim.Snapshot()
	fillCellsRGBA(g.buf, snap, g.cell)
	g.img.WritePixels(g.buf)
	screen.DrawImage(g.img, nil)

	text.Draw(screen, g.statusLine(snap), basicfont.Face7x13, 4, g.side+14, hudColor)
}

func (g *Game) statusLine(snap *model.Grid) string {
	state := "stopped"
	if g.sim.Running() {
		state = "running"
	}
	return fmt.Sprintf("gen %d  alive %d  %s  %s",
		g.sim.Generation(), snap.CountLivingCells(), g.sim.Status(), state)
}

// Layout returns the board plus the status line
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.side, g.side + hudHeight
}
