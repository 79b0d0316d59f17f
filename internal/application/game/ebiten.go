package game

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Update implements ebiten.Game. Escape asks the scene manager to quit and
// F3 toggles the frame rate overlay.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.scenes.Quit()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showFPS = !g.showFPS
	}

	running, err := g.Tick()
	if err != nil {
		return err
	}
	if !running {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game by copying the canvas drawn during Tick.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas != nil {
		screen.DrawImage(g.canvas, nil)
	}
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS %d  TPS %.1f", g.FrameRate(), ebiten.ActualTPS()))
	}
}

// Layout implements ebiten.Game with a fixed logical size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// RunWindowed opens a window and runs the game until the scene manager stops.
// Ebiten drives the ticks, at the desired frame rate when one is set.
func (g *Game) RunWindowed(title string, scale int) error {
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.width*scale, g.height*scale)

	if rate := g.DesiredFrameRate(); rate > 0 {
		ebiten.SetTPS(int(math.Round(rate)))
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}
	return ebiten.RunGame(g)
}
