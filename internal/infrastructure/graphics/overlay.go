package graphics

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FillRect paints r with c.
func FillRect(screen *ebiten.Image, r Rect, c color.Color) {
	if screen == nil {
		return
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// FadeColor is black at the given opacity, clamped to [0, 1].
func FadeColor(alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{A: uint8(alpha*255 + 0.5)}
}

// Fade darkens the whole screen. Alpha 0 draws nothing.
func Fade(screen *ebiten.Image, alpha float64) {
	if screen == nil || alpha <= 0 {
		return
	}
	b := screen.Bounds()
	FillRect(screen, Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), W: float64(b.Dx()), H: float64(b.Dy())}, FadeColor(alpha))
}
