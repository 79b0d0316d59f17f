package input

import "github.com/hajimehoshi/ebiten/v2"

var ebitenButtons = [ButtonCount]ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// EbitenSource reads the cursor and mouse buttons from ebiten.
// It must be polled from the ebiten update goroutine.
type EbitenSource struct {
	Width, Height int
}

// NewEbitenSource creates a source for a logical screen of the given size.
func NewEbitenSource(width, height int) *EbitenSource {
	return &EbitenSource{Width: width, Height: height}
}

// Poll implements Source
func (s *EbitenSource) Poll() Snapshot {
	x, y := ebiten.CursorPosition()
	snap := Snapshot{
		X:      x,
		Y:      y,
		Inside: ebiten.IsFocused() && x >= 0 && y >= 0 && x < s.Width && y < s.Height,
	}
	for i, b := range ebitenButtons {
		snap.Buttons[i] = ebiten.IsMouseButtonPressed(b)
	}
	return snap
}
