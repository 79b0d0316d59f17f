package graphics

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite draws a texture, or a region of it, at a position and scale.
// When Dst is set the image is stretched to fill it instead.
type Sprite struct {
	Texture        *ebiten.Image
	X, Y           float64
	ScaleX, ScaleY float64
	Src            *image.Rectangle
	Dst            *Rect
	Visible        bool
}

func NewSprite(tex *ebiten.Image) *Sprite {
	return &Sprite{Texture: tex, ScaleX: 1, ScaleY: 1, Visible: true}
}

// SetFrame selects a source region of the texture.
func (s *Sprite) SetFrame(r image.Rectangle) {
	s.Src = &r
}

// geoM maps a source region of size w x h to the screen.
func (s *Sprite) geoM(w, h int) ebiten.GeoM {
	var m ebiten.GeoM
	if s.Dst != nil {
		if w > 0 && h > 0 {
			m.Scale(s.Dst.W/float64(w), s.Dst.H/float64(h))
		}
		m.Translate(s.Dst.X, s.Dst.Y)
		return m
	}
	m.Scale(s.ScaleX, s.ScaleY)
	m.Translate(s.X, s.Y)
	return m
}

// Bounds returns the on-screen rectangle the sprite covers.
func (s *Sprite) Bounds() Rect {
	if s.Dst != nil {
		return *s.Dst
	}
	w, h := s.sourceSize()
	return Rect{X: s.X, Y: s.Y, W: float64(w) * s.ScaleX, H: float64(h) * s.ScaleY}
}

func (s *Sprite) sourceSize() (int, int) {
	if s.Src != nil {
		return s.Src.Dx(), s.Src.Dy()
	}
	if s.Texture == nil {
		return 0, 0
	}
	b := s.Texture.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Sprite) Draw(screen *ebiten.Image) {
	if !s.Visible || s.Texture == nil || screen == nil {
		return
	}

	img := s.Texture
	if s.Src != nil {
		img = s.Texture.SubImage(*s.Src).(*ebiten.Image)
	}
	w, h := s.sourceSize()

	op := &ebiten.DrawImageOptions{}
	op.GeoM = s.geoM(w, h)
	screen.DrawImage(img, op)
}
