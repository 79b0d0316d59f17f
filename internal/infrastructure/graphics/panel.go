package graphics

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Panel stretches a texture over Dst as a nine-slice: corners keep their
// size, edges stretch along one axis and the center along both.
type Panel struct {
	Dst     Rect
	Texture *ebiten.Image
	Border  int
}

func NewPanel(dst Rect, tex *ebiten.Image, border int) *Panel {
	return &Panel{Dst: dst, Texture: tex, Border: border}
}

type slice struct {
	src image.Rectangle
	dst Rect
}

// slices cuts a texture of size tw x th. When Dst is narrower or shorter
// than two borders, the corners shrink to half of it and the middle row or
// column is dropped.
func (p *Panel) slices(tw, th int) []slice {
	b := p.Border
	fb := float64(b)
	d := p.Dst

	cw, ch := fb, fb
	hasMidCol := math.Abs(d.W) > 2*fb
	hasMidRow := math.Abs(d.H) > 2*fb
	if !hasMidCol {
		cw = d.W / 2
	}
	if !hasMidRow {
		ch = d.H / 2
	}
	midW, midH := d.W-2*cw, d.H-2*ch

	left, right := d.X, d.X+d.W-cw
	top, bottom := d.Y, d.Y+d.H-ch

	out := []slice{
		{image.Rect(0, 0, b, b), Rect{left, top, cw, ch}},
		{image.Rect(tw-b, 0, tw, b), Rect{right, top, cw, ch}},
		{image.Rect(0, th-b, b, th), Rect{left, bottom, cw, ch}},
		{image.Rect(tw-b, th-b, tw, th), Rect{right, bottom, cw, ch}},
	}
	if hasMidCol {
		out = append(out,
			slice{image.Rect(b, 0, tw-b, b), Rect{left + cw, top, midW, ch}},
			slice{image.Rect(b, th-b, tw-b, th), Rect{left + cw, bottom, midW, ch}},
		)
	}
	if hasMidRow {
		out = append(out,
			slice{image.Rect(0, b, b, th-b), Rect{left, top + ch, cw, midH}},
			slice{image.Rect(tw-b, b, tw, th-b), Rect{right, top + ch, cw, midH}},
		)
	}
	if hasMidCol && hasMidRow {
		out = append(out, slice{image.Rect(b, b, tw-b, th-b), Rect{left + cw, top + ch, midW, midH}})
	}
	return out
}

func (p *Panel) Draw(screen *ebiten.Image) {
	if p.Texture == nil || screen == nil {
		return
	}
	bounds := p.Texture.Bounds()
	for _, s := range p.slices(bounds.Dx(), bounds.Dy()) {
		src := s.src.Add(bounds.Min)
		if src.Empty() || s.dst.W == 0 || s.dst.H == 0 {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s.dst.W/float64(src.Dx()), s.dst.H/float64(src.Dy()))
		op.GeoM.Translate(s.dst.X, s.dst.Y)
		screen.DrawImage(p.Texture.SubImage(src).(*ebiten.Image), op)
	}
}
