package graphics

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Align positions text relative to its anchor point.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

func (a Align) textAlign() text.Align {
	switch a {
	case AlignCenter:
		return text.AlignCenter
	case AlignEnd:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}

var face = text.NewGoXFace(basicfont.Face7x13)

// baseSize is the pixel height of the bitmap font at scale 1.
const baseSize = 13.0

// Label draws a single line of text. Size is the text height in pixels;
// Align is horizontal and Baseline vertical.
type Label struct {
	Text     string
	X, Y     float64
	Size     float64
	Color    color.Color
	Align    Align
	Baseline Align
	Visible  bool
}

func NewLabel(s string, size float64) *Label {
	return &Label{Text: s, Size: size, Color: color.Black, Visible: true}
}

func (l *Label) scale() float64 {
	if l.Size <= 0 {
		return 1
	}
	return l.Size / baseSize
}

// Measure returns the drawn width and height of the text.
func (l *Label) Measure() (w, h float64) {
	w, h = text.Measure(l.Text, face, baseSize)
	s := l.scale()
	return w * s, h * s
}

func (l *Label) options() *text.DrawOptions {
	op := &text.DrawOptions{}
	s := l.scale()
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(l.X, l.Y)
	op.ColorScale.ScaleWithColor(l.Color)
	op.LayoutOptions.PrimaryAlign = l.Align.textAlign()
	op.LayoutOptions.SecondaryAlign = l.Baseline.textAlign()
	return op
}

func (l *Label) Draw(screen *ebiten.Image) {
	if !l.Visible || l.Text == "" || screen == nil {
		return
	}
	text.Draw(screen, l.Text, face, l.options())
}
