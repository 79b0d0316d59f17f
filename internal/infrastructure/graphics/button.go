package graphics

import "github.com/hajimehoshi/ebiten/v2"

// Pointer is the mouse as a button sees it.
type Pointer interface {
	Position() (x, y int)
	Clicked() bool
	Pressed() bool
}

// ButtonState selects which texture a button shows.
type ButtonState int

const (
	ButtonEnabled ButtonState = iota
	ButtonHovered
	ButtonClicked
	ButtonDisabled
)

// Button is a panel with a centered label that reacts to the pointer.
type Button struct {
	Panel *Panel
	Label *Label

	Enabled  bool
	Textures [4]*ebiten.Image // indexed by ButtonState

	LabelOffsetX, LabelOffsetY float64

	state      ButtonState
	wasClicked bool
}

// NewButton creates a button that uses tex for every state.
func NewButton(dst Rect, tex *ebiten.Image, border int, caption string, size float64) *Button {
	b := &Button{
		Panel:   NewPanel(dst, tex, border),
		Label:   NewLabel(caption, size),
		Enabled: true,
	}
	for i := range b.Textures {
		b.Textures[i] = tex
	}
	b.Label.Align = AlignCenter
	b.Label.Baseline = AlignCenter
	return b
}

// Update hit-tests the pointer. A click inside the button sets WasClicked
// until the next Update.
func (b *Button) Update(p Pointer) {
	b.wasClicked = false

	x, y := p.Position()
	switch {
	case !b.Enabled:
		b.state = ButtonDisabled
	case !b.Panel.Dst.Contains(float64(x), float64(y)):
		b.state = ButtonEnabled
	case p.Clicked():
		b.state = ButtonClicked
		b.wasClicked = true
	case p.Pressed():
		b.state = ButtonClicked
	default:
		b.state = ButtonHovered
	}
	b.Panel.Texture = b.Textures[b.state]
}

func (b *Button) WasClicked() bool   { return b.wasClicked }
func (b *Button) State() ButtonState { return b.state }

// SetX moves the button horizontally.
func (b *Button) SetX(x float64) { b.Panel.Dst.X = x }

func (b *Button) Draw(screen *ebiten.Image) {
	b.Panel.Draw(screen)
	cx, cy := b.Panel.Dst.Center()
	b.Label.X = cx + b.LabelOffsetX
	b.Label.Y = cy + b.LabelOffsetY
	b.Label.Draw(screen)
}
