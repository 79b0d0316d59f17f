// Package input tracks mouse buttons across ticks.
package input

// ButtonState is the per-tick state of a button.
type ButtonState int

const (
	ButtonNone ButtonState = iota
	ButtonTriggered
	ButtonPressed
	ButtonRepeated
	ButtonReleased
)

// Default repeat timings in milliseconds.
const (
	DefaultRepeatDelay    = 1000.0
	DefaultRepeatInterval = 500.0
)

func (s ButtonState) String() string {
	switch s {
	case ButtonNone:
		return "None"
	case ButtonTriggered:
		return "Triggered"
	case ButtonPressed:
		return "Pressed"
	case ButtonRepeated:
		return "Repeated"
	case ButtonReleased:
		return "Released"
	default:
		return "Unknown"
	}
}

// Button turns a raw down/up signal into edge states.
//
// While held, the button reports Triggered on the first tick, then Pressed.
// With repeating enabled it also reports Repeated once after RepeatDelay and
// then every RepeatInterval.
type Button struct {
	IsDown         bool
	Repeating      bool
	RepeatDelay    float64
	RepeatInterval float64

	state       ButtonState
	isRepeating bool
	repeatTimer float64
}

// NewButton creates a button with repeating enabled and default timings.
func NewButton() *Button {
	return &Button{
		Repeating:      true,
		RepeatDelay:    DefaultRepeatDelay,
		RepeatInterval: DefaultRepeatInterval,
	}
}

// State returns the state computed by the last Update.
func (b *Button) State() ButtonState { return b.state }

// Down reports Triggered, Pressed or Repeated.
func (b *Button) Down() bool {
	return b.state == ButtonTriggered || b.state == ButtonPressed || b.state == ButtonRepeated
}

// Update advances the state machine by dt milliseconds.
func (b *Button) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}

	if !b.IsDown {
		switch b.state {
		case ButtonNone:
		case ButtonReleased:
			b.state = ButtonNone
		default:
			b.state = ButtonReleased
		}
		b.repeatTimer = 0
		b.isRepeating = false
		return
	}

	switch b.state {
	case ButtonTriggered, ButtonRepeated:
		b.state = ButtonPressed
	case ButtonPressed:
	default:
		b.state = ButtonTriggered
	}

	if !b.Repeating {
		b.repeatTimer = 0
		b.isRepeating = false
		return
	}

	if b.repeatTimer <= 0 {
		if b.isRepeating {
			b.repeatTimer = b.RepeatInterval
		} else {
			b.repeatTimer = b.RepeatDelay
		}
	}
	b.repeatTimer -= dt
	if b.repeatTimer <= 0 {
		b.state = ButtonRepeated
		b.isRepeating = true
	}
}
