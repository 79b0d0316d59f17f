package input

// ButtonCount is the number of tracked mouse buttons (left, right, middle).
const ButtonCount = 3

// Mouse button indices.
const (
	Left = iota
	Right
	Middle
)

// Snapshot is the raw mouse state at one instant.
type Snapshot struct {
	X       int               `json:"x"`
	Y       int               `json:"y"`
	Buttons [ButtonCount]bool `json:"buttons"`
	Inside  bool              `json:"inside"`
}

// Source supplies raw mouse snapshots.
type Source interface {
	Poll() Snapshot
}

// Mouse polls a Source once per tick and keeps button edge states.
type Mouse struct {
	source  Source
	last    Snapshot
	buttons [ButtonCount]*Button
}

// NewMouse creates a mouse reading from source.
func NewMouse(source Source) *Mouse {
	m := &Mouse{source: source}
	for i := range m.buttons {
		m.buttons[i] = NewButton()
	}
	return m
}

// Update polls the source and advances every button by dt milliseconds.
func (m *Mouse) Update(dt float64) {
	m.last = m.source.Poll()
	for i, b := range m.buttons {
		b.IsDown = m.last.Buttons[i]
		b.Update(dt)
	}
}

// Snapshot returns the snapshot read by the last Update.
func (m *Mouse) Snapshot() Snapshot { return m.last }

func (m *Mouse) Position() (x, y int) { return m.last.X, m.last.Y }

// Inside reports whether the cursor is over the screen.
func (m *Mouse) Inside() bool { return m.last.Inside }

// Clicked reports that the left button was released this tick.
func (m *Mouse) Clicked() bool {
	return m.buttons[Left].State() == ButtonReleased
}

// Pressed reports that the left button is held.
func (m *Mouse) Pressed() bool {
	return m.buttons[Left].Down()
}

// Button returns the button at index i, or nil when out of range.
func (m *Mouse) Button(i int) *Button {
	if i < 0 || i >= ButtonCount {
		return nil
	}
	return m.buttons[i]
}
