package scene

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/battleship/internal/application/state"
)

// Manager owns the active scene and the requested one.
//
// Requests are a single slot: the last Request before an update wins. The
// switch itself happens only inside Update, one step per tick: first the
// active scene is terminated, then on the following tick the requested scene
// is started.
type Manager struct {
	active    Scene
	started   bool
	requested Scene
	logger    *log.Logger
}

// NewManager creates an idle scene manager.
func NewManager(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{logger: logger}
}

// Request asks for s to become the active scene. A nil scene asks the
// manager to stop once the active scene has been terminated.
func (m *Manager) Request(s Scene) {
	m.requested = s
}

// Quit requests that no scene follows the active one.
func (m *Manager) Quit() {
	m.requested = nil
}

// Requested returns the scene waiting to become active.
func (m *Manager) Requested() Scene { return m.requested }

// Active returns the scene that is currently drawn.
func (m *Manager) Active() Scene { return m.active }

// IsRunning reports whether there is an active or a requested scene.
func (m *Manager) IsRunning() bool {
	return m.active != nil || m.requested != nil
}

// Phase reports where the manager stands in its transition machine.
func (m *Manager) Phase() state.Phase {
	switch {
	case m.active == m.requested && m.active == nil:
		return state.PhaseIdle
	case m.active == m.requested:
		return state.PhaseRunning
	case m.started:
		return state.PhaseTerminating
	default:
		return state.PhaseStarting
	}
}

// Update performs one step of the transition machine, or updates the
// active scene when no transition is pending.
//
// A scene whose Start fails still counts as started, so it is terminated
// before the next scene starts.
func (m *Manager) Update(ctx Context) error {
	if m.active == m.requested {
		if m.active != nil {
			return m.active.Update(ctx)
		}
		return nil
	}

	phase := m.Phase()
	if m.started {
		m.logger.Debug("terminating scene", "scene", sceneName(m.active), "phase", phase)
		m.active.Terminate(ctx)
		m.started = false
		return nil
	}

	m.active = m.requested
	if m.active == nil {
		m.logger.Debug("no scene requested, stopping", "phase", phase)
		return nil
	}

	m.logger.Debug("starting scene", "scene", sceneName(m.active), "phase", phase)
	m.started = true
	if err := m.active.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scene %s: %w", sceneName(m.active), err)
	}
	return nil
}

// Draw renders the active scene, if any.
func (m *Manager) Draw(ctx Context, screen *ebiten.Image) {
	if m.active != nil {
		m.active.Draw(ctx, screen)
	}
}

func sceneName(s Scene) string {
	return fmt.Sprintf("%T", s)
}
