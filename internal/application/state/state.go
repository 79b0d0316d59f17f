// Package state names the phases of the scene manager's transition machine.
package state

// Phase is where the scene manager stands between two scenes.
type Phase int

const (
	// PhaseIdle: no active scene and none requested.
	PhaseIdle Phase = iota
	// PhaseStarting: the requested scene will be started on the next update.
	PhaseStarting
	// PhaseRunning: the active scene is the requested one and is updated every tick.
	PhaseRunning
	// PhaseTerminating: a different scene was requested; the active one will be terminated.
	PhaseTerminating
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseStarting:
		return "Starting"
	case PhaseRunning:
		return "Running"
	case PhaseTerminating:
		return "Terminating"
	default:
		return "Unknown"
	}
}
