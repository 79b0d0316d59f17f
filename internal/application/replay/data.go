// Package replay records a session's clock samples, pointer snapshots and
// asset readiness, and plays them back so the session runs identically
// without a window.
package replay

import "github.com/younwookim/battleship/internal/infrastructure/input"

// Version of the replay file format.
const Version = "2.0"

// FrameInput records the pointer snapshot polled on one tick
type FrameInput struct {
	F  int   `json:"f"`            // Frame number
	X  int   `json:"x"`            // Cursor X
	Y  int   `json:"y"`            // Cursor Y
	B  uint8 `json:"b,omitempty"`  // Button bitmask, bit i is button i
	In bool  `json:"in,omitempty"` // Cursor over the screen
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Clock     []int64      `json:"clock"`   // ns since the first clock sample
	Loading   []int        `json:"loading"` // readiness checks that found assets loading
	Frames    []FrameInput `json:"frames"`
}

func encodeSnapshot(f int, s input.Snapshot) FrameInput {
	fi := FrameInput{F: f, X: s.X, Y: s.Y, In: s.Inside}
	for i, down := range s.Buttons {
		if down {
			fi.B |= 1 << i
		}
	}
	return fi
}

func (fi FrameInput) snapshot() input.Snapshot {
	s := input.Snapshot{X: fi.X, Y: fi.Y, Inside: fi.In}
	for i := range s.Buttons {
		s.Buttons[i] = fi.B&(1<<i) != 0
	}
	return s
}
