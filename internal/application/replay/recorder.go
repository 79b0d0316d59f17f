package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/battleship/internal/application/game"
	"github.com/younwookim/battleship/internal/infrastructure/input"
)

// Recorder sits between the game and its real clock, pointer source and
// assets, writing down everything they report.
type Recorder struct {
	data      ReplayData
	recording bool

	clock  game.Clock
	source input.Source

	start   time.Time
	started bool
	checks  int
}

// NewRecorder creates a recorder over the given clock and pointer source.
func NewRecorder(seed int64, clock game.Clock, source input.Source) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Seed:      seed,
			StartTime: time.Now().Format(time.RFC3339),
			Clock:     make([]int64, 0, 7200),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		clock:     clock,
		source:    source,
	}
}

// Now implements game.Clock
func (r *Recorder) Now() time.Time {
	t := r.clock.Now()
	if !r.started {
		r.start = t
		r.started = true
	}
	if r.recording {
		r.data.Clock = append(r.data.Clock, t.Sub(r.start).Nanoseconds())
	}
	return t
}

// Poll implements input.Source
func (r *Recorder) Poll() input.Snapshot {
	s := r.source.Poll()
	if r.recording {
		r.data.Frames = append(r.data.Frames, encodeSnapshot(len(r.data.Frames), s))
	}
	return s
}

// Assets wraps an asset source so that every readiness check is recorded.
func (r *Recorder) Assets(inner game.AssetSource) game.AssetSource {
	return &recordingAssets{AssetSource: inner, r: r}
}

type recordingAssets struct {
	game.AssetSource
	r *Recorder
}

func (a *recordingAssets) Ready() bool {
	ready := a.AssetSource.Ready()
	if a.r.recording && !ready {
		a.r.data.Loading = append(a.r.data.Loading, a.r.checks)
	}
	a.r.checks++
	return ready
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
