package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/battleship/internal/application/game"
	"github.com/younwookim/battleship/internal/infrastructure/input"
)

// epoch anchors replayed clock samples.
var epoch = time.Unix(0, 0)

// Player feeds recorded data back to a game as its clock, pointer source and
// asset gate.
type Player struct {
	data    ReplayData
	frame   int
	sample  int
	checks  int
	loading map[int]bool
	last    time.Time
	err     error
}

// NewPlayer creates a player from replay data
func NewPlayer(data ReplayData) *Player {
	p := &Player{data: data, last: epoch}
	p.Reset()
	return p
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}

	return &data, nil
}

// Now implements game.Clock. Past the last sample time stands still.
func (p *Player) Now() time.Time {
	if p.sample < len(p.data.Clock) {
		p.last = epoch.Add(time.Duration(p.data.Clock[p.sample]))
		p.sample++
	}
	return p.last
}

// Poll implements input.Source. Past the last frame the pointer is idle.
func (p *Player) Poll() input.Snapshot {
	if p.frame >= len(p.data.Frames) {
		return input.Snapshot{}
	}
	s := p.data.Frames[p.frame].snapshot()
	p.frame++
	return s
}

// Assets wraps an asset source so that readiness follows the recording.
// When the recording saw assets ready, the wrapper waits for inner to finish
// loading before answering.
func (p *Player) Assets(inner game.AssetSource) game.AssetSource {
	return &gatedAssets{AssetSource: inner, p: p}
}

type gatedAssets struct {
	game.AssetSource
	p *Player
}

func (a *gatedAssets) Ready() bool {
	check := a.p.checks
	a.p.checks++
	if a.p.loading[check] {
		return false
	}
	for !a.AssetSource.Ready() {
		if err := a.AssetSource.Update(); err != nil {
			a.p.err = err
			return false
		}
		if !a.AssetSource.Ready() {
			time.Sleep(time.Millisecond)
		}
	}
	return true
}

func (a *gatedAssets) Update() error {
	if err := a.p.err; err != nil {
		a.p.err = nil
		return err
	}
	return a.AssetSource.Update()
}

// Done reports that every recorded tick has been played.
func (p *Player) Done() bool {
	return p.frame >= len(p.data.Frames)
}

// CurrentFrame returns the current frame number
func (p *Player) CurrentFrame() int {
	return p.frame
}

// TotalFrames returns the total number of frames
func (p *Player) TotalFrames() int {
	return len(p.data.Frames)
}

// Seed returns the seed used for the replay
func (p *Player) Seed() int64 {
	return p.data.Seed
}

// Reset rewinds the player to the beginning
func (p *Player) Reset() {
	p.frame, p.sample, p.checks = 0, 0, 0
	p.last = epoch
	p.err = nil
	p.loading = make(map[int]bool, len(p.data.Loading))
	for _, c := range p.data.Loading {
		p.loading[c] = true
	}
}
