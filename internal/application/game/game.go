// Package game runs the frame loop: it measures time, feeds input, audio and
// asset loading, drives the scene manager and paces ticks.
package game

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/battleship/internal/application/scene"
)

// AssetSource loads what scenes ask for and reports readiness.
type AssetSource interface {
	scene.Assets
	Ready() bool
	Progress() float64
	Update() error
}

// InputSource is polled once per tick before scenes update.
type InputSource interface {
	scene.Pointer
	Update(dt float64)
}

// AudioSink plays clips and is updated once per tick.
type AudioSink interface {
	scene.Audio
	Update(dt float64)
}

// Options configures a Game.
type Options struct {
	Width, Height int
	// DesiredFrameRate in ticks per second. Zero or less runs unpaced.
	DesiredFrameRate float64
	// Headless games have no canvas and never draw.
	Headless bool
	Clock    Clock
	Logger   *log.Logger
	Seed     int64
}

// Game owns the loop state and implements scene.Context for the scenes it
// runs. It also implements ebiten.Game.
type Game struct {
	width, height int

	clock  Clock
	logger *log.Logger
	pacer  *pacer
	scenes *scene.Manager
	rng    *rand.Rand

	assets AssetSource
	input  InputSource
	audio  AudioSink

	canvas  *ebiten.Image
	showFPS bool
}

// New creates a game. Nil collaborators are replaced by no-ops, so a bare
// game has assets that are always ready, no pointer and no sound.
func New(opts Options, assets AssetSource, input InputSource, audio AudioSink) *Game {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if assets == nil {
		assets = nopAssets{}
	}
	if input == nil {
		input = nopInput{}
	}
	if audio == nil {
		audio = nopAudio{}
	}

	g := &Game{
		width:  opts.Width,
		height: opts.Height,
		clock:  opts.Clock,
		logger: opts.Logger,
		pacer:  newPacer(opts.Clock.Now()),
		scenes: scene.NewManager(opts.Logger),
		rng:    rand.New(rand.NewSource(opts.Seed)),
		assets: assets,
		input:  input,
		audio:  audio,
	}
	g.pacer.setRate(opts.DesiredFrameRate)
	if !opts.Headless {
		g.canvas = ebiten.NewImage(opts.Width, opts.Height)
	}
	return g
}

// Tick runs one iteration of the loop. It returns false once the scene
// manager has nothing left to run. An error aborts the tick and is left to
// the caller.
func (g *Game) Tick() (bool, error) {
	if !g.scenes.IsRunning() {
		return false, nil
	}

	g.pacer.begin(g.clock.Now())
	if g.pacer.count() {
		g.logger.Debug("frame rate", "fps", g.pacer.rate)
	}

	dt := g.pacer.delta
	g.input.Update(dt)
	g.audio.Update(dt)

	if g.assets.Ready() {
		if err := g.scenes.Update(g); err != nil {
			return true, err
		}
		if g.canvas != nil {
			g.canvas.Clear()
			g.scenes.Draw(g, g.canvas)
		}
	} else if err := g.assets.Update(); err != nil {
		return true, err
	}

	g.pacer.end(g.clock.Now())
	return true, nil
}

// SetDesiredFrameRate changes pacing. Zero or less disables it.
func (g *Game) SetDesiredFrameRate(rate float64) {
	g.pacer.setRate(rate)
	g.logger.Debug("desired frame rate", "fps", rate)
}

func (g *Game) DesiredFrameRate() float64 { return g.pacer.desiredRate() }

// FrameRate is the number of ticks counted in the last full second.
func (g *Game) FrameRate() int { return g.pacer.rate }

// Timeout is how long to wait before the next tick. Zero or negative means
// run immediately.
func (g *Game) Timeout() time.Duration { return g.pacer.timeoutDuration() }

// DeltaTime is the time since the previous tick in milliseconds.
func (g *Game) DeltaTime() float64 { return g.pacer.delta }

func (g *Game) Scenes() *scene.Manager          { return g.scenes }
func (g *Game) Assets() scene.Assets            { return g.assets }
func (g *Game) Audio() scene.Audio              { return g.audio }
func (g *Game) Pointer() scene.Pointer          { return g.input }
func (g *Game) ScreenSize() (width, height int) { return g.width, g.height }
func (g *Game) Rand() *rand.Rand                { return g.rng }

// Canvas is the offscreen image scenes draw to, nil when headless.
func (g *Game) Canvas() *ebiten.Image { return g.canvas }

type nopAssets struct{}

func (nopAssets) LoadImage(path, name string)       {}
func (nopAssets) LoadAudio(path, name string)       {}
func (nopAssets) UnloadImage(name string)           {}
func (nopAssets) UnloadAudio(name string)           {}
func (nopAssets) Texture(name string) *ebiten.Image { return nil }
func (nopAssets) Ready() bool                       { return true }
func (nopAssets) Progress() float64                 { return 1 }
func (nopAssets) Update() error                     { return nil }

type nopInput struct{}

func (nopInput) Position() (int, int) { return 0, 0 }
func (nopInput) Clicked() bool        { return false }
func (nopInput) Pressed() bool        { return false }
func (nopInput) Update(dt float64)    {}

type nopAudio struct{}

func (nopAudio) PlayBGM(name string) {}
func (nopAudio) PlaySE(name string)  {}
func (nopAudio) Update(dt float64)   {}
