// Package scene defines the Scene interface for game screens and the
// manager that moves between them.
//
// Each game screen (title, credits, playing, score) implements Scene. A scene
// never switches screens itself: it asks the Manager for a new scene with
// Request, and the Manager performs the terminate/start pair on its own
// update ticks.
package scene

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game screen (title, credits, playing, score)
//
// The Manager calls Start once before the first Update, Update and Draw once
// per tick while the scene is active, and Terminate once when leaving it.
type Scene interface {
	// Start builds the scene's elements. Assets requested by the scene's
	// constructor are loaded by the time Start is called.
	Start(ctx Context) error

	// Update advances the scene by ctx.DeltaTime() milliseconds.
	// Returning an error aborts the current tick.
	Update(ctx Context) error

	// Draw renders the scene to the screen. Draw must not request scenes.
	// It is also called between Terminate and the next scene's Start.
	Draw(ctx Context, screen *ebiten.Image)

	// Terminate releases everything the scene owns.
	Terminate(ctx Context)
}

// Assets is the part of the asset manager that scenes use.
type Assets interface {
	LoadImage(path, name string)
	LoadAudio(path, name string)
	UnloadImage(name string)
	UnloadAudio(name string)
	Texture(name string) *ebiten.Image
}

// Audio plays named clips. Both calls are fire-and-forget.
type Audio interface {
	PlayBGM(name string)
	PlaySE(name string)
}

// Pointer is the mouse as seen by scenes.
type Pointer interface {
	Position() (x, y int)
	// Clicked reports a completed left click during this tick.
	Clicked() bool
	// Pressed reports whether the left button is held down.
	Pressed() bool
}

// Context is the handle passed to every scene lifecycle call.
type Context interface {
	// DeltaTime is the time since the previous tick in milliseconds.
	DeltaTime() float64
	Scenes() *Manager
	Assets() Assets
	Audio() Audio
	Pointer() Pointer
	ScreenSize() (width, height int)
	Rand() *rand.Rand
}
