// Package scenetest provides an in-memory scene.Context for scene tests.
package scenetest

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/battleship/internal/application/scene"
)

// Context is a scene.Context whose collaborators record what scenes do.
type Context struct {
	Delta   float64
	Width   int
	Height  int
	Manager *scene.Manager
	Loader  *Assets
	Sound   *Audio
	Mouse   *Pointer
	RNG     *rand.Rand
}

// New creates a 640x640 context with a quiet scene manager and a fixed seed.
func New() *Context {
	return &Context{
		Width:   640,
		Height:  640,
		Manager: scene.NewManager(log.New(io.Discard)),
		Loader:  &Assets{},
		Sound:   &Audio{},
		Mouse:   &Pointer{},
		RNG:     rand.New(rand.NewSource(1)),
	}
}

func (c *Context) DeltaTime() float64              { return c.Delta }
func (c *Context) Scenes() *scene.Manager          { return c.Manager }
func (c *Context) Assets() scene.Assets            { return c.Loader }
func (c *Context) Audio() scene.Audio              { return c.Sound }
func (c *Context) Pointer() scene.Pointer          { return c.Mouse }
func (c *Context) ScreenSize() (width, height int) { return c.Width, c.Height }
func (c *Context) Rand() *rand.Rand                { return c.RNG }

// Step runs one scene update with the given delta and clears any click.
func (c *Context) Step(s scene.Scene, dt float64) error {
	c.Delta = dt
	err := s.Update(c)
	c.Mouse.clicked = false
	return err
}

// Assets records load and unload requests. Texture looks names up in
// Textures, so it returns nil unless a test fills it.
type Assets struct {
	Images   []string
	Clips    []string
	Unloaded []string
	Textures map[string]*ebiten.Image
}

func (a *Assets) LoadImage(path, name string)       { a.Images = append(a.Images, name) }
func (a *Assets) LoadAudio(path, name string)       { a.Clips = append(a.Clips, name) }
func (a *Assets) UnloadImage(name string)           { a.Unloaded = append(a.Unloaded, name) }
func (a *Assets) UnloadAudio(name string)           { a.Unloaded = append(a.Unloaded, name) }
func (a *Assets) Texture(name string) *ebiten.Image { return a.Textures[name] }

// Audio records what was played.
type Audio struct {
	BGM    []string
	Played []string
}

func (a *Audio) PlayBGM(name string) { a.BGM = append(a.BGM, name) }
func (a *Audio) PlaySE(name string)  { a.Played = append(a.Played, name) }

// Pointer is a scripted mouse. A click lasts for one Step.
type Pointer struct {
	X, Y    int
	Down    bool
	clicked bool
}

// ClickAt moves the pointer and registers a click for the next Step.
func (p *Pointer) ClickAt(x, y int) {
	p.X, p.Y = x, y
	p.clicked = true
}

func (p *Pointer) Position() (int, int) { return p.X, p.Y }
func (p *Pointer) Clicked() bool        { return p.clicked }
func (p *Pointer) Pressed() bool        { return p.Down }
