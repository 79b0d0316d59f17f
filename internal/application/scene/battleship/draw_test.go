package battleship

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/battleship/internal/application/scene"
	"github.com/younwookim/battleship/internal/application/scene/scenetest"
	"github.com/younwookim/battleship/internal/application/state"
	"github.com/younwookim/battleship/internal/domain/board"
	"github.com/younwookim/battleship/internal/infrastructure/config"
)

// texturedContext is a scene context whose assets hand out real textures.
func texturedContext() *scenetest.Context {
	sizes := map[string]image.Point{
		texTitle:         {X: 640, Y: 640},
		texCredits:       {X: 320, Y: 320},
		texButton:        {X: 32, Y: 32},
		texButtonHovered: {X: 32, Y: 32},
		texButtonClicked: {X: 32, Y: 32},
		texWater:         {X: 128, Y: 32},
		texMiss:          {X: 32, Y: 32},
		texHit:           {X: 32, Y: 32},
	}
	ctx := scenetest.New()
	ctx.Loader.Textures = make(map[string]*ebiten.Image, len(sizes))
	for name, size := range sizes {
		ctx.Loader.Textures[name] = ebiten.NewImage(size.X, size.Y)
	}
	return ctx
}

// drawThroughTransition starts s through the manager, then leaves it for
// next, drawing after every manager step. The manager keeps a terminated
// scene active until next starts, so it is drawn once after Terminate.
func drawThroughTransition(t *testing.T, ctx *scenetest.Context, s, next scene.Scene) {
	t.Helper()
	m := ctx.Manager
	screen := ebiten.NewImage(ctx.Width, ctx.Height)
	draw := func() { m.Draw(ctx, screen) }

	m.Request(s)
	require.NoError(t, m.Update(ctx))
	assert.NotPanics(t, draw, "after start")

	ctx.Delta = 16
	require.NoError(t, m.Update(ctx))
	assert.NotPanics(t, draw, "while running")

	m.Request(next)
	require.NoError(t, m.Update(ctx))
	require.Equal(t, state.PhaseStarting, m.Phase())
	require.Same(t, s, m.Active())
	assert.NotPanics(t, draw, "after terminate")

	require.NoError(t, m.Update(ctx))
	assert.NotPanics(t, draw, "after the switch")
}

func TestScenes_DrawThroughTransition(t *testing.T) {
	cfg := loadConfig(t)
	scenes := map[string]func(ctx scene.Context) scene.Scene{
		"title":   func(ctx scene.Context) scene.Scene { return NewTitle(ctx, cfg) },
		"credits": func(ctx scene.Context) scene.Scene { return NewCredits(ctx, cfg) },
		"playing": func(ctx scene.Context) scene.Scene { return NewPlaying(ctx, cfg) },
		"score":   func(ctx scene.Context) scene.Scene { return NewScore(ctx, cfg, 87) },
	}

	for name, newScene := range scenes {
		t.Run(name+" to title", func(t *testing.T) {
			ctx := texturedContext()
			drawThroughTransition(t, ctx, newScene(ctx), NewTitle(ctx, cfg))
		})
		t.Run(name+" quit", func(t *testing.T) {
			ctx := texturedContext()
			drawThroughTransition(t, ctx, newScene(ctx), nil)
			assert.False(t, ctx.Manager.IsRunning())
		})
	}
}

func TestScenes_DrawBeforeAndAfterTerminate(t *testing.T) {
	cfg := loadConfig(t)
	ctx := texturedContext()
	screen := ebiten.NewImage(ctx.Width, ctx.Height)

	for _, s := range []scene.Scene{
		NewTitle(ctx, cfg),
		NewCredits(ctx, cfg),
		NewPlaying(ctx, cfg),
		NewScore(ctx, cfg, 100),
	} {
		require.NoError(t, s.Start(ctx))
		assert.NotPanics(t, func() { s.Draw(ctx, screen) })
		s.Terminate(ctx)
		assert.NotPanics(t, func() { s.Draw(ctx, screen) })
	}
}

func TestPlaying_DrawMidGame(t *testing.T) {
	ctx := texturedContext()
	s := NewPlaying(ctx, loadConfig(t))
	require.NoError(t, s.Start(ctx))
	screen := ebiten.NewImage(ctx.Width, ctx.Height)

	assert.NotPanics(t, func() { s.Draw(ctx, screen) }, "fading in")
	step(t, ctx, s, 1000)

	tx, ty := waterTile(t, s)
	x, y := center(s, tx, ty)
	click(t, ctx, s, x, y)
	for _, p := range tilesOf(s, func(sh *board.Ship) bool { return sh.Name == "Submarine" }) {
		x, y := center(s, p[0], p[1])
		click(t, ctx, s, x, y)
	}
	require.Len(t, s.popups, 1)
	require.True(t, s.Board().InBounds(s.cursorX, s.cursorY))
	assert.NotPanics(t, func() { s.Draw(ctx, screen) }, "with a popup and the cursor")

	for _, p := range tilesOf(s, func(*board.Ship) bool { return true }) {
		x, y := center(s, p[0], p[1])
		click(t, ctx, s, x, y)
	}
	require.True(t, s.Board().Cleared())
	assert.NotPanics(t, func() { s.Draw(ctx, screen) }, "fading out")
}

func TestPlaying_DrawAfterFailedStart(t *testing.T) {
	small := *loadConfig(t)
	small.Board.Width, small.Board.Height = 3, 3
	small.Fleet = []config.ShipConfig{{Name: "Carrier", Length: 5}}

	ctx := texturedContext()
	s := NewPlaying(ctx, &small)
	require.Error(t, s.Start(ctx))
	screen := ebiten.NewImage(ctx.Width, ctx.Height)

	assert.NotPanics(t, func() { s.Draw(ctx, screen) })
	s.Terminate(ctx)
	assert.NotPanics(t, func() { s.Draw(ctx, screen) })
}

func TestPlaying_TerminateUnloadsBoardAssets(t *testing.T) {
	ctx, s := startedPlaying(t)
	s.Terminate(ctx)

	assert.ElementsMatch(t, []string{texWater, texMiss, texHit, bgmGame, seError, seExplosion, seSplash}, ctx.Loader.Unloaded)
}

func TestCredits_TerminateUnloadsCreditsAssets(t *testing.T) {
	ctx := scenetest.New()
	s := NewCredits(ctx, loadConfig(t))
	require.NoError(t, s.Start(ctx))
	s.Terminate(ctx)

	assert.ElementsMatch(t, []string{texCredits, bgmCredits}, ctx.Loader.Unloaded)
	assert.NotContains(t, ctx.Loader.Unloaded, texButton, "button assets are shared with the title")
}
