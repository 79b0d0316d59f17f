package battleship

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/battleship/internal/application/scene"
	"github.com/younwookim/battleship/internal/engine/anim"
	"github.com/younwookim/battleship/internal/engine/easing"
	"github.com/younwookim/battleship/internal/infrastructure/config"
	"github.com/younwookim/battleship/internal/infrastructure/graphics"
)

const (
	creditsFadingIn = iota
	creditsReady
	creditsFadingOut
)

// Credits shows the credits image until the player goes back to the title.
type Credits struct {
	cfg  *config.BattleshipConfig
	step int
	anim *anim.Animation

	image *graphics.Sprite
	back  *graphics.Button
}

// NewCredits creates the credits scene and queues its assets.
func NewCredits(ctx scene.Context, cfg *config.BattleshipConfig) *Credits {
	a := ctx.Assets()
	a.LoadAudio("audio/bgm/credits.wav", bgmCredits)
	a.LoadImage("img/credits.png", texCredits)
	loadButtonAssets(a)
	return &Credits{cfg: cfg}
}

func (c *Credits) Start(ctx scene.Context) error {
	a := ctx.Assets()
	ctx.Audio().PlayBGM(bgmCredits)

	c.step = creditsFadingIn
	c.image = graphics.NewSprite(a.Texture(texCredits))
	c.image.X, c.image.Y = 160, 160
	c.back = newMenuButton(a, graphics.NewRect(256, 512, buttonWidth, buttonHeight), "Go to title")

	c.anim = anim.New(1, 0, c.cfg.Timings.FadeMs, easing.InOutSine, func(_ *anim.Animation, finished bool, _, _ float64) {
		if finished {
			c.step = creditsReady
		}
	})
	return nil
}

func (c *Credits) Update(ctx scene.Context) error {
	if c.step != creditsReady {
		c.anim.Advance(ctx.DeltaTime())
	}

	c.back.Update(ctx.Pointer())
	if c.step != creditsReady || !c.back.WasClicked() {
		return nil
	}

	ctx.Audio().PlaySE(seSelection)
	c.step = creditsFadingOut
	c.anim.Reset(0, 1, c.cfg.Timings.FadeMs, easing.InOutSine, func(_ *anim.Animation, finished bool, _, _ float64) {
		if finished {
			ctx.Scenes().Request(NewTitle(ctx, c.cfg))
		}
	})
	return nil
}

func (c *Credits) Draw(ctx scene.Context, screen *ebiten.Image) {
	screen.Fill(colorBlack)
	if c.anim == nil {
		return
	}
	c.image.Draw(screen)
	c.back.Draw(screen)

	if c.step != creditsReady {
		graphics.Fade(screen, c.anim.Value())
	}
}

func (c *Credits) Terminate(ctx scene.Context) {
	a := ctx.Assets()
	a.UnloadImage(texCredits)
	a.UnloadAudio(bgmCredits)

	c.anim = nil
	c.image = nil
	c.back = nil
}
