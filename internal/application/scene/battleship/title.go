package battleship

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/battleship/internal/application/scene"
	"github.com/younwookim/battleship/internal/engine/anim"
	"github.com/younwookim/battleship/internal/engine/easing"
	"github.com/younwookim/battleship/internal/infrastructure/config"
	"github.com/younwookim/battleship/internal/infrastructure/graphics"
)

// Title steps.
const (
	titleFadingIn = iota
	titleSlidingStart
	titleReady // credits button may still be sliding in
	titleLeavingStart
	titleLeavingCredits
	titleFadingOut
)

const (
	titleButtonHidden = -128
	titleButtonX      = 256
)

// Title is the first scene: it fades in, slides the two menu buttons in and
// waits for a choice.
type Title struct {
	cfg  *config.BattleshipConfig
	step int
	anim *anim.Animation

	background *graphics.Sprite
	start      *graphics.Button
	credits    *graphics.Button
	toCredits  bool
}

// NewTitle creates the title scene and queues its assets.
func NewTitle(ctx scene.Context, cfg *config.BattleshipConfig) *Title {
	a := ctx.Assets()
	a.LoadAudio("audio/bgm/title.wav", bgmTitle)
	a.LoadImage("img/title.png", texTitle)
	loadButtonAssets(a)
	return &Title{cfg: cfg}
}

func (t *Title) Start(ctx scene.Context) error {
	a := ctx.Assets()
	ctx.Audio().PlayBGM(bgmTitle)

	t.step = titleFadingIn
	t.background = graphics.NewSprite(a.Texture(texTitle))
	t.start = newMenuButton(a, graphics.NewRect(titleButtonHidden, 448, buttonWidth, buttonHeight), "Start")
	t.credits = newMenuButton(a, graphics.NewRect(titleButtonHidden, 512, buttonWidth, buttonHeight), "Credits")

	t.anim = anim.New(1, 0, t.cfg.Timings.FadeMs, easing.InOutSine, t.fadedIn)
	return nil
}

func (t *Title) fadedIn(a *anim.Animation, finished bool, value, overrun float64) {
	if !finished {
		return
	}
	t.step++
	a.Reset(titleButtonHidden, titleButtonX, t.cfg.Timings.ButtonSlideMs-overrun, easing.OutSine, t.startSliding)
}

func (t *Title) startSliding(a *anim.Animation, finished bool, value, overrun float64) {
	t.start.SetX(value)
	if !finished {
		return
	}
	t.step++
	a.Reset(titleButtonHidden, titleButtonX, t.cfg.Timings.ButtonSlideMs-overrun, easing.OutSine, t.creditsSliding)
}

func (t *Title) creditsSliding(a *anim.Animation, finished bool, value, overrun float64) {
	t.credits.SetX(value)
}

func (t *Title) Update(ctx scene.Context) error {
	t.anim.Advance(ctx.DeltaTime())

	p := ctx.Pointer()
	t.start.Update(p)
	t.credits.Update(p)

	if t.step != titleReady || !(t.start.WasClicked() || t.credits.WasClicked()) {
		return nil
	}

	ctx.Audio().PlaySE(seSelection)
	t.toCredits = !t.start.WasClicked()
	t.step = titleLeavingStart

	w, _ := ctx.ScreenSize()
	right := float64(w)
	slide := t.cfg.Timings.ButtonSlideMs
	t.anim.Reset(t.start.Panel.Dst.X, right, slide, easing.InSine, func(a *anim.Animation, finished bool, value, _ float64) {
		t.start.SetX(value)
		if !finished {
			return
		}
		t.step++
		a.Reset(t.credits.Panel.Dst.X, right, slide, easing.InSine, func(a *anim.Animation, finished bool, value, _ float64) {
			t.credits.SetX(value)
			if !finished {
				return
			}
			t.step++
			a.Reset(0, 1, t.cfg.Timings.FadeMs, easing.InOutSine, func(_ *anim.Animation, finished bool, _, _ float64) {
				if !finished {
					return
				}
				if t.toCredits {
					ctx.Scenes().Request(NewCredits(ctx, t.cfg))
				} else {
					ctx.Scenes().Request(NewPlaying(ctx, t.cfg))
				}
			})
		})
	})
	return nil
}

func (t *Title) Draw(ctx scene.Context, screen *ebiten.Image) {
	screen.Fill(colorBlack)
	if t.anim == nil {
		return
	}
	t.background.Draw(screen)
	t.start.Draw(screen)
	t.credits.Draw(screen)

	if t.step == titleFadingIn || t.step == titleFadingOut {
		graphics.Fade(screen, t.anim.Value())
	}
}

func (t *Title) Terminate(ctx scene.Context) {
	t.anim = nil
	t.background = nil
	t.start = nil
	t.credits = nil
}
