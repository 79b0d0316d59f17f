package battleship

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/battleship/internal/application/scene"
	"github.com/younwookim/battleship/internal/engine/anim"
	"github.com/younwookim/battleship/internal/engine/easing"
	"github.com/younwookim/battleship/internal/infrastructure/config"
	"github.com/younwookim/battleship/internal/infrastructure/graphics"
)

const (
	scoreFadingIn = iota
	scoreCounting
	scoreReady
	scoreFadingOut
)

const scoreTextSize = 42

// Score counts up to the final percentage and returns to the title on click.
type Score struct {
	cfg   *config.BattleshipConfig
	total int
	step  int
	anim  *anim.Animation

	label *graphics.Label
	back  *graphics.Button
}

// NewScore creates the score scene for a percentage in [0, 100] and queues
// its assets.
func NewScore(ctx scene.Context, cfg *config.BattleshipConfig, total int) *Score {
	a := ctx.Assets()
	a.LoadAudio("audio/bgm/score.wav", bgmScore)
	loadButtonAssets(a)
	return &Score{cfg: cfg, total: total}
}

// Total returns the percentage the scene counts up to.
func (s *Score) Total() int { return s.total }

// Text returns the percentage currently shown.
func (s *Score) Text() string { return s.label.Text }

func (s *Score) Start(ctx scene.Context) error {
	ctx.Audio().PlayBGM(bgmScore)

	w, h := ctx.ScreenSize()
	s.step = scoreFadingIn
	s.label = graphics.NewLabel(formatPercent(0), scoreTextSize)
	s.label.Color = colorWhite
	s.label.Align = graphics.AlignCenter
	s.label.Baseline = graphics.AlignCenter
	s.label.X, s.label.Y = float64(w)/2, float64(h)/2
	s.back = newMenuButton(ctx.Assets(), graphics.NewRect(256, 512, buttonWidth, buttonHeight), "Go to title")

	s.anim = anim.New(1, 0, s.cfg.Timings.FadeMs, easing.InOutSine, s.fadedIn)
	return nil
}

func (s *Score) fadedIn(a *anim.Animation, finished bool, _, overrun float64) {
	if !finished {
		return
	}
	s.step = scoreCounting
	a.Reset(0, float64(s.total), s.cfg.Timings.ScoreCountMs-overrun, easing.OutCirc, s.counting)
}

func (s *Score) counting(_ *anim.Animation, finished bool, value, _ float64) {
	s.label.Text = formatPercent(value)
	if finished {
		s.step = scoreReady
	}
}

func (s *Score) Update(ctx scene.Context) error {
	s.anim.Advance(ctx.DeltaTime())

	s.back.Update(ctx.Pointer())
	if s.step != scoreReady || !s.back.WasClicked() {
		return nil
	}

	ctx.Audio().PlaySE(seSelection)
	s.step = scoreFadingOut
	s.anim.Reset(0, 1, s.cfg.Timings.FadeMs, easing.InOutSine, func(_ *anim.Animation, finished bool, _, _ float64) {
		if finished {
			ctx.Scenes().Request(NewTitle(ctx, s.cfg))
		}
	})
	return nil
}

func (s *Score) Draw(ctx scene.Context, screen *ebiten.Image) {
	screen.Fill(colorBlack)
	if s.anim == nil {
		return
	}
	s.label.Draw(screen)
	s.back.Draw(screen)

	if s.step == scoreFadingIn || s.step == scoreFadingOut {
		graphics.Fade(screen, s.anim.Value())
	}
}

func (s *Score) Terminate(ctx scene.Context) {
	s.anim = nil
	s.label = nil
	s.back = nil
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(v)))
}
