package battleship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/battleship/internal/application/scene/scenetest"
)

func startedScore(t *testing.T, total int) (*scenetest.Context, *Score) {
	t.Helper()
	ctx := scenetest.New()
	s := NewScore(ctx, loadConfig(t), total)
	require.NoError(t, s.Start(ctx))
	return ctx, s
}

func TestScore_CountsUp(t *testing.T) {
	ctx, s := startedScore(t, 61)
	assert.Equal(t, []string{bgmScore}, ctx.Sound.BGM)
	assert.Equal(t, "0%", s.Text())
	assert.Equal(t, 61, s.Total())

	step(t, ctx, s, 1000)
	assert.Equal(t, scoreCounting, s.step)

	step(t, ctx, s, 1500)
	assert.NotEqual(t, "0%", s.Text())
	assert.NotEqual(t, "61%", s.Text())

	step(t, ctx, s, 1500)
	assert.Equal(t, "61%", s.Text())
	assert.Equal(t, scoreReady, s.step)
}

func TestScore_CountOverrun(t *testing.T) {
	ctx, s := startedScore(t, 100)

	step(t, ctx, s, 1100)
	assert.Equal(t, 2900.0, s.anim.Duration())
}

func TestScore_BackToTitle(t *testing.T) {
	ctx, s := startedScore(t, 100)
	step(t, ctx, s, 1000)

	click(t, ctx, s, 300, 520)
	assert.Empty(t, ctx.Sound.Played, "clicks are ignored while counting")

	step(t, ctx, s, 3000)
	click(t, ctx, s, 300, 520)
	assert.Equal(t, []string{seSelection}, ctx.Sound.Played)

	step(t, ctx, s, 1000)
	assert.IsType(t, &Title{}, ctx.Manager.Requested())
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "0%", formatPercent(0))
	assert.Equal(t, "50%", formatPercent(49.5))
	assert.Equal(t, "100%", formatPercent(100))
}
