package battleship

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/younwookim/battleship/internal/application/scene"
	"github.com/younwookim/battleship/internal/application/scene/scenetest"
	"github.com/younwookim/battleship/internal/infrastructure/config"
)

func loadConfig(t *testing.T) *config.BattleshipConfig {
	t.Helper()
	cfg, err := config.NewLoader("../../../../cmd/battleship/configs").LoadBattleship()
	require.NoError(t, err)
	return cfg
}

func step(t *testing.T, ctx *scenetest.Context, s scene.Scene, dt float64) {
	t.Helper()
	require.NoError(t, ctx.Step(s, dt))
}

func click(t *testing.T, ctx *scenetest.Context, s scene.Scene, x, y int) {
	t.Helper()
	ctx.Mouse.ClickAt(x, y)
	step(t, ctx, s, 16)
}
