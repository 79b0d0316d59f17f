package config

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadEngine(t *testing.T) {
	loader := NewLoader("../../../cmd/battleship/configs")

	cfg, err := loader.LoadEngine()
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Display.Width)
	assert.Equal(t, 640, cfg.Display.Height)
	assert.Equal(t, "Battleship", cfg.Display.Title)
	assert.Equal(t, 60.0, cfg.Loop.DesiredFrameRate)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 44100, cfg.Audio.SampleRate)
}

func TestLoader_LoadBattleship(t *testing.T) {
	loader := NewLoader("../../../cmd/battleship/configs")

	cfg, err := loader.LoadBattleship()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Board.Width)
	assert.Equal(t, 64, cfg.Board.TileSize)
	require.Len(t, cfg.Fleet, 5)
	assert.Equal(t, ShipConfig{Name: "Aircraft Carrier", Length: 5}, cfg.Fleet[0])
	assert.Equal(t, 18, cfg.FleetCells())
	assert.Equal(t, cfg.FleetCells(), cfg.Score.PerfectShots)
	assert.Equal(t, 1000.0, cfg.Timings.FadeMs)
	assert.Equal(t, 750.0, cfg.Timings.WaterFrameMs)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/battleship/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Engine)
	assert.NotNil(t, cfg.Battleship)
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "mem")

	_, err := loader.LoadEngine()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read mem/engine.yaml")
}

func TestLoader_BadYAML(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{
		"engine.yaml": {Data: []byte("display: [oops")},
	}, "mem")

	_, err := loader.LoadEngine()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse mem/engine.yaml")
}

func TestLoader_ErrorsNameBasePath(t *testing.T) {
	dir := t.TempDir()
	_, err := NewLoader(dir).LoadBattleship()
	require.Error(t, err)
	assert.Contains(t, err.Error(), filepath.Join(dir, "battleship.yaml"))

	loader := NewFSLoader(fstest.MapFS{
		"battleship.yaml": {Data: []byte("board: {width: 0}\n")},
	}, "configs")
	_, err = loader.LoadBattleship()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configs/battleship.yaml")
}

func TestLoader_UnpacedFrameRateIsValid(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{
		"engine.yaml": {Data: []byte("display: {width: 320, height: 240}\nloop: {desiredFrameRate: 0}\n")},
	}, "mem")

	cfg, err := loader.LoadEngine()
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.Loop.DesiredFrameRate)
	assert.Equal(t, 1, cfg.Display.Scale, "scale defaults to 1")
}

func validBattleship() BattleshipConfig {
	return BattleshipConfig{
		Board: BoardConfig{Width: 10, Height: 10, TileSize: 64, TileScale: 2},
		Fleet: []ShipConfig{{Name: "Destroyer", Length: 3}, {Name: "Submarine", Length: 2}},
		Timings: TimingsConfig{
			FadeMs: 1000, ButtonSlideMs: 250, WaterFrameMs: 750,
			LabelHoldMs: 1500, LabelRiseMs: 1000, ScoreCountMs: 3000,
		},
		Score: ScoreConfig{PerfectShots: 5, MaxShots: 100},
	}
}

func TestBattleshipConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *BattleshipConfig)
		errMsg string
	}{
		{"valid", func(c *BattleshipConfig) {}, ""},
		{"zero board", func(c *BattleshipConfig) { c.Board.Width = 0 }, "board size"},
		{"empty fleet", func(c *BattleshipConfig) { c.Fleet = nil }, "fleet is empty"},
		{"ship too long", func(c *BattleshipConfig) { c.Fleet[0].Length = 11 }, "does not fit"},
		{"fleet too big", func(c *BattleshipConfig) {
			c.Board.Width, c.Board.Height = 3, 1
			c.Fleet = []ShipConfig{{Name: "a", Length: 3}, {Name: "b", Length: 1}}
		}, "needs 4 cells"},
		{"zero timing", func(c *BattleshipConfig) { c.Timings.LabelRiseMs = 0 }, "labelRiseMs"},
		{"bad score", func(c *BattleshipConfig) { c.Score.MaxShots = 5 }, "maxShots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validBattleship()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestEngineConfig_Validate(t *testing.T) {
	cfg := EngineConfig{Display: DisplayConfig{Width: 640, Height: 640, Scale: 1}}
	assert.NoError(t, cfg.Validate())

	cfg.Audio = AudioConfig{Enabled: true, SampleRate: 0}
	assert.Error(t, cfg.Validate())

	cfg.Audio = AudioConfig{Enabled: true, SampleRate: 44100, Volume: 1.5}
	assert.Error(t, cfg.Validate())
}
