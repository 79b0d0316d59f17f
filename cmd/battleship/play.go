package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/younwookim/battleship/internal/application/game"
	"github.com/younwookim/battleship/internal/application/replay"
	"github.com/younwookim/battleship/internal/application/scene/battleship"
	"github.com/younwookim/battleship/internal/infrastructure/asset"
	"github.com/younwookim/battleship/internal/infrastructure/audio"
	"github.com/younwookim/battleship/internal/infrastructure/config"
	"github.com/younwookim/battleship/internal/infrastructure/input"
)

var (
	flagConfig string
	flagFPS    float64
	flagSeed   int64
	flagRecord string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window and start at the title screen.

Controls:
  Mouse   - Aim and shoot, press buttons
  F3      - Toggle the frame rate overlay
  Esc     - Quit

Examples:
  battleship play
  battleship play --fps 30 --mute
  battleship play --seed 42 --record session.json
  battleship play --config ./my-configs`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Directory with engine.yaml and battleship.yaml (default: built in)")
	cmd.Flags().Float64Var(&flagFPS, "fps", 0, "Desired frame rate, overrides engine.yaml (0 = unpaced)")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for ship placement (default: time based)")
	cmd.Flags().StringVar(&flagRecord, "record", "", "Record the session to this replay file")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}

	rate := cfg.Engine.Loop.DesiredFrameRate
	if cmd.Flags().Changed("fps") {
		rate = flagFPS
	}
	seed := flagSeed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}

	display := cfg.Engine.Display
	assets := asset.NewManager(assetFS(), logger, asset.WithTextures(asset.EbitenTextures))

	sound := newAudio(cfg.Engine.Audio, assets)
	if cfg.Engine.Audio.Enabled && !flagMute {
		if err := sound.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer sound.Close()
		}
	}

	var clock game.Clock = game.SystemClock{}
	var source input.Source = input.NewEbitenSource(display.Width, display.Height)
	var gameAssets game.AssetSource = assets

	var recorder *replay.Recorder
	if flagRecord != "" {
		recorder = replay.NewRecorder(seed, clock, source)
		clock, source = recorder, recorder
		gameAssets = recorder.Assets(assets)
		logger.Info("recording enabled", "file", flagRecord, "seed", seed)
	}

	g := game.New(game.Options{
		Width:            display.Width,
		Height:           display.Height,
		DesiredFrameRate: rate,
		Clock:            clock,
		Logger:           logger,
		Seed:             seed,
	}, gameAssets, input.NewMouse(source), sound)
	g.Scenes().Request(battleship.NewTitle(g, cfg.Battleship))

	runErr := g.RunWindowed(display.Title, display.Scale)

	if recorder != nil {
		recorder.Stop()
		if err := recorder.Save(flagRecord); err != nil {
			logger.Error("failed to save replay", "error", err)
		} else {
			logger.Info("replay saved", "file", flagRecord, "frames", recorder.FrameCount())
		}
	}
	return runErr
}

func newAudio(cfg config.AudioConfig, clips audio.ClipSource) *audio.Manager {
	return audio.NewManager(clips, audio.Config{
		SampleRate: cfg.SampleRate,
		Buffer:     time.Duration(cfg.BufferMs) * time.Millisecond,
		Volume:     cfg.Volume,
	}, logger)
}
