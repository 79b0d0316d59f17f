package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/battleship/internal/application/game"
	"github.com/younwookim/battleship/internal/application/replay"
	"github.com/younwookim/battleship/internal/application/scene/battleship"
	"github.com/younwookim/battleship/internal/infrastructure/asset"
	"github.com/younwookim/battleship/internal/infrastructure/config"
	"github.com/younwookim/battleship/internal/infrastructure/input"
)

var flagReplayConfig string

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Run a recorded session headless",
	Long: `Run a session recorded with "battleship play --record" without a
window or sound. Recorded time is fast-forwarded, so the replay finishes as
fast as the machine allows. When it ends the active scene and the last
reported frame rate are printed.

The same configuration the session was recorded with must be used.

Examples:
  battleship replay session.json
  battleship replay session.json --config ./my-configs`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayConfig, "config", "", "Directory with engine.yaml and battleship.yaml (default: built in)")
}

func runReplay(cmd *cobra.Command, args []string) error {
	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(flagReplayConfig)
	if err != nil {
		return err
	}

	g, frames, err := playBack(data, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "frames: %d\nscene: %s\nfps: %d\n", frames, activeScene(g), g.FrameRate())
	return nil
}

func activeScene(g *game.Game) string {
	if active := g.Scenes().Active(); active != nil {
		return fmt.Sprintf("%T", active)
	}
	return "none"
}

// playBack starts a headless game at the title and ticks it through every
// recorded frame. Sound is tracked but never opened.
func playBack(data *replay.ReplayData, cfg *config.GameConfig) (*game.Game, int, error) {
	player := replay.NewPlayer(*data)
	assets := asset.NewManager(assetFS(), logger)

	g := game.New(game.Options{
		Width:    cfg.Engine.Display.Width,
		Height:   cfg.Engine.Display.Height,
		Headless: true,
		Clock:    player,
		Logger:   logger,
		Seed:     player.Seed(),
	}, player.Assets(assets), input.NewMouse(player), newAudio(cfg.Engine.Audio, assets))
	g.Scenes().Request(battleship.NewTitle(g, cfg.Battleship))

	for !player.Done() {
		running, err := g.Tick()
		if err != nil {
			return nil, player.CurrentFrame(), err
		}
		if !running {
			break
		}
	}
	return g, player.CurrentFrame(), nil
}
