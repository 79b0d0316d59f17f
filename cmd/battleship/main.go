// battleship is a mouse-driven Battleship game.
//
// Usage:
//
//	battleship                  - Play (same as "battleship play")
//	battleship play             - Open the game window
//	battleship replay <file>    - Run a recorded session headless
//
// Global flags:
//
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/battleship/internal/infrastructure/config"
)

//go:embed configs/*.yaml
var embeddedConfigs embed.FS

//go:embed assets
var embeddedAssets embed.FS

var (
	// Global flags
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "battleship",
	Short: "Battleship - sink the hidden fleet in as few shots as you can",
	Long: `Battleship hides a fleet of five ships on a 10x10 board.
Click tiles to shoot; the fewer shots you need, the higher your score.

Available commands:
  play     - Open the game window (default)
  replay   - Run a recorded session without a window

Examples:
  battleship
  battleship play --record session.json
  battleship replay session.json`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
}

func setupLogger(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "battleship",
		Level:           level,
	})
	return nil
}

// loadConfig reads both YAML files from dir, or the embedded defaults when
// dir is empty.
func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}
	sub, err := fs.Sub(embeddedConfigs, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(sub, "configs").LoadAll()
}

// assetFS returns the embedded asset tree rooted at its img and audio dirs.
func assetFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
