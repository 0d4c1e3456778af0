package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/askorohod/twenty48/internal/game"
	"github.com/askorohod/twenty48/internal/tui"
)

var (
	flagDifficulty string
	flagTarget     int
	flagTheme      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game directly, skipping the menu",
	Long: `Start a game immediately with the configured (or flagged) settings.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  C                - Keep playing after a win
  P                - Pause
  R                - Restart
  Q/Ctrl+C         - Quit

Difficulty presets:
  easy   - 4x4 board, fewer 4-tiles
  medium - 4x4 board, classic spawn odds
  hard   - 5x5 board, more 4-tiles

Examples:
  twenty48 play
  twenty48 play --difficulty hard
  twenty48 play --target 4096
  twenty48 play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset (overrides config)")
	playCmd.Flags().IntVar(&flagTarget, "target", 0, "Win target tile (overrides config)")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Color theme: dark or light (overrides config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		cfg.Difficulty = flagDifficulty
	}
	if flagTarget > 0 {
		cfg.WinTarget = flagTarget
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts, err := game.OptionsFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(cfg)

	runErr := tui.Run(game.New(opts), store, runtimeConfig(cfg))

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
