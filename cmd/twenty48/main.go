// twenty48 is a terminal 2048 puzzle with difficulty presets, themes
// and persistent high scores.
//
// Usage:
//
//	twenty48                   - Start with the interactive menu
//	twenty48 play              - Jump straight into a game
//	twenty48 scores            - Show high scores
//	twenty48 stats             - Show aggregate statistics
//	twenty48 serve             - Start SSH server for remote play
//	twenty48 reset             - Delete all recorded games
//
// Global flags:
//
//	--fps <rate>      - Override tick rate
//	--seed <value>    - Set RNG seed for reproducible games
//	--db <path>       - Override database path
//	--config <path>   - Path to a config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/askorohod/twenty48/internal/config"
	"github.com/askorohod/twenty48/internal/core"
	"github.com/askorohod/twenty48/internal/storage"
	"github.com/askorohod/twenty48/internal/tui"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "twenty48",
	Short: "2048 in your terminal",
	Long: `twenty48 is a terminal rendition of the 2048 sliding puzzle.

Slide tiles with the arrow keys (or WASD/HJKL), merge equal numbers
and reach the target tile. Sessions are recorded to a local SQLite
database so your best games survive.

Examples:
  twenty48
  twenty48 play --difficulty hard
  twenty48 scores
  twenty48 serve --ssh :2222`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
}

// loadConfig loads the YAML config and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagDBPath != "" {
		cfg.Database = flagDBPath
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// runtimeConfig builds the runtime config from the terminal size.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	rc := core.DefaultRuntimeConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = cfg.TickRate
	rc.Seed = flagSeed
	return rc
}

// openStore opens the scores database, or returns nil so the game can
// run without persistence.
func openStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(cfg)
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunSession(store, cfg, runtimeConfig(cfg)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
