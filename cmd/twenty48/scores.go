package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/askorohod/twenty48/internal/storage"
	"github.com/askorohod/twenty48/internal/tui"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresTUI    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top games for a difficulty (default: the configured one).

With --recent, shows the latest games across all difficulties instead.

Examples:
  twenty48 scores
  twenty48 scores hard
  twenty48 scores --limit 25
  twenty48 scores --recent
  twenty48 scores --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent games instead of the top scores")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in the interactive scoreboard")
}

func runScores(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	difficulty := cfg.Difficulty
	if len(args) > 0 {
		difficulty = args[0]
	}
	if _, ok := cfg.Presets[difficulty]; !ok && !flagScoresRecent {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", difficulty)
		os.Exit(1)
	}

	store := openStore(cfg)
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		rc := runtimeConfig(cfg)
		if _, err := tui.RunScoreboard(store, cfg.DifficultyNames(), difficulty, rc.ScreenW, rc.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var games []storage.GameEntry
	if flagScoresRecent {
		games, err = store.RecentGames(flagScoresLimit)
	} else {
		games, err = store.TopGames(difficulty, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	if flagScoresRecent {
		fmt.Println("Recent Games")
	} else {
		fmt.Printf("High Scores - %s\n", difficulty)
	}
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Run 'twenty48 play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %-7s  %s\n", "Rank", "Score", "Max Tile", "Moves", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %-7s  %s\n", "----", "-----", "--------", "-----", "----", "----")

	for i, entry := range games {
		d := time.Duration(entry.DurationSeconds * float64(time.Second)).Round(time.Second)
		won := ""
		if entry.Won {
			won = "  (won)"
		}
		fmt.Printf("  %-4d  %-8d  %-8d  %-6d  %-7s  %s%s\n",
			i+1,
			entry.Score,
			entry.MaxTile,
			entry.Moves,
			fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60),
			entry.CreatedAt.Format("2006-01-02 15:04"),
			won,
		)
	}

	if !flagScoresRecent {
		fmt.Println()
		if best, err := store.BestScore(difficulty); err == nil && best > 0 {
			fmt.Printf("Best: %d\n", best)
		}
	}
}
