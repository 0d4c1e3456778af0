package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/askorohod/twenty48/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics per difficulty",
	Long: `Display all-time statistics for every difficulty that has
recorded games: games played, wins, best score and tile, averages.

Examples:
  twenty48 stats
  twenty48 stats --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(cfg)
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	all, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	fmt.Println("Statistics")
	fmt.Println()
	fmt.Printf("  %-10s  %-6s  %-5s  %-8s  %-9s  %-9s  %s\n",
		"Difficulty", "Games", "Wins", "Best", "Best Tile", "Avg Score", "Total Time")
	fmt.Printf("  %-10s  %-6s  %-5s  %-8s  %-9s  %-9s  %s\n",
		"----------", "-----", "----", "----", "---------", "---------", "----------")

	// Configured presets in their standard order, then any recorded
	// difficulties no longer present in the config.
	for _, name := range cfg.DifficultyNames() {
		if hs, ok := all[name]; ok {
			printStatsRow(hs)
			delete(all, name)
		}
	}
	leftovers := make([]string, 0, len(all))
	for name := range all {
		leftovers = append(leftovers, name)
	}
	sort.Strings(leftovers)
	for _, name := range leftovers {
		printStatsRow(all[name])
	}
}

func printStatsRow(hs *storage.HighScore) {
	total := time.Duration(hs.TotalDurationSeconds * float64(time.Second)).Round(time.Second)
	fmt.Printf("  %-10s  %-6d  %-5d  %-8d  %-9d  %-9.0f  %s\n",
		hs.Difficulty,
		hs.GamesPlayed,
		hs.Wins,
		hs.BestScore,
		hs.BestTile,
		hs.AvgScore(),
		total,
	)
}
