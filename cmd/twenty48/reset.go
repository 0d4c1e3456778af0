package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded games and high scores",
	Long: `Delete every recorded game and the aggregate statistics.
This cannot be undone.

Examples:
  twenty48 reset --yes
  twenty48 reset --db ./scores.db --yes`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetYes, "yes", false, "Skip the confirmation prompt")
}

func runReset(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !flagResetYes {
		fmt.Printf("Delete all recorded games in %s? [y/N] ", cfg.Database)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return
		}
	}

	store := openStore(cfg)
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	if err := store.ClearGames(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("All scores cleared.")
}
