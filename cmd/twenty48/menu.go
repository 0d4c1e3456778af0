package main

import (
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the interactive menu",
	Long: `Start in interactive menu mode. This is also what running
twenty48 with no subcommand does.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter        - Select
  Q            - Quit

Examples:
  twenty48 menu
  twenty48 menu --fps 30
  twenty48 menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}
