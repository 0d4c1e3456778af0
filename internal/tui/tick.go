// Package tui is the Bubble Tea front-end: key mapping, the fixed-rate
// simulation loop, and the menu/game/scoreboard screen flow, locally
// and over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time of one simulation tick.
type TickMsg time.Time

// tickEvery schedules the next simulation tick. Rates below 1 are
// treated as 1 so a broken config cannot stall the loop.
func tickEvery(rate int) tea.Cmd {
	if rate < 1 {
		rate = 1
	}
	return tea.Tick(time.Second/time.Duration(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
