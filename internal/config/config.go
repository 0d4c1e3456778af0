// Package config provides YAML-based configuration loading for the game:
// theme, difficulty presets, win target and storage location.
package config

import (
	"fmt"
	"sort"
)

// Theme names accepted in configuration.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Config contains all user-tunable settings.
type Config struct {
	Theme      string            `yaml:"theme"`      // "dark" or "light"
	Difficulty string            `yaml:"difficulty"` // Preset name, e.g. "medium"
	WinTarget  int               `yaml:"win_target"` // Tile value that wins the game
	Database   string            `yaml:"database"`   // Path to the scores database
	TickRate   int               `yaml:"tick_rate"`  // Simulation ticks per second
	Presets    map[string]Preset `yaml:"difficulties"`
}

// Preset defines the parameters of a difficulty level.
type Preset struct {
	BoardSize int     `yaml:"board_size"` // Grid dimension (4 classic, 5 hard)
	FourProb  float64 `yaml:"four_prob"`  // Probability a spawned tile is a 4
}

// Preset returns the settings for the configured difficulty.
func (c Config) Preset() (Preset, error) {
	p, ok := c.Presets[c.Difficulty]
	if !ok {
		return Preset{}, fmt.Errorf("config: unknown difficulty %q", c.Difficulty)
	}
	return p, nil
}

// DifficultyNames returns the configured difficulty names with the
// standard presets first, extras sorted after them.
func (c Config) DifficultyNames() []string {
	names := make([]string, 0, len(c.Presets))
	for _, std := range []string{"easy", "medium", "hard"} {
		if _, ok := c.Presets[std]; ok {
			names = append(names, std)
		}
	}
	var extras []string
	for name := range c.Presets {
		if name != "easy" && name != "medium" && name != "hard" {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	return append(names, extras...)
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Theme != ThemeDark && c.Theme != ThemeLight {
		return fmt.Errorf("config: unknown theme %q", c.Theme)
	}
	if _, err := c.Preset(); err != nil {
		return err
	}
	if c.WinTarget < 8 || c.WinTarget&(c.WinTarget-1) != 0 {
		return fmt.Errorf("config: win_target %d must be a power of two >= 8", c.WinTarget)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.TickRate)
	}
	for name, p := range c.Presets {
		if p.BoardSize < 2 || p.BoardSize > 8 {
			return fmt.Errorf("config: difficulty %q has invalid board_size %d", name, p.BoardSize)
		}
		if p.FourProb < 0 || p.FourProb > 1 {
			return fmt.Errorf("config: difficulty %q has invalid four_prob %v", name, p.FourProb)
		}
	}
	return nil
}
