package config

import (
	_ "embed"
)

//go:embed defaults/twenty48.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// The difficulty table mirrors the classic game: medium is the standard
// 4x4 board with a 10% four-spawn rate, easy softens the spawn rate and
// hard moves to a 5x5 board with more fours.
func Default() Config {
	return Config{
		Theme:      ThemeDark,
		Difficulty: "medium",
		WinTarget:  2048,
		Database:   "~/.twenty48/scores.db",
		TickRate:   60,
		Presets: map[string]Preset{
			"easy":   {BoardSize: 4, FourProb: 0.05},
			"medium": {BoardSize: 4, FourProb: 0.10},
			"hard":   {BoardSize: 5, FourProb: 0.15},
		},
	}
}
