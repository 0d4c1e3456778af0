package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() config is invalid: %v", err)
	}
}

func TestLoadCustomPathMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	// Partial file: only overrides difficulty and theme.
	data := []byte("theme: light\ndifficulty: hard\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Theme != ThemeLight {
		t.Errorf("Theme = %q, want light", cfg.Theme)
	}
	if cfg.Difficulty != "hard" {
		t.Errorf("Difficulty = %q, want hard", cfg.Difficulty)
	}
	// Untouched keys keep their defaults.
	if cfg.WinTarget != 2048 {
		t.Errorf("WinTarget = %d, want default 2048", cfg.WinTarget)
	}
	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d, want default 60", cfg.TickRate)
	}

	preset, err := cfg.Preset()
	if err != nil {
		t.Fatalf("Preset() failed: %v", err)
	}
	if preset.BoardSize != 5 {
		t.Errorf("hard preset board size = %d, want 5", preset.BoardSize)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load("/nonexistent/twenty48.yaml"); err == nil {
		t.Error("Load() with missing explicit path should fail")
	}
}

func TestDifficultyNamesOrder(t *testing.T) {
	cfg := Default()
	cfg.Presets["insane"] = Preset{BoardSize: 6, FourProb: 0.25}
	cfg.Presets["blitz"] = Preset{BoardSize: 4, FourProb: 0.20}

	got := cfg.DifficultyNames()
	want := []string{"easy", "medium", "hard", "blitz", "insane"}
	if len(got) != len(want) {
		t.Fatalf("DifficultyNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DifficultyNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown theme", func(c *Config) { c.Theme = "solarized" }},
		{"unknown difficulty", func(c *Config) { c.Difficulty = "nightmare" }},
		{"non power of two target", func(c *Config) { c.WinTarget = 1000 }},
		{"tiny target", func(c *Config) { c.WinTarget = 4 }},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"bad board size", func(c *Config) {
			c.Presets["medium"] = Preset{BoardSize: 1, FourProb: 0.1}
		}},
		{"four prob out of range", func(c *Config) {
			c.Presets["medium"] = Preset{BoardSize: 4, FourProb: 1.5}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() accepted an invalid config")
			}
		})
	}
}
