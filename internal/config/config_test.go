package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultBlitz21ConfigIsValid(t *testing.T) {
	if err := DefaultBlitz21Config().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg Blitz21Config
	if err := yaml.Unmarshal(defaultBlitz21YAML, &cfg); err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	if cfg != DefaultBlitz21Config() {
		t.Errorf("embedded YAML = %+v, want %+v", cfg, DefaultBlitz21Config())
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Blitz21Config)
		want   string
	}{
		{"zero width", func(c *Blitz21Config) { c.Board.Width = 0 }, "board dimensions"},
		{"negative height", func(c *Blitz21Config) { c.Board.Height = -3 }, "board dimensions"},
		{"spawn column past edge", func(c *Blitz21Config) { c.Board.SpawnColumn = 10 }, "spawn column"},
		{"spawn column below -1", func(c *Blitz21Config) { c.Board.SpawnColumn = -2 }, "spawn column"},
		{"zero initial interval", func(c *Blitz21Config) { c.Speed.InitialIntervalTicks = 0 }, "initial fall interval"},
		{"min above initial", func(c *Blitz21Config) { c.Speed.MinIntervalTicks = 120 }, "minimum fall interval"},
		{"zero cadence", func(c *Blitz21Config) { c.Speed.SpeedUpEveryTicks = 0 }, "speed-up cadence"},
		{"percent 100", func(c *Blitz21Config) { c.Speed.SpeedUpPercent = 100 }, "speed-up percent"},
		{"zero soft drop divisor", func(c *Blitz21Config) { c.Speed.SoftDropDivisor = 0 }, "soft drop divisor"},
		{"zero points per card", func(c *Blitz21Config) { c.Scoring.PointsPerCard = 0 }, "points per card"},
		{"negative cascade bonus", func(c *Blitz21Config) { c.Scoring.CascadeBonus = -1 }, "cascade bonus"},
		{"unknown difficulty", func(c *Blitz21Config) { c.Difficulty = "nightmare" }, "unknown difficulty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBlitz21Config()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %q, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestValidateAllowsSpawnColumnAuto(t *testing.T) {
	cfg := DefaultBlitz21Config()
	cfg.Board.SpawnColumn = -1
	if err := cfg.Validate(); err != nil {
		t.Errorf("spawn column -1 rejected: %v", err)
	}
}

func TestLoadBlitz21CustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blitz21.yaml")
	content := `
board:
  width: 8
  height: 12
  spawn_column: 3
speed:
  initial_interval_ticks: 30
  min_interval_ticks: 3
  speed_up_every_ticks: 900
  speed_up_percent: 15
  soft_drop_divisor: 4
scoring:
  points_per_card: 10
  cascade_bonus: 25
difficulty: hard
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBlitz21(path)
	if err != nil {
		t.Fatalf("LoadBlitz21(%s) error: %v", path, err)
	}
	if cfg.Board.Width != 8 || cfg.Board.Height != 12 {
		t.Errorf("board = %dx%d, want 8x12", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Speed.InitialIntervalTicks != 30 {
		t.Errorf("initial interval = %d, want 30", cfg.Speed.InitialIntervalTicks)
	}
	if cfg.Difficulty != "hard" {
		t.Errorf("difficulty = %q, want hard", cfg.Difficulty)
	}
}

func TestLoadBlitz21CustomPathRejectsInvalid(t *testing.T) {
	// An explicit config path must never fall back to defaults; a session
	// started from a broken file is a construction error, not a variant.
	cases := []struct {
		name    string
		content string
	}{
		{
			name: "zero width",
			content: `
board:
  width: 0
  height: 15
`,
		},
		{
			name: "negative dimensions",
			content: `
board:
  width: -3
  height: 0
`,
		},
		{
			name:    "not yaml",
			content: `{{{`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadBlitz21(path); err == nil {
				t.Fatal("LoadBlitz21 accepted an invalid config")
			}
		})
	}
}

func TestLoadBlitz21MissingCustomPath(t *testing.T) {
	if _, err := LoadBlitz21("/nonexistent/blitz21.yaml"); err == nil {
		t.Fatal("LoadBlitz21 accepted a missing custom path")
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset("easy"); err != nil || p != DifficultyEasy {
		t.Errorf("ParsePreset(easy) = %v, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %v, %v", p, err)
	}
	if _, err := ParsePreset("extreme"); err == nil {
		t.Error("ParsePreset(extreme) accepted")
	}
}
