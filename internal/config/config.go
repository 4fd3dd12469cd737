// Package config provides YAML-based game configuration loading and
// difficulty presets for the cardfall platform.
package config

import (
	"errors"
	"fmt"
)

// Blitz21Config contains all tunable parameters for the Blitz 21 game.
type Blitz21Config struct {
	Board      Blitz21Board   `yaml:"board"`
	Speed      Blitz21Speed   `yaml:"speed"`
	Scoring    Blitz21Scoring `yaml:"scoring"`
	Difficulty string         `yaml:"difficulty"` // "easy" or "hard"
}

// Blitz21Board defines the grid dimensions and spawn placement.
type Blitz21Board struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	SpawnColumn int `yaml:"spawn_column"` // -1 = center column
}

// Blitz21Speed defines the fall-speed progression. Intervals are in
// simulation ticks (60 per second by default).
type Blitz21Speed struct {
	InitialIntervalTicks int `yaml:"initial_interval_ticks"`
	MinIntervalTicks     int `yaml:"min_interval_ticks"`
	SpeedUpEveryTicks    int `yaml:"speed_up_every_ticks"`
	SpeedUpPercent       int `yaml:"speed_up_percent"`
	SoftDropDivisor      int `yaml:"soft_drop_divisor"`
}

// Blitz21Scoring defines the score parameters.
type Blitz21Scoring struct {
	PointsPerCard int `yaml:"points_per_card"`
	CascadeBonus  int `yaml:"cascade_bonus"`
}

// Validate rejects configurations a session must not be constructed with.
func (c Blitz21Config) Validate() error {
	var errs []error

	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: board dimensions must be positive, got %dx%d", c.Board.Width, c.Board.Height))
	}
	if c.Board.SpawnColumn != -1 && (c.Board.SpawnColumn < 0 || c.Board.SpawnColumn >= c.Board.Width) {
		errs = append(errs, fmt.Errorf("config: spawn column %d outside board width %d", c.Board.SpawnColumn, c.Board.Width))
	}
	if c.Speed.InitialIntervalTicks <= 0 {
		errs = append(errs, fmt.Errorf("config: initial fall interval must be positive, got %d", c.Speed.InitialIntervalTicks))
	}
	if c.Speed.MinIntervalTicks <= 0 || c.Speed.MinIntervalTicks > c.Speed.InitialIntervalTicks {
		errs = append(errs, fmt.Errorf("config: minimum fall interval must be in [1, %d], got %d", c.Speed.InitialIntervalTicks, c.Speed.MinIntervalTicks))
	}
	if c.Speed.SpeedUpEveryTicks <= 0 {
		errs = append(errs, fmt.Errorf("config: speed-up cadence must be positive, got %d", c.Speed.SpeedUpEveryTicks))
	}
	if c.Speed.SpeedUpPercent < 0 || c.Speed.SpeedUpPercent >= 100 {
		errs = append(errs, fmt.Errorf("config: speed-up percent must be in [0, 99], got %d", c.Speed.SpeedUpPercent))
	}
	if c.Speed.SoftDropDivisor <= 0 {
		errs = append(errs, fmt.Errorf("config: soft drop divisor must be positive, got %d", c.Speed.SoftDropDivisor))
	}
	if c.Scoring.PointsPerCard <= 0 {
		errs = append(errs, fmt.Errorf("config: points per card must be positive, got %d", c.Scoring.PointsPerCard))
	}
	if c.Scoring.CascadeBonus < 0 {
		errs = append(errs, fmt.Errorf("config: cascade bonus must not be negative, got %d", c.Scoring.CascadeBonus))
	}
	if c.Difficulty != "" && c.Difficulty != "easy" && c.Difficulty != "hard" {
		errs = append(errs, fmt.Errorf("config: unknown difficulty %q (want easy or hard)", c.Difficulty))
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty mode.
type DifficultyPreset string

const (
	DifficultyEasy DifficultyPreset = "easy"
	DifficultyHard DifficultyPreset = "hard"
)

// ParsePreset validates a preset string from the CLI.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch s {
	case "easy":
		return DifficultyEasy, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty preset %q (want easy or hard)", s)
	}
}
