package config

import (
	_ "embed"
)

//go:embed defaults/blitz21.yaml
var defaultBlitz21YAML []byte

// DefaultBlitz21Config returns the built-in Blitz 21 configuration.
func DefaultBlitz21Config() Blitz21Config {
	return Blitz21Config{
		Board: Blitz21Board{
			Width:       10,
			Height:      15,
			SpawnColumn: -1,
		},
		Speed: Blitz21Speed{
			InitialIntervalTicks: 60,
			MinIntervalTicks:     6,
			SpeedUpEveryTicks:    1800,
			SpeedUpPercent:       10,
			SoftDropDivisor:      6,
		},
		Scoring: Blitz21Scoring{
			PointsPerCard: 21,
			CascadeBonus:  50,
		},
		Difficulty: "easy",
	}
}
