package blitz21

import "fmt"

// Mode gates the combination finder's suit constraint. It is fixed for
// the lifetime of one session.
type Mode int

const (
	// ModeEasy allows paths to mix suits freely.
	ModeEasy Mode = iota
	// ModeHard requires every card in a path to share one suit.
	ModeHard
)

// String returns the display name of the mode.
func (m Mode) String() string {
	if m == ModeHard {
		return "Hard"
	}
	return "Easy"
}

// ParseMode converts a config/CLI string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "easy", "Easy":
		return ModeEasy, nil
	case "hard", "Hard":
		return ModeHard, nil
	default:
		return ModeEasy, fmt.Errorf("blitz21: unknown difficulty mode %q", s)
	}
}

// Scoring holds the tunable score parameters. PointsPerCard scales with
// path length, so a longer accepted path always outscores a shorter one.
type Scoring struct {
	PointsPerCard int // Points per card in an accepted path (default 21)
	CascadeBonus  int // Flat bonus per cascade iteration beyond the first
}

// PathPoints returns the score contribution of one accepted path.
func (s Scoring) PathPoints(length int) int {
	return s.PointsPerCard * length
}

// StepPoints scores one cascade iteration. iteration is zero-based;
// iterations after the first earn the cascade bonus on top of their paths.
func (s Scoring) StepPoints(step ClearStep, iteration int) int {
	points := 0
	for _, p := range step.Paths {
		points += s.PathPoints(len(p))
	}
	if iteration > 0 {
		points += s.CascadeBonus
	}
	return points
}

// TotalPoints scores a full cascade.
func (s Scoring) TotalPoints(steps []ClearStep) int {
	total := 0
	for i, step := range steps {
		total += s.StepPoints(step, i)
	}
	return total
}

// SpeedCurve maps the session level to a fall interval in ticks.
// The interval shrinks by SpeedUpPercent per level and clamps at
// MinIntervalTicks, so it never grows during a session.
type SpeedCurve struct {
	InitialIntervalTicks int // Fall interval at level 1
	MinIntervalTicks     int // Hard floor for the interval
	SpeedUpEveryTicks    int // Ticks between automatic level increases
	SpeedUpPercent       int // Interval reduction per level, in percent
}

// IntervalAt returns the fall interval for a 1-based level.
func (c SpeedCurve) IntervalAt(level int) int {
	interval := c.InitialIntervalTicks
	for i := 1; i < level; i++ {
		interval = interval * (100 - c.SpeedUpPercent) / 100
		if interval <= c.MinIntervalTicks {
			return c.MinIntervalTicks
		}
	}
	if interval < c.MinIntervalTicks {
		return c.MinIntervalTicks
	}
	return interval
}
