package blitz21

import "testing"

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"easy", ModeEasy, false},
		{"Easy", ModeEasy, false},
		{"hard", ModeHard, false},
		{"Hard", ModeHard, false},
		{"medium", ModeEasy, true},
		{"", ModeEasy, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestModeString(t *testing.T) {
	if ModeEasy.String() != "Easy" || ModeHard.String() != "Hard" {
		t.Errorf("Mode strings = %q, %q", ModeEasy, ModeHard)
	}
}

func TestScoringScalesWithLength(t *testing.T) {
	s := Scoring{PointsPerCard: 21, CascadeBonus: 50}

	if got := s.PathPoints(2); got != 42 {
		t.Errorf("PathPoints(2) = %d, want 42", got)
	}
	if got := s.PathPoints(5); got != 105 {
		t.Errorf("PathPoints(5) = %d, want 105", got)
	}
	if s.PathPoints(3) <= s.PathPoints(2) {
		t.Error("longer path does not outscore shorter one")
	}
}

func TestScoringCascadeBonus(t *testing.T) {
	s := Scoring{PointsPerCard: 21, CascadeBonus: 50}
	step := ClearStep{Paths: []Path{{{0, 0}, {0, 1}}}, Removed: 2}

	if got := s.StepPoints(step, 0); got != 42 {
		t.Errorf("first iteration = %d, want 42 (no bonus)", got)
	}
	if got := s.StepPoints(step, 1); got != 92 {
		t.Errorf("second iteration = %d, want 92 (bonus applied)", got)
	}
}

func TestSpeedCurveNeverSlowsDown(t *testing.T) {
	c := SpeedCurve{
		InitialIntervalTicks: 60,
		MinIntervalTicks:     6,
		SpeedUpEveryTicks:    1800,
		SpeedUpPercent:       10,
	}

	if got := c.IntervalAt(1); got != 60 {
		t.Fatalf("IntervalAt(1) = %d, want 60", got)
	}

	prev := c.IntervalAt(1)
	for level := 2; level <= 60; level++ {
		got := c.IntervalAt(level)
		if got > prev {
			t.Fatalf("interval grew from %d to %d at level %d", prev, got, level)
		}
		if got < c.MinIntervalTicks {
			t.Fatalf("interval %d below floor %d at level %d", got, c.MinIntervalTicks, level)
		}
		prev = got
	}

	// Deep levels sit on the floor.
	if got := c.IntervalAt(1000); got != c.MinIntervalTicks {
		t.Errorf("IntervalAt(1000) = %d, want floor %d", got, c.MinIntervalTicks)
	}
}

func TestSpeedCurveTenPercentSteps(t *testing.T) {
	c := SpeedCurve{
		InitialIntervalTicks: 100,
		MinIntervalTicks:     1,
		SpeedUpEveryTicks:    1800,
		SpeedUpPercent:       10,
	}
	if got := c.IntervalAt(2); got != 90 {
		t.Errorf("IntervalAt(2) = %d, want 90", got)
	}
	if got := c.IntervalAt(3); got != 81 {
		t.Errorf("IntervalAt(3) = %d, want 81", got)
	}
}
