package config

import "testing"

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{5, 0.6},
		{10, 1.0},
		{50, 1.0},
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got < tc.expected-1e-9 || got > tc.expected+1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
	})

	if got := d.Level(1000, 50); got != 0.5 {
		t.Errorf("Level(ticks=50) = %v, expected 0.5", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := d.Level(100, 100); got != 0.4 {
		t.Errorf("Level() = %v, expected initial level 0.4", got)
	}

	d.SetInitialLevel(3)
	if got := d.Level(0, 0); got != 1.0 {
		t.Errorf("SetInitialLevel should clamp to 1.0, got %v", got)
	}
}

func TestMoveInterval(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedupTicks: 4},
	})

	tests := []struct {
		name             string
		base, min, score int
		expected         int
	}{
		{"no progress", 8, 2, 0, 8},
		{"half way", 8, 2, 5, 6},
		{"max difficulty", 8, 2, 10, 4},
		{"floored at min", 5, 3, 10, 3},
		{"floored at one", 2, 0, 10, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := d.MoveInterval(tc.base, tc.min, tc.score, 0)
			if got != tc.expected {
				t.Errorf("MoveInterval(%d, %d, %d) = %d, expected %d", tc.base, tc.min, tc.score, got, tc.expected)
			}
		})
	}
}
