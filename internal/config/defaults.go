package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Movement: SnakeMovement{
			MoveEveryTicks:    0,
			MinMoveEveryTicks: 2,
		},
		Scoring: SnakeScoring{
			PointsPerFood:   1,
			LevelClearBonus: 5,
		},
		Board: SnakeBoard{
			BlockWidth: 2,
			HUDHeight:  2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				SpeedupTicks: 3,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
