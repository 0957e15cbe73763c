// Package config provides YAML-based game configuration loading and
// difficulty management for the snake game.
package config

import "fmt"

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Movement   SnakeMovement    `yaml:"movement"`
	Scoring    SnakeScoring     `yaml:"scoring"`
	Board      SnakeBoard       `yaml:"board"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeMovement defines movement timing for Snake.
type SnakeMovement struct {
	// MoveEveryTicks overrides the level's move interval when > 0.
	MoveEveryTicks int `yaml:"move_every_ticks"`
	// MinMoveEveryTicks is the fastest the snake may ever move.
	MinMoveEveryTicks int `yaml:"min_move_every_ticks"`
}

// SnakeScoring defines points awarded during play.
type SnakeScoring struct {
	PointsPerFood   int `yaml:"points_per_food"`
	LevelClearBonus int `yaml:"level_clear_bonus"`
}

// SnakeBoard defines how the board is laid out on screen.
type SnakeBoard struct {
	BlockWidth int    `yaml:"block_width"` // Screen columns per grid cell
	HUDHeight  int    `yaml:"hud_height"`  // Rows reserved above the board
	LevelsFile string `yaml:"levels_file"` // Optional custom level set
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedupTicks int `yaml:"speedup_ticks"` // Ticks shaved off the move interval at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty preset %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
