package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up in the user and local config directories.
const ConfigFileName = "snake.yaml"

// LoadSnake loads Snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
//
// Fields missing from a file keep their default values. A custom path that
// cannot be read or parsed is an error; the implicit locations are skipped
// silently when absent or broken.
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseSnake(data)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseSnake(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFileName)); err == nil {
		if cfg, err := ParseSnake(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseSnake(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseSnake decodes YAML on top of the defaults and validates the result.
func ParseSnake(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// Validate reports configuration values the game cannot run with.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Movement.MoveEveryTicks < 0 {
		errs = append(errs, fmt.Errorf("movement.move_every_ticks must be >= 0, got %d", c.Movement.MoveEveryTicks))
	}
	if c.Movement.MinMoveEveryTicks < 1 {
		errs = append(errs, fmt.Errorf("movement.min_move_every_ticks must be >= 1, got %d", c.Movement.MinMoveEveryTicks))
	}
	if c.Scoring.PointsPerFood < 0 || c.Scoring.LevelClearBonus < 0 {
		errs = append(errs, errors.New("scoring values must not be negative"))
	}
	if c.Board.BlockWidth < 1 {
		errs = append(errs, fmt.Errorf("board.block_width must be >= 1, got %d", c.Board.BlockWidth))
	}
	if c.Board.HUDHeight < 0 {
		errs = append(errs, fmt.Errorf("board.hud_height must be >= 0, got %d", c.Board.HUDHeight))
	}
	switch c.Difficulty.Progression.Type {
	case "score", "time", "none":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type must be score, time or none, got %q", c.Difficulty.Progression.Type))
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		errs = append(errs, fmt.Errorf("difficulty.initial_level must be within [0, 1], got %g", c.Difficulty.InitialLevel))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Movement.MinMoveEveryTicks = max(cfg.Movement.MinMoveEveryTicks, 4)
	case DifficultyHard:
		cfg.Movement.MinMoveEveryTicks = 1
		cfg.Difficulty.Scaling.SpeedupTicks++
	}
}
