package snake

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var embeddedLevels []byte

// Level is one board layout of the campaign.
type Level struct {
	ID             int      `yaml:"id"`
	Name           string   `yaml:"name"`
	TargetFood     int      `yaml:"target_food"`      // Food needed to clear the level
	MoveEveryTicks int      `yaml:"move_every_ticks"` // Base move interval
	Layout         []string `yaml:"layout"`           // Rows, '#' is a wall
}

type levelFile struct {
	Levels []Level `yaml:"levels"`
}

// Levels is the built-in campaign.
var Levels = mustParseLevels(embeddedLevels)

func mustParseLevels(data []byte) []Level {
	levels, err := ParseLevels(data)
	if err != nil {
		panic(fmt.Sprintf("snake: embedded levels: %v", err))
	}
	return levels
}

// ParseLevels decodes and validates a YAML level set.
func ParseLevels(data []byte) ([]Level, error) {
	var f levelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(f.Levels) == 0 {
		return nil, errors.New("no levels defined")
	}
	for i, l := range f.Levels {
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("level %d: %w", i+1, err)
		}
	}
	return f.Levels, nil
}

// LoadLevelsFile reads a custom level set from disk.
func LoadLevelsFile(path string) ([]Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snake: reading levels %s: %w", path, err)
	}
	levels, err := ParseLevels(data)
	if err != nil {
		return nil, fmt.Errorf("snake: parsing levels %s: %w", path, err)
	}
	return levels, nil
}

// Validate checks that a level is playable.
func (l Level) Validate() error {
	if l.Name == "" {
		return errors.New("empty name")
	}
	if l.TargetFood <= 0 {
		return fmt.Errorf("target_food must be > 0, got %d", l.TargetFood)
	}
	if l.MoveEveryTicks <= 0 {
		return fmt.Errorf("move_every_ticks must be > 0, got %d", l.MoveEveryTicks)
	}
	w, h := l.Size()
	if w < InitialLength+4 || h < 3 {
		return fmt.Errorf("layout %dx%d is too small", w, h)
	}
	return nil
}

// Size returns the layout width (longest row) and height.
func (l Level) Size() (w, h int) {
	for _, row := range l.Layout {
		w = max(w, len(row))
	}
	return w, len(l.Layout)
}

// Walls returns the set of wall cells.
func (l Level) Walls() map[Cell]bool {
	walls := make(map[Cell]bool)
	for y, row := range l.Layout {
		for x, ch := range row {
			if ch == '#' {
				walls[Cell{X: x, Y: y}] = true
			}
		}
	}
	return walls
}

// LevelCount returns the number of built-in levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the i-th built-in level (0-indexed), or nil.
func GetLevel(i int) *Level {
	if i < 0 || i >= len(Levels) {
		return nil
	}
	return &Levels[i]
}

// LevelNames returns the names of all built-in levels.
func LevelNames() []string {
	names := make([]string, LevelCount())
	for i, level := range Levels {
		names[i] = level.Name
	}
	return names
}
