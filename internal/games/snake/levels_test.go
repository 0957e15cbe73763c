package snake

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevelCount(t *testing.T) {
	if LevelCount() != 10 {
		t.Errorf("Expected 10 levels, got %d", LevelCount())
	}
	if len(LevelNames()) != LevelCount() {
		t.Errorf("LevelNames() has %d entries, expected %d", len(LevelNames()), LevelCount())
	}
}

func TestAllLevelsValid(t *testing.T) {
	for i := range LevelCount() {
		level := GetLevel(i)
		if level == nil {
			t.Errorf("Level %d is nil", i)
			continue
		}
		if level.ID != i+1 {
			t.Errorf("Level %d has wrong ID: %d", i, level.ID)
		}
		if err := level.Validate(); err != nil {
			t.Errorf("Level %d (%s) invalid: %v", i, level.Name, err)
		}

		// Every level must leave the default spawn free
		w, h := level.Size()
		walls := level.Walls()
		headX, headY := w/4+InitialLength-1, h/2
		for dx := -(InitialLength - 1); dx <= InitialLength; dx++ {
			if walls[Cell{X: headX + dx, Y: headY}] {
				t.Errorf("Level %d (%s) has a wall in the spawn run at (%d, %d)",
					i, level.Name, headX+dx, headY)
			}
		}
	}
}

func TestGetLevelOutOfRange(t *testing.T) {
	for _, i := range []int{-1, LevelCount()} {
		if GetLevel(i) != nil {
			t.Errorf("GetLevel(%d) should be nil", i)
		}
	}
}

func TestLevelWalls(t *testing.T) {
	l := Level{Layout: []string{
		"#..",
		".#.",
	}}

	walls := l.Walls()
	if len(walls) != 2 || !walls[Cell{0, 0}] || !walls[Cell{1, 1}] {
		t.Errorf("Walls() = %v, expected (0,0) and (1,1)", walls)
	}

	if w, h := l.Size(); w != 3 || h != 2 {
		t.Errorf("Size() = %dx%d, expected 3x2", w, h)
	}
}

func TestParseLevelsErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"empty", "levels: []", "no levels"},
		{"bad yaml", "levels: [", "yaml"},
		{
			"no name",
			"levels:\n  - target_food: 1\n    move_every_ticks: 1\n    layout: ['.......', '.......', '.......']",
			"empty name",
		},
		{
			"zero target",
			"levels:\n  - name: x\n    move_every_ticks: 1\n    layout: ['.......', '.......', '.......']",
			"target_food",
		},
		{
			"zero speed",
			"levels:\n  - name: x\n    target_food: 1\n    layout: ['.......', '.......', '.......']",
			"move_every_ticks",
		},
		{
			"tiny layout",
			"levels:\n  - name: x\n    target_food: 1\n    move_every_ticks: 1\n    layout: ['...']",
			"too small",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLevels([]byte(tc.yaml))
			if err == nil {
				t.Fatal("ParseLevels() should fail")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("ParseLevels() error = %v, expected it to mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadLevelsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	data := `levels:
  - id: 1
    name: Tiny
    target_food: 2
    move_every_ticks: 4
    layout:
      - "........"
      - "..#....."
      - "........"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	levels, err := LoadLevelsFile(path)
	if err != nil {
		t.Fatalf("LoadLevelsFile() failed: %v", err)
	}
	if len(levels) != 1 || levels[0].Name != "Tiny" || levels[0].TargetFood != 2 {
		t.Errorf("LoadLevelsFile() = %+v", levels)
	}
	if !levels[0].Walls()[Cell{2, 1}] {
		t.Error("Wall at (2,1) missing")
	}

	if _, err := LoadLevelsFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadLevelsFile() should fail for a missing file")
	}
}
