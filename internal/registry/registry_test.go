package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func stub(id string) Factory {
	return func() Game { return &stubGame{id: id} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test_b", stub("test_b"))
	Register("test_a", stub("test_a"))

	if !Exists("test_a") {
		t.Fatal("Exists(test_a) = false, expected true")
	}

	g, err := Create("test_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test_a" {
		t.Errorf("Create().ID() = %q, expected test_a", g.ID())
	}

	// List is sorted and carries titles
	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "test_") {
			ids = append(ids, info.ID)
			if info.Title != strings.ToUpper(info.ID) {
				t.Errorf("title of %s = %q", info.ID, info.Title)
			}
		}
	}
	if strings.Join(ids, ",") != "test_a,test_b" {
		t.Errorf("List() ids = %v, expected [test_a test_b]", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create() should fail for an unknown id")
	}
	if Exists("no_such_game") {
		t.Error("Exists() should be false for an unknown id")
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"duplicate", "test_dup"},
		{"empty", " "},
	}

	Register("test_dup", stub("test_dup"))

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%q) should panic", tc.id)
				}
			}()
			Register(tc.id, stub(tc.id))
		})
	}
}
