// Package registry holds the factories for every playable game mode.
// Modes register themselves in init() functions, so the platform and the
// CLI can look them up by ID without importing the game packages directly.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is what the platform drives: a fixed-tick simulation that renders
// into a screen buffer and knows nothing about terminals or key codes.
type Game interface {
	// ID returns the mode identifier used on the command line and as the
	// score table key (e.g. "snake", "snake_endless").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new run with the given screen size and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current score and status flags.
	State() core.GameState
}

// EndReporter is implemented by games that can say why a run ended.
type EndReporter interface {
	EndReason() string
}

// LevelStarter is implemented by games whose first level can be chosen.
type LevelStarter interface {
	StartAt(level int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

type entry struct {
	factory Factory
	title   string
}

// Register adds a game factory under id.
// Panics if id is empty or already registered.
func Register(id string, f Factory) {
	if strings.TrimSpace(id) == "" {
		panic("registry: empty game id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// IDs returns the registered game IDs in sorted order.
func IDs() []string {
	games := List()
	ids := make([]string, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}
	return ids
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q (available: %s)", id, strings.Join(IDs(), ", "))
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
