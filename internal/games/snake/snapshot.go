package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick           uint64
	Level          int    // Current level (1-indexed for display)
	Mode           string // "campaign" or "endless"
	Score          int
	FoodEaten      int // Food eaten in current level
	Body           []Cell
	Heading        Heading
	Food           Cell
	HasFood        bool
	MoveEveryTicks int
	State          GameStateType
	EndReason      string
}

// Head returns the head cell of the snapshot body.
func (s Snapshot) Head() Cell {
	if len(s.Body) == 0 {
		return Cell{}
	}
	return s.Body[0]
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	}

	snap := Snapshot{
		Tick:           g.tick,
		Level:          g.levelIndex + 1,
		Mode:           string(g.mode),
		Score:          g.score,
		FoodEaten:      g.foodEaten,
		Food:           g.food,
		HasFood:        g.hasFood,
		MoveEveryTicks: g.moveEveryTicks,
		State:          state,
		EndReason:      g.endReason,
	}
	if g.snake != nil {
		snap.Body = g.snake.Body().Cells()
		snap.Heading = g.snake.Heading()
	}
	return snap
}
