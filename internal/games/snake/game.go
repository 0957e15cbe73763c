package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Reasons a run ended, reported by EndReason.
const (
	EndWall = "wall"
	EndSelf = "self"
	EndWon  = "won"
)

const (
	levelClearTicks  = 90 // ~1.5 seconds at 60 FPS
	endlessFoodLevel = 10 // Food per layout in endless mode
	maxBufferedTurns = 2
)

// Options configures a new Game.
type Options struct {
	Mode       Mode
	Config     config.SnakeConfig
	Levels     []Level // nil means the built-in campaign
	StartLevel int     // 1-based; 0 starts from the beginning
}

// Game implements the Snake game on top of the Snake state machine:
// tick timing, input buffering, walls, food, score and levels.
type Game struct {
	mode       Mode
	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager
	levels     []Level
	startLevel int

	rng            *rand.Rand
	tick           uint64
	score          int
	foodEaten      int // Food eaten in current level
	levelIndex     int // Current level (0-indexed, keeps counting in endless)
	moveEveryTicks int
	moveTicker     int // Counts ticks until next move

	snake *Snake
	turns []Heading // Buffered turns, applied one per move

	// Map state
	mapWidth  int
	mapHeight int
	walls     map[Cell]bool
	food      Cell
	hasFood   bool
	grid      core.Grid

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver     bool
	levelCleared bool
	won          bool
	paused       bool
	tooSmall     bool
	endReason    string

	levelClearTicks int

	// Per-tick events
	ate  bool
	died bool
}

// Package-level defaults used by the registry factories.
var (
	defaultConfig = config.DefaultSnakeConfig()
	defaultLevels []Level
)

// SetConfig sets the configuration used by games created through the registry.
func SetConfig(cfg config.SnakeConfig) {
	defaultConfig = cfg
}

// SetLevels replaces the level set used by games created through the
// registry. nil restores the built-in campaign.
func SetLevels(levels []Level) {
	defaultLevels = levels
}

// New creates a new campaign mode Snake game.
func New() *Game {
	return NewWithOptions(Options{Mode: ModeCampaign, Config: defaultConfig, Levels: defaultLevels})
}

// NewEndless creates a new endless mode Snake game.
func NewEndless() *Game {
	return NewWithOptions(Options{Mode: ModeEndless, Config: defaultConfig, Levels: defaultLevels})
}

// NewWithOptions creates a game with explicit settings.
func NewWithOptions(opts Options) *Game {
	if opts.Mode == "" {
		opts.Mode = ModeCampaign
	}
	levels := opts.Levels
	if len(levels) == 0 {
		levels = Levels
	}
	return &Game{
		mode:       opts.Mode,
		cfg:        opts.Config,
		difficulty: config.NewDifficultyManager(opts.Config.Difficulty),
		levels:     levels,
		startLevel: opts.StartLevel,
	}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_endless", func() registry.Game {
		return NewEndless()
	})
}

// StartAt sets the 1-based campaign level the next Reset starts from.
func (g *Game) StartAt(level int) {
	g.startLevel = level
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "snake_endless"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Snake (Endless)"
	}
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.foodEaten = 0
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.tooSmall = false
	g.endReason = ""
	g.levelClearTicks = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	// Apply selected start level (campaign only)
	g.levelIndex = 0
	if g.mode == ModeCampaign && g.startLevel > 0 && g.startLevel <= len(g.levels) {
		g.levelIndex = g.startLevel - 1
	}

	g.loadLevel()
}

// level returns the layout for the current level index.
func (g *Game) level() Level {
	return g.levels[g.levelIndex%len(g.levels)]
}

// loadLevel loads the current level's map and spawns the snake.
func (g *Game) loadLevel() {
	level := g.level()

	g.moveTicker = 0
	g.foodEaten = 0
	g.levelCleared = false
	g.walls = level.Walls()
	g.mapWidth, g.mapHeight = level.Size()

	// Check if screen is too small
	blockW := max(1, g.cfg.Board.BlockWidth)
	hud := g.cfg.Board.HUDHeight
	requiredW := g.mapWidth * blockW
	requiredH := g.mapHeight + hud
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	// Center the map horizontally below the HUD
	g.grid = core.Grid{
		OriginX: (g.screenW - requiredW) / 2,
		OriginY: hud,
		BlockW:  blockW,
		BlockH:  1,
	}

	g.initSnake()
	g.updateMoveInterval()
	g.spawnFood()
}

// baseMoveTicks is the level speed before difficulty scaling.
func (g *Game) baseMoveTicks() int {
	base := g.level().MoveEveryTicks
	if g.cfg.Movement.MoveEveryTicks > 0 {
		base = g.cfg.Movement.MoveEveryTicks
	}
	if g.mode == ModeEndless {
		// Each full cycle through the layouts reduces the interval by 1
		base -= g.levelIndex / len(g.levels)
	}
	return max(1, base)
}

func (g *Game) updateMoveInterval() {
	g.moveEveryTicks = g.difficulty.MoveInterval(
		g.baseMoveTicks(),
		g.cfg.Movement.MinMoveEveryTicks,
		g.score,
		g.tick,
	)
}

// initSnake places the snake at a safe starting position.
func (g *Game) initSnake() {
	// Start a quarter of the way in, vertically centred
	headX := g.mapWidth/4 + InitialLength - 1
	headY := g.mapHeight / 2

	for range 100 {
		if g.spawnClear(headX, headY) {
			break
		}
		headX = InitialLength + g.rng.Intn(max(1, g.mapWidth-2*InitialLength-2))
		headY = 1 + g.rng.Intn(max(1, g.mapHeight-2))
	}

	g.snake = NewSnake(headX, headY)
	g.turns = g.turns[:0]
}

// spawnClear reports whether a snake with its head at (x, y) has its body
// and a few cells of runway free of walls.
func (g *Game) spawnClear(x, y int) bool {
	for dx := -(InitialLength - 1); dx <= InitialLength; dx++ {
		if !g.inBounds(Cell{X: x + dx, Y: y}) || g.walls[Cell{X: x + dx, Y: y}] {
			return false
		}
	}
	return true
}

// spawnFood places food at a random empty cell.
func (g *Game) spawnFood() {
	var emptyCells []Cell
	for y := range g.mapHeight {
		for x := range g.mapWidth {
			c := Cell{X: x, Y: y}
			if !g.walls[c] && !g.snake.Occupies(c) {
				emptyCells = append(emptyCells, c)
			}
		}
	}

	if len(emptyCells) == 0 {
		// The snake fills the board
		g.hasFood = false
		g.win()
		return
	}

	g.food = emptyCells[g.rng.Intn(len(emptyCells))]
	g.hasFood = true
}

func (g *Game) inBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.mapWidth && c.Y >= 0 && c.Y < g.mapHeight
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	g.ate = false
	g.died = false

	// Handle restart
	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return g.result()
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}

	if g.gameOver || g.won || g.paused || g.tooSmall {
		return g.result()
	}

	// Handle level cleared animation
	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearTicks {
			g.advanceLevel()
		}
		return g.result()
	}

	g.processInput(input)

	// Move snake on tick interval
	g.moveTicker++
	if g.moveTicker >= g.moveEveryTicks {
		g.moveTicker = 0
		g.moveSnake()
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Ate: g.ate, Died: g.died}
}

// processInput buffers direction changes. Each turn is checked against the
// heading the snake will have when the turn is applied, so neither a repeat
// nor an instant reversal is queued.
func (g *Game) processInput(input core.InputFrame) {
	for _, a := range input.Turns {
		h := headingForAction(a)
		last := g.snake.Heading()
		if n := len(g.turns); n > 0 {
			last = g.turns[n-1]
		}
		if h == last || h == last.Opposite() || len(g.turns) >= maxBufferedTurns {
			continue
		}
		g.turns = append(g.turns, h)
	}
}

func headingForAction(a core.Action) Heading {
	switch a {
	case core.ActionUp:
		return HeadingUp
	case core.ActionDown:
		return HeadingDown
	case core.ActionLeft:
		return HeadingLeft
	case core.ActionRight:
		return HeadingRight
	default:
		return HeadingNone
	}
}

// nextHeading pops the next buffered turn the snake accepts.
func (g *Game) nextHeading() Heading {
	for len(g.turns) > 0 {
		h := g.turns[0]
		g.turns = g.turns[1:]
		if g.snake.CanTurn(h) {
			return h
		}
	}
	return HeadingNone
}

// moveSnake moves the snake one cell, checking walls and self collision
// against the projected head before committing the step.
func (g *Game) moveSnake() {
	h := g.nextHeading()
	next := g.snake.PeekNextHead(h)

	if !g.inBounds(next) || g.walls[next] {
		g.die(EndWall)
		return
	}
	if g.snake.Overlaps(next.X, next.Y) {
		g.die(EndSelf)
		return
	}

	if err := g.snake.Step(h); err != nil {
		g.die(EndSelf)
		return
	}

	if g.hasFood && g.snake.Head() == g.food {
		if err := g.snake.Grow(); err == nil {
			g.ate = true
			g.score += g.cfg.Scoring.PointsPerFood
			g.foodEaten++
		}
		g.spawnFood()
		g.checkLevelCompletion()
		g.updateMoveInterval()
	}
}

func (g *Game) die(reason string) {
	g.gameOver = true
	g.died = true
	g.endReason = reason
}

func (g *Game) win() {
	g.won = true
	g.endReason = EndWon
}

// checkLevelCompletion checks if the level is complete.
func (g *Game) checkLevelCompletion() {
	if g.won {
		return
	}
	switch g.mode {
	case ModeCampaign:
		if g.foodEaten >= g.level().TargetFood {
			g.levelCleared = true
			g.levelClearTicks = 0
			g.score += g.cfg.Scoring.LevelClearBonus
		}
	case ModeEndless:
		// Endless mode: transition layouts after every 10 food
		if g.foodEaten >= endlessFoodLevel {
			g.levelIndex++
			g.loadLevel()
		}
	}
}

// advanceLevel moves to the next level.
func (g *Game) advanceLevel() {
	g.levelIndex++
	if g.mode == ModeCampaign && g.levelIndex >= len(g.levels) {
		g.levelIndex = len(g.levels) - 1
		g.levelCleared = false
		g.win()
		return
	}
	g.loadLevel()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	length := 0
	if g.snake != nil {
		length = g.snake.Len()
	}
	return core.GameState{
		Score:    g.score,
		Length:   length,
		Ticks:    g.tick,
		GameOver: g.gameOver || g.won,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// EndReason reports why the last run ended, or "" while it is still going.
func (g *Game) EndReason() string {
	return g.endReason
}

// DebugState describes the game state; screenshots append it below the board.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Level: %d\n", g.tick, g.score, g.levelIndex+1)
	if g.snake != nil {
		head := g.snake.Head()
		fmt.Fprintf(&b, "Snake len: %d, Heading: %s\n", g.snake.Len(), g.snake.Heading())
		fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", head.X, head.Y, g.food.X, g.food.Y)
	}
	fmt.Fprintf(&b, "GameOver: %v, Won: %v, Paused: %v\n", g.gameOver, g.won, g.paused)
	return b.String()
}
