package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// End reasons recorded by the platform itself.
const (
	EndQuit   = "quit"   // The player left mid-run
	EndResize = "resize" // The window changed size and the run restarted
)

// debugStater is implemented by games that can describe their internal state.
type debugStater interface {
	DebugState() string
}

// Model is the Bubble Tea model that drives one game mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	allowBack  bool // Esc/b returns to a menu instead of being ignored
	backToMenu bool
	quitting   bool
	recorded   bool // Result of the current run has been stored
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil; results are then not persisted.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"width", m.config.ScreenW, "height", m.config.ScreenH)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.record(EndQuit)
		m.quitting = true
		return m, tea.Quit
	}

	if m.allowBack && m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.record(EndQuit)
		m.backToMenu = true
	}

	return m, nil
}

// handleResize processes window resize events.
// A running game is recorded and restarts at the new size; a finished one
// keeps its result on screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver {
		m.record(EndResize)
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.recorded = false
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.recorded = false
		m.inputFrame.Clear()
		m.logger.Debug("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.record(endReason(m.game))
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func endReason(g registry.Game) string {
	if er, ok := g.(registry.EndReporter); ok && er.EndReason() != "" {
		return er.EndReason()
	}
	return EndQuit
}

// record stores the score and run of the current game once.
// Runs that never started are not recorded.
func (m *Model) record(reason string) {
	if m.recorded {
		return
	}
	m.recorded = true

	state := m.game.State()
	if state.Ticks == 0 {
		return
	}

	m.logger.Info("run finished",
		"game", m.game.ID(),
		"score", state.Score,
		"length", state.Length,
		"ticks", state.Ticks,
		"reason", reason,
	)

	if m.store == nil {
		return
	}
	if state.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), state.Score); err != nil {
			m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		}
	}
	id, err := m.store.SaveRun(storage.Run{
		GameID:    m.game.ID(),
		Score:     state.Score,
		Length:    state.Length,
		Ticks:     state.Ticks,
		EndReason: reason,
	})
	if err != nil {
		m.logger.Warn("could not save run", "game", m.game.ID(), "error", err)
		return
	}
	m.logger.Debug("run saved", "id", id)
}

// saveScreenshot saves the current screen to ~/.snake/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "dir", dir, "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	content := m.screen.String()
	if ds, ok := m.game.(debugStater); ok {
		content += "\n" + ds.DebugState()
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		m.logger.Warn("screenshot: cannot write file", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for the given game and blocks until it exits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
