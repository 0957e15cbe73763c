package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game IDs of the two snake modes.
const (
	CampaignID = "snake"
	EndlessID  = "snake_endless"
)

// Selection is what the player picked in the mode menu.
type Selection struct {
	GameID     string // CampaignID or EndlessID
	Level      int    // 0 = start from the beginning, otherwise 1-based
	Scoreboard bool   // The player asked for the high score table
}

type modeOption int

const (
	optCampaign modeOption = iota
	optEndless
	optSelectLevel
	optScores
	optCount
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

// ModeModel lets the player choose campaign or endless mode and a start level.
type ModeModel struct {
	levels        []string
	cursor        modeOption
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     *Selection
	quitting      bool
	back          bool
}

// NewModeModel creates a mode menu for a campaign with the given level names.
func NewModeModel(levels []string, width, height int) ModeModel {
	return ModeModel{
		levels:    levels,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m ModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelect(action)
		}
		return m.handleModeSelect(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m ModeModel) handleModeSelect(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = (m.cursor + optCount - 1) % optCount
	case MenuActionDown:
		m.cursor = (m.cursor + 1) % optCount
	case MenuActionSelect:
		switch m.cursor {
		case optCampaign:
			m.selection = &Selection{GameID: CampaignID}
			return m, tea.Quit
		case optEndless:
			m.selection = &Selection{GameID: EndlessID}
			return m, tea.Quit
		case optSelectLevel:
			m.inLevelSelect = true
			m.levelCursor = 0
		case optScores:
			m.selection = &Selection{Scoreboard: true}
			return m, tea.Quit
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

func (m ModeModel) handleLevelSelect(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.levelCursor = max(0, m.levelCursor-1)
	case MenuActionDown:
		m.levelCursor = min(len(m.levels)-1, m.levelCursor+1)
	case MenuActionSelect:
		m.selection = &Selection{GameID: CampaignID, Level: m.levelCursor + 1}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}
	return m, nil
}

// View renders the mode/level selection.
func (m ModeModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewModeSelect()
}

func (m ModeModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	options := [optCount]string{
		optCampaign:    fmt.Sprintf("Campaign (%d levels)", len(m.levels)),
		optEndless:     "Endless",
		optSelectLevel: "Select Level...",
		optScores:      "High Scores",
	}
	for i, label := range options {
		b.WriteString(centerText(cursorLine(modeOption(i) == m.cursor, label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

func (m ModeModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	for i, name := range m.levels {
		b.WriteString(centerText(cursorLine(i == m.levelCursor, fmt.Sprintf("%2d. %s", i+1, name)), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

func cursorLine(selected bool, label string) string {
	if selected {
		return "> " + label
	}
	return "  " + label
}

// centerText pads text on the left so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// Selected returns the selection, or nil if none was made.
func (m ModeModel) Selected() *Selection {
	return m.selection
}

// IsQuitting returns true if user wants to quit.
func (m ModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m ModeModel) WantsBack() bool {
	return m.back
}

// RunModeSelector runs the mode menu and returns the selection,
// or nil if the player quit or went back.
func RunModeSelector(levels []string, cfg core.RuntimeConfig) (*Selection, error) {
	p := tea.NewProgram(NewModeModel(levels, cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: mode selector: %w", err)
	}

	m, ok := finalModel.(ModeModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
