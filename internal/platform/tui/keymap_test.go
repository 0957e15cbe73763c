package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"k", runeKey('k'), core.ActionUp, false},
		{"h", runeKey('h'), core.ActionLeft, false},
		{"j", runeKey('j'), core.ActionDown, false},
		{"l", runeKey('l'), core.ActionRight, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.expected || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)",
					tc.msg.String(), action, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrameKeepsTurnOrder(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	for _, msg := range []tea.KeyMsg{runeKey('w'), runeKey('a'), runeKey('p')} {
		if km.MapKeyToFrame(msg, &frame) {
			t.Fatalf("MapKeyToFrame(%q) reported quit", msg.String())
		}
	}

	if len(frame.Turns) != 2 || frame.Turns[0] != core.ActionUp || frame.Turns[1] != core.ActionLeft {
		t.Errorf("Turns = %v, expected [Up Left]", frame.Turns)
	}
	if !frame.Has(core.ActionPause) {
		t.Error("Pause should be set in the frame")
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("MapKeyToFrame(q) should report quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("Quit should not be recorded as a game action")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	km := NewKeyMapper()
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}
