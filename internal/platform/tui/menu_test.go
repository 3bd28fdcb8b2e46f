package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/console-arcade/internal/registry"
)

var testItems = []registry.GameInfo{
	{ID: "adventure", Title: "Village Hero"},
	{ID: "rps", Title: "Rock, Paper, Scissors"},
}

func press(m MenuModel, msg tea.KeyMsg) (MenuModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(MenuModel), cmd
}

func TestMenuNavigateAndSelect(t *testing.T) {
	m := NewMenuModel(testItems)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown}) // clamps at last item
	if m.cursor != 1 {
		t.Fatalf("Expected cursor at 1, got %d", m.cursor)
	}

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("Selecting should quit the program")
	}

	res := resultFrom(m)
	if res.Quit || res.GameID != "rps" {
		t.Errorf("Expected rps selection, got %+v", res)
	}
}

func TestMenuVimKeys(t *testing.T) {
	m := NewMenuModel(testItems)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.cursor != 1 {
		t.Errorf("j should move down, cursor %d", m.cursor)
	}
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if m.cursor != 0 {
		t.Errorf("k should move up and clamp at 0, cursor %d", m.cursor)
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(testItems)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("Quit should return a command")
	}
	if !resultFrom(m).Quit {
		t.Error("Expected quit result")
	}
	if m.View() != "" {
		t.Error("Quitting menu should render nothing")
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(testItems)
	view := m.View()

	for _, want := range []string{"A R C A D E", "> Village Hero", "Rock, Paper, Scissors"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q:\n%s", want, view)
		}
	}
}
