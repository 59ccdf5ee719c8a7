package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	if s == "up" {
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	if s == "down" {
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMenuSelection(t *testing.T) {
	m := InitialModel("")

	m.Update(key("down"))
	m.Update(key("down"))
	_, cmd := m.Update(key("enter"))

	assert.NotNil(t, cmd)
	assert.Equal(t, ChoiceHistory, m.Choice())
}

func TestMenuCursorWraps(t *testing.T) {
	m := InitialModel("")

	m.Update(key("up"))
	m.Update(key("enter"))
	assert.Equal(t, ChoiceQuit, m.Choice())

	m = InitialModel("")
	for range labels {
		m.Update(key("down"))
	}
	m.Update(key("enter"))
	assert.Equal(t, ChoicePvP, m.Choice())
}

func TestMenuEscQuits(t *testing.T) {
	m := InitialModel("")

	m.Update(key("down"))
	_, cmd := m.Update(key("esc"))

	assert.NotNil(t, cmd)
	assert.Equal(t, ChoiceQuit, m.Choice())
	assert.Empty(t, m.View())
}
