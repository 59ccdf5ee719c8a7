package setup

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmerBS123/tic-tac-toe/internal/storage"
	"github.com/OmerBS123/tic-tac-toe/pkg/minimax"
	"github.com/OmerBS123/tic-tac-toe/pkg/tictactoe"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeName(m *Model, name string) {
	for _, r := range name {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestPvPSetup(t *testing.T) {
	m := InitialModel("", storage.ModePvP)

	typeName(m, "Alice")
	m.Update(key("enter"))
	typeName(m, "Bob")
	m.Update(key("enter"))

	require.False(t, m.Aborted())
	settings := m.Settings()
	assert.Equal(t, storage.ModePvP, settings.Mode)
	assert.Equal(t, "Alice", settings.NameX)
	assert.Equal(t, "Bob", settings.NameO)
}

func TestPvPSetupDefaults(t *testing.T) {
	m := InitialModel("", storage.ModePvP)

	m.Update(key("enter"))
	m.Update(key("enter"))

	settings := m.Settings()
	assert.Equal(t, "Player 1", settings.NameX)
	assert.Equal(t, "Player 2", settings.NameO)
}

func TestPvAISetupHumanPlaysO(t *testing.T) {
	m := InitialModel("", storage.ModePvAI)

	// difficulty: hard
	m.Update(key("down"))
	m.Update(key("down"))
	m.Update(key("enter"))
	// symbol: O
	m.Update(key("down"))
	m.Update(key("enter"))
	// name
	typeName(m, "Alice")
	m.Update(key("enter"))

	require.False(t, m.Aborted())
	settings := m.Settings()
	assert.Equal(t, storage.ModePvAI, settings.Mode)
	assert.Equal(t, minimax.Hard, settings.Difficulty)
	assert.Equal(t, tictactoe.O, settings.HumanSymbol)
	assert.Equal(t, AIName, settings.NameX)
	assert.Equal(t, "Alice", settings.NameO)
}

func TestPvAISetupDefaultsToEasyAndX(t *testing.T) {
	m := InitialModel("", storage.ModePvAI)

	m.Update(key("enter")) // difficulty: easy
	m.Update(key("enter")) // symbol: X
	m.Update(key("enter")) // name: default

	settings := m.Settings()
	assert.Equal(t, minimax.Easy, settings.Difficulty)
	assert.Equal(t, tictactoe.X, settings.HumanSymbol)
	assert.Equal(t, "Player 1", settings.NameX)
	assert.Equal(t, AIName, settings.NameO)
}

func TestSetupAbort(t *testing.T) {
	m := InitialModel("", storage.ModePvAI)

	m.Update(key("enter"))
	_, cmd := m.Update(key("esc"))

	assert.NotNil(t, cmd)
	assert.True(t, m.Aborted())
	assert.Empty(t, m.View())
}
