package game

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/OmerBS123/tic-tac-toe/internal/storage"
)

var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#bb0000ff", Dark: "#df1010ff"}).Render

// resetModel asks for confirmation before wiping all stored data.
type resetModel struct {
	header    string
	summary   storage.Summary
	confirmed bool
	done      bool
}

func newResetModel(header string, summary storage.Summary) *resetModel {
	return &resetModel{
		header:  header,
		summary: summary,
	}
}

func (m *resetModel) Init() tea.Cmd {
	return nil
}

func (m *resetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case "n", "N", "q", "esc", "ctrl+c", "enter":
			m.done = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *resetModel) View() string {
	if m.done {
		return ""
	}

	s := m.header
	s += warnStyle("Reset all data?") + "\n\n"
	s += fmt.Sprintf("This deletes %d matches and %d players permanently.\n\n",
		m.summary.Matches, m.summary.Players)
	s += "y: delete everything • n: keep my data\n"
	return s
}
