// Package menu is the main menu scene.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Choice int

const (
	ChoicePvP Choice = iota
	ChoicePvAI
	ChoiceHistory
	ChoiceLeaderboard
	ChoiceReset
	ChoiceQuit
)

var labels = []string{
	"New game: two players",
	"New game: versus AI",
	"Match history",
	"Leaderboard",
	"Reset all data",
	"Quit",
}

var listSelectorStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}).Render

type Model struct {
	cursor int
	header string
	choice Choice
	done   bool
}

func InitialModel(header string) *Model {
	return &Model{
		header: header,
		choice: ChoiceQuit,
	}
}

// Choice is what the user picked; ChoiceQuit if the scene was dismissed.
func (m *Model) Choice() Choice {
	return m.choice
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.choice = ChoiceQuit
			m.done = true
			return m, tea.Quit

		case "enter":
			m.choice = Choice(m.cursor)
			m.done = true
			return m, tea.Quit

		case "down", "j":
			m.cursor++
			if m.cursor >= len(labels) {
				m.cursor = 0
			}

		case "up", "k":
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(labels) - 1
			}
		}
	}

	return m, nil
}

func (m *Model) View() string {
	if m.done {
		return ""
	}

	s := strings.Builder{}
	s.WriteString(m.header)

	for i, label := range labels {
		if m.cursor == i {
			s.WriteString(listSelectorStyle("(•) "))
		} else {
			s.WriteString(listSelectorStyle("( ) "))
		}

		s.WriteString(label)
		s.WriteString("\n")
	}

	return s.String()
}
