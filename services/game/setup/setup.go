// Package setup is the match configuration scene: difficulty and symbol for
// AI matches, player names for both modes.
package setup

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/OmerBS123/tic-tac-toe/internal/storage"
	"github.com/OmerBS123/tic-tac-toe/pkg/minimax"
	"github.com/OmerBS123/tic-tac-toe/pkg/tictactoe"
)

// AIName is the reserved name stored for the AI opponent.
const AIName = "AI"

var listSelectorStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}).Render

// Settings is the outcome of the scene.
type Settings struct {
	Mode        string // storage.ModePvP or storage.ModePvAI
	Difficulty  minimax.Difficulty
	HumanSymbol tictactoe.Player // pvai only
	NameX       string
	NameO       string
}

type stage int

const (
	stageDifficulty stage = iota
	stageSymbol
	stageHumanName
	stageNameX
	stageNameO
	stageDone
)

type Model struct {
	cursor int
	stage  stage
	header string
	input  textinput.Model

	settings Settings
	aborted  bool
}

func InitialModel(header, mode string) *Model {
	input := textinput.New()
	input.CharLimit = 20
	input.Width = 24
	input.Focus()

	m := &Model{
		header: header,
		input:  input,
		settings: Settings{
			Mode: mode,
		},
	}

	if mode == storage.ModePvP {
		m.stage = stageNameX
		m.input.Placeholder = "Player 1"
	} else {
		m.stage = stageDifficulty
	}

	return m
}

func (m *Model) Settings() Settings {
	return m.settings
}

// Aborted reports whether the user backed out instead of finishing setup.
func (m *Model) Aborted() bool {
	return m.aborted
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) choices() []string {
	switch m.stage {
	case stageDifficulty:
		return []string{"easy", "medium", "hard"}
	case stageSymbol:
		return []string{"X (first)", "O"}
	default:
		return nil
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInput(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		m.stage = stageDone
		return m, tea.Quit

	case "enter":
		m.advance()
		if m.stage == stageDone {
			return m, tea.Quit
		}
		return m, nil

	case "down", "j":
		if choices := m.choices(); choices != nil {
			m.cursor++
			if m.cursor >= len(choices) {
				m.cursor = 0
			}
			return m, nil
		}

	case "up", "k":
		if choices := m.choices(); choices != nil {
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.choices()) - 1
			}
			return m, nil
		}
	}

	return m.updateInput(msg)
}

func (m *Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.textStage() {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) textStage() bool {
	return m.stage == stageHumanName || m.stage == stageNameX || m.stage == stageNameO
}

func (m *Model) inputValue(fallback string) string {
	v := strings.TrimSpace(m.input.Value())
	if v == "" {
		return fallback
	}
	return v
}

func (m *Model) advance() {
	switch m.stage {
	case stageDifficulty:
		m.settings.Difficulty = minimax.Difficulty(m.cursor)
		m.stage = stageSymbol
		m.cursor = 0

	case stageSymbol:
		m.settings.HumanSymbol = tictactoe.X
		if m.cursor == 1 {
			m.settings.HumanSymbol = tictactoe.O
		}
		m.stage = stageHumanName
		m.input.Placeholder = "Player 1"
		m.input.SetValue("")

	case stageHumanName:
		name := m.inputValue("Player 1")
		if m.settings.HumanSymbol == tictactoe.X {
			m.settings.NameX = name
			m.settings.NameO = AIName
		} else {
			m.settings.NameX = AIName
			m.settings.NameO = name
		}
		m.stage = stageDone

	case stageNameX:
		m.settings.NameX = m.inputValue("Player 1")
		m.stage = stageNameO
		m.input.Placeholder = "Player 2"
		m.input.SetValue("")

	case stageNameO:
		m.settings.NameO = m.inputValue("Player 2")
		m.stage = stageDone
	}
}

func (m *Model) View() string {
	if m.stage == stageDone {
		return ""
	}

	s := strings.Builder{}
	s.WriteString(m.header)

	switch m.stage {
	case stageDifficulty:
		s.WriteString("Choose AI difficulty:\n")
	case stageSymbol:
		s.WriteString("Choose your symbol:\n")
	case stageHumanName:
		s.WriteString("Your name:\n")
	case stageNameX:
		s.WriteString("Name for X (plays first):\n")
	case stageNameO:
		s.WriteString("Name for O:\n")
	}

	if choices := m.choices(); choices != nil {
		for i, label := range choices {
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

	s.WriteString(m.input.View())
	s.WriteString("\n")
	return s.String()
}
