// Package match is the scene for a single game of tic-tac-toe, human against
// human or human against the AI.
package match

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/OmerBS123/tic-tac-toe/pkg/minimax"
	"github.com/OmerBS123/tic-tac-toe/pkg/tictactoe"
)

type botPlayer interface {
	SelectMove(context.Context, *tictactoe.Board, tictactoe.Player) (int, error)
	Stats() *minimax.SearchStats
}

var (
	xStyle               = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#007e50ff", Dark: "#6afd76ff"}).Render
	oStyle               = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0003adff", Dark: "#5f61fcff"}).Render
	cursorStyle          = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#960000ff", Dark: "#fc7e7eff"}).Render
	winningLineStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#bb0000ff", Dark: "#df1010ff"}).Render
	lastWinningStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#f80000ff", Dark: "#f18787ff"}).Render
	bracketStyle         = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#414141ff", Dark: "#8f8f8fff"}).Render
	lastMoveBracketStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000000ff", Dark: "#ffffffff"}).Render
	statStyle            = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#8a880fff", Dark: "#ddda1dff"}).Render
	hintStyle            = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#414141ff", Dark: "#8f8f8fff"}).Render
)

var thinkingColors = []func(strs ...string) string{
	bracketStyle,
	lastMoveBracketStyle,
}

type Model struct {
	board    *tictactoe.Board
	cursor   int
	aiPlayer tictactoe.Player // Empty in pvp matches
	bot      botPlayer
	spinner  spinner.Model
	sub      chan botDoneMsg
	header   string
	nameX    string
	nameO    string

	outcome tictactoe.Outcome
	Replay  bool
}

// InitialModel builds a match scene. bot is nil for a pvp match; for pvai,
// aiPlayer is the symbol the bot plays.
func InitialModel(header string, bot botPlayer, aiPlayer tictactoe.Player, nameX, nameO string) *Model {
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &Model{
		board:    tictactoe.NewBoard(),
		aiPlayer: aiPlayer,
		bot:      bot,
		spinner:  s,
		sub:      make(chan botDoneMsg),
		header:   header,
		nameX:    nameX,
		nameO:    nameO,
	}
}

// Outcome is the final outcome of the match, InProgress if it was abandoned.
func (m *Model) Outcome() tictactoe.Outcome {
	return m.outcome
}

func (m *Model) Completed() bool {
	return m.outcome.Terminal()
}

func (m *Model) Init() tea.Cmd {
	if m.bot != nil && m.aiPlayer == m.board.CurrentPlayer() {
		return tea.Batch(m.beginTick(), waitForBot(m.sub), m.botMove(context.Background(), m.sub))
	}

	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case botDoneMsg:
		m.cursor = msg.cursor
		m.outcome = msg.outcome
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "right":
			cursor, _ := m.moveRight()
			m.cursor = cursor
		case "left":
			cursor, _ := m.moveLeft()
			m.cursor = cursor
		case "up":
			if m.cursor > 2 {
				oCursor := m.cursor
				m.cursor -= 3
				for {
					if m.cursor < 0 {
						m.cursor = oCursor
						return m, nil
					}

					if m.board.At(m.cursor) == tictactoe.Empty {
						break
					}

					m.cursor -= 3
				}
			}
		case "down":
			if m.cursor < 6 {
				oCursor := m.cursor
				m.cursor += 3
				for {
					if m.cursor > 8 {
						m.cursor = oCursor
						return m, nil
					}

					if m.board.At(m.cursor) == tictactoe.Empty {
						break
					}

					m.cursor += 3
				}
			}
		case "enter":
			if m.outcome.Terminal() {
				m.Replay = true
				return m, tea.Quit
			}

			if m.botTurn() {
				return m, nil
			}

			m.cursor = m.playMove(m.cursor, m.board.CurrentPlayer())
			m.outcome = m.board.Outcome()
			if m.outcome.Terminal() {
				return m, nil
			}

			if m.bot != nil {
				return m, tea.Batch(m.beginTick(), waitForBot(m.sub), m.botMove(context.Background(), m.sub))
			}
		}

	default:
		if m.outcome.Terminal() {
			m.cursor = -1
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) botTurn() bool {
	return m.bot != nil && m.board.CurrentPlayer() == m.aiPlayer && !m.outcome.Terminal()
}

// playMove applies the move and returns the next free cursor position.
func (m *Model) playMove(move int, p tictactoe.Player) int {
	if err := m.board.ApplyMove(move, p); err != nil {
		panic(err)
	}

	if m.cursor != move {
		return m.cursor
	}

	cursor, rOk := m.moveRight()
	if rOk {
		return cursor
	}

	cursor, lOk := m.moveLeft()
	if lOk {
		return cursor
	}

	return -1
}

type botDoneMsg struct {
	cursor  int
	outcome tictactoe.Outcome
}

func waitForBot(sub chan botDoneMsg) tea.Cmd {
	return func() tea.Msg {
		return botDoneMsg(<-sub)
	}
}

func (m *Model) beginTick() tea.Cmd {
	return func() tea.Msg {
		return m.spinner.Tick()
	}
}

func (m *Model) botMove(ctx context.Context, sub chan botDoneMsg) tea.Cmd {
	return func() tea.Msg {
		nextMove, err := m.bot.SelectMove(ctx, m.board, m.aiPlayer)
		if err != nil {
			panic(err)
		}

		cursor := m.playMove(nextMove, m.aiPlayer)
		sub <- botDoneMsg{
			cursor:  cursor,
			outcome: m.board.Outcome(),
		}

		return nil
	}
}

func (m *Model) moveRight() (int, bool) {
	oCursor := m.cursor

	cursor := m.cursor
	if cursor >= 0 && cursor < 8 {
		cursor++
		for {
			if cursor > 8 {
				return oCursor, false
			}

			if m.board.At(cursor) == tictactoe.Empty {
				break
			}

			cursor++
		}
		return cursor, true
	}

	return oCursor, false
}

func (m *Model) moveLeft() (int, bool) {
	oCursor := m.cursor

	cursor := m.cursor
	if cursor > 0 {
		cursor--
		for {
			if cursor < 0 {
				return oCursor, false
			}

			if m.board.At(cursor) == tictactoe.Empty {
				break
			}

			cursor--
		}
		return cursor, true
	}

	return oCursor, false
}

func (m *Model) playerName(p tictactoe.Player) string {
	if p == tictactoe.X {
		return m.nameX
	}
	return m.nameO
}

func styledMark(p tictactoe.Player) string {
	switch p {
	case tictactoe.X:
		return xStyle(p.Mark())
	case tictactoe.O:
		return oStyle(p.Mark())
	}
	return p.Mark()
}

func (m *Model) View() string {
	if m.outcome.Terminal() && m.Replay {
		return ""
	}

	var highlights []int
	if ln, ok := m.board.WinningLine(); ok {
		highlights = ln[:]
	}

	s := m.header

	botTurn := m.botTurn()

	current := m.board.CurrentPlayer()
	if !m.outcome.Terminal() {
		s += fmt.Sprintf("Current player: %s (%s)", styledMark(current), m.playerName(current))
		if botTurn {
			s += " " + m.spinner.View()
		}
		s += "\n"
	}

	for i := 0; i < 9; i++ {
		p := m.board.At(i)
		mark := p.Mark()
		if m.cursor == i {
			mark = cursorStyle("*")
		}

		if botTurn && p == tictactoe.Empty {
			mark = []string{"o", "x", " ", " "}[rand.N(4)]
			mark = thinkingColors[rand.IntN(len(thinkingColors))](mark)
		}

		if p != tictactoe.Empty {
			mark = styledMark(p)
		}

		bStyle := bracketStyle
		winningCell := slices.Contains(highlights, i)

		if winningCell {
			bStyle = winningLineStyle
		}

		if m.board.LastMove == i && p != tictactoe.Empty {
			bStyle = lastMoveBracketStyle
			if winningCell {
				bStyle = lastWinningStyle
			}
		}

		s += fmt.Sprintf("%s%s%s", bStyle("["), mark, bStyle("]"))
		if (i+1)%3 == 0 {
			s += "\n"
		}
	}

	if m.bot != nil && !botTurn {
		if stats := m.bot.Stats(); stats != nil {
			s += "\n" + fmt.Sprintf(
				"AI played %s after %s: %s nodes, %s cutoffs at depth %s\n",
				statStyle(fmt.Sprintf("cell %d", stats.BestMove)),
				statStyle(stats.ThinkTime.String()),
				statStyle(fmt.Sprintf("%d", stats.Nodes)),
				statStyle(fmt.Sprintf("%d", stats.Cutoffs)),
				statStyle(fmt.Sprintf("%d", stats.Depth)),
			)
		}
	}

	if m.outcome.Terminal() {
		s += "\n" + gameOverText + "\n"

		switch m.outcome {
		case tictactoe.Draw:
			s += "It's a " + cursorStyle("DRAW") + "\n"
		case tictactoe.WinX:
			s += fmt.Sprintf("THE WINNER IS: %s (%s)\n", xStyle("X"), m.nameX)
		case tictactoe.WinO:
			s += fmt.Sprintf("THE WINNER IS: %s (%s)\n", oStyle("O"), m.nameO)
		}

		s += hintStyle("enter: play again • esc: back to menu") + "\n"
	}

	return s
}

const gameOverText = `ＧＡＭＥ ＯＶＥＲ`
