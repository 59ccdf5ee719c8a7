// Package leaderboard is the leaderboard scene: player standings in a table,
// ranked by total wins.
package leaderboard

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/OmerBS123/tic-tac-toe/internal/storage"
)

const playerLimit = 50

var medals = []string{"1st", "2nd", "3rd"}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Render
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#414141ff", Dark: "#8f8f8fff"}).Render
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#bb0000ff", Dark: "#df1010ff"}).Render
)

type store interface {
	Leaderboard(ctx context.Context, limit int) ([]storage.PlayerStats, error)
}

type rowsMsg struct {
	rows []table.Row
	err  error
}

type Model struct {
	store  store
	table  table.Model
	header string
	err    error
	done   bool
}

func InitialModel(header string, st store) *Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 4},
			{Title: "", Width: 3},
			{Title: "Player", Width: 12},
			{Title: "Total", Width: 5},
			{Title: "PvP", Width: 4},
			{Title: "AI-E", Width: 4},
			{Title: "AI-M", Width: 4},
			{Title: "AI-H", Width: 4},
			{Title: "Win%", Width: 5},
			{Title: "Games", Width: 5},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("205"))
	t.SetStyles(styles)

	return &Model{
		store:  st,
		table:  t,
		header: header,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.load()
}

func (m *Model) load() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.store.Leaderboard(context.Background(), playerLimit)
		if err != nil {
			return rowsMsg{err: err}
		}

		rows := make([]table.Row, 0, len(stats))
		for i, ps := range stats {
			medal := ""
			if i < len(medals) {
				medal = medals[i]
			}
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", i+1),
				medal,
				ps.Name,
				fmt.Sprintf("%d", ps.TotalWins),
				fmt.Sprintf("%d", ps.PvPWins),
				fmt.Sprintf("%d", ps.AIEasyWins),
				fmt.Sprintf("%d", ps.AIMediumWins),
				fmt.Sprintf("%d", ps.AIHardWins),
				fmt.Sprintf("%.1f", ps.WinPercentage),
				fmt.Sprintf("%d", ps.TotalGames),
			})
		}
		return rowsMsg{rows: rows}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rowsMsg:
		m.err = msg.err
		m.table.SetRows(msg.rows)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	if m.done {
		return ""
	}

	s := m.header
	s += titleStyle("LEADERBOARD") + "\n\n"

	if m.err != nil {
		s += errStyle("failed to load leaderboard: "+m.err.Error()) + "\n"
		return s
	}

	s += m.table.View() + "\n"
	s += hintStyle("esc: back to menu") + "\n"
	return s
}
