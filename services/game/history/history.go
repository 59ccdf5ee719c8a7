// Package history is the match history scene: recent matches in a table,
// filterable by mode and AI difficulty.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/OmerBS123/tic-tac-toe/internal/storage"
)

const matchLimit = 50

// filters in cycling order, with their display names.
var filters = []struct {
	value string
	label string
}{
	{storage.FilterAll, "All"},
	{storage.FilterPvP, "PvP"},
	{storage.FilterEasy, "AI-Easy"},
	{storage.FilterMedium, "AI-Medium"},
	{storage.FilterHard, "AI-Hard"},
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Render
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#414141ff", Dark: "#8f8f8fff"}).Render
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#bb0000ff", Dark: "#df1010ff"}).Render
)

type store interface {
	RecentMatches(ctx context.Context, limit int, filter string) ([]storage.MatchRecord, error)
}

type rowsMsg struct {
	rows []table.Row
	err  error
}

type Model struct {
	store  store
	table  table.Model
	header string
	filter int
	err    error
	done   bool
}

func InitialModel(header string, st store) *Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 10},
			{Title: "Time", Width: 5},
			{Title: "Player X", Width: 12},
			{Title: "Player O", Width: 12},
			{Title: "Result", Width: 12},
			{Title: "Mode", Width: 5},
			{Title: "AI", Width: 6},
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
	filter := filters[m.filter].value
	return func() tea.Msg {
		matches, err := m.store.RecentMatches(context.Background(), matchLimit, filter)
		if err != nil {
			return rowsMsg{err: err}
		}

		rows := make([]table.Row, 0, len(matches))
		for _, match := range matches {
			rows = append(rows, matchRow(match))
		}
		return rowsMsg{rows: rows}
	}
}

// matchRow renders one match: the result column carries the winner's name,
// the AI column the difficulty or a dash.
func matchRow(m storage.MatchRecord) table.Row {
	date, clock := splitTimestamp(m.PlayedAt)

	result := "Draw"
	switch m.Result {
	case storage.ResultX:
		result = m.PlayerX
	case storage.ResultO:
		result = m.PlayerO
	}

	aiLevel := m.AILevel
	if aiLevel == "" {
		aiLevel = "-"
	}

	return table.Row{date, clock, m.PlayerX, m.PlayerO, result, m.Mode, aiLevel}
}

func splitTimestamp(ts string) (string, string) {
	t, err := time.Parse("2006-01-02 15:04:05", ts)
	if err != nil {
		return ts, ""
	}
	return t.Format("2006-01-02"), t.Format("15:04")
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

		case "f":
			m.filter = (m.filter + 1) % len(filters)
			return m, m.load()
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
	s += titleStyle("MATCH HISTORY") + fmt.Sprintf("  (%s)\n\n", filters[m.filter].label)

	if m.err != nil {
		s += errStyle("failed to load history: "+m.err.Error()) + "\n"
		return s
	}

	s += m.table.View() + "\n"
	s += hintStyle("f: cycle filter • esc: back to menu") + "\n"
	return s
}
