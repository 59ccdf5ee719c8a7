package history

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmerBS123/tic-tac-toe/internal/storage"
)

type fakeStore struct {
	matches    []storage.MatchRecord
	err        error
	lastFilter string
}

func (f *fakeStore) RecentMatches(_ context.Context, _ int, filter string) ([]storage.MatchRecord, error) {
	f.lastFilter = filter
	return f.matches, f.err
}

func TestMatchRow(t *testing.T) {
	row := matchRow(storage.MatchRecord{
		PlayedAt: "2026-08-30 21:15:09",
		PlayerX:  "Alice",
		PlayerO:  "Bob",
		Result:   storage.ResultO,
		Mode:     storage.ModePvP,
	})
	assert.Equal(t, "2026-08-30", row[0])
	assert.Equal(t, "21:15", row[1])
	assert.Equal(t, "Bob", row[4], "result column shows the winner's name")
	assert.Equal(t, "-", row[6], "pvp matches have no ai level")

	row = matchRow(storage.MatchRecord{
		PlayedAt: "2026-08-30 21:20:00",
		PlayerX:  "Alice",
		PlayerO:  "AI",
		Result:   storage.ResultDraw,
		Mode:     storage.ModePvAI,
		AILevel:  "hard",
	})
	assert.Equal(t, "Draw", row[4])
	assert.Equal(t, "hard", row[6])
}

func TestLoadPopulatesTable(t *testing.T) {
	st := &fakeStore{matches: []storage.MatchRecord{
		{PlayedAt: "2026-08-30 21:15:09", PlayerX: "Alice", PlayerO: "Bob", Result: storage.ResultX, Mode: storage.ModePvP},
	}}
	m := InitialModel("", st)

	msg := m.load()()
	m.Update(msg)

	require.NoError(t, m.err)
	require.Len(t, m.table.Rows(), 1)
	assert.Equal(t, "Alice", m.table.Rows()[0][2])
}

func TestFilterCycles(t *testing.T) {
	st := &fakeStore{}
	m := InitialModel("", st)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, storage.FilterPvP, st.lastFilter)

	for i := 0; i < len(filters)-1; i++ {
		_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
		cmd()
	}
	assert.Equal(t, storage.FilterAll, st.lastFilter, "filter wraps back to all")
}

func TestLoadError(t *testing.T) {
	st := &fakeStore{err: errors.New("boom")}
	m := InitialModel("", st)

	m.Update(m.load()())

	require.Error(t, m.err)
	assert.Contains(t, m.View(), "failed to load history")
}
