package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmerBS123/tic-tac-toe/internal/logger"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetOrCreatePlayer(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	id, err := s.GetOrCreatePlayer(ctx, "Alice")
	require.NoError(t, err)

	// repeated lookups are case-insensitive and trim whitespace
	again, err := s.GetOrCreatePlayer(ctx, "  alice ")
	require.NoError(t, err)
	assert.Equal(t, id, again)

	other, err := s.GetOrCreatePlayer(ctx, "Bob")
	require.NoError(t, err)
	assert.NotEqual(t, id, other)

	_, err = s.GetOrCreatePlayer(ctx, "   ")
	require.ErrorIs(t, err, ErrEmptyName)
}

func TestRecordMatchValidation(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		m       MatchResult
		wantErr error
	}{
		{
			"bad result",
			MatchResult{PlayerX: "a", PlayerO: "b", Result: "tie", Mode: ModePvP},
			ErrInvalidResult,
		},
		{
			"bad mode",
			MatchResult{PlayerX: "a", PlayerO: "b", Result: ResultX, Mode: "online"},
			ErrInvalidMode,
		},
		{
			"pvai without level",
			MatchResult{PlayerX: "a", PlayerO: "AI", Result: ResultX, Mode: ModePvAI},
			ErrInvalidMode,
		},
		{
			"pvp with level",
			MatchResult{PlayerX: "a", PlayerO: "b", Result: ResultX, Mode: ModePvP, AILevel: "hard"},
			ErrInvalidMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.RecordMatch(ctx, tt.m)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecordAndReadBack(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.RecordMatch(ctx, MatchResult{
		PlayerX: "Alice", PlayerO: "Bob", Result: ResultX, Mode: ModePvP,
	}))
	require.NoError(t, s.RecordMatch(ctx, MatchResult{
		PlayerX: "Alice", PlayerO: "AI", Result: ResultDraw, Mode: ModePvAI, AILevel: "hard",
	}))

	matches, err := s.RecentMatches(ctx, 50, FilterAll)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	// newest first
	assert.Equal(t, "AI", matches[0].PlayerO)
	assert.Equal(t, ResultDraw, matches[0].Result)
	assert.Equal(t, ModePvAI, matches[0].Mode)
	assert.Equal(t, "hard", matches[0].AILevel)
	assert.NotEmpty(t, matches[0].PlayedAt)

	assert.Equal(t, "Bob", matches[1].PlayerO)
	assert.Equal(t, "", matches[1].AILevel)
}

func TestRecentMatchesFilters(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.RecordMatch(ctx, MatchResult{
		PlayerX: "Alice", PlayerO: "Bob", Result: ResultX, Mode: ModePvP,
	}))
	require.NoError(t, s.RecordMatch(ctx, MatchResult{
		PlayerX: "Alice", PlayerO: "AI", Result: ResultO, Mode: ModePvAI, AILevel: "easy",
	}))
	require.NoError(t, s.RecordMatch(ctx, MatchResult{
		PlayerX: "Bob", PlayerO: "AI", Result: ResultDraw, Mode: ModePvAI, AILevel: "hard",
	}))

	pvp, err := s.RecentMatches(ctx, 50, FilterPvP)
	require.NoError(t, err)
	require.Len(t, pvp, 1)
	assert.Equal(t, "Bob", pvp[0].PlayerO)

	easy, err := s.RecentMatches(ctx, 50, FilterEasy)
	require.NoError(t, err)
	require.Len(t, easy, 1)
	assert.Equal(t, "easy", easy[0].AILevel)

	hard, err := s.RecentMatches(ctx, 50, FilterHard)
	require.NoError(t, err)
	require.Len(t, hard, 1)

	medium, err := s.RecentMatches(ctx, 50, FilterMedium)
	require.NoError(t, err)
	assert.Empty(t, medium)

	_, err = s.RecentMatches(ctx, 50, "bogus")
	require.Error(t, err)
}

func TestLeaderboard(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	// Alice: 2 wins (1 pvp, 1 ai-hard), 3 games. Bob: 1 pvp win, 3 games.
	// Carol: 0 games, must not appear.
	require.NoError(t, s.RecordMatch(ctx, MatchResult{
		PlayerX: "Alice", PlayerO: "Bob", Result: ResultX, Mode: ModePvP,
	}))
	require.NoError(t, s.RecordMatch(ctx, MatchResult{
		PlayerX: "Bob", PlayerO: "Alice", Result: ResultX, Mode: ModePvP,
	}))
	require.NoError(t, s.RecordMatch(ctx, MatchResult{
		PlayerX: "Alice", PlayerO: "AI", Result: ResultX, Mode: ModePvAI, AILevel: "hard",
	}))
	require.NoError(t, s.RecordMatch(ctx, MatchResult{
		PlayerX: "Bob", PlayerO: "AI", Result: ResultO, Mode: ModePvAI, AILevel: "easy",
	}))
	_, err := s.GetOrCreatePlayer(ctx, "Carol")
	require.NoError(t, err)

	stats, err := s.Leaderboard(ctx, 50)
	require.NoError(t, err)
	require.Len(t, stats, 3) // Alice, Bob, AI

	assert.Equal(t, "Alice", stats[0].Name)
	assert.Equal(t, 2, stats[0].TotalWins)
	assert.Equal(t, 1, stats[0].PvPWins)
	assert.Equal(t, 1, stats[0].AIHardWins)
	assert.Equal(t, 3, stats[0].TotalGames)
	assert.InDelta(t, 66.7, stats[0].WinPercentage, 0.01)

	// total wins tie: Bob ranks above AI on pvp wins
	assert.Equal(t, "Bob", stats[1].Name)
	assert.Equal(t, 1, stats[1].TotalWins)
	assert.Equal(t, 1, stats[1].PvPWins)
	assert.Equal(t, 3, stats[1].TotalGames)

	assert.Equal(t, "AI", stats[2].Name)
	assert.Equal(t, 1, stats[2].TotalWins)
	assert.Equal(t, 1, stats[2].AIEasyWins)
	assert.Equal(t, 2, stats[2].TotalGames)
}

func TestLeaderboardLimit(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.RecordMatch(ctx, MatchResult{
		PlayerX: "Alice", PlayerO: "Bob", Result: ResultX, Mode: ModePvP,
	}))

	stats, err := s.Leaderboard(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, stats, 1)
}

func TestResetData(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.RecordMatch(ctx, MatchResult{
		PlayerX: "Alice", PlayerO: "Bob", Result: ResultDraw, Mode: ModePvP,
	}))

	require.NoError(t, s.ResetData(ctx))

	sum, err := s.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, sum)

	matches, err := s.RecentMatches(ctx, 50, FilterAll)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSummary(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.RecordMatch(ctx, MatchResult{
		PlayerX: "Alice", PlayerO: "Bob", Result: ResultDraw, Mode: ModePvP,
	}))
	require.NoError(t, s.RecordMatch(ctx, MatchResult{
		PlayerX: "Alice", PlayerO: "AI", Result: ResultX, Mode: ModePvAI, AILevel: "easy",
	}))

	sum, err := s.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{
		Players:     3,
		Matches:     2,
		PvPMatches:  1,
		PvAIMatches: 1,
		Draws:       1,
	}, sum)
}
