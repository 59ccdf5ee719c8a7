// Package storage persists players and match results in SQLite and serves the
// leaderboard and history reads. The game core never reads anything back; it
// only hands over a MatchResult on a terminal outcome.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/OmerBS123/tic-tac-toe/internal/logger"
)

var (
	ErrEmptyName     = errors.New("player name cannot be empty")
	ErrInvalidResult = errors.New("invalid match result")
	ErrInvalidMode   = errors.New("invalid match mode")
)

var schema = []string{`
CREATE TABLE IF NOT EXISTS players (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`, `
CREATE TABLE IF NOT EXISTS matches (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	played_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	player_x_id INTEGER NOT NULL,
	player_o_id INTEGER NOT NULL,
	result TEXT NOT NULL CHECK (result IN ('X', 'O', 'Draw')),
	mode TEXT NOT NULL CHECK (mode IN ('pvp', 'pvai')),
	ai_level TEXT CHECK (ai_level IN ('easy', 'medium', 'hard') OR ai_level IS NULL),
	FOREIGN KEY (player_x_id) REFERENCES players (id),
	FOREIGN KEY (player_o_id) REFERENCES players (id)
)`}

type Storage struct {
	db  *sql.DB
	log *logger.Logger
}

func Open(path string, log *logger.Logger) (*Storage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %q: %w", path, err)
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("init schema: %w", err)
		}
	}

	log.Info("storage initialized", "path", path)

	return &Storage{db: db, log: log}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

// GetOrCreatePlayer looks a player up case-insensitively by trimmed name,
// creating it on first sight.
func (s *Storage) GetOrCreatePlayer(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrEmptyName
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM players WHERE LOWER(name) = LOWER(?)`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("lookup player %q: %w", name, err)
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO players (name) VALUES (?)`, name)
	if err != nil {
		return 0, fmt.Errorf("create player %q: %w", name, err)
	}

	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create player %q: %w", name, err)
	}

	s.log.Info("created player", "name", name, "id", id)

	return id, nil
}

// RecordMatch validates and stores a completed match.
func (s *Storage) RecordMatch(ctx context.Context, m MatchResult) error {
	if m.Result != ResultX && m.Result != ResultO && m.Result != ResultDraw {
		return fmt.Errorf("%w: %q", ErrInvalidResult, m.Result)
	}

	switch m.Mode {
	case ModePvP:
		if m.AILevel != "" {
			return fmt.Errorf("%w: ai level set on a pvp match", ErrInvalidMode)
		}
	case ModePvAI:
		if m.AILevel != FilterEasy && m.AILevel != FilterMedium && m.AILevel != FilterHard {
			return fmt.Errorf("%w: bad ai level %q for a pvai match", ErrInvalidMode, m.AILevel)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, m.Mode)
	}

	xID, err := s.GetOrCreatePlayer(ctx, m.PlayerX)
	if err != nil {
		return err
	}
	oID, err := s.GetOrCreatePlayer(ctx, m.PlayerO)
	if err != nil {
		return err
	}

	aiLevel := sql.NullString{String: m.AILevel, Valid: m.AILevel != ""}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO matches (player_x_id, player_o_id, result, mode, ai_level)
		VALUES (?, ?, ?, ?, ?)`,
		xID, oID, m.Result, m.Mode, aiLevel)
	if err != nil {
		return fmt.Errorf("record match: %w", err)
	}

	s.log.Info("recorded match",
		"player_x", m.PlayerX, "player_o", m.PlayerO,
		"result", m.Result, "mode", m.Mode, "ai_level", m.AILevel)

	return nil
}

const leaderboardQuery = `
WITH player_wins AS (
	SELECT
		p.id,
		p.name,
		COUNT(CASE
			WHEN (m.result = 'X' AND m.player_x_id = p.id) OR
			     (m.result = 'O' AND m.player_o_id = p.id)
			THEN 1
		END) AS total_wins,
		COUNT(CASE
			WHEN ((m.result = 'X' AND m.player_x_id = p.id) OR
			      (m.result = 'O' AND m.player_o_id = p.id))
			     AND m.mode = 'pvp'
			THEN 1
		END) AS pvp_wins,
		COUNT(CASE
			WHEN ((m.result = 'X' AND m.player_x_id = p.id) OR
			      (m.result = 'O' AND m.player_o_id = p.id))
			     AND m.mode = 'pvai' AND m.ai_level = 'easy'
			THEN 1
		END) AS ai_easy_wins,
		COUNT(CASE
			WHEN ((m.result = 'X' AND m.player_x_id = p.id) OR
			      (m.result = 'O' AND m.player_o_id = p.id))
			     AND m.mode = 'pvai' AND m.ai_level = 'medium'
			THEN 1
		END) AS ai_medium_wins,
		COUNT(CASE
			WHEN ((m.result = 'X' AND m.player_x_id = p.id) OR
			      (m.result = 'O' AND m.player_o_id = p.id))
			     AND m.mode = 'pvai' AND m.ai_level = 'hard'
			THEN 1
		END) AS ai_hard_wins,
		COUNT(CASE
			WHEN m.player_x_id = p.id OR m.player_o_id = p.id
			THEN 1
		END) AS total_games
	FROM players p
	LEFT JOIN matches m ON (m.player_x_id = p.id OR m.player_o_id = p.id)
	GROUP BY p.id, p.name
)
SELECT
	name,
	total_wins,
	pvp_wins,
	ai_easy_wins,
	ai_medium_wins,
	ai_hard_wins,
	CASE
		WHEN total_games > 0 THEN ROUND(CAST(total_wins AS FLOAT) / total_games * 100, 1)
		ELSE 0.0
	END AS win_percentage,
	total_games
FROM player_wins
WHERE total_games > 0
ORDER BY
	total_wins DESC,
	pvp_wins DESC,
	(ai_easy_wins + ai_medium_wins + ai_hard_wins) DESC,
	name ASC
LIMIT ?`

// Leaderboard returns players with at least one game, sorted by total wins
// with pvp wins, AI wins and name as tie-breakers.
func (s *Storage) Leaderboard(ctx context.Context, limit int) ([]PlayerStats, error) {
	rows, err := s.db.QueryContext(ctx, leaderboardQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var stats []PlayerStats
	for rows.Next() {
		var ps PlayerStats
		err := rows.Scan(
			&ps.Name, &ps.TotalWins, &ps.PvPWins,
			&ps.AIEasyWins, &ps.AIMediumWins, &ps.AIHardWins,
			&ps.WinPercentage, &ps.TotalGames,
		)
		if err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		stats = append(stats, ps)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}

	return stats, nil
}

// RecentMatches returns up to limit matches, newest first. filter is one of
// the Filter constants; FilterAll disables filtering.
func (s *Storage) RecentMatches(ctx context.Context, limit int, filter string) ([]MatchRecord, error) {
	query := `
		SELECT
			m.played_at,
			px.name,
			po.name,
			m.result,
			m.mode,
			COALESCE(m.ai_level, '')
		FROM matches m
		JOIN players px ON m.player_x_id = px.id
		JOIN players po ON m.player_o_id = po.id`

	var args []any
	switch filter {
	case FilterAll:
	case FilterPvP:
		query += ` WHERE m.mode = 'pvp'`
	case FilterEasy, FilterMedium, FilterHard:
		query += ` WHERE m.mode = 'pvai' AND m.ai_level = ?`
		args = append(args, filter)
	default:
		return nil, fmt.Errorf("unknown history filter %q", filter)
	}

	query += ` ORDER BY m.played_at DESC, m.id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	var matches []MatchRecord
	for rows.Next() {
		var m MatchRecord
		if err := rows.Scan(&m.PlayedAt, &m.PlayerX, &m.PlayerO, &m.Result, &m.Mode, &m.AILevel); err != nil {
			return nil, fmt.Errorf("scan match row: %w", err)
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read matches: %w", err)
	}

	return matches, nil
}

// ResetData deletes all matches and players.
func (s *Storage) ResetData(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM matches`); err != nil {
		return fmt.Errorf("delete matches: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM players`); err != nil {
		return fmt.Errorf("delete players: %w", err)
	}

	s.log.Info("all data reset")

	return nil
}

func (s *Storage) Summary(ctx context.Context) (Summary, error) {
	var sum Summary
	counts := []struct {
		query string
		dst   *int
	}{
		{`SELECT COUNT(*) FROM players`, &sum.Players},
		{`SELECT COUNT(*) FROM matches`, &sum.Matches},
		{`SELECT COUNT(*) FROM matches WHERE mode = 'pvp'`, &sum.PvPMatches},
		{`SELECT COUNT(*) FROM matches WHERE mode = 'pvai'`, &sum.PvAIMatches},
		{`SELECT COUNT(*) FROM matches WHERE result = 'Draw'`, &sum.Draws},
	}

	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query).Scan(c.dst); err != nil {
			return Summary{}, fmt.Errorf("summary: %w", err)
		}
	}

	return sum, nil
}
