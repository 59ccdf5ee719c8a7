// Package minimax selects moves for the AI opponent. Easy picks uniformly at
// random, Medium runs minimax capped at depth 3 with a heuristic cutoff, Hard
// searches to terminal states with alpha-beta pruning.
//
// Scores are absolute: X maximizes, O minimizes. The root takes the extremum
// for the side the AI plays, ties broken by lowest cell index.
package minimax

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/OmerBS123/tic-tac-toe/pkg/tictactoe"
)

// ErrNoLegalMove is returned when the board has no empty cell. The game loop
// must not ask for a move on a terminal board.
var ErrNoLegalMove = errors.New("no legal move")

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

const (
	mediumDepth = 3
	fullDepth   = 9
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}

	return Easy, fmt.Errorf("unknown difficulty %q", s)
}

// SearchStats describes the last SelectMove call.
type SearchStats struct {
	Nodes     int
	Cutoffs   int
	Depth     int
	BestMove  int
	BestScore int
	ThinkTime time.Duration
}

type Client struct {
	difficulty Difficulty

	lastStats *SearchStats
}

func New(difficulty Difficulty) *Client {
	return &Client{
		difficulty: difficulty,
	}
}

func (c *Client) Difficulty() Difficulty {
	return c.difficulty
}

// Stats returns the stats of the last SelectMove call, nil before the first.
func (c *Client) Stats() *SearchStats {
	return c.lastStats
}

// SelectMove returns the cell index to play for ai on b. The ctx parameter
// matches the bot interface of the game loop; the bounded 9-ply search never
// needs to observe it.
func (c *Client) SelectMove(_ context.Context, b *tictactoe.Board, ai tictactoe.Player) (int, error) {
	legal := b.LegalMoves()
	if len(legal) == 0 {
		return -1, ErrNoLegalMove
	}

	start := time.Now()
	c.lastStats = nil

	switch c.difficulty {
	case Easy:
		move := legal[rand.IntN(len(legal))]
		c.lastStats = &SearchStats{
			BestMove:  move,
			BestScore: 0,
			ThinkTime: time.Since(start),
		}
		return move, nil

	case Medium:
		return c.searchMove(b, ai, legal, mediumDepth, start)

	default:
		return c.searchMove(b, ai, legal, fullDepth, start)
	}
}

func (c *Client) searchMove(b *tictactoe.Board, ai tictactoe.Player, legal []int, depth int, start time.Time) (int, error) {
	stats := &SearchStats{Depth: depth}

	// The caller's board stays untouched; the search unwinds its own moves on
	// a clone.
	search := b.Clone()
	maximizing := ai == tictactoe.X

	bestMove := legal[0]
	bestScore := math.MinInt
	if !maximizing {
		bestScore = math.MaxInt
	}

	for _, idx := range legal {
		if err := search.ApplyMove(idx, ai); err != nil {
			panic("search applied illegal move: " + err.Error())
		}
		score := c.minimax(search, depth-1, ai.Opponent(), math.MinInt, math.MaxInt, stats)
		search.UndoMove(idx)

		if maximizing && score > bestScore {
			bestScore = score
			bestMove = idx
		}
		if !maximizing && score < bestScore {
			bestScore = score
			bestMove = idx
		}
	}

	stats.BestMove = bestMove
	stats.BestScore = bestScore
	stats.ThinkTime = time.Since(start)
	c.lastStats = stats

	return bestMove, nil
}

// minimax returns the value of b with toMove to play, searching depth more
// plies. Alpha and beta carry the best scores already guaranteed to the
// maximizer and minimizer; a branch is abandoned once alpha >= beta.
func (c *Client) minimax(b *tictactoe.Board, depth int, toMove tictactoe.Player, alpha, beta int, stats *SearchStats) int {
	stats.Nodes++

	if b.Outcome().Terminal() || depth == 0 {
		return b.Evaluate()
	}

	if toMove == tictactoe.X {
		best := math.MinInt
		for _, idx := range b.LegalMoves() {
			if err := b.ApplyMove(idx, toMove); err != nil {
				panic("search applied illegal move: " + err.Error())
			}
			val := c.minimax(b, depth-1, toMove.Opponent(), alpha, beta, stats)
			b.UndoMove(idx)

			best = max(best, val)
			alpha = max(alpha, best)
			if alpha >= beta {
				stats.Cutoffs++
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, idx := range b.LegalMoves() {
		if err := b.ApplyMove(idx, toMove); err != nil {
			panic("search applied illegal move: " + err.Error())
		}
		val := c.minimax(b, depth-1, toMove.Opponent(), alpha, beta, stats)
		b.UndoMove(idx)

		best = min(best, val)
		beta = min(beta, best)
		if alpha >= beta {
			stats.Cutoffs++
			break
		}
	}
	return best
}
