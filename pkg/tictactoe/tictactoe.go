// Package tictactoe implements the 3x3 board, move validation and outcome
// detection. It is pure state: no I/O, no hidden globals, all mutation goes
// through ApplyMove/UndoMove.
package tictactoe

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMove is returned by ApplyMove for any rejected move. The wrapped
// message carries the concrete reason.
var ErrInvalidMove = errors.New("invalid move")

type Player int8

const (
	Empty Player = 0
	X     Player = 1
	O     Player = -1
)

func (p Player) Mark() string {
	s := " "
	if p == X {
		s = "X"
	}

	if p == O {
		s = "O"
	}

	return s
}

// Opponent returns the other player. Empty has no opponent and maps to itself.
func (p Player) Opponent() Player {
	return -p
}

type Outcome int

const (
	InProgress Outcome = iota
	WinX
	WinO
	Draw
)

func (o Outcome) String() string {
	switch o {
	case WinX:
		return "X wins"
	case WinO:
		return "O wins"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// Terminal reports whether the outcome ends a match.
func (o Outcome) Terminal() bool {
	return o != InProgress
}

// winLines are the 8 winning lines, row-major cell indices.
var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Board is a 3x3 tic-tac-toe board. X always moves first; the side to move is
// derived from the move count, never stored.
type Board struct {
	Cells    [9]Player
	LastMove int

	moves int
}

func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

func (b *Board) Reset() {
	b.Cells = [9]Player{}
	b.LastMove = -1
	b.moves = 0
}

func (b *Board) At(idx int) Player {
	return b.Cells[idx]
}

// Moves is the number of marks on the board.
func (b *Board) Moves() int {
	return b.moves
}

// CurrentPlayer is the side whose turn it is, alternating from X.
func (b *Board) CurrentPlayer() Player {
	if b.moves%2 == 0 {
		return X
	}
	return O
}

func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, len(b.Cells)-b.moves)
	for idx, p := range b.Cells {
		if p != Empty {
			continue
		}
		moves = append(moves, idx)
	}

	return moves
}

func (b *Board) AnyLegalMoves() bool {
	return b.moves < len(b.Cells)
}

func (b *Board) Full() bool {
	return b.moves == len(b.Cells)
}

// ApplyMove places p at idx and alternates the turn. The move is rejected with
// ErrInvalidMove when the game is over, idx is out of range, the cell is
// occupied, or it is not p's turn.
func (b *Board) ApplyMove(idx int, p Player) error {
	if b.Outcome().Terminal() {
		return fmt.Errorf("%w: game is over", ErrInvalidMove)
	}

	if idx < 0 || idx >= len(b.Cells) {
		return fmt.Errorf("%w: cell %d out of range", ErrInvalidMove, idx)
	}

	if b.Cells[idx] != Empty {
		return fmt.Errorf("%w: cell %d occupied", ErrInvalidMove, idx)
	}

	if p != b.CurrentPlayer() {
		return fmt.Errorf("%w: not %s's turn", ErrInvalidMove, p.Mark())
	}

	b.Cells[idx] = p
	b.LastMove = idx
	b.moves++

	return nil
}

// UndoMove removes the mark at idx. It exists for search code that unwinds its
// own ApplyMove calls; undoing an empty cell is a contract violation.
func (b *Board) UndoMove(idx int) {
	if b.Cells[idx] == Empty {
		panic("UndoMove on empty cell")
	}

	b.Cells[idx] = Empty
	b.LastMove = -1
	b.moves--
}

// Winner returns the side owning a completed line, or Empty.
func (b *Board) Winner() Player {
	for _, ln := range winLines {
		p := b.Cells[ln[0]]
		if p != Empty && p == b.Cells[ln[1]] && p == b.Cells[ln[2]] {
			return p
		}
	}

	return Empty
}

// WinningLine returns the completed line for highlighting, if any.
func (b *Board) WinningLine() ([3]int, bool) {
	for _, ln := range winLines {
		p := b.Cells[ln[0]]
		if p != Empty && p == b.Cells[ln[1]] && p == b.Cells[ln[2]] {
			return ln, true
		}
	}

	return [3]int{}, false
}

func (b *Board) Outcome() Outcome {
	switch b.Winner() {
	case X:
		return WinX
	case O:
		return WinO
	}

	if b.Full() {
		return Draw
	}

	return InProgress
}

func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

const (
	// ScoreWin is the terminal evaluation of a won position, X-positive.
	ScoreWin  = 10
	ScoreLose = -10
	ScoreDraw = 0
)

// Evaluate scores the position from X's point of view: +10 for a won board,
// -10 for a lost one, 0 for a draw. Unresolved positions get a line-count
// heuristic where an uncontested line with n marks is worth n*n to its owner.
// Used as the depth-cutoff value of the Medium search.
func (b *Board) Evaluate() int {
	switch b.Winner() {
	case X:
		return ScoreWin
	case O:
		return ScoreLose
	}

	if b.Full() {
		return ScoreDraw
	}

	score := 0
	for _, ln := range winLines {
		score += b.evaluateLine(ln)
	}

	return score
}

func (b *Board) evaluateLine(ln [3]int) int {
	xCount, oCount := 0, 0
	for _, idx := range ln {
		switch b.Cells[idx] {
		case X:
			xCount++
		case O:
			oCount++
		}
	}

	if xCount > 0 && oCount > 0 {
		return 0
	}

	if xCount > 0 {
		return xCount * xCount
	}

	return -(oCount * oCount)
}

func (b *Board) String() string {
	var s strings.Builder
	for i, p := range b.Cells {
		s.WriteString("[" + p.Mark() + "]")
		if (i+1)%3 == 0 {
			s.WriteString("\n")
		}
	}

	return s.String()
}
