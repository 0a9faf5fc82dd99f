package puzzles

import (
	"fmt"
	"strings"

	"github.com/sky-flux/backtrack"
)

// Queens is an N-queens board: place N queens on an N×N chessboard so that
// no two attack each other. Positions are row indexes; values are 1-based
// column numbers, 0 meaning the row is empty.
type Queens struct {
	rows []uint8
}

// Compile-time contract check.
var _ backtrack.Puzzle[*Queens, int, uint8] = (*Queens)(nil)

// NewQueens creates an empty n×n board. Columns are numbered in uint8, so
// at most 255 rows are supported.
func NewQueens(n int) (*Queens, error) {
	if n > 255 {
		return nil, fmt.Errorf("puzzles: queens board holds at most 255 rows, got %d", n)
	}
	return &Queens{rows: make([]uint8, n)}, nil
}

// Size returns the board dimension.
func (q *Queens) Size() int { return len(q.rows) }

// Clone returns a deep copy of the board.
func (q *Queens) Clone() *Queens {
	rows := make([]uint8, len(q.rows))
	copy(rows, q.rows)
	return &Queens{rows: rows}
}

// Get returns the column of the queen in the given row, or 0 when empty.
func (q *Queens) Get(row int) uint8 { return q.rows[row] }

// Set places a queen at the given row and column.
func (q *Queens) Set(row int, col uint8) { q.rows[row] = col }

// IsSolved reports whether every row holds a queen. Attack constraints are
// enforced by the candidate function, not here.
func (q *Queens) IsSolved() bool {
	for _, col := range q.rows {
		if col == 0 {
			return false
		}
	}
	return true
}

// Remove clears every row at which other holds a queen.
func (q *Queens) Remove(other *Queens) {
	for i, col := range other.rows {
		if col != 0 {
			q.rows[i] = 0
		}
	}
}

// SolveSimple is a no-op: N-queens has no forced single-candidate moves
// worth deducing.
func (q *Queens) SolveSimple(assign func(row int, col uint8)) {}

// Valid reports whether a queen at (row, col) would be safe from every
// queen already on the board.
func (q *Queens) Valid(row int, col uint8) bool {
	for i, c := range q.rows {
		if c == 0 || i == row {
			continue
		}
		if c == col {
			return false
		}
		dr, dc := row-i, int(col)-int(c)
		if dr == dc || dr == -dc {
			return false
		}
	}
	return true
}

// String renders the board with x for queens and _ for empty squares.
func (q *Queens) String() string {
	var b strings.Builder
	for range q.rows {
		b.WriteString(" _")
	}
	b.WriteByte('\n')
	for _, col := range q.rows {
		b.WriteByte('|')
		for x := uint8(1); x <= uint8(len(q.rows)); x++ {
			if col == x {
				b.WriteString("x|")
			} else {
				b.WriteString("_|")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// QueensFirstEmpty picks the first row without a queen.
func QueensFirstEmpty(q *Queens) (int, bool) {
	for i, col := range q.rows {
		if col == 0 {
			return i, true
		}
	}
	return 0, false
}

// QueensCandidates lists the safe columns for the given row, in ascending
// column order (the highest column is tried first).
func QueensCandidates(q *Queens, row int) []uint8 {
	var res []uint8
	for col := uint8(1); col <= uint8(len(q.rows)); col++ {
		if q.Valid(row, col) {
			res = append(res, col)
		}
	}
	return res
}
