package backtrack_test

import (
	"testing"

	"github.com/sky-flux/backtrack"
	"github.com/sky-flux/backtrack/puzzles"
)

// BenchmarkSolveQueens measures a full 8-queens search from an empty board.
func BenchmarkSolveQueens(b *testing.B) {
	settings := backtrack.SolveSettings{DisableSimple: true}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board, err := puzzles.NewQueens(8)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := backtrack.Solve(board,
			puzzles.QueensFirstEmpty, puzzles.QueensCandidates, settings); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolveSudoku measures a full sudoku search with the min-remaining
// strategy, deduction included.
func BenchmarkSolveSudoku(b *testing.B) {
	grid := benchGrid()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := backtrack.Solve(puzzles.NewSudoku(grid),
			puzzles.MinRemaining, puzzles.PossibleAt, backtrack.SolveSettings{})
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCombine measures merging three nine-digit preference lists.
func BenchmarkCombine(b *testing.B) {
	lists := [][]uint8{
		{1, 2, 3, 4, 5, 6, 7, 8, 9},
		{9, 8, 7, 6, 5, 4, 3, 2, 1},
		{5, 1, 9, 2, 8, 3, 7, 4, 6},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		backtrack.Combine(lists)
	}
}

func benchGrid() [9][9]uint8 {
	return [9][9]uint8{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
}
