// Package puzzles provides ready-made puzzle models for the backtrack
// solver: N-queens, 9×9 sudoku, a 0/1 knapsack, and elementary
// cellular-automaton reconstruction.
//
// Each model implements the backtrack.Puzzle contract and ships the
// position-selection and candidate strategy functions the solvers expect.
// They double as worked examples for writing new puzzle types.
package puzzles
