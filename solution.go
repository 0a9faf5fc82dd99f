package backtrack

// Solution is the result of a successful solve.
type Solution[T any] struct {
	// Puzzle is the solved state, or only the cells changed from the
	// original when SolveSettings.Difference is set.
	Puzzle T

	// Iterations is the number of iterations the winning search consumed.
	Iterations uint64

	// Strategy is the index of the strategy that found the solution in a
	// MultiSolver run, or -1 for single-strategy solvers.
	Strategy int
}
