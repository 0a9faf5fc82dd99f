// Package backtrack implements a generic depth-first backtracking solver
// for constraint-satisfaction puzzles.
//
// backtrack provides a pure-Go Solver that explores assignments to an
// opaque puzzle state, undoing choices on failure, plus a MultiSolver that
// races several strategies in lockstep and an EntropySolver that learns
// value weights across repeated attempts. Reusable puzzle models live in
// the backtrack/puzzles subpackage.
//
// The solver never inspects the puzzle's structure. It drives two
// caller-supplied strategy functions: one picks the next empty position to
// branch on, the other lists admissible values there in ascending priority
// order (the last value is tried first).
//
// Basic usage:
//
//	sol, err := backtrack.Solve(puzzle, pickPosition, candidates, backtrack.SolveSettings{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sol.Puzzle, sol.Iterations)
package backtrack
