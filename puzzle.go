package backtrack

import "fmt"

// Puzzle is the capability contract a puzzle type must satisfy to be solved.
//
// A puzzle stores the state of the problem and can be modified by inserting
// a value at a position. The solver never inspects the puzzle's internal
// structure; legality of assignments is the responsibility of the strategy
// functions, so Set must overwrite unconditionally.
//
// The type parameter T is the implementing type itself (e.g. a *Sudoku
// implements Puzzle[*Sudoku, Cell, uint8]), P is the position type and V
// the value type. The initial state does not have to be empty; set
// SolveSettings.Difference to report only the cells the solver changed.
type Puzzle[T any, P, V comparable] interface {
	// String renders the puzzle for diagnostic output. The solver prints it
	// between iterations when SolveSettings.Debug is on.
	fmt.Stringer

	// Clone returns a deep copy of the puzzle. Mutating the copy must never
	// affect the receiver.
	Clone() T

	// Get returns the value at pos.
	Get(pos P) V

	// Set stores val at pos, unconditionally overwriting the previous value.
	// No validation is required of the puzzle itself.
	Set(pos P, val V)

	// IsSolved reports whether the puzzle is in a solved state. It must be
	// pure and idempotent.
	IsSolved() bool

	// Remove clears every position at which other holds a non-empty value.
	// Used only to compute the difference from the original puzzle.
	Remove(other T)

	// SolveSimple deduces forced single-candidate assignments until no more
	// exist. Every deduced assignment must be applied by calling assign,
	// never by calling Set directly, so the solver can log it for undo.
	// It must only assign to previously empty positions, must terminate,
	// and must be safe to call repeatedly. Puzzles with no meaningful
	// deduction may implement it as a no-op.
	SolveSimple(assign func(pos P, val V))
}

// Pick selects the next empty position to branch on, e.g. the first empty
// slot or the one with minimum remaining values. It returns false when no
// branch point remains under this strategy.
type Pick[T any, P comparable] func(state T) (P, bool)

// Candidates lists the admissible values at pos given the current state, in
// ascending priority order: the last value is tried first. The solver takes
// ownership of the returned slice and consumes it from the end, so each
// call must return a fresh slice.
type Candidates[T any, P, V comparable] func(state T, pos P) []V
