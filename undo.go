package backtrack

// moveKind distinguishes forced deductions from branch points in the undo log.
type moveKind int

const (
	moveSimple moveKind = iota + 1 // forced deduction logged by SolveSimple
	moveGuess                      // branch point with alternatives retained
)

// undoEntry records the value a position held before a forward mutation.
// Replaying entries in reverse insertion order with Set(pos, prev) restores
// the state to exactly what it was, regardless of how many simple entries
// intervened between guesses.
type undoEntry[P, V comparable] struct {
	pos  P
	prev V
	kind moveKind
}

// choicePoint retains the untried alternatives of a guess. The last value
// has the highest priority; the solver pops from the end.
type choicePoint[P, V comparable] struct {
	pos     P
	untried []V
}
