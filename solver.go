package backtrack

import (
	"fmt"
	"io"
)

// Solver explores assignments to a puzzle depth-first, undoing choices on
// failure, until the state satisfies IsSolved or the search space (or the
// iteration budget) is exhausted.
//
// The solver works on a private clone of the input puzzle; the caller's
// value is never mutated. Between guesses it interleaves forced deductions
// from SolveSimple, logging every mutation so backtracking can restore the
// state without cloning it.
type Solver[T Puzzle[T, P, V], P, V comparable] struct {
	original T
	state    T
	undo     []undoEntry[P, V]
	choices  []choicePoint[P, V]
	settings SolveSettings
	trace    io.Writer

	// observe, when set, is called for every value applied via a guess or a
	// retried alternative (not for simple moves). Used by EntropySolver to
	// learn weights.
	observe func(pos P, val V)
}

// NewSolver creates a solver for the given puzzle. The puzzle is cloned
// twice: once as the pristine original used for difference reporting, once
// as the working state.
func NewSolver[T Puzzle[T, P, V], P, V comparable](puzzle T, settings SolveSettings) *Solver[T, P, V] {
	return &Solver[T, P, V]{
		original: puzzle.Clone(),
		state:    puzzle.Clone(),
		settings: settings,
		trace:    settings.traceWriter(),
	}
}

// Solve searches for a solution using pick to select the next position to
// branch on and candidates to list admissible values there (last value
// tried first).
//
// On failure it returns a nil solution and either ErrExhausted, when the
// search space is provably spent under this strategy, or ErrIterationLimit,
// when SolveSettings.MaxIterations was hit first. Either way the working
// state has been rolled back to the original puzzle, so a failed solver may
// be reused. After a success the working state is the returned solution and
// Solve must not be called again.
func (s *Solver[T, P, V]) Solve(pick Pick[T, P], candidates Candidates[T, P, V]) (*Solution[T], error) {
	var iterations uint64
	for {
		s.settings.pace()
		iterations++
		if s.settings.exceeded(iterations) {
			s.unwind()
			return nil, ErrIterationLimit
		}
		sol, err := s.step(pick, candidates, iterations)
		if sol != nil || err != nil {
			return sol, err
		}
	}
}

// Solve runs a single-strategy backtracking search over puzzle. It is a
// convenience wrapper around NewSolver that lets the type parameters be
// inferred from the strategy functions.
func Solve[T Puzzle[T, P, V], P, V comparable](
	puzzle T,
	pick Pick[T, P],
	candidates Candidates[T, P, V],
	settings SolveSettings,
) (*Solution[T], error) {
	return NewSolver[T, P, V](puzzle, settings).Solve(pick, candidates)
}

// step advances the search by one iteration: run forced deductions, check
// for a solution, then either guess at a fresh position or backtrack to the
// most recent choice with untried alternatives. It returns a non-nil
// solution when solved, ErrExhausted when this search is spent, and
// (nil, nil) when the search should continue.
func (s *Solver[T, P, V]) step(pick Pick[T, P], candidates Candidates[T, P, V], iterations uint64) (*Solution[T], error) {
	if !s.settings.DisableSimple {
		s.state.SolveSimple(func(pos P, val V) {
			s.undo = append(s.undo, undoEntry[P, V]{pos: pos, prev: s.state.Get(pos), kind: moveSimple})
			s.state.Set(pos, val)
		})
	}
	if s.settings.Debug {
		fmt.Fprintln(s.trace, s.state)
	}
	if s.state.IsSolved() {
		if s.settings.Debug {
			fmt.Fprintf(s.trace, "Solved! Iterations: %d\n", iterations)
		}
		if s.settings.Difference {
			s.state.Remove(s.original)
		}
		s.undo, s.choices = nil, nil
		return &Solution[T]{Puzzle: s.state, Iterations: iterations, Strategy: -1}, nil
	}

	pos, ok := pick(s.state)
	var possible []V
	if ok {
		possible = candidates(s.state, pos)
	}
	if len(possible) == 0 {
		return nil, s.backtrack(iterations)
	}
	s.apply("Guess", pos, possible, iterations)
	return nil, nil
}

// backtrack pops choice frames until one with an untried alternative is
// found, undoes every move made since that guess, and applies the
// alternative. Frames without alternatives trigger a deeper undo. Returns
// ErrExhausted when no frames remain, with the state rolled back to the
// original.
func (s *Solver[T, P, V]) backtrack(iterations uint64) error {
	for {
		if len(s.choices) == 0 {
			if s.settings.Debug {
				fmt.Fprintln(s.trace, "No more possible choices")
			}
			s.unwind()
			return ErrExhausted
		}
		frame := s.choices[len(s.choices)-1]
		s.choices = s.choices[:len(s.choices)-1]

		if len(frame.untried) == 0 {
			// Spent branch point: undo through its guess and keep popping.
			if !s.undoThroughGuess() {
				s.unwind()
				return ErrExhausted
			}
			continue
		}
		s.undoThroughGuess()
		s.apply("Try", frame.pos, frame.untried, iterations)
		return nil
	}
}

// apply pops the highest-priority candidate, logs it as a guess, applies
// it, and pushes the remaining alternatives as a new choice frame.
func (s *Solver[T, P, V]) apply(action string, pos P, possible []V, iterations uint64) {
	val := possible[len(possible)-1]
	rest := possible[:len(possible)-1]
	s.undo = append(s.undo, undoEntry[P, V]{pos: pos, prev: s.state.Get(pos), kind: moveGuess})
	s.state.Set(pos, val)
	if s.observe != nil {
		s.observe(pos, val)
	}
	s.choices = append(s.choices, choicePoint[P, V]{pos: pos, untried: rest})
	if s.settings.Debug {
		fmt.Fprintf(s.trace, "%s %v, %v depth ch: %d undo: %d it: %d\n",
			action, pos, val, len(s.choices), len(s.undo), iterations)
	} else if s.settings.ProgressMillions && iterations%1_000_000 == 0 {
		fmt.Fprintf(s.trace, "Iteration: %dmill\n", iterations/1_000_000)
	}
}

// undoThroughGuess replays undo entries in reverse order up to and
// including the most recent guess, undoing all simple moves made since.
// It reports whether anything was undone.
func (s *Solver[T, P, V]) undoThroughGuess() bool {
	undone := false
	for len(s.undo) > 0 {
		e := s.undo[len(s.undo)-1]
		s.undo = s.undo[:len(s.undo)-1]
		s.state.Set(e.pos, e.prev)
		undone = true
		if e.kind == moveGuess {
			break
		}
	}
	return undone
}

// unwind rolls back every remaining logged mutation and clears both stacks,
// restoring the working state to the original puzzle.
func (s *Solver[T, P, V]) unwind() {
	for len(s.undo) > 0 {
		e := s.undo[len(s.undo)-1]
		s.undo = s.undo[:len(s.undo)-1]
		s.state.Set(e.pos, e.prev)
	}
	s.choices = s.choices[:0]
}
