package backtrack

import (
	"errors"
	"fmt"
	"io"
)

// Strategy pairs a position-selection function with a candidate function
// for use with MultiSolver.
type Strategy[T any, P, V comparable] struct {
	Pick       Pick[T, P]
	Candidates Candidates[T, P, V]
}

// NewStrategy builds a Strategy, letting the type parameters be inferred
// from the functions.
func NewStrategy[T any, P, V comparable](pick Pick[T, P], candidates Candidates[T, P, V]) Strategy[T, P, V] {
	return Strategy[T, P, V]{Pick: pick, Candidates: candidates}
}

// MultiSolver races several independent backtracking searches over the same
// puzzle, one per strategy, advancing each by exactly one step per round.
// The first strategy whose state is solved wins; its index is recorded in
// Solution.Strategy.
//
// Strategies do not share information. The lockstep stepping exists purely
// to interleave trace output and to bound total work fairly under one
// shared iteration counter.
type MultiSolver[T Puzzle[T, P, V], P, V comparable] struct {
	settings SolveSettings
	trace    io.Writer
}

// NewMultiSolver creates a multi-strategy solver with the given settings.
func NewMultiSolver[T Puzzle[T, P, V], P, V comparable](settings SolveSettings) *MultiSolver[T, P, V] {
	return &MultiSolver[T, P, V]{
		settings: settings,
		trace:    settings.traceWriter(),
	}
}

// Solve runs every strategy against its own clone of puzzle in round-robin
// lockstep. It returns the first solution found, ErrNoStrategies when
// strategies is empty, ErrIterationLimit when the shared iteration counter
// exceeds SolveSettings.MaxIterations, and ErrExhausted once every strategy
// has independently exhausted its own search.
func (m *MultiSolver[T, P, V]) Solve(puzzle T, strategies []Strategy[T, P, V]) (*Solution[T], error) {
	if len(strategies) == 0 {
		return nil, ErrNoStrategies
	}

	runners := make([]*Solver[T, P, V], len(strategies))
	for i := range strategies {
		runners[i] = NewSolver[T, P, V](puzzle, m.settings)
	}
	dead := make([]bool, len(strategies))
	alive := len(strategies)

	var iterations uint64
	for {
		m.settings.pace()
		iterations++
		if m.settings.exceeded(iterations) {
			return nil, ErrIterationLimit
		}

		for i, strat := range strategies {
			if dead[i] {
				continue
			}
			if m.settings.Debug {
				fmt.Fprintf(m.trace, "Strategy %d\n", i)
			}
			sol, err := runners[i].step(strat.Pick, strat.Candidates, iterations)
			if sol != nil {
				sol.Strategy = i
				return sol, nil
			}
			if errors.Is(err, ErrExhausted) {
				dead[i] = true
				alive--
				if alive == 0 {
					return nil, ErrExhausted
				}
			}
		}
	}
}
