package backtrack

import "errors"

// Sentinel errors for the backtrack package.
// Use errors.Is to check: errors.Is(err, backtrack.ErrExhausted)
var (
	// ErrExhausted is returned when the search space is provably exhausted
	// under the given strategy: every branch point has been tried and undone
	// and no choice frames remain.
	ErrExhausted = errors.New("backtrack: search space exhausted")

	// ErrIterationLimit is returned when the search gives up because the
	// iteration counter exceeded SolveSettings.MaxIterations.
	ErrIterationLimit = errors.New("backtrack: iteration limit reached")

	// ErrInvalidNoise is returned when EntropySolveSettings.Noise is outside [0, 1].
	ErrInvalidNoise = errors.New("backtrack: noise out of range")

	// ErrNoStrategies is returned when MultiSolver.Solve is given an empty
	// strategy list.
	ErrNoStrategies = errors.New("backtrack: no strategies provided")
)
