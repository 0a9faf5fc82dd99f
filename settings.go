package backtrack

import (
	"io"
	"math/rand"
	"os"
	"time"
)

// SolveSettings configures a Solver, MultiSolver, or EntropySolver.
// Zero values produce sensible defaults; see field comments.
type SolveSettings struct {
	DisableSimple    bool          `json:"disable_simple"`    // zero false → SolveSimple runs each iteration
	Debug            bool          `json:"debug"`             // print state and trace decisions to Trace
	Difference       bool          `json:"difference"`        // report only cells changed from the original
	StepDelay        time.Duration `json:"step_delay"`        // pacing delay between debug iterations; zero → none
	MaxIterations    *uint64       `json:"max_iterations"`    // nil → unbounded; a pointer to 0 cuts off immediately
	ProgressMillions bool          `json:"progress_millions"` // heartbeat every million iterations, independent of Debug
	Trace            io.Writer     `json:"-"`                 // debug/heartbeat destination; nil → os.Stderr
}

// MaxIter returns a pointer to n, for use as SolveSettings.MaxIterations.
func MaxIter(n uint64) *uint64 { return &n }

// traceWriter resolves the debug output destination.
func (s SolveSettings) traceWriter() io.Writer {
	if s.Trace != nil {
		return s.Trace
	}
	return os.Stderr
}

// exceeded reports whether the iteration budget is spent.
func (s SolveSettings) exceeded(iterations uint64) bool {
	return s.MaxIterations != nil && iterations > *s.MaxIterations
}

// pace sleeps between iterations for human-paced tracing. It only applies
// in debug mode and is never required for correctness.
func (s SolveSettings) pace() {
	if s.Debug && s.StepDelay > 0 {
		time.Sleep(s.StepDelay)
	}
}

// EntropySolveSettings configures the learning loop of an EntropySolver.
// Zero values produce sensible defaults; see field comments.
type EntropySolveSettings struct {
	Attempts           uint64     `json:"attempts"`             // number of learning attempts; zero → 1
	Noise              float64    `json:"noise"`                // probability in [0, 1] of shuffling candidates per decision
	FinalAttempt       bool       `json:"final_attempt"`        // after all attempts fail, run one noise-free attempt
	FinalMaxIterations *uint64    `json:"final_max_iterations"` // iteration cap for the final attempt; nil → unbounded
	Rand               *rand.Rand `json:"-"`                    // randomness source for noise; nil → time-seeded
}
