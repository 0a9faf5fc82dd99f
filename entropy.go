package backtrack

import (
	"cmp"
	"math"
	"math/rand"
	"slices"
	"time"
)

// Choice enumerates the candidate values a position can hold, used to seed
// an EntropySolver's weight table. The enumeration is captured once, before
// any solving begins.
type Choice[P, V comparable] struct {
	Pos    P
	Values []V
}

// EntropySolver solves puzzles by minimum-entropy search, learning from
// repeated attempts. The approach is inspired by WaveFunctionCollapse.
//
// Each attempt runs the same depth-first mechanics as Solver, but the next
// branch position is the one whose learned weight distribution has the
// lowest Shannon entropy (the historically most "confident" choice), and
// candidates are ordered so the heaviest-weighted value is tried first.
// Every guessed or retried (position, value) pair has its weight increased
// by one, so later attempts try historically successful choices earlier.
// With probability EntropySolveSettings.Noise a decision's candidates are
// shuffled instead, trading convergence for exploration.
//
// A failed attempt always rolls the working state back to the original
// puzzle; the learned weights are the only information carried between
// attempts.
type EntropySolver[T Puzzle[T, P, V], P, V comparable] struct {
	solver  *Solver[T, P, V]
	start   []Choice[P, V]
	index   map[P]int   // position → index into start
	weights [][]float64 // per start entry, one accumulator per candidate value

	attempts uint64
	noise    float64
	finalTry bool
	finalMax *uint64
	rng      *rand.Rand
}

// NewEntropySolver creates an entropy solver over the given puzzle. start
// must enumerate every position of interest together with its initial
// candidate set (typically every slot of the puzzle); each (position,
// value) pair starts with weight 1.
//
// Returns ErrInvalidNoise when entropy.Noise is outside [0, 1].
func NewEntropySolver[T Puzzle[T, P, V], P, V comparable](
	puzzle T,
	start []Choice[P, V],
	entropy EntropySolveSettings,
	settings SolveSettings,
) (*EntropySolver[T, P, V], error) {
	if entropy.Noise < 0 || entropy.Noise > 1 {
		return nil, ErrInvalidNoise
	}
	attempts := entropy.Attempts
	if attempts == 0 {
		attempts = 1
	}
	rng := entropy.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	weights := make([][]float64, len(start))
	for i, c := range start {
		w := make([]float64, len(c.Values))
		for j := range w {
			w[j] = 1.0
		}
		weights[i] = w
	}
	index := make(map[P]int, len(start))
	for i, c := range start {
		if _, ok := index[c.Pos]; !ok {
			index[c.Pos] = i
		}
	}

	e := &EntropySolver[T, P, V]{
		solver:   NewSolver[T, P, V](puzzle, settings),
		start:    start,
		index:    index,
		weights:  weights,
		attempts: attempts,
		noise:    entropy.Noise,
		finalTry: entropy.FinalAttempt,
		finalMax: entropy.FinalMaxIterations,
		rng:      rng,
	}
	e.solver.observe = e.observe
	return e, nil
}

// Solve attempts the puzzle up to the configured number of attempts,
// carrying learned weights forward, and stops at the first success. If
// every attempt fails and a final attempt is configured, it runs exactly
// one more with noise forced to zero and the iteration cap overridden by
// FinalMaxIterations, then restores the settings regardless of outcome.
//
// It returns the solution (nil on failure), the number of learning attempts
// taken, and the failure cause from the last attempt (ErrExhausted or
// ErrIterationLimit).
func (e *EntropySolver[T, P, V]) Solve(candidates Candidates[T, P, V]) (*Solution[T], uint64, error) {
	var (
		sol      *Solution[T]
		err      error
		attempts uint64
	)
	for attempts < e.attempts {
		sol, err = e.solveSingleAttempt(candidates)
		attempts++
		if sol != nil {
			break
		}
	}
	if sol == nil && e.finalTry {
		maxIter, noise := e.solver.settings.MaxIterations, e.noise
		e.solver.settings.MaxIterations = e.finalMax
		e.noise = 0
		sol, err = e.solveSingleAttempt(candidates)
		e.solver.settings.MaxIterations = maxIter
		e.noise = noise
	}
	return sol, attempts, err
}

// solveSingleAttempt runs one backtracking search with entropy-driven
// branch selection and weight-ordered candidates. On failure the working
// state has been rolled back to the original puzzle.
func (e *EntropySolver[T, P, V]) solveSingleAttempt(candidates Candidates[T, P, V]) (*Solution[T], error) {
	pick := func(state T) (P, bool) {
		return e.minEntropy(state, candidates)
	}
	order := func(state T, pos P) []V {
		return e.orderCandidates(state, pos, candidates)
	}

	var iterations uint64
	for {
		e.solver.settings.pace()
		iterations++
		if e.solver.settings.exceeded(iterations) {
			e.solver.unwind()
			return nil, ErrIterationLimit
		}
		sol, err := e.solver.step(pick, order, iterations)
		if sol != nil || err != nil {
			return sol, err
		}
	}
}

// Entropy returns the Shannon entropy H = -Σ p·ln(p) of the normalized
// weight distribution for the i-th start choice. Low entropy marks a
// position with a historically strongly preferred value.
func (e *EntropySolver[T, P, V]) Entropy(i int) float64 {
	var sum float64
	for _, w := range e.weights[i] {
		sum += w
	}
	var h float64
	for _, w := range e.weights[i] {
		p := w / sum
		h -= p * math.Log(p)
	}
	return h
}

// minEntropy selects the position with strictly minimal entropy among the
// start choices that still have at least one admissible value. The first
// encountered wins ties. It returns false when no position qualifies.
func (e *EntropySolver[T, P, V]) minEntropy(state T, candidates Candidates[T, P, V]) (P, bool) {
	var (
		best  P
		bestH = math.Inf(1)
		found bool
	)
	for i, c := range e.start {
		if len(candidates(state, c.Pos)) == 0 {
			continue
		}
		if h := e.Entropy(i); h < bestH {
			best, bestH, found = c.Pos, h, true
		}
	}
	return best, found
}

// orderCandidates returns the admissible values at pos either shuffled
// uniformly (with probability noise) or sorted ascending by learned weight,
// so the heaviest value sits last and is tried first. Values missing from
// the initial enumeration keep the initial weight of 1.
func (e *EntropySolver[T, P, V]) orderCandidates(state T, pos P, candidates Candidates[T, P, V]) []V {
	possible := candidates(state, pos)
	if e.rng.Float64() < e.noise {
		e.rng.Shuffle(len(possible), func(i, j int) {
			possible[i], possible[j] = possible[j], possible[i]
		})
		return possible
	}
	i, ok := e.index[pos]
	if !ok {
		return possible
	}
	slices.SortStableFunc(possible, func(a, b V) int {
		return cmp.Compare(e.weightOf(i, a), e.weightOf(i, b))
	})
	return possible
}

// weightOf returns the learned weight of val at the i-th start choice, or
// the initial weight 1 when val was not part of the enumeration.
func (e *EntropySolver[T, P, V]) weightOf(i int, val V) float64 {
	for j, v := range e.start[i].Values {
		if v == val {
			return e.weights[i][j]
		}
	}
	return 1.0
}

// observe increases the weight of a (position, value) pair each time the
// search applies it as a guess or a retried alternative.
func (e *EntropySolver[T, P, V]) observe(pos P, val V) {
	i, ok := e.index[pos]
	if !ok {
		return
	}
	for j, v := range e.start[i].Values {
		if v == val {
			e.weights[i][j]++
			return
		}
	}
}

// Weights exposes the learned weight table, indexed like the start choices
// passed to NewEntropySolver. Useful for inspecting what the solver has
// learned across attempts.
func (e *EntropySolver[T, P, V]) Weights() [][]float64 {
	return e.weights
}
