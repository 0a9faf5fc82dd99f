package puzzles

import (
	"strings"

	"github.com/sky-flux/backtrack"
)

// Automaton cell states. Zero marks an unknown cell so it doubles as the
// solver's empty sentinel.
const (
	CellUnknown uint8 = iota
	CellOff
	CellOn
)

// Site addresses a cell in an automaton's space-time diagram by row
// (generation) and column.
type Site struct {
	Row, Col int
}

// Automaton reconstructs the space-time diagram of a one-dimensional
// elementary cellular automaton (Wolfram rule numbering, wrap-around
// columns) from partially known cell states. Candidate states are those
// that contradict neither the row above nor the row below.
type Automaton struct {
	rule  uint8
	cells [][]uint8
}

// Compile-time contract check.
var _ backtrack.Puzzle[*Automaton, Site, uint8] = (*Automaton)(nil)

// NewAutomaton creates a diagram for the given Wolfram rule from the known
// cells, indexed [row][column]. Rows must share one width.
func NewAutomaton(rule uint8, cells [][]uint8) *Automaton {
	a := &Automaton{rule: rule, cells: make([][]uint8, len(cells))}
	for i, row := range cells {
		a.cells[i] = make([]uint8, len(row))
		copy(a.cells[i], row)
	}
	return a
}

// Clone returns a deep copy of the diagram.
func (a *Automaton) Clone() *Automaton {
	return NewAutomaton(a.rule, a.cells)
}

// Get returns the state at the given site.
func (a *Automaton) Get(s Site) uint8 { return a.cells[s.Row][s.Col] }

// Set stores a state at the given site.
func (a *Automaton) Set(s Site, val uint8) { a.cells[s.Row][s.Col] = val }

// IsSolved reports whether every cell is known and every row transition
// follows the rule.
func (a *Automaton) IsSolved() bool {
	for _, row := range a.cells {
		for _, c := range row {
			if c == CellUnknown {
				return false
			}
		}
	}
	for r := 0; r+1 < len(a.cells); r++ {
		for c := range a.cells[r] {
			if a.successor(a.cells[r], c) != a.cells[r+1][c] {
				return false
			}
		}
	}
	return true
}

// Remove clears every site at which other holds a known state.
func (a *Automaton) Remove(other *Automaton) {
	for r, row := range other.cells {
		for c, v := range row {
			if v != CellUnknown {
				a.cells[r][c] = CellUnknown
			}
		}
	}
}

// SolveSimple repeatedly fills cells with exactly one consistent state,
// applying each through assign, until a fixed point is reached.
func (a *Automaton) SolveSimple(assign func(s Site, val uint8)) {
	for {
		found := false
		for r, row := range a.cells {
			for c, v := range row {
				if v != CellUnknown {
					continue
				}
				if possible := a.Possible(Site{r, c}); len(possible) == 1 {
					assign(Site{r, c}, possible[0])
					found = true
				}
			}
		}
		if !found {
			return
		}
	}
}

// Possible returns the states admissible at the given site: those that
// contradict neither neighbors above nor below.
func (a *Automaton) Possible(s Site) []uint8 {
	var res []uint8
	for _, v := range []uint8{CellOff, CellOn} {
		if a.satisfied(s, v) {
			res = append(res, v)
		}
	}
	return res
}

// PossibleAutomaton adapts Possible to the backtrack.Candidates shape.
func PossibleAutomaton(a *Automaton, s Site) []uint8 { return a.Possible(s) }

// MostConstrained picks the unknown site with the fewest consistent states.
func MostConstrained(a *Automaton) (Site, bool) {
	best := Site{}
	bestN := -1
	for r, row := range a.cells {
		for c, v := range row {
			if v != CellUnknown {
				continue
			}
			if n := len(a.Possible(Site{r, c})); bestN == -1 || n <= bestN {
				best, bestN = Site{r, c}, n
			}
		}
	}
	return best, bestN != -1
}

// satisfied reports whether placing val at s contradicts the known cells in
// the rows directly above and below.
func (a *Automaton) satisfied(s Site, val uint8) bool {
	n := len(a.cells[s.Row])

	// The three cells of the next row that s feeds into must still be
	// reachable with val in place.
	if s.Row+1 < len(a.cells) {
		probe := make([]uint8, n)
		copy(probe, a.cells[s.Row])
		probe[s.Col] = val
		for d := -1; d <= 1; d++ {
			col := ((s.Col+d)%n + n) % n
			next := a.successor(probe, col)
			known := a.cells[s.Row+1][col]
			if next != CellUnknown && known != CellUnknown && next != known {
				return false
			}
		}
	}

	// The previous row, where known, must produce val.
	if s.Row > 0 {
		prev := a.successor(a.cells[s.Row-1], s.Col)
		if prev != CellUnknown && prev != val {
			return false
		}
	}
	return true
}

// successor computes the rule outcome for the cell at col of the next
// generation after row. When unknown inputs leave the outcome ambiguous it
// returns CellUnknown.
func (a *Automaton) successor(row []uint8, col int) uint8 {
	n := len(row)
	left := row[((col-1)%n+n)%n]
	center := row[col]
	right := row[((col+1)%n+n)%n]

	out := CellUnknown
	for _, l := range expand(left) {
		for _, c := range expand(center) {
			for _, r := range expand(right) {
				pattern := (l-CellOff)<<2 | (c-CellOff)<<1 | (r - CellOff)
				v := CellOff
				if a.rule>>pattern&1 == 1 {
					v = CellOn
				}
				if out == CellUnknown {
					out = v
				} else if out != v {
					return CellUnknown
				}
			}
		}
	}
	return out
}

// expand lists the concrete states an input may take.
func expand(v uint8) []uint8 {
	if v == CellUnknown {
		return []uint8{CellOff, CellOn}
	}
	return []uint8{v}
}

// String renders the diagram with # for on, . for off, and ? for unknown.
func (a *Automaton) String() string {
	var b strings.Builder
	for _, row := range a.cells {
		for _, c := range row {
			switch c {
			case CellOn:
				b.WriteByte('#')
			case CellOff:
				b.WriteByte('.')
			default:
				b.WriteByte('?')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
