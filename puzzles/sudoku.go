package puzzles

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sky-flux/backtrack"
)

// Cell addresses a sudoku slot by zero-based column (X) and row (Y).
type Cell struct {
	X, Y int
}

// Sudoku is a 9×9 grid filled with digits 1-9 so that every row, column,
// and 3×3 block contains each digit once. 0 marks an empty slot.
type Sudoku struct {
	slots [9][9]uint8
}

// Compile-time contract check.
var _ backtrack.Puzzle[*Sudoku, Cell, uint8] = (*Sudoku)(nil)

// NewSudoku creates a grid from the given slots, indexed [row][column].
func NewSudoku(slots [9][9]uint8) *Sudoku {
	return &Sudoku{slots: slots}
}

// sudokuDoc is the YAML form of a sudoku grid:
//
//	grid:
//	  - [0, 5, 0, 0, 9, 6, 0, 7, 0]
//	  ... (9 rows of 9 digits, 0 = empty)
type sudokuDoc struct {
	Grid [][]int `yaml:"grid"`
}

// ParseSudoku decodes a YAML sudoku document and validates its shape:
// exactly 9 rows of 9 digits in [0, 9].
func ParseSudoku(data []byte) (*Sudoku, error) {
	var doc sudokuDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("puzzles: decode sudoku: %w", err)
	}
	if len(doc.Grid) != 9 {
		return nil, fmt.Errorf("puzzles: sudoku grid has %d rows, want 9", len(doc.Grid))
	}
	var slots [9][9]uint8
	for y, row := range doc.Grid {
		if len(row) != 9 {
			return nil, fmt.Errorf("puzzles: sudoku row %d has %d digits, want 9", y, len(row))
		}
		for x, v := range row {
			if v < 0 || v > 9 {
				return nil, fmt.Errorf("puzzles: sudoku digit %d at row %d column %d out of range", v, y, x)
			}
			slots[y][x] = uint8(v)
		}
	}
	return NewSudoku(slots), nil
}

// Clone returns a deep copy of the grid.
func (s *Sudoku) Clone() *Sudoku {
	out := *s
	return &out
}

// Get returns the digit at c, or 0 when empty.
func (s *Sudoku) Get(c Cell) uint8 { return s.slots[c.Y][c.X] }

// Set stores a digit at c.
func (s *Sudoku) Set(c Cell, val uint8) { s.slots[c.Y][c.X] = val }

// IsSolved reports whether every slot is filled. Row, column, and block
// constraints are enforced by Possible, not here.
func (s *Sudoku) IsSolved() bool {
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if s.slots[y][x] == 0 {
				return false
			}
		}
	}
	return true
}

// Remove clears every slot at which other holds a digit.
func (s *Sudoku) Remove(other *Sudoku) {
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if other.slots[y][x] != 0 {
				s.slots[y][x] = 0
			}
		}
	}
}

// SolveSimple repeatedly fills slots that admit exactly one digit, applying
// each through assign, until a fixed point is reached.
func (s *Sudoku) SolveSimple(assign func(c Cell, val uint8)) {
	for {
		found := false
		for y := 0; y < 9; y++ {
			for x := 0; x < 9; x++ {
				if s.slots[y][x] != 0 {
					continue
				}
				if possible := s.Possible(Cell{x, y}); len(possible) == 1 {
					assign(Cell{x, y}, possible[0])
					found = true
				}
			}
		}
		if !found {
			return
		}
	}
}

// Possible returns the digits admissible at c given the current grid, in
// ascending order. Filled slots admit nothing.
func (s *Sudoku) Possible(c Cell) []uint8 {
	var res []uint8
	if s.slots[c.Y][c.X] != 0 {
		return res
	}
nextVal:
	for v := uint8(1); v <= 9; v++ {
		for i := 0; i < 9; i++ {
			if s.slots[c.Y][i] == v || s.slots[i][c.X] == v {
				continue nextVal
			}
		}
		bx, by := 3*(c.X/3), 3*(c.Y/3)
		for y := by; y < by+3; y++ {
			for x := bx; x < bx+3; x++ {
				if s.slots[y][x] == v {
					continue nextVal
				}
			}
		}
		res = append(res, v)
	}
	return res
}

// PossibleAt adapts Possible to the backtrack.Candidates shape.
func PossibleAt(s *Sudoku, c Cell) []uint8 { return s.Possible(c) }

// PossibleByFreedom orders the digits admissible at c so that the digit
// leaving the most options open elsewhere ends up last and is tried first.
// Digits that cause an immediate contradiction score zero and are tried
// last. Considerably more expensive per call than Possible.
func PossibleByFreedom(s *Sudoku, c Cell) []uint8 {
	choices := s.Possible(c)
	if len(choices) < 2 {
		return choices
	}
	scores := make(map[uint8]int, len(choices))
	for _, v := range choices {
		experiment := s.Clone()
		experiment.Set(c, v)
		scores[v] = experiment.freedom()
	}
	slices.SortStableFunc(choices, func(a, b uint8) int {
		return cmp.Compare(scores[a], scores[b])
	})
	return choices
}

// freedom sums the option counts of every empty slot, or 0 when some empty
// slot admits nothing.
func (s *Sudoku) freedom() int {
	sum := 0
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if s.slots[y][x] != 0 {
				continue
			}
			n := len(s.Possible(Cell{x, y}))
			if n == 0 {
				return 0
			}
			sum += n
		}
	}
	return sum
}

// FirstEmpty picks the first empty slot in scan order.
func FirstEmpty(s *Sudoku) (Cell, bool) {
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if s.slots[y][x] == 0 {
				return Cell{x, y}, true
			}
		}
	}
	return Cell{}, false
}

// MinRemaining picks the empty slot with the fewest admissible digits.
// It returns false both when the grid is full and when some empty slot
// admits nothing, pruning the branch early.
func MinRemaining(s *Sudoku) (Cell, bool) {
	best := Cell{}
	bestN := 0
	found := false
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if s.slots[y][x] != 0 {
				continue
			}
			n := len(s.Possible(Cell{x, y}))
			if n == 0 {
				return Cell{}, false
			}
			if !found || n < bestN {
				best, bestN, found = Cell{x, y}, n, true
			}
		}
	}
	return best, found
}

// LeastFrequent picks an empty slot that admits the digit occurring least
// often among all empty slots' options, falling back to FirstEmpty when no
// slot admits anything.
func LeastFrequent(s *Sudoku) (Cell, bool) {
	var freq [9]int
	var mask [9][9]uint16
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if s.slots[y][x] != 0 {
				continue
			}
			for _, v := range s.Possible(Cell{x, y}) {
				freq[v-1]++
				mask[y][x] |= 1 << (v - 1)
			}
		}
	}

	rarest := -1
	for i, f := range freq {
		if f > 0 && (rarest == -1 || f < freq[rarest]) {
			rarest = i
		}
	}
	if rarest == -1 {
		return FirstEmpty(s)
	}

	bit := uint16(1) << rarest
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if s.slots[y][x] == 0 && mask[y][x]&bit == bit {
				return Cell{x, y}, true
			}
		}
	}
	return FirstEmpty(s)
}

// String renders the grid with block separators; empty slots print blank.
func (s *Sudoku) String() string {
	var b strings.Builder
	b.WriteString(" ___ ___ ___\n")
	for y := 0; y < 9; y++ {
		b.WriteByte('|')
		for x := 0; x < 9; x++ {
			if v := s.slots[y][x]; v == 0 {
				b.WriteByte(' ')
			} else {
				fmt.Fprintf(&b, "%d", v)
			}
			if x%3 == 2 {
				b.WriteByte('|')
			}
		}
		b.WriteByte('\n')
		if y%3 == 2 {
			b.WriteString(" ---+---+---\n")
		}
	}
	return b.String()
}
