package puzzles

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func easyGrid() [9][9]uint8 {
	return [9][9]uint8{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
}

func TestParseSudoku(t *testing.T) {
	doc := []byte(`grid:
  - [5, 3, 0, 0, 7, 0, 0, 0, 0]
  - [6, 0, 0, 1, 9, 5, 0, 0, 0]
  - [0, 9, 8, 0, 0, 0, 0, 6, 0]
  - [8, 0, 0, 0, 6, 0, 0, 0, 3]
  - [4, 0, 0, 8, 0, 3, 0, 0, 1]
  - [7, 0, 0, 0, 2, 0, 0, 0, 6]
  - [0, 6, 0, 0, 0, 0, 2, 8, 0]
  - [0, 0, 0, 4, 1, 9, 0, 0, 5]
  - [0, 0, 0, 0, 8, 0, 0, 7, 9]
`)
	s, err := ParseSudoku(doc)
	if err != nil {
		t.Fatalf("ParseSudoku() error = %v", err)
	}
	if !reflect.DeepEqual(s, NewSudoku(easyGrid())) {
		t.Errorf("parsed grid differs:\n%s", s)
	}
}

func TestParseSudokuErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"invalid yaml", "grid: ["},
		{"too few rows", "grid:\n  - [0, 0, 0, 0, 0, 0, 0, 0, 0]\n"},
		{"short row", "grid:\n" + strings.Repeat("  - [0, 0, 0, 0, 0, 0, 0, 0, 0]\n", 8) + "  - [0, 0, 0]\n"},
		{"digit out of range", "grid:\n" + strings.Repeat("  - [0, 0, 0, 0, 0, 0, 0, 0, 0]\n", 8) + "  - [0, 0, 0, 0, 0, 0, 0, 0, 10]\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ParseSudoku([]byte(c.doc)); err == nil {
				t.Error("ParseSudoku() = nil error, want error")
			}
		})
	}
}

func TestPossible(t *testing.T) {
	var grid [9][9]uint8
	grid[0] = [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 0}
	s := NewSudoku(grid)

	if got := s.Possible(Cell{X: 8, Y: 0}); !reflect.DeepEqual(got, []uint8{9}) {
		t.Errorf("Possible(last slot of full row) = %v, want [9]", got)
	}
	if got := s.Possible(Cell{X: 0, Y: 0}); got != nil {
		t.Errorf("Possible(filled slot) = %v, want nil", got)
	}
	// Column and block exclusions apply on top of the row.
	if got := s.Possible(Cell{X: 0, Y: 8}); !reflect.DeepEqual(got, []uint8{2, 3, 4, 5, 6, 7, 8, 9}) {
		t.Errorf("Possible(below a 1) = %v, want 2..9", got)
	}
	if got := s.Possible(Cell{X: 1, Y: 1}); !reflect.DeepEqual(got, []uint8{4, 5, 6, 7, 8, 9}) {
		t.Errorf("Possible(inside first block) = %v, want 4..9", got)
	}
}

func TestSolveSimpleAssignsForcedSlots(t *testing.T) {
	var grid [9][9]uint8
	grid[0] = [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 0}
	s := NewSudoku(grid)

	var moves []Cell
	s.SolveSimple(func(c Cell, val uint8) {
		s.Set(c, val)
		moves = append(moves, c)
	})
	if s.Get(Cell{X: 8, Y: 0}) != 9 {
		t.Errorf("forced slot not filled:\n%s", s)
	}
	if len(moves) == 0 {
		t.Error("no moves reported through assign")
	}
}

// Filling forced slots is confluent: scanning the grid in a random order
// must reach the same fixed point as the sequential scan.
func TestSolveSimpleConfluence(t *testing.T) {
	sequential := NewSudoku(easyGrid())
	sequential.SolveSimple(func(c Cell, val uint8) { sequential.Set(c, val) })

	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 10; trial++ {
		shuffled := NewSudoku(easyGrid())
		order := rng.Perm(81)
		for {
			found := false
			for _, i := range order {
				c := Cell{X: i % 9, Y: i / 9}
				if shuffled.Get(c) != 0 {
					continue
				}
				if possible := shuffled.Possible(c); len(possible) == 1 {
					shuffled.Set(c, possible[0])
					found = true
				}
			}
			if !found {
				break
			}
		}
		if !reflect.DeepEqual(shuffled, sequential) {
			t.Fatalf("trial %d: fixed points differ\nsequential:\n%s\nshuffled:\n%s", trial, sequential, shuffled)
		}
	}
}

func TestPossibleByFreedomIsPermutation(t *testing.T) {
	s := NewSudoku(easyGrid())
	c := Cell{X: 2, Y: 0}

	plain := s.Possible(c)
	ordered := PossibleByFreedom(s, c)
	if len(ordered) != len(plain) {
		t.Fatalf("PossibleByFreedom dropped digits: %v vs %v", ordered, plain)
	}
	seen := make(map[uint8]bool, len(plain))
	for _, v := range plain {
		seen[v] = true
	}
	for _, v := range ordered {
		if !seen[v] {
			t.Fatalf("PossibleByFreedom invented digit %d", v)
		}
	}

	// The last digit (tried first) must leave at least as much freedom as
	// the first.
	first, last := s.Clone(), s.Clone()
	first.Set(c, ordered[0])
	last.Set(c, ordered[len(ordered)-1])
	if last.freedom() < first.freedom() {
		t.Errorf("ordering not ascending by freedom: %v", ordered)
	}
}

func TestMinRemainingPrunesDeadGrids(t *testing.T) {
	var grid [9][9]uint8
	// Column 0 and row 8 together exclude every digit at (0, 8).
	grid[0][0] = 1
	grid[1][0] = 2
	grid[2][0] = 3
	grid[3][0] = 4
	grid[4][0] = 5
	grid[5][0] = 6
	grid[6][0] = 7
	grid[7][0] = 8
	grid[8][1] = 9
	s := NewSudoku(grid)

	if _, ok := MinRemaining(s); ok {
		t.Error("MinRemaining should report false when a slot admits nothing")
	}
}

func TestMinRemainingPicksTightestSlot(t *testing.T) {
	var grid [9][9]uint8
	grid[0] = [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 0}
	s := NewSudoku(grid)

	c, ok := MinRemaining(s)
	if !ok {
		t.Fatal("MinRemaining found nothing")
	}
	if c != (Cell{X: 8, Y: 0}) {
		t.Errorf("MinRemaining = %+v, want the single-candidate slot {8 0}", c)
	}
}

func TestLeastFrequentPicksEmptySlot(t *testing.T) {
	s := NewSudoku(easyGrid())
	c, ok := LeastFrequent(s)
	if !ok {
		t.Fatal("LeastFrequent found nothing")
	}
	if s.Get(c) != 0 {
		t.Errorf("LeastFrequent picked a filled slot %+v", c)
	}
}

func TestSudokuRemove(t *testing.T) {
	s := NewSudoku(easyGrid())
	s.Set(Cell{X: 2, Y: 0}, 4)
	s.Remove(NewSudoku(easyGrid()))

	if s.Get(Cell{X: 0, Y: 0}) != 0 {
		t.Error("given slot not cleared")
	}
	if s.Get(Cell{X: 2, Y: 0}) != 4 {
		t.Error("new move should survive Remove")
	}
}

func TestSudokuString(t *testing.T) {
	s := NewSudoku(easyGrid())
	out := s.String()
	if !strings.Contains(out, "|53 | 7 |   |") {
		t.Errorf("String() missing first row:\n%s", out)
	}
	if !strings.Contains(out, " ---+---+---") {
		t.Errorf("String() missing block separator:\n%s", out)
	}
}
