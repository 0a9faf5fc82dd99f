package puzzles

import (
	"reflect"
	"strings"
	"testing"
)

func newTestBoard(t *testing.T, n int) *Queens {
	t.Helper()
	q, err := NewQueens(n)
	if err != nil {
		t.Fatal(err)
	}
	return q
}

func TestNewQueensTooLarge(t *testing.T) {
	if _, err := NewQueens(256); err == nil {
		t.Error("NewQueens(256) = nil error, want error")
	}
	if _, err := NewQueens(255); err != nil {
		t.Errorf("NewQueens(255) error = %v, want nil", err)
	}
}

func TestQueensValid(t *testing.T) {
	q := newTestBoard(t, 4)
	q.Set(0, 2)

	cases := []struct {
		row  int
		col  uint8
		want bool
	}{
		{1, 2, false}, // same column
		{1, 1, false}, // diagonal
		{1, 3, false}, // diagonal
		{1, 4, true},
		{2, 4, false}, // diagonal two rows down
		{3, 1, true},
	}
	for _, c := range cases {
		if got := q.Valid(c.row, c.col); got != c.want {
			t.Errorf("Valid(%d, %d) = %v, want %v", c.row, c.col, got, c.want)
		}
	}
}

func TestQueensCandidates(t *testing.T) {
	q := newTestBoard(t, 4)
	q.Set(0, 2)
	want := []uint8{4}
	if got := QueensCandidates(q, 1); !reflect.DeepEqual(got, want) {
		t.Errorf("QueensCandidates(row 1) = %v, want %v", got, want)
	}
}

func TestQueensRemove(t *testing.T) {
	q := newTestBoard(t, 4)
	q.Set(0, 2)
	q.Set(1, 4)
	other := newTestBoard(t, 4)
	other.Set(0, 2)

	q.Remove(other)
	if q.Get(0) != 0 {
		t.Error("row 0 not cleared")
	}
	if q.Get(1) != 4 {
		t.Error("row 1 should be untouched")
	}
}

func TestQueensCloneIsIndependent(t *testing.T) {
	q := newTestBoard(t, 4)
	q.Set(0, 2)
	clone := q.Clone()
	clone.Set(0, 3)
	if q.Get(0) != 2 {
		t.Error("mutating the clone changed the original")
	}
}

func TestQueensString(t *testing.T) {
	q := newTestBoard(t, 2)
	q.Set(0, 1)
	s := q.String()
	if !strings.Contains(s, "|x|_|") {
		t.Errorf("String() missing queen row:\n%s", s)
	}
	if !strings.Contains(s, "|_|_|") {
		t.Errorf("String() missing empty row:\n%s", s)
	}
}
