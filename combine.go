package backtrack

import (
	"cmp"
	"fmt"
	"slices"
)

// Combine merges several candidate-priority lists over the same value
// domain into one, Borda-count style. Each list follows the usual "last =
// highest priority" convention, so a value's index within a list is its
// rank. A value's aggregate score is the sum of its indexes across every
// list in which it appears; absence contributes nothing. The merged list
// contains every distinct value, sorted ascending by aggregate score, so a
// value ranked late by many lists ends up last and is tried first.
//
// The merged list never depends on the order in which the lists are
// supplied: only each value's (list, index) contributions matter. Ties in
// aggregate score are broken by the values' printed form, which is likewise
// independent of input order.
//
// Combining the orderings of several strategies is sometimes better than
// using either strategy alone.
func Combine[V comparable](lists [][]V) []V {
	score := make(map[V]int)
	var merged []V
	for _, list := range lists {
		for i, v := range list {
			if _, seen := score[v]; !seen {
				merged = append(merged, v)
			}
			score[v] += i
		}
	}
	slices.SortStableFunc(merged, func(a, b V) int {
		if c := cmp.Compare(score[a], score[b]); c != 0 {
			return c
		}
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	})
	return merged
}
