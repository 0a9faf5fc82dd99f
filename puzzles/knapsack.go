package puzzles

import (
	"fmt"
	"strings"

	"github.com/sky-flux/backtrack"
)

// Item is something that can be packed into a Knapsack.
type Item struct {
	Name   string
	Weight float64
	Value  float64
}

// Knapsack is a 0/1 knapsack: pack items into a bag without exceeding its
// weight capacity until the packed value exceeds the target. Positions are
// item indexes; values report whether the item is packed.
//
// Raising the target to each found solution's value and solving again
// converges on the optimal packing.
type Knapsack struct {
	items       []Item
	packed      uint64 // bitmask, one bit per item
	maxWeight   float64
	targetValue float64
}

// Compile-time contract check.
var _ backtrack.Puzzle[*Knapsack, int, bool] = (*Knapsack)(nil)

// NewKnapsack creates an empty knapsack over the given items. At most 64
// items are supported.
func NewKnapsack(items []Item, maxWeight, targetValue float64) (*Knapsack, error) {
	if len(items) > 64 {
		return nil, fmt.Errorf("puzzles: knapsack holds at most 64 items, got %d", len(items))
	}
	return &Knapsack{items: items, maxWeight: maxWeight, targetValue: targetValue}, nil
}

// Clone returns a copy of the knapsack. The item list is shared and never
// mutated.
func (k *Knapsack) Clone() *Knapsack {
	out := *k
	return &out
}

// Get reports whether the item at the given index is packed.
func (k *Knapsack) Get(i int) bool { return k.packed&(1<<i) != 0 }

// Set packs or unpacks the item at the given index.
func (k *Knapsack) Set(i int, packed bool) {
	if packed {
		k.packed |= 1 << i
	} else {
		k.packed &^= 1 << i
	}
}

// IsSolved reports whether the packed value exceeds the target.
func (k *Knapsack) IsSolved() bool { return k.TotalValue() > k.targetValue }

// Remove unpacks every item packed in other.
func (k *Knapsack) Remove(other *Knapsack) {
	k.packed &^= other.packed
}

// SolveSimple is a no-op: which item to pack next is always a choice.
func (k *Knapsack) SolveSimple(assign func(i int, packed bool)) {}

// TotalWeight sums the weights of the packed items.
func (k *Knapsack) TotalWeight() float64 {
	var sum float64
	for i, item := range k.items {
		if k.Get(i) {
			sum += item.Weight
		}
	}
	return sum
}

// TotalValue sums the values of the packed items.
func (k *Knapsack) TotalValue() float64 {
	var sum float64
	for i, item := range k.items {
		if k.Get(i) {
			sum += item.Value
		}
	}
	return sum
}

// String lists the packed items.
func (k *Knapsack) String() string {
	var b strings.Builder
	for i, item := range k.items {
		if k.Get(i) {
			fmt.Fprintf(&b, "%s (weight %.2f, value %.2f)\n", item.Name, item.Weight, item.Value)
		}
	}
	return b.String()
}

// KnapsackFirstUnpacked picks the first item not yet packed.
func KnapsackFirstUnpacked(k *Knapsack) (int, bool) {
	for i := range k.items {
		if !k.Get(i) {
			return i, true
		}
	}
	return 0, false
}

// KnapsackCandidates offers to pack the item when it still fits, and
// nothing otherwise, forcing a backtrack.
func KnapsackCandidates(k *Knapsack, i int) []bool {
	if k.Get(i) {
		return []bool{true}
	}
	if k.TotalWeight()+k.items[i].Weight <= k.maxWeight {
		return []bool{true}
	}
	return nil
}
