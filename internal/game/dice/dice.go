// Package dice provides the randomness abstraction and d6 pool mechanics
// used by the skirmish combat engine.
package dice

import (
	"fmt"
	"strings"
)

// Sides is the face count of every die in a pool.
const Sides = 6

// PoolResult holds the full audit trail for a single pool roll.
//
// Invariant: len(Kept) >= 1 whenever Count+Advantage >= 1.
type PoolResult struct {
	Count     int   // dice requested
	Cut       int   // highest dice requested to be removed
	Advantage int   // extra dice added to the pool
	Kept      []int // dice remaining after the cut, in roll order
	Dropped   []int // dice removed by the cut, highest first
}

// Highest returns the largest kept die, or 0 for an empty pool.
//
// Postcondition: return value is in [0, Sides].
func (r PoolResult) Highest() int {
	return Highest(r.Kept)
}

// String returns a human-readable audit string in the format:
//
//	"3d6 cut 1 adv 1 → [2 4 1] (dropped [6])"
func (r PoolResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dd%d", r.Count, Sides)
	if r.Cut > 0 {
		fmt.Fprintf(&b, " cut %d", r.Cut)
	}
	if r.Advantage > 0 {
		fmt.Fprintf(&b, " adv %d", r.Advantage)
	}
	fmt.Fprintf(&b, " → %v", r.Kept)
	if len(r.Dropped) > 0 {
		fmt.Fprintf(&b, " (dropped %v)", r.Dropped)
	}
	return b.String()
}

// Highest returns the largest value in rolls, or 0 when rolls is empty.
func Highest(rolls []int) int {
	best := 0
	for _, v := range rolls {
		if v > best {
			best = v
		}
	}
	return best
}

// HasDoubles reports whether any face value appears at least twice in rolls.
func HasDoubles(rolls []int) bool {
	var seen [Sides + 1]bool
	for _, v := range rolls {
		if v < 1 || v > Sides {
			continue
		}
		if seen[v] {
			return true
		}
		seen[v] = true
	}
	return false
}

// Source is the randomness provider for dice rolls.
//
// Implementations used by the batch runner with more than one worker MUST be
// safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}
