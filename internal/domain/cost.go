package domain

import "math"

// Cost is a walking cost in the distance matrix: a non-negative step
// count (possibly scaled) or the Unreachable sentinel.
type Cost int64

// Unreachable marks pairs with no connecting path. It is a typed
// sentinel rather than a large penalty so scaling and summation can
// treat it explicitly instead of silently overflowing.
const Unreachable Cost = math.MaxInt64

// Reachable reports whether c represents a finite walking cost.
func (c Cost) Reachable() bool { return c != Unreachable }

// AddCost sums two costs, saturating at Unreachable.
func AddCost(a, b Cost) Cost {
	if !a.Reachable() || !b.Reachable() {
		return Unreachable
	}
	return a + b
}
