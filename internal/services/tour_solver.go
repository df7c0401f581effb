package services

import "pick-route-service/internal/domain"

// SolveTour computes a visiting order over the scaled cost matrix
// using a cheapest-arc-first construction: starting at the depot
// (index 0), the tour is repeatedly extended from its last node along
// the cheapest arc to an unvisited node. Ties break toward the lowest
// index, so identical matrices always produce identical tours.
//
// The result is a permutation of 0..N-1 beginning at 0, never a
// partial or duplicate-containing sequence. Unreachable arcs are taken
// only when no finite arc remains, producing a degraded but complete
// tour rather than a failure. An empty or malformed matrix yields an
// empty order ("no tour available"), not an error.
//
// This is a construction heuristic with no improvement phase; the
// result approximates, and does not guarantee, a minimum-cost tour.
func SolveTour(costs [][]domain.Cost) []int {
	n := len(costs)
	if n == 0 {
		return nil
	}
	for _, row := range costs {
		if len(row) != n {
			return nil
		}
	}

	order := make([]int, 0, n)
	order = append(order, 0)

	visited := make([]bool, n)
	visited[0] = true

	current := 0
	for len(order) < n {
		next := -1
		best := domain.Unreachable

		for candidate := 1; candidate < n; candidate++ {
			if visited[candidate] {
				continue
			}
			if next == -1 || costs[current][candidate] < best {
				next = candidate
				best = costs[current][candidate]
			}
		}

		if next == -1 {
			return nil
		}

		visited[next] = true
		order = append(order, next)
		current = next
	}

	return order
}

// TourCost sums consecutive-pair costs over an order, saturating at
// Unreachable, optionally including the closing depot leg.
func TourCost(costs [][]domain.Cost, order []int, closed bool) domain.Cost {
	var total domain.Cost
	for i := 1; i < len(order); i++ {
		total = domain.AddCost(total, costs[order[i-1]][order[i]])
	}
	if closed && len(order) > 1 {
		total = domain.AddCost(total, costs[order[len(order)-1]][order[0]])
	}
	return total
}
