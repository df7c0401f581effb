package services

import (
	"context"
	"log"

	"pick-route-service/internal/domain"
	"pick-route-service/internal/platform/obs"
	"pick-route-service/internal/ports"
)

// CostScale is the fixed integer factor applied to finite matrix
// entries before tour solving. The solver works on integer costs;
// scaling preserves sub-unit precision should the distance function
// ever produce fractional values.
const CostScale = 100

// DistanceMatrix holds pairwise walking step counts over a resolved
// location set, with the depot at index 0. It is symmetric because
// grid movement is unweighted and reversible.
type DistanceMatrix struct {
	Positions []domain.Position
	Costs     [][]domain.Cost
}

// Len returns the number of locations covered by the matrix.
func (m *DistanceMatrix) Len() int { return len(m.Positions) }

// Scaled returns the matrix entries multiplied by CostScale, with
// Unreachable entries carried through unchanged. This is the form the
// tour solver consumes.
func (m *DistanceMatrix) Scaled() [][]domain.Cost {
	out := make([][]domain.Cost, len(m.Costs))
	for i, row := range m.Costs {
		out[i] = make([]domain.Cost, len(row))
		for j, c := range row {
			if c.Reachable() {
				out[i][j] = c * CostScale
			} else {
				out[i][j] = domain.Unreachable
			}
		}
	}
	return out
}

// PairKey is the cache key for an unordered position pair. The smaller
// endpoint comes first so that {i,j} and {j,i} share one entry.
func PairKey(a, b domain.Position) string {
	if b.Row < a.Row || (b.Row == a.Row && b.Col < a.Col) {
		a, b = b, a
	}
	return a.Key() + "|" + b.Key()
}

// BuildDistanceMatrix computes the all-pairs cost matrix over the
// given positions via A*. Unreachable pairs get the Unreachable
// sentinel instead of failing, so the solver can still produce a
// degraded tour. Each unordered pair is searched once and mirrored.
//
// This is the dominant cost of the pipeline, O(N² · pathfinding); the
// optional cache memoizes pairs across requests since the grid never
// changes within a process lifetime. Cache failures degrade to
// recomputation and are logged, never surfaced.
func BuildDistanceMatrix(
	ctx context.Context,
	grid *domain.Grid,
	positions []domain.Position,
	cache ports.DistanceCache,
) *DistanceMatrix {
	defer obs.Time(ctx, "distance.matrix.build")(nil)

	n := len(positions)
	costs := make([][]domain.Cost, n)
	for i := range costs {
		costs[i] = make([]domain.Cost, n)
	}

	cached := lookupCached(ctx, cache, positions)
	fresh := make(map[string]int)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			cost := pairCost(grid, positions[i], positions[j], cached, fresh)
			costs[i][j] = cost
			costs[j][i] = cost
		}
	}

	if cache != nil && len(fresh) > 0 {
		if err := cache.PutMany(ctx, fresh); err != nil {
			log.Printf("distance cache put failed: entries=%d err=%v", len(fresh), err)
		}
	}

	return &DistanceMatrix{Positions: positions, Costs: costs}
}

// pairCost resolves one unordered pair: cache hit, already-computed
// duplicate position pair, or a fresh A* search.
func pairCost(
	grid *domain.Grid,
	a, b domain.Position,
	cached map[string]int,
	fresh map[string]int,
) domain.Cost {
	if a == b {
		return 0
	}

	key := PairKey(a, b)
	if steps, ok := cached[key]; ok {
		return stepsToCost(steps)
	}
	if steps, ok := fresh[key]; ok {
		return stepsToCost(steps)
	}

	steps := PathSteps(FindPath(grid, a, b))
	fresh[key] = steps
	return stepsToCost(steps)
}

func stepsToCost(steps int) domain.Cost {
	if steps == ports.UnreachableSteps {
		return domain.Unreachable
	}
	return domain.Cost(steps)
}

// lookupCached fetches every pair key for the request in one call.
func lookupCached(ctx context.Context, cache ports.DistanceCache, positions []domain.Position) map[string]int {
	if cache == nil {
		return nil
	}

	keys := make([]string, 0, len(positions)*(len(positions)-1)/2)
	seen := make(map[string]struct{})
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			key := PairKey(positions[i], positions[j])
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}

	cached, err := cache.GetMany(ctx, keys)
	if err != nil {
		log.Printf("distance cache get failed: keys=%d err=%v", len(keys), err)
		return nil
	}
	return cached
}
