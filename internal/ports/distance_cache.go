package ports

import "context"

// UnreachableSteps is the cached encoding of "no path exists" for a
// position pair. Step counts are otherwise non-negative.
const UnreachableSteps = -1

// Contract for memoizing pairwise step counts across requests. The
// grid is immutable for a process lifetime, so cached entries never
// go stale. Keys are normalized position-pair keys (see
// services.PairKey); a missing key simply means "not cached yet".
type DistanceCache interface {
	// Return the cached step counts for the given keys; absent keys
	// are omitted from the result.
	GetMany(ctx context.Context, keys []string) (map[string]int, error)
	// Store step counts for the given keys.
	PutMany(ctx context.Context, entries map[string]int) error
}
