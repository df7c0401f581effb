package domain

// Segment is the literal walking path between two consecutive stops of
// a resolved tour. Found is false when the pathfinder could not connect
// the pair; such segments keep their place in the route (a requested
// stop is never dropped silently) but contribute nothing to the total.
type Segment struct {
	From     Position
	To       Position
	Path     []Position
	Distance int
	Found    bool
}

// Route is the fully materialized answer to one routing request: the
// stops in visiting order, the literal path per consecutive pair and
// the total step count over found segments.
type Route struct {
	Stops         []Stop
	Segments      []Segment
	TotalDistance int
}

// Visualization overlay cell tags. Cells visited as the k-th stop of
// the route carry CellVisitedBase+k, so tag values above CellPath
// encode the visiting order directly.
const (
	CellShelf       = 2
	CellPath        = 3
	CellVisitedBase = 4
)

// RoutePoint is one visited stop in the overlay, in visiting order.
type RoutePoint struct {
	Pos   Position
	Order int
	ID    string
}

// Visualization is the renderable form of a route: the tagged grid,
// the visited stops, and the movement directions observed at every
// traversed cell. A cell crossed by several segments keeps every
// direction it was left by; directions are appended, never overwritten.
type Visualization struct {
	Grid        [][]int
	RoutePoints []RoutePoint
	Directions  map[string][]string
}
