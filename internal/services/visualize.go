package services

import "pick-route-service/internal/domain"

// BuildVisualization renders a route as an overlay over the layout
// grid. Layering, later tags win per cell:
//
//	0/1  walkable/blocked (grid base)
//	3    cell on some segment's literal path
//	2    registered shelf not visited by this route
//	4+k  the k-th visited stop of the route (depot is k=0)
//
// For every traversed cell the overlay also records the direction the
// picker left it by. Several segments may cross one cell; every
// observed direction is kept, in first-observed order.
func BuildVisualization(layout *domain.Layout, route *domain.Route) *domain.Visualization {
	grid := layout.Grid().Snapshot()
	directions := make(map[string][]string)

	for _, segment := range route.Segments {
		for i, cell := range segment.Path {
			grid[cell.Row][cell.Col] = domain.CellPath

			if i+1 < len(segment.Path) {
				appendDirection(directions, cell, segment.Path[i+1])
			}
		}
	}

	visited := make(map[domain.Position]struct{}, len(route.Stops))
	for _, stop := range route.Stops {
		visited[stop.Pos] = struct{}{}
	}

	for _, pos := range layout.Shelves() {
		if _, ok := visited[pos]; !ok {
			grid[pos.Row][pos.Col] = domain.CellShelf
		}
	}

	points := make([]domain.RoutePoint, 0, len(route.Stops))
	for k, stop := range route.Stops {
		grid[stop.Pos.Row][stop.Pos.Col] = domain.CellVisitedBase + k
		points = append(points, domain.RoutePoint{Pos: stop.Pos, Order: k, ID: stop.ID})
	}

	return &domain.Visualization{
		Grid:        grid,
		RoutePoints: points,
		Directions:  directions,
	}
}

func appendDirection(directions map[string][]string, from, to domain.Position) {
	dir := from.DirectionTo(to)
	if dir == "" {
		return
	}

	key := from.Key()
	for _, seen := range directions[key] {
		if seen == dir {
			return
		}
	}
	directions[key] = append(directions[key], dir)
}
