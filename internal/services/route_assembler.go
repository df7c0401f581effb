package services

import "pick-route-service/internal/domain"

// AssembleRoute re-walks a solved visiting order, re-invoking the
// pathfinder per consecutive stop pair to materialize the literal
// walking paths. Stops whose segment cannot be connected stay in the
// route flagged found=false and contribute nothing to the total; a
// requested stop is never dropped silently.
//
// The solver's order is an open path from the depot. When
// returnToDepot is set the closing depot leg is appended as an extra
// stop and segment, making the tour explicitly closed.
func AssembleRoute(grid *domain.Grid, stops []domain.Stop, order []int, returnToDepot bool) *domain.Route {
	ordered := make([]domain.Stop, 0, len(order)+1)
	for _, idx := range order {
		ordered = append(ordered, stops[idx])
	}
	if returnToDepot && len(ordered) > 1 {
		ordered = append(ordered, ordered[0])
	}

	segments := make([]domain.Segment, 0, len(ordered))
	total := 0

	for i := 1; i < len(ordered); i++ {
		from := ordered[i-1].Pos
		to := ordered[i].Pos

		path := FindPath(grid, from, to)
		segment := domain.Segment{From: from, To: to, Path: path}

		if len(path) > 0 {
			segment.Found = true
			segment.Distance = len(path) - 1
			total += segment.Distance
		}

		segments = append(segments, segment)
	}

	return &domain.Route{
		Stops:         ordered,
		Segments:      segments,
		TotalDistance: total,
	}
}
