package services

import (
	"context"
	"fmt"

	"pick-route-service/internal/domain"
	"pick-route-service/internal/platform/obs"
	"pick-route-service/internal/ports"
)

// PickRouteRequest is one routing request: the items to collect and
// the route shape options.
type PickRouteRequest struct {
	PickList      []string
	ReturnToDepot bool
	Visualize     bool
}

// PickRouteResult bundles the materialized route with its optional
// visualization overlay.
type PickRouteResult struct {
	Route         *domain.Route
	Visualization *domain.Visualization
}

// PlanPickRoute runs the full routing pipeline for one request:
// resolve the pick list against the registry, build the all-pairs
// distance matrix, solve the visiting order and re-walk it into
// literal paths. All state is request-scoped; the layout is read-only
// shared configuration.
//
// Errors are structural only (unresolvable pick list, no feasible
// tour). "No path between two stops" is data, reported per segment.
func PlanPickRoute(
	ctx context.Context,
	layout *domain.Layout,
	req PickRouteRequest,
	cache ports.DistanceCache,
) (_ *PickRouteResult, err error) {
	defer obs.Time(ctx, "route.plan")(&err)

	stops, err := layout.ResolvePickList(req.PickList)
	if err != nil {
		return nil, fmt.Errorf("plan pick route: resolve pick list: %w", err)
	}

	positions := make([]domain.Position, 0, len(stops))
	for _, s := range stops {
		positions = append(positions, s.Pos)
	}

	matrix := BuildDistanceMatrix(ctx, layout.Grid(), positions, cache)

	order := SolveTour(matrix.Scaled())
	if len(order) == 0 {
		return nil, fmt.Errorf("plan pick route: %w", domain.ErrNoTourFound)
	}

	route := AssembleRoute(layout.Grid(), stops, order, req.ReturnToDepot)

	result := &PickRouteResult{Route: route}
	if req.Visualize {
		result.Visualization = BuildVisualization(layout, route)
	}

	return result, nil
}
