package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"pick-route-service/internal/domain"
)

func warehouseLayout(t *testing.T) *domain.Layout {
	t.Helper()

	grid := mustGrid(t, [][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
	})

	layout, err := domain.NewLayout(grid, map[string]domain.Position{
		"start": {Row: 4, Col: 2},
		"A1":    {Row: 0, Col: 1},
		"A3":    {Row: 2, Col: 1},
		"B2":    {Row: 0, Col: 4},
		"D1":    {Row: 4, Col: 0},
	}, "start")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return layout
}

func TestPlanPickRoute(t *testing.T) {
	layout := warehouseLayout(t)

	result, err := PlanPickRoute(context.Background(), layout, PickRouteRequest{
		PickList: []string{"A1", "A3", "A1", "unknown"},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	route := result.Route
	// Depot + A1 + A3 + duplicate A1; the unknown identifier is dropped.
	if len(route.Stops) != 4 {
		t.Fatalf("stops = %d, want 4", len(route.Stops))
	}
	if route.Stops[0].ID != "start" {
		t.Fatalf("first stop = %q, want the depot", route.Stops[0].ID)
	}

	if len(route.Segments) != 3 {
		t.Fatalf("segments = %d, want 3", len(route.Segments))
	}

	sum := 0
	for _, s := range route.Segments {
		if !s.Found {
			t.Fatalf("segment %v -> %v not found on a connected floor", s.From, s.To)
		}
		sum += s.Distance
	}
	if sum != route.TotalDistance {
		t.Fatalf("total %d != segment sum %d", route.TotalDistance, sum)
	}

	// The duplicate resolves to the same shelf, so one segment is a
	// zero-length self leg.
	zeroLegs := 0
	for _, s := range route.Segments {
		if s.Distance == 0 && s.Found {
			zeroLegs++
		}
	}
	if zeroLegs != 1 {
		t.Fatalf("zero-length legs = %d, want 1 for the duplicated shelf", zeroLegs)
	}

	if result.Visualization != nil {
		t.Fatal("visualization produced without being requested")
	}
}

func TestPlanPickRouteRejectsUnresolvablePickList(t *testing.T) {
	layout := warehouseLayout(t)

	_, err := PlanPickRoute(context.Background(), layout, PickRouteRequest{
		PickList: []string{"nope"},
	}, nil)
	if !errors.Is(err, domain.ErrNoValidLocations) {
		t.Fatalf("unknown-only pick list: got %v, want ErrNoValidLocations", err)
	}

	_, err = PlanPickRoute(context.Background(), layout, PickRouteRequest{}, nil)
	if !errors.Is(err, domain.ErrNoValidLocations) {
		t.Fatalf("empty pick list: got %v, want ErrNoValidLocations", err)
	}
}

func TestPlanPickRouteIsIdempotent(t *testing.T) {
	layout := warehouseLayout(t)

	req := PickRouteRequest{
		PickList:      []string{"B2", "A1", "D1", "A3"},
		ReturnToDepot: true,
		Visualize:     true,
	}

	first, err := PlanPickRoute(context.Background(), layout, req, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 5; i++ {
		again, err := PlanPickRoute(context.Background(), layout, req, nil)
		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}
		if !reflect.DeepEqual(first.Route, again.Route) {
			t.Fatalf("run %d produced a different route", i)
		}
		if !reflect.DeepEqual(first.Visualization, again.Visualization) {
			t.Fatalf("run %d produced a different visualization", i)
		}
	}
}

func TestPlanPickRouteReturnToDepot(t *testing.T) {
	layout := warehouseLayout(t)

	open, err := PlanPickRoute(context.Background(), layout, PickRouteRequest{
		PickList: []string{"A1", "B2"},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	closed, err := PlanPickRoute(context.Background(), layout, PickRouteRequest{
		PickList:      []string{"A1", "B2"},
		ReturnToDepot: true,
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(closed.Route.Segments) != len(open.Route.Segments)+1 {
		t.Fatalf(
			"closed route has %d segments, open has %d, want exactly one extra",
			len(closed.Route.Segments), len(open.Route.Segments),
		)
	}

	last := closed.Route.Stops[len(closed.Route.Stops)-1]
	if last.ID != "start" {
		t.Fatalf("closed route ends at %q, want the depot", last.ID)
	}
	if closed.Route.TotalDistance <= open.Route.TotalDistance {
		t.Fatalf(
			"closed total %d not greater than open total %d",
			closed.Route.TotalDistance, open.Route.TotalDistance,
		)
	}
}
