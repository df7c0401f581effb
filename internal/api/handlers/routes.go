package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"pick-route-service/internal/api/dto"
	"pick-route-service/internal/domain"
	"pick-route-service/internal/ports"
	"pick-route-service/internal/services"
)

// RouteHandler computes pick routes: the routing pipeline behind
// POST /routes.
type RouteHandler struct {
	Layout *domain.Layout
	Cache  ports.DistanceCache
}

func (h *RouteHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	result, err := services.PlanPickRoute(r.Context(), h.Layout, services.PickRouteRequest{
		PickList:      req.PickList,
		ReturnToDepot: req.ReturnToDepot,
		Visualize:     req.Visualize,
	}, h.Cache)

	switch {
	case errors.Is(err, domain.ErrNoValidLocations):
		writeError(w, r, http.StatusBadRequest, "pick list contains no known shelf identifiers")
		return
	case errors.Is(err, domain.ErrNoTourFound):
		writeError(w, r, http.StatusUnprocessableEntity, "no feasible route for this pick list")
		return
	case err != nil:
		log.Printf("plan pick route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, routeResponse(result))
}

func routeResponse(result *services.PickRouteResult) dto.RouteResponse {
	route := result.Route

	res := dto.RouteResponse{
		OrderedLocations: make([][2]int, 0, len(route.Stops)),
		Segments:         make([]dto.SegmentResponse, 0, len(route.Segments)),
		TotalDistance:    route.TotalDistance,
	}

	for _, stop := range route.Stops {
		res.OrderedLocations = append(res.OrderedLocations, positionPair(stop.Pos))
	}

	for _, s := range route.Segments {
		res.Segments = append(res.Segments, dto.SegmentResponse{
			From:     positionPair(s.From),
			To:       positionPair(s.To),
			Path:     positionPairs(s.Path),
			Distance: s.Distance,
			Found:    s.Found,
		})
	}

	if v := result.Visualization; v != nil {
		points := make([]dto.RoutePointResponse, 0, len(v.RoutePoints))
		for _, p := range v.RoutePoints {
			points = append(points, dto.RoutePointResponse{
				Position: positionPair(p.Pos),
				Order:    p.Order,
				ID:       p.ID,
			})
		}

		res.Visualization = &dto.VisualizationResponse{
			VisualGrid:  v.Grid,
			RoutePoints: points,
			Directions:  v.Directions,
		}
	}

	return res
}

func positionPair(p domain.Position) [2]int {
	return [2]int{p.Row, p.Col}
}

func positionPairs(path []domain.Position) [][2]int {
	out := make([][2]int, 0, len(path))
	for _, p := range path {
		out = append(out, positionPair(p))
	}
	return out
}
