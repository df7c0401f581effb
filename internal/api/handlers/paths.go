package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"pick-route-service/internal/api/dto"
	"pick-route-service/internal/domain"
	"pick-route-service/internal/services"
)

// PathHandler answers single-pair shortest-path queries. "No path" is
// a normal response (found=false, distance -1), never an error status.
type PathHandler struct {
	Layout *domain.Layout
}

func (h *PathHandler) Find(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PathRequest

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

	start := domain.Position{Row: req.Start[0], Col: req.Start[1]}
	goal := domain.Position{Row: req.Goal[0], Col: req.Goal[1]}

	path := services.FindPath(h.Layout.Grid(), start, goal)

	res := dto.PathResponse{
		Path:     positionPairs(path),
		Distance: services.PathSteps(path),
		Found:    len(path) > 0,
	}

	writeJSON(w, r, http.StatusOK, res)
}
