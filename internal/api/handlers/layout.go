package handlers

import (
	"net/http"

	"pick-route-service/internal/api/dto"
	"pick-route-service/internal/domain"
)

// LayoutHandler exposes the immutable warehouse configuration so
// clients can render the floor and its shelves.
type LayoutHandler struct {
	Layout *domain.Layout
}

func (h *LayoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	shelves := make(map[string][2]int)
	for id, pos := range h.Layout.Shelves() {
		shelves[id] = [2]int{pos.Row, pos.Col}
	}

	res := dto.LayoutResponse{
		Grid:    h.Layout.Grid().Snapshot(),
		Shelves: shelves,
		Depot:   h.Layout.DepotID(),
	}

	writeJSON(w, r, http.StatusOK, res)
}
