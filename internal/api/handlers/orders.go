package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"pick-route-service/internal/api/dto"
	"pick-route-service/internal/domain"
	"pick-route-service/internal/simulation"
)

// OrderHandler synthesizes sample picking orders against the layout's
// shelf registry. A request-supplied seed makes the stream
// reproducible; without one the current time seeds the generator.
type OrderHandler struct {
	Layout *domain.Layout
}

func (h *OrderHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OrderRequest

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

	count := req.Count
	if count == 0 {
		count = 10
	}
	if count < 1 || count > 1000 {
		writeError(w, r, http.StatusBadRequest, "count must be between 1 and 1000")
		return
	}

	params := simulation.DefaultOrderParams()
	if req.MeanItems != nil {
		params.MeanItems = *req.MeanItems
	}
	if req.StdItems != nil {
		params.StdItems = *req.StdItems
	}
	if params.MeanItems <= 0 || params.StdItems < 0 {
		writeError(w, r, http.StatusBadRequest, "mean_items must be positive and std_items non-negative")
		return
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	// The depot is registered like a shelf but is never picked from.
	shelfIDs := make([]string, 0, len(h.Layout.Shelves()))
	for _, id := range h.Layout.ShelfIDs() {
		if id != h.Layout.DepotID() {
			shelfIDs = append(shelfIDs, id)
		}
	}

	gen := simulation.NewGenerator(shelfIDs, seed)
	orders := gen.GenerateBatch(count, params)
	stats := simulation.Statistics(orders)

	res := dto.ListOrdersResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
		Stats:  statsResponse(stats),
	}
	for _, o := range orders {
		res.Orders = append(res.Orders, dto.OrderResponse{
			OrderID:   o.OrderID,
			PickList:  o.PickList,
			Timestamp: o.Timestamp,
			NumItems:  o.NumItems,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func statsResponse(s simulation.Stats) dto.OrderStatsResponse {
	popular := make([]dto.ShelfCountResponse, 0, len(s.MostPopularShelves))
	for _, sc := range s.MostPopularShelves {
		popular = append(popular, dto.ShelfCountResponse{ShelfID: sc.ShelfID, Count: sc.Count})
	}

	return dto.OrderStatsResponse{
		TotalOrders:        s.TotalOrders,
		AvgItemsPerOrder:   s.AvgItemsPerOrder,
		StdItemsPerOrder:   s.StdItemsPerOrder,
		MinItemsPerOrder:   s.MinItemsPerOrder,
		MaxItemsPerOrder:   s.MaxItemsPerOrder,
		TotalPicks:         s.TotalPicks,
		MostPopularShelves: popular,
	}
}
