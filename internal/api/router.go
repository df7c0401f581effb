package api

import (
	"net/http"

	"pick-route-service/internal/api/handlers"
	"pick-route-service/internal/domain"
	"pick-route-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay
// unaware of concrete adapters; the distance cache may be nil).
func NewRouter(layout *domain.Layout, cache ports.DistanceCache) http.Handler {
	mux := http.NewServeMux()

	layoutHandler := &handlers.LayoutHandler{Layout: layout}
	routeHandler := &handlers.RouteHandler{Layout: layout, Cache: cache}
	pathHandler := &handlers.PathHandler{Layout: layout}
	orderHandler := &handlers.OrderHandler{Layout: layout}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/layout", layoutHandler.Get)
	mux.HandleFunc("/routes", routeHandler.Create)
	mux.HandleFunc("/paths", pathHandler.Find)
	mux.HandleFunc("/orders", orderHandler.Generate)

	return loggingMiddleware(mux)
}
