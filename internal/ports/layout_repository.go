package ports

import (
	"context"

	"pick-route-service/internal/domain"
)

// Port: a boundary for loading the immutable warehouse configuration
// from a data source at startup.
type LayoutRepository interface {
	// Load and validate the warehouse layout. Malformed configuration
	// must fail here, before any request is served.
	LoadLayout(ctx context.Context) (*domain.Layout, error)
}
