package repositories

import (
	"fmt"
	"strings"

	"pick-route-service/internal/domain"
)

// LayoutSeed is the JSON document describing one warehouse layout:
// the walkability grid, the shelf registry and the depot identifier.
// The same shape is used by the file repository and the dbtool seeder.
type LayoutSeed struct {
	Name    string            `json:"name"`
	Depot   string            `json:"depot"`
	Grid    [][]int           `json:"grid"`
	Shelves map[string][2]int `json:"shelves"`
}

// buildLayout validates a seed through the domain constructors, so
// malformed configuration fails at load time with a precise cause.
func buildLayout(seed LayoutSeed) (*domain.Layout, error) {
	depot := strings.TrimSpace(seed.Depot)
	if depot == "" {
		return nil, fmt.Errorf("layout %q: %w", seed.Name, domain.ErrUnknownDepot)
	}

	grid, err := domain.NewGrid(seed.Grid)
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", seed.Name, err)
	}

	shelves := make(map[string]domain.Position, len(seed.Shelves))
	for id, rc := range seed.Shelves {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("layout %q: shelf with empty identifier", seed.Name)
		}
		shelves[id] = domain.Position{Row: rc[0], Col: rc[1]}
	}

	layout, err := domain.NewLayout(grid, shelves, depot)
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", seed.Name, err)
	}

	return layout, nil
}
