package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"pick-route-service/internal/domain"
)

// Postgres-backed implementation of the LayoutRepository port. The
// grid is stored as a JSONB document per layout; shelves are stored
// relationally so individual positions can be inspected and updated.
type PostgresLayoutRepository struct {
	DB   *sql.DB
	Name string
}

func NewPostgresLayoutRepository(db *sql.DB, name string) *PostgresLayoutRepository {
	return &PostgresLayoutRepository{DB: db, Name: name}
}

// Load and validate the named layout from the database.
func (p *PostgresLayoutRepository) LoadLayout(ctx context.Context) (*domain.Layout, error) {
	if p.DB == nil {
		return nil, errors.New("postgres layout repository: DB is nil")
	}

	layoutQuery := `
	SELECT grid, depot_id
	FROM layouts
	WHERE name = $1;
	`

	var gridJSON []byte
	var depotID string
	if err := p.DB.QueryRowContext(ctx, layoutQuery, p.Name).Scan(&gridJSON, &depotID); err != nil {
		return nil, fmt.Errorf("load layout: query layout %q: %w", p.Name, err)
	}

	var grid [][]int
	if err := json.Unmarshal(gridJSON, &grid); err != nil {
		return nil, fmt.Errorf("load layout: parse grid for %q: %w", p.Name, err)
	}

	shelvesQuery := `
	SELECT shelf_id, shelf_row, shelf_col
	FROM shelves
	WHERE layout_name = $1
	ORDER BY shelf_id;
	`

	rows, err := p.DB.QueryContext(ctx, shelvesQuery, p.Name)
	if err != nil {
		return nil, fmt.Errorf("load layout: query shelves for %q: %w", p.Name, err)
	}
	defer rows.Close()

	shelves := make(map[string][2]int, 64)
	for rows.Next() {
		var id string
		var row, col int
		if err := rows.Scan(&id, &row, &col); err != nil {
			return nil, fmt.Errorf("load layout: scan shelf row: %w", err)
		}
		shelves[id] = [2]int{row, col}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load layout: shelf row iteration: %w", err)
	}

	layout, err := buildLayout(LayoutSeed{
		Name:    p.Name,
		Depot:   depotID,
		Grid:    grid,
		Shelves: shelves,
	})
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}

	return layout, nil
}
