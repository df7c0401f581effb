package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Initialize the Postgres schema for layout storage.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLayoutsQuery := `
	CREATE TABLE IF NOT EXISTS layouts (
		name TEXT PRIMARY KEY,
		grid JSONB NOT NULL,
		depot_id TEXT NOT NULL
	);
	`

	createShelvesQuery := `
	CREATE TABLE IF NOT EXISTS shelves (
		layout_name TEXT NOT NULL REFERENCES layouts(name) ON DELETE CASCADE,
		shelf_id TEXT NOT NULL,
		shelf_row INTEGER NOT NULL,
		shelf_col INTEGER NOT NULL,
		PRIMARY KEY (layout_name, shelf_id)
	);
	`

	statements := []string{
		createLayoutsQuery,
		createShelvesQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the database with a layout from a JSON seed file. The seed
// is validated through the domain constructors before any row is
// written, so a malformed file never half-seeds the schema.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed layout: read %q: %w", jsonPath, err)
	}

	var seed LayoutSeed
	if err := json.Unmarshal(bytes, &seed); err != nil {
		return fmt.Errorf("seed layout: parse json: %w", err)
	}

	if seed.Name == "" {
		return errors.New("seed layout: layout name cannot be empty")
	}

	if _, err := buildLayout(seed); err != nil {
		return fmt.Errorf("seed layout: validate: %w", err)
	}

	gridJSON, err := json.Marshal(seed.Grid)
	if err != nil {
		return fmt.Errorf("seed layout: encode grid: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed layout: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	layoutQuery := `
	INSERT INTO layouts (name, grid, depot_id)
	VALUES ($1, $2, $3)
	ON CONFLICT (name) DO UPDATE
	SET grid = EXCLUDED.grid,
		depot_id = EXCLUDED.depot_id;
	`
	if _, err := tx.Exec(layoutQuery, seed.Name, gridJSON, seed.Depot); err != nil {
		return fmt.Errorf("seed layout: upsert layout %q: %w", seed.Name, err)
	}

	shelfQuery := `
	INSERT INTO shelves (layout_name, shelf_id, shelf_row, shelf_col)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (layout_name, shelf_id) DO UPDATE
	SET shelf_row = EXCLUDED.shelf_row,
		shelf_col = EXCLUDED.shelf_col;
	`
	stmt, err := tx.Prepare(shelfQuery)
	if err != nil {
		return fmt.Errorf("seed layout: prepare shelf insert: %w", err)
	}
	defer stmt.Close()

	for id, rc := range seed.Shelves {
		if _, err := stmt.Exec(seed.Name, id, rc[0], rc[1]); err != nil {
			return fmt.Errorf("seed layout: insert shelf %q: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed layout: commit tx: %w", err)
	}

	return nil
}
