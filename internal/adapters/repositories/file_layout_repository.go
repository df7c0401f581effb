package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"pick-route-service/internal/domain"
)

// JSON-file-backed implementation of the LayoutRepository port, used
// for local runs without a database.
type FileLayoutRepository struct {
	Path string
}

func NewFileLayoutRepository(path string) *FileLayoutRepository {
	return &FileLayoutRepository{Path: path}
}

// Load and validate the layout from the seed file.
func (f *FileLayoutRepository) LoadLayout(ctx context.Context) (*domain.Layout, error) {
	bytes, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("load layout: read %q: %w", f.Path, err)
	}

	var seed LayoutSeed
	if err := json.Unmarshal(bytes, &seed); err != nil {
		return nil, fmt.Errorf("load layout: parse %q: %w", f.Path, err)
	}

	layout, err := buildLayout(seed)
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}

	return layout, nil
}
