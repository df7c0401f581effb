package domain

import (
	"fmt"
	"sort"
)

// Layout is the process-wide immutable warehouse configuration: the
// walkability grid, the shelf registry and the picker's depot. It is
// constructed once at startup and shared by concurrent requests.
type Layout struct {
	grid    *Grid
	shelves map[string]Position
	depotID string
}

// NewLayout validates that the depot is registered and that every
// registered shelf sits on a walkable in-bounds cell.
func NewLayout(grid *Grid, shelves map[string]Position, depotID string) (*Layout, error) {
	if grid == nil {
		return nil, ErrEmptyGrid
	}

	copied := make(map[string]Position, len(shelves))
	for id, pos := range shelves {
		if !grid.InBounds(pos) {
			return nil, fmt.Errorf("shelf %q at [%d,%d]: %w", id, pos.Row, pos.Col, ErrShelfOutOfBounds)
		}
		if !grid.Walkable(pos) {
			return nil, fmt.Errorf("shelf %q at [%d,%d]: %w", id, pos.Row, pos.Col, ErrShelfBlocked)
		}
		copied[id] = pos
	}

	if _, ok := copied[depotID]; !ok {
		return nil, fmt.Errorf("depot %q: %w", depotID, ErrUnknownDepot)
	}

	return &Layout{grid: grid, shelves: copied, depotID: depotID}, nil
}

func (l *Layout) Grid() *Grid     { return l.grid }
func (l *Layout) DepotID() string { return l.depotID }

// Depot returns the picker's fixed starting position.
func (l *Layout) Depot() Position { return l.shelves[l.depotID] }

// Shelf looks up a registered shelf position by identifier.
func (l *Layout) Shelf(id string) (Position, bool) {
	pos, ok := l.shelves[id]
	return pos, ok
}

// ShelfIDs returns all registered identifiers in lexicographic order.
func (l *Layout) ShelfIDs() []string {
	ids := make([]string, 0, len(l.shelves))
	for id := range l.shelves {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Shelves returns a copy of the registry for serialization.
func (l *Layout) Shelves() map[string]Position {
	out := make(map[string]Position, len(l.shelves))
	for id, pos := range l.shelves {
		out[id] = pos
	}
	return out
}

// Stop is a resolved pick-list entry: a shelf identifier bound to its
// grid position. The depot is always stop 0 of a resolved list.
type Stop struct {
	ID  string
	Pos Position
}

// ResolvePickList maps pick-list identifiers to stops with the depot
// prepended. Unknown identifiers are dropped silently; duplicates are
// kept (a shelf may legitimately be picked from more than once per
// order). If nothing besides the depot resolves, the request is
// rejected with ErrNoValidLocations.
func (l *Layout) ResolvePickList(pickList []string) ([]Stop, error) {
	stops := make([]Stop, 0, len(pickList)+1)
	stops = append(stops, Stop{ID: l.depotID, Pos: l.Depot()})

	for _, id := range pickList {
		pos, ok := l.shelves[id]
		if !ok {
			continue
		}
		stops = append(stops, Stop{ID: id, Pos: pos})
	}

	if len(stops) == 1 {
		return nil, ErrNoValidLocations
	}
	return stops, nil
}
