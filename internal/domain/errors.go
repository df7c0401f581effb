package domain

import "errors"

// Configuration errors are fatal at load time, before any request is
// accepted. Routing errors reject a single request.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("layout: grid must have at least one row and one column")
	// ErrNonRectangular indicates grid rows of differing lengths.
	ErrNonRectangular = errors.New("layout: all grid rows must have the same length")
	// ErrInvalidCellValue indicates a grid cell outside {0=walkable, 1=blocked}.
	ErrInvalidCellValue = errors.New("layout: grid cells must be 0 (walkable) or 1 (blocked)")
	// ErrUnknownDepot indicates the configured depot identifier is not registered.
	ErrUnknownDepot = errors.New("layout: depot identifier is not a registered shelf")
	// ErrShelfOutOfBounds indicates a registered shelf position outside the grid.
	ErrShelfOutOfBounds = errors.New("layout: shelf position is out of bounds")
	// ErrShelfBlocked indicates a registered shelf position on a blocked cell.
	ErrShelfBlocked = errors.New("layout: shelf position is on a blocked cell")

	// ErrNoValidLocations indicates a pick list that resolves to zero
	// registered shelves after unknown identifiers are dropped.
	ErrNoValidLocations = errors.New("route: pick list resolves to no valid locations")
	// ErrNoTourFound indicates the solver produced no feasible visiting order.
	ErrNoTourFound = errors.New("route: no feasible tour")
)
