package domain

import "fmt"

// Grid cell coordinates (row, column). Position is a value type:
// comparisons and map keys work by value.
type Position struct {
	Row int
	Col int
}

// Key returns the "row,col" form used for cache keys and the
// visualization direction map.
func (p Position) Key() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Direction tags recorded by the visualization overlay for each
// traversed cell.
const (
	DirNorth = "north"
	DirSouth = "south"
	DirWest  = "west"
	DirEast  = "east"
)

// DirectionTo returns the direction tag for a single orthogonal step
// from p to q, or "" when q is not an orthogonal neighbor of p.
func (p Position) DirectionTo(q Position) string {
	dr := q.Row - p.Row
	dc := q.Col - p.Col

	switch {
	case dr == -1 && dc == 0:
		return DirNorth
	case dr == 1 && dc == 0:
		return DirSouth
	case dr == 0 && dc == -1:
		return DirWest
	case dr == 0 && dc == 1:
		return DirEast
	}
	return ""
}
