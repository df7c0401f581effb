package domain

// Grid cell states on the wire and in seed files.
const (
	CellWalkable = 0
	CellBlocked  = 1
)

// Orthogonal moves in scan order: north, south, west, east.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is the immutable walkability map of the warehouse floor.
// It is built once at configuration load and shared by every request
// without locking; no method mutates it.
type Grid struct {
	height int
	width  int
	cells  [][]int
}

// NewGrid validates and deep-copies a rectangular matrix of
// {0=walkable, 1=blocked} cells. Malformed input is a configuration
// error, never a per-request condition.
func NewGrid(cells [][]int) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	height := len(cells)
	width := len(cells[0])

	copied := make([][]int, height)
	for r, row := range cells {
		if len(row) != width {
			return nil, ErrNonRectangular
		}

		copied[r] = make([]int, width)
		for c, v := range row {
			if v != CellWalkable && v != CellBlocked {
				return nil, ErrInvalidCellValue
			}
			copied[r][c] = v
		}
	}

	return &Grid{height: height, width: width, cells: copied}, nil
}

func (g *Grid) Height() int { return g.height }
func (g *Grid) Width() int  { return g.width }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// Walkable reports whether p is inside the grid and not blocked.
func (g *Grid) Walkable(p Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col] == CellWalkable
}

// Neighbors returns the walkable orthogonal neighbors of p in a fixed
// scan order, keeping path search deterministic.
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Position{Row: p.Row + d[0], Col: p.Col + d[1]}
		if g.Walkable(n) {
			out = append(out, n)
		}
	}
	return out
}

// Snapshot returns a mutable copy of the cell matrix, used as the base
// layer of visualization overlays.
func (g *Grid) Snapshot() [][]int {
	out := make([][]int, g.height)
	for r := range g.cells {
		out[r] = make([]int, g.width)
		copy(out[r], g.cells[r])
	}
	return out
}
