package services

import (
	"container/heap"

	"pick-route-service/internal/domain"
)

// openNode is an entry in the A* open set. seq is a monotonically
// increasing insertion counter: ties on f are broken by discovery
// order, which keeps path selection deterministic across runs.
type openNode struct {
	pos   domain.Position
	f     int
	seq   int
	index int
}

type openSet []*openNode

func (q openSet) Len() int { return len(q) }

func (q openSet) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q openSet) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *openSet) Push(x any) {
	n := x.(*openNode)
	n.index = len(*q)
	*q = append(*q, n)
}

func (q *openSet) Pop() any {
	old := *q
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*q = old[:n-1]
	return node
}

// manhattan is the A* heuristic: admissible and consistent for
// unit-cost 4-directional movement, so the search returns a true
// shortest path whenever one exists.
func manhattan(a, b domain.Position) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// FindPath returns a shortest walking path from start to goal as an
// ordered cell sequence including both endpoints, or nil when no path
// exists. Absence of a path is a normal outcome, not an error: invalid
// or blocked endpoints and exhausted searches all yield nil.
// start == goal yields the single-element path [start].
func FindPath(grid *domain.Grid, start, goal domain.Position) []domain.Position {
	if start == goal {
		if !grid.Walkable(start) {
			return nil
		}
		return []domain.Position{start}
	}

	if !grid.Walkable(start) || !grid.Walkable(goal) {
		return nil
	}

	open := &openSet{}
	heap.Init(open)

	gScore := map[domain.Position]int{start: 0}
	cameFrom := map[domain.Position]domain.Position{}

	seq := 0
	heap.Push(open, &openNode{pos: start, f: manhattan(start, goal), seq: seq})

	for open.Len() > 0 {
		current := heap.Pop(open).(*openNode).pos

		if current == goal {
			return reconstructPath(cameFrom, start, goal)
		}

		for _, neighbor := range grid.Neighbors(current) {
			tentative := gScore[current] + 1

			if best, seen := gScore[neighbor]; !seen || tentative < best {
				cameFrom[neighbor] = current
				gScore[neighbor] = tentative
				seq++
				heap.Push(open, &openNode{
					pos: neighbor,
					f:   tentative + manhattan(neighbor, goal),
					seq: seq,
				})
			}
		}
	}

	return nil
}

// reconstructPath follows the came-from relation back from goal to
// start and reverses it into start-to-goal order.
func reconstructPath(cameFrom map[domain.Position]domain.Position, start, goal domain.Position) []domain.Position {
	path := []domain.Position{goal}
	for current := goal; current != start; {
		current = cameFrom[current]
		path = append(path, current)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PathSteps converts a literal path to its step count: path length
// minus one, zero for a single-cell path, -1 for no path.
func PathSteps(path []domain.Position) int {
	if len(path) == 0 {
		return -1
	}
	return len(path) - 1
}
