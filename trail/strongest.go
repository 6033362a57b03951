package trail

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/Lufajardo/antgrid/grid"
)

// Strongest computes the least-effort path from one position to another
// over the named scent layer. Entering a cell with value v costs
// 1/(1+v), so the extraction gravitates toward the strongest trail; the
// origin cell itself is free. Diagonal and orthogonal steps cost alike.
//
// Preconditions and validation (in order):
//  1. s must be non-nil (ErrNilSurface).
//  2. MaxCost must be positive (ErrBadMaxCost).
//  3. layer (and the obstacle layer, if set) must be registered
//     (grid.ErrUnknownLayer).
//  4. from and to must lie within the extent (grid.ErrOutOfBounds).
//
// Returns the ordered positions from `from` to `to` inclusive and the
// total cost, or ErrNoPath when the destination cannot be reached.
//
// Complexity: O(C·d·log C) time, O(C) memory, for C = rows×cols cells.
func Strongest(s *grid.Surface, layer string, from, to grid.Position, opts ...Option) ([]grid.Position, float64, error) {
	// 1. Validate surface
	if s == nil {
		return nil, 0, ErrNilSurface
	}

	// 2. Apply options over documented defaults
	cfg := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&cfg)
	}
	if cfg.maxCost <= 0 {
		return nil, 0, fmt.Errorf("%w: %v", ErrBadMaxCost, cfg.maxCost)
	}

	// 3. Resolve the scent layer and the optional obstacle layer
	scent, err := s.Layer(layer)
	if err != nil {
		return nil, 0, err
	}
	var walls [][]float64
	if cfg.obstacle != "" {
		if walls, err = s.Layer(cfg.obstacle); err != nil {
			return nil, 0, err
		}
	}

	// 4. Validate endpoints
	if !s.InBounds(from) {
		return nil, 0, fmt.Errorf("%w: from %s", grid.ErrOutOfBounds, from)
	}
	if !s.InBounds(to) {
		return nil, 0, fmt.Errorf("%w: to %s", grid.ErrOutOfBounds, to)
	}
	if blocked(walls, from) || blocked(walls, to) {
		return nil, 0, fmt.Errorf("%w: endpoint on an obstacle", ErrNoPath)
	}

	// 5. Prepare row-major state: dist, prev, visited, and the heap
	rows, cols := s.Rows(), s.Cols()
	n := rows * cols
	dist := make([]float64, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	visited := make([]bool, n)

	src, dst := from.Row*cols+from.Col, to.Row*cols+to.Col
	dist[src] = 0

	pq := make(cellPQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &cellItem{idx: src, dist: 0})

	// 6. Main loop: settle the cheapest unvisited cell, relax neighbors
	offsets := cfg.conn.Offsets()
	var (
		item        *cellItem
		p, q        grid.Position
		v, step, nd float64
		u, w        int
	)
	for pq.Len() > 0 {
		item = heap.Pop(&pq).(*cellItem)
		u = item.idx
		if visited[u] {
			continue // stale entry (lazy decrease-key)
		}
		if item.dist > cfg.maxCost {
			break // everything left is beyond the budget
		}
		visited[u] = true
		if u == dst {
			break // destination settled; no cheaper path exists
		}

		p = grid.Position{Row: u / cols, Col: u % cols}
		for _, d := range offsets {
			q = grid.Position{Row: p.Row + d[0], Col: p.Col + d[1]}
			if !s.InBounds(q) || blocked(walls, q) {
				continue
			}
			w = q.Row*cols + q.Col

			// Entering cost shrinks with scent; never negative.
			v = scent[q.Row][q.Col]
			if v < 0 {
				v = 0
			}
			step = 1 / (1 + v)

			nd = dist[u] + step
			if nd > cfg.maxCost {
				continue // over the corridor budget
			}
			if nd < dist[w] {
				dist[w] = nd
				prev[w] = u
				heap.Push(&pq, &cellItem{idx: w, dist: nd})
			}
		}
	}

	// 7. Reconstruct the corridor, origin first
	if math.IsInf(dist[dst], 1) {
		return nil, 0, fmt.Errorf("%w: %s → %s", ErrNoPath, from, to)
	}
	path := make([]grid.Position, 0, 16)
	for i := dst; i != -1; i = prev[i] {
		path = append(path, grid.Position{Row: i / cols, Col: i % cols})
	}
	reverse(path)

	return path, dist[dst], nil
}

// blocked reports whether p sits on an obstacle cell; a nil layer means
// no obstacles.
func blocked(walls [][]float64, p grid.Position) bool {
	return walls != nil && walls[p.Row][p.Col] > 0
}

// reverse flips the reconstructed path in place (destination → origin
// becomes origin → destination).
func reverse(ps []grid.Position) {
	for i, j := 0, len(ps)-1; i < j; i, j = i+1, j-1 {
		ps[i], ps[j] = ps[j], ps[i]
	}
}

// cellItem is a heap entry: a row-major cell index and its tentative
// cost from the origin.
type cellItem struct {
	idx  int
	dist float64
}

// cellPQ is a min-heap of *cellItem under the lazy-decrease-key pattern:
// improved costs push fresh entries, stale ones are skipped when popped.
type cellPQ []*cellItem

func (pq cellPQ) Len() int            { return len(pq) }
func (pq cellPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq cellPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
