// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// outgoing edges of a core.Store.
//
// Notes on implementation choices:
//
//   - Costs are computed once per edge up front to fail fast on negatives.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Ties are broken by label so results are reproducible.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/seqpattern/core"
)

// Dijkstra computes the cheapest cost from Options.Source to every live node.
//
// Returns:
//
//   - dist: label → minimum cost (+Inf if unreachable).
//   - prev: label → predecessor on the cheapest path, only with WithReturnPath.
//   - err:  ErrEmptySource, ErrNilStore, ErrVertexNotFound or ErrNegativeWeight.
//
// Complexity: O((V + E) log V).
func Dijkstra(s *core.Store, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if s == nil {
		return nil, nil, ErrNilStore
	}
	if !s.Has(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	cost := make(map[string]map[string]float64, s.NodeCount())
	for _, e := range s.Edges() {
		c := cfg.Cost(e.Weight)
		if c < 0 || math.IsNaN(c) {
			return nil, nil, fmt.Errorf("%w: edge %s→%s cost=%g", ErrNegativeWeight, e.From, e.To, c)
		}
		if cost[e.From] == nil {
			cost[e.From] = make(map[string]float64)
		}
		cost[e.From][e.To] = c
	}

	r := &runner{
		s:       s,
		options: cfg,
		cost:    cost,
		dist:    make(map[string]float64, s.NodeCount()),
		visited: make(map[string]bool, s.NodeCount()),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, s.NodeCount())
	}
	r.init()
	r.process()

	return r.dist, r.prev, nil
}

// Path rebuilds source → dest from a predecessor map.
func Path(prev map[string]string, source, dest string) ([]string, error) {
	path := []string{dest}
	for cur := dest; cur != source; {
		p, ok := prev[cur]
		if !ok || p == "" {
			return nil, fmt.Errorf("%w: %q → %q", ErrNoPath, source, dest)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	s       *core.Store
	options Options
	cost    map[string]map[string]float64
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// init sets every distance to +Inf and pushes Source at 0.
func (r *runner) init() {
	for _, v := range r.s.Labels() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest unfinished node and relaxes its edges until the
// heap is empty or the frontier passes MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax improves the distance of every successor of u reachable through u.
func (r *runner) relax(u string) {
	for _, v := range r.s.Neighbors(u) {
		nd := r.dist[u] + r.cost[u][v]
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}
}

// nodeItem is a heap entry: a label and its tentative distance.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then label.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
