package decisiongraph

import (
	"container/heap"
	"context"
	"fmt"
)

// AStar returns the cheapest path from Origin to Goal. The origin itself is
// left out, so the path starts at the first node entered: (0,0) when the
// search moves there diagonally, a node on row or column -1 otherwise.
//
// Implementation:
//   - Stage 1: Push the origin with g=0 onto a min-heap ordered by (f, h, seq),
//     where f = g + h and seq is the insertion counter; the counter makes the
//     expansion order fully deterministic.
//   - Stage 2: Pop the best entry. Stale entries (position already closed) are
//     skipped; this is the lazy decrease-key pattern.
//   - Stage 3: On the goal, rebuild the path from the predecessor map.
//   - Stage 4: Otherwise close the node and relax its neighbors in fixed order,
//     pushing any strictly better tentative cost.
//
// The heuristic is consistent, so a closed node is final.
//
// Errors:
//   - ctx.Err() if the context is cancelled between expansions.
//   - ErrNoPath if the grid is empty or the open set runs dry.
//
// Complexity:
//
//	Time   = O(G·W·log(G·W))
//	Memory = O(G·W)
func (g *Graph) AStar(ctx context.Context) ([]Node, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if g.graphLen == 0 || g.witnessLen == 0 {
		return nil, fmt.Errorf("%w: empty grid %dx%d", ErrNoPath, g.graphLen, g.witnessLen)
	}

	r := &runner{
		g:      g,
		cost:   make(map[[2]int]int),
		prev:   make(map[[2]int]Node),
		closed: make(map[[2]int]bool),
	}
	r.init()

	return r.process(ctx)
}

// runner holds the mutable state of one search.
type runner struct {
	g      *Graph
	cost   map[[2]int]int  // best known cost from the root
	prev   map[[2]int]Node // predecessor on the best known path
	nodes  map[[2]int]Node // node as reached on the best known path
	closed map[[2]int]bool
	pq     nodePQ
	seq    int
}

func (r *runner) init() {
	origin := r.g.Origin()
	r.nodes = map[[2]int]Node{origin.Pos(): origin}
	r.cost[origin.Pos()] = 0
	heap.Init(&r.pq)
	r.push(origin, 0)
}

func (r *runner) push(n Node, cost int) {
	h := r.g.HeuristicCostEstimate(n)
	heap.Push(&r.pq, &nodeItem{pos: n.Pos(), f: cost + h, h: h, seq: r.seq})
	r.seq++
}

func (r *runner) process(ctx context.Context) ([]Node, error) {
	for r.pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.closed[item.pos] {
			continue
		}
		cur := r.nodes[item.pos]
		if r.g.IsGoal(cur) {
			return r.path(cur), nil
		}
		r.closed[item.pos] = true
		r.relax(cur)
	}

	return nil, ErrNoPath
}

func (r *runner) relax(cur Node) {
	base := r.cost[cur.Pos()]
	for _, next := range r.g.NeighborNodes(cur) {
		pos := next.Pos()
		if r.closed[pos] {
			continue
		}
		tentative := base + r.g.DistBetween(cur, next)
		if known, ok := r.cost[pos]; ok && tentative >= known {
			continue
		}
		r.cost[pos] = tentative
		r.prev[pos] = cur
		r.nodes[pos] = next
		r.push(next, tentative)
	}
}

func (r *runner) path(goal Node) []Node {
	var out []Node
	for n := goal; ; {
		p, ok := r.prev[n.Pos()]
		if !ok {
			break // origin
		}
		out = append(out, n)
		n = p
	}
	for l, rr := 0, len(out)-1; l < rr; l, rr = l+1, rr-1 {
		out[l], out[rr] = out[rr], out[l]
	}

	return out
}

// Cost returns the total DistBetween along path, counting the move from
// Origin into path[0] as AStar returns paths without the origin.
func (g *Graph) Cost(path []Node) int {
	if len(path) == 0 {
		return 0
	}
	total := g.DistBetween(g.Origin(), path[0])
	for i := 1; i < len(path); i++ {
		total += g.DistBetween(path[i-1], path[i])
	}

	return total
}

// nodeItem is a heap entry for one tentative cost of a position.
type nodeItem struct {
	pos [2]int
	f   int // tentative cost plus heuristic
	h   int // heuristic alone
	seq int // insertion order
}

// nodePQ is a min-heap of *nodeItem ordered by f, then h, then seq.
// Preferring the smaller h among equal f favours nodes closer to the goal.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by f, then h, then insertion order.
func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}

	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
