// File: ranking.go
// Role: Topological ranking of the variant graph.
//
// The rank of a vertex is the length of the longest path from Start to it, so
// Start has rank 0 and End has the highest rank. Ranks are recomputed on every
// call; nothing is cached on the graph, which keeps them correct after merges.
package variantgraph

import (
	"context"
	"fmt"
)

// visitation states of the ranking DFS.
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // fully explored
)

// Ranking maps vertices to ranks and ranks to vertices.
type Ranking struct {
	ranks  []int        // indexed by VertexID
	byRank [][]VertexID // ascending vertex ID within a rank
}

// RankOf returns the rank of id, or -1 when id is unknown to the ranking.
func (r *Ranking) RankOf(id VertexID) int {
	if id < 0 || int(id) >= len(r.ranks) {
		return -1
	}

	return r.ranks[id]
}

// ByRank returns the vertices holding rank rank.
func (r *Ranking) ByRank(rank int) []VertexID {
	if rank < 0 || rank >= len(r.byRank) {
		return nil
	}

	return r.byRank[rank]
}

// Len returns the number of distinct ranks, sentinels included.
func (r *Ranking) Len() int { return len(r.byRank) }

// EndRank returns the rank of the End sentinel.
func (r *Ranking) EndRank() int { return r.ranks[End] }

// topoSorter encapsulates state for one DFS-based topological sort.
type topoSorter struct {
	ctx   context.Context
	g     *Graph
	state []int
	order []VertexID // post-order
}

// Rank computes the rank of every vertex.
//
// Implementation:
//   - Stage 1: DFS from Start, then from any vertex not reachable from it, recording post-order.
//   - Stage 2: Reverse the post-order to obtain a topological order.
//   - Stage 3: Relax ranks along the order: rank(v) = max(rank(p)+1) over predecessors p.
//
// Errors:
//   - ErrCycleDetected: a back edge was found; merges never produce one on valid input.
//   - ctx.Err(): the context was cancelled during the traversal.
//
// Complexity:
//   - Time O(V + E), Space O(V).
func (g *Graph) Rank(ctx context.Context) (*Ranking, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.vertices)
	sorter := &topoSorter{
		ctx:   ctx,
		g:     g,
		state: make([]int, n),
		order: make([]VertexID, 0, n),
	}
	if err := sorter.visit(Start); err != nil {
		return nil, err
	}
	for id := VertexID(0); int(id) < n; id++ {
		if sorter.state[id] == white {
			if err := sorter.visit(id); err != nil {
				return nil, err
			}
		}
	}

	ranks := make([]int, n)
	maxRank := 0
	for i := len(sorter.order) - 1; i >= 0; i-- {
		v := sorter.order[i]
		for _, e := range g.in[v] {
			if r := ranks[e.From] + 1; r > ranks[v] {
				ranks[v] = r
			}
		}
		if v != End && ranks[v] > maxRank {
			maxRank = ranks[v]
		}
	}
	// End closes the graph, also when it is not connected yet.
	if ranks[End] <= maxRank {
		ranks[End] = maxRank + 1
	}
	maxRank = ranks[End]

	byRank := make([][]VertexID, maxRank+1)
	for id := VertexID(0); int(id) < n; id++ {
		byRank[ranks[id]] = append(byRank[ranks[id]], id)
	}

	return &Ranking{ranks: ranks, byRank: byRank}, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id VertexID) error {
	select {
	case <-t.ctx.Done():
		return t.ctx.Err()
	default:
	}
	switch t.state[id] {
	case gray:
		return fmt.Errorf("%w: back edge into vertex %d", ErrCycleDetected, id)
	case black:
		return nil
	}
	t.state[id] = gray

	for _, e := range t.g.out[id] {
		if err := t.visit(e.To); err != nil {
			return err
		}
	}

	t.state[id] = black
	t.order = append(t.order, id)

	return nil
}
