// File: graph.go
// Role: Vertex and edge lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices by ascending ID.
//   - Successors()/Predecessors() follow edge insertion order.
//
// Concurrency:
//   - All methods take g.mu; mutators take it exclusively.
package variantgraph

import (
	"fmt"

	"github.com/katalvlaran/collate/token"
)

// AddVertex creates a new vertex holding tokens and returns its ID.
//
// Complexity:
//   - Time O(1) amortized, Space O(len(tokens)).
func (g *Graph) AddVertex(tokens ...*token.Token) VertexID {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.newVertex(tokens...).ID
}

// HasVertex reports whether id addresses a vertex of g.
func (g *Graph) HasVertex(id VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertex(id)
}

func (g *Graph) hasVertex(id VertexID) bool {
	return id >= 0 && int(id) < len(g.vertices)
}

// Vertex returns the vertex with the given id.
//
// Errors:
//   - ErrVertexNotFound: if id is out of range.
func (g *Graph) Vertex(id VertexID) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(id) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return g.vertices[id], nil
}

// Vertices returns every vertex, sentinels included, by ascending ID.
// The slice is a copy; the vertices are shared.
func (g *Graph) Vertices() []*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Order returns the number of vertices, sentinels included.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// IsEmpty reports whether no witness has been merged yet.
func (g *Graph) IsEmpty() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.witnesses) == 0
}

// Witnesses returns the merged witnesses in merge order.
func (g *Graph) Witnesses() []*token.Witness {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*token.Witness, len(g.witnesses))
	copy(out, g.witnesses)

	return out
}

// Connect adds witnessID to the label of edge from→to, creating the edge if
// it does not exist yet. Parallel edges are never created.
//
// Errors:
//   - ErrVertexNotFound: either endpoint is missing.
//   - ErrLoopNotAllowed: from == to.
func (g *Graph) Connect(from, to VertexID, witnessID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.connect(from, to, witnessID)
}

func (g *Graph) connect(from, to VertexID, witnessID string) error {
	if !g.hasVertex(from) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, from)
	}
	if !g.hasVertex(to) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, to)
	}
	if from == to {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}

	if e := g.edge(from, to); e != nil {
		e.witnesses[witnessID] = struct{}{}
		return nil
	}
	e := &Edge{From: from, To: to, witnesses: map[string]struct{}{witnessID: {}}}
	g.out[from] = append(g.out[from], e)
	g.in[to] = append(g.in[to], e)

	return nil
}

// Edge returns the edge from→to, or nil when absent.
func (g *Graph) Edge(from, to VertexID) *Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(from) {
		return nil
	}

	return g.edge(from, to)
}

func (g *Graph) edge(from, to VertexID) *Edge {
	for _, e := range g.out[from] {
		if e.To == to {
			return e
		}
	}

	return nil
}

// Edges returns all edges grouped by source vertex ID.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []*Edge
	for _, es := range g.out {
		out = append(out, es...)
	}

	return out
}

// Successors returns the targets of the outgoing edges of id.
func (g *Graph) Successors(id VertexID) ([]VertexID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(id) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	out := make([]VertexID, 0, len(g.out[id]))
	for _, e := range g.out[id] {
		out = append(out, e.To)
	}

	return out, nil
}

// Predecessors returns the sources of the incoming edges of id.
func (g *Graph) Predecessors(id VertexID) ([]VertexID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(id) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	out := make([]VertexID, 0, len(g.in[id]))
	for _, e := range g.in[id] {
		out = append(out, e.From)
	}

	return out, nil
}

// Path returns the vertices visited by witnessID from Start to End, both
// sentinels excluded. It returns nil for an unknown witness.
func (g *Graph) Path(witnessID string) []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.merged[witnessID]; !ok {
		return nil
	}

	var path []VertexID
	cur := Start
	for steps := 0; steps < len(g.vertices); steps++ {
		next := NoVertex
		for _, e := range g.out[cur] {
			if e.HasWitness(witnessID) {
				next = e.To
				break
			}
		}
		if next == NoVertex || next == End {
			break
		}
		path = append(path, next)
		cur = next
	}

	return path
}
