// Package variantgraph defines the Graph, Vertex and Edge types that record
// where witnesses agree and diverge, together with the ranking and merge
// services consumed by the aligners.
//
// This file declares VertexID, Vertex, Edge, Graph, sentinel errors and the
// New constructor.
//
// Errors:
//
//	ErrVertexNotFound    - requested vertex does not exist.
//	ErrSentinelVertex    - a token mapping targets the start or end sentinel.
//	ErrLoopNotAllowed    - an edge from a vertex to itself.
//	ErrEmptyWitness      - a witness with no tokens was passed to Merge.
//	ErrWitnessMerged     - the witness ID is already part of the graph.
//	ErrCycleDetected     - ranking found a cycle (construction bug).
package variantgraph

import (
	"errors"
	"sort"
	"sync"

	"github.com/katalvlaran/collate/token"
)

// Sentinel errors for variant graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("variantgraph: vertex not found")

	// ErrSentinelVertex indicates a token was mapped onto the start or end vertex.
	ErrSentinelVertex = errors.New("variantgraph: tokens cannot be attached to a sentinel vertex")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("variantgraph: self-loop not allowed")

	// ErrEmptyWitness indicates a witness without tokens.
	ErrEmptyWitness = errors.New("variantgraph: witness has no tokens")

	// ErrWitnessMerged indicates the same witness ID was merged twice.
	ErrWitnessMerged = errors.New("variantgraph: witness already merged")

	// ErrCycleDetected indicates that ranking encountered a cycle.
	ErrCycleDetected = errors.New("variantgraph: cycle detected")
)

// VertexID addresses a vertex inside the graph arena. IDs are dense, stable
// and never reused.
type VertexID int

const (
	// NoVertex marks "no vertex" in vertex arrays.
	NoVertex VertexID = -1

	// Start is the synthetic source sentinel.
	Start VertexID = 0

	// End is the synthetic sink sentinel.
	End VertexID = 1
)

// Vertex represents one or more tokens, from different witnesses, judged
// equivalent. Sentinels hold no tokens.
type Vertex struct {
	// ID is the arena index of this vertex.
	ID VertexID

	// Tokens in merge order; at most one token per witness.
	Tokens []*token.Token
}

// Edge is a directed connection between two vertices, labelled with the IDs
// of all witnesses whose token path traverses it.
type Edge struct {
	From VertexID
	To   VertexID

	witnesses map[string]struct{}
}

// Witnesses returns the sorted witness IDs labelling e.
func (e *Edge) Witnesses() []string {
	out := make([]string, 0, len(e.witnesses))
	for id := range e.witnesses {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// HasWitness reports whether witness id traverses e.
func (e *Edge) HasWitness(id string) bool {
	_, ok := e.witnesses[id]
	return ok
}

// Graph is the variant graph: an arena of vertices addressed by VertexID with
// adjacency lists of edges. Ranks are not stored; use Rank to compute them.
//
// mu guards every field; readers may run concurrently, merges are exclusive.
type Graph struct {
	mu sync.RWMutex

	vertices []*Vertex
	out      [][]*Edge // out[v] in insertion order
	in       [][]*Edge // in[v] in insertion order

	witnesses []*token.Witness // merge order
	merged    map[string]struct{}
}

// New creates a graph holding only the Start and End sentinels.
// Complexity: O(1)
func New() *Graph {
	g := &Graph{merged: make(map[string]struct{})}
	g.newVertex() // Start
	g.newVertex() // End

	return g
}

// newVertex appends an empty vertex; callers hold mu or own g exclusively.
func (g *Graph) newVertex(tokens ...*token.Token) *Vertex {
	v := &Vertex{ID: VertexID(len(g.vertices)), Tokens: append([]*token.Token(nil), tokens...)}
	g.vertices = append(g.vertices, v)
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)

	return v
}
