// File: merge.go
// Role: Fold one witness into the graph.
package variantgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/collate/token"
)

// ErrVertexReused indicates two tokens of one witness were mapped onto the same vertex.
var ErrVertexReused = errors.New("variantgraph: vertex mapped by more than one token of a witness")

// Merge folds witness w into g.
//
// Every token present in aligned joins the given existing vertex; every other
// token gets a new vertex. The tokens are then chained Start → t0 → … → tn → End
// with edges labelled by w.ID. An empty (or nil) aligned map adds w as an
// independent path, which is how the first witness of a run enters the graph.
//
// Implementation:
//   - Stage 1: Validate the whole mapping before touching the graph.
//   - Stage 2: Under the write lock, attach or create vertices and connect them.
//
// Returns the vertex assigned to every token of w, in token order.
//
// Errors:
//   - ErrEmptyWitness, ErrWitnessMerged: invalid witness.
//   - ErrVertexNotFound, ErrSentinelVertex, ErrVertexReused: invalid mapping.
//
// The graph is left untouched whenever an error is returned.
//
// Complexity:
//   - Time O(n + Σ out-degree on the path), Space O(n).
func (g *Graph) Merge(w *token.Witness, aligned map[*token.Token]VertexID) ([]VertexID, error) {
	if w == nil || len(w.Tokens) == 0 {
		return nil, ErrEmptyWitness
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Stage 1: validation.
	if _, dup := g.merged[w.ID]; dup {
		return nil, fmt.Errorf("%w: %s", ErrWitnessMerged, w.ID)
	}
	used := make(map[VertexID]*token.Token, len(aligned))
	for _, t := range w.Tokens {
		v, ok := aligned[t]
		if !ok {
			continue
		}
		if !g.hasVertex(v) {
			return nil, fmt.Errorf("%w: %d (token %s)", ErrVertexNotFound, v, t)
		}
		if v == Start || v == End {
			return nil, fmt.Errorf("%w: token %s", ErrSentinelVertex, t)
		}
		if other, seen := used[v]; seen {
			return nil, fmt.Errorf("%w: %s and %s onto %d", ErrVertexReused, other, t, v)
		}
		used[v] = t
	}

	// Stage 2: mutation; connect cannot fail past validation.
	assigned := make([]VertexID, len(w.Tokens))
	prev := Start
	for i, t := range w.Tokens {
		v, ok := aligned[t]
		if ok {
			g.vertices[v].Tokens = append(g.vertices[v].Tokens, t)
		} else {
			v = g.newVertex(t).ID
		}
		if err := g.connect(prev, v, w.ID); err != nil {
			return nil, err
		}
		assigned[i] = v
		prev = v
	}
	if err := g.connect(prev, End, w.ID); err != nil {
		return nil, err
	}

	g.witnesses = append(g.witnesses, w)
	g.merged[w.ID] = struct{}{}

	return assigned, nil
}
