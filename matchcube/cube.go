// Package matchcube relates the vertices of the variant graph to the tokens
// of the next witness, using the repeats found by the token index.
//
// A Cube is keyed by (witness offset, rank offset): witness offset y is the
// 0-based position of a token in the incoming witness, rank offset x is the
// rank of a vertex minus one (Start has rank 0 and never matches).
//
// Two deduplication rules make the cube one-to-one:
//
//   - horizontal: a witness token matches at most one vertex, the one with
//     the lowest rank among its candidates from every interval covering it
//     (lowest vertex ID on equal rank);
//   - vertical: a vertex matches at most one witness token, the first one in
//     witness order; later tokens proposing the same vertex are dropped.
package matchcube

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/collate/token"
	"github.com/katalvlaran/collate/tokenindex"
	"github.com/katalvlaran/collate/variantgraph"
)

var (
	// ErrNilInput indicates a nil index, ranking or witness.
	ErrNilInput = errors.New("matchcube: nil input")

	// ErrUnknownWitness indicates the witness is not part of the token index.
	ErrUnknownWitness = errors.New("matchcube: witness not in token index")

	// ErrVertexArrayLength indicates the vertex array does not parallel the token array.
	ErrVertexArrayLength = errors.New("matchcube: vertex array length differs from token array")

	// ErrRankOutOfRange indicates a graph-side vertex whose rank lies outside
	// the sentinels; the ranking and the vertex array disagree.
	ErrRankOutOfRange = errors.New("matchcube: vertex rank outside graph")

	// ErrCoordinateOutOfRange is the panic value (wrapped) of lookups outside
	// the cube. It signals a bug in the caller, never bad input.
	ErrCoordinateOutOfRange = errors.New("matchcube: coordinate out of range")
)

// Match pairs one graph vertex with one witness token.
type Match struct {
	Token  *token.Token
	Vertex variantgraph.VertexID

	// WitnessOffset is the position of Token in its witness.
	WitnessOffset int

	// RankOffset is the rank of Vertex minus one.
	RankOffset int
}

// Cube is the immutable match lookup for one witness-to-graph alignment.
type Cube struct {
	witness  *token.Witness
	graphLen int
	byToken  []int // witness offset → index into matches, -1 if none
	byRank   []int // rank offset → index into matches, -1 if none
	matches  []Match
}

// Build computes the cube for witness w against the graph state described by
// vertexArray and ranking.
//
// vertexArray parallels idx.TokenArray(): entry p is the vertex holding token
// p, or variantgraph.NoVertex when that token is not in the graph yet. The
// positions of w itself must all be NoVertex.
//
// Algorithm Outline:
//  1. For each token y of w (in order), walk every interval covering its
//     token-array position.
//  2. Collect the graph vertices at the same phrase offset in each of them
//     and keep the lowest rank overall (horizontal).
//  3. Drop the candidate if its vertex already matched an earlier token (vertical).
//
// Nothing passed in is modified.
//
// Complexity:
//
//	Time   = O(Σ over tokens of covering occurrences)
//	Memory = O(|w| + graph ranks)
func Build(idx *tokenindex.Index, vertexArray []variantgraph.VertexID, ranking *variantgraph.Ranking, w *token.Witness) (*Cube, error) {
	if idx == nil || ranking == nil || w == nil {
		return nil, ErrNilInput
	}
	start, ok := idx.StartOf(w)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWitness, w.ID)
	}
	if len(vertexArray) != idx.Len() {
		return nil, fmt.Errorf("%w: %d != %d", ErrVertexArrayLength, len(vertexArray), idx.Len())
	}

	c := &Cube{
		witness:  w,
		graphLen: ranking.EndRank() - 1,
		byToken:  make([]int, len(w.Tokens)),
	}
	c.byRank = make([]int, c.graphLen)
	for i := range c.byToken {
		c.byToken[i] = -1
	}
	for i := range c.byRank {
		c.byRank[i] = -1
	}

	taken := make(map[variantgraph.VertexID]bool)
	for y, tok := range w.Tokens {
		v, rank, found := candidate(idx, vertexArray, ranking, start+y)
		if !found {
			continue
		}
		if rank < 1 || rank > c.graphLen {
			return nil, fmt.Errorf("%w: vertex %d rank %d", ErrRankOutOfRange, v, rank)
		}
		if taken[v] {
			continue
		}
		taken[v] = true

		c.byToken[y] = len(c.matches)
		c.byRank[rank-1] = len(c.matches)
		c.matches = append(c.matches, Match{Token: tok, Vertex: v, WitnessOffset: y, RankOffset: rank - 1})
	}

	return c, nil
}

// candidate returns the lowest-ranked graph vertex paired with token-array
// position pos by any interval covering it.
func candidate(idx *tokenindex.Index, vertexArray []variantgraph.VertexID, ranking *variantgraph.Ranking, pos int) (variantgraph.VertexID, int, bool) {
	best, bestRank := variantgraph.NoVertex, 0
	for _, occ := range idx.Covering(pos) {
		for _, p := range idx.Positions(occ.Interval, occ.Offset) {
			v := vertexArray[p]
			if v == variantgraph.NoVertex {
				continue
			}
			r := ranking.RankOf(v)
			if best == variantgraph.NoVertex || r < bestRank || (r == bestRank && v < best) {
				best, bestRank = v, r
			}
		}
	}

	return best, bestRank, best != variantgraph.NoVertex
}
