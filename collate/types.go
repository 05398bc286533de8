package collate

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/katalvlaran/collate/matchcube"
	"github.com/katalvlaran/collate/token"
	"github.com/katalvlaran/collate/variantgraph"
)

// Sentinel errors for collation runs.
var (
	// ErrUnknownAlgorithm indicates an alignment strategy name nobody implements.
	ErrUnknownAlgorithm = errors.New("collate: unknown algorithm")

	// ErrInvariant wraps a failure that valid input can never produce: a cycle
	// in the graph, a broken backtrace, an unreachable goal, a rejected merge.
	ErrInvariant = errors.New("collate: invariant violated")
)

// Algorithm names an alignment strategy.
type Algorithm string

const (
	// AlgorithmEditGraph fills a dynamic-programming score table.
	AlgorithmEditGraph Algorithm = "editgraph"

	// AlgorithmAStar searches the decision graph with A*.
	AlgorithmAStar Algorithm = "astar"
)

// Algorithms lists the built-in strategies.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmEditGraph, AlgorithmAStar}
}

// Aligner turns the match cube of one witness into accepted correspondences,
// in witness order. An empty result is valid.
type Aligner interface {
	Align(ctx context.Context, cube *matchcube.Cube) ([]matchcube.Match, error)
}

// AlignerFunc adapts a plain function to Aligner.
type AlignerFunc func(ctx context.Context, cube *matchcube.Cube) ([]matchcube.Match, error)

// Align calls f.
func (f AlignerFunc) Align(ctx context.Context, cube *matchcube.Cube) ([]matchcube.Match, error) {
	return f(ctx, cube)
}

// WitnessAlignment records what one witness contributed to a run.
type WitnessAlignment struct {
	Witness  *token.Witness
	Matches  []matchcube.Match      // accepted correspondences; nil for the first witness
	Vertices []variantgraph.VertexID // vertex of every token, in token order
}

// Result is the outcome of one collation run.
type Result struct {
	RunID      uuid.UUID
	Algorithm  Algorithm
	Graph      *variantgraph.Graph
	Alignments []WitnessAlignment
}

// Table lays the graph out as the alignment table.
func (r *Result) Table(ctx context.Context) (*variantgraph.Table, error) {
	return r.Graph.Table(ctx)
}
