package collate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/collate/decisiongraph"
	"github.com/katalvlaran/collate/editgraph"
	"github.com/katalvlaran/collate/matchcube"
	"github.com/katalvlaran/collate/token"
	"github.com/katalvlaran/collate/tokenindex"
	"github.com/katalvlaran/collate/variantgraph"
)

// algorithmCustom labels metrics and spans of an injected Aligner.
const algorithmCustom Algorithm = "custom"

// Collator runs collations with one fixed configuration. It holds no
// per-run state and is safe for concurrent use.
type Collator struct {
	opts    Options
	aligner Aligner
	label   Algorithm
}

// New validates the options and returns a Collator.
//
// Errors:
//   - ErrUnknownAlgorithm if no Aligner is injected and Algorithm is not built in.
//   - tokenindex.ErrNilComparator if the comparator is nil.
func New(opts ...Option) (*Collator, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Comparator == nil {
		return nil, tokenindex.ErrNilComparator
	}

	c := &Collator{opts: cfg, aligner: cfg.Aligner, label: cfg.Algorithm}
	if c.aligner != nil {
		c.label = algorithmCustom

		return c, nil
	}
	switch cfg.Algorithm {
	case AlgorithmEditGraph:
		c.aligner = editgraph.New(editgraph.WithLogger(cfg.Logger))
	case AlgorithmAStar:
		c.aligner = decisiongraph.New(decisiongraph.WithLogger(cfg.Logger))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, cfg.Algorithm)
	}

	return c, nil
}

// run is the mutable context of one collation: the token index built once
// over all witnesses, the graph, and the vertex of every indexed token.
type run struct {
	id          uuid.UUID
	idx         *tokenindex.Index
	graph       *variantgraph.Graph
	vertexArray []variantgraph.VertexID
}

// Collate aligns witnesses, in order, into a fresh variant graph.
//
// Implementation:
//   - Stage 1: Build the token index over all witnesses (configuration errors
//     surface here, before any alignment).
//   - Stage 2: Merge the first witness as an independent path.
//   - Stage 3: For every further witness: rank the graph, build its match
//     cube, align, merge all-or-nothing, record its vertices.
//
// The context is checked between witnesses; a cancelled run returns ctx.Err()
// and no result.
//
// Errors:
//   - tokenindex.ErrNoWitnesses, ErrEmptyWitness, ErrDuplicateWitness.
//   - ErrInvariant wrapping the underlying failure of a stage.
func (c *Collator) Collate(ctx context.Context, witnesses []*token.Witness) (res *Result, err error) {
	ctx, span := c.opts.Tracer.Start(ctx, "collate.Collate",
		trace.WithAttributes(
			attribute.String("collate.algorithm", string(c.label)),
			attribute.Int("collate.witnesses", len(witnesses)),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}()

	idx, err := tokenindex.Build(c.opts.Comparator, witnesses)
	if err != nil {
		return nil, err
	}
	r := &run{
		id:          uuid.New(),
		idx:         idx,
		graph:       variantgraph.New(),
		vertexArray: make([]variantgraph.VertexID, idx.Len()),
	}
	for i := range r.vertexArray {
		r.vertexArray[i] = variantgraph.NoVertex
	}
	span.SetAttributes(attribute.String("collate.run_id", r.id.String()))
	log := c.opts.Logger.With(slog.String("run_id", r.id.String()))

	res = &Result{RunID: r.id, Algorithm: c.label, Graph: r.graph}

	first := witnesses[0]
	ids, err := r.graph.Merge(first, nil)
	if err != nil {
		return nil, invariant(first, err)
	}
	r.record(first, ids)
	res.Alignments = append(res.Alignments, WitnessAlignment{Witness: first, Vertices: ids})

	for _, w := range witnesses[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		wa, err := c.alignWitness(ctx, r, w)
		if err != nil {
			return nil, err
		}
		log.DebugContext(ctx, "collate: witness aligned",
			slog.String("witness", w.ID),
			slog.Int("tokens", w.Len()),
			slog.Int("matches", len(wa.Matches)),
		)
		res.Alignments = append(res.Alignments, wa)
	}

	log.InfoContext(ctx, "collate: run complete",
		slog.String("algorithm", string(c.label)),
		slog.Int("witnesses", len(witnesses)),
		slog.Int("vertices", r.graph.Order()),
	)

	return res, nil
}

// alignWitness aligns w against the current graph and merges it.
func (c *Collator) alignWitness(ctx context.Context, r *run, w *token.Witness) (wa WitnessAlignment, err error) {
	ctx, span := c.opts.Tracer.Start(ctx, "collate.alignWitness",
		trace.WithAttributes(attribute.String("collate.witness", w.ID)),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	start := time.Now()

	ranking, err := r.graph.Rank(ctx)
	if err != nil {
		return wa, invariant(w, err)
	}
	cube, err := matchcube.Build(r.idx, r.vertexArray, ranking, w)
	if err != nil {
		return wa, invariant(w, err)
	}
	matches, err := c.aligner.Align(ctx, cube)
	if err != nil {
		return wa, invariant(w, err)
	}

	aligned := make(map[*token.Token]variantgraph.VertexID, len(matches))
	for _, m := range matches {
		aligned[m.Token] = m.Vertex
	}
	ids, err := r.graph.Merge(w, aligned)
	if err != nil {
		return wa, invariant(w, err)
	}
	r.record(w, ids)

	c.opts.Metrics.observe(c.label, len(matches), time.Since(start))
	span.SetAttributes(attribute.Int("collate.matches", len(matches)))

	return WitnessAlignment{Witness: w, Matches: matches, Vertices: ids}, nil
}

// record stores the vertex of every token of w in the vertex array.
func (r *run) record(w *token.Witness, ids []variantgraph.VertexID) {
	start, _ := r.idx.StartOf(w)
	copy(r.vertexArray[start:], ids)
}

// invariant classifies a stage failure: cancellation passes through, anything
// else is an invariant violation.
func invariant(w *token.Witness, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return fmt.Errorf("%w: witness %s: %w", ErrInvariant, w.ID, err)
}
