package collate

import (
	"log/slog"
	"runtime"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/collate/token"
)

// Options configures a Collator.
//
// Fields:
//   - Algorithm   - built-in strategy, used unless Aligner is set.
//   - Aligner     - custom strategy; overrides Algorithm.
//   - Comparator  - token equivalence used by the token index.
//   - Parallelism - maximum concurrent runs in CollateAll.
//   - Logger, Metrics, Tracer - observability sinks; Metrics may be nil.
type Options struct {
	Algorithm   Algorithm
	Aligner     Aligner
	Comparator  token.Comparator
	Parallelism int
	Logger      *slog.Logger
	Metrics     *Metrics
	Tracer      trace.Tracer
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the edit-graph strategy with exact token equality.
func DefaultOptions() Options {
	return Options{
		Algorithm:   AlgorithmEditGraph,
		Comparator:  token.EqualityComparator,
		Parallelism: runtime.GOMAXPROCS(0),
		Logger:      slog.Default(),
		Tracer:      tracer,
	}
}

// WithAlgorithm selects a built-in strategy.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.Algorithm = a }
}

// WithAligner installs a custom strategy.
func WithAligner(a Aligner) Option {
	return func(o *Options) { o.Aligner = a }
}

// WithComparator sets the token comparator.
func WithComparator(cmp token.Comparator) Option {
	return func(o *Options) { o.Comparator = cmp }
}

// WithParallelism bounds CollateAll. Values below one mean one.
func WithParallelism(n int) Option {
	return func(o *Options) { o.Parallelism = max(n, 1) }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records run metrics into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithTracer overrides the package tracer.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}
