package editgraph

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/collate/matchcube"
)

// Aligner aligns a witness against the graph by filling a score table and
// backtracing the best path.
type Aligner struct {
	logger *slog.Logger
}

// Option configures an Aligner.
type Option func(*Aligner)

// WithLogger sets the logger that receives the score table at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(a *Aligner) {
		if l != nil {
			a.logger = l
		}
	}
}

// New returns an edit-graph aligner.
func New(opts ...Option) *Aligner {
	a := &Aligner{logger: slog.Default()}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Align returns the accepted correspondences for the witness of cube, in
// witness order. An empty result is valid.
func (a *Aligner) Align(ctx context.Context, cube *matchcube.Cube) ([]matchcube.Match, error) {
	t, err := Fill(ctx, cube)
	if err != nil {
		return nil, err
	}
	if a.logger.Enabled(ctx, slog.LevelDebug) {
		a.logger.DebugContext(ctx, "editgraph: score table",
			slog.String("witness", cube.Witness().ID),
			slog.Int("rows", t.Rows()),
			slog.Int("cols", t.Cols()),
			slog.String("table", t.String()),
		)
	}

	return t.Matches(cube)
}
