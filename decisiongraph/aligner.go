package decisiongraph

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/collate/matchcube"
)

// Aligner aligns a witness against the graph by A* search over the decision
// graph of its match cube.
type Aligner struct {
	logger *slog.Logger
}

// Option configures an Aligner.
type Option func(*Aligner)

// WithLogger sets the logger that receives the chosen path at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(a *Aligner) {
		if l != nil {
			a.logger = l
		}
	}
}

// New returns an A* aligner.
func New(opts ...Option) *Aligner {
	a := &Aligner{logger: slog.Default()}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Align returns the cube matches at the matching nodes of the cheapest path,
// in witness order. A match is accepted only when it advances both the
// witness and the graph position past the previous accepted one, so the
// result never crosses itself. A cube without matches yields none.
func (a *Aligner) Align(ctx context.Context, cube *matchcube.Cube) ([]matchcube.Match, error) {
	if cube.Len() == 0 {
		return nil, nil
	}
	g := NewGraph(cube)
	path, err := g.AStar(ctx)
	if err != nil {
		return nil, err
	}
	if a.logger.Enabled(ctx, slog.LevelDebug) {
		a.logger.DebugContext(ctx, "decisiongraph: path",
			slog.String("witness", cube.Witness().ID),
			slog.Int("nodes", len(path)),
			slog.Int("cost", g.Cost(path)),
		)
	}

	var out []matchcube.Match
	lastY, lastX := -1, -1
	for _, n := range path {
		if !n.Match || n.WitnessPos <= lastY || n.GraphPos <= lastX {
			continue
		}
		m, _ := cube.GetMatch(n.WitnessPos, n.GraphPos)
		out = append(out, m)
		lastY, lastX = n.WitnessPos, n.GraphPos
	}

	return out, nil
}
