// Package collate sequences whole collation runs: it builds the token index
// once, merges the first witness, and then aligns and merges every further
// witness in turn, each pass reading the graph the previous one left behind.
//
// The alignment strategy is pluggable through the Aligner interface. Two are
// built in and chosen with WithAlgorithm:
//
//   - AlgorithmEditGraph: dynamic-programming score table (package editgraph).
//   - AlgorithmAStar:     A* over the decision graph (package decisiongraph).
//
// Example:
//
//	c, err := collate.New(collate.WithAlgorithm(collate.AlgorithmAStar))
//	if err != nil {
//		return err
//	}
//	res, err := c.Collate(ctx, token.MustWitnesses("a b c d e", "a e c d"))
//
// Errors:
//
//	Configuration errors (unknown algorithm, nil comparator, empty or
//	duplicate witnesses) are returned before any alignment happens. Failures
//	that valid input cannot cause are wrapped in ErrInvariant. No accepted
//	correspondence at all is a valid outcome, not an error.
//
// Observability:
//
//	Runs log through log/slog with a run_id attribute, open the spans
//	collate.Collate and collate.alignWitness on the configured OpenTelemetry
//	tracer, and, given WithMetrics, count witnesses and matches per algorithm.
package collate
