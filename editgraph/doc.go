// Package editgraph aligns the next witness against the variant graph with a
// global, Needleman–Wunsch style dynamic program.
//
// Rows are witness tokens, columns are graph ranks; the match cube acts as a
// free lookup oracle instead of raw token comparison, so long repeats found
// by the token index dominate short accidental matches.
//
// Scoring:
//
//   - match    0  (diagonal onto a cube match, the baseline)
//   - mismatch -2 (diagonal without match)
//   - gap      -1 (addition or deletion)
//
// Ties go to the first candidate in evaluation order: diagonal, left, up.
// This keeps results reproducible.
//
// Usage:
//
//	t, err := editgraph.Fill(ctx, cube)
//	matches, err := t.Matches(cube)
//
// or, through the strategy interface shared with the A* aligner:
//
//	matches, err := editgraph.New().Align(ctx, cube)
//
// Complexity:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M), cells plus parent coordinates
package editgraph
