// Package decisiongraph aligns the next witness against the variant graph by
// A* search, as an alternative to the edit-graph table.
//
// A node is a (graph position, witness position) pair over the match cube.
// The root is (0,0), the goal is the last position on both axes. The search
// starts one step earlier, at the virtual origin (-1,-1), playing the part of
// the edit-graph table's row and column 0: a match on the first graph
// position or the first witness token is then reachable by a free diagonal.
// Every node has up to three forward neighbors, always emitted in this order:
//
//	(+1, 0) SKIP_TOKEN_GRAPH
//	( 0,+1) SKIP_TOKEN_WITNESS
//	(+1,+1) MATCH_TOKENS_OR_REPLACE
//
// A diagonal move onto a cube match is free, a diagonal replacement costs two
// and a skip costs one, so the cheapest path holds the most matches.
// The heuristic bounds the remaining cost from below using the matched
// positions still ahead on each axis, so the first time the goal is popped
// its path is optimal.
//
// Usage:
//
//	g := decisiongraph.NewGraph(cube)
//	path, err := g.AStar(ctx)
//
// or, through the strategy interface shared with the edit-graph aligner:
//
//	matches, err := decisiongraph.New().Align(ctx, cube)
package decisiongraph
