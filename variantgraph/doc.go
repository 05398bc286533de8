// Package variantgraph provides the variant graph shared by all witnesses of
// a collation run, plus the services the aligners consume from it: ranking,
// merging and a tabular view.
//
// The graph G = (V,E) is an arena:
//
//   - Vertices are addressed by dense VertexIDs; Start (0) and End (1) are
//     synthetic sentinels without tokens.
//   - A vertex holds the tokens judged equivalent, at most one per witness.
//   - Edges are adjacency lists of IDs. Each edge carries the set of witness
//     IDs whose token path traverses it; parallel edges are never created.
//   - Vertices are only ever added, never removed.
//
// Ranking:
//
//	Rank computes, for every vertex, the length of the longest path from
//	Start. It is a separate pass over the graph, not a stored property, so
//	ranks can never go stale after a merge.
//
// Merging:
//
//	Merge folds one witness in, given the token → vertex mapping accepted by
//	an aligner. It validates the whole mapping first and either applies all of
//	it or nothing.
//
// Concurrency:
//
//	Graph is guarded by a sync.RWMutex. Queries may run concurrently; merges
//	are exclusive. A single collation run still has to merge witnesses one
//	after another, because each alignment reads the state the previous merge
//	left behind.
package variantgraph
