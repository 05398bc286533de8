package decisiongraph

import "github.com/katalvlaran/collate/matchcube"

// Graph is the implicit decision graph over one match cube. Nodes are never
// materialised up front; NeighborNodes generates them on demand.
type Graph struct {
	cube       *matchcube.Cube
	graphLen   int
	witnessLen int

	// graphAfter[g+1] counts matched graph positions strictly after g,
	// witnessAfter[w+1] matched witness positions strictly after w.
	// The shift makes room for the origin row and column at -1.
	graphAfter   []int
	witnessAfter []int
}

// NewGraph returns the decision graph of cube.
//
// Complexity: O(G + W) for the suffix match counts.
func NewGraph(cube *matchcube.Cube) *Graph {
	g := &Graph{
		cube:         cube,
		graphLen:     cube.GraphLen(),
		witnessLen:   cube.WitnessLen(),
		graphAfter:   make([]int, cube.GraphLen()+1),
		witnessAfter: make([]int, cube.WitnessLen()+1),
	}
	for x := g.graphLen - 2; x >= -1; x-- {
		g.graphAfter[x+1] = g.graphAfter[x+2]
		if cube.RankMatched(x + 1) {
			g.graphAfter[x+1]++
		}
	}
	for y := g.witnessLen - 2; y >= -1; y-- {
		g.witnessAfter[y+1] = g.witnessAfter[y+2]
		if cube.TokenMatched(y + 1) {
			g.witnessAfter[y+1]++
		}
	}

	return g
}

// Origin returns the virtual node (-1,-1) that precedes every token on both
// axes. The search starts here, so every real position, (0,0) included, can
// be entered by a diagonal move. Nodes on row or column -1 never match.
func (g *Graph) Origin() Node {
	return g.node(-1, -1, None)
}

// Root returns the first real node (0,0).
func (g *Graph) Root() Node {
	return g.node(0, 0, None)
}

// IsVirtual reports whether n lies on the origin row or column.
func (g *Graph) IsVirtual(n Node) bool {
	return n.GraphPos < 0 || n.WitnessPos < 0
}

// Goal returns the node at the last graph and witness positions.
func (g *Graph) Goal() Node {
	return g.node(g.graphLen-1, g.witnessLen-1, None)
}

// IsGoal reports whether n sits on the goal position.
func (g *Graph) IsGoal(n Node) bool {
	return n.GraphPos == g.graphLen-1 && n.WitnessPos == g.witnessLen-1
}

// NeighborNodes returns the forward neighbors of n in fixed order:
// (+1,0) SkipTokenGraph, (0,+1) SkipTokenWitness, (+1,+1) MatchTokensOrReplace.
// Moves leaving the grid are omitted. Nodes on the origin row or column
// expand the same way.
func (g *Graph) NeighborNodes(n Node) []Node {
	out := make([]Node, 0, 3)
	canGraph := n.GraphPos+1 < g.graphLen
	canWitness := n.WitnessPos+1 < g.witnessLen
	if canGraph {
		out = append(out, g.node(n.GraphPos+1, n.WitnessPos, SkipTokenGraph))
	}
	if canWitness {
		out = append(out, g.node(n.GraphPos, n.WitnessPos+1, SkipTokenWitness))
	}
	if canGraph && canWitness {
		out = append(out, g.node(n.GraphPos+1, n.WitnessPos+1, MatchTokensOrReplace))
	}

	return out
}

// DistBetween returns the cost of the move from a to its neighbor b, mirroring
// the edit-graph scores: zero for a diagonal move onto a match, two for a
// diagonal replacement, one for a skip. The cost of a full path is therefore
// the number of skipped positions on both axes minus twice the matches.
func (g *Graph) DistBetween(a, b Node) int {
	switch {
	case b.Op != MatchTokensOrReplace:
		return 1
	case b.Match:
		return 0
	default:
		return 2
	}
}

// PotentialMatches returns an upper bound on the zero-cost moves left after
// n: every such move lands on a graph position and a witness position, both
// matched and both beyond n.
func (g *Graph) PotentialMatches(n Node) int {
	return min(g.graphAfter[n.GraphPos+1], g.witnessAfter[n.WitnessPos+1])
}

// HeuristicCostEstimate returns a lower bound on the cost from n to the goal.
//
// With dg and dw the remaining graph and witness steps, a path costs
// dg + dw minus twice its free moves, and at most min(dg,dw,PotentialMatches(n))
// moves are free. The estimate is consistent: no move lowers it by more than
// the move costs.
func (g *Graph) HeuristicCostEstimate(n Node) int {
	dg := g.graphLen - 1 - n.GraphPos
	dw := g.witnessLen - 1 - n.WitnessPos

	return dg + dw - 2*min(dg, dw, g.PotentialMatches(n))
}

func (g *Graph) node(graphPos, witnessPos int, op EditOperation) Node {
	return Node{
		GraphPos:   graphPos,
		WitnessPos: witnessPos,
		Op:         op,
		Match:      graphPos >= 0 && witnessPos >= 0 && g.cube.HasMatch(witnessPos, graphPos),
	}
}
