package decisiongraph_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/collate/decisiongraph"
	"github.com/katalvlaran/collate/editgraph"
	"github.com/katalvlaran/collate/matchcube"
	"github.com/katalvlaran/collate/token"
	"github.com/katalvlaran/collate/tokenindex"
	"github.com/katalvlaran/collate/variantgraph"
)

// cubeFor merges the first text into a fresh graph and returns the cube of
// the second against it.
func cubeFor(t *testing.T, first, second string) *matchcube.Cube {
	t.Helper()
	ws := token.MustWitnesses(first, second)
	idx, err := tokenindex.Build(token.EqualityComparator, ws)
	require.NoError(t, err)

	g := variantgraph.New()
	ids, err := g.Merge(ws[0], nil)
	require.NoError(t, err)

	vertexArray := make([]variantgraph.VertexID, idx.Len())
	for i := range vertexArray {
		vertexArray[i] = variantgraph.NoVertex
	}
	start, ok := idx.StartOf(ws[0])
	require.True(t, ok)
	for i, v := range ids {
		vertexArray[start+i] = v
	}

	ranking, err := g.Rank(context.Background())
	require.NoError(t, err)
	cube, err := matchcube.Build(idx, vertexArray, ranking, ws[1])
	require.NoError(t, err)

	return cube
}

func TestNeighborNodes_FixedOrder(t *testing.T) {
	g := decisiongraph.NewGraph(cubeFor(t, "a b c d e", "a e c d"))

	root := g.Root()
	assert.Equal(t, 0, root.GraphPos)
	assert.Equal(t, 0, root.WitnessPos)
	assert.Equal(t, decisiongraph.None, root.Op)
	assert.True(t, root.Match)

	ns := g.NeighborNodes(root)
	require.Len(t, ns, 3)
	assert.Equal(t, [2]int{1, 0}, ns[0].Pos())
	assert.Equal(t, decisiongraph.SkipTokenGraph, ns[0].Op)
	assert.Equal(t, [2]int{0, 1}, ns[1].Pos())
	assert.Equal(t, decisiongraph.SkipTokenWitness, ns[1].Op)
	assert.Equal(t, [2]int{1, 1}, ns[2].Pos())
	assert.Equal(t, decisiongraph.MatchTokensOrReplace, ns[2].Op)
}

func TestOrigin(t *testing.T) {
	g := decisiongraph.NewGraph(cubeFor(t, "a b c d e", "a e c d"))

	origin := g.Origin()
	assert.Equal(t, [2]int{-1, -1}, origin.Pos())
	assert.False(t, origin.Match)
	assert.True(t, g.IsVirtual(origin))
	assert.False(t, g.IsVirtual(g.Root()))
	assert.Equal(t, 4, g.PotentialMatches(origin))
	assert.Equal(t, 1, g.HeuristicCostEstimate(origin))

	ns := g.NeighborNodes(origin)
	require.Len(t, ns, 3)
	assert.Equal(t, [2]int{0, -1}, ns[0].Pos())
	assert.Equal(t, [2]int{-1, 0}, ns[1].Pos())
	assert.Equal(t, [2]int{0, 0}, ns[2].Pos())
	assert.True(t, ns[2].Match)
	assert.Equal(t, 0, g.DistBetween(origin, ns[2]))
	assert.Equal(t, 1, g.DistBetween(origin, ns[1]))
}

func TestNeighborNodes_GridEdges(t *testing.T) {
	g := decisiongraph.NewGraph(cubeFor(t, "a b c d e", "a e c d"))

	onLastGraph := g.NeighborNodes(decisiongraph.Node{GraphPos: 4, WitnessPos: 1})
	require.Len(t, onLastGraph, 1)
	assert.Equal(t, decisiongraph.SkipTokenWitness, onLastGraph[0].Op)

	onLastWitness := g.NeighborNodes(decisiongraph.Node{GraphPos: 2, WitnessPos: 3})
	require.Len(t, onLastWitness, 1)
	assert.Equal(t, decisiongraph.SkipTokenGraph, onLastWitness[0].Op)

	assert.Empty(t, g.NeighborNodes(g.Goal()))
}

func TestIsGoal(t *testing.T) {
	g := decisiongraph.NewGraph(cubeFor(t, "a b c d e", "a e c d"))

	assert.Equal(t, [2]int{4, 3}, g.Goal().Pos())
	assert.True(t, g.IsGoal(decisiongraph.Node{GraphPos: 4, WitnessPos: 3}))
	assert.False(t, g.IsGoal(decisiongraph.Node{GraphPos: 3, WitnessPos: 3}))
	assert.False(t, g.IsGoal(decisiongraph.Node{GraphPos: 4, WitnessPos: 2}))
	assert.False(t, g.IsGoal(g.Root()))
}

func TestDistBetween(t *testing.T) {
	g := decisiongraph.NewGraph(cubeFor(t, "a b c d e", "a e c d"))
	root := g.Root()
	ns := g.NeighborNodes(root)

	assert.Equal(t, 1, g.DistBetween(root, ns[0]))
	assert.Equal(t, 1, g.DistBetween(root, ns[1]))
	// (1,1) pairs "b" with "e": a replacement.
	assert.False(t, ns[2].Match)
	assert.Equal(t, 2, g.DistBetween(root, ns[2]))

	one := ns[2]
	diag := g.NeighborNodes(one)[2]
	assert.Equal(t, [2]int{2, 2}, diag.Pos())
	assert.True(t, diag.Match)
	assert.Equal(t, 0, g.DistBetween(one, diag))
}

func TestHeuristicCostEstimate(t *testing.T) {
	g := decisiongraph.NewGraph(cubeFor(t, "a b c d e", "a e c d"))

	assert.Equal(t, 3, g.PotentialMatches(g.Root()))
	assert.Equal(t, 1, g.HeuristicCostEstimate(g.Root()))
	assert.Equal(t, 0, g.HeuristicCostEstimate(g.Goal()))

	path, err := g.AStar(context.Background())
	require.NoError(t, err)
	// The estimate never exceeds the true remaining cost along the optimal path.
	remaining := 0
	for i := len(path) - 1; i >= 0; i-- {
		assert.LessOrEqual(t, g.HeuristicCostEstimate(path[i]), remaining, "node %s", path[i])
		if i > 0 {
			remaining += g.DistBetween(path[i-1], path[i])
		}
	}
}

func TestAStar_Path(t *testing.T) {
	g := decisiongraph.NewGraph(cubeFor(t, "a b c d e", "a e c d"))

	path, err := g.AStar(context.Background())
	require.NoError(t, err)

	want := []decisiongraph.Node{
		{GraphPos: 0, WitnessPos: 0, Op: decisiongraph.MatchTokensOrReplace, Match: true},
		{GraphPos: 1, WitnessPos: 1, Op: decisiongraph.MatchTokensOrReplace, Match: false},
		{GraphPos: 2, WitnessPos: 2, Op: decisiongraph.MatchTokensOrReplace, Match: true},
		{GraphPos: 3, WitnessPos: 3, Op: decisiongraph.MatchTokensOrReplace, Match: true},
		{GraphPos: 4, WitnessPos: 3, Op: decisiongraph.SkipTokenGraph, Match: false},
	}
	assert.Equal(t, want, path)
	assert.Equal(t, 3, g.Cost(path))
	assert.True(t, g.IsGoal(path[len(path)-1]))
}

// TestAStar_FirstGraphTokenMatchesLater checks that a match on graph
// position 0 is reached by a free diagonal from the origin column.
func TestAStar_FirstGraphTokenMatchesLater(t *testing.T) {
	g := decisiongraph.NewGraph(cubeFor(t, "a b", "x a"))

	path, err := g.AStar(context.Background())
	require.NoError(t, err)

	want := []decisiongraph.Node{
		{GraphPos: -1, WitnessPos: 0, Op: decisiongraph.SkipTokenWitness, Match: false},
		{GraphPos: 0, WitnessPos: 1, Op: decisiongraph.MatchTokensOrReplace, Match: true},
		{GraphPos: 1, WitnessPos: 1, Op: decisiongraph.SkipTokenGraph, Match: false},
	}
	assert.Equal(t, want, path)
	assert.Equal(t, 2, g.Cost(path))
}

func TestAStar_Cancelled(t *testing.T) {
	g := decisiongraph.NewGraph(cubeFor(t, "a b c d e", "a e c d"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.AStar(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAlign_TwoWitnesses(t *testing.T) {
	cube := cubeFor(t, "a b c d e", "a e c d")

	matches, err := decisiongraph.New().Align(context.Background(), cube)
	require.NoError(t, err)

	got := make([]string, len(matches))
	for i, m := range matches {
		got[i] = m.Token.Content
	}
	assert.Equal(t, []string{"a", "c", "d"}, got)
}

func TestAlign_NoMatches(t *testing.T) {
	matches, err := decisiongraph.New().Align(context.Background(), cubeFor(t, "a b", "x y"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

// TestAlign_AgreesWithEditGraph checks that both strategies, which share one
// cost model, accept the same matches when the optimal match set is unique.
func TestAlign_AgreesWithEditGraph(t *testing.T) {
	cases := []struct{ first, second string }{
		{"a b c d e", "a e c d"},
		{"x y z", "x y z"},
		{"a b", "x a"},
		{"a b c", "x y a"},
		{"x a", "a b"},
		{"x y a b", "a b z"},
	}
	for _, tc := range cases {
		t.Run(tc.first+"/"+tc.second, func(t *testing.T) {
			cube := cubeFor(t, tc.first, tc.second)
			dp, err := editgraph.New().Align(context.Background(), cube)
			require.NoError(t, err)
			astar, err := decisiongraph.New().Align(context.Background(), cube)
			require.NoError(t, err)
			require.NotEmpty(t, dp)
			assert.Equal(t, dp, astar)
		})
	}
}

// TestAlign_SameCountOnTies covers inputs with several optimal match sets:
// the strategies may break the tie differently but keep as many matches.
func TestAlign_SameCountOnTies(t *testing.T) {
	cases := []struct{ first, second string }{
		{"the quick brown fox", "the brown quick fox"},
		{"a b c", "c b a"},
	}
	for _, tc := range cases {
		t.Run(tc.first+"/"+tc.second, func(t *testing.T) {
			cube := cubeFor(t, tc.first, tc.second)
			dp, err := editgraph.New().Align(context.Background(), cube)
			require.NoError(t, err)
			astar, err := decisiongraph.New().Align(context.Background(), cube)
			require.NoError(t, err)
			assert.Len(t, astar, len(dp))
		})
	}
}

func TestEditOperation_String(t *testing.T) {
	assert.Equal(t, "SKIP_TOKEN_GRAPH", decisiongraph.SkipTokenGraph.String())
	assert.Equal(t, "SKIP_TOKEN_WITNESS", decisiongraph.SkipTokenWitness.String())
	assert.Equal(t, "MATCH_TOKENS_OR_REPLACE", decisiongraph.MatchTokensOrReplace.String())
	assert.Equal(t, "(1,2) SKIP_TOKEN_GRAPH replace",
		decisiongraph.Node{GraphPos: 1, WitnessPos: 2, Op: decisiongraph.SkipTokenGraph}.String())
}
