package matchcube_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/collate/matchcube"
	"github.com/katalvlaran/collate/token"
	"github.com/katalvlaran/collate/tokenindex"
	"github.com/katalvlaran/collate/variantgraph"
)

type fixture struct {
	ws          []*token.Witness
	idx         *tokenindex.Index
	graph       *variantgraph.Graph
	vertexArray []variantgraph.VertexID
	ranking     *variantgraph.Ranking
	first       []variantgraph.VertexID
}

// newFixture indexes texts and merges the first witness into a fresh graph.
func newFixture(t *testing.T, texts ...string) *fixture {
	t.Helper()
	f := &fixture{ws: token.MustWitnesses(texts...), graph: variantgraph.New()}

	var err error
	f.idx, err = tokenindex.Build(token.EqualityComparator, f.ws)
	require.NoError(t, err)

	f.first, err = f.graph.Merge(f.ws[0], nil)
	require.NoError(t, err)

	f.vertexArray = make([]variantgraph.VertexID, f.idx.Len())
	for i := range f.vertexArray {
		f.vertexArray[i] = variantgraph.NoVertex
	}
	start, ok := f.idx.StartOf(f.ws[0])
	require.True(t, ok)
	for i, v := range f.first {
		f.vertexArray[start+i] = v
	}

	f.ranking, err = f.graph.Rank(context.Background())
	require.NoError(t, err)

	return f
}

func (f *fixture) build(t *testing.T, w *token.Witness) *matchcube.Cube {
	t.Helper()
	cube, err := matchcube.Build(f.idx, f.vertexArray, f.ranking, w)
	require.NoError(t, err)

	return cube
}

// TestBuild_TwoWitnesses checks the cube of "a e c d" against "a b c d e".
func TestBuild_TwoWitnesses(t *testing.T) {
	f := newFixture(t, "a b c d e", "a e c d")
	cube := f.build(t, f.ws[1])

	require.Equal(t, 4, cube.WitnessLen())
	require.Equal(t, 5, cube.GraphLen())
	require.Equal(t, 4, cube.Len())

	want := map[[2]int]variantgraph.VertexID{
		{0, 0}: f.first[0], // a
		{1, 4}: f.first[4], // e
		{2, 2}: f.first[2], // c
		{3, 3}: f.first[3], // d
	}
	for y := 0; y < cube.WitnessLen(); y++ {
		for x := 0; x < cube.GraphLen(); x++ {
			v, expected := want[[2]int{y, x}]
			assert.Equal(t, expected, cube.HasMatch(y, x), "cell (%d,%d)", y, x)
			m, ok := cube.GetMatch(y, x)
			assert.Equal(t, expected, ok)
			if expected {
				assert.Equal(t, v, m.Vertex)
				assert.Same(t, f.ws[1].Tokens[y], m.Token)
			}
		}
	}
	assert.True(t, cube.RankMatched(4))
	assert.False(t, cube.RankMatched(1), "b has no counterpart")
	assert.True(t, cube.TokenMatched(1))
}

// TestBuild_VerticalDedup keeps only the first witness token per vertex.
func TestBuild_VerticalDedup(t *testing.T) {
	f := newFixture(t, "a b", "a a")
	cube := f.build(t, f.ws[1])

	require.Equal(t, 1, cube.Len())
	assert.True(t, cube.HasMatch(0, 0))
	assert.False(t, cube.TokenMatched(1), "second a proposes an already matched vertex")
}

// TestBuild_HorizontalDedup keeps only the lowest-ranked vertex per token.
func TestBuild_HorizontalDedup(t *testing.T) {
	f := newFixture(t, "a b a", "a")
	cube := f.build(t, f.ws[1])

	require.Equal(t, 1, cube.Len())
	m := cube.Matches()[0]
	assert.Equal(t, f.first[0], m.Vertex)
	assert.Equal(t, 0, m.RankOffset)
	assert.False(t, cube.RankMatched(2))
}

// TestBuild_LowestRankAcrossIntervals checks that a token covered by a longer
// phrase still takes the lowest-ranked vertex offered by any interval.
func TestBuild_LowestRankAcrossIntervals(t *testing.T) {
	f := newFixture(t, "a c a b", "a b")
	cube := f.build(t, f.ws[1])

	require.Equal(t, 2, cube.Len())
	a, ok := cube.GetMatch(0, 0)
	require.True(t, ok)
	assert.Equal(t, f.first[0], a.Vertex, "a pairs with the first a, not the one before b")
	assert.False(t, cube.RankMatched(2))

	b, ok := cube.GetMatch(1, 3)
	require.True(t, ok)
	assert.Equal(t, f.first[3], b.Vertex)
}

// TestBuild_FallsBackToShorterPhrase checks that a longer repeat shared only
// with unmerged witnesses does not hide a shorter repeat with the graph.
func TestBuild_FallsBackToShorterPhrase(t *testing.T) {
	f := newFixture(t, "x", "x y", "x y")
	cube := f.build(t, f.ws[1])

	require.Equal(t, 1, cube.Len())
	assert.True(t, cube.HasMatch(0, 0))
	assert.False(t, cube.TokenMatched(1))
}

// TestBuild_NoMatches is a valid outcome, not an error.
func TestBuild_NoMatches(t *testing.T) {
	f := newFixture(t, "a b", "c d")
	cube := f.build(t, f.ws[1])
	assert.Zero(t, cube.Len())
	assert.Empty(t, cube.Matches())
}

// TestBuild_Idempotent verifies that rebuilding yields the same matches and
// leaves the inputs untouched.
func TestBuild_Idempotent(t *testing.T) {
	f := newFixture(t, "a b c d e", "a e c d", "a d b")
	before := append([]variantgraph.VertexID(nil), f.vertexArray...)
	order := f.graph.Order()

	first := f.build(t, f.ws[1]).Matches()
	second := f.build(t, f.ws[1]).Matches()
	assert.Equal(t, first, second)
	assert.Equal(t, before, f.vertexArray)
	assert.Equal(t, order, f.graph.Order())
}

func TestBuild_Errors(t *testing.T) {
	f := newFixture(t, "a b", "a")

	_, err := matchcube.Build(nil, f.vertexArray, f.ranking, f.ws[1])
	assert.ErrorIs(t, err, matchcube.ErrNilInput)

	_, err = matchcube.Build(f.idx, f.vertexArray[:1], f.ranking, f.ws[1])
	assert.ErrorIs(t, err, matchcube.ErrVertexArrayLength)

	_, err = matchcube.Build(f.idx, f.vertexArray, f.ranking, token.MustWitnesses("a")[0])
	assert.ErrorIs(t, err, matchcube.ErrUnknownWitness)
}

// TestLookup_OutOfRangePanics verifies that invariant violations are loud.
func TestLookup_OutOfRangePanics(t *testing.T) {
	f := newFixture(t, "a b", "a")
	cube := f.build(t, f.ws[1])

	assert.Panics(t, func() { cube.HasMatch(1, 0) })
	assert.Panics(t, func() { cube.HasMatch(0, 2) })
	assert.Panics(t, func() { cube.HasMatch(-1, 0) })
	assert.Panics(t, func() { cube.RankMatched(5) })
	assert.Panics(t, func() { cube.TokenMatched(3) })
}
