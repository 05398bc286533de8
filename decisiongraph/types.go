package decisiongraph

import (
	"errors"
	"fmt"
)

// ErrNoPath indicates the search exhausted the open set without reaching the
// goal. The alignment space is a full grid, so this is a construction bug.
var ErrNoPath = errors.New("decisiongraph: no path to goal")

// EditOperation names the move that produced a node.
type EditOperation int

const (
	// None marks the origin and root, which the grid defines rather than a move.
	None EditOperation = iota

	// SkipTokenGraph advances the graph position only.
	SkipTokenGraph

	// SkipTokenWitness advances the witness position only.
	SkipTokenWitness

	// MatchTokensOrReplace advances both positions.
	MatchTokensOrReplace
)

// String returns the conventional upper-case name of op.
func (op EditOperation) String() string {
	switch op {
	case None:
		return "NONE"
	case SkipTokenGraph:
		return "SKIP_TOKEN_GRAPH"
	case SkipTokenWitness:
		return "SKIP_TOKEN_WITNESS"
	case MatchTokensOrReplace:
		return "MATCH_TOKENS_OR_REPLACE"
	default:
		return "UNKNOWN"
	}
}

// Node is one position of the decision graph: a graph rank offset and a
// witness token offset, both 0-based. Op and Match describe how the node was
// reached and whether the cube holds a match at its position; they are not
// part of its identity.
type Node struct {
	GraphPos   int
	WitnessPos int
	Op         EditOperation
	Match      bool
}

// Pos returns the identity of n.
func (n Node) Pos() [2]int { return [2]int{n.GraphPos, n.WitnessPos} }

// String renders n as "(g,w) OP match".
func (n Node) String() string {
	m := "replace"
	if n.Match {
		m = "match"
	}

	return fmt.Sprintf("(%d,%d) %s %s", n.GraphPos, n.WitnessPos, n.Op, m)
}
