package editgraph

import "errors"

// Scoring policy. Matches are the baseline, not a bonus: a match inherits the
// parent score unchanged, gaps and mismatches subtract.
const (
	// MatchScore is added for a diagonal step onto a cube match.
	MatchScore = 0

	// MismatchPenalty is subtracted for a diagonal step without a match.
	MismatchPenalty = 2

	// GapPenalty is subtracted for a horizontal or vertical step.
	GapPenalty = 1
)

// ErrBrokenBacktrace indicates the parent chain of the table does not lead
// back to (0,0), or a match cell has no counterpart in the cube. Either is a
// construction bug.
var ErrBrokenBacktrace = errors.New("editgraph: broken backtrace")

// CellType discriminates the edit operation that produced a cell.
type CellType int

const (
	// Empty is the type of the origin cell (0,0).
	Empty CellType = iota

	// Match is a diagonal step onto a cube match.
	Match

	// Mismatch is a diagonal step without a match (replacement).
	Mismatch

	// Addition is a step that keeps the column: a witness token with no vertex.
	Addition

	// Deletion is a step that keeps the row: a graph rank with no witness token.
	Deletion
)

// String returns the lower-case name of t.
func (t CellType) String() string {
	switch t {
	case Empty:
		return "empty"
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	case Addition:
		return "addition"
	case Deletion:
		return "deletion"
	default:
		return "unknown"
	}
}

// Cell is one value cell of the score table. Parents live in a separate
// coordinate table; cells never point at each other.
type Cell struct {
	Type  CellType
	Score int
}

// Coord addresses a cell: Y is the row (witness tokens consumed), X the column
// (graph ranks consumed).
type Coord struct {
	Y, X int
}
