package editgraph

import "github.com/katalvlaran/collate/matchcube"

// Scorer turns cube lookups and relative cell positions into candidate cells.
// It keeps no state besides the cube.
type Scorer struct {
	cube *matchcube.Cube
}

// NewScorer returns a scorer backed by cube.
func NewScorer(cube *matchcube.Cube) *Scorer {
	return &Scorer{cube: cube}
}

// Score returns the diagonal candidate for cell (x, y) whose parent is
// (x-1, y-1): a Match inheriting the parent score when the cube holds a match
// at (y-1, x-1), a Mismatch costing MismatchPenalty otherwise.
func (s *Scorer) Score(x, y int, parent Cell) Cell {
	if s.cube.HasMatch(y-1, x-1) {
		return Cell{Type: Match, Score: parent.Score + MatchScore}
	}

	return Cell{Type: Mismatch, Score: parent.Score - MismatchPenalty}
}

// Gap returns the candidate for cell (x, y) reached from parent cell at from.
// Keeping the column is an Addition, keeping the row a Deletion.
func (s *Scorer) Gap(x, y int, from Coord, parent Cell) Cell {
	typ := Empty
	switch {
	case x == from.X:
		typ = Addition
	case y == from.Y:
		typ = Deletion
	}

	return Cell{Type: typ, Score: parent.Score - GapPenalty}
}
