package matchcube

import (
	"fmt"

	"github.com/katalvlaran/collate/token"
)

// Witness returns the witness the cube was built for.
func (c *Cube) Witness() *token.Witness { return c.witness }

// WitnessLen returns the number of tokens of the witness (rows of the cube).
func (c *Cube) WitnessLen() int { return len(c.byToken) }

// GraphLen returns the number of ranks strictly between Start and End
// (columns of the cube).
func (c *Cube) GraphLen() int { return c.graphLen }

// Len returns the number of accepted matches.
func (c *Cube) Len() int { return len(c.matches) }

// Matches returns the matches in witness order. The slice is a copy.
func (c *Cube) Matches() []Match {
	out := make([]Match, len(c.matches))
	copy(out, c.matches)

	return out
}

// HasMatch reports whether token y of the witness matches a vertex of rank
// offset x. It panics with ErrCoordinateOutOfRange outside the cube.
// Complexity: O(1)
func (c *Cube) HasMatch(y, x int) bool {
	c.check(y, x)
	i := c.byToken[y]

	return i >= 0 && c.matches[i].RankOffset == x
}

// GetMatch returns the match at (y, x). The boolean is false when the cell is
// empty. It panics with ErrCoordinateOutOfRange outside the cube.
// Complexity: O(1)
func (c *Cube) GetMatch(y, x int) (Match, bool) {
	if !c.HasMatch(y, x) {
		return Match{}, false
	}

	return c.matches[c.byToken[y]], true
}

// TokenMatched reports whether token y matches any vertex.
func (c *Cube) TokenMatched(y int) bool {
	if y < 0 || y >= len(c.byToken) {
		panic(fmt.Errorf("%w: token %d of %d", ErrCoordinateOutOfRange, y, len(c.byToken)))
	}
	return c.byToken[y] >= 0
}

// RankMatched reports whether any token matches rank offset x.
func (c *Cube) RankMatched(x int) bool {
	if x < 0 || x >= c.graphLen {
		panic(fmt.Errorf("%w: rank %d of %d", ErrCoordinateOutOfRange, x, c.graphLen))
	}
	return c.byRank[x] >= 0
}

func (c *Cube) check(y, x int) {
	if y < 0 || y >= len(c.byToken) || x < 0 || x >= c.graphLen {
		panic(fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrCoordinateOutOfRange, y, x, len(c.byToken), c.graphLen))
	}
}
