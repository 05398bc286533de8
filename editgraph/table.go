package editgraph

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/collate/matchcube"
)

// Table is the filled score table of one alignment.
//
// Rows = witness tokens + 1, Cols = graph ranks excluding End (Start included).
// Cells and parent coordinates are stored in two parallel row-major slices.
type Table struct {
	rows, cols int
	cells      []Cell
	parents    []Coord
}

// Fill builds the score table for cube.
//
// Algorithm Outline:
//  1. Let n = cube.WitnessLen(), m = cube.GraphLen(). Allocate (n+1)x(m+1) cells.
//  2. Initialize:
//     T[0][0] = empty, score 0, no parent
//     T[0][x] = gap from T[0][x-1] for x=1..m
//     T[y][0] = gap from T[y-1][0] for y=1..n
//  3. For y = 1..n, for x = 1..m:
//     diag = score(x, y, T[y-1][x-1])
//     left = gap(x, y, T[y][x-1])
//     up   = gap(x, y, T[y-1][x])
//     T[y][x] = the first of (diag, left, up) holding the maximum score
//  4. The best alignment ends in T[n][m]; Backtrace follows the parents.
//
// The context is checked once per row.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)
func Fill(ctx context.Context, cube *matchcube.Cube) (*Table, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	rows, cols := cube.WitnessLen()+1, cube.GraphLen()+1
	t := &Table{
		rows:    rows,
		cols:    cols,
		cells:   make([]Cell, rows*cols),
		parents: make([]Coord, rows*cols),
	}
	scorer := NewScorer(cube)

	// Origin
	t.set(0, 0, Cell{Type: Empty}, Coord{})

	// First row and first column hold gaps only
	for x := 1; x < cols; x++ {
		from := Coord{Y: 0, X: x - 1}
		t.set(0, x, scorer.Gap(x, 0, from, t.At(0, x-1)), from)
	}
	for y := 1; y < rows; y++ {
		from := Coord{Y: y - 1, X: 0}
		t.set(y, 0, scorer.Gap(0, y, from, t.At(y-1, 0)), from)
	}

	// Remaining cells, row-major
	for y := 1; y < rows; y++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for x := 1; x < cols; x++ {
			diagFrom := Coord{Y: y - 1, X: x - 1}
			leftFrom := Coord{Y: y, X: x - 1}
			upFrom := Coord{Y: y - 1, X: x}

			best, bestFrom := scorer.Score(x, y, t.At(diagFrom.Y, diagFrom.X)), diagFrom
			if c := scorer.Gap(x, y, leftFrom, t.At(leftFrom.Y, leftFrom.X)); c.Score > best.Score {
				best, bestFrom = c, leftFrom
			}
			if c := scorer.Gap(x, y, upFrom, t.At(upFrom.Y, upFrom.X)); c.Score > best.Score {
				best, bestFrom = c, upFrom
			}
			t.set(y, x, best, bestFrom)
		}
	}

	return t, nil
}

func (t *Table) set(y, x int, c Cell, parent Coord) {
	t.cells[y*t.cols+x] = c
	t.parents[y*t.cols+x] = parent
}

// Rows returns the number of rows (witness tokens + 1).
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of columns (graph ranks + 1).
func (t *Table) Cols() int { return t.cols }

// At returns cell (y, x).
func (t *Table) At(y, x int) Cell { return t.cells[y*t.cols+x] }

// Parent returns the parent coordinate of cell (y, x). The origin has none.
func (t *Table) Parent(y, x int) (Coord, bool) {
	if y == 0 && x == 0 {
		return Coord{}, false
	}

	return t.parents[y*t.cols+x], true
}

// Backtrace returns the cells on the best path, from (0,0) to the last cell.
//
// Errors:
//   - ErrBrokenBacktrace: a parent does not strictly precede its child, or the
//     chain is longer than rows+cols.
func (t *Table) Backtrace() ([]Coord, error) {
	cur := Coord{Y: t.rows - 1, X: t.cols - 1}
	path := []Coord{cur}
	for steps := 0; cur != (Coord{}); steps++ {
		if steps > t.rows+t.cols {
			return nil, fmt.Errorf("%w: chain longer than %d", ErrBrokenBacktrace, t.rows+t.cols)
		}
		parent, _ := t.Parent(cur.Y, cur.X)
		if parent.Y > cur.Y || parent.X > cur.X || parent == cur {
			return nil, fmt.Errorf("%w: (%d,%d) -> (%d,%d)", ErrBrokenBacktrace, cur.Y, cur.X, parent.Y, parent.X)
		}
		path = append(path, parent)
		cur = parent
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, nil
}

// Matches returns the cube matches of every Match cell on the best path, in
// witness order.
func (t *Table) Matches(cube *matchcube.Cube) ([]matchcube.Match, error) {
	path, err := t.Backtrace()
	if err != nil {
		return nil, err
	}
	var out []matchcube.Match
	for _, c := range path {
		if t.At(c.Y, c.X).Type != Match {
			continue
		}
		m, ok := cube.GetMatch(c.Y-1, c.X-1)
		if !ok {
			return nil, fmt.Errorf("%w: match cell (%d,%d) absent from cube", ErrBrokenBacktrace, c.Y, c.X)
		}
		out = append(out, m)
	}

	return out, nil
}

// String renders the scores row by row, suffixing match cells with "M".
func (t *Table) String() string {
	var b strings.Builder
	for y := 0; y < t.rows; y++ {
		for x := 0; x < t.cols; x++ {
			c := t.At(y, x)
			b.WriteString(strconv.Itoa(c.Score))
			if c.Type == Match {
				b.WriteByte('M')
			}
			b.WriteByte('|')
		}
		b.WriteByte('\n')
	}

	return b.String()
}
