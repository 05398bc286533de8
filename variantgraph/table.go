package variantgraph

import (
	"context"

	"github.com/katalvlaran/collate/token"
)

// Table is the rank-ordered tabular view of a variant graph: one row per
// witness, one column per rank between the sentinels. A nil cell is a gap.
type Table struct {
	Witnesses []string
	Rows      [][]*token.Token
}

// Columns returns the number of columns of t.
func (t *Table) Columns() int {
	if len(t.Rows) == 0 {
		return 0
	}

	return len(t.Rows[0])
}

// Table ranks g and lays out every merged witness along the ranks.
func (g *Graph) Table(ctx context.Context) (*Table, error) {
	ranking, err := g.Rank(ctx)
	if err != nil {
		return nil, err
	}
	cols := ranking.EndRank() - 1

	g.mu.RLock()
	defer g.mu.RUnlock()

	t := &Table{
		Witnesses: make([]string, 0, len(g.witnesses)),
		Rows:      make([][]*token.Token, 0, len(g.witnesses)),
	}
	row := make(map[*token.Witness]int, len(g.witnesses))
	for i, w := range g.witnesses {
		t.Witnesses = append(t.Witnesses, w.ID)
		t.Rows = append(t.Rows, make([]*token.Token, cols))
		row[w] = i
	}
	for _, v := range g.vertices {
		col := ranking.RankOf(v.ID) - 1
		if col < 0 || col >= cols {
			continue
		}
		for _, tok := range v.Tokens {
			if r, ok := row[tok.Witness]; ok {
				t.Rows[r][col] = tok
			}
		}
	}

	return t, nil
}
