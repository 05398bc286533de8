package collate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/collate/token"
)

// CollateAll runs independent collations concurrently, at most Parallelism
// at a time. Results keep the order of runs. The first failure cancels the
// remaining runs and is returned.
func (c *Collator) CollateAll(ctx context.Context, runs [][]*token.Witness) ([]*Result, error) {
	results := make([]*Result, len(runs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.opts.Parallelism, 1))

	for i, ws := range runs {
		i, ws := i, ws
		g.Go(func() error {
			res, err := c.Collate(gctx, ws)
			if err != nil {
				return err
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
