package matcher

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// defaultBatchWorkers bounds concurrent searches when the caller does
// not specify a limit.
const defaultBatchWorkers = 8

// MatchBatch resolves many queries against one candidate list
// concurrently. Results come back in query order; a Result with a
// negative Index means that query did not resolve. Each search is
// independent and the engine is read-only, so the only coordination is
// the worker limit. The context cancels remaining work.
func (e *Engine) MatchBatch(ctx context.Context, candidates []string, queries []string, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = defaultBatchWorkers
	}

	results := make([]Result, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, ok := e.Match(candidates, q)
			if !ok {
				r = Result{Index: -1}
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// SearchBatch is MatchBatch returning just the matched candidate per
// query, empty string for no match.
func (e *Engine) SearchBatch(ctx context.Context, candidates []string, queries []string, workers int) ([]string, error) {
	results, err := e.MatchBatch(ctx, candidates, queries, workers)
	if err != nil {
		return nil, err
	}

	matched := make([]string, len(results))
	for i, r := range results {
		if r.Index >= 0 {
			matched[i] = r.Candidate
		}
	}
	return matched, nil
}
