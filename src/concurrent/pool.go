// Package concurrent provides bounded-parallel helpers for batch
// operations whose results must keep input order.
package concurrent

import (
	"context"
	"sync"
)

// Map runs fn over items with at most maxConcurrency calls in flight and
// returns per-index results and errors. The batch never aborts early:
// every item is attempted and failures stay isolated to their index. A
// cancelled context marks the remaining items with ctx.Err().
func Map[T, R any](ctx context.Context, items []T, fn func(context.Context, T) (R, error), maxConcurrency int) ([]R, []error) {
	if len(items) == 0 {
		return nil, nil
	}
	if maxConcurrency <= 0 {
		maxConcurrency = 4
	}

	results := make([]R, len(items))
	errs := make([]error, len(items))

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxConcurrency)
	for i, item := range items {
		wg.Add(1)
		go func(idx int, val T) {
			defer wg.Done()
			select {
			case <-ctx.Done():
				errs[idx] = ctx.Err()
			case sem <- struct{}{}:
				defer func() { <-sem }()
				results[idx], errs[idx] = fn(ctx, val)
			}
		}(i, item)
	}
	wg.Wait()

	return results, errs
}
