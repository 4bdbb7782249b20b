// Package loader fans per-key CMS lookups out concurrently. PerKey wraps a
// lookup in a memoizing DataLoader that lives for one aggregation run: every
// key is fetched at most once, and concurrent Loads of a key share a fetch.
package loader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"
	"golang.org/x/sync/errgroup"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond

	// DefaultConcurrency bounds the in-flight fetches of one batch.
	DefaultConcurrency = 8
)

// FetchFunc fetches the value of a single key.
type FetchFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

// PerKey creates a Loader whose batches fan out to fetch, one call per key,
// at most concurrency at a time. A failing key never affects its siblings.
func PerKey[K comparable, V any](fetch FetchFunc[K, V], concurrency int) *dataloader.Loader[K, V] {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return dataloader.NewBatchedLoader(
		newPerKeyBatchFn(fetch, concurrency),
		dataloader.WithWait[K, V](wait),
		dataloader.WithBatchCapacity[K, V](maxBatch),
	)
}

func newPerKeyBatchFn[K comparable, V any](fetch FetchFunc[K, V], concurrency int) dataloader.BatchFunc[K, V] {
	return func(ctx context.Context, keys []K) []*dataloader.Result[V] {
		results := make([]*dataloader.Result[V], len(keys))

		var g errgroup.Group
		g.SetLimit(concurrency)
		for i, key := range keys {
			g.Go(func() error {
				v, err := fetch(ctx, key)
				results[i] = &dataloader.Result[V]{Data: v, Error: err}
				return nil
			})
		}
		_ = g.Wait()

		return results
	}
}

// LoadAll resolves keys through l and returns the values of the keys that
// loaded successfully, plus the error of each key that did not.
func LoadAll[K comparable, V any](ctx context.Context, l *dataloader.Loader[K, V], keys []K) (map[K]V, map[K]error) {
	values := make(map[K]V, len(keys))
	if len(keys) == 0 {
		return values, nil
	}

	data, errs := l.LoadMany(ctx, keys)()

	var failed map[K]error
	for i, key := range keys {
		if len(errs) > i && errs[i] != nil {
			if failed == nil {
				failed = make(map[K]error)
			}
			failed[key] = errs[i]
			continue
		}
		values[key] = data[i]
	}
	return values, failed
}
