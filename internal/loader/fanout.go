package loader

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Outcome is the isolated result slot of one fanned-out unit of work.
type Outcome[T any] struct {
	Value T
	Err   error
}

// FanOut calls fetch for every key concurrently and returns the outcomes in
// key order. Units never cancel each other: a failure only fills its own slot.
// Cancellation of ctx is left to fetch.
func FanOut[K, T any](ctx context.Context, keys []K, fetch func(ctx context.Context, key K) (T, error)) []Outcome[T] {
	out := make([]Outcome[T], len(keys))

	var g errgroup.Group
	for i, key := range keys {
		g.Go(func() error {
			v, err := fetch(ctx, key)
			out[i] = Outcome[T]{Value: v, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return out
}
