package activity

import (
	"slices"
	"time"
)

// mergeTopN merges windows into one sequence ordered by at, newest first,
// and keeps the first n. Equal timestamps keep their input order.
func mergeTopN[T any](windows [][]T, n int, at func(T) time.Time) []T {
	total := 0
	for _, w := range windows {
		total += len(w)
	}

	all := make([]T, 0, total)
	for _, w := range windows {
		all = append(all, w...)
	}

	slices.SortStableFunc(all, func(a, b T) int {
		return at(b).Compare(at(a))
	})

	if n >= 0 && len(all) > n {
		all = all[:n]
	}
	return all
}
