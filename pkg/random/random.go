// Package random provides the selection policies used when filling
// templates: uniform choice, avoid-repeat choice and sampling without
// replacement. Every helper draws through a Source so tests can script the
// outcome.
package random

import "math/rand/v2"

// MaxAttempts bounds the redraws ChooseDifferent makes before accepting a
// repeat.
const MaxAttempts = 20

// Source yields uniformly distributed indices in [0, n). Implementations
// must not be called with n <= 0.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// Default returns the process-wide source backed by math/rand/v2. It is safe
// for concurrent use.
func Default() Source {
	return globalSource{}
}

// Or returns src, or Default when src is nil.
func Or(src Source) Source {
	if src == nil {
		return Default()
	}
	return src
}

// Choice returns a uniformly selected element of pool. The boolean is false
// only when pool is empty.
func Choice[T any](src Source, pool []T) (T, bool) {
	var zero T
	if len(pool) == 0 {
		return zero, false
	}
	return pool[Or(src).IntN(len(pool))], true
}

// ChooseDifferent draws from pool, preferring an element whose key differs
// from previousKey. Pools with a single element are returned without a draw.
// After MaxAttempts colliding redraws the last draw is returned as is.
func ChooseDifferent[T any](src Source, pool []T, previousKey string, key func(T) string) (T, bool) {
	var zero T
	switch len(pool) {
	case 0:
		return zero, false
	case 1:
		return pool[0], true
	}

	src = Or(src)
	candidate := pool[src.IntN(len(pool))]
	if previousKey == "" {
		return candidate, true
	}

	for attempts := 0; key(candidate) == previousKey && attempts < MaxAttempts; attempts++ {
		candidate = pool[src.IntN(len(pool))]
	}
	return candidate, true
}

// Sample returns up to n distinct elements of pool in random order. The
// input slice is not modified.
func Sample[T any](src Source, pool []T, n int) []T {
	if n <= 0 || len(pool) == 0 {
		return nil
	}

	src = Or(src)
	shuffled := make([]T, len(pool))
	copy(shuffled, pool)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
