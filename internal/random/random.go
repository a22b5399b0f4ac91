// Package random provides the injectable randomness used by session
// generation and flashcard queue building.
package random

import (
	"math/rand/v2"
)

// Source yields uniformly distributed floats in [0, 1).
type Source interface {
	Float64() float64
}

// New returns a deterministic source seeded with seed.
func New(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Default returns an unseeded source backed by the runtime generator.
func Default() Source {
	return defaultSource{}
}

type defaultSource struct{}

func (defaultSource) Float64() float64 { return rand.Float64() }

// Intn returns a uniform integer in [0, n). Returns 0 when n <= 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Shuffle performs an in-place Fisher–Yates shuffle over n elements.
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := Intn(src, i+1)
		swap(i, j)
	}
}

// Perm returns a uniform random permutation of [0, n).
func Perm(src Source, n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(src, n, func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}

// Sample returns k distinct indices from [0, n), in random order.
// If k >= n, every index is returned (shuffled).
func Sample(src Source, n, k int) []int {
	if k <= 0 || n <= 0 {
		return nil
	}
	p := Perm(src, n)
	if k < n {
		p = p[:k]
	}
	return p
}

// Pick returns a random element of items and false if items is empty.
func Pick[T any](src Source, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[Intn(src, len(items))], true
}
