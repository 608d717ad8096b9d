// Package gen generates the input arrays handed to the sort variants.
package gen

import (
	"math/rand/v2"
	"time"

	"github.com/brimdata/sortbench/bencherr"
	"github.com/brimdata/sortbench/mapper"
	"github.com/brimdata/sortbench/order"
)

// NewRand returns a PCG source seeded with seed.  A zero seed is replaced
// by one derived from the clock; the seed actually used is returned so a
// run can be reproduced.
func NewRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}

// Generate returns a new array of size elements arranged per which.
// Descending is the ascending array reversed in place and Shuffle is the
// ascending array permuted with r, so all three orderings contain the same
// elements.  The mapper is called exactly size times.
func Generate[T any](which order.Which, size int, fn mapper.Func[T], r *rand.Rand) ([]T, error) {
	if size < 0 {
		return nil, bencherr.E(bencherr.Invalid, "array size must be non-negative: %d", size)
	}
	if fn == nil {
		return nil, bencherr.E(bencherr.Invalid, "no mapper")
	}
	switch which {
	case order.Asc:
		return ascending(size, fn), nil
	case order.Desc:
		a := ascending(size, fn)
		for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
			a[i], a[j] = a[j], a[i]
		}
		return a, nil
	case order.Shuffle:
		if r == nil {
			return nil, bencherr.E(bencherr.Invalid, "shuffled ordering requires a random source")
		}
		a := ascending(size, fn)
		r.Shuffle(len(a), func(i, j int) {
			a[i], a[j] = a[j], a[i]
		})
		return a, nil
	}
	return nil, bencherr.E(bencherr.Invalid, "unknown ordering %d", int(which))
}

func ascending[T any](size int, fn mapper.Func[T]) []T {
	a := make([]T, size)
	for i := range a {
		a[i] = fn(i)
	}
	return a
}

// Factory returns a function producing a fresh array on every call.
func Factory[T any](which order.Which, size int, fn mapper.Func[T], r *rand.Rand) func() ([]T, error) {
	return func() ([]T, error) {
		return Generate(which, size, fn, r)
	}
}
