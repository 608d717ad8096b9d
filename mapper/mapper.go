// Package mapper defines the element mappers that turn an array index into
// a synthetic value of the element type under test.  A mapper is the total
// order surrogate for its type: index i maps below index j whenever i < j,
// so an ascending array is simply fn(0), fn(1), ..., fn(n-1).
package mapper

import (
	"github.com/brimdata/sortbench/bencherr"
	"github.com/brimdata/sortbench/pkg/nano"
	"golang.org/x/exp/constraints"
)

// Func maps a non-negative index to a value.  Implementations must be
// stateless and allocate at most O(1) per call.
type Func[T any] func(int) T

// StringWidth is the fixed length of the strings produced by String.
const StringWidth = 6

// StringCardinality is the number of distinct values String can produce
// before it wraps around to "aaaaaa".
const StringCardinality = 26 * 26 * 26 * 26 * 26 * 26

func Int(i int) int64 {
	return int64(i)
}

func Float(i int) float64 {
	return float64(i)
}

// String maps i to its base-26 representation over 'a'..'z', most
// significant letter first, so 0 is "aaaaaa" and 1 is "aaaaab".
func String(i int) string {
	var b [StringWidth]byte
	v := i
	for k := StringWidth - 1; k >= 0; k-- {
		b[k] = byte('a' + v%26)
		v /= 26
	}
	return string(b[:])
}

// Time maps i to the timestamp i milliseconds after the Unix epoch.
func Time(i int) nano.Ts {
	return nano.FromMillis(int64(i))
}

// Validate checks that fn is strictly increasing over [0, size), which is
// what the generator needs: monotonic so the ascending ordering is sorted,
// and distinct so no two generated elements collide.
func Validate[T constraints.Ordered](size int, fn Func[T]) error {
	if size < 0 {
		return bencherr.E(bencherr.Invalid, "size must be non-negative: %d", size)
	}
	if size == 0 {
		return nil
	}
	prev := fn(0)
	for i := 1; i < size; i++ {
		v := fn(i)
		if v <= prev {
			if v == prev {
				return bencherr.E(bencherr.GenerationFailure, "mapper produced a duplicate value at index %d (only %d distinct values for size %d)", i, i, size)
			}
			return bencherr.E(bencherr.GenerationFailure, "mapper is not monotonic at index %d", i)
		}
		prev = v
	}
	return nil
}

// Types lists the element type names understood by the command line.
var Types = []string{"int", "float", "string", "time"}
