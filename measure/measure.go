// Package measure implements the timed-measurement protocol: a sorter is
// run repeatedly against freshly generated arrays and the duration of each
// sort call is recorded.
package measure

import (
	"math"
	"runtime"
	"time"

	"github.com/brimdata/sortbench/bencherr"
	"github.com/brimdata/sortbench/sorter"
	"golang.org/x/exp/constraints"
)

// DefaultSkipFraction is the share of the requested iterations run and
// discarded ahead of the recorded trials.
const DefaultSkipFraction = 0.1

type Options struct {
	// Verify checks each sorted array after the timer is stopped.
	Verify bool
	// GC forces a garbage collection before each trial, outside the
	// timed interval.
	GC bool
}

// Run performs iterations+skip trials of s and returns the durations of
// the last iterations trials in the order they ran.  Each trial obtains a
// new array from factory; only the call to Sort is timed.
func Run[T constraints.Ordered](s sorter.Sorter[T], factory func() ([]T, error), size, iterations, skip int, opts Options) ([]time.Duration, error) {
	if err := check(s, factory, size, iterations, skip); err != nil {
		return nil, err
	}
	durations := make([]time.Duration, 0, iterations)
	for trial := 0; trial < iterations+skip; trial++ {
		a, err := factory()
		if err != nil {
			return nil, err
		}
		if len(a) != size {
			return nil, bencherr.E(bencherr.GenerationFailure, "array factory returned %d elements, expected %d", len(a), size)
		}
		if opts.GC {
			runtime.GC()
		}
		start := time.Now()
		s.Sort(a)
		elapsed := time.Since(start)
		if opts.Verify {
			if err := sorter.Verify(a); err != nil {
				return nil, bencherr.E(bencherr.ContractViolation, "%s, trial %d: %w", s.Name(), trial, err)
			}
		}
		if trial >= skip {
			durations = append(durations, elapsed)
		}
	}
	return durations, nil
}

func check[T constraints.Ordered](s sorter.Sorter[T], factory func() ([]T, error), size, iterations, skip int) error {
	switch {
	case s == nil:
		return bencherr.E(bencherr.Invalid, "no sorter")
	case factory == nil:
		return bencherr.E(bencherr.Invalid, "no array factory")
	case size < 0:
		return bencherr.E(bencherr.Invalid, "size must be non-negative: %d", size)
	case iterations <= 0:
		return bencherr.E(bencherr.Invalid, "iteration count must be positive: %d", iterations)
	case skip < 0:
		return bencherr.E(bencherr.Invalid, "skip count must be non-negative: %d", skip)
	}
	return nil
}

// SkipCount returns ceil(iterations*fraction), the number of leading trials
// discarded for a fractional skip window.
func SkipCount(iterations int, fraction float64) (int, error) {
	if iterations <= 0 {
		return 0, bencherr.E(bencherr.Invalid, "iteration count must be positive: %d", iterations)
	}
	if fraction < 0 || fraction >= 1 || math.IsNaN(fraction) {
		return 0, bencherr.E(bencherr.Invalid, "skip fraction must be in [0,1): %g", fraction)
	}
	// The epsilon keeps products like 30*0.1 from rounding up to 4.
	return int(math.Ceil(float64(iterations)*fraction - 1e-9)), nil
}
