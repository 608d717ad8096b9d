package bench

import (
	"github.com/brimdata/sortbench/bencherr"
)

// Tier assigns an iteration count to every size up to and including
// MaxSize.  A MaxSize of zero matches any size.
type Tier struct {
	MaxSize    int `yaml:"max_size,omitempty"`
	Iterations int `yaml:"iterations"`
}

// Policy maps an array size to the number of recorded iterations.  Smaller
// arrays get more iterations so timer resolution does not dominate; larger
// ones get fewer to bound the total running time.  The first tier whose
// MaxSize covers the size wins.
type Policy []Tier

// DefaultPolicy is 2000 iterations up to size 1000, 200 up to 10000, and
// 20 beyond.
func DefaultPolicy() Policy {
	return Policy{
		{MaxSize: 1000, Iterations: 2000},
		{MaxSize: 10000, Iterations: 200},
		{Iterations: 20},
	}
}

// Fixed returns a policy using n iterations for every size.
func Fixed(n int) Policy {
	return Policy{{Iterations: n}}
}

func (p Policy) Validate() error {
	if len(p) == 0 {
		return bencherr.E(bencherr.Invalid, "empty iteration policy")
	}
	prev := -1
	for k, tier := range p {
		if tier.Iterations <= 0 {
			return bencherr.E(bencherr.Invalid, "iteration policy tier %d: iterations must be positive: %d", k, tier.Iterations)
		}
		if tier.MaxSize < 0 {
			return bencherr.E(bencherr.Invalid, "iteration policy tier %d: max_size must be non-negative: %d", k, tier.MaxSize)
		}
		if tier.MaxSize == 0 {
			if k != len(p)-1 {
				return bencherr.E(bencherr.Invalid, "iteration policy tier %d: unbounded tier must be last", k)
			}
			continue
		}
		if tier.MaxSize <= prev {
			return bencherr.E(bencherr.Invalid, "iteration policy tier %d: max_size %d not above previous %d", k, tier.MaxSize, prev)
		}
		prev = tier.MaxSize
	}
	return nil
}

// Iterations returns the iteration count for size.
func (p Policy) Iterations(size int) (int, error) {
	for _, tier := range p {
		if tier.MaxSize == 0 || size <= tier.MaxSize {
			if tier.Iterations <= 0 {
				return 0, bencherr.E(bencherr.Invalid, "iterations must be positive: %d", tier.Iterations)
			}
			return tier.Iterations, nil
		}
	}
	return 0, bencherr.E(bencherr.Invalid, "iteration policy does not cover size %d", size)
}
