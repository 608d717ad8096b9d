// Package sorter implements the bubble-sort variants under benchmark.
//
// All variants sort ascending in place with adjacent comparisons and swaps,
// repeating passes over a window of the array.  They differ only in when
// they stop and whether the window shrinks:
//
//	PassPerItem    exactly n passes over [0, n-1), no early exit
//	UntilNoChange  passes over the full range until one makes no swap
//	WhileNeeded    the next pass ends at the last swap of the current one
package sorter

import (
	"strings"

	"github.com/brimdata/sortbench/bencherr"
	"golang.org/x/exp/constraints"
)

// Sorter sorts a slice of ordered elements in place.
type Sorter[T constraints.Ordered] interface {
	Name() string
	Sort([]T)
}

// Counter is implemented by sorters that can report the work performed by
// a sort.  The counting path is never the one timed.
type Counter[T constraints.Ordered] interface {
	Sorter[T]
	SortStats([]T) Stats
}

type Stats struct {
	Passes      int
	Comparisons int
	Swaps       int
}

// Names lists the variants in their configuration order.
var Names = []string{"PassPerItem", "UntilNoChange", "WhileNeeded"}

// All returns one instance of each variant in configuration order.
func All[T constraints.Ordered]() []Counter[T] {
	return []Counter[T]{PassPerItem[T]{}, UntilNoChange[T]{}, WhileNeeded[T]{}}
}

// Lookup returns the variant with the given name, ignoring case.
func Lookup[T constraints.Ordered](name string) (Counter[T], error) {
	for _, s := range All[T]() {
		if strings.EqualFold(s.Name(), name) {
			return s, nil
		}
	}
	return nil, bencherr.E(bencherr.Invalid, "no such sorter %q (values: %s)", name, strings.Join(Names, ", "))
}

// Verify returns a ContractViolation error if s is not non-decreasing.
func Verify[T constraints.Ordered](s []T) error {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return bencherr.E(bencherr.ContractViolation, "element %d (%v) is greater than element %d (%v)", i-1, s[i-1], i, s[i])
		}
	}
	return nil
}
