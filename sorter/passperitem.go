package sorter

import "golang.org/x/exp/constraints"

// PassPerItem always performs len(s) passes over the whole array whether
// or not the array is already sorted.  Its cost depends only on n.
type PassPerItem[T constraints.Ordered] struct{}

func (PassPerItem[T]) Name() string { return "PassPerItem" }

func (PassPerItem[T]) Sort(s []T) {
	n := len(s)
	for pass := 0; pass < n; pass++ {
		for i := 0; i < n-1; i++ {
			if s[i] > s[i+1] {
				s[i], s[i+1] = s[i+1], s[i]
			}
		}
	}
}

func (PassPerItem[T]) SortStats(s []T) Stats {
	var stats Stats
	n := len(s)
	for pass := 0; pass < n; pass++ {
		stats.Passes++
		for i := 0; i < n-1; i++ {
			stats.Comparisons++
			if s[i] > s[i+1] {
				s[i], s[i+1] = s[i+1], s[i]
				stats.Swaps++
			}
		}
	}
	return stats
}
