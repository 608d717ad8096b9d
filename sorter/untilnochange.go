package sorter

import "golang.org/x/exp/constraints"

// UntilNoChange repeats full passes and stops after the first pass that
// swaps nothing.
type UntilNoChange[T constraints.Ordered] struct{}

func (UntilNoChange[T]) Name() string { return "UntilNoChange" }

func (UntilNoChange[T]) Sort(s []T) {
	n := len(s)
	for {
		swapped := false
		for i := 0; i < n-1; i++ {
			if s[i] > s[i+1] {
				s[i], s[i+1] = s[i+1], s[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

func (UntilNoChange[T]) SortStats(s []T) Stats {
	var stats Stats
	n := len(s)
	for {
		stats.Passes++
		swapped := false
		for i := 0; i < n-1; i++ {
			stats.Comparisons++
			if s[i] > s[i+1] {
				s[i], s[i+1] = s[i+1], s[i]
				stats.Swaps++
				swapped = true
			}
		}
		if !swapped {
			return stats
		}
	}
}
