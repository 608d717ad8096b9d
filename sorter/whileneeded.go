package sorter

import "golang.org/x/exp/constraints"

// WhileNeeded ends each pass at the position of the previous pass's last
// swap.  Everything at or beyond that position is already in its final
// place and is never touched again.
type WhileNeeded[T constraints.Ordered] struct{}

func (WhileNeeded[T]) Name() string { return "WhileNeeded" }

func (WhileNeeded[T]) Sort(s []T) {
	n := len(s)
	for {
		last := 0
		for i := 1; i < n; i++ {
			if s[i-1] > s[i] {
				s[i-1], s[i] = s[i], s[i-1]
				last = i
			}
		}
		if last == 0 {
			return
		}
		n = last
	}
}

func (WhileNeeded[T]) SortStats(s []T) Stats {
	var stats Stats
	n := len(s)
	for {
		stats.Passes++
		last := 0
		for i := 1; i < n; i++ {
			stats.Comparisons++
			if s[i-1] > s[i] {
				s[i-1], s[i] = s[i], s[i-1]
				stats.Swaps++
				last = i
			}
		}
		if last == 0 {
			return stats
		}
		n = last
	}
}
