package sorter_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/brimdata/sortbench/bencherr"
	"github.com/brimdata/sortbench/gen"
	"github.com/brimdata/sortbench/mapper"
	"github.com/brimdata/sortbench/order"
	"github.com/brimdata/sortbench/sorter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

func checkSorts[T constraints.Ordered](t *testing.T, input []T) {
	t.Helper()
	expected := slices.Clone(input)
	slices.Sort(expected)
	for _, s := range sorter.All[T]() {
		a := slices.Clone(input)
		s.Sort(a)
		assert.Equal(t, expected, a, "%s on %v", s.Name(), input)
		require.NoError(t, sorter.Verify(a))

		b := slices.Clone(input)
		s.SortStats(b)
		assert.Equal(t, expected, b, "%s (counted) on %v", s.Name(), input)
	}
}

func TestSortsPermutation(t *testing.T) {
	checkSorts(t, []int{})
	checkSorts(t, []int{1})
	checkSorts(t, []int{2, 1})
	checkSorts(t, []int{3, 1, 2, 3, 1, 0, -5})
	checkSorts(t, []string{"pear", "apple", "fig", "apple"})
	checkSorts(t, []float64{2.5, -1, 0, 2.5, 1e9})

	r := rand.New(rand.NewPCG(1, 2))
	for n := 0; n < 40; n++ {
		a := make([]int, n)
		for i := range a {
			// Small range so duplicates are common.
			a[i] = r.IntN(8)
		}
		checkSorts(t, a)
	}
}

func TestSortsGenerated(t *testing.T) {
	r, _ := gen.NewRand(99)
	for _, which := range order.All {
		for _, n := range []int{0, 1, 2, 3, 64, 257} {
			a, err := gen.Generate(which, n, mapper.String, r)
			require.NoError(t, err)
			checkSorts(t, a)
		}
	}
}

func TestAlreadySorted(t *testing.T) {
	for _, n := range []int{1, 2, 10, 100} {
		asc, err := gen.Generate(order.Asc, n, mapper.Int, nil)
		require.NoError(t, err)

		stats := sorter.UntilNoChange[int64]{}.SortStats(slices.Clone(asc))
		assert.Equal(t, sorter.Stats{Passes: 1, Comparisons: n - 1}, stats, "n=%d", n)

		stats = sorter.WhileNeeded[int64]{}.SortStats(slices.Clone(asc))
		assert.Equal(t, sorter.Stats{Passes: 1, Comparisons: n - 1}, stats, "n=%d", n)

		stats = sorter.PassPerItem[int64]{}.SortStats(slices.Clone(asc))
		assert.Equal(t, sorter.Stats{Passes: n, Comparisons: n * (n - 1)}, stats, "n=%d", n)
	}
}

func TestDescendingComparisons(t *testing.T) {
	for n := 2; n <= 64; n++ {
		desc, err := gen.Generate(order.Desc, n, mapper.Int, nil)
		require.NoError(t, err)
		ppi := sorter.PassPerItem[int64]{}.SortStats(slices.Clone(desc))
		unc := sorter.UntilNoChange[int64]{}.SortStats(slices.Clone(desc))
		wn := sorter.WhileNeeded[int64]{}.SortStats(slices.Clone(desc))
		assert.LessOrEqual(t, wn.Comparisons, unc.Comparisons, "n=%d", n)
		assert.LessOrEqual(t, unc.Comparisons, ppi.Comparisons, "n=%d", n)
		assert.Equal(t, n*(n-1)/2, wn.Comparisons, "n=%d", n)
		// Every variant does the same swaps: one per inversion.
		assert.Equal(t, n*(n-1)/2, ppi.Swaps, "n=%d", n)
		assert.Equal(t, ppi.Swaps, unc.Swaps, "n=%d", n)
		assert.Equal(t, ppi.Swaps, wn.Swaps, "n=%d", n)
	}
}

func TestWhileNeededNeverExceedsUntilNoChange(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for trial := 0; trial < 200; trial++ {
		a := make([]int, r.IntN(50))
		for i := range a {
			a[i] = r.IntN(100)
		}
		unc := sorter.UntilNoChange[int]{}.SortStats(slices.Clone(a))
		wn := sorter.WhileNeeded[int]{}.SortStats(slices.Clone(a))
		assert.LessOrEqual(t, wn.Comparisons, unc.Comparisons, "input %v", a)
		assert.LessOrEqual(t, wn.Passes, unc.Passes, "input %v", a)
	}
}

func TestPassPerItemDescendingFour(t *testing.T) {
	a := []int{3, 2, 1, 0}
	stats := sorter.PassPerItem[int]{}.SortStats(a)
	assert.Equal(t, []int{0, 1, 2, 3}, a)
	assert.Equal(t, sorter.Stats{Passes: 4, Comparisons: 12, Swaps: 6}, stats)
}

func TestWhileNeededWindow(t *testing.T) {
	// After each pass the window ends at the index of its last swap, so
	// the elements from there on are never compared again.
	cases := []struct {
		input         []int
		whileNeeded   sorter.Stats
		untilNoChange sorter.Stats
	}{
		{
			// Last swap at index 1: the second pass has nothing left to do.
			input:         []int{1, 0, 2, 3, 4, 5},
			whileNeeded:   sorter.Stats{Passes: 2, Comparisons: 5, Swaps: 1},
			untilNoChange: sorter.Stats{Passes: 2, Comparisons: 10, Swaps: 1},
		},
		{
			input:         []int{2, 0, 1, 3, 4},
			whileNeeded:   sorter.Stats{Passes: 2, Comparisons: 5, Swaps: 2},
			untilNoChange: sorter.Stats{Passes: 2, Comparisons: 8, Swaps: 2},
		},
		{
			input:         []int{3, 0, 1, 2, 4, 5, 6},
			whileNeeded:   sorter.Stats{Passes: 2, Comparisons: 8, Swaps: 3},
			untilNoChange: sorter.Stats{Passes: 2, Comparisons: 12, Swaps: 3},
		},
		{
			// Last swap at index 5 of 8: the second pass covers [0, 5).
			input:         []int{0, 2, 1, 3, 5, 4, 6, 7},
			whileNeeded:   sorter.Stats{Passes: 2, Comparisons: 11, Swaps: 2},
			untilNoChange: sorter.Stats{Passes: 2, Comparisons: 14, Swaps: 2},
		},
		{
			// The first pass moves 4 to the end and the second pass's
			// last swap is at index 1, so the third pass compares nothing.
			input:         []int{1, 4, 0, 2, 3},
			whileNeeded:   sorter.Stats{Passes: 3, Comparisons: 7, Swaps: 4},
			untilNoChange: sorter.Stats{Passes: 3, Comparisons: 12, Swaps: 4},
		},
	}
	for _, c := range cases {
		wn := slices.Clone(c.input)
		assert.Equal(t, c.whileNeeded, sorter.WhileNeeded[int]{}.SortStats(wn), "input %v", c.input)
		require.NoError(t, sorter.Verify(wn))
		unc := slices.Clone(c.input)
		assert.Equal(t, c.untilNoChange, sorter.UntilNoChange[int]{}.SortStats(unc), "input %v", c.input)
		assert.Equal(t, wn, unc)
	}
}

func TestEmptyIsFree(t *testing.T) {
	for _, s := range sorter.All[int]() {
		stats := s.SortStats(nil)
		assert.Zero(t, stats.Comparisons, s.Name())
		assert.Zero(t, stats.Swaps, s.Name())
	}
}

func TestLookup(t *testing.T) {
	for _, name := range sorter.Names {
		s, err := sorter.Lookup[string](name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}
	s, err := sorter.Lookup[int]("whileneeded")
	require.NoError(t, err)
	assert.Equal(t, "WhileNeeded", s.Name())

	_, err = sorter.Lookup[int]("QuickSort")
	assert.True(t, bencherr.IsInvalid(err))
}

func TestVerify(t *testing.T) {
	require.NoError(t, sorter.Verify([]int{}))
	require.NoError(t, sorter.Verify([]int{1, 1, 2}))
	err := sorter.Verify([]int{1, 3, 2})
	assert.True(t, bencherr.IsContractViolation(err))
	assert.Contains(t, err.Error(), "element 1")
}

func ExampleWhileNeeded() {
	a := []string{"d", "a", "c", "b"}
	stats := sorter.WhileNeeded[string]{}.SortStats(a)
	fmt.Println(a, stats.Passes)
	// Output: [a b c d] 3
}
