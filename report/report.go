// Package report summarizes collected samples as per-combination averages
// and as ratios against a baseline sorter.  It is a consumer of the sample
// stream and plays no part in measurement.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/brimdata/sortbench/bencherr"
	"github.com/brimdata/sortbench/order"
	"github.com/brimdata/sortbench/sample"
)

type Key struct {
	Size   int
	Order  order.Which
	Sorter string
}

type Average struct {
	Key
	N    int
	Mean time.Duration
	// PerElement is the mean duration divided by the size, in nanoseconds.
	PerElement float64
}

// Averages returns the mean duration of each (size, order, sorter)
// combination in the order the combinations first appear.
func Averages(samples []sample.Sample) []Average {
	var keys []Key
	sums := make(map[Key]time.Duration)
	counts := make(map[Key]int)
	for _, s := range samples {
		k := Key{s.Size, s.Order, s.Sorter}
		if counts[k] == 0 {
			keys = append(keys, k)
		}
		sums[k] += s.Duration
		counts[k]++
	}
	avgs := make([]Average, 0, len(keys))
	for _, k := range keys {
		n := counts[k]
		mean := sums[k] / time.Duration(n)
		perElem := float64(mean)
		if k.Size > 0 {
			perElem /= float64(k.Size)
		}
		avgs = append(avgs, Average{Key: k, N: n, Mean: mean, PerElement: perElem})
	}
	return avgs
}

type Ratio struct {
	Average
	Baseline string
	// Ratio is Mean over the baseline's Mean for the same size and order.
	// A zero baseline mean gives +Inf, or NaN when Mean is also zero.
	Ratio float64
}

// Ratios compares each average with the baseline sorter's average for the
// same size and order.
func Ratios(avgs []Average, baseline string) ([]Ratio, error) {
	type group struct {
		size  int
		order order.Which
	}
	base := make(map[group]time.Duration)
	for _, a := range avgs {
		if a.Sorter == baseline {
			base[group{a.Size, a.Order}] = a.Mean
		}
	}
	if len(base) == 0 {
		return nil, bencherr.E(bencherr.Invalid, "no samples for baseline sorter %q", baseline)
	}
	var ratios []Ratio
	for _, a := range avgs {
		b, ok := base[group{a.Size, a.Order}]
		if !ok {
			return nil, bencherr.E(bencherr.Invalid, "no %s samples for size %d, %s", baseline, a.Size, a.Order)
		}
		ratios = append(ratios, Ratio{
			Average:  a,
			Baseline: baseline,
			Ratio:    float64(a.Mean) / float64(b),
		})
	}
	return ratios, nil
}

// Write prints ratios as a table, one row per combination.
func Write(w io.Writer, label string, ratios []Ratio) error {
	table := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	fmt.Fprintf(table, "%s\n", label)
	fmt.Fprintln(table, "SIZE\tORDER\tSORTER\tMEAN\tNS/ELEM\tRATIO")
	for _, r := range ratios {
		fmt.Fprintf(table, "%d\t%s\t%s\t%s\t%.2f\t%.3f\n", r.Size, r.Order, r.Sorter, r.Mean, r.PerElement, r.Ratio)
	}
	return table.Flush()
}
