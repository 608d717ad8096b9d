// Package sample defines the flat record the benchmark driver emits for
// every timed trial and the writer interfaces that consume it.
package sample

import (
	"time"

	"github.com/brimdata/sortbench/order"
	"go.uber.org/multierr"
)

// Sample is one recorded trial.  Duration is wall-clock time with
// nanosecond resolution; writers emit it as an integer count of
// nanoseconds.
type Sample struct {
	Size     int           `json:"size"`
	Order    order.Which   `json:"order"`
	Sorter   string        `json:"sorter"`
	Duration time.Duration `json:"duration_ns"`
}

// PerElement returns the duration divided by the array size in
// nanoseconds, or the raw duration for an empty array.
func (s Sample) PerElement() float64 {
	if s.Size == 0 {
		return float64(s.Duration)
	}
	return float64(s.Duration) / float64(s.Size)
}

type Writer interface {
	Write(*Sample) error
}

type WriteCloser interface {
	Writer
	Close() error
}

// Collector keeps every sample written to it.
type Collector struct {
	Samples []Sample
}

func (c *Collector) Write(s *Sample) error {
	c.Samples = append(c.Samples, *s)
	return nil
}

func (c *Collector) Close() error { return nil }

type tee []WriteCloser

// Tee returns a WriteCloser that writes each sample to every writer in
// turn, stopping at the first error.  Close closes all writers and
// returns their combined errors.
func Tee(writers ...WriteCloser) WriteCloser {
	if len(writers) == 1 {
		return writers[0]
	}
	return tee(writers)
}

func (t tee) Write(s *Sample) error {
	for _, w := range t {
		if err := w.Write(s); err != nil {
			return err
		}
	}
	return nil
}

func (t tee) Close() error {
	var err error
	for _, w := range t {
		err = multierr.Append(err, w.Close())
	}
	return err
}
