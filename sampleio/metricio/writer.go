// Package metricio exports Prometheus metrics for the samples passing
// through it on their way to another writer.
package metricio

import (
	"strconv"

	"github.com/brimdata/sortbench/sample"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Writer struct {
	writer    sample.WriteCloser
	samples   *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewWriter wraps w.  If registerer is nil a private registry is used.
func NewWriter(w sample.WriteCloser, registerer prometheus.Registerer) *Writer {
	if registerer == nil {
		registerer = prometheus.NewRegistry()
	}
	factory := promauto.With(registerer)
	return &Writer{
		writer: w,
		samples: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sortbench_samples_total",
				Help: "Number of recorded sort trials.",
			},
			[]string{"sorter", "order"},
		),
		durations: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sortbench_sort_duration_seconds",
				Help:    "Wall-clock duration of a recorded sort trial.",
				Buckets: prometheus.ExponentialBuckets(1e-7, 4, 16),
			},
			[]string{"sorter", "order", "size"},
		),
	}
}

func (w *Writer) Write(s *sample.Sample) error {
	order := s.Order.String()
	w.samples.WithLabelValues(s.Sorter, order).Inc()
	w.durations.WithLabelValues(s.Sorter, order, strconv.Itoa(s.Size)).Observe(s.Duration.Seconds())
	return w.writer.Write(s)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}
