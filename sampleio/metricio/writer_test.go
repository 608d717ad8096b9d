package metricio_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/brimdata/sortbench/order"
	"github.com/brimdata/sortbench/sample"
	"github.com/brimdata/sortbench/sampleio/metricio"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	reg := prometheus.NewRegistry()
	var c sample.Collector
	w := metricio.NewWriter(&c, reg)
	for i := 0; i < 3; i++ {
		require.NoError(t, w.Write(&sample.Sample{Size: 50, Order: order.Asc, Sorter: "WhileNeeded", Duration: time.Microsecond}))
	}
	require.NoError(t, w.Write(&sample.Sample{Size: 50, Order: order.Desc, Sorter: "PassPerItem", Duration: time.Millisecond}))
	require.NoError(t, w.Close())
	assert.Len(t, c.Samples, 4)

	families, err := reg.Gather()
	require.NoError(t, err)
	series := map[string]int{}
	for _, mf := range families {
		series[mf.GetName()] = len(mf.GetMetric())
	}
	assert.Equal(t, 2, series["sortbench_samples_total"])
	assert.Equal(t, 2, series["sortbench_sort_duration_seconds"])

	path := filepath.Join(t.TempDir(), "metrics.prom")
	require.NoError(t, prometheus.WriteToTextfile(path, reg))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `sortbench_samples_total{order="ascending",sorter="WhileNeeded"} 3`)
	assert.Contains(t, string(b), `sortbench_sort_duration_seconds_count{order="descending",size="50",sorter="PassPerItem"} 1`)
}
