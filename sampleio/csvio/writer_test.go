package csvio_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/brimdata/sortbench/order"
	"github.com/brimdata/sortbench/sample"
	"github.com/brimdata/sortbench/sampleio"
	"github.com/brimdata/sortbench/sampleio/csvio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := csvio.NewWriter(sampleio.NopCloser(&buf), csvio.WriterOpts{})
	require.NoError(t, w.Write(&sample.Sample{Size: 50, Order: order.Shuffle, Sorter: "PassPerItem", Duration: 1500 * time.Nanosecond}))
	require.NoError(t, w.Write(&sample.Sample{Size: 100, Order: order.Asc, Sorter: "WhileNeeded", Duration: 42}))
	require.NoError(t, w.Close())
	expected := `size,order,sorter,duration_ns
50,shuffled,PassPerItem,1500
100,ascending,WhileNeeded,42
`
	assert.Equal(t, expected, buf.String())
}

func TestNoHeader(t *testing.T) {
	var buf bytes.Buffer
	w := csvio.NewWriter(sampleio.NopCloser(&buf), csvio.WriterOpts{NoHeader: true})
	require.NoError(t, w.Write(&sample.Sample{Size: 0, Order: order.Desc, Sorter: "UntilNoChange"}))
	require.NoError(t, w.Close())
	assert.Equal(t, "0,descending,UntilNoChange,0\n", buf.String())
}
