package jsonio_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/brimdata/sortbench/order"
	"github.com/brimdata/sortbench/sample"
	"github.com/brimdata/sortbench/sampleio"
	"github.com/brimdata/sortbench/sampleio/jsonio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := jsonio.NewWriter(sampleio.NopCloser(&buf))
	require.NoError(t, w.Write(&sample.Sample{Size: 100, Order: order.Desc, Sorter: "WhileNeeded", Duration: 2 * time.Microsecond}))
	require.NoError(t, w.Write(&sample.Sample{Size: 0, Order: order.Shuffle, Sorter: "PassPerItem"}))
	require.NoError(t, w.Close())
	expected := `{"size":100,"order":"descending","sorter":"WhileNeeded","duration_ns":2000}
{"size":0,"order":"shuffled","sorter":"PassPerItem","duration_ns":0}
`
	assert.Equal(t, expected, buf.String())
}
