package textio_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/brimdata/sortbench/order"
	"github.com/brimdata/sortbench/sample"
	"github.com/brimdata/sortbench/sampleio"
	"github.com/brimdata/sortbench/sampleio/textio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := textio.NewWriter(sampleio.NopCloser(&buf))
	require.NoError(t, w.Write(&sample.Sample{Size: 5000, Order: order.Desc, Sorter: "UntilNoChange", Duration: 3 * time.Millisecond}))
	require.NoError(t, w.Write(&sample.Sample{Size: 50, Order: order.Asc, Sorter: "WhileNeeded", Duration: 7}))
	require.NoError(t, w.Close())
	assert.Equal(t, "5000,descending,UntilNoChange,3000000\n50,ascending,WhileNeeded,7\n", buf.String())
}
