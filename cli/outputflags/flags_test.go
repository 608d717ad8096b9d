package outputflags_test

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/brimdata/sortbench/cli/outputflags"
	"github.com/brimdata/sortbench/order"
	"github.com/brimdata/sortbench/sample"
	"github.com/brimdata/sortbench/sampleio/sqlio"
	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*outputflags.Flags, error) {
	t.Helper()
	var f outputflags.Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f.SetFlags(fs)
	require.NoError(t, fs.Parse(args))
	return &f, f.Init()
}

func TestUnknownFormat(t *testing.T) {
	_, err := parse(t, "-f", "xml")
	assert.ErrorContains(t, err, `unknown format: "xml"`)
}

func TestOpenAll(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "samples.csv")
	db := filepath.Join(dir, "samples.db")
	metrics := filepath.Join(dir, "sortbench.prom")
	f, err := parse(t, "-o", out, "-db", db, "-metrics", metrics)
	require.NoError(t, err)
	assert.False(t, f.Terminal())

	w, err := f.Open(sqlio.Run{ID: ksuid.New(), Started: time.Now(), ElementType: "int"})
	require.NoError(t, err)
	require.NoError(t, w.Write(&sample.Sample{Size: 10, Order: order.Asc, Sorter: "WhileNeeded", Duration: 250}))
	require.NoError(t, w.Close())
	require.NoError(t, f.Finish())

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "size,order,sorter,duration_ns\n10,ascending,WhileNeeded,250\n", string(b))
	assert.FileExists(t, db)
	b, err = os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(b), `sortbench_samples_total{order="ascending",sorter="WhileNeeded"} 1`)
}

func TestFinishWithoutMetrics(t *testing.T) {
	f, err := parse(t, "-f", "json", "-o", filepath.Join(t.TempDir(), "out.ndjson"))
	require.NoError(t, err)
	w, err := f.Open(sqlio.Run{ID: ksuid.New()})
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, f.Finish())
}

func TestOutputExtension(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		format   string
		name     string
		expected string
	}{
		{"csv", "samples", "samples.csv"},
		{"json", "samples", "samples.ndjson"},
		{"table", "samples", "samples.txt"},
		{"json", "samples.log", "samples.log"},
	}
	for _, c := range cases {
		f, err := parse(t, "-f", c.format, "-o", filepath.Join(dir, c.name))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, c.expected), f.OutputFile(), c.format)
	}
	f, err := parse(t, "-o", "-")
	require.NoError(t, err)
	assert.Empty(t, f.OutputFile())
}
