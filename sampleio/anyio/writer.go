// Package anyio selects a sample writer by format name.
package anyio

import (
	"fmt"
	"io"
	"strings"

	"github.com/brimdata/sortbench/sample"
	"github.com/brimdata/sortbench/sampleio/csvio"
	"github.com/brimdata/sortbench/sampleio/jsonio"
	"github.com/brimdata/sortbench/sampleio/tableio"
	"github.com/brimdata/sortbench/sampleio/textio"
)

// Formats lists the names accepted by NewWriter.
var Formats = []string{"csv", "json", "table", "text"}

type WriterOpts struct {
	Format string
	CSV    csvio.WriterOpts
	Table  tableio.WriterOpts
}

func NewWriter(w io.WriteCloser, opts WriterOpts) (sample.WriteCloser, error) {
	switch opts.Format {
	case "csv":
		return csvio.NewWriter(w, opts.CSV), nil
	case "json":
		return jsonio.NewWriter(w), nil
	case "table":
		return tableio.NewWriter(w, opts.Table), nil
	case "text":
		return textio.NewWriter(w), nil
	}
	return nil, fmt.Errorf("unknown format: %q (values: %s)", opts.Format, strings.Join(Formats, ", "))
}

// Extension returns the conventional file extension for format.
func Extension(format string) string {
	switch format {
	case "csv", "text":
		return ".csv"
	case "json":
		return ".ndjson"
	case "table":
		return ".txt"
	}
	return ""
}
