package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/brimdata/sortbench/sample"
)

var header = []string{"size", "order", "sorter", "duration_ns"}

type Writer struct {
	writer  io.WriteCloser
	encoder *csv.Writer
	header  bool
	strings []string
}

type WriterOpts struct {
	NoHeader bool
}

func NewWriter(w io.WriteCloser, opts WriterOpts) *Writer {
	return &Writer{
		writer:  w,
		encoder: csv.NewWriter(w),
		header:  opts.NoHeader,
		strings: make([]string, len(header)),
	}
}

func (w *Writer) Close() error {
	err := w.Flush()
	if closeErr := w.writer.Close(); err == nil {
		err = closeErr
	}
	return err
}

func (w *Writer) Flush() error {
	w.encoder.Flush()
	return w.encoder.Error()
}

func (w *Writer) Write(s *sample.Sample) error {
	if !w.header {
		if err := w.encoder.Write(header); err != nil {
			return err
		}
		w.header = true
	}
	w.strings[0] = strconv.Itoa(s.Size)
	w.strings[1] = s.Order.String()
	w.strings[2] = s.Sorter
	w.strings[3] = strconv.FormatInt(s.Duration.Nanoseconds(), 10)
	return w.encoder.Write(w.strings)
}
