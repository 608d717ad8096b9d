// Package jsonio writes samples as newline-delimited JSON objects.
package jsonio

import (
	"io"

	"github.com/brimdata/sortbench/sample"
	"github.com/goccy/go-json"
)

type Writer struct {
	writer  io.WriteCloser
	encoder *json.Encoder
}

func NewWriter(w io.WriteCloser) *Writer {
	return &Writer{
		writer:  w,
		encoder: json.NewEncoder(w),
	}
}

func (w *Writer) Write(s *sample.Sample) error {
	return w.encoder.Encode(s)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}
