// Package textio writes samples as bare comma-separated lines with no
// header and no quoting, one line per sample.
package textio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/brimdata/sortbench/sample"
)

type Writer struct {
	writer io.WriteCloser
	buf    *bufio.Writer
	line   []byte
}

func NewWriter(w io.WriteCloser) *Writer {
	return &Writer{
		writer: w,
		buf:    bufio.NewWriter(w),
	}
}

func (w *Writer) Write(s *sample.Sample) error {
	line := strconv.AppendInt(w.line[:0], int64(s.Size), 10)
	line = append(line, ',')
	line = append(line, s.Order.String()...)
	line = append(line, ',')
	line = append(line, s.Sorter...)
	line = append(line, ',')
	line = strconv.AppendInt(line, s.Duration.Nanoseconds(), 10)
	line = append(line, '\n')
	w.line = line
	_, err := w.buf.Write(line)
	return err
}

func (w *Writer) Close() error {
	err := w.buf.Flush()
	if closeErr := w.writer.Close(); err == nil {
		err = closeErr
	}
	return err
}
