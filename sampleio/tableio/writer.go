// Package tableio writes samples as a fixed-width console table.
package tableio

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/brimdata/sortbench/sample"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const header = "SIZE\tORDER\tSORTER\tDURATION_NS"

type Writer struct {
	writer  io.WriteCloser
	table   *tabwriter.Writer
	printer *message.Printer
	limit   int
	nline   int
}

type WriterOpts struct {
	// Limit is the number of rows after which the table is flushed and the
	// header repeated.  Zero means 1000.
	Limit int
}

func NewWriter(w io.WriteCloser, opts WriterOpts) *Writer {
	limit := opts.Limit
	if limit <= 0 {
		limit = 1000
	}
	return &Writer{
		writer:  w,
		table:   tabwriter.NewWriter(w, 0, 8, 1, ' ', 0),
		printer: message.NewPrinter(language.English),
		limit:   limit,
	}
}

func (w *Writer) Write(s *sample.Sample) error {
	if w.nline == 0 {
		if _, err := fmt.Fprintln(w.table, header); err != nil {
			return err
		}
	}
	if _, err := w.printer.Fprintf(w.table, "%d\t%s\t%s\t%d\n", s.Size, s.Order, s.Sorter, s.Duration.Nanoseconds()); err != nil {
		return err
	}
	w.nline++
	if w.nline >= w.limit {
		w.nline = 0
		return w.table.Flush()
	}
	return nil
}

func (w *Writer) Close() error {
	err := w.table.Flush()
	if closeErr := w.writer.Close(); err == nil {
		err = closeErr
	}
	return err
}
