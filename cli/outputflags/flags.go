package outputflags

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/brimdata/sortbench/sample"
	"github.com/brimdata/sortbench/sampleio"
	"github.com/brimdata/sortbench/sampleio/anyio"
	"github.com/brimdata/sortbench/sampleio/metricio"
	"github.com/brimdata/sortbench/sampleio/sqlio"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"
	"golang.org/x/term"
)

type Flags struct {
	anyio.WriterOpts
	outputFile  string
	dbFile      string
	metricsFile string
	registry    *prometheus.Registry
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&f.Format, "f", "csv", "format for output samples ["+strings.Join(anyio.Formats, ",")+"]")
	fs.BoolVar(&f.CSV.NoHeader, "noheader", false, "omit the csv header line")
	fs.StringVar(&f.outputFile, "o", "", "write samples to output file (an extension for the format is added if the name has none)")
	fs.StringVar(&f.dbFile, "db", "", "also record samples in this SQLite database")
	fs.StringVar(&f.metricsFile, "metrics", "", "write Prometheus metrics for the run to this file when done")
}

func (f *Flags) Init() error {
	if f.outputFile == "-" {
		f.outputFile = ""
	}
	if _, err := anyio.NewWriter(sampleio.NopCloser(nil), f.WriterOpts); err != nil {
		return err
	}
	if f.outputFile != "" && filepath.Ext(f.outputFile) == "" {
		f.outputFile += anyio.Extension(f.Format)
	}
	return nil
}

// OutputFile returns the name samples are written to, or "" for stdout.
func (f *Flags) OutputFile() string {
	return f.outputFile
}

// Terminal reports whether samples are going to a terminal.
func (f *Flags) Terminal() bool {
	return f.outputFile == "" && term.IsTerminal(int(os.Stdout.Fd()))
}

// Open returns the writer for a run: the formatted output, plus the
// SQLite database if -db was given, with metrics collected on the way if
// -metrics was given.
func (f *Flags) Open(run sqlio.Run) (sample.WriteCloser, error) {
	out, err := f.openOutput()
	if err != nil {
		return nil, err
	}
	w, err := anyio.NewWriter(out, f.WriterOpts)
	if err != nil {
		return nil, multierr.Append(err, out.Close())
	}
	writers := []sample.WriteCloser{w}
	if f.dbFile != "" {
		db, err := sqlio.Open(f.dbFile, run)
		if err != nil {
			return nil, multierr.Append(err, w.Close())
		}
		writers = append(writers, db)
	}
	tee := sample.Tee(writers...)
	if f.metricsFile == "" {
		return tee, nil
	}
	f.registry = prometheus.NewRegistry()
	return metricio.NewWriter(tee, f.registry), nil
}

func (f *Flags) openOutput() (io.WriteCloser, error) {
	if f.outputFile == "" {
		return sampleio.NopCloser(os.Stdout), nil
	}
	return os.Create(f.outputFile)
}

// Finish writes the metrics file, if any.  Call it after the writer
// returned by Open is closed.
func (f *Flags) Finish() error {
	if f.registry == nil {
		return nil
	}
	return prometheus.WriteToTextfile(f.metricsFile, f.registry)
}
