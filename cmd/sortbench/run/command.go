package run

import (
	"errors"
	"flag"
	"os"
	"time"

	"github.com/brimdata/sortbench/bench"
	"github.com/brimdata/sortbench/cli/benchflags"
	"github.com/brimdata/sortbench/cli/outputflags"
	"github.com/brimdata/sortbench/cmd/sortbench/root"
	"github.com/brimdata/sortbench/mapper"
	"github.com/brimdata/sortbench/pkg/charm"
	"github.com/brimdata/sortbench/pkg/display"
	"github.com/brimdata/sortbench/pkg/plural"
	"github.com/brimdata/sortbench/sampleio/sqlio"
	"github.com/segmentio/ksuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

var Cmd = &charm.Spec{
	Name:  "run",
	Usage: "run [options]",
	Short: "measure sort times and write one sample per trial",
	Long: `
The run command measures every combination of array size, ordering, and
sorter, in that nesting order, and writes one sample per recorded trial.

Each combination runs a number of trials given by the iteration policy:
2000 for sizes up to 1000, 200 up to 10000, and 20 beyond that, unless
-iterations or a -config file says otherwise.  The first 10% of trials
(rounded up) are discarded.  Before the first combination a warm-up run
sorts 10 shuffled arrays of 10000 elements with PassPerItem; use
-nowarmup to skip it.

Samples are written as CSV with the header "size,order,sorter,duration_ns"
unless -f selects another format.  With -db, samples are also recorded in
a SQLite database under a run ID, and with -metrics a Prometheus text file
summarizing the run is written when it finishes.

When stderr is a terminal, progress is shown there after each
combination.  Nothing is displayed while a trial is being timed.
`,
	New: New,
}

type Command struct {
	*root.Command
	benchFlags  benchflags.Flags
	outputFlags outputflags.Flags
	quiet       bool
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command)}
	c.benchFlags.SetFlags(f)
	c.outputFlags.SetFlags(f)
	f.BoolVar(&c.quiet, "q", false, "don't display progress")
	return c, nil
}

func (c *Command) Run(args []string) error {
	if len(args) > 0 {
		return errors.New("run takes no arguments")
	}
	logger, cleanup, err := c.Init(&c.benchFlags, &c.outputFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	if err := c.benchFlags.MemoryWarning(); err != nil {
		logger.Warn("Large arrays", zap.Error(err))
	}
	switch c.benchFlags.Type {
	case "int":
		return run(c, logger, mapper.Int)
	case "float":
		return run(c, logger, mapper.Float)
	case "string":
		return run(c, logger, mapper.String)
	case "time":
		return run(c, logger, mapper.Time)
	}
	return errors.New("unreachable element type " + c.benchFlags.Type)
}

func run[T constraints.Ordered](c *Command, logger *zap.Logger, fn mapper.Func[T]) (err error) {
	opts := []bench.Option{bench.WithLogger(logger), bench.WithID(ksuid.New())}
	if !c.quiet && term.IsTerminal(int(os.Stderr.Fd())) && !c.outputFlags.Terminal() {
		opts = append(opts, bench.WithProgress(&progress{display.New(os.Stderr), logger}))
	}
	runner, err := bench.New(c.benchFlags.Config, fn, opts...)
	if err != nil {
		return err
	}
	if path := c.outputFlags.OutputFile(); path != "" {
		logger.Info("Writing samples", zap.String("path", path), zap.String("format", c.outputFlags.Format))
	}
	w, err := c.outputFlags.Open(sqlio.Run{
		ID:          runner.ID(),
		Started:     time.Now(),
		ElementType: c.benchFlags.Type,
		Seed:        runner.Seed(),
	})
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, w.Close())
		if err == nil {
			err = c.outputFlags.Finish()
		}
	}()
	return runner.Run(w)
}

type progress struct {
	display *display.Display
	logger  *zap.Logger
}

func (p *progress) Update(s bench.Status) {
	err := p.display.Update("%d/%d  size %d  %s  %s  %s in %s\n",
		s.Done, s.Total, s.Size, s.Order, s.Sorter,
		plural.Count(s.Samples, "sample"), s.Elapsed.Round(time.Millisecond))
	if err != nil {
		p.logger.Debug("Progress display", zap.Error(err))
	}
}
