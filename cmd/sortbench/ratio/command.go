package ratio

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/brimdata/sortbench/bench"
	"github.com/brimdata/sortbench/cmd/sortbench/root"
	"github.com/brimdata/sortbench/mapper"
	"github.com/brimdata/sortbench/order"
	"github.com/brimdata/sortbench/pkg/charm"
	"github.com/brimdata/sortbench/report"
	"github.com/brimdata/sortbench/sample"
	"github.com/brimdata/sortbench/sorter"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

var Cmd = &charm.Spec{
	Name:  "ratio",
	Usage: "ratio [options]",
	Short: "compare each sorter's mean time with a baseline sorter",
	Long: `
The ratio command sorts arrays of one size and one ordering with every
sorter, once for each element type given by -types, and prints a table
per type of each sorter's mean time and its ratio to the -baseline
sorter's mean.  A ratio of 2 means the sorter took twice as long as the
baseline.
`,
	New: New,
}

type Command struct {
	*root.Command
	size       int
	iterations int
	order      order.Which
	types      string
	baseline   string
	seed       uint64
	noWarmup   bool
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{Command: parent.(*root.Command), order: order.Shuffle}
	f.IntVar(&c.size, "size", 5000, "array size")
	f.IntVar(&c.iterations, "iterations", 1000, "recorded trials per sorter")
	f.TextVar(&c.order, "order", order.Shuffle, "array ordering (values: ascending, descending, shuffled)")
	f.StringVar(&c.types, "types", "int,time", "comma-separated element types (values: "+strings.Join(mapper.Types, ", ")+")")
	f.StringVar(&c.baseline, "baseline", sorter.Names[0], "sorter the others are compared with")
	f.Uint64Var(&c.seed, "seed", 0, "seed for shuffled arrays (0 picks one from the clock)")
	f.BoolVar(&c.noWarmup, "nowarmup", false, "skip the warm-up run")
	return c, nil
}

func (c *Command) Run(args []string) error {
	if len(args) > 0 {
		return errors.New("ratio takes no arguments")
	}
	logger, cleanup, err := c.Init()
	if err != nil {
		return err
	}
	defer cleanup()
	types, err := parseTypes(c.types)
	if err != nil {
		return err
	}
	conf := bench.DefaultConfig()
	conf.Sizes = []int{c.size}
	conf.Orders = []order.Which{c.order}
	conf.Iterations = bench.Fixed(c.iterations)
	conf.Seed = c.seed
	conf.Warmup.Disabled = c.noWarmup
	for k, typ := range types {
		var samples []sample.Sample
		switch typ {
		case "int":
			samples, err = collect(conf, mapper.Int, logger)
		case "float":
			samples, err = collect(conf, mapper.Float, logger)
		case "string":
			samples, err = collect(conf, mapper.String, logger)
		case "time":
			samples, err = collect(conf, mapper.Time, logger)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", typ, err)
		}
		ratios, err := report.Ratios(report.Averages(samples), c.baseline)
		if err != nil {
			return err
		}
		if k > 0 {
			fmt.Println()
		}
		if err := report.Write(os.Stdout, typ+" results", ratios); err != nil {
			return err
		}
	}
	return nil
}

func parseTypes(s string) ([]string, error) {
	var types []string
	for _, typ := range strings.Split(s, ",") {
		typ = strings.TrimSpace(typ)
		if typ == "" {
			continue
		}
		if !slices.Contains(mapper.Types, typ) {
			return nil, fmt.Errorf("unknown element type %q (values: %s)", typ, strings.Join(mapper.Types, ", "))
		}
		types = append(types, typ)
	}
	if len(types) == 0 {
		return nil, errors.New("no element types")
	}
	return types, nil
}

func collect[T constraints.Ordered](conf bench.Config, fn mapper.Func[T], logger *zap.Logger) ([]sample.Sample, error) {
	runner, err := bench.New(conf, fn, bench.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	var c sample.Collector
	if err := runner.Run(&c); err != nil {
		return nil, err
	}
	return c.Samples, nil
}
