package trace

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/brimdata/sortbench/cmd/sortbench/root"
	"github.com/brimdata/sortbench/gen"
	"github.com/brimdata/sortbench/mapper"
	"github.com/brimdata/sortbench/order"
	"github.com/brimdata/sortbench/pkg/charm"
	"github.com/brimdata/sortbench/sorter"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

var Cmd = &charm.Spec{
	Name:  "trace",
	Usage: "trace [options]",
	Short: "count the passes, comparisons, and swaps of each sorter",
	Long: `
The trace command generates one array per ordering and sorts a copy of it
with every sorter, printing how many passes, comparisons, and swaps each
performed.  Nothing is timed.

On an ascending array UntilNoChange and WhileNeeded stop after one pass
while PassPerItem always makes one pass per element.
`,
	New: New,
}

type Command struct {
	*root.Command
	size   int
	typ    string
	orders order.List
	seed   uint64
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{
		Command: parent.(*root.Command),
		orders:  append(order.List(nil), order.All...),
	}
	f.IntVar(&c.size, "size", 1000, "array size")
	f.StringVar(&c.typ, "type", "int", "element type (values: "+strings.Join(mapper.Types, ", ")+")")
	f.Var(&c.orders, "orders", "comma-separated orderings (values: ascending, descending, shuffled)")
	f.Uint64Var(&c.seed, "seed", 0, "seed for shuffled arrays (0 picks one from the clock)")
	return c, nil
}

func (c *Command) Run(args []string) error {
	if len(args) > 0 {
		return errors.New("trace takes no arguments")
	}
	if !slices.Contains(mapper.Types, c.typ) {
		return fmt.Errorf("unknown element type %q (values: %s)", c.typ, strings.Join(mapper.Types, ", "))
	}
	logger, cleanup, err := c.Init()
	if err != nil {
		return err
	}
	defer cleanup()
	r, seed := gen.NewRand(c.seed)
	logger.Info("Tracing sorters", zap.Int("size", c.size), zap.Uint64("seed", seed))
	switch c.typ {
	case "int":
		return trace(os.Stdout, c.orders, c.size, mapper.Int, r)
	case "float":
		return trace(os.Stdout, c.orders, c.size, mapper.Float, r)
	case "string":
		return trace(os.Stdout, c.orders, c.size, mapper.String, r)
	}
	return trace(os.Stdout, c.orders, c.size, mapper.Time, r)
}

// trace sorts a copy of one array per ordering with every sorter and
// writes a table of the work each did.
func trace[T constraints.Ordered](w io.Writer, orders []order.Which, size int, fn mapper.Func[T], r *rand.Rand) error {
	if err := mapper.Validate(size, fn); err != nil {
		return err
	}
	table := tabwriter.NewWriter(w, 0, 8, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintln(table, "ORDER\tSORTER\tPASSES\tCOMPARISONS\tSWAPS\t")
	for _, which := range orders {
		orig, err := gen.Generate(which, size, fn, r)
		if err != nil {
			return err
		}
		for _, s := range sorter.All[T]() {
			vals := slices.Clone(orig)
			stats := s.SortStats(vals)
			if err := sorter.Verify(vals); err != nil {
				return fmt.Errorf("%s, %s: %w", which, s.Name(), err)
			}
			fmt.Fprintf(table, "%s\t%s\t%d\t%d\t%d\t\n", which, s.Name(), stats.Passes, stats.Comparisons, stats.Swaps)
		}
	}
	return table.Flush()
}
