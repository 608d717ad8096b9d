package root

import (
	"flag"

	"github.com/brimdata/sortbench/cli"
	"github.com/brimdata/sortbench/cli/logflags"
	"github.com/brimdata/sortbench/pkg/charm"
	"go.uber.org/zap"
)

var Sortbench = &charm.Spec{
	Name:  "sortbench",
	Usage: "sortbench <command> [options]",
	Short: "benchmark bubble-sort variants",
	Long: `
sortbench times three bubble-sort variants over synthetic arrays of
integers, floats, strings, or timestamps.  Arrays are generated in
ascending, descending, or shuffled order and regenerated before every
trial, so only the sort itself is timed.

The "run" command streams one sample per recorded trial.  The "ratio"
command summarizes how each variant compares to a baseline.  The "trace"
command counts the passes, comparisons, and swaps each variant performs.
`,
	New: New,
}

type Command struct {
	charm.Command
	cli.Flags
	LogFlags logflags.Flags
}

func New(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
	c := &Command{}
	c.SetFlags(f)
	c.LogFlags.SetFlags(f)
	return c, nil
}

// Init initializes the global flags along with all and opens the logger.
// The returned function flushes the logger and stops any profiling.
func (c *Command) Init(all ...cli.Initializer) (*zap.Logger, func(), error) {
	cleanup, err := c.Flags.Init(append([]cli.Initializer{&c.LogFlags}, all...)...)
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.LogFlags.Open()
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return logger, func() {
		// Syncing stderr fails on some platforms.
		logger.Sync()
		cleanup()
	}, nil
}

func (c *Command) Run(args []string) error {
	if len(args) == 0 {
		return charm.NeedHelp
	}
	return charm.ErrNoRun
}
