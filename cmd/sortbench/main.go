package main

import (
	"fmt"
	"os"

	"github.com/brimdata/sortbench/cmd/sortbench/ratio"
	"github.com/brimdata/sortbench/cmd/sortbench/root"
	"github.com/brimdata/sortbench/cmd/sortbench/run"
	"github.com/brimdata/sortbench/cmd/sortbench/trace"
	"github.com/brimdata/sortbench/pkg/charm"
)

func main() {
	sortbench := root.Sortbench
	sortbench.Add(charm.Help)
	sortbench.Add(run.Cmd)
	sortbench.Add(ratio.Cmd)
	sortbench.Add(trace.Cmd)
	if err := sortbench.ExecRoot(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
