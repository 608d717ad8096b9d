package benchflags

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/brimdata/sortbench/bench"
	"github.com/brimdata/sortbench/mapper"
	"github.com/brimdata/sortbench/order"
	"github.com/pbnjay/memory"
	"golang.org/x/exp/slices"
)

// Flags configures a benchmark run.  A -config file is applied when the
// flag is parsed, so flags given after it override the file.
type Flags struct {
	Config bench.Config
	Type   string
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	f.Config = bench.DefaultConfig()
	fs.Func("config", "path of benchmark yaml config file", func(s string) error {
		conf, err := bench.LoadConfig(s)
		if err != nil {
			return err
		}
		f.Config = conf
		return nil
	})
	fs.StringVar(&f.Type, "type", "int", "element type (values: "+strings.Join(mapper.Types, ", ")+")")
	fs.Var((*intList)(&f.Config.Sizes), "sizes", "comma-separated array sizes")
	fs.Var((*order.List)(&f.Config.Orders), "orders", "comma-separated orderings (values: ascending, descending, shuffled)")
	fs.Var((*stringList)(&f.Config.Sorters), "sorters", "comma-separated sorters (values: PassPerItem, UntilNoChange, WhileNeeded)")
	fs.Func("iterations", "use this iteration count for every size instead of the size-tiered default", func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		f.Config.Iterations = bench.Fixed(n)
		return nil
	})
	fs.Func("skip", "number of leading trials to discard (default 10% of iterations, rounded up)", func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		f.Config.Skip = &n
		return nil
	})
	fs.Uint64Var(&f.Config.Seed, "seed", 0, "seed for shuffled arrays (0 picks one from the clock)")
	fs.BoolVar(&f.Config.Verify, "verify", false, "check every sorted array (outside the timed interval)")
	fs.BoolVar(&f.Config.GC, "gc", false, "run the garbage collector before every trial")
	fs.BoolVar(&f.Config.Warmup.Disabled, "nowarmup", false, "skip the warm-up run")
	fs.IntVar(&f.Config.Warmup.Size, "warmup.size", f.Config.Warmup.Size, "array size of the warm-up run")
	fs.IntVar(&f.Config.Warmup.Iterations, "warmup.iterations", f.Config.Warmup.Iterations, "iterations of the warm-up run")
}

func (f *Flags) Init() error {
	if !slices.Contains(mapper.Types, f.Type) {
		return fmt.Errorf("unknown element type %q (values: %s)", f.Type, strings.Join(mapper.Types, ", "))
	}
	return f.Config.Validate()
}

// MemoryWarning returns a non-nil error if the largest array of the run
// would take more than a quarter of physical memory.
func (f *Flags) MemoryWarning() error {
	total := memory.TotalMemory()
	if total == 0 {
		return nil
	}
	need := uint64(f.Config.MaxSize()) * elementBytes(f.Type)
	if need > total/4 {
		return fmt.Errorf("largest array needs about %d MiB of %d MiB physical memory", need>>20, total>>20)
	}
	return nil
}

func elementBytes(typ string) uint64 {
	if typ == "string" {
		// String header plus the bytes of a mapper.StringWidth value.
		return 16 + mapper.StringWidth
	}
	return 8
}

type intList []int

func (l intList) String() string {
	ss := make([]string, 0, len(l))
	for _, n := range l {
		ss = append(ss, strconv.Itoa(n))
	}
	return strings.Join(ss, ",")
}

func (l *intList) Set(s string) error {
	var list intList
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return errors.New("sizes must be integers")
		}
		list = append(list, n)
	}
	*l = list
	return nil
}

type stringList []string

func (l stringList) String() string {
	return strings.Join(l, ",")
}

func (l *stringList) Set(s string) error {
	var list stringList
	for _, field := range strings.Split(s, ",") {
		if field = strings.TrimSpace(field); field != "" {
			list = append(list, field)
		}
	}
	*l = list
	return nil
}
