package bench

import (
	"os"

	"github.com/brimdata/sortbench/bencherr"
	"github.com/brimdata/sortbench/measure"
	"github.com/brimdata/sortbench/order"
	"github.com/brimdata/sortbench/sorter"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Config is the full combination space of a benchmark run plus the
// policies that shape each measurement.  It is not modified by a run.
type Config struct {
	Sizes      []int         `yaml:"sizes"`
	Orders     []order.Which `yaml:"orders"`
	Sorters    []string      `yaml:"sorters"`
	Iterations Policy        `yaml:"iterations"`
	// SkipFraction sizes the skip window as a share of the iteration
	// count (rounded up).  Skip, when set, overrides it with a count.
	SkipFraction float64 `yaml:"skip_fraction"`
	Skip         *int    `yaml:"skip,omitempty"`
	Warmup       Warmup  `yaml:"warmup"`
	// Seed seeds the shuffle source.  Zero picks a seed from the clock.
	Seed   uint64 `yaml:"seed,omitempty"`
	Verify bool   `yaml:"verify"`
	GC     bool   `yaml:"gc"`
}

// Warmup is the discarded measurement run made before the first
// combination.  It uses the element type and mapper of the run itself.
type Warmup struct {
	Disabled   bool        `yaml:"disabled"`
	Size       int         `yaml:"size"`
	Iterations int         `yaml:"iterations"`
	Sorter     string      `yaml:"sorter"`
	Order      order.Which `yaml:"order"`
}

func DefaultConfig() Config {
	return Config{
		Sizes:        []int{50, 100, 500, 1000, 5000, 10000, 50000, 100000},
		Orders:       slices.Clone(order.All),
		Sorters:      slices.Clone(sorter.Names),
		Iterations:   DefaultPolicy(),
		SkipFraction: measure.DefaultSkipFraction,
		Warmup:       DefaultWarmup(),
	}
}

func DefaultWarmup() Warmup {
	return Warmup{
		Size:       10000,
		Iterations: 10,
		Sorter:     "PassPerItem",
		Order:      order.Shuffle,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig so that a file
// need only name the settings it changes.
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return conf, err
	}
	if err := yaml.Unmarshal(b, &conf); err != nil {
		return conf, bencherr.E(bencherr.Invalid, "%s: %w", path, err)
	}
	return conf, nil
}

// Combinations returns the number of (size, order, sorter) triples.
func (c *Config) Combinations() int {
	return len(c.Sizes) * len(c.Orders) * len(c.Sorters)
}

// MaxSize returns the largest array size the run generates, including the
// warm-up.
func (c *Config) MaxSize() int {
	var largest int
	for _, size := range c.Sizes {
		if size > largest {
			largest = size
		}
	}
	if !c.Warmup.Disabled && c.Warmup.Size > largest {
		largest = c.Warmup.Size
	}
	return largest
}

// SkipFor returns the skip count used with the given iteration count.
func (c *Config) SkipFor(iterations int) (int, error) {
	if c.Skip != nil {
		if *c.Skip < 0 {
			return 0, bencherr.E(bencherr.Invalid, "skip count must be non-negative: %d", *c.Skip)
		}
		return *c.Skip, nil
	}
	return measure.SkipCount(iterations, c.SkipFraction)
}

// Validate reports the first problem that would make the run fail, before
// anything is timed.
func (c *Config) Validate() error {
	if len(c.Sizes) == 0 {
		return bencherr.E(bencherr.Invalid, "no sizes")
	}
	if len(c.Orders) == 0 {
		return bencherr.E(bencherr.Invalid, "no orderings")
	}
	if len(c.Sorters) == 0 {
		return bencherr.E(bencherr.Invalid, "no sorters")
	}
	if err := c.Iterations.Validate(); err != nil {
		return err
	}
	for _, size := range c.Sizes {
		if size < 0 {
			return bencherr.E(bencherr.Invalid, "size must be non-negative: %d", size)
		}
		iterations, err := c.Iterations.Iterations(size)
		if err != nil {
			return err
		}
		if _, err := c.SkipFor(iterations); err != nil {
			return err
		}
	}
	for _, which := range c.Orders {
		if !which.Valid() {
			return bencherr.E(bencherr.Invalid, "unknown ordering %d", int(which))
		}
	}
	for _, name := range c.Sorters {
		if _, err := sorter.Lookup[int](name); err != nil {
			return err
		}
	}
	if w := c.Warmup; !w.Disabled {
		if w.Size < 0 {
			return bencherr.E(bencherr.Invalid, "warm-up size must be non-negative: %d", w.Size)
		}
		if w.Iterations <= 0 {
			return bencherr.E(bencherr.Invalid, "warm-up iterations must be positive: %d", w.Iterations)
		}
		if !w.Order.Valid() {
			return bencherr.E(bencherr.Invalid, "unknown warm-up ordering %d", int(w.Order))
		}
		if _, err := sorter.Lookup[int](w.Sorter); err != nil {
			return err
		}
	}
	return nil
}
