// Package bench drives a complete benchmark: every combination of size,
// ordering and sorter in a Config is measured in turn and each recorded
// trial is streamed to a sample.Writer as soon as its combination
// finishes.
package bench

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/brimdata/sortbench/bencherr"
	"github.com/brimdata/sortbench/gen"
	"github.com/brimdata/sortbench/mapper"
	"github.com/brimdata/sortbench/measure"
	"github.com/brimdata/sortbench/order"
	"github.com/brimdata/sortbench/sample"
	"github.com/brimdata/sortbench/sorter"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Status describes the combination that just finished.
type Status struct {
	Done    int
	Total   int
	Size    int
	Order   order.Which
	Sorter  string
	Samples int
	Elapsed time.Duration
}

// Progress is notified after each combination, never while a trial is
// being timed.
type Progress interface {
	Update(Status)
}

type options struct {
	logger   *zap.Logger
	rand     *rand.Rand
	progress Progress
	id       ksuid.KSUID
}

type Option func(*options)

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRand supplies the shuffle source, overriding Config.Seed.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rand = r }
}

func WithProgress(p Progress) Option {
	return func(o *options) { o.progress = p }
}

func WithID(id ksuid.KSUID) Option {
	return func(o *options) { o.id = id }
}

type Runner[T constraints.Ordered] struct {
	conf     Config
	mapper   mapper.Func[T]
	sorters  []sorter.Sorter[T]
	warmup   sorter.Sorter[T]
	rand     *rand.Rand
	seed     uint64
	id       ksuid.KSUID
	logger   *zap.Logger
	progress Progress
}

// New checks conf and fn and returns a Runner ready to run.  All argument
// and generation problems are reported here, before anything is timed.
func New[T constraints.Ordered](conf Config, fn mapper.Func[T], opts ...Option) (*Runner[T], error) {
	if fn == nil {
		return nil, bencherr.E(bencherr.Invalid, "no mapper")
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if err := mapper.Validate(conf.MaxSize(), fn); err != nil {
		return nil, err
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	r := &Runner[T]{
		conf:     conf,
		mapper:   fn,
		rand:     o.rand,
		seed:     conf.Seed,
		id:       o.id,
		logger:   o.logger,
		progress: o.progress,
	}
	if r.rand == nil {
		r.rand, r.seed = gen.NewRand(conf.Seed)
	}
	if r.id.IsNil() {
		r.id = ksuid.New()
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	for _, name := range conf.Sorters {
		s, err := sorter.Lookup[T](name)
		if err != nil {
			return nil, err
		}
		r.sorters = append(r.sorters, s)
	}
	if !conf.Warmup.Disabled {
		s, err := sorter.Lookup[T](conf.Warmup.Sorter)
		if err != nil {
			return nil, err
		}
		r.warmup = s
	}
	return r, nil
}

func (r *Runner[T]) ID() ksuid.KSUID { return r.id }

// Seed returns the seed of the shuffle source.  When the source was
// supplied with WithRand this is just Config.Seed.
func (r *Runner[T]) Seed() uint64 { return r.seed }

// Run measures every combination in configuration order and writes each
// recorded trial to w.  The first error aborts the run.
func (r *Runner[T]) Run(w sample.Writer) error {
	begin := time.Now()
	total := r.conf.Combinations()
	r.logger.Info("Benchmark started",
		zap.Stringer("run", r.id),
		zap.Uint64("seed", r.seed),
		zap.Int("combinations", total),
	)
	if err := r.runWarmup(); err != nil {
		return fmt.Errorf("warm-up: %w", err)
	}
	opts := measure.Options{Verify: r.conf.Verify, GC: r.conf.GC}
	var done, nsamples int
	for _, size := range r.conf.Sizes {
		iterations, err := r.conf.Iterations.Iterations(size)
		if err != nil {
			return err
		}
		skip, err := r.conf.SkipFor(iterations)
		if err != nil {
			return err
		}
		for _, which := range r.conf.Orders {
			factory := gen.Factory(which, size, r.mapper, r.rand)
			for _, s := range r.sorters {
				start := time.Now()
				durations, err := measure.Run(s, factory, size, iterations, skip, opts)
				if err != nil {
					return fmt.Errorf("size %d, %s, %s: %w", size, which, s.Name(), err)
				}
				for _, d := range durations {
					rec := sample.Sample{
						Size:     size,
						Order:    which,
						Sorter:   s.Name(),
						Duration: d,
					}
					if err := w.Write(&rec); err != nil {
						return err
					}
				}
				done++
				nsamples += len(durations)
				status := Status{
					Done:    done,
					Total:   total,
					Size:    size,
					Order:   which,
					Sorter:  s.Name(),
					Samples: len(durations),
					Elapsed: time.Since(start),
				}
				r.logger.Debug("Combination measured",
					zap.Int("size", size),
					zap.Stringer("order", which),
					zap.String("sorter", s.Name()),
					zap.Int("iterations", iterations),
					zap.Int("skip", skip),
					zap.Duration("elapsed", status.Elapsed),
				)
				if r.progress != nil {
					r.progress.Update(status)
				}
			}
		}
	}
	r.logger.Info("Benchmark finished",
		zap.Stringer("run", r.id),
		zap.Int("samples", nsamples),
		zap.Duration("elapsed", time.Since(begin)),
	)
	return nil
}

// runWarmup absorbs one-time costs (page faults, cache and branch
// predictor state) before the first recorded combination.
func (r *Runner[T]) runWarmup() error {
	w := r.conf.Warmup
	if w.Disabled {
		return nil
	}
	start := time.Now()
	factory := gen.Factory(w.Order, w.Size, r.mapper, r.rand)
	if _, err := measure.Run(r.warmup, factory, w.Size, w.Iterations, 0, measure.Options{}); err != nil {
		return err
	}
	r.logger.Debug("Warm-up finished",
		zap.Int("size", w.Size),
		zap.Stringer("order", w.Order),
		zap.String("sorter", r.warmup.Name()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
