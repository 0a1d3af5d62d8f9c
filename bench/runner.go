// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bench

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/ava-labs/parsampler/utils/logging"
	"github.com/ava-labs/parsampler/utils/metric"
	"github.com/ava-labs/parsampler/utils/parallel"
	"github.com/ava-labs/parsampler/utils/sampler"
)

var (
	errNoThreads      = errors.New("at least one thread count is required")
	errNoAlgorithms   = errors.New("at least one algorithm is required")
	errNoKFractions   = errors.New("at least one k fraction is required")
	errBadRepetitions = errors.New("repetitions must be positive")
	errBadN           = errors.New("population size must not be negative")
	errBadThreads     = errors.New("thread counts must be positive")
	errBadKFraction   = errors.New("k fractions must be in [0, 1]")
)

type Config struct {
	// N is the population size.
	N           int
	Repetitions int
	Threads     []int
	// KFractions are the sample sizes as fractions of N.
	KFractions []float64
	Algorithms []sampler.Algorithm
	DType      DType

	// Sampler is the template of every sampler's configuration. Its
	// Scheduler is replaced for every thread count.
	Sampler sampler.Config
	Grain   int

	// Seed is applied to every sampler when Seeded.
	Seeded bool
	Seed   uint64
}

func (c Config) Verify() error {
	switch {
	case c.N < 0:
		return errBadN
	case c.Repetitions <= 0:
		return errBadRepetitions
	case len(c.Threads) == 0:
		return errNoThreads
	case len(c.Algorithms) == 0:
		return errNoAlgorithms
	case len(c.KFractions) == 0:
		return errNoKFractions
	}
	for _, threads := range c.Threads {
		if threads <= 0 {
			return fmt.Errorf("%w: %d", errBadThreads, threads)
		}
	}
	for _, fraction := range c.KFractions {
		if fraction < 0 || fraction > 1 {
			return fmt.Errorf("%w: %g", errBadKFraction, fraction)
		}
	}
	if _, err := ParseDType(string(c.DType)); err != nil {
		return err
	}
	return nil
}

// Runner times every (threads, algorithm, k) cell of a Config.
type Runner struct {
	config  Config
	writer  Writer
	log     logging.Logger
	elapsed *prometheus.HistogramVec
}

func NewRunner(
	config Config,
	writer Writer,
	log logging.Logger,
	registerer prometheus.Registerer,
) (*Runner, error) {
	if err := config.Verify(); err != nil {
		return nil, err
	}
	r := &Runner{
		config: config,
		writer: writer,
		log:    log,
		elapsed: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "bench",
				Name:      "sample_duration_seconds",
				Help:      "Wall-clock duration of a single Sample call",
				Buckets:   metric.SampleLatencyBuckets,
			},
			[]string{"algorithm", "threads"},
		),
	}
	return r, registerer.Register(r.elapsed)
}

// Run writes one record per repetition of every cell. It stops at the first
// error or when [ctx] is cancelled. The writer is not closed.
func (r *Runner) Run(ctx context.Context) error {
	switch r.config.DType {
	case Int32:
		return run(ctx, r, population[int32](r.config.N))
	case Int64:
		return run(ctx, r, population[int64](r.config.N))
	case Float64:
		return run(ctx, r, population[float64](r.config.N))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDType, r.config.DType)
	}
}

func run[T element](ctx context.Context, r *Runner, population []T) error {
	n := len(population)
	r.log.Info("starting benchmark",
		zap.Int("n", n),
		zap.String("dtype", string(r.config.DType)),
		zap.Int("repetitions", r.config.Repetitions),
		zap.Ints("threads", r.config.Threads),
		zap.Float64s("kFractions", r.config.KFractions),
	)

	cpu, err := newCPUTracker()
	if err != nil {
		r.log.Warn("CPU time is unavailable",
			zap.Error(err),
		)
	}

	elapsed := make([]float64, r.config.Repetitions)
	for _, threads := range r.config.Threads {
		config := r.config.Sampler
		config.Scheduler = parallel.New(parallel.Config{
			Workers: threads,
			Grain:   r.config.Grain,
		})
		for _, algorithm := range r.config.Algorithms {
			s, err := sampler.New[T](algorithm, config)
			if err != nil {
				return err
			}
			if r.config.Seeded {
				s.Seed(r.config.Seed)
			}
			histogram := r.elapsed.WithLabelValues(string(algorithm), strconv.Itoa(threads))

			for _, fraction := range r.config.KFractions {
				k := int(fraction * float64(n))
				var (
					cpuStart = cpu.CPUSeconds()
					wall     time.Duration
				)
				for rep := range elapsed {
					if err := ctx.Err(); err != nil {
						return err
					}

					start := time.Now()
					if _, err := s.Sample(population, k); err != nil {
						return fmt.Errorf("%s failed to sample %d of %d: %w", algorithm, k, n, err)
					}
					duration := time.Since(start)
					wall += duration

					histogram.Observe(duration.Seconds())
					elapsed[rep] = float64(duration.Microseconds())
					err := r.writer.Write(Record{
						Algorithm:     string(algorithm),
						Threads:       int32(threads),
						N:             int64(n),
						K:             int64(k),
						Repetition:    int32(rep),
						DType:         string(r.config.DType),
						ElapsedMicros: duration.Microseconds(),
					})
					if err != nil {
						return fmt.Errorf("failed to write record: %w", err)
					}
				}

				mean, stdDev := stat.MeanStdDev(elapsed, nil)
				fields := []zap.Field{
					zap.String("algorithm", string(algorithm)),
					zap.Int("threads", threads),
					zap.Int("k", k),
					zap.Float64("meanMicros", mean),
					zap.Float64("stdDevMicros", stdDev),
				}
				if cpu != nil && wall > 0 {
					// Includes the runtime's own threads, so it is an upper
					// bound on the cores used by the sampler.
					fields = append(fields, zap.Float64("parallelism", (cpu.CPUSeconds()-cpuStart)/wall.Seconds()))
				}
				r.log.Info("finished configuration", fields...)
			}
		}
	}
	return nil
}
