// Package runner executes registered variants against one generated workload
// and records a measurement for each.
package runner

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/wesleyorama2/bigo/internal/bench"
	"github.com/wesleyorama2/bigo/internal/bench/metrics"
	"github.com/wesleyorama2/bigo/internal/bench/timer"
	"github.com/wesleyorama2/bigo/internal/bench/variant"
	"github.com/wesleyorama2/bigo/internal/bench/workload"
)

// Observer receives measurements as a run progresses. telemetry.Recorder
// implements it.
type Observer interface {
	ObserveSample(tag, variant string, elapsed time.Duration)
	ObserveMeasurement(tag, variant string, mean time.Duration, allocs, bytes uint64)
	ObserveRun(tag string, d time.Duration, err error)
}

// Options configures a Runner.
type Options struct {
	// Repeat is the number of timed executions per variant (default: 1)
	Repeat int

	// Warmup is the number of untimed executions before the timed ones (default: 0)
	Warmup int

	// Verify compares every output with the first variant's output
	Verify bool

	// KeepOutputs retains the last output of each variant on its Measurement
	KeepOutputs bool

	// Logger receives debug progress logs (default: discard)
	Logger *slog.Logger

	// Generator produces workloads (default: workload.NewGenerator with default options)
	Generator *workload.Generator

	// Observer is notified of samples, measurements and run outcomes (optional)
	Observer Observer
}

// DefaultOptions returns the default runner options.
func DefaultOptions() Options {
	return Options{Repeat: 1}
}

// Runner runs variants from a registry. Runs execute synchronously, one at a time.
type Runner struct {
	registry *variant.Registry
	opts     Options
	logger   *slog.Logger
}

// New creates a runner. Zero Repeat means 1; negative counts are rejected.
func New(registry *variant.Registry, opts Options) (*Runner, error) {
	if registry == nil {
		return nil, bench.InvalidParameter("registry", nil, "registry is required")
	}
	if opts.Repeat < 0 {
		return nil, bench.InvalidParameter("repeat", opts.Repeat, "must not be negative")
	}
	if opts.Warmup < 0 {
		return nil, bench.InvalidParameter("warmup", opts.Warmup, "must not be negative")
	}
	if opts.Repeat == 0 {
		opts.Repeat = 1
	}
	if opts.Generator == nil {
		opts.Generator = workload.NewGenerator(workload.Options{})
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Runner{registry: registry, opts: opts, logger: logger}, nil
}

// Options returns the effective options.
func (r *Runner) Options() Options {
	return r.opts
}

// Registry returns the registry variants are resolved from.
func (r *Runner) Registry() *variant.Registry {
	return r.registry
}

// RunAll generates one workload for tag and runs the named variants against
// it in the given order.
//
// Every name is resolved before anything is generated or timed, so an
// unknown name fails with bench.ErrUnknownVariant and no report. An empty
// name list yields an empty report. If a variant returns an error the run
// stops and the error is returned without a partial report.
func (r *Runner) RunAll(tag variant.Tag, size int, seed int64, names []string) (*Report, error) {
	start := time.Now()

	report, err := r.runAll(tag, size, seed, names, start)
	if r.opts.Observer != nil {
		r.opts.Observer.ObserveRun(string(tag), time.Since(start), err)
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (r *Runner) runAll(tag variant.Tag, size int, seed int64, names []string, start time.Time) (*Report, error) {
	contract, err := r.registry.Contract(tag)
	if err != nil {
		return nil, err
	}
	variants, err := r.registry.Resolve(tag, names)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, bench.InvalidParameter("size", size, "must be a positive integer")
	}

	report := &Report{
		RunID:        uuid.NewString(),
		Tag:          tag,
		Kind:         contract.Kind,
		Size:         size,
		Seed:         seed,
		Repeat:       r.opts.Repeat,
		Warmup:       r.opts.Warmup,
		MetricName:   contract.MetricName,
		StartTime:    start,
		Measurements: make([]Measurement, 0, len(variants)),
	}
	if len(variants) == 0 {
		report.Duration = time.Since(start)
		return report, nil
	}

	w, err := r.opts.Generator.Generate(contract.Kind, size, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to generate workload: %w", err)
	}
	r.logger.Debug("workload generated", "tag", tag, "kind", w.Kind, "size", size, "seed", seed)

	var baseline any
	for i, v := range variants {
		m, output, err := r.measure(contract, v, w)
		if err != nil {
			return nil, fmt.Errorf("variant %s failed: %w", v.Name, err)
		}

		if r.opts.Verify {
			if i == 0 {
				baseline = output
			}
			agrees := contract.Outputs(baseline, output)
			m.Agrees = &agrees
			if !agrees {
				r.logger.Warn("variant output disagrees with baseline", "tag", tag, "variant", v.Name, "baseline", variants[0].Name)
			}
		}
		if r.opts.KeepOutputs {
			m.Output = output
		}

		report.Measurements = append(report.Measurements, m)
		r.logger.Debug("variant measured", "tag", tag, "variant", v.Name, "elapsed", m.Elapsed, "metric", m.Metric)
	}

	report.Duration = time.Since(start)
	return report, nil
}

type execution struct {
	output any
	metric float64
}

// measure runs one variant Warmup+Repeat times. Every execution gets its own
// clone of base, made before the timed interval and dropped once the call
// returns, so no execution sees another's in-place edits.
func (r *Runner) measure(contract variant.Contract, v *variant.Variant, base *workload.Workload) (Measurement, any, error) {
	sampler := metrics.NewSampler()
	var (
		last       execution
		allocs     uint64
		allocBytes uint64
		before     runtime.MemStats
		after      runtime.MemStats
	)

	total := r.opts.Warmup + r.opts.Repeat
	for i := 0; i < total; i++ {
		w := base.Clone()

		call := func() (execution, error) {
			out, metric, err := v.Run(w)
			return execution{output: out, metric: metric}, err
		}

		runtime.ReadMemStats(&before)
		res, elapsed, err := timer.MeasureErr(call)
		runtime.ReadMemStats(&after)

		if err != nil {
			return Measurement{}, nil, err
		}
		if i < r.opts.Warmup {
			continue
		}

		sampler.Record(elapsed)
		allocs += after.Mallocs - before.Mallocs
		allocBytes += after.TotalAlloc - before.TotalAlloc
		last = res

		if r.opts.Observer != nil {
			r.opts.Observer.ObserveSample(string(v.Tag), v.Name, elapsed)
		}
	}

	stats := sampler.Stats()
	repeat := uint64(r.opts.Repeat)
	m := Measurement{
		Variant:    v.Name,
		Complexity: v.Complexity,
		Elapsed:    stats.Mean,
		Timing:     stats,
		Metric:     last.metric,
		MetricName: contract.MetricName,
		Allocs:     allocs / repeat,
		AllocBytes: allocBytes / repeat,
	}

	if r.opts.Observer != nil {
		r.opts.Observer.ObserveMeasurement(string(v.Tag), v.Name, m.Elapsed, m.Allocs, m.AllocBytes)
	}

	return m, last.output, nil
}
