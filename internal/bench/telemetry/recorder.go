// Package telemetry exports benchmark results as Prometheus metrics.
//
// The harness does not serve metrics over the network. A Recorder collects
// into its own registry and WriteTextfile dumps it in the text exposition
// format for a node_exporter textfile collector.
package telemetry

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ErrInvalidConfig is returned when the recorder configuration is invalid.
	ErrInvalidConfig = errors.New("invalid telemetry configuration")

	// ErrRegistrationFailed is returned when metric registration fails.
	ErrRegistrationFailed = errors.New("metric registration failed")
)

// Config configures a Recorder.
type Config struct {
	// Namespace is the metrics namespace (default "bigo")
	Namespace string

	// Subsystem is the metrics subsystem (default "bench")
	Subsystem string

	// DurationBuckets are histogram buckets for variant durations in seconds
	DurationBuckets []float64
}

// DefaultConfig returns a configuration with default namespace and buckets.
func DefaultConfig() Config {
	return Config{
		Namespace: "bigo",
		Subsystem: "bench",
		DurationBuckets: []float64{
			0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60,
		},
	}
}

// Validate checks that required fields are set.
func (c Config) Validate() error {
	if c.Namespace == "" {
		return errors.New("namespace is required")
	}
	if c.Subsystem == "" {
		return errors.New("subsystem is required")
	}
	return nil
}

// Recorder collects run and variant metrics. Safe for concurrent use.
type Recorder struct {
	registry *prometheus.Registry

	runsTotal       *prometheus.CounterVec
	runDuration     *prometheus.HistogramVec
	variantDuration *prometheus.HistogramVec
	variantLast     *prometheus.GaugeVec
	allocations     *prometheus.GaugeVec
	allocatedBytes  *prometheus.GaugeVec
	speedup         *prometheus.GaugeVec
}

// NewRecorder creates a recorder with a private registry.
func NewRecorder(config Config) (*Recorder, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if config.DurationBuckets == nil {
		config.DurationBuckets = DefaultConfig().DurationBuckets
	}

	r := &Recorder{registry: prometheus.NewRegistry()}

	r.runsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "runs_total",
			Help:      "Total benchmark runs by tag and outcome",
		},
		[]string{"tag", "status"},
	)

	r.runDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of whole runs, including workload generation",
			Buckets:   config.DurationBuckets,
		},
		[]string{"tag"},
	)

	r.variantDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "variant_duration_seconds",
			Help:      "Timed duration of single variant executions",
			Buckets:   config.DurationBuckets,
		},
		[]string{"tag", "variant"},
	)

	r.variantLast = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "variant_mean_seconds",
			Help:      "Mean duration of the last measurement of each variant",
		},
		[]string{"tag", "variant"},
	)

	r.allocations = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "variant_allocations",
			Help:      "Heap allocations per execution in the last measurement",
		},
		[]string{"tag", "variant"},
	)

	r.allocatedBytes = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "variant_allocated_bytes",
			Help:      "Heap bytes allocated per execution in the last measurement",
		},
		[]string{"tag", "variant"},
	)

	r.speedup = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "speedup_ratio",
			Help:      "Elapsed time of the baseline variant divided by this variant's",
		},
		[]string{"tag", "baseline", "variant"},
	)

	for _, c := range []prometheus.Collector{
		r.runsTotal, r.runDuration, r.variantDuration, r.variantLast,
		r.allocations, r.allocatedBytes, r.speedup,
	} {
		if err := r.registry.Register(c); err != nil {
			return nil, errors.Join(ErrRegistrationFailed, err)
		}
	}

	return r, nil
}

// ObserveSample records one timed execution.
func (r *Recorder) ObserveSample(tag, variant string, elapsed time.Duration) {
	r.variantDuration.WithLabelValues(tag, variant).Observe(elapsed.Seconds())
}

// ObserveMeasurement records the aggregate of a finished variant.
func (r *Recorder) ObserveMeasurement(tag, variant string, mean time.Duration, allocs, bytes uint64) {
	r.variantLast.WithLabelValues(tag, variant).Set(mean.Seconds())
	r.allocations.WithLabelValues(tag, variant).Set(float64(allocs))
	r.allocatedBytes.WithLabelValues(tag, variant).Set(float64(bytes))
}

// ObserveRun records a completed or failed run.
func (r *Recorder) ObserveRun(tag string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.runsTotal.WithLabelValues(tag, status).Inc()
	r.runDuration.WithLabelValues(tag).Observe(d.Seconds())
}

// ObserveSpeedup records a determinate speedup ratio.
func (r *Recorder) ObserveSpeedup(tag, baseline, variant string, ratio float64) {
	r.speedup.WithLabelValues(tag, baseline, variant).Set(ratio)
}

// Gatherer exposes the recorder's registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
