// Package metrics aggregates repeated timing samples of one benchmark variant.
package metrics

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Sampler collects elapsed times using an HDR histogram.
//
// Percentiles come from the histogram and carry its precision; Min, Max and
// Mean are tracked exactly. A Sampler is used by one goroutine at a time.
type Sampler struct {
	// HDR Histogram in nanoseconds
	// Range: 1 nanosecond to 1 hour, 3 significant figures
	hist *hdrhistogram.Histogram

	count int64
	total time.Duration
	min   time.Duration
	max   time.Duration

	config SamplerConfig
}

// SamplerConfig contains configuration for a sampler.
type SamplerConfig struct {
	// HistogramMin is the minimum recordable value in nanoseconds (default: 1)
	HistogramMin int64

	// HistogramMax is the maximum recordable value in nanoseconds (default: 1 hour)
	HistogramMax int64

	// HistogramSigFigs is the number of significant figures (default: 3)
	HistogramSigFigs int
}

// DefaultSamplerConfig returns the default configuration.
func DefaultSamplerConfig() SamplerConfig {
	return SamplerConfig{
		HistogramMin:     1,
		HistogramMax:     int64(time.Hour),
		HistogramSigFigs: 3,
	}
}

// NewSampler creates a sampler with the default configuration.
func NewSampler() *Sampler {
	return NewSamplerWithConfig(DefaultSamplerConfig())
}

// NewSamplerWithConfig creates a sampler with a custom configuration.
func NewSamplerWithConfig(config SamplerConfig) *Sampler {
	return &Sampler{
		hist:   hdrhistogram.New(config.HistogramMin, config.HistogramMax, config.HistogramSigFigs),
		config: config,
	}
}

// Record adds one elapsed time. Negative values are recorded as zero.
func (s *Sampler) Record(d time.Duration) {
	if d < 0 {
		d = 0
	}

	if s.count == 0 || d < s.min {
		s.min = d
	}
	if d > s.max {
		s.max = d
	}
	s.count++
	s.total += d

	// Clamp to the histogram's trackable range
	v := int64(d)
	if v < s.config.HistogramMin {
		v = s.config.HistogramMin
	}
	if v > s.config.HistogramMax {
		v = s.config.HistogramMax
	}
	_ = s.hist.RecordValue(v)
}

// Count returns the number of recorded samples.
func (s *Sampler) Count() int64 {
	return s.count
}

// Mean returns the exact arithmetic mean, or zero with no samples.
func (s *Sampler) Mean() time.Duration {
	if s.count == 0 {
		return 0
	}
	return s.total / time.Duration(s.count)
}

// Stats returns a summary of the recorded samples.
func (s *Sampler) Stats() Stats {
	if s.count == 0 {
		return Stats{}
	}
	return Stats{
		Min:    s.min,
		Max:    s.max,
		Mean:   s.Mean(),
		StdDev: time.Duration(s.hist.StdDev()),
		P50:    time.Duration(s.hist.ValueAtQuantile(50)),
		P90:    time.Duration(s.hist.ValueAtQuantile(90)),
		P99:    time.Duration(s.hist.ValueAtQuantile(99)),
		Total:  s.total,
		Count:  s.count,
	}
}

// Reset discards all samples.
func (s *Sampler) Reset() {
	s.hist.Reset()
	s.count = 0
	s.total = 0
	s.min = 0
	s.max = 0
}

// Stats contains timing statistics over repeated runs of one variant.
type Stats struct {
	Min    time.Duration `json:"min"`
	Max    time.Duration `json:"max"`
	Mean   time.Duration `json:"mean"`
	StdDev time.Duration `json:"stdDev"`
	P50    time.Duration `json:"p50"`
	P90    time.Duration `json:"p90"`
	P99    time.Duration `json:"p99"`
	Total  time.Duration `json:"total"`
	Count  int64         `json:"count"`
}
