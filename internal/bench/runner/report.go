package runner

import (
	"time"

	"github.com/wesleyorama2/bigo/internal/bench/metrics"
	"github.com/wesleyorama2/bigo/internal/bench/variant"
	"github.com/wesleyorama2/bigo/internal/bench/workload"
)

// Measurement is the record of one variant executed against one workload.
// It is not modified after the run appends it to a Report.
type Measurement struct {
	// Variant is the registered variant name
	Variant string `json:"variant"`

	// Complexity is the variant's declared complexity class
	Complexity variant.Complexity `json:"complexity"`

	// Elapsed is the mean timed duration over the repeats
	Elapsed time.Duration `json:"elapsed"`

	// Timing is the distribution of the timed durations
	Timing metrics.Stats `json:"timing"`

	// Metric is the side-channel value the variant returned (match count, sum, ...)
	Metric float64 `json:"metric"`

	// MetricName labels Metric
	MetricName string `json:"metricName,omitempty"`

	// Allocs is the mean number of heap allocations per execution
	Allocs uint64 `json:"allocs"`

	// AllocBytes is the mean number of heap bytes allocated per execution
	AllocBytes uint64 `json:"allocBytes"`

	// Output is the variant's last output, kept only with Options.KeepOutputs
	Output any `json:"-"`

	// Agrees reports whether Output matched the first variant's, set only with Options.Verify
	Agrees *bool `json:"agrees,omitempty"`
}

// Report is the ordered result of one RunAll call. Measurements appear in
// execution order.
type Report struct {
	RunID        string        `json:"runId"`
	Tag          variant.Tag   `json:"tag"`
	Kind         workload.Kind `json:"kind"`
	Size         int           `json:"size"`
	Seed         int64         `json:"seed"`
	Repeat       int           `json:"repeat"`
	Warmup       int           `json:"warmup"`
	MetricName   string        `json:"metricName,omitempty"`
	StartTime    time.Time     `json:"startTime"`
	Duration     time.Duration `json:"duration"`
	Measurements []Measurement `json:"measurements"`
}

// Find returns the measurement of the named variant.
func (r *Report) Find(name string) (Measurement, bool) {
	for _, m := range r.Measurements {
		if m.Variant == name {
			return m, true
		}
	}
	return Measurement{}, false
}

// Verified reports whether every measurement carries an agreement flag and
// all of them are true.
func (r *Report) Verified() bool {
	for _, m := range r.Measurements {
		if m.Agrees == nil || !*m.Agrees {
			return false
		}
	}
	return len(r.Measurements) > 0
}
