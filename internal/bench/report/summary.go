// Package report derives speedups from runner reports and renders them as
// JSON and HTML.
package report

import (
	"time"

	"github.com/wesleyorama2/bigo/internal/bench/runner"
)

// DefaultThreshold is the elapsed time below which a speedup is not computed.
const DefaultThreshold = time.Microsecond

// State tells whether a speedup ratio could be computed.
type State string

const (
	// StateDeterminate means both elapsed times were above the threshold.
	StateDeterminate State = "determinate"

	// StateIndeterminate means at least one elapsed time was too small to
	// give a meaningful ratio. It is a result, not an error.
	StateIndeterminate State = "indeterminate"
)

// Speedup compares one variant against the baseline, the first measurement
// of the report.
type Speedup struct {
	// Variant is the compared variant
	Variant string `json:"variant"`

	// Baseline is the first variant of the report
	Baseline string `json:"baseline"`

	// Ratio is baseline elapsed divided by variant elapsed; zero when indeterminate
	Ratio float64 `json:"ratio"`

	// State tells whether Ratio is meaningful
	State State `json:"state"`
}

// Determinate reports whether Ratio is meaningful.
func (s Speedup) Determinate() bool {
	return s.State == StateDeterminate
}

// Summary is a report together with its speedups.
type Summary struct {
	*runner.Report
	Threshold time.Duration `json:"threshold"`
	Speedups  []Speedup     `json:"speedups"`
}

// Summarize computes the speedup of every measurement after the first
// relative to the first. A threshold of zero or less selects DefaultThreshold.
// Speedups only compare measurements of one report, which share a workload.
func Summarize(r *runner.Report, threshold time.Duration) *Summary {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	s := &Summary{Report: r, Threshold: threshold, Speedups: []Speedup{}}
	if r == nil || len(r.Measurements) < 2 {
		return s
	}

	base := r.Measurements[0]
	for _, m := range r.Measurements[1:] {
		sp := Speedup{Variant: m.Variant, Baseline: base.Variant, State: StateIndeterminate}
		if base.Elapsed >= threshold && m.Elapsed >= threshold {
			sp.Ratio = float64(base.Elapsed) / float64(m.Elapsed)
			sp.State = StateDeterminate
		}
		s.Speedups = append(s.Speedups, sp)
	}
	return s
}

// Speedup returns the speedup of the named variant.
func (s *Summary) Speedup(variant string) (Speedup, bool) {
	for _, sp := range s.Speedups {
		if sp.Variant == variant {
			return sp, true
		}
	}
	return Speedup{}, false
}

// Fastest returns the measurement with the smallest elapsed time.
func (s *Summary) Fastest() (runner.Measurement, bool) {
	if s.Report == nil || len(s.Measurements) == 0 {
		return runner.Measurement{}, false
	}
	best := s.Measurements[0]
	for _, m := range s.Measurements[1:] {
		if m.Elapsed < best.Elapsed {
			best = m
		}
	}
	return best, true
}
