// Package timer measures wall-clock time around a single call.
//
// Measurements use the monotonic clock reading carried by time.Time, so they
// are unaffected by wall-clock adjustments. Time spent blocked inside the
// measured function counts toward the result: this is wall time, not CPU time.
package timer

import (
	"time"
)

// Measure calls f and returns its result together with the elapsed time.
// Only the interval between the call and its return is measured.
func Measure[T any](f func() T) (T, time.Duration) {
	start := time.Now()
	v := f()
	elapsed := time.Since(start)
	return v, clamp(elapsed)
}

// MeasureErr is Measure for functions that can fail. The elapsed time is
// returned even when f fails.
func MeasureErr[T any](f func() (T, error)) (T, time.Duration, error) {
	start := time.Now()
	v, err := f()
	elapsed := time.Since(start)
	return v, clamp(elapsed), err
}

// Resolution estimates the smallest non-zero interval the clock reports by
// timing samples no-op calls. It returns 0 if every sample measured zero.
func Resolution(samples int) time.Duration {
	if samples <= 0 {
		samples = 1
	}

	var smallest time.Duration
	for i := 0; i < samples; i++ {
		_, d := Measure(noop)
		if d > 0 && (smallest == 0 || d < smallest) {
			smallest = d
		}
	}
	return smallest
}

func noop() struct{} { return struct{}{} }

// clamp guards the never-negative invariant for reporting code.
func clamp(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
