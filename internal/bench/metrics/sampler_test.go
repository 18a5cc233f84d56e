package metrics

import (
	"testing"
	"time"
)

func TestNewSampler(t *testing.T) {
	s := NewSampler()
	if s == nil {
		t.Fatal("NewSampler() returned nil")
	}
	if s.Count() != 0 {
		t.Errorf("Initial Count() = %d, want 0", s.Count())
	}
	if got := s.Stats(); got != (Stats{}) {
		t.Errorf("Initial Stats() = %+v, want zero", got)
	}
}

func TestSampler_Record(t *testing.T) {
	s := NewSampler()

	s.Record(10 * time.Millisecond)
	s.Record(20 * time.Millisecond)
	s.Record(30 * time.Millisecond)

	stats := s.Stats()
	if stats.Count != 3 {
		t.Errorf("Count = %d, want 3", stats.Count)
	}
	if stats.Min != 10*time.Millisecond {
		t.Errorf("Min = %v, want 10ms", stats.Min)
	}
	if stats.Max != 30*time.Millisecond {
		t.Errorf("Max = %v, want 30ms", stats.Max)
	}
	if stats.Mean != 20*time.Millisecond {
		t.Errorf("Mean = %v, want 20ms", stats.Mean)
	}
	if stats.Total != 60*time.Millisecond {
		t.Errorf("Total = %v, want 60ms", stats.Total)
	}
}

func TestSampler_Percentiles(t *testing.T) {
	s := NewSampler()

	// Record latencies with known distribution
	for i := 1; i <= 10; i++ {
		s.Record(time.Duration(i) * 10 * time.Millisecond)
	}

	stats := s.Stats()

	// P50 should be around 50ms (with some tolerance for HDR histogram binning)
	if stats.P50 < 40*time.Millisecond || stats.P50 > 60*time.Millisecond {
		t.Errorf("P50 = %v, want ~50ms (±10ms)", stats.P50)
	}

	// P99 should be close to 100ms
	if stats.P99 < 90*time.Millisecond || stats.P99 > 110*time.Millisecond {
		t.Errorf("P99 = %v, want ~100ms (±10ms)", stats.P99)
	}

	if stats.StdDev <= 0 {
		t.Errorf("StdDev = %v, want > 0", stats.StdDev)
	}
}

func TestSampler_SingleSample(t *testing.T) {
	s := NewSampler()
	s.Record(1234 * time.Nanosecond)

	stats := s.Stats()
	if stats.Mean != 1234*time.Nanosecond {
		t.Errorf("Mean = %v, want 1.234µs", stats.Mean)
	}
	if stats.Min != stats.Max {
		t.Errorf("Min = %v, Max = %v, want equal", stats.Min, stats.Max)
	}
}

func TestSampler_ClampsNegativeAndZero(t *testing.T) {
	s := NewSampler()
	s.Record(-5 * time.Nanosecond)
	s.Record(0)

	stats := s.Stats()
	if stats.Min != 0 || stats.Mean != 0 {
		t.Errorf("Min/Mean = %v/%v, want 0/0", stats.Min, stats.Mean)
	}
	if stats.Count != 2 {
		t.Errorf("Count = %d, want 2", stats.Count)
	}
}

func TestSampler_OutOfRange(t *testing.T) {
	s := NewSampler()
	s.Record(2 * time.Hour)

	stats := s.Stats()
	if stats.Max != 2*time.Hour {
		t.Errorf("Max = %v, want 2h (exact max is kept)", stats.Max)
	}
	if stats.P99 > time.Hour+time.Minute {
		t.Errorf("P99 = %v, want clamped near 1h", stats.P99)
	}
}

func TestSampler_Reset(t *testing.T) {
	s := NewSampler()
	s.Record(time.Millisecond)
	s.Reset()

	if s.Count() != 0 {
		t.Errorf("Count() after Reset = %d, want 0", s.Count())
	}
	if s.Mean() != 0 {
		t.Errorf("Mean() after Reset = %v, want 0", s.Mean())
	}
}

func BenchmarkSampler_Record(b *testing.B) {
	s := NewSampler()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Record(time.Duration(i%1000) * time.Microsecond)
	}
}
