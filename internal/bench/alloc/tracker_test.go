package alloc

import (
	"errors"
	"testing"
)

func TestAcquireRelease(t *testing.T) {
	tr := NewTracker()

	b := Acquire[byte](tr, 1024)
	if b.Len() != 1024 {
		t.Errorf("Len() = %d, want 1024", b.Len())
	}
	if got := tr.Snapshot().Outstanding(); got != 1 {
		t.Errorf("Outstanding() = %d, want 1", got)
	}

	b.Release()
	b.Release()

	s := tr.Snapshot()
	if !s.Balanced() {
		t.Errorf("Snapshot() = %v, want balanced", s)
	}
	if s.Acquired != 1 || s.Released != 1 {
		t.Errorf("Acquired/Released = %d/%d, want 1/1", s.Acquired, s.Released)
	}
	if s.BytesAcquired != 1024 {
		t.Errorf("BytesAcquired = %d, want 1024", s.BytesAcquired)
	}
}

func TestAcquire_ElementSize(t *testing.T) {
	tr := NewTracker()
	b := Acquire[int64](tr, 10)
	defer b.Release()

	if b.Bytes() != 80 {
		t.Errorf("Bytes() = %d, want 80", b.Bytes())
	}
}

func TestWith_ReleasesOnError(t *testing.T) {
	tr := NewTracker()
	boom := errors.New("boom")

	err := With[int](tr, 128, func(data []int) error {
		data[0] = 1
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("With() error = %v, want %v", err, boom)
	}
	if s := tr.Snapshot(); !s.Balanced() || s.Acquired != 1 {
		t.Errorf("Snapshot() = %v, want one balanced allocation", s)
	}
}

func TestWith_ReleasesOnPanic(t *testing.T) {
	tr := NewTracker()

	func() {
		defer func() { _ = recover() }()
		_ = With[byte](tr, 16, func([]byte) error {
			panic("boom")
		})
	}()

	if s := tr.Snapshot(); !s.Balanced() {
		t.Errorf("Snapshot() = %v, want balanced after panic", s)
	}
}

func TestWith_Nested(t *testing.T) {
	tr := NewTracker()

	err := With[byte](tr, 256, func(outer []byte) error {
		for i := 0; i < 5; i++ {
			if err := With[int](tr, 128, func(inner []int) error {
				inner[0] = len(outer)
				return nil
			}); err != nil {
				return err
			}
		}
		if got := tr.Snapshot().Outstanding(); got != 1 {
			t.Errorf("Outstanding() inside outer scope = %d, want 1", got)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("With() error = %v", err)
	}

	s := tr.Snapshot()
	if s.Acquired != 6 || !s.Balanced() {
		t.Errorf("Snapshot() = %v, want 6 balanced allocations", s)
	}
}

func TestStats_Sub(t *testing.T) {
	tr := NewTracker()
	before := tr.Snapshot()
	Acquire[byte](tr, 10).Release()
	delta := tr.Snapshot().Sub(before)

	if delta.Acquired != 1 || delta.BytesReleased != 10 {
		t.Errorf("Sub() = %v, want one 10-byte allocation", delta)
	}
}

func TestReset(t *testing.T) {
	tr := NewTracker()
	Acquire[byte](tr, 10)
	tr.Reset()
	if s := tr.Snapshot(); s != (Stats{}) {
		t.Errorf("Snapshot() after Reset = %v, want zero", s)
	}
}

func BenchmarkWith(b *testing.B) {
	tr := NewTracker()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = With[byte](tr, 1024, func(data []byte) error {
			data[0] = byte(i)
			return nil
		})
	}
}
