// Package alloc tracks scoped buffer allocations made by allocation-heavy
// benchmark variants.
//
// Every Acquire is paired with exactly one Release. With guarantees the pair
// on every exit path, so the counters balance even when the scoped function
// returns an error or panics.
package alloc

import (
	"fmt"
	"sync/atomic"
	"unsafe"
)

// Tracker counts outstanding and cumulative allocations.
type Tracker struct {
	acquired      atomic.Int64
	released      atomic.Int64
	bytesAcquired atomic.Int64
	bytesReleased atomic.Int64
}

// NewTracker creates a tracker with zeroed counters.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Stats is a point-in-time view of a Tracker.
type Stats struct {
	// Acquired is the number of buffers handed out
	Acquired int64 `json:"acquired"`

	// Released is the number of buffers returned
	Released int64 `json:"released"`

	// BytesAcquired is the total size of handed out buffers
	BytesAcquired int64 `json:"bytesAcquired"`

	// BytesReleased is the total size of returned buffers
	BytesReleased int64 `json:"bytesReleased"`
}

// Outstanding returns the number of buffers not yet released.
func (s Stats) Outstanding() int64 {
	return s.Acquired - s.Released
}

// Balanced reports whether every acquired buffer was released.
func (s Stats) Balanced() bool {
	return s.Acquired == s.Released && s.BytesAcquired == s.BytesReleased
}

// Sub returns the counter deltas between s and an earlier snapshot.
func (s Stats) Sub(earlier Stats) Stats {
	return Stats{
		Acquired:      s.Acquired - earlier.Acquired,
		Released:      s.Released - earlier.Released,
		BytesAcquired: s.BytesAcquired - earlier.BytesAcquired,
		BytesReleased: s.BytesReleased - earlier.BytesReleased,
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("acquired=%d released=%d bytes=%d/%d", s.Acquired, s.Released, s.BytesAcquired, s.BytesReleased)
}

// Snapshot returns the current counters.
func (t *Tracker) Snapshot() Stats {
	return Stats{
		Acquired:      t.acquired.Load(),
		Released:      t.released.Load(),
		BytesAcquired: t.bytesAcquired.Load(),
		BytesReleased: t.bytesReleased.Load(),
	}
}

// Reset zeroes all counters.
func (t *Tracker) Reset() {
	t.acquired.Store(0)
	t.released.Store(0)
	t.bytesAcquired.Store(0)
	t.bytesReleased.Store(0)
}

// Buffer is a tracked slice. Release it exactly once.
type Buffer[T any] struct {
	Data []T

	tracker  *Tracker
	size     int64
	released bool
}

// Acquire allocates a zeroed buffer of n elements and records it.
func Acquire[T any](t *Tracker, n int) *Buffer[T] {
	if n < 0 {
		n = 0
	}
	var zero T
	size := int64(n) * int64(unsafe.Sizeof(zero))

	t.acquired.Add(1)
	t.bytesAcquired.Add(size)

	return &Buffer[T]{Data: make([]T, n), tracker: t, size: size}
}

// Release records the buffer as freed and drops its storage. Releasing twice
// is a no-op.
func (b *Buffer[T]) Release() {
	if b == nil || b.released {
		return
	}
	b.released = true
	b.Data = nil
	b.tracker.released.Add(1)
	b.tracker.bytesReleased.Add(b.size)
}

// Len returns the number of elements.
func (b *Buffer[T]) Len() int {
	return len(b.Data)
}

// Bytes returns the tracked size of the buffer.
func (b *Buffer[T]) Bytes() int64 {
	return b.size
}

// With acquires an n-element buffer, passes it to fn and releases it when fn
// returns, whether it returns normally, with an error, or by panicking.
func With[T any](t *Tracker, n int, fn func(data []T) error) error {
	buf := Acquire[T](t, n)
	defer buf.Release()
	return fn(buf.Data)
}
