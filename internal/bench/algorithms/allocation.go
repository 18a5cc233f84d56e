package algorithms

import (
	"github.com/wesleyorama2/bigo/internal/bench"
	"github.com/wesleyorama2/bigo/internal/bench/alloc"
	"github.com/wesleyorama2/bigo/internal/bench/workload"
)

const (
	// nestedOuterBytes is the size of each outer buffer in the nested pattern.
	nestedOuterBytes = 256

	// nestedInnerInts is the element count of each inner block.
	nestedInnerInts = 128

	// nestedInnerBlocks is the number of inner blocks per outer buffer.
	nestedInnerBlocks = 50
)

// sink keeps processed buffer checksums observable so the work is not elided.
var sink int

// LoopAllocation runs two allocate/process/release phases: Iterations byte
// buffers of BlockSize, then Iterations/2 int buffers of 2×BlockSize.
// It returns the tracker delta for the call.
func LoopAllocation(t *alloc.Tracker, plan workload.AllocationPlan) (alloc.Stats, error) {
	if err := checkPlan(plan); err != nil {
		return alloc.Stats{}, err
	}
	before := t.Snapshot()

	for i := 0; i < plan.Iterations; i++ {
		err := alloc.With[byte](t, plan.BlockSize, func(buf []byte) error {
			for j := range buf {
				buf[j] = byte(i + j)
			}
			sink += int(buf[len(buf)-1])
			return nil
		})
		if err != nil {
			return t.Snapshot().Sub(before), err
		}
	}

	for i := 0; i < plan.Iterations/2; i++ {
		err := alloc.With[int](t, plan.BlockSize*2, func(buf []int) error {
			total := 0
			for j := range buf {
				buf[j] = i * j
				total += buf[j]
			}
			sink += total
			return nil
		})
		if err != nil {
			return t.Snapshot().Sub(before), err
		}
	}

	return t.Snapshot().Sub(before), nil
}

// NestedAllocation allocates Iterations/10 outer byte buffers, each holding
// fifty inner int blocks that are allocated and released while the outer
// buffer is live.
func NestedAllocation(t *alloc.Tracker, plan workload.AllocationPlan) (alloc.Stats, error) {
	if err := checkPlan(plan); err != nil {
		return alloc.Stats{}, err
	}
	before := t.Snapshot()

	outer := max(plan.Iterations/10, 1)
	for i := 0; i < outer; i++ {
		err := alloc.With[byte](t, nestedOuterBytes, func(buf []byte) error {
			buf[0] = byte(i)
			for k := 0; k < nestedInnerBlocks; k++ {
				if err := alloc.With[int](t, nestedInnerInts, func(block []int) error {
					block[0] = int(buf[0]) + k
					sink += block[0]
					return nil
				}); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return t.Snapshot().Sub(before), err
		}
	}

	return t.Snapshot().Sub(before), nil
}

func checkPlan(plan workload.AllocationPlan) error {
	if plan.Iterations <= 0 {
		return bench.InvalidParameter("iterations", plan.Iterations, "must be positive")
	}
	if plan.BlockSize <= 0 {
		return bench.InvalidParameter("blockSize", plan.BlockSize, "must be positive")
	}
	return nil
}

// allocationBalanced compares allocation outputs: two runs agree when both
// released everything they acquired.
func allocationBalanced(a, b alloc.Stats) bool {
	return a.Balanced() && b.Balanced()
}

func loopAllocationVariant(t *alloc.Tracker) func(workload.AllocationPlan) (alloc.Stats, float64, error) {
	return func(plan workload.AllocationPlan) (alloc.Stats, float64, error) {
		s, err := LoopAllocation(t, plan)
		return s, float64(s.BytesAcquired), err
	}
}

func nestedAllocationVariant(t *alloc.Tracker) func(workload.AllocationPlan) (alloc.Stats, float64, error) {
	return func(plan workload.AllocationPlan) (alloc.Stats, float64, error) {
		s, err := NestedAllocation(t, plan)
		return s, float64(s.BytesAcquired), err
	}
}
