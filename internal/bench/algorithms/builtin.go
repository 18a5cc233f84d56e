// Package algorithms provides the built-in benchmark tags and their naive and
// optimized variants.
//
// Each tag pairs implementations with a known asymptotic gap (bubble sort
// against quick sort, linear against binary search, trial division against a
// sieve) so their timings can be compared on one workload.
package algorithms

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/wesleyorama2/bigo/internal/bench/alloc"
	"github.com/wesleyorama2/bigo/internal/bench/variant"
	"github.com/wesleyorama2/bigo/internal/bench/workload"
)

// Built-in tags.
const (
	TagSortable   variant.Tag = "sortable-sequence"
	TagSearchable variant.Tag = "searchable-sequence"
	TagTextMatch  variant.Tag = "text-match"
	TagCharFreq   variant.Tag = "character-frequency"
	TagPointSet   variant.Tag = "point-set"
	TagMatrixPair variant.Tag = "matrix-pair"
	TagFibonacci  variant.Tag = "fibonacci"
	TagPrimeCount variant.Tag = "prime-count"
	TagAllocation variant.Tag = "allocation"
)

// Contracts returns the contracts of all built-in tags.
func Contracts() []variant.Contract {
	return []variant.Contract{
		describe(variant.NewContract[workload.Sequence, workload.Sequence](TagSortable, workload.KindIntegers,
			func(a, b workload.Sequence) bool { return slices.Equal(a, b) }),
			"sum", 5000, "Sort a sequence of random integers"),
		describe(variant.NewContract[workload.SearchSet, []int](TagSearchable, workload.KindSearch,
			equalInts),
			"found", 100000, "Look up a batch of targets in a sorted sequence"),
		describe(variant.NewContract[workload.Text, []int](TagTextMatch, workload.KindText,
			equalInts),
			"matches", 500000, "Find every occurrence of a pattern in a text"),
		describe(variant.NewContract[workload.Text, Histogram](TagCharFreq, workload.KindText, nil),
			"top-count", 500000, "Count how often each character occurs in a text"),
		describe(variant.NewContract[workload.PointSet, Pair](TagPointSet, workload.KindPoints,
			func(a, b Pair) bool { return math.Abs(a.Distance-b.Distance) <= DistanceTolerance }),
			"distance", 2000, "Find the closest pair of points on a plane"),
		describe(variant.NewContract[workload.MatrixPair, workload.Matrix](TagMatrixPair, workload.KindMatrices,
			func(a, b workload.Matrix) bool { return MatricesEqual(a, b, MatrixTolerance) }),
			"trace", 500, "Multiply two square matrices"),
		describe(variant.NewContract[workload.Scalar, int](TagFibonacci, workload.KindScalar, nil),
			"value", 40, "Compute the n-th Fibonacci number"),
		describe(variant.NewContract[workload.Scalar, int](TagPrimeCount, workload.KindScalar, nil),
			"primes", 10000, "Count the primes up to n"),
		describe(variant.NewContract[workload.AllocationPlan, alloc.Stats](TagAllocation, workload.KindAllocation,
			allocationBalanced),
			"bytes", 1000, "Allocate, process and release scoped buffers"),
	}
}

func equalInts(a, b []int) bool {
	return slices.Equal(a, b)
}

func describe(c variant.Contract, metric string, size int, desc string) variant.Contract {
	c.MetricName = metric
	c.DefaultSize = size
	c.Description = desc
	return c
}

// RegisterBuiltins defines every built-in tag on reg and registers its
// variants. Allocation variants report to tracker.
func RegisterBuiltins(reg *variant.Registry, tracker *alloc.Tracker) error {
	for _, c := range Contracts() {
		if err := reg.Define(c); err != nil {
			return fmt.Errorf("failed to define %s: %w", c.Tag, err)
		}
	}

	return errors.Join(
		variant.Register(reg, TagSortable, "bubble-sort", variant.Quadratic, bubbleSortVariant),
		variant.Register(reg, TagSortable, "insertion-sort", variant.Quadratic, insertionSortVariant),
		variant.Register(reg, TagSortable, "quick-sort", variant.Linearithmic, quickSortVariant),
		variant.Register(reg, TagSortable, "std-sort", variant.Linearithmic, stdSortVariant),

		variant.Register(reg, TagSearchable, "linear-search", variant.Linear, linearSearchVariant),
		variant.Register(reg, TagSearchable, "binary-search", variant.Logarithmic, binarySearchVariant),

		variant.Register(reg, TagTextMatch, "naive-match", "O(n·m)", naiveMatchVariant),
		variant.Register(reg, TagTextMatch, "kmp-match", "O(n+m)", kmpMatchVariant),

		variant.Register(reg, TagCharFreq, "map-frequency", variant.Linear, mapFrequencyVariant),
		variant.Register(reg, TagCharFreq, "array-frequency", variant.Linear, arrayFrequencyVariant),

		variant.Register(reg, TagPointSet, "brute-force-closest-pair", variant.Quadratic, bruteForceVariant),
		variant.Register(reg, TagPointSet, "divide-conquer-closest-pair", variant.Linearithmic, divideConquerVariant),

		variant.Register(reg, TagMatrixPair, "naive-multiply", variant.Cubic, naiveMultiplyVariant),
		variant.Register(reg, TagMatrixPair, "optimized-multiply", variant.Cubic, optimizedMultiplyVariant),

		variant.Register(reg, TagFibonacci, "fib-recursive", variant.Exponential, fibRecursiveVariant),
		variant.Register(reg, TagFibonacci, "fib-iterative", variant.Linear, fibIterativeVariant),

		variant.Register(reg, TagPrimeCount, "trial-division", variant.Quadratic, trialDivisionVariant),
		variant.Register(reg, TagPrimeCount, "sqrt-trial-division", "O(n√n)", sqrtTrialDivisionVariant),
		variant.Register(reg, TagPrimeCount, "sieve", "O(n log log n)", sieveVariant),

		variant.Register(reg, TagAllocation, "loop-allocation", variant.Linear, loopAllocationVariant(tracker)),
		variant.Register(reg, TagAllocation, "nested-allocation", variant.Linear, nestedAllocationVariant(tracker)),
	)
}

// NewDefaultRegistry returns a registry holding every built-in tag and variant.
func NewDefaultRegistry(tracker *alloc.Tracker) (*variant.Registry, error) {
	reg := variant.NewRegistry()
	if err := RegisterBuiltins(reg, tracker); err != nil {
		return nil, err
	}
	return reg, nil
}
