package algorithms

import (
	"slices"

	"github.com/wesleyorama2/bigo/internal/bench/workload"
)

// BubbleSort sorts s in place, stopping early once a pass makes no swaps.
func BubbleSort(s []int) {
	n := len(s)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if s[j] > s[j+1] {
				s[j], s[j+1] = s[j+1], s[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// InsertionSort sorts s in place.
func InsertionSort(s []int) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i - 1
		for j >= 0 && s[j] > v {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = v
	}
}

// QuickSort sorts s in place with Lomuto partitioning around the last
// element. It recurses only into the smaller partition and loops over the
// larger one, so the stack depth stays within log2(len(s)) even for sorted
// input. The maximum recursion depth reached is returned.
func QuickSort(s []int) int {
	return quickSort(s, 0, len(s)-1, 1)
}

func quickSort(s []int, lo, hi, depth int) int {
	deepest := depth
	for lo < hi {
		p := partition(s, lo, hi)
		if p-lo < hi-p {
			deepest = max(deepest, quickSort(s, lo, p-1, depth+1))
			lo = p + 1
		} else {
			deepest = max(deepest, quickSort(s, p+1, hi, depth+1))
			hi = p - 1
		}
	}
	return deepest
}

func partition(s []int, lo, hi int) int {
	pivot := s[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if s[j] <= pivot {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[hi] = s[hi], s[i]
	return i
}

func sum(s []int) float64 {
	var total int
	for _, v := range s {
		total += v
	}
	return float64(total)
}

func bubbleSortVariant(s workload.Sequence) (workload.Sequence, float64, error) {
	BubbleSort(s)
	return s, sum(s), nil
}

func insertionSortVariant(s workload.Sequence) (workload.Sequence, float64, error) {
	InsertionSort(s)
	return s, sum(s), nil
}

func quickSortVariant(s workload.Sequence) (workload.Sequence, float64, error) {
	QuickSort(s)
	return s, sum(s), nil
}

func stdSortVariant(s workload.Sequence) (workload.Sequence, float64, error) {
	slices.Sort(s)
	return s, sum(s), nil
}
