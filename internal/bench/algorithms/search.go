package algorithms

import (
	"github.com/wesleyorama2/bigo/internal/bench/workload"
)

// LinearSearch returns the index of the first occurrence of target, or -1.
func LinearSearch(haystack []int, target int) int {
	for i, v := range haystack {
		if v == target {
			return i
		}
	}
	return -1
}

// BinarySearch returns the index of the first occurrence of target in a
// sorted haystack, or -1.
func BinarySearch(haystack []int, target int) int {
	lo, hi := 0, len(haystack)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if haystack[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(haystack) && haystack[lo] == target {
		return lo
	}
	return -1
}

func searchAll(set workload.SearchSet, find func([]int, int) int) ([]int, float64, error) {
	positions := make([]int, len(set.Targets))
	found := 0
	for i, target := range set.Targets {
		positions[i] = find(set.Haystack, target)
		if positions[i] >= 0 {
			found++
		}
	}
	return positions, float64(found), nil
}

func linearSearchVariant(set workload.SearchSet) ([]int, float64, error) {
	return searchAll(set, LinearSearch)
}

func binarySearchVariant(set workload.SearchSet) ([]int, float64, error) {
	return searchAll(set, BinarySearch)
}
