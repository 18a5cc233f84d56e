package algorithms

import (
	"github.com/wesleyorama2/bigo/internal/bench/workload"
)

// NaiveMatch returns the start offsets of every, possibly overlapping,
// occurrence of pattern in body by comparing at each offset.
func NaiveMatch(body, pattern []byte) []int {
	matches := []int{}
	m := len(pattern)
	if m == 0 {
		return matches
	}
	for i := 0; i+m <= len(body); i++ {
		j := 0
		for j < m && body[i+j] == pattern[j] {
			j++
		}
		if j == m {
			matches = append(matches, i)
		}
	}
	return matches
}

// KMPMatch returns the same offsets as NaiveMatch using the Knuth-Morris-Pratt
// failure table.
func KMPMatch(body, pattern []byte) []int {
	matches := []int{}
	m := len(pattern)
	if m == 0 {
		return matches
	}

	fail := make([]int, m)
	for i, k := 1, 0; i < m; i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = fail[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		fail[i] = k
	}

	k := 0
	for i := 0; i < len(body); i++ {
		for k > 0 && body[i] != pattern[k] {
			k = fail[k-1]
		}
		if body[i] == pattern[k] {
			k++
		}
		if k == m {
			matches = append(matches, i-m+1)
			k = fail[k-1]
		}
	}
	return matches
}

// Histogram counts occurrences of each byte value.
type Histogram [256]int

// MostCommon returns the most frequent byte and its count. Ties go to the
// lower byte value.
func (h *Histogram) MostCommon() (byte, int) {
	var best byte
	count := 0
	for b, c := range h {
		if c > count {
			best, count = byte(b), c
		}
	}
	return best, count
}

// MapFrequency counts bytes with a hash map.
func MapFrequency(body []byte) Histogram {
	counts := make(map[byte]int)
	for _, b := range body {
		counts[b]++
	}
	var h Histogram
	for b, c := range counts {
		h[b] = c
	}
	return h
}

// ArrayFrequency counts bytes with a fixed array.
func ArrayFrequency(body []byte) Histogram {
	var h Histogram
	for _, b := range body {
		h[b]++
	}
	return h
}

func naiveMatchVariant(t workload.Text) ([]int, float64, error) {
	m := NaiveMatch(t.Body, t.Pattern)
	return m, float64(len(m)), nil
}

func kmpMatchVariant(t workload.Text) ([]int, float64, error) {
	m := KMPMatch(t.Body, t.Pattern)
	return m, float64(len(m)), nil
}

func mapFrequencyVariant(t workload.Text) (Histogram, float64, error) {
	h := MapFrequency(t.Body)
	_, count := h.MostCommon()
	return h, float64(count), nil
}

func arrayFrequencyVariant(t workload.Text) (Histogram, float64, error) {
	h := ArrayFrequency(t.Body)
	_, count := h.MostCommon()
	return h, float64(count), nil
}
