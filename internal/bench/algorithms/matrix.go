package algorithms

import (
	"math"

	"github.com/wesleyorama2/bigo/internal/bench"
	"github.com/wesleyorama2/bigo/internal/bench/workload"
)

// MatrixTolerance is the absolute per-element tolerance used to compare
// multiplication results.
const MatrixTolerance = 1e-9

// NaiveMultiply computes a×b with the textbook i-j-k loop order, striding
// down the columns of b in the inner loop.
func NaiveMultiply(a, b workload.Matrix) (workload.Matrix, error) {
	n, err := squareSize(a, b)
	if err != nil {
		return nil, err
	}
	c := workload.NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var acc float64
			for k := 0; k < n; k++ {
				acc += a[i][k] * b[k][j]
			}
			c[i][j] = acc
		}
	}
	return c, nil
}

// OptimizedMultiply computes a×b with the i-k-j loop order so the inner loop
// walks rows of b and c sequentially.
func OptimizedMultiply(a, b workload.Matrix) (workload.Matrix, error) {
	n, err := squareSize(a, b)
	if err != nil {
		return nil, err
	}
	c := workload.NewMatrix(n)
	for i := 0; i < n; i++ {
		ci := c[i]
		for k := 0; k < n; k++ {
			aik := a[i][k]
			bk := b[k]
			for j := 0; j < n; j++ {
				ci[j] += aik * bk[j]
			}
		}
	}
	return c, nil
}

func squareSize(a, b workload.Matrix) (int, error) {
	n := len(a)
	if len(b) != n {
		return 0, bench.InvalidParameter("matrix", len(b), "matrices must have the same size, got %d and %d", n, len(b))
	}
	for i := 0; i < n; i++ {
		if len(a[i]) != n || len(b[i]) != n {
			return 0, bench.InvalidParameter("matrix", i, "row %d is not of length %d", i, n)
		}
	}
	return n, nil
}

// MatricesEqual reports whether a and b have the same shape and every pair
// of elements differs by at most tol.
func MatricesEqual(a, b workload.Matrix, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if math.Abs(a[i][j]-b[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

// Trace returns the sum of the main diagonal.
func Trace(m workload.Matrix) float64 {
	var t float64
	for i := range m {
		if i < len(m[i]) {
			t += m[i][i]
		}
	}
	return t
}

func naiveMultiplyVariant(p workload.MatrixPair) (workload.Matrix, float64, error) {
	c, err := NaiveMultiply(p.A, p.B)
	return c, Trace(c), err
}

func optimizedMultiplyVariant(p workload.MatrixPair) (workload.Matrix, float64, error) {
	c, err := OptimizedMultiply(p.A, p.B)
	return c, Trace(c), err
}
