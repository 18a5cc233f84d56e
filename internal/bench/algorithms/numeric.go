package algorithms

import (
	"github.com/wesleyorama2/bigo/internal/bench"
	"github.com/wesleyorama2/bigo/internal/bench/workload"
)

const (
	// MaxRecursiveFibonacci bounds the index accepted by FibRecursive. Both
	// the running time and the call tree grow as 2ⁿ.
	MaxRecursiveFibonacci = 50

	// MaxFibonacci is the largest index whose value fits in an int64.
	MaxFibonacci = 92
)

// FibRecursive computes the n-th Fibonacci number with the doubly recursive
// definition. The recursion depth is n.
func FibRecursive(n int) (int, error) {
	if n < 0 || n > MaxRecursiveFibonacci {
		return 0, bench.InvalidParameter("n", n, "recursive fibonacci accepts indices in [0, %d]", MaxRecursiveFibonacci)
	}
	return fib(n), nil
}

func fib(n int) int {
	if n <= 1 {
		return n
	}
	return fib(n-1) + fib(n-2)
}

// FibIterative computes the n-th Fibonacci number in n steps.
func FibIterative(n int) (int, error) {
	if n < 0 || n > MaxFibonacci {
		return 0, bench.InvalidParameter("n", n, "fibonacci accepts indices in [0, %d]", MaxFibonacci)
	}
	a, b := 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a, nil
}

// IsPrimeTrial tests primality by trying every divisor below n.
func IsPrimeTrial(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d < n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// IsPrimeSqrt tests primality by trying odd divisors up to √n.
func IsPrimeSqrt(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// CountPrimes returns the number of primes p with 2 <= p <= limit according
// to isPrime.
func CountPrimes(limit int, isPrime func(int) bool) int {
	count := 0
	for i := 2; i <= limit; i++ {
		if isPrime(i) {
			count++
		}
	}
	return count
}

// SieveCount counts the primes up to and including limit with the sieve of
// Eratosthenes.
func SieveCount(limit int) int {
	if limit < 2 {
		return 0
	}
	composite := make([]bool, limit+1)
	count := 0
	for i := 2; i <= limit; i++ {
		if composite[i] {
			continue
		}
		count++
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}
	return count
}

func fibRecursiveVariant(n workload.Scalar) (int, float64, error) {
	v, err := FibRecursive(int(n))
	return v, float64(v), err
}

func fibIterativeVariant(n workload.Scalar) (int, float64, error) {
	v, err := FibIterative(int(n))
	return v, float64(v), err
}

func trialDivisionVariant(n workload.Scalar) (int, float64, error) {
	c := CountPrimes(int(n), IsPrimeTrial)
	return c, float64(c), nil
}

func sqrtTrialDivisionVariant(n workload.Scalar) (int, float64, error) {
	c := CountPrimes(int(n), IsPrimeSqrt)
	return c, float64(c), nil
}

func sieveVariant(n workload.Scalar) (int, float64, error) {
	c := SieveCount(int(n))
	return c, float64(c), nil
}
