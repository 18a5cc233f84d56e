// Package workload generates reproducible synthetic inputs for benchmark runs.
package workload

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind identifies the shape of a generated workload.
type Kind string

const (
	// KindIntegers is a sequence of uniformly random integers.
	KindIntegers Kind = "integers"

	// KindSearch is a sorted haystack plus a batch of query targets.
	KindSearch Kind = "search"

	// KindText is a random text body plus a pattern taken from it.
	KindText Kind = "text"

	// KindPoints is a set of points uniformly spread over a square plane.
	KindPoints Kind = "points"

	// KindMatrices is a pair of dense square matrices.
	KindMatrices Kind = "matrices"

	// KindScalar is a single integer parameter (a Fibonacci index, a prime limit).
	KindScalar Kind = "scalar"

	// KindAllocation is an allocate/process/release plan.
	KindAllocation Kind = "allocation"
)

// Kinds returns all supported workload kinds.
func Kinds() []Kind {
	return []Kind{KindIntegers, KindSearch, KindText, KindPoints, KindMatrices, KindScalar, KindAllocation}
}

// ParseKind converts a string into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown workload kind: %s", s)
}

// Range is a half-open value interval [Min, Max).
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Span returns Max - Min.
func (r Range) Span() int {
	return r.Max - r.Min
}

// Sequence is the payload of KindIntegers.
type Sequence []int

// SearchSet is the payload of KindSearch.
type SearchSet struct {
	// Haystack is sorted in non-decreasing order.
	Haystack []int
	Targets  []int
}

// Text is the payload of KindText.
type Text struct {
	Body    []byte
	Pattern []byte
}

// Point is a position on the plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PointSet is the payload of KindPoints.
type PointSet []Point

// Matrix is a dense square matrix stored by rows.
type Matrix [][]float64

// NewMatrix allocates a zeroed n×n matrix.
func NewMatrix(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	return m
}

// MatrixPair is the payload of KindMatrices.
type MatrixPair struct {
	A Matrix
	B Matrix
}

// Scalar is the payload of KindScalar.
type Scalar int

// AllocationPlan is the payload of KindAllocation.
type AllocationPlan struct {
	Iterations int
	BlockSize  int
}

// Workload is one generated input. It is never modified after generation;
// variants that need to mutate it work on a Clone.
type Workload struct {
	Kind  Kind  `json:"kind"`
	Size  int   `json:"size"`
	Seed  int64 `json:"seed"`
	Range Range `json:"range"`

	payload any
}

// Payload returns the generated data. Its dynamic type is determined by Kind.
func (w *Workload) Payload() any {
	return w.payload
}

// Clone returns a deep copy of the workload.
func (w *Workload) Clone() *Workload {
	c := *w
	c.payload = clonePayload(w.payload)
	return &c
}

func clonePayload(p any) any {
	switch v := p.(type) {
	case Sequence:
		return append(Sequence(nil), v...)
	case SearchSet:
		return SearchSet{
			Haystack: append([]int(nil), v.Haystack...),
			Targets:  append([]int(nil), v.Targets...),
		}
	case Text:
		return Text{
			Body:    append([]byte(nil), v.Body...),
			Pattern: append([]byte(nil), v.Pattern...),
		}
	case PointSet:
		return append(PointSet(nil), v...)
	case MatrixPair:
		return MatrixPair{A: cloneMatrix(v.A), B: cloneMatrix(v.B)}
	default:
		// Scalar and AllocationPlan are values.
		return p
	}
}

func cloneMatrix(m Matrix) Matrix {
	c := make(Matrix, len(m))
	for i, row := range m {
		c[i] = append([]float64(nil), row...)
	}
	return c
}

// PayloadType returns the dynamic type of Payload for workloads of kind k,
// or nil for an unknown kind.
func PayloadType(k Kind) reflect.Type {
	switch k {
	case KindIntegers:
		return reflect.TypeFor[Sequence]()
	case KindSearch:
		return reflect.TypeFor[SearchSet]()
	case KindText:
		return reflect.TypeFor[Text]()
	case KindPoints:
		return reflect.TypeFor[PointSet]()
	case KindMatrices:
		return reflect.TypeFor[MatrixPair]()
	case KindScalar:
		return reflect.TypeFor[Scalar]()
	case KindAllocation:
		return reflect.TypeFor[AllocationPlan]()
	default:
		return nil
	}
}
