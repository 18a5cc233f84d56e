// Package variant provides the registry of interchangeable algorithm
// implementations benchmarked by the runner.
//
// Variants are grouped by tag. Every tag has a Contract naming the workload
// kind it consumes and the output type its variants produce, so any two
// variants under one tag can be applied to the same workload and their
// outputs compared. Shapes are checked when a variant is registered, never
// when it runs.
package variant

import (
	"fmt"
	"reflect"

	"github.com/wesleyorama2/bigo/internal/bench"
	"github.com/wesleyorama2/bigo/internal/bench/workload"
)

// Tag classifies a group of mutually substitutable variants.
type Tag string

// Complexity is the theoretical complexity class of a variant, used for reporting.
type Complexity string

const (
	Constant     Complexity = "O(1)"
	Logarithmic  Complexity = "O(log n)"
	Linear       Complexity = "O(n)"
	Linearithmic Complexity = "O(n log n)"
	Quadratic    Complexity = "O(n²)"
	Cubic        Complexity = "O(n³)"
	Exponential  Complexity = "O(2ⁿ)"
)

// Contract describes the shape shared by all variants of a tag.
type Contract struct {
	// Tag is the tag this contract applies to
	Tag Tag

	// Kind is the workload kind the variants consume
	Kind workload.Kind

	// Input must equal workload.PayloadType(Kind)
	Input reflect.Type

	// Output is the type every variant returns
	Output reflect.Type

	// Equal compares two outputs; nil means reflect.DeepEqual
	Equal func(a, b any) bool

	// MetricName labels the side-channel metric (e.g. "matches")
	MetricName string

	// DefaultSize is a workload size that keeps the slowest variant in the
	// seconds range
	DefaultSize int

	// Description is a one-line summary for listings
	Description string
}

// NewContract builds a contract for variants of shape func(In) (Out, float64, error).
// equal may be nil.
func NewContract[In, Out any](tag Tag, kind workload.Kind, equal func(a, b Out) bool) Contract {
	c := Contract{
		Tag:    tag,
		Kind:   kind,
		Input:  reflect.TypeFor[In](),
		Output: reflect.TypeFor[Out](),
	}
	if equal != nil {
		c.Equal = func(a, b any) bool {
			x, ok1 := a.(Out)
			y, ok2 := b.(Out)
			return ok1 && ok2 && equal(x, y)
		}
	}
	return c
}

// Outputs reports whether two outputs of this contract agree.
func (c Contract) Outputs(a, b any) bool {
	if c.Equal != nil {
		return c.Equal(a, b)
	}
	return reflect.DeepEqual(a, b)
}

// Variant is one registered algorithm implementation. Variants are stateless:
// the same input always yields the same output.
type Variant struct {
	Tag        Tag
	Name       string
	Complexity Complexity

	call func(payload any) (any, float64, error)
}

// Run applies the variant to a workload payload.
func (v *Variant) Run(w *workload.Workload) (any, float64, error) {
	return v.call(w.Payload())
}

// String returns "tag/name".
func (v *Variant) String() string {
	return fmt.Sprintf("%s/%s", v.Tag, v.Name)
}

// Register adds a variant under tag. The input and output types are checked
// against the tag's contract and ErrTypeMismatch is returned on disagreement.
func Register[In, Out any](r *Registry, tag Tag, name string, complexity Complexity, fn func(In) (Out, float64, error)) error {
	contract, err := r.Contract(tag)
	if err != nil {
		return err
	}
	if name == "" {
		return bench.InvalidParameter("name", name, "variant name is required")
	}
	if fn == nil {
		return bench.InvalidParameter("fn", name, "variant function is required")
	}

	in := reflect.TypeFor[In]()
	if in != contract.Input {
		return &bench.MismatchError{Tag: string(tag), Name: name, Field: "input", Want: contract.Input.String(), Got: in.String()}
	}
	out := reflect.TypeFor[Out]()
	if out != contract.Output {
		return &bench.MismatchError{Tag: string(tag), Name: name, Field: "output", Want: contract.Output.String(), Got: out.String()}
	}

	v := &Variant{
		Tag:        tag,
		Name:       name,
		Complexity: complexity,
		call: func(payload any) (any, float64, error) {
			input, ok := payload.(In)
			if !ok {
				return nil, 0, &bench.MismatchError{Tag: string(tag), Name: name, Field: "input",
					Want: in.String(), Got: fmt.Sprintf("%T", payload)}
			}
			return fn(input)
		},
	}

	return r.add(v)
}
