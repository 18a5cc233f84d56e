package variant

import (
	"sort"

	"github.com/wesleyorama2/bigo/internal/bench"
	"github.com/wesleyorama2/bigo/internal/bench/workload"
)

// Registry holds tag contracts and the variants registered under them.
//
// A Registry is built once at startup and then only read. It is not safe for
// concurrent registration.
type Registry struct {
	contracts map[Tag]Contract
	variants  map[Tag][]*Variant
	index     map[Tag]map[string]*Variant
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		contracts: make(map[Tag]Contract),
		variants:  make(map[Tag][]*Variant),
		index:     make(map[Tag]map[string]*Variant),
	}
}

// Define declares a tag. The contract's input type must match the payload
// type of its workload kind.
func (r *Registry) Define(c Contract) error {
	if c.Tag == "" {
		return bench.InvalidParameter("tag", c.Tag, "tag is required")
	}
	if _, exists := r.contracts[c.Tag]; exists {
		return bench.InvalidParameter("tag", c.Tag, "tag is already defined")
	}

	payload := workload.PayloadType(c.Kind)
	if payload == nil {
		return bench.InvalidParameter("kind", c.Kind, "unsupported workload kind")
	}
	if c.Input != payload {
		return &bench.MismatchError{Tag: string(c.Tag), Name: "(contract)", Field: "input",
			Want: payload.String(), Got: typeName(c.Input)}
	}
	if c.Output == nil {
		return bench.InvalidParameter("output", c.Tag, "contract output type is required")
	}

	r.contracts[c.Tag] = c
	r.index[c.Tag] = make(map[string]*Variant)
	return nil
}

// Contract returns the contract of a tag.
func (r *Registry) Contract(tag Tag) (Contract, error) {
	c, ok := r.contracts[tag]
	if !ok {
		return Contract{}, &bench.VariantError{Tag: string(tag)}
	}
	return c, nil
}

func (r *Registry) add(v *Variant) error {
	if _, exists := r.index[v.Tag][v.Name]; exists {
		return bench.InvalidParameter("name", v.Name, "variant is already registered for tag %s", v.Tag)
	}
	r.index[v.Tag][v.Name] = v
	r.variants[v.Tag] = append(r.variants[v.Tag], v)
	return nil
}

// Lookup returns a registered variant.
func (r *Registry) Lookup(tag Tag, name string) (*Variant, error) {
	names, ok := r.index[tag]
	if !ok {
		return nil, &bench.VariantError{Tag: string(tag)}
	}
	v, ok := names[name]
	if !ok {
		return nil, &bench.VariantError{Tag: string(tag), Name: name}
	}
	return v, nil
}

// Resolve looks up every name, preserving order. It fails on the first
// unknown name without returning a partial list.
func (r *Registry) Resolve(tag Tag, names []string) ([]*Variant, error) {
	if _, err := r.Contract(tag); err != nil {
		return nil, err
	}

	resolved := make([]*Variant, 0, len(names))
	for _, name := range names {
		v, err := r.Lookup(tag, name)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, v)
	}
	return resolved, nil
}

// Variants returns the variants of a tag in registration order.
func (r *Registry) Variants(tag Tag) []*Variant {
	list := r.variants[tag]
	out := make([]*Variant, len(list))
	copy(out, list)
	return out
}

// Names returns the variant names of a tag in registration order.
func (r *Registry) Names(tag Tag) []string {
	names := make([]string, 0, len(r.variants[tag]))
	for _, v := range r.variants[tag] {
		names = append(names, v.Name)
	}
	return names
}

// Tags returns all defined tags, sorted.
func (r *Registry) Tags() []Tag {
	tags := make([]Tag, 0, len(r.contracts))
	for tag := range r.contracts {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// Run applies a registered variant to a workload and returns its output and
// side-channel metric.
func (r *Registry) Run(tag Tag, name string, w *workload.Workload) (any, float64, error) {
	v, err := r.Lookup(tag, name)
	if err != nil {
		return nil, 0, err
	}
	c := r.contracts[tag]
	if w == nil || w.Kind != c.Kind {
		return nil, 0, bench.InvalidParameter("workload", kindOf(w), "tag %s expects a %s workload", tag, c.Kind)
	}
	return v.Run(w)
}

func kindOf(w *workload.Workload) workload.Kind {
	if w == nil {
		return ""
	}
	return w.Kind
}

func typeName(t interface{ String() string }) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
