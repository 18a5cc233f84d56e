package workload

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/wesleyorama2/bigo/internal/bench"
)

// seedStream is the second PCG word; fixing it makes the seed alone decide the stream.
const seedStream = 0x9e3779b97f4a7c15

// Options tunes the distributions used by a Generator.
type Options struct {
	// IntRange bounds the values of KindIntegers (default [0, 10000))
	IntRange Range `json:"intRange" yaml:"intRange"`

	// Queries is the number of search targets for KindSearch (default 10000)
	Queries int `json:"queries" yaml:"queries"`

	// Alphabet is the character set for KindText (default lowercase letters and space)
	Alphabet string `json:"alphabet" yaml:"alphabet"`

	// PatternLength is the pattern length for KindText (default 20)
	PatternLength int `json:"patternLength" yaml:"patternLength"`

	// PatternOffset is where the pattern is copied from in the body (default 1000)
	PatternOffset int `json:"patternOffset" yaml:"patternOffset"`

	// Plane bounds both coordinates of KindPoints (default [0, 1000))
	Plane Range `json:"plane" yaml:"plane"`

	// MatrixRange bounds the integral cell values of KindMatrices (default [0, 100))
	MatrixRange Range `json:"matrixRange" yaml:"matrixRange"`

	// BlockSize is the per-iteration buffer size of KindAllocation in bytes (default 1024)
	BlockSize int `json:"blockSize" yaml:"blockSize"`
}

// DefaultOptions returns the default value distributions for each kind.
func DefaultOptions() Options {
	return Options{
		IntRange:      Range{Min: 0, Max: 10000},
		Queries:       10000,
		Alphabet:      "abcdefghijklmnopqrstuvwxyz ",
		PatternLength: 20,
		PatternOffset: 1000,
		Plane:         Range{Min: 0, Max: 1000},
		MatrixRange:   Range{Min: 0, Max: 100},
		BlockSize:     1024,
	}
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.IntRange == (Range{}) {
		o.IntRange = d.IntRange
	}
	if o.Queries == 0 {
		o.Queries = d.Queries
	}
	if o.Alphabet == "" {
		o.Alphabet = d.Alphabet
	}
	if o.PatternLength == 0 {
		o.PatternLength = d.PatternLength
	}
	if o.PatternOffset == 0 {
		o.PatternOffset = d.PatternOffset
	}
	if o.Plane == (Range{}) {
		o.Plane = d.Plane
	}
	if o.MatrixRange == (Range{}) {
		o.MatrixRange = d.MatrixRange
	}
	if o.BlockSize == 0 {
		o.BlockSize = d.BlockSize
	}
	return o
}

// Generator produces workloads. It holds no state between calls.
type Generator struct {
	opts Options
}

// NewGenerator creates a generator. Zero option fields take their defaults.
func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts.withDefaults()}
}

// Options returns the effective options.
func (g *Generator) Options() Options {
	return g.opts
}

// Generate creates a workload using the default options.
func Generate(kind Kind, size int, seed int64) (*Workload, error) {
	return NewGenerator(Options{}).Generate(kind, size, seed)
}

// Generate creates a workload of the given kind. Identical arguments always
// produce identical content.
func (g *Generator) Generate(kind Kind, size int, seed int64) (*Workload, error) {
	if size <= 0 {
		return nil, bench.InvalidParameter("size", size, "must be a positive integer")
	}
	if err := g.validate(kind); err != nil {
		return nil, err
	}

	r := rand.New(rand.NewPCG(uint64(seed), seedStream))
	w := &Workload{Kind: kind, Size: size, Seed: seed}

	switch kind {
	case KindIntegers:
		w.Range = g.opts.IntRange
		w.payload = g.integers(r, size)
	case KindSearch:
		w.Range = Range{Min: 0, Max: 2 * size}
		w.payload = g.searchSet(r, size)
	case KindText:
		w.Range = Range{Min: 0, Max: len(g.opts.Alphabet)}
		w.payload = g.text(r, size)
	case KindPoints:
		w.Range = g.opts.Plane
		w.payload = g.points(r, size)
	case KindMatrices:
		w.Range = g.opts.MatrixRange
		w.payload = MatrixPair{A: g.matrix(r, size), B: g.matrix(r, size)}
	case KindScalar:
		w.Range = Range{Min: size, Max: size + 1}
		w.payload = Scalar(size)
	case KindAllocation:
		w.Range = Range{Min: 0, Max: g.opts.BlockSize}
		w.payload = AllocationPlan{Iterations: size, BlockSize: g.opts.BlockSize}
	}

	return w, nil
}

func (g *Generator) validate(kind Kind) error {
	switch kind {
	case KindIntegers:
		if g.opts.IntRange.Span() <= 0 {
			return bench.InvalidParameter("intRange", g.opts.IntRange, "max must be greater than min")
		}
	case KindSearch:
		if g.opts.Queries < 0 {
			return bench.InvalidParameter("queries", g.opts.Queries, "must not be negative")
		}
	case KindText:
		if g.opts.PatternLength < 0 {
			return bench.InvalidParameter("patternLength", g.opts.PatternLength, "must not be negative")
		}
	case KindPoints:
		if g.opts.Plane.Span() <= 0 {
			return bench.InvalidParameter("plane", g.opts.Plane, "max must be greater than min")
		}
	case KindMatrices:
		if g.opts.MatrixRange.Span() <= 0 {
			return bench.InvalidParameter("matrixRange", g.opts.MatrixRange, "max must be greater than min")
		}
	case KindAllocation:
		if g.opts.BlockSize <= 0 {
			return bench.InvalidParameter("blockSize", g.opts.BlockSize, "must be a positive integer")
		}
	case KindScalar:
	default:
		return bench.InvalidParameter("kind", kind, "unsupported workload kind")
	}
	return nil
}

func (g *Generator) integers(r *rand.Rand, n int) Sequence {
	span := g.opts.IntRange.Span()
	seq := make(Sequence, n)
	for i := range seq {
		seq[i] = g.opts.IntRange.Min + r.IntN(span)
	}
	return seq
}

func (g *Generator) searchSet(r *rand.Rand, n int) SearchSet {
	haystack := make([]int, n)
	for i := range haystack {
		haystack[i] = i * 2
	}

	// Half the targets are odd or past the end, so roughly half the queries miss.
	targets := make([]int, g.opts.Queries)
	for i := range targets {
		targets[i] = r.IntN(2 * n)
	}

	return SearchSet{Haystack: haystack, Targets: targets}
}

func (g *Generator) text(r *rand.Rand, n int) Text {
	alphabet := g.opts.Alphabet
	body := make([]byte, n)
	for i := range body {
		body[i] = alphabet[r.IntN(len(alphabet))]
	}

	plen := min(g.opts.PatternLength, n)
	offset := min(g.opts.PatternOffset, n-plen)
	pattern := append([]byte(nil), body[offset:offset+plen]...)

	return Text{Body: body, Pattern: pattern}
}

func (g *Generator) points(r *rand.Rand, n int) PointSet {
	lo := float64(g.opts.Plane.Min)
	span := float64(g.opts.Plane.Span())
	pts := make(PointSet, n)
	for i := range pts {
		pts[i] = Point{X: lo + r.Float64()*span, Y: lo + r.Float64()*span}
	}
	return pts
}

func (g *Generator) matrix(r *rand.Rand, n int) Matrix {
	m := NewMatrix(n)
	span := g.opts.MatrixRange.Span()
	for i := range m {
		for j := range m[i] {
			m[i][j] = float64(g.opts.MatrixRange.Min + r.IntN(span))
		}
	}
	return m
}

// ParseSeed parses a decimal or 0x-prefixed seed.
func ParseSeed(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	sign, digits := "", trimmed
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		sign, digits = digits[:1], digits[1:]
	}

	base := 10
	if len(digits) > 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		base, digits = 16, digits[2:]
	}
	if digits == "" || digits[0] == '-' || digits[0] == '+' {
		return 0, bench.InvalidParameter("seed", s, "must be a decimal or 0x-prefixed 64-bit integer")
	}

	seed, err := strconv.ParseInt(sign+digits, base, 64)
	if err != nil {
		return 0, bench.InvalidParameter("seed", s, "must be a decimal or 0x-prefixed 64-bit integer")
	}
	return seed, nil
}
