package variant

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/bigo/internal/bench"
	"github.com/wesleyorama2/bigo/internal/bench/workload"
)

const tagSum Tag = "summable"

func newSumRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	require.NoError(t, r.Define(NewContract[workload.Sequence, int](tagSum, workload.KindIntegers, nil)))
	return r
}

func sumForward(seq workload.Sequence) (int, float64, error) {
	total := 0
	for _, v := range seq {
		total += v
	}
	return total, float64(len(seq)), nil
}

func sumBackward(seq workload.Sequence) (int, float64, error) {
	total := 0
	for i := len(seq) - 1; i >= 0; i-- {
		total += seq[i]
	}
	return total, float64(len(seq)), nil
}

func TestRegister_AndRun(t *testing.T) {
	r := newSumRegistry(t)
	require.NoError(t, Register(r, tagSum, "forward", Linear, sumForward))
	require.NoError(t, Register(r, tagSum, "backward", Linear, sumBackward))

	w, err := workload.Generate(workload.KindIntegers, 50, 1)
	require.NoError(t, err)

	a, metricA, err := r.Run(tagSum, "forward", w)
	require.NoError(t, err)
	b, metricB, err := r.Run(tagSum, "backward", w)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, 50.0, metricA)
	assert.Equal(t, metricA, metricB)
}

func TestRegister_TypeMismatch(t *testing.T) {
	r := newSumRegistry(t)

	err := Register(r, tagSum, "points", Linear, func(p workload.PointSet) (int, float64, error) {
		return len(p), 0, nil
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, bench.ErrTypeMismatch), "input mismatch error = %v", err)

	var mismatch *bench.MismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "input", mismatch.Field)

	err = Register(r, tagSum, "float", Linear, func(s workload.Sequence) (float64, float64, error) {
		return 0, 0, nil
	})
	assert.True(t, errors.Is(err, bench.ErrTypeMismatch), "output mismatch error = %v", err)

	assert.Empty(t, r.Variants(tagSum), "mismatched variants must not be registered")
}

func TestRegister_UnknownTag(t *testing.T) {
	r := NewRegistry()
	err := Register(r, "nope", "x", Linear, sumForward)
	assert.True(t, errors.Is(err, bench.ErrUnknownVariant), "error = %v", err)
}

func TestRegister_Duplicate(t *testing.T) {
	r := newSumRegistry(t)
	require.NoError(t, Register(r, tagSum, "forward", Linear, sumForward))
	err := Register(r, tagSum, "forward", Linear, sumBackward)
	assert.True(t, errors.Is(err, bench.ErrInvalidParameter), "error = %v", err)
}

func TestRegister_EmptyName(t *testing.T) {
	r := newSumRegistry(t)
	err := Register(r, tagSum, "", Linear, sumForward)
	assert.True(t, errors.Is(err, bench.ErrInvalidParameter), "error = %v", err)
}

func TestDefine_InputMustMatchKind(t *testing.T) {
	r := NewRegistry()
	err := r.Define(NewContract[workload.PointSet, int]("bad", workload.KindIntegers, nil))
	assert.True(t, errors.Is(err, bench.ErrTypeMismatch), "error = %v", err)

	err = r.Define(NewContract[workload.Sequence, int]("worse", workload.Kind("cube"), nil))
	assert.True(t, errors.Is(err, bench.ErrInvalidParameter), "error = %v", err)
}

func TestDefine_Duplicate(t *testing.T) {
	r := newSumRegistry(t)
	err := r.Define(NewContract[workload.Sequence, int](tagSum, workload.KindIntegers, nil))
	assert.True(t, errors.Is(err, bench.ErrInvalidParameter), "error = %v", err)
}

func TestLookup_Unknown(t *testing.T) {
	r := newSumRegistry(t)
	require.NoError(t, Register(r, tagSum, "forward", Linear, sumForward))

	_, err := r.Lookup(tagSum, "sideways")
	assert.True(t, errors.Is(err, bench.ErrUnknownVariant))

	_, err = r.Lookup("other", "forward")
	assert.True(t, errors.Is(err, bench.ErrUnknownVariant))
}

func TestResolve_PreservesOrder(t *testing.T) {
	r := newSumRegistry(t)
	require.NoError(t, Register(r, tagSum, "forward", Linear, sumForward))
	require.NoError(t, Register(r, tagSum, "backward", Linear, sumBackward))

	vs, err := r.Resolve(tagSum, []string{"backward", "forward", "backward"})
	require.NoError(t, err)
	require.Len(t, vs, 3)
	assert.Equal(t, "backward", vs[0].Name)
	assert.Equal(t, "forward", vs[1].Name)

	_, err = r.Resolve(tagSum, []string{"forward", "missing"})
	assert.True(t, errors.Is(err, bench.ErrUnknownVariant))
}

func TestRegistry_Listing(t *testing.T) {
	r := newSumRegistry(t)
	require.NoError(t, r.Define(NewContract[workload.Scalar, int]("another", workload.KindScalar, nil)))
	require.NoError(t, Register(r, tagSum, "forward", Linear, sumForward))
	require.NoError(t, Register(r, tagSum, "backward", Linear, sumBackward))

	assert.Equal(t, []Tag{"another", tagSum}, r.Tags())
	assert.Equal(t, []string{"forward", "backward"}, r.Names(tagSum))

	list := r.Variants(tagSum)
	list[0] = nil
	assert.NotNil(t, r.Variants(tagSum)[0], "Variants must return a copy")
}

func TestRun_WrongWorkloadKind(t *testing.T) {
	r := newSumRegistry(t)
	require.NoError(t, Register(r, tagSum, "forward", Linear, sumForward))

	w, err := workload.Generate(workload.KindPoints, 5, 1)
	require.NoError(t, err)

	_, _, err = r.Run(tagSum, "forward", w)
	assert.True(t, errors.Is(err, bench.ErrInvalidParameter), "error = %v", err)
}

func TestContract_Outputs(t *testing.T) {
	deep := NewContract[workload.Sequence, []int]("deep", workload.KindIntegers, nil)
	assert.True(t, deep.Outputs([]int{1, 2}, []int{1, 2}))
	assert.False(t, deep.Outputs([]int{1, 2}, []int{2, 1}))

	custom := NewContract[workload.Sequence, []int]("custom", workload.KindIntegers, func(a, b []int) bool {
		return slices.Equal(a, b)
	})
	assert.True(t, custom.Outputs([]int{3}, []int{3}))
	assert.False(t, custom.Outputs([]int{3}, "not a slice"))
}

func TestVariant_String(t *testing.T) {
	r := newSumRegistry(t)
	require.NoError(t, Register(r, tagSum, "forward", Linear, sumForward))
	v, err := r.Lookup(tagSum, "forward")
	require.NoError(t, err)
	assert.Equal(t, "summable/forward", v.String())
	assert.Equal(t, Linear, v.Complexity)
}
