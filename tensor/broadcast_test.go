package tensor_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/metricspace/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOuterAbsDiff(t *testing.T) {
	a := []float64{0, 1}
	b := []float64{0.5, 2, -1}
	dst, err := tensor.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, tensor.OuterAbsDiff(dst, a, b))
	assert.Equal(t, []float64{0.5, 2, 1, 0.5, 1, 2}, dst.Raw())

	wrong, err := tensor.NewDense(3, 2)
	require.NoError(t, err)
	require.ErrorIs(t, tensor.OuterAbsDiff(wrong, a, b), tensor.ErrDimensionMismatch)
	require.ErrorIs(t, tensor.OuterAbsDiff(nil, a, b), tensor.ErrNilTensor)
}

func TestScaleOuter(t *testing.T) {
	m, err := tensor.NewDense(1, 2)
	require.NoError(t, err)
	copy(m.Raw(), []float64{1, 3})
	q := []float64{0, 2, 10}

	dst, err := tensor.NewDense3(3, 1, 2)
	require.NoError(t, err)
	require.NoError(t, tensor.ScaleOuter(dst, q, m))
	assert.Equal(t, []float64{0, 0, 2, 6, 10, 30}, dst.Raw())

	bad, err := tensor.NewDense3(2, 1, 2)
	require.NoError(t, err)
	require.ErrorIs(t, tensor.ScaleOuter(bad, q, m), tensor.ErrDimensionMismatch)
}

func TestValidateFinite(t *testing.T) {
	require.NoError(t, tensor.ValidateFinite(nil))
	require.NoError(t, tensor.ValidateFinite([]float64{0, -3, 1e300}))

	for _, bad := range [][]float64{
		{0, math.NaN()},
		{math.Inf(1), 0},
		{1, math.Inf(-1)},
	} {
		require.ErrorIs(t, tensor.ValidateFinite(bad), tensor.ErrNaNInf)
	}
}

func TestValidateNonDecreasing(t *testing.T) {
	require.NoError(t, tensor.ValidateNonDecreasing(nil))
	require.NoError(t, tensor.ValidateNonDecreasing([]float64{0, 0, 0.1, 2}))
	require.ErrorIs(t, tensor.ValidateNonDecreasing([]float64{0, 0.2, 0.1}), tensor.ErrUnsorted)
}
