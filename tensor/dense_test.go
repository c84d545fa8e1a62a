// Package tensor_test contains unit tests for the Dense and Dense3 storage.
package tensor_test

import (
	"testing"

	"github.com/katalvlaran/metricspace/tensor"
	"github.com/stretchr/testify/require"
)

// TestNewDenseShapes ensures zero extents are legal and negative ones are rejected.
func TestNewDenseShapes(t *testing.T) {
	m, err := tensor.NewDense(0, 5)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 5, m.Cols())
	require.Empty(t, m.Raw())

	_, err = tensor.NewDense(-1, 2)
	require.ErrorIs(t, err, tensor.ErrBadShape)
}

// TestDenseAtSet validates Set followed by At, and out-of-range reporting.
func TestDenseAtSet(t *testing.T) {
	m, err := tensor.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, v)
	require.Equal(t, 7.89, m.Raw()[1*3+2]) // row-major offset

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, tensor.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), tensor.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), tensor.ErrOutOfRange)
}

// TestDenseRowIsView checks that Row aliases the backing storage.
func TestDenseRowIsView(t *testing.T) {
	m, err := tensor.NewDense(2, 2)
	require.NoError(t, err)

	m.Row(1)[0] = 4
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
}

// TestDenseReshapeZeroes verifies buffer reuse still yields a zeroed matrix.
func TestDenseReshapeZeroes(t *testing.T) {
	m, err := tensor.NewDense(3, 3)
	require.NoError(t, err)
	for i := range m.Raw() {
		m.Raw()[i] = 1
	}

	require.NoError(t, m.Reshape(2, 2))
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, []float64{0, 0, 0, 0}, m.Raw())

	require.NoError(t, m.Reshape(4, 5)) // grow past capacity
	require.Len(t, m.Raw(), 20)
	require.ErrorIs(t, m.Reshape(-1, 1), tensor.ErrBadShape)
}

// TestDenseString renders a small matrix.
func TestDenseString(t *testing.T) {
	m, err := tensor.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 1.5))
	require.Equal(t, "[0, 1.5]\n[0, 0]\n", m.String())
}
