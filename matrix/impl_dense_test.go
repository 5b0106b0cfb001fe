// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fgs/matrix"
)

// TestNewDense_InvalidDimensions ensures non-positive shapes are rejected.
func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseFrom covers length mismatch, NaN rejection and copy semantics.
func TestNewDenseFrom(t *testing.T) {
	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	src := []float64{1, 2, 3, 4}
	m, err := matrix.NewDenseFrom(2, 2, src)
	require.NoError(t, err)
	src[0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v, "buffer must be private")
}

// TestAtSet covers bounds checks and the finite-only Set policy.
func TestAtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)

	c := m.Clone()
	require.NoError(t, m.Set(1, 2, 0))
	v, err = c.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.5, v, "clone is deep")
}

// TestRowAndInduced checks copies of rows and arbitrary submatrices.
func TestRowAndInduced(t *testing.T) {
	m := mustDense(t, 3, 3,
		1, 2, 3,
		4, 5, 6,
		7, 8, 9)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)
	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	sub, err := m.Induced([]int{2, 0}, []int{1})
	require.NoError(t, err)
	requireClose(t, mustDense(t, 2, 1, 8, 2), sub, 0)

	empty, err := m.Induced(nil, []int{0})
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())

	_, err = m.Induced([]int{0}, []int{5})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n[7, 8, 9]\n", m.String())
}
