// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fgs/matrix"
)

func TestSubMulTranspose(t *testing.T) {
	a := mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := mustDense(t, 3, 2, 1, 0, 0, 1, 1, 1)

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireClose(t, mustDense(t, 2, 2, 4, 5, 10, 11), p, 0)

	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	requireClose(t, p, slow, 0)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	requireClose(t, mustDense(t, 3, 2, 1, 4, 2, 5, 3, 6), at, 0)

	d, err := matrix.Sub(p, p)
	require.NoError(t, err)
	requireClose(t, mustDense(t, 2, 2, 0, 0, 0, 0), d, 0)
	_, err = matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInverse(t *testing.T) {
	// Needs a row swap: zero in the leading position.
	a := mustDense(t, 3, 3,
		0, 1, 2,
		1, 0, 3,
		4, -3, 8)
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	requireClose(t, id, prod, 1e-12)

	_, err = matrix.Inverse(mustDense(t, 2, 2, 1, 2, 2, 4))
	require.ErrorIs(t, err, matrix.ErrSingular)
	_, err = matrix.Inverse(mustDense(t, 1, 2, 1, 2))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
