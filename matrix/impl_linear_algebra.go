// SPDX-License-Identifier: MIT
// Package matrix: dense linear-algebra kernels.
//
// Purpose:
//   - The handful of kernels the simulator needs to turn a weighted DAG into
//     its implied population covariance: Σ = (I − B)^{-T} Ω (I − B)^{-1}.
//
// Notes:
//   - Every kernel allocates a fresh *Dense; operands are never mutated.
//   - Loop orders are fixed, so results are bit-for-bit reproducible.

package matrix

import "fmt"

// Operation tags for error wrapping.
const (
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opInverse   = "Inverse"
)

// Sub computes C = A − B for equally shaped operands.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	da, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	if da.r != db.r || da.c != db.c {
		return nil, matrixErrorf(opSub, ErrDimensionMismatch)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	for idx := range res.data {
		res.data[idx] = da.data[idx] - db.data[idx]
	}

	return res, nil
}

// Mul computes C = A × B.
// The i→k→j loop skips zero A[i,k], which keeps sparse weight matrices cheap.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (A.Cols != B.Rows).
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	da, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if da.c != db.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	res, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, k, j int
	var av float64
	for i = 0; i < da.r; i++ {
		for k = 0; k < da.c; k++ {
			av = da.data[i*da.c+k]
			if av == 0 {
				continue
			}
			for j = 0; j < db.c; j++ {
				res.data[i*db.c+j] += av * db.data[k*db.c+j]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	dm, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(dm.c, dm.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < dm.r; i++ {
		for j := 0; j < dm.c; j++ {
			res.data[j*dm.r+i] = dm.data[i*dm.c+j]
		}
	}

	return res, nil
}

// Inverse returns m^{-1} via Gauss–Jordan elimination with partial pivoting.
// Pivots with magnitude at or below DefaultSingularTol give ErrSingular.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: Time O(n^3), Space O(n^2).
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	dm, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := dm.r

	// 1) Work on [A | I] stored as two row-major buffers.
	a := append([]float64(nil), dm.data...)
	inv, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	b := inv.data

	var col, row, piv, j int
	var best, v, f float64
	for col = 0; col < n; col++ {
		// 2) Partial pivot: largest |a[row,col]| at or below the diagonal.
		piv, best = col, abs(a[col*n+col])
		for row = col + 1; row < n; row++ {
			if v = abs(a[row*n+col]); v > best {
				piv, best = row, v
			}
		}
		if best <= DefaultSingularTol {
			return nil, matrixErrorf(opInverse, fmt.Errorf("column %d: %w", col, ErrSingular))
		}
		if piv != col {
			for j = 0; j < n; j++ {
				a[col*n+j], a[piv*n+j] = a[piv*n+j], a[col*n+j]
				b[col*n+j], b[piv*n+j] = b[piv*n+j], b[col*n+j]
			}
		}

		// 3) Normalize the pivot row, then eliminate the column elsewhere.
		f = a[col*n+col]
		for j = 0; j < n; j++ {
			a[col*n+j] /= f
			b[col*n+j] /= f
		}
		for row = 0; row < n; row++ {
			if row == col {
				continue
			}
			f = a[row*n+col]
			if f == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				a[row*n+j] -= f * a[col*n+j]
				b[row*n+j] -= f * b[col*n+j]
			}
		}
	}

	return inv, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
