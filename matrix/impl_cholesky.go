// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Cholesky factorization of symmetric positive (semi-)definite matrices,
//     the kernel behind every regression the local score performs.
//   - Optional dependent-column dropping: a column whose pivot falls to or below
//     tol·A[k,k] is linearly dependent on the columns before it and can either
//     fail the factorization (ErrSingular) or be skipped.
//
// Determinism:
//   - Columns are considered strictly in index order; the kept set for a given
//     input and tolerance is therefore reproducible.

package matrix

import "math"

const (
	opCholesky   = "Cholesky"
	opSolveLower = "SolveLower"
)

// DefaultSingularTol is the relative pivot tolerance used when callers pass tol<=0.
const DefaultSingularTol = 1e-10

// Cholesky holds the lower-triangular factor L of the kept principal block
// A[K,K] = L·Lᵀ, where K = Kept (ascending).
type Cholesky struct {
	rows    [][]float64 // rows[a] has length a+1: L[a,0..a]
	Kept    []int       // original column indices kept, ascending
	Dropped []int       // original column indices skipped as dependent
}

// Factorize computes the Cholesky factor of the symmetric matrix A.
//
// Implementation:
//   - Stage 1: Validate A (non-nil, square).
//   - Stage 2: For each column k in order, compute its row of L against the
//     columns already kept (Cholesky–Banachiewicz).
//   - Stage 3: Pivot test d ≤ tol·A[k,k] (or A[k,k] ≤ 0) marks k dependent;
//     drop==false → ErrSingular, drop==true → record k in Dropped and continue.
//
// Inputs:
//   - A: symmetric matrix (only the lower triangle through column k is read).
//   - tol: relative pivot tolerance; tol<=0 selects DefaultSingularTol.
//   - drop: skip dependent columns instead of failing.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Factorize(A Matrix, tol float64, drop bool) (*Cholesky, error) {
	// Stage 1: validate.
	if err := ValidateSquare(A); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	d, err := denseOf(A)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	if tol <= 0 {
		tol = DefaultSingularTol
	}

	n := d.r
	ch := &Cholesky{
		rows: make([][]float64, 0, n),
		Kept: make([]int, 0, n),
	}

	// Stage 2: row-by-row factorization over candidate columns.
	var a, b, k int
	var s, akk, pivot float64
	for k = 0; k < n; k++ {
		akk = d.data[k*n+k]
		if math.IsNaN(akk) || math.IsInf(akk, 0) {
			return nil, matrixErrorf(opCholesky, ErrNaNInf)
		}
		m := len(ch.Kept)
		row := make([]float64, m+1)
		for a = 0; a < m; a++ {
			s = d.data[k*n+ch.Kept[a]]
			for b = 0; b < a; b++ {
				s -= row[b] * ch.rows[a][b]
			}
			row[a] = s / ch.rows[a][a]
		}
		pivot = akk
		for b = 0; b < m; b++ {
			pivot -= row[b] * row[b]
		}

		// Stage 3: dependency test.
		if akk <= 0 || pivot <= tol*akk {
			if !drop {
				return nil, matrixErrorf(opCholesky, ErrSingular)
			}
			ch.Dropped = append(ch.Dropped, k)
			continue
		}
		row[m] = math.Sqrt(pivot)
		ch.rows = append(ch.rows, row)
		ch.Kept = append(ch.Kept, k)
	}

	return ch, nil
}

// Size returns the dimension of the kept block.
func (c *Cholesky) Size() int { return len(c.Kept) }

// L materializes the factor as a Size()×Size() lower-triangular *Dense.
// A zero-size factor yields a 0×0 Dense.
func (c *Cholesky) L() *Dense {
	n := len(c.rows)
	out := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i, row := range c.rows {
		copy(out.data[i*n:i*n+len(row)], row)
	}

	return out
}

// SolveLower solves L·z = b by forward substitution, where b is indexed like Kept.
//
// Errors:
//   - ErrDimensionMismatch when len(b) != Size().
//
// Complexity:
//   - Time O(n^2), Space O(n).
func (c *Cholesky) SolveLower(b []float64) ([]float64, error) {
	n := len(c.rows)
	if len(b) != n {
		return nil, matrixErrorf(opSolveLower, ErrDimensionMismatch)
	}
	z := make([]float64, n)
	var i, j int
	var s float64
	for i = 0; i < n; i++ {
		s = b[i]
		for j = 0; j < i; j++ {
			s -= c.rows[i][j] * z[j]
		}
		z[i] = s / c.rows[i][i]
	}

	return z, nil
}

// LogDet returns ln det(A[K,K]) = 2·Σ ln L[i,i].
func (c *Cholesky) LogDet() float64 {
	var s float64
	for i, row := range c.rows {
		s += math.Log(row[i])
	}

	return 2 * s
}
