// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Thin, documented entry points; each facade delegates to the canonical kernel.
//
// Notes:
//   - Covariance → covariance.New wraps the result as the immutable provider
//     the search shares across workers.
//   - Factorize(..., drop=true) is the "ignore linear dependence" policy.

package matrix

// NewIdentity returns I_n (n×n identity).
// Complexity: O(n^2).
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// CenterColumns returns Xc = X − mean(X, by columns) and the column means.
// Time: O(r*c). Space: O(r*c). Deterministic.
func CenterColumns(X Matrix) (*Dense, []float64, error) { return centerColumns(X) }

// Covariance computes the sample covariance of columns: Cov = (Xcᵀ Xc)/(n-1).
// Returns Cov and column means.
//
// Notes:
//   - Requires r >= 2; else ErrDimensionMismatch.
//   - The result is exactly symmetric.
func Covariance(X Matrix) (*Dense, []float64, error) { return covariance(X) }

// Correlation computes Pearson correlation of columns; degenerate columns
// (std==0) are zeroed. Returns Corr, means, stds.
func Correlation(X Matrix) (*Dense, []float64, []float64, error) { return correlation(X) }

// CholeskyOf is a strict alias for Factorize(A, 0, false).
func CholeskyOf(A Matrix) (*Cholesky, error) { return Factorize(A, 0, false) }
