// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics the search consumes: centering, sample
//     covariance and Pearson correlation of a tabular data matrix (rows = cases,
//     columns = variables).
//
// Exposed API:
//   - CenterColumns(X) -> (Xc, means)         // subtract per-column mean
//   - Covariance(X)    -> (Cov, means)        // sample covariance: (Xcᵀ Xc)/(r-1)
//   - Correlation(X)   -> (Corr, means, stds) // Pearson corr; degenerate std=0 → zeroed row/col
//
// Determinism & Performance:
//   - Fixed i→j→k traversal; covariance accumulates the upper triangle once and
//     mirrors it, so the result is exactly symmetric.
//   - Dense fast-paths operate on the row-major flat buffer.

package matrix

import "math"

const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
	opCorrelation   = "Correlation"
)

// denseOf returns X as *Dense, copying through At when X is another implementation.
func denseOf(X Matrix) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, err
	}
	if d, ok := X.(*Dense); ok {
		return d, nil
	}
	r, c := X.Rows(), X.Cols()
	d := &Dense{r: r, c: c, data: make([]float64, r*c)}
	var i, j int
	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, err
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}

// centerColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: Validate X; zero-size input is a no-op.
//   - Stage 2: Accumulate column sums in a single row-major pass.
//   - Stage 3: Write the centered copy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func centerColumns(X Matrix) (*Dense, []float64, error) {
	// Stage 1: validate.
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	d, err := denseOf(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	r, c := d.r, d.c
	means := make([]float64, c)
	if r == 0 || c == 0 {
		return d, means, nil
	}

	// Stage 2: column sums.
	var i, j int
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			means[j] += d.data[base+j]
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	// Stage 3: centered copy.
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			out.data[base+j] = d.data[base+j] - means[j]
		}
	}

	return out, means, nil
}

// covariance computes the sample covariance of the columns of X.
// Implementation:
//   - Stage 1: Validate X, require r>=2 (sample denominator r-1).
//   - Stage 2: Center once, then accumulate Σ_k xc[k,i]·xc[k,j] for i<=j.
//   - Stage 3: Scale by 1/(r-1) and mirror into the lower triangle.
//
// Behavior highlights:
//   - Output is exactly symmetric; diagonal holds sample variances.
//   - Positive semi-definite on well-formed data (modulo rounding).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2 or c==0), ErrNaNInf.
//
// Complexity:
//   - Time O(r*c^2), Space O(r*c + c^2).
func covariance(X Matrix) (*Dense, []float64, error) {
	// Stage 1: validate.
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r, c := X.Rows(), X.Cols()
	if r < 2 || c == 0 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	// Stage 2: center and accumulate the upper triangle.
	xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	cov := &Dense{r: c, c: c, data: make([]float64, c*c)}
	var i, j, k int
	var s float64
	for i = 0; i < c; i++ {
		for j = i; j < c; j++ {
			s = 0.0
			for k = 0; k < r; k++ {
				s += xc.data[k*c+i] * xc.data[k*c+j]
			}
			cov.data[i*c+j] = s
		}
	}

	// Stage 3: scale and mirror.
	inv := 1.0 / float64(r-1)
	for i = 0; i < c; i++ {
		for j = i; j < c; j++ {
			s = cov.data[i*c+j] * inv
			if math.IsNaN(s) || math.IsInf(s, 0) {
				return nil, nil, matrixErrorf(opCovariance, ErrNaNInf)
			}
			cov.data[i*c+j] = s
			cov.data[j*c+i] = s
		}
	}

	return cov, means, nil
}

// correlation computes Pearson correlation via the covariance matrix:
// Corr[i,j] = Cov[i,j] / (std_i·std_j). Columns with std==0 become zero rows/cols
// (diagonal 0) so downstream kernels see them as degenerate rather than NaN.
//
// Complexity:
//   - Time O(r*c^2), Space O(c^2).
func correlation(X Matrix) (*Dense, []float64, []float64, error) {
	cov, means, err := covariance(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	c := cov.c
	stds := make([]float64, c)
	var i, j int
	for i = 0; i < c; i++ {
		stds[i] = math.Sqrt(cov.data[i*c+i])
	}
	corr := &Dense{r: c, c: c, data: make([]float64, c*c)}
	for i = 0; i < c; i++ {
		for j = 0; j < c; j++ {
			if stds[i] > 0 && stds[j] > 0 {
				corr.data[i*c+j] = cov.data[i*c+j] / (stds[i] * stds[j])
			}
		}
	}

	return corr, means, stds, nil
}
