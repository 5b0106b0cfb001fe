// Package matrix offers the dense linear algebra the structure search runs on.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and
//     copy-based submatrix extraction (Induced).
//   - Column statistics: CenterColumns, Covariance, Correlation.
//   - Cholesky factorization with optional dependent-column dropping, used by
//     the local score to regress a variable on a parent set and to detect
//     (near-)singular parent covariance blocks.
//   - Sub, Mul, Transpose and Inverse, used to derive the population
//     covariance implied by a weighted DAG.
//
// All kernels are deterministic (fixed loop orders) and report failures with
// the sentinels in errors.go, wrapped with an operation tag.
package matrix
