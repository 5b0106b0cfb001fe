// SPDX-License-Identifier: MIT

// Package matrix: the read/write surface shared by dense storage and the
// statistics kernels. Covariance matrices handed to the search are *Dense;
// the interface exists so kernels can accept views and test doubles.
package matrix

// Matrix is a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the element at (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set assigns v at (i, j) or returns ErrOutOfRange / ErrNaNInf.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
