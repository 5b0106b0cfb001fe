// SPDX-License-Identifier: MIT
// Package matrix: central validators.
//
// Purpose:
//   - Single source of truth for argument checks shared by statistics and
//     factorization kernels. Validators return bare sentinels; kernels wrap
//     them with their own op tag.

package matrix

import (
	"math"
	"reflect"
)

// ValidateNotNil returns ErrNilMatrix if m is nil (including typed-nil *Dense).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if v := reflect.ValueOf(m); v.Kind() == reflect.Ptr && v.IsNil() {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare returns ErrNilMatrix or ErrNonSquare.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}

	return nil
}

// ValidateSymmetric checks |m[i,j] − m[j,i]| ≤ tol for all i<j.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (any non-finite cell), ErrAsymmetry.
//
// Complexity:
//   - Time O(n^2), Space O(1).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.Rows()
	var i, j int
	var a, b float64
	var err error
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if a, err = m.At(i, j); err != nil {
				return err
			}
			if b, err = m.At(j, i); err != nil {
				return err
			}
			if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
				return ErrNaNInf
			}
			if math.Abs(a-b) > tol {
				return ErrAsymmetry
			}
		}
	}

	return nil
}

// ValidatePSD checks that the symmetric m is positive semidefinite. It runs
// the dependent-dropping Cholesky pass and recomputes the pivot of every
// dropped column against the kept columns before it: a pivot below
// −tol·max|m[i,i]| means a negative eigenvalue. tol<=0 selects
// DefaultSingularTol.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrNotPSD.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func ValidatePSD(m Matrix, tol float64) error {
	if tol <= 0 {
		tol = DefaultSingularTol
	}
	ch, err := Factorize(m, tol, true)
	if err != nil {
		return err
	}
	n := m.Rows()
	var scale float64
	for i := 0; i < n; i++ {
		v, _ := m.At(i, i)
		if v < 0 {
			return ErrNotPSD
		}
		scale = math.Max(scale, v)
	}

	var a, b int
	var s, pivot float64
	for _, k := range ch.Dropped {
		// Kept is ascending; only its prefix below k took part in k's pivot.
		prefix := 0
		for prefix < len(ch.Kept) && ch.Kept[prefix] < k {
			prefix++
		}
		z := make([]float64, prefix)
		pivot, _ = m.At(k, k)
		for a = 0; a < prefix; a++ {
			s, _ = m.At(k, ch.Kept[a])
			for b = 0; b < a; b++ {
				s -= ch.rows[a][b] * z[b]
			}
			z[a] = s / ch.rows[a][a]
			pivot -= z[a] * z[a]
		}
		if pivot < -tol*scale {
			return ErrNotPSD
		}
	}

	return nil
}
