// Package covariance provides the immutable sample covariance a search
// session scores against. A Matrix is built once, from a dataset or from a
// precomputed matrix, and is then shared read-only by every worker.
package covariance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fgs/core"
	"github.com/katalvlaran/fgs/dataset"
	"github.com/katalvlaran/fgs/matrix"
)

// ErrInvalid indicates a covariance matrix that cannot back a search:
// wrong shape, asymmetric, not positive semidefinite, or a sample size
// below 2.
var ErrInvalid = errors.New("covariance: invalid covariance matrix")

// Tolerances for matrices supplied by callers.
const (
	symmetryTol = 1e-9 // |Σ[i,j] − Σ[j,i]|
	psdTol      = 1e-9 // negative pivots, relative to the largest variance
)

// Matrix is a read-only covariance over a fixed variable list.
type Matrix struct {
	variables []core.Node
	sigma     *matrix.Dense
	n         int
}

// New computes the sample covariance of d.
func New(d *dataset.Dataset) (*Matrix, error) {
	if d == nil {
		return nil, fmt.Errorf("covariance: nil dataset: %w", ErrInvalid)
	}
	sigma, _, err := matrix.Covariance(d.Data())
	if err != nil {
		return nil, fmt.Errorf("covariance: %v: %w", err, ErrInvalid)
	}

	return &Matrix{variables: d.Variables(), sigma: sigma, n: d.NumRows()}, nil
}

// FromMatrix wraps a precomputed covariance over names with sample size n.
// sigma is copied.
//
// Errors: ErrInvalid.
func FromMatrix(names []string, sigma matrix.Matrix, n int) (*Matrix, error) {
	if err := matrix.ValidateSymmetric(sigma, symmetryTol); err != nil {
		return nil, fmt.Errorf("covariance: %v: %w", err, ErrInvalid)
	}
	if sigma.Rows() != len(names) {
		return nil, fmt.Errorf("covariance: %d names for %d×%d matrix: %w", len(names), sigma.Rows(), sigma.Cols(), ErrInvalid)
	}
	if n < 2 {
		return nil, fmt.Errorf("covariance: sample size %d: %w", n, ErrInvalid)
	}
	g, err := core.NewGraphFromNames(names)
	if err != nil {
		return nil, fmt.Errorf("covariance: %v: %w", err, ErrInvalid)
	}
	p := len(names)
	vals := make([]float64, p*p)
	for i := 0; i < p; i++ {
		for j := 0; j < p; j++ {
			v, _ := sigma.At(i, j)
			if i == j && v < 0 {
				return nil, fmt.Errorf("covariance: negative variance for %q: %w", names[i], ErrInvalid)
			}
			vals[i*p+j] = v
		}
	}
	dense, err := matrix.NewDenseFrom(p, p, vals)
	if err != nil {
		return nil, fmt.Errorf("covariance: %v: %w", err, ErrInvalid)
	}
	if err := matrix.ValidatePSD(dense, psdTol); err != nil {
		return nil, fmt.Errorf("covariance: %v: %w", err, ErrInvalid)
	}

	return &Matrix{variables: g.Nodes(), sigma: dense, n: n}, nil
}

// Variables returns a copy of the variable list.
func (m *Matrix) Variables() []core.Node {
	out := make([]core.Node, len(m.variables))
	copy(out, m.variables)

	return out
}

// Names returns the variable names in index order.
func (m *Matrix) Names() []string {
	out := make([]string, len(m.variables))
	for i, v := range m.variables {
		out[i] = v.Name
	}

	return out
}

// Dim returns the number of variables.
func (m *Matrix) Dim() int { return len(m.variables) }

// SampleSize returns the number of cases the covariance was estimated from.
func (m *Matrix) SampleSize() int { return m.n }

// At returns Σ[i,j]. Indices must be in range.
func (m *Matrix) At(i, j int) float64 {
	v, _ := m.sigma.At(i, j)

	return v
}

// Submatrix returns Σ[rows, cols] as a fresh Dense.
func (m *Matrix) Submatrix(rows, cols []int) (*matrix.Dense, error) {
	return m.sigma.Induced(rows, cols)
}

// Dense returns a copy of the full matrix.
func (m *Matrix) Dense() *matrix.Dense {
	return m.sigma.Clone().(*matrix.Dense)
}
