package simulate

import (
	"fmt"

	"github.com/katalvlaran/fgs/core"
	"github.com/katalvlaran/fgs/covariance"
	"github.com/katalvlaran/fgs/matrix"
)

// ImpliedCovariance returns the population covariance of the model,
// (I - B)^-T Ω (I - B)^-1 with B = p.Weights and Ω = diag(p.Variances).
func ImpliedCovariance(g *core.Graph, p *Parameters) (*matrix.Dense, error) {
	k := g.NumNodes()
	if p == nil || p.Weights.Rows() != k || p.Weights.Cols() != k || len(p.Variances) != k {
		return nil, fmt.Errorf("simulate: parameters for %d nodes: %w", k, ErrBadParameter)
	}
	id, err := matrix.NewIdentity(k)
	if err != nil {
		return nil, err
	}
	omega, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, err
	}
	for i, v := range p.Variances {
		_ = omega.Set(i, i, v)
	}

	a, err := matrix.Sub(id, p.Weights)
	if err != nil {
		return nil, err
	}
	inv, err := matrix.Inverse(a)
	if err != nil {
		return nil, err
	}
	invT, err := matrix.Transpose(inv)
	if err != nil {
		return nil, err
	}
	left, err := matrix.Mul(invT, omega)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(left, inv)
}

// ImpliedCovarianceMatrix wraps ImpliedCovariance as a covariance.Matrix with
// sample size n, so the model can be scored without sampling noise.
func ImpliedCovarianceMatrix(g *core.Graph, p *Parameters, n int) (*covariance.Matrix, error) {
	sigma, err := ImpliedCovariance(g, p)
	if err != nil {
		return nil, err
	}
	symmetrize(sigma)

	return covariance.FromMatrix(g.Names(), sigma, n)
}

// symmetrize averages m with its transpose to remove rounding asymmetry.
func symmetrize(m *matrix.Dense) {
	for i := 0; i < m.Rows(); i++ {
		for j := i + 1; j < m.Cols(); j++ {
			a, _ := m.At(i, j)
			b, _ := m.At(j, i)
			_ = m.Set(i, j, (a+b)/2)
			_ = m.Set(j, i, (a+b)/2)
		}
	}
}
