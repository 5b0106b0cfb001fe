// SPDX-License-Identifier: MIT
// Package score: SEM-BIC, the linear-Gaussian penalized likelihood.
//
//	score(y | P) = −n·ln σ²(y|P) − c·dof·ln n,   dof = |P'| + 1
//
// σ²(y|P) is the residual variance of y regressed on P, computed from the
// covariance alone: with L the Cholesky factor of Σ_PP and L·z = Σ_Py,
// σ² = Σ_yy − zᵀz. P' is P minus any regressors dropped as linearly
// dependent (only when IgnoreLinearDependence is set).

package score

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/fgs/covariance"
	"github.com/katalvlaran/fgs/matrix"
)

// DefaultPenaltyDiscount is the BIC penalty multiplier c.
const DefaultPenaltyDiscount = 4.0

// Option configures a SemBic.
type Option func(*SemBic)

// WithPenaltyDiscount sets c. Must be > 0.
func WithPenaltyDiscount(c float64) Option {
	return func(s *SemBic) { s.penalty = c }
}

// WithIgnoreLinearDependence drops dependent regressors instead of failing.
func WithIgnoreLinearDependence(on bool) Option {
	return func(s *SemBic) { s.ignoreDependence = on }
}

// WithTolerance sets the relative singularity tolerance (default 1e-10).
func WithTolerance(tol float64) Option {
	return func(s *SemBic) { s.tol = tol }
}

// SemBic scores nodes of a covariance matrix. Immutable and safe for
// concurrent use.
type SemBic struct {
	cov              *covariance.Matrix
	penalty          float64
	ignoreDependence bool
	tol              float64
	logN             float64
}

var _ Function = (*SemBic)(nil)

// NewSemBic returns a SEM-BIC score over cov.
//
// Errors: ErrBadOption for a nil covariance, penalty <= 0 or tol <= 0.
func NewSemBic(cov *covariance.Matrix, opts ...Option) (*SemBic, error) {
	if cov == nil {
		return nil, fmt.Errorf("score: nil covariance: %w", ErrBadOption)
	}
	s := &SemBic{
		cov:     cov,
		penalty: DefaultPenaltyDiscount,
		tol:     matrix.DefaultSingularTol,
	}
	for _, o := range opts {
		o(s)
	}
	if !(s.penalty > 0) {
		return nil, fmt.Errorf("score: penalty discount %v: %w", s.penalty, ErrBadOption)
	}
	if !(s.tol > 0) {
		return nil, fmt.Errorf("score: tolerance %v: %w", s.tol, ErrBadOption)
	}
	s.logN = math.Log(float64(cov.SampleSize()))

	return s, nil
}

// PenaltyDiscount returns c.
func (s *SemBic) PenaltyDiscount() float64 { return s.penalty }

// SampleSize returns n.
func (s *SemBic) SampleSize() int { return s.cov.SampleSize() }

// NumVariables returns the covariance dimension.
func (s *SemBic) NumVariables() int { return s.cov.Dim() }

// LocalScore implements Function.
//
// Errors: ErrBadParents, ErrIllDetermined.
func (s *SemBic) LocalScore(node int, parents []int) (Local, error) {
	ps, err := normalize(node, parents, s.cov.Dim())
	if err != nil {
		return Local{}, err
	}
	variance, kept, err := s.residualVariance(node, ps)
	if err != nil {
		return Local{}, err
	}
	n := float64(s.cov.SampleSize())
	dof := kept + 1

	return Local{
		Score: -n*math.Log(variance) - s.penalty*float64(dof)*s.logN,
		DOF:   dof,
	}, nil
}

// residualVariance returns σ²(node | parents) and the number of regressors kept.
func (s *SemBic) residualVariance(node int, parents []int) (float64, int, error) {
	syy := s.cov.At(node, node)
	if !(syy > 0) {
		return 0, 0, fmt.Errorf("score: node %d has variance %v: %w", node, syy, ErrIllDetermined)
	}
	if len(parents) == 0 {
		return syy, 0, nil
	}

	spp, err := s.cov.Submatrix(parents, parents)
	if err != nil {
		return 0, 0, err
	}
	ch, err := matrix.Factorize(spp, s.tol, s.ignoreDependence)
	if errors.Is(err, matrix.ErrSingular) {
		return 0, 0, fmt.Errorf("score: node %d parents %v: %w", node, parents, ErrIllDetermined)
	}
	if err != nil {
		return 0, 0, err
	}

	spy := make([]float64, len(ch.Kept))
	for i, k := range ch.Kept {
		spy[i] = s.cov.At(parents[k], node)
	}
	z, err := ch.SolveLower(spy)
	if err != nil {
		return 0, 0, err
	}
	variance := syy
	for _, v := range z {
		variance -= v * v
	}
	if variance <= s.tol*syy {
		return 0, 0, fmt.Errorf("score: node %d parents %v: no residual variance: %w", node, parents, ErrIllDetermined)
	}

	return variance, len(ch.Kept), nil
}
