// SPDX-License-Identifier: MIT
// Package score: independence strategies.
//
// The search only asks marginal questions (empty conditioning set) when it
// assumes faithfulness, but both strategies answer conditional ones.

package score

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/fgs/covariance"
	"github.com/katalvlaran/fgs/matrix"
)

// IndependenceTest decides x ⊥ y | z. The float is strategy specific: a
// p-value for FisherZ, a score difference for ScoreIndependence.
type IndependenceTest interface {
	Independent(x, y int, z []int) (bool, float64, error)
}

// FisherZ is the partial-correlation test for linear-Gaussian data.
type FisherZ struct {
	cov   *covariance.Matrix
	alpha float64
}

var _ IndependenceTest = (*FisherZ)(nil)

// NewFisherZ returns a test at significance level alpha ∈ (0, 1).
func NewFisherZ(cov *covariance.Matrix, alpha float64) (*FisherZ, error) {
	if cov == nil || !(alpha > 0 && alpha < 1) {
		return nil, fmt.Errorf("score: fisher z alpha %v: %w", alpha, ErrBadOption)
	}

	return &FisherZ{cov: cov, alpha: alpha}, nil
}

// Alpha returns the significance level.
func (f *FisherZ) Alpha() float64 { return f.alpha }

// Independent reports p > alpha, with p the two-sided p-value of Fisher's z
// for the partial correlation of x and y given z.
//
// Errors: ErrBadParents (bad indices), ErrIllDetermined (singular block or
// too few cases for |z|).
func (f *FisherZ) Independent(x, y int, z []int) (bool, float64, error) {
	r, err := f.PartialCorrelation(x, y, z)
	if err != nil {
		return false, 0, err
	}
	df := float64(f.cov.SampleSize() - len(z) - 3)
	if df <= 0 {
		return false, 0, fmt.Errorf("score: %d cases for %d conditioning variables: %w", f.cov.SampleSize(), len(z), ErrIllDetermined)
	}
	if r >= 1 {
		r = math.Nextafter(1, 0)
	} else if r <= -1 {
		r = math.Nextafter(-1, 0)
	}
	stat := math.Sqrt(df) * 0.5 * math.Abs(math.Log((1+r)/(1-r)))
	p := math.Erfc(stat / math.Sqrt2)

	return p > f.alpha, p, nil
}

// PartialCorrelation returns ρ(x, y | z) from the inverse of Σ restricted to
// {x, y} ∪ z.
func (f *FisherZ) PartialCorrelation(x, y int, z []int) (float64, error) {
	if x == y {
		return 0, fmt.Errorf("score: x == y == %d: %w", x, ErrBadParents)
	}
	vars := append([]int{x, y}, z...)
	if _, err := normalize(x, vars[1:], f.cov.Dim()); err != nil {
		return 0, err
	}
	sub, err := f.cov.Submatrix(vars, vars)
	if err != nil {
		return 0, err
	}
	inv, err := matrix.Inverse(sub)
	if errors.Is(err, matrix.ErrSingular) {
		return 0, fmt.Errorf("score: %v: %w", vars, ErrIllDetermined)
	}
	if err != nil {
		return 0, err
	}
	pxy, _ := inv.At(0, 1)
	pxx, _ := inv.At(0, 0)
	pyy, _ := inv.At(1, 1)
	if !(pxx > 0 && pyy > 0) {
		return 0, fmt.Errorf("score: %v: %w", vars, ErrIllDetermined)
	}

	return -pxy / math.Sqrt(pxx*pyy), nil
}

// ScoreIndependence judges x ⊥ y | z by whether adding x to y's parents
// fails to improve the score: score(y | z ∪ {x}) − score(y | z) ≤ 0.
type ScoreIndependence struct {
	fn Function
}

var _ IndependenceTest = ScoreIndependence{}

// NewScoreIndependence adapts fn.
func NewScoreIndependence(fn Function) ScoreIndependence {
	return ScoreIndependence{fn: fn}
}

// Independent returns the verdict and the score difference. An
// ill-determined score counts as dependent.
func (s ScoreIndependence) Independent(x, y int, z []int) (bool, float64, error) {
	with, err := s.fn.LocalScore(y, append(append([]int(nil), z...), x))
	if errors.Is(err, ErrIllDetermined) {
		return false, math.Inf(-1), nil
	}
	if err != nil {
		return false, 0, err
	}
	without, err := s.fn.LocalScore(y, z)
	if errors.Is(err, ErrIllDetermined) {
		return false, math.Inf(-1), nil
	}
	if err != nil {
		return false, 0, err
	}
	d := with.Score - without.Score

	return d <= 0, d, nil
}
