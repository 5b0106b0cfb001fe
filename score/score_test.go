package score_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fgs/covariance"
	"github.com/katalvlaran/fgs/matrix"
	"github.com/katalvlaran/fgs/score"
)

// cov builds a covariance over names from row-major values.
func cov(t *testing.T, names []string, n int, vals ...float64) *covariance.Matrix {
	t.Helper()
	p := len(names)
	m, err := matrix.NewDenseFrom(p, p, vals)
	require.NoError(t, err)
	c, err := covariance.FromMatrix(names, m, n)
	require.NoError(t, err)

	return c
}

// chainCov is the population covariance of X → Y → Z with coefficients 0.8
// and 0.5 and unit noise.
func chainCov(t *testing.T, n int) *covariance.Matrix {
	return cov(t, []string{"X", "Y", "Z"}, n,
		1, 0.8, 0.4,
		0.8, 1.64, 0.82,
		0.4, 0.82, 1.41)
}

func TestSemBic_Values(t *testing.T) {
	const n = 1000
	s, err := score.NewSemBic(chainCov(t, n))
	require.NoError(t, err)
	assert.Equal(t, n, s.SampleSize())
	assert.Equal(t, 3, s.NumVariables())
	assert.Equal(t, score.DefaultPenaltyDiscount, s.PenaltyDiscount())

	logN := math.Log(n)

	empty, err := s.LocalScore(1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, empty.DOF)
	assert.InDelta(t, -n*math.Log(1.64)-4*logN, empty.Score, 1e-9)

	withX, err := s.LocalScore(1, []int{0})
	require.NoError(t, err)
	assert.Equal(t, 2, withX.DOF)
	assert.InDelta(t, -8*logN, withX.Score, 1e-9)

	// Parent order does not matter.
	a, err := s.LocalScore(2, []int{0, 1})
	require.NoError(t, err)
	b, err := s.LocalScore(2, []int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSemBic_PenaltyDiscount(t *testing.T) {
	c := chainCov(t, 500)
	s1, err := score.NewSemBic(c, score.WithPenaltyDiscount(1))
	require.NoError(t, err)
	s2, err := score.NewSemBic(c, score.WithPenaltyDiscount(2))
	require.NoError(t, err)

	l1, err := s1.LocalScore(0, []int{1})
	require.NoError(t, err)
	l2, err := s2.LocalScore(0, []int{1})
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Log(500), l1.Score-l2.Score, 1e-9)

	_, err = score.NewSemBic(c, score.WithPenaltyDiscount(0))
	assert.ErrorIs(t, err, score.ErrBadOption)
	_, err = score.NewSemBic(c, score.WithTolerance(-1))
	assert.ErrorIs(t, err, score.ErrBadOption)
	_, err = score.NewSemBic(nil)
	assert.ErrorIs(t, err, score.ErrBadOption)
}

// TestSemBic_LinearDependence uses Z == X exactly.
func TestSemBic_LinearDependence(t *testing.T) {
	c := cov(t, []string{"X", "Y", "Z"}, 100,
		1, 0.5, 1,
		0.5, 1, 0.5,
		1, 0.5, 1)

	strict, err := score.NewSemBic(c)
	require.NoError(t, err)
	_, err = strict.LocalScore(1, []int{0, 2})
	assert.ErrorIs(t, err, score.ErrIllDetermined)

	lenient, err := score.NewSemBic(c, score.WithIgnoreLinearDependence(true))
	require.NoError(t, err)
	both, err := lenient.LocalScore(1, []int{0, 2})
	require.NoError(t, err)
	one, err := lenient.LocalScore(1, []int{0})
	require.NoError(t, err)
	assert.Equal(t, 2, both.DOF, "dependent regressor dropped")
	assert.InDelta(t, one.Score, both.Score, 1e-9)

	// Z is fully explained by X: no residual variance in either mode.
	_, err = strict.LocalScore(2, []int{0})
	assert.ErrorIs(t, err, score.ErrIllDetermined)
	_, err = lenient.LocalScore(2, []int{0})
	assert.ErrorIs(t, err, score.ErrIllDetermined)
}

func TestSemBic_BadParents(t *testing.T) {
	s, err := score.NewSemBic(chainCov(t, 100))
	require.NoError(t, err)
	for name, tc := range map[string]struct {
		node    int
		parents []int
	}{
		"self":         {1, []int{1}},
		"repeat":       {1, []int{0, 0}},
		"out of range": {1, []int{3}},
		"negative":     {1, []int{-1}},
		"bad node":     {5, nil},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.LocalScore(tc.node, tc.parents)
			assert.ErrorIs(t, err, score.ErrBadParents)
		})
	}
}

func TestSemBic_ConstantVariable(t *testing.T) {
	c := cov(t, []string{"A", "B"}, 10, 0, 0, 0, 1)
	s, err := score.NewSemBic(c)
	require.NoError(t, err)
	_, err = s.LocalScore(0, nil)
	assert.ErrorIs(t, err, score.ErrIllDetermined)
}

func TestSignature(t *testing.T) {
	assert.Equal(t, "", score.Signature(nil))
	assert.Equal(t, "1,4,7", score.Signature([]int{1, 4, 7}))
}
