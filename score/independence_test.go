package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fgs/score"
)

func TestFisherZ(t *testing.T) {
	c := chainCov(t, 1000)
	fz, err := score.NewFisherZ(c, 0.01)
	require.NoError(t, err)
	assert.Equal(t, 0.01, fz.Alpha())

	// X and Z are marginally dependent...
	ind, p, err := fz.Independent(0, 2, nil)
	require.NoError(t, err)
	assert.False(t, ind)
	assert.Less(t, p, 1e-6)

	// ...and independent given Y.
	r, err := fz.PartialCorrelation(0, 2, []int{1})
	require.NoError(t, err)
	assert.InDelta(t, 0, r, 1e-12)
	ind, p, err = fz.Independent(0, 2, []int{1})
	require.NoError(t, err)
	assert.True(t, ind)
	assert.InDelta(t, 1, p, 1e-9)

	_, _, err = fz.Independent(0, 0, nil)
	assert.ErrorIs(t, err, score.ErrBadParents)
	_, _, err = fz.Independent(0, 2, []int{0})
	assert.ErrorIs(t, err, score.ErrBadParents)

	_, err = score.NewFisherZ(c, 1.5)
	assert.ErrorIs(t, err, score.ErrBadOption)
}

func TestFisherZ_TooFewCases(t *testing.T) {
	fz, err := score.NewFisherZ(chainCov(t, 4), 0.05)
	require.NoError(t, err)
	_, _, err = fz.Independent(0, 2, []int{1})
	assert.ErrorIs(t, err, score.ErrIllDetermined)
}

func TestScoreIndependence(t *testing.T) {
	s, err := score.NewSemBic(chainCov(t, 1000))
	require.NoError(t, err)
	si := score.NewScoreIndependence(s)

	ind, d, err := si.Independent(0, 2, nil)
	require.NoError(t, err)
	assert.False(t, ind)
	assert.Greater(t, d, 0.0)

	ind, d, err = si.Independent(0, 2, []int{1})
	require.NoError(t, err)
	assert.True(t, ind)
	assert.LessOrEqual(t, d, 0.0)

	_, _, err = si.Independent(0, 2, []int{2})
	assert.ErrorIs(t, err, score.ErrBadParents)
}
