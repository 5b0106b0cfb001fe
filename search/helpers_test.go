package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fgs/core"
	"github.com/katalvlaran/fgs/covariance"
	"github.com/katalvlaran/fgs/matrix"
	"github.com/katalvlaran/fgs/simulate"
)

// edge is a weighted X_from --> X_to, 1-based like the variable names.
type edge struct {
	from, to int
	coef     float64
}

// model builds a DAG over X1..Xn with unit error variances.
func model(t *testing.T, n int, edges ...edge) (*core.Graph, *simulate.Parameters) {
	t.Helper()
	g, err := core.NewGraphFromNames(simulate.Names(n))
	require.NoError(t, err)
	w, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	vars := make([]float64, n)
	for i := range vars {
		vars[i] = 1
	}
	for _, e := range edges {
		require.NoError(t, g.AddDirected(e.from-1, e.to-1))
		require.NoError(t, w.Set(e.from-1, e.to-1, e.coef))
	}

	return g, &simulate.Parameters{Weights: w, Variances: vars}
}

// exactCov is the population covariance of the model at sample size n.
func exactCov(t *testing.T, n int, g *core.Graph, p *simulate.Parameters) *covariance.Matrix {
	t.Helper()
	cov, err := simulate.ImpliedCovarianceMatrix(g, p, n)
	require.NoError(t, err)

	return cov
}

// adjacencies lists the adjacent pairs of g as "Xa-Xb" with a < b.
func adjacencies(g *core.Graph) []string {
	var out []string
	for _, e := range g.Edges() {
		out = append(out, g.Name(e.From)+"-"+g.Name(e.To))
	}

	return out
}
