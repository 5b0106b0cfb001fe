package simulate

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/fgs/core"
	"github.com/katalvlaran/fgs/dataset"
	"github.com/katalvlaran/fgs/dfs"
	"github.com/katalvlaran/fgs/matrix"
)

// SEM holds the ranges edge coefficients and error variances are drawn from.
// Coefficient magnitudes are uniform in [CoefLow, CoefHigh] with a random
// sign when Symmetric is set.
type SEM struct {
	CoefLow, CoefHigh float64
	VarLow, VarHigh   float64
	Symmetric         bool
}

// DefaultSEM returns coefficients in ±[0.5, 1.5] and variances in [1, 3].
func DefaultSEM() SEM {
	return SEM{CoefLow: 0.5, CoefHigh: 1.5, VarLow: 1, VarHigh: 3, Symmetric: true}
}

// Parameters is a parameterized model: Weights.At(i, j) is the coefficient
// of i --> j, Variances[j] the error variance of j.
type Parameters struct {
	Weights   *matrix.Dense
	Variances []float64
}

// Parameterize draws coefficients for every directed edge of g and one error
// variance per node.
func (s SEM) Parameterize(rng *rand.Rand, g *core.Graph) (*Parameters, error) {
	if s.CoefLow > s.CoefHigh || s.VarLow <= 0 || s.VarLow > s.VarHigh {
		return nil, fmt.Errorf("simulate: SEM ranges %+v: %w", s, ErrBadParameter)
	}
	n := g.NumNodes()
	w, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		if !e.Directed {
			return nil, fmt.Errorf("simulate: undirected edge %s: %w", g.EdgeString(e), ErrBadParameter)
		}
		c := s.CoefLow + rng.Float64()*(s.CoefHigh-s.CoefLow)
		if s.Symmetric && rng.Intn(2) == 0 {
			c = -c
		}
		_ = w.Set(e.From, e.To, c)
	}
	vars := make([]float64, n)
	for i := range vars {
		vars[i] = s.VarLow + rng.Float64()*(s.VarHigh-s.VarLow)
	}

	return &Parameters{Weights: w, Variances: vars}, nil
}

// Sample draws n cases from the model, node values computed in topological
// order.
//
// Errors: ErrBadParameter for n < 1 or mismatched sizes, dfs.ErrCycleDetected.
func Sample(rng *rand.Rand, g *core.Graph, p *Parameters, n int) (*dataset.Dataset, error) {
	k := g.NumNodes()
	if n < 1 || p == nil || p.Weights.Rows() != k || len(p.Variances) != k {
		return nil, fmt.Errorf("simulate: sample of %d over %d nodes: %w", n, k, ErrBadParameter)
	}
	order, err := dfs.TopologicalSort(g)
	if err != nil {
		return nil, err
	}
	sd := make([]float64, k)
	for i, v := range p.Variances {
		sd[i] = math.Sqrt(v)
	}

	data, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, err
	}
	row := make([]float64, k)
	for r := 0; r < n; r++ {
		for _, j := range order {
			x := rng.NormFloat64() * sd[j]
			for _, i := range g.Parents(j) {
				c, _ := p.Weights.At(i, j)
				x += c * row[i]
			}
			row[j] = x
		}
		for j, x := range row {
			_ = data.Set(r, j, x)
		}
	}

	return dataset.New(g.Names(), data)
}
