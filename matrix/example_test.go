package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/fgs/matrix"
)

// ExampleFactorize regresses y on x using the covariance blocks, the same
// computation a linear-Gaussian local score performs.
func ExampleFactorize() {
	// Columns: x, y with y ≈ 2x.
	X, _ := matrix.NewDenseFrom(4, 2, []float64{
		1, 2.1,
		2, 3.9,
		3, 6.2,
		4, 7.8,
	})
	cov, _, _ := matrix.Covariance(X)
	sxx, _ := cov.Induced([]int{0}, []int{0})
	sxy, _ := cov.Induced([]int{0}, []int{1})
	syy, _ := cov.At(1, 1)

	ch, _ := matrix.Factorize(sxx, 0, false)
	b, _ := sxy.At(0, 0)
	z, _ := ch.SolveLower([]float64{b})
	fmt.Printf("residual variance %.4f\n", syy-z[0]*z[0])
	// Output: residual variance 0.0273
}
