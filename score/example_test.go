package score_test

import (
	"fmt"

	"github.com/katalvlaran/fgs/covariance"
	"github.com/katalvlaran/fgs/matrix"
	"github.com/katalvlaran/fgs/score"
)

// ExampleSemBic compares the score of Y with and without X as a parent when
// Y = 0.8·X + noise.
func ExampleSemBic() {
	sigma, _ := matrix.NewDenseFrom(2, 2, []float64{
		1.0, 0.8,
		0.8, 1.64,
	})
	cov, _ := covariance.FromMatrix([]string{"X", "Y"}, sigma, 1000)
	s, _ := score.NewSemBic(cov)
	c := score.NewCache(s)

	alone, _ := c.Get(1, nil)
	withX, _ := c.Get(1, []int{0})
	fmt.Printf("delta %.2f, dof %d -> %d\n", withX.Score-alone.Score, alone.DOF, withX.DOF)
	// Output: delta 467.07, dof 1 -> 2
}
