package simulate

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/fgs/core"
)

var (
	// ErrBadParameter marks an invalid size, range or sample count.
	ErrBadParameter = errors.New("simulate: bad parameter")

	// ErrInfeasible means the requested edges cannot be placed under the
	// in-degree bound.
	ErrInfeasible = errors.New("simulate: infeasible")
)

// Names returns X1..Xn.
func Names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "X" + strconv.Itoa(i+1)
	}

	return out
}

// RandomForwardDAG draws a DAG over X1..Xn whose edges all point from a lower
// to a higher index. Candidate pairs are visited in a random order and kept
// while the child has fewer than maxIndegree parents (maxIndegree <= 0 means
// no bound).
//
// Errors: ErrBadParameter, ErrInfeasible.
func RandomForwardDAG(rng *rand.Rand, numNodes, numEdges, maxIndegree int) (*core.Graph, error) {
	if numNodes < 1 || numEdges < 0 {
		return nil, fmt.Errorf("simulate: %d nodes, %d edges: %w", numNodes, numEdges, ErrBadParameter)
	}
	pairs := numNodes * (numNodes - 1) / 2
	if numEdges > pairs {
		return nil, fmt.Errorf("simulate: %d edges over %d pairs: %w", numEdges, pairs, ErrInfeasible)
	}
	g, err := core.NewGraphFromNames(Names(numNodes))
	if err != nil {
		return nil, err
	}

	// 1) Enumerate forward pairs, then visit them in a random order.
	all := make([][2]int, 0, pairs)
	for i := 0; i < numNodes; i++ {
		for j := i + 1; j < numNodes; j++ {
			all = append(all, [2]int{i, j})
		}
	}
	indeg := make([]int, numNodes)
	added := 0
	for _, k := range rng.Perm(len(all)) {
		if added == numEdges {
			break
		}
		p := all[k]
		if maxIndegree > 0 && indeg[p[1]] >= maxIndegree {
			continue
		}
		if err := g.AddDirected(p[0], p[1]); err != nil {
			return nil, err
		}
		indeg[p[1]]++
		added++
	}
	if added < numEdges {
		return nil, fmt.Errorf("simulate: placed %d of %d edges with in-degree %d: %w", added, numEdges, maxIndegree, ErrInfeasible)
	}

	return g, nil
}
