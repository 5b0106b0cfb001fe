// Package dfs: topological ordering of the directed part of a pattern.
//
// TopologicalSort computes a linear ordering such that for every directed
// edge u --> v, u appears before v. Undirected edges impose no constraint.
// Among ready nodes the lowest index goes first, so the order is unique for
// a given graph.
//
// Complexity:
//
//   - Time:   O(V^2)
//   - Memory: O(V)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/fgs/core"
)

// TopologicalSort returns the node indices in topological order.
// If the directed part of g has a cycle, ErrCycleDetected is returned
// wrapped with the offending cycle.
func TopologicalSort(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	// 1) In-degree over directed edges only.
	n := g.NumNodes()
	indeg := make([]int, n)
	for v := 0; v < n; v++ {
		indeg[v] = len(g.Parents(v))
	}

	// 2) Repeatedly emit the lowest-index node with no remaining parents.
	order := make([]int, 0, n)
	done := make([]bool, n)
	for len(order) < n {
		next := -1
		for v := 0; v < n; v++ {
			if !done[v] && indeg[v] == 0 {
				next = v
				break
			}
		}
		if next < 0 {
			cycle, _ := FindDirectedCycle(g)
			return nil, fmt.Errorf("dfs: TopologicalSort: %v: %w", cycle, ErrCycleDetected)
		}
		done[next] = true
		order = append(order, next)
		for _, c := range g.Children(next) {
			indeg[c]--
		}
	}

	return order, nil
}
