package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/fgs/core"
	"github.com/katalvlaran/fgs/dfs"
)

// ExampleExistsSemiDirectedPath shows the insertion validity check: a
// semi-directed path from Y back to X that is not blocked by a conditioning
// set would make X --> Y create a cycle in some extension.
//
//	Y --- M --> X
func ExampleExistsSemiDirectedPath() {
	g, _ := core.NewGraphFromNames([]string{"X", "Y", "M"})
	_ = g.AddUndirected(1, 2)
	_ = g.AddDirected(2, 0)

	open, _ := dfs.ExistsSemiDirectedPath(g, 1, 0, nil)
	blocked, _ := dfs.ExistsSemiDirectedPath(g, 1, 0, map[int]struct{}{2: {}})
	fmt.Println(open, blocked)
	// Output: true false
}

// ExampleTopologicalSort orders the directed part of a pattern.
func ExampleTopologicalSort() {
	g, _ := core.NewGraphFromNames([]string{"A", "B", "C"})
	_ = g.AddDirected(2, 1)
	_ = g.AddDirected(1, 0)

	order, _ := dfs.TopologicalSort(g)
	for _, v := range order {
		fmt.Print(g.Name(v), " ")
	}
	fmt.Println()
	// Output: C B A
}
