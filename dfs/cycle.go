// Package dfs: directed-cycle detection over the directed part of a pattern.
// Undirected edges are ignored: a pattern is acyclic when its --> edges form
// a DAG.
//
// Complexity:
//
//   - Time:   O(V^2)
//   - Memory: O(V)
package dfs

import "github.com/katalvlaran/fgs/core"

// frame is one entry of the explicit DFS stack: a node and the next child
// position to examine.
type frame struct {
	node     int
	children []int
	next     int
}

// FindDirectedCycle returns one directed cycle (first node repeated at the
// end, e.g. [0 2 5 0]) or nil when the directed subgraph is acyclic.
// Start nodes are tried in index order, so the reported cycle is deterministic.
func FindDirectedCycle(g *core.Graph) ([]int, error) {
	// 1) Nil graph is an error, unlike the empty graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Colour-marking DFS from every white node.
	n := g.NumNodes()
	state := make([]int, n)
	for root := 0; root < n; root++ {
		if state[root] != White {
			continue
		}
		state[root] = Gray
		path := []int{root}
		stack := []frame{{node: root, children: g.Children(root)}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.children) {
				// 2a) All children done: finish this node.
				state[top.node] = Black
				stack = stack[:len(stack)-1]
				path = path[:len(path)-1]
				continue
			}
			c := top.children[top.next]
			top.next++
			switch state[c] {
			case White:
				state[c] = Gray
				path = append(path, c)
				stack = append(stack, frame{node: c, children: g.Children(c)})
			case Gray:
				// 2b) Back edge: the cycle is the path suffix starting at c.
				idx := IndexOf(path, c)
				cycle := append(append([]int(nil), path[idx:]...), c)
				return cycle, nil
			}
		}
	}

	return nil, nil
}

// HasDirectedCycle reports whether the directed part of g has a cycle.
func HasDirectedCycle(g *core.Graph) (bool, error) {
	cycle, err := FindDirectedCycle(g)
	if err != nil {
		return false, err
	}

	return cycle != nil, nil
}
