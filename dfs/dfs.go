// Package dfs implements reachability over a core.Graph pattern with an
// explicit stack (no recursion, so deep chains cannot exhaust the goroutine
// stack).
//
// Reachable is the general form: it walks edges admitted by a Step predicate
// and never enters a blocked node. Two Steps cover what the search needs:
//
//   - Directed:     a --> b only.
//   - SemiDirected: a --> b or a --- b (never against an arrowhead).
//
// Complexity:
//
//   - Time:   O(V^2) on the mark-table graph (O(V) neighbour scan per node)
//   - Memory: O(V)
package dfs

import "github.com/katalvlaran/fgs/core"

// Directed returns a Step that follows a --> b edges only.
func Directed(g *core.Graph) Step {
	return func(a, b int) bool { return g.IsDirected(a, b) }
}

// SemiDirected returns a Step that follows a --> b and a --- b edges.
func SemiDirected(g *core.Graph) Step {
	return func(a, b int) bool { return g.IsDirected(a, b) || g.IsUndirected(a, b) }
}

// Reachable reports whether to can be reached from from by a non-empty walk
// whose every move satisfies step, without entering a node in blocked.
// from is never treated as blocked, and to is reported as soon as a step
// lands on it, so only intermediate nodes are filtered by blocked.
//
// Errors: ErrGraphNil, ErrNodeNotFound.
func Reachable(g *core.Graph, from, to int, step Step, blocked map[int]struct{}) (bool, error) {
	// 1) Validate inputs.
	if g == nil {
		return false, ErrGraphNil
	}
	n := g.NumNodes()
	if from < 0 || from >= n || to < 0 || to >= n {
		return false, ErrNodeNotFound
	}

	// 2) Iterative DFS; state marks nodes pushed at least once.
	state := make([]int, n)
	stack := []int{from}
	state[from] = Gray
	for len(stack) > 0 {
		a := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, b := range g.Adjacent(a) {
			if !step(a, b) {
				continue
			}
			if b == to {
				return true, nil
			}
			if state[b] != White {
				continue
			}
			if _, skip := blocked[b]; skip {
				continue
			}
			state[b] = Gray
			stack = append(stack, b)
		}
		state[a] = Black
	}

	return false, nil
}

// ExistsDirectedPath reports whether a directed path from → ... → to exists.
func ExistsDirectedPath(g *core.Graph, from, to int) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	return Reachable(g, from, to, Directed(g), nil)
}

// ExistsSemiDirectedPath reports whether a semi-directed path from … to exists
// that avoids every node in blocked.
func ExistsSemiDirectedPath(g *core.Graph, from, to int, blocked map[int]struct{}) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	return Reachable(g, from, to, SemiDirected(g), blocked)
}
