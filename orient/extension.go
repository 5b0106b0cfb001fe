package orient

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fgs/core"
)

// ErrNoExtension indicates a pattern none of whose orientations is a DAG
// with the same unshielded colliders.
var ErrNoExtension = errors.New("orient: pattern has no consistent extension")

// ConsistentExtension returns a DAG in the equivalence class of pattern
// (Dor–Tarsi). Among eligible sinks the lowest index is removed first, so
// the result is deterministic. pattern is not modified.
//
// Complexity: O(V^3).
func ConsistentExtension(pattern *core.Graph) (*core.Graph, error) {
	dag := pattern.Clone()
	work := pattern.Clone()
	n := work.NumNodes()
	removed := make([]bool, n)

	for left := n; left > 0; left-- {
		x := -1
		for v := 0; v < n && x < 0; v++ {
			if !removed[v] && isExtensionSink(work, v) {
				x = v
			}
		}
		if x < 0 {
			return nil, ErrNoExtension
		}
		for _, y := range work.Neighbors(x) {
			if err := dag.Orient(y, x); err != nil {
				return nil, fmt.Errorf("orient: extension: %w", err)
			}
		}
		for _, y := range work.Adjacent(x) {
			_ = work.RemoveEdge(x, y)
		}
		removed[x] = true
	}

	return dag, nil
}

// isExtensionSink reports whether x has no children and every undirected
// neighbour of x is adjacent to all other nodes adjacent to x.
func isExtensionSink(g *core.Graph, x int) bool {
	if len(g.Children(x)) > 0 {
		return false
	}
	adj := g.Adjacent(x)
	for _, y := range g.Neighbors(x) {
		for _, z := range adj {
			if z != y && !g.IsAdjacent(y, z) {
				return false
			}
		}
	}

	return true
}
