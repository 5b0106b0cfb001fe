// File: methods_clone.go
// Role: cloning and structural comparison of patterns.
// Concurrency:
//   - Read locks for snapshotting; the source graph is never mutated.

package core

// Clone returns a deep copy: same nodes, same edges and marks.
// Complexity: O(V^2).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		nodes:    make([]Node, len(g.nodes)),
		byName:   make(map[string]int, len(g.byName)),
		marks:    make([]Endpoint, len(g.marks)),
		numEdges: g.numEdges,
	}
	copy(c.nodes, g.nodes)
	copy(c.marks, g.marks)
	for name, i := range g.byName {
		c.byName[name] = i
	}

	return c
}

// CloneEmpty returns a graph with the same nodes and no edges.
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		nodes:  make([]Node, len(g.nodes)),
		byName: make(map[string]int, len(g.byName)),
		marks:  make([]Endpoint, len(g.marks)),
	}
	copy(c.nodes, g.nodes)
	for name, i := range g.byName {
		c.byName[name] = i
	}

	return c
}

// Equal reports whether g and other have the same node names (in order)
// and identical marks on every pair.
func (g *Graph) Equal(other *Graph) bool {
	if g == other {
		return true
	}
	if other == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()

	if len(g.nodes) != len(other.nodes) || g.numEdges != other.numEdges {
		return false
	}
	for i := range g.nodes {
		if g.nodes[i].Name != other.nodes[i].Name {
			return false
		}
	}
	for k := range g.marks {
		if g.marks[k] != other.marks[k] {
			return false
		}
	}

	return true
}
