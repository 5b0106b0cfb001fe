// File: methods_vertices.go
// Role: node catalog queries. The node set is fixed at construction.

package core

// NumNodes returns the number of nodes. O(1).
func (g *Graph) NumNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Nodes returns a copy of the node list in index order. O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Names returns node names in index order. O(V).
func (g *Graph) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.nodes))
	for i, nd := range g.nodes {
		out[i] = nd.Name
	}

	return out
}

// Node returns node i or ErrNodeNotFound.
func (g *Graph) Node(i int) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.nodes) {
		return Node{}, ErrNodeNotFound
	}

	return g.nodes[i], nil
}

// Name returns the name of node i, or "" when i is out of range.
func (g *Graph) Name(i int) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.nodes) {
		return ""
	}

	return g.nodes[i].Name
}

// Index resolves a node name to its index.
func (g *Graph) Index(name string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.byName[name]

	return i, ok
}

// valid reports whether i is a node index. Caller holds the lock.
func (g *Graph) valid(i int) bool { return i >= 0 && i < len(g.nodes) }
