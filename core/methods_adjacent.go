// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: adjacency and mark queries used by operator generation and the
// orientation rules. All list-returning queries are sorted by index.
// Complexity: pair queries O(1); list queries O(V).

package core

// markAt returns the endpoint at b of edge a–b, or None when out of range.
// Caller holds the lock.
func (g *Graph) markAt(a, b int) Endpoint {
	if !g.valid(a) || !g.valid(b) || a == b {
		return None
	}

	return g.marks[a*len(g.nodes)+b]
}

// Endpoint returns the mark at b on the edge a–b (None when not adjacent).
func (g *Graph) Endpoint(a, b int) Endpoint {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.markAt(a, b)
}

// IsAdjacent reports whether a and b share an edge.
func (g *Graph) IsAdjacent(a, b int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.markAt(a, b) != None
}

// IsDirected reports whether the edge a --> b is present.
func (g *Graph) IsDirected(a, b int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.markAt(a, b) == Arrow && g.markAt(b, a) == Tail
}

// IsUndirected reports whether the edge a --- b is present.
func (g *Graph) IsUndirected(a, b int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.markAt(a, b) == Tail && g.markAt(b, a) == Tail
}

// collect gathers every j != a satisfying keep(a, j). Caller holds the lock.
func (g *Graph) collect(a int, keep func(a, j int) bool) []int {
	if !g.valid(a) {
		return nil
	}
	var out []int
	for j := range g.nodes {
		if j != a && keep(a, j) {
			out = append(out, j)
		}
	}

	return out
}

// Parents returns every p with p --> b.
func (g *Graph) Parents(b int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.collect(b, func(b, p int) bool {
		return g.markAt(p, b) == Arrow && g.markAt(b, p) == Tail
	})
}

// Children returns every c with a --> c.
func (g *Graph) Children(a int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.collect(a, func(a, c int) bool {
		return g.markAt(a, c) == Arrow && g.markAt(c, a) == Tail
	})
}

// Neighbors returns every u joined to a by an undirected edge a --- u.
func (g *Graph) Neighbors(a int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.collect(a, func(a, u int) bool {
		return g.markAt(a, u) == Tail && g.markAt(u, a) == Tail
	})
}

// Adjacent returns every node sharing any edge with a.
func (g *Graph) Adjacent(a int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.collect(a, func(a, j int) bool { return g.markAt(a, j) != None })
}

// Degree returns the number of nodes adjacent to a.
func (g *Graph) Degree(a int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var d int
	for j := range g.nodes {
		if j != a && g.markAt(a, j) != None {
			d++
		}
	}

	return d
}

// IsClique reports whether every pair in nodes is adjacent.
// The empty set and singletons are cliques.
func (g *Graph) IsClique(nodes []int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if g.markAt(nodes[i], nodes[j]) == None {
				return false
			}
		}
	}

	return true
}
