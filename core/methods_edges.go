// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: edge lifecycle (add, remove, orient, undirect) and edge snapshots.
// Policy:
//   - At most one edge per unordered pair; no self-loops.
//   - Mutators never check acyclicity: callers that orient edges (orient,
//     search) consult package dfs first, so core stays a plain data structure.
// Concurrency:
//   - Mutators take the write lock; snapshots take the read lock.

package core

import "fmt"

// edgeErrorf attaches the method and endpoints to a sentinel.
func edgeErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("core: %s(%d,%d): %w", method, a, b, err)
}

// checkPair validates indices and the no-loop rule. Caller holds the lock.
func (g *Graph) checkPair(method string, a, b int) error {
	if !g.valid(a) || !g.valid(b) {
		return edgeErrorf(method, a, b, ErrNodeNotFound)
	}
	if a == b {
		return edgeErrorf(method, a, b, ErrLoopNotAllowed)
	}

	return nil
}

// AddDirected inserts the edge a --> b.
//
// Errors: ErrNodeNotFound, ErrLoopNotAllowed, ErrEdgeExists.
// Complexity: O(1).
func (g *Graph) AddDirected(a, b int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkPair("AddDirected", a, b); err != nil {
		return err
	}
	n := len(g.nodes)
	if g.marks[a*n+b] != None {
		return edgeErrorf("AddDirected", a, b, ErrEdgeExists)
	}
	g.marks[a*n+b] = Arrow
	g.marks[b*n+a] = Tail
	g.numEdges++

	return nil
}

// AddUndirected inserts the edge a --- b.
//
// Errors: ErrNodeNotFound, ErrLoopNotAllowed, ErrEdgeExists.
// Complexity: O(1).
func (g *Graph) AddUndirected(a, b int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkPair("AddUndirected", a, b); err != nil {
		return err
	}
	n := len(g.nodes)
	if g.marks[a*n+b] != None {
		return edgeErrorf("AddUndirected", a, b, ErrEdgeExists)
	}
	g.marks[a*n+b] = Tail
	g.marks[b*n+a] = Tail
	g.numEdges++

	return nil
}

// RemoveEdge deletes the edge between a and b, whatever its marks.
//
// Errors: ErrNodeNotFound, ErrLoopNotAllowed, ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) RemoveEdge(a, b int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkPair("RemoveEdge", a, b); err != nil {
		return err
	}
	n := len(g.nodes)
	if g.marks[a*n+b] == None {
		return edgeErrorf("RemoveEdge", a, b, ErrEdgeNotFound)
	}
	g.marks[a*n+b] = None
	g.marks[b*n+a] = None
	g.numEdges--

	return nil
}

// Orient turns the existing edge between a and b into a --> b.
// Orienting an edge that is already a --> b is a no-op.
//
// Errors: ErrNodeNotFound, ErrLoopNotAllowed, ErrEdgeNotFound.
func (g *Graph) Orient(a, b int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkPair("Orient", a, b); err != nil {
		return err
	}
	n := len(g.nodes)
	if g.marks[a*n+b] == None {
		return edgeErrorf("Orient", a, b, ErrEdgeNotFound)
	}
	g.marks[a*n+b] = Arrow
	g.marks[b*n+a] = Tail

	return nil
}

// Undirect turns the existing edge between a and b into a --- b.
//
// Errors: ErrNodeNotFound, ErrLoopNotAllowed, ErrEdgeNotFound.
func (g *Graph) Undirect(a, b int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkPair("Undirect", a, b); err != nil {
		return err
	}
	n := len(g.nodes)
	if g.marks[a*n+b] == None {
		return edgeErrorf("Undirect", a, b, ErrEdgeNotFound)
	}
	g.marks[a*n+b] = Tail
	g.marks[b*n+a] = Tail

	return nil
}

// NumEdges returns the number of adjacencies. O(1).
func (g *Graph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.numEdges
}

// Edges returns every edge, ordered by (min endpoint, max endpoint).
// Directed edges report their true direction in From/To.
// Complexity: O(V^2).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.nodes)
	out := make([]Edge, 0, g.numEdges)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			switch {
			case g.marks[i*n+j] == None:
				continue
			case g.marks[i*n+j] == Arrow && g.marks[j*n+i] == Tail:
				out = append(out, Edge{From: i, To: j, Directed: true})
			case g.marks[j*n+i] == Arrow && g.marks[i*n+j] == Tail:
				out = append(out, Edge{From: j, To: i, Directed: true})
			default:
				out = append(out, Edge{From: i, To: j})
			}
		}
	}

	return out
}

// RemoveAllEdges drops every edge, keeping the node set.
func (g *Graph) RemoveAllEdges() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for k := range g.marks {
		g.marks[k] = None
	}
	g.numEdges = 0
}
