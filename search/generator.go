// SPDX-License-Identifier: MIT
// Package search: operator enumeration.
//
// Order:
//   - Ordered pairs (X, Y) with X ascending, then Y ascending.
//   - Within a pair, subsets by size, then lexicographically.
//
// The position of an operator in the returned slice is its tie-break rank.

package search

import (
	"github.com/katalvlaran/fgs/core"
	"github.com/katalvlaran/fgs/dfs"
	"github.com/katalvlaran/fgs/knowledge"
)

// Generator enumerates the legal operators of a pattern. Knowledge is
// applied here, so illegal operators are never scored.
type Generator struct {
	// Knowledge prunes operators. Nil means none.
	Knowledge *knowledge.Index

	// Depth bounds |T| and |H|; -1 means unbounded.
	Depth int

	// Dependent, when non-nil, is the marginal dependence table used under
	// faithfulness: pairs with Dependent[x][y] false are never inserted and
	// T candidates must be dependent on Y.
	Dependent [][]bool
}

// Inserts returns every valid Insert(X --> Y, T) on g.
//
// Validity: X and Y are not adjacent, X --> Y and every t --> Y are allowed,
// NaYX ∪ T is a clique, and every semi-directed path from Y to X meets
// NaYX ∪ T.
func (gen *Generator) Inserts(g *core.Graph) []Operator {
	var ops []Operator
	n := g.NumNodes()
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if x == y || g.IsAdjacent(x, y) || gen.Knowledge.IsForbidden(x, y) {
				continue
			}
			if gen.Dependent != nil && !gen.Dependent[x][y] {
				continue
			}

			naYX, t0 := splitNeighbors(g, x, y)
			if gen.Dependent != nil {
				t0 = gen.filterDependent(t0, y)
			}
			pa := g.Parents(y)
			forEachSubset(t0, gen.Depth, func(t []int) {
				for _, v := range t {
					if gen.Knowledge.IsForbidden(v, y) {
						return
					}
				}
				cond := union(naYX, t)
				if !g.IsClique(cond) {
					return
				}
				if reach, _ := dfs.ExistsSemiDirectedPath(g, y, x, toSet(cond)); reach {
					return
				}
				before := union(cond, pa)
				ops = append(ops, Operator{
					Kind:   Insert,
					X:      x,
					Y:      y,
					Subset: t,
					Before: before,
					After:  union(before, []int{x}),
				})
			})
		}
	}

	return ops
}

// Deletes returns every valid Delete(X, Y, H) on g. An undirected edge is
// offered in both orientations; required edges are never offered.
//
// Validity: NaYX \ H is a clique and the orientations Y --> h, X --> h that
// the delete would make are allowed.
func (gen *Generator) Deletes(g *core.Graph) []Operator {
	var ops []Operator
	n := g.NumNodes()
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if x == y || !(g.IsDirected(x, y) || g.IsUndirected(x, y)) {
				continue
			}
			if gen.Knowledge.IsRequired(x, y) || gen.Knowledge.IsRequired(y, x) {
				continue
			}

			naYX, _ := splitNeighbors(g, x, y)
			pa := g.Parents(y)
			forEachSubset(naYX, gen.Depth, func(h []int) {
				for _, v := range h {
					if g.IsUndirected(y, v) && gen.Knowledge.IsForbidden(y, v) {
						return
					}
					if g.IsUndirected(x, v) && gen.Knowledge.IsForbidden(x, v) {
						return
					}
				}
				rest := without(naYX, h...)
				if !g.IsClique(rest) {
					return
				}
				ops = append(ops, Operator{
					Kind:   Delete,
					X:      x,
					Y:      y,
					Subset: h,
					Before: union(rest, pa, []int{x}),
					After:  without(union(rest, pa), x),
				})
			})
		}
	}

	return ops
}

// splitNeighbors partitions the undirected neighbours of y (other than x)
// into those adjacent to x (NaYX) and those that are not (T0).
func splitNeighbors(g *core.Graph, x, y int) (naYX, t0 []int) {
	for _, v := range g.Neighbors(y) {
		switch {
		case v == x:
		case g.IsAdjacent(v, x):
			naYX = append(naYX, v)
		default:
			t0 = append(t0, v)
		}
	}

	return naYX, t0
}

func (gen *Generator) filterDependent(t0 []int, y int) []int {
	out := t0[:0:0]
	for _, v := range t0 {
		if gen.Dependent[v][y] {
			out = append(out, v)
		}
	}

	return out
}

func toSet(s []int) map[int]struct{} {
	m := make(map[int]struct{}, len(s))
	for _, v := range s {
		m[v] = struct{}{}
	}

	return m
}
