// Package compare counts the errors of a target pattern against a reference
// graph: adjacency and arrowhead omissions (false negatives) and commissions
// (false positives). Nodes are matched by name.
package compare

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/fgs/core"
)

// ErrNodeMismatch means the two graphs do not have the same node names.
var ErrNodeMismatch = errors.New("compare: node sets differ")

// Counts are true positives, false positives and false negatives.
type Counts struct {
	TP, FP, FN int
}

// Precision is TP / (TP + FP), or 1 when nothing was predicted.
func (c Counts) Precision() float64 {
	if c.TP+c.FP == 0 {
		return 1
	}

	return float64(c.TP) / float64(c.TP+c.FP)
}

// Recall is TP / (TP + FN), or 1 when there was nothing to find.
func (c Counts) Recall() float64 {
	if c.TP+c.FN == 0 {
		return 1
	}

	return float64(c.TP) / float64(c.TP+c.FN)
}

// Comparison holds the adjacency and arrowhead counts.
type Comparison struct {
	Adjacency Counts
	Arrowhead Counts
}

// HasErrors reports whether any omission or commission was found.
func (c *Comparison) HasErrors() bool {
	return c.Adjacency.FP+c.Adjacency.FN+c.Arrowhead.FP+c.Arrowhead.FN > 0
}

// String renders the counts as a small table.
func (c *Comparison) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %5s %5s %5s %9s %9s\n", "", "TP", "FP", "FN", "precision", "recall")
	for _, row := range []struct {
		name string
		c    Counts
	}{{"adjacency", c.Adjacency}, {"arrowhead", c.Arrowhead}} {
		fmt.Fprintf(&b, "%-10s %5d %5d %5d %9.3f %9.3f\n",
			row.name, row.c.TP, row.c.FP, row.c.FN, row.c.Precision(), row.c.Recall())
	}

	return b.String()
}

// Compare scores target against reference. An arrowhead is the Arrow mark
// at b of a directed edge a --> b; undirected edges carry none.
func Compare(target, reference *core.Graph) (*Comparison, error) {
	if target == nil || reference == nil {
		return nil, fmt.Errorf("compare: nil graph: %w", ErrNodeMismatch)
	}
	// 1) Map target indices onto reference indices.
	n := target.NumNodes()
	if reference.NumNodes() != n {
		return nil, fmt.Errorf("compare: %d vs %d nodes: %w", n, reference.NumNodes(), ErrNodeMismatch)
	}
	ref := make([]int, n)
	for i, name := range target.Names() {
		j, ok := reference.Index(name)
		if !ok {
			return nil, fmt.Errorf("compare: %q missing from reference: %w", name, ErrNodeMismatch)
		}
		ref[i] = j
	}

	// 2) Count over unordered pairs for adjacencies and ordered pairs for
	// arrowheads.
	var c Comparison
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if a == b {
				continue
			}
			if a < b {
				tally(&c.Adjacency, target.IsAdjacent(a, b), reference.IsAdjacent(ref[a], ref[b]))
			}
			tally(&c.Arrowhead, target.IsDirected(a, b), reference.IsDirected(ref[a], ref[b]))
		}
	}

	return &c, nil
}

func tally(c *Counts, inTarget, inReference bool) {
	switch {
	case inTarget && inReference:
		c.TP++
	case inTarget:
		c.FP++
	case inReference:
		c.FN++
	}
}
