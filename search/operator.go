// SPDX-License-Identifier: MIT

package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fgs/core"
)

// Kind tells inserts from deletes.
type Kind int

const (
	// Insert adds X --> Y and orients T --> Y.
	Insert Kind = iota
	// Delete removes X - Y and orients Y --> h, X --> h for h in H.
	Delete
)

func (k Kind) String() string {
	if k == Insert {
		return "Insert"
	}

	return "Delete"
}

// Operator is one candidate edit. Subset is T for an insert and H for a
// delete. Before and After are the parent sets of Y that are scored, so
// Delta = score(Y, After) - score(Y, Before).
type Operator struct {
	Kind   Kind
	X, Y   int
	Subset []int
	Before []int
	After  []int
	Delta  float64
}

// Format renders the operator with g's names, e.g. "Insert: X1 --> X2 [X3]".
func (op Operator) Format(g *core.Graph) string {
	arrow := " --> "
	if op.Kind == Delete && g.IsUndirected(op.X, op.Y) {
		arrow = " --- "
	}
	names := make([]string, len(op.Subset))
	for i, v := range op.Subset {
		names[i] = g.Name(v)
	}

	return fmt.Sprintf("%s: %s%s%s [%s]", op.Kind, g.Name(op.X), arrow, g.Name(op.Y), strings.Join(names, ", "))
}

// key identifies the operator within one phase.
func (op Operator) key() string {
	return fmt.Sprintf("%d %d %d %v", op.Kind, op.X, op.Y, op.Subset)
}
