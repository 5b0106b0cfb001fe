// SPDX-License-Identifier: MIT
// Package score: the scoring contract.

package score

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Local is the value of a local score: higher is better. DOF is the number of
// free parameters the score was penalized for.
type Local struct {
	Score float64
	DOF   int
}

// Function is a decomposable local score. Implementations must be pure
// functions of (node, parent set) and safe for concurrent use.
type Function interface {
	// LocalScore scores node given parents. Parent order is irrelevant.
	LocalScore(node int, parents []int) (Local, error)

	// SampleSize returns the number of cases behind the score.
	SampleSize() int

	// NumVariables returns the number of scorable nodes.
	NumVariables() int
}

// normalize validates parents against node and p variables and returns a
// sorted copy.
func normalize(node int, parents []int, p int) ([]int, error) {
	if node < 0 || node >= p {
		return nil, fmt.Errorf("score: node %d of %d: %w", node, p, ErrBadParents)
	}
	out := append([]int(nil), parents...)
	sort.Ints(out)
	for i, q := range out {
		switch {
		case q < 0 || q >= p:
			return nil, fmt.Errorf("score: parent %d of %d: %w", q, p, ErrBadParents)
		case q == node:
			return nil, fmt.Errorf("score: node %d is its own parent: %w", node, ErrBadParents)
		case i > 0 && out[i-1] == q:
			return nil, fmt.Errorf("score: parent %d repeated: %w", q, ErrBadParents)
		}
	}

	return out, nil
}

// Signature renders a sorted parent set as a compact cache key, e.g. "1,4,7".
func Signature(sorted []int) string {
	var b strings.Builder
	for i, q := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(q))
	}

	return b.String()
}
