// SPDX-License-Identifier: MIT

package search

import (
	"time"

	"github.com/katalvlaran/fgs/core"
)

// Status is how a search ended.
type Status int

const (
	// Converged: both phases reached a fixed point.
	Converged Status = iota
	// Aborted: the search failed. Run never returns a Result with this
	// status; callers use it when reporting a failed run.
	Aborted
)

func (s Status) String() string {
	if s == Converged {
		return "converged"
	}

	return "aborted"
}

// Stats counts the work of one run.
type Stats struct {
	Inserts   int
	Deletes   int
	Evaluated int64
	// Rejected counts candidates with an ill-determined score.
	Rejected int64
	// Reverted counts operators rolled back because the pattern rebuilt
	// after them did not score higher than before. Knowledge-forced
	// orientations can move parents of nodes other than Y.
	Reverted int
	// Conflicts counts orientations skipped by the orientation engine.
	Conflicts int
	// IllDetermined counts nodes of the final pattern whose local score is
	// ill-determined. They are left out of ScoreTrace.
	IllDetermined int
	// LargestSubset is the largest T or H among scored operators.
	LargestSubset int
	CacheHits     int64
	CacheMisses   int64
	Forward       time.Duration
	Backward      time.Duration
}

// Result is the outcome of a converged run. The caller owns every graph in it.
type Result struct {
	RunID  string
	Graph  *core.Graph
	Status Status
	Stats  Stats

	// Patterns holds up to NumPatternsToStore accepted states, oldest first.
	Patterns []*core.Graph

	// ScoreTrace holds the total score at Init and after every accepted
	// operator, summed over the nodes with a well-determined local score.
	// It increases strictly while the number of such nodes stays fixed.
	ScoreTrace []float64
}

// Score returns the final total score.
func (r *Result) Score() float64 {
	if len(r.ScoreTrace) == 0 {
		return 0
	}

	return r.ScoreTrace[len(r.ScoreTrace)-1]
}

// ring keeps the last cap patterns.
type ring struct {
	items []*core.Graph
	next  int
	full  bool
}

func newRing(capacity int) *ring {
	return &ring{items: make([]*core.Graph, capacity)}
}

func (r *ring) push(g *core.Graph) {
	if len(r.items) == 0 {
		return
	}
	r.items[r.next] = g
	r.next = (r.next + 1) % len(r.items)
	if r.next == 0 {
		r.full = true
	}
}

// snapshot returns the stored patterns, oldest first.
func (r *ring) snapshot() []*core.Graph {
	if !r.full {
		return append([]*core.Graph(nil), r.items[:r.next]...)
	}

	return append(append([]*core.Graph(nil), r.items[r.next:]...), r.items[:r.next]...)
}
