// Package orient keeps a graph a valid pattern after each search step.
//
// Rebuild reduces the graph to its collider skeleton, applies background
// knowledge, then propagates orientations with a rule set (Meek R1–R4 by
// default) until nothing changes. An orientation that would close a directed
// cycle or contradict knowledge is skipped and reported as ErrConflict; it
// never aborts the rebuild.
package orient

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/fgs/core"
	"github.com/katalvlaran/fgs/dfs"
	"github.com/katalvlaran/fgs/knowledge"
)

// ErrConflict marks a skipped orientation.
var ErrConflict = errors.New("orient: orientation conflict")

// Engine applies the rebuild. The zero value uses MeekRules, no knowledge,
// no logging and no verbose output.
type Engine struct {
	// Knowledge restricts orientations. Nil means none.
	Knowledge *knowledge.Index

	// Rules replaces MeekRules when non-nil.
	Rules []Rule

	// Logger receives conflicts at Debug. Nil discards.
	Logger *slog.Logger

	// Out receives one human-readable line per orientation and conflict.
	// Nil is silent.
	Out io.Writer
}

// Report summarizes one Rebuild.
type Report struct {
	// Changed lists, ascending, the nodes whose parent set differs from
	// before the rebuild.
	Changed []int

	// Oriented counts orientations made by knowledge and rules.
	Oriented int

	// Conflicts holds one ErrConflict-wrapping error per skipped orientation.
	Conflicts []error
}

// Rebuild turns g into a pattern in place.
//
// Steps:
//  1. Undirect every directed edge that is not in an unshielded collider
//     and is not required by knowledge.
//  2. Orient undirected edges by knowledge: a required direction, or the
//     reverse of a forbidden one.
//  3. Apply the rules to a fixed point.
func (e *Engine) Rebuild(g *core.Graph) Report {
	n := g.NumNodes()
	before := make([][]int, n)
	for v := 0; v < n; v++ {
		before[v] = g.Parents(v)
	}
	r := &rebuild{e: e, g: g, seen: make(map[[2]int]struct{})}

	r.basicPattern()
	r.applyKnowledge()
	r.propagate()

	for v := 0; v < n; v++ {
		if !equalInts(before[v], g.Parents(v)) {
			r.report.Changed = append(r.report.Changed, v)
		}
	}

	return r.report
}

// rebuild carries the state of one Rebuild call.
type rebuild struct {
	e      *Engine
	g      *core.Graph
	report Report
	seen   map[[2]int]struct{}
}

// basicPattern undirects directed edges outside unshielded colliders.
// Decisions are taken on the unmodified graph.
func (r *rebuild) basicPattern() {
	var undirect []core.Edge
	for _, ed := range r.g.Edges() {
		if !ed.Directed || r.e.Knowledge.IsRequired(ed.From, ed.To) {
			continue
		}
		if !r.inUnshieldedCollider(ed.From, ed.To) {
			undirect = append(undirect, ed)
		}
	}
	for _, ed := range undirect {
		_ = r.g.Undirect(ed.From, ed.To)
	}
}

// inUnshieldedCollider reports whether x --> y <-- z for some z not adjacent to x.
func (r *rebuild) inUnshieldedCollider(x, y int) bool {
	for _, z := range r.g.Parents(y) {
		if z != x && !r.g.IsAdjacent(x, z) {
			return true
		}
	}

	return false
}

// applyKnowledge orients undirected edges that knowledge decides.
func (r *rebuild) applyKnowledge() {
	k := r.e.Knowledge
	if k.Empty() {
		return
	}
	for _, ed := range r.g.Edges() {
		if ed.Directed {
			continue
		}
		a, b := ed.From, ed.To
		switch {
		case k.IsRequired(a, b):
			r.try(a, b, "knowledge")
		case k.IsRequired(b, a):
			r.try(b, a, "knowledge")
		case k.IsForbidden(a, b) && !k.IsForbidden(b, a):
			r.try(b, a, "knowledge")
		case k.IsForbidden(b, a) && !k.IsForbidden(a, b):
			r.try(a, b, "knowledge")
		}
	}
}

// propagate applies the rules until a full pass orients nothing.
func (r *rebuild) propagate() {
	rules := r.e.Rules
	if rules == nil {
		rules = MeekRules()
	}
	for changed := true; changed; {
		changed = false
		for _, ed := range r.g.Edges() {
			if ed.Directed {
				continue
			}
			for _, dir := range [2][2]int{{ed.From, ed.To}, {ed.To, ed.From}} {
				if r.applyFirst(rules, dir[0], dir[1]) {
					changed = true
					break
				}
			}
		}
	}
}

// applyFirst tries each rule in order on a --- b; it stops at the first rule
// that orients the edge.
func (r *rebuild) applyFirst(rules []Rule, a, b int) bool {
	for _, rule := range rules {
		if !r.g.IsUndirected(a, b) {
			return false
		}
		if rule.Implies(r.g, a, b) && r.try(a, b, rule.Name) {
			return true
		}
	}

	return false
}

// try orients a --- b as a --> b unless that is forbidden or closes a cycle.
func (r *rebuild) try(a, b int, source string) bool {
	var reason string
	if r.e.Knowledge.IsForbidden(a, b) {
		reason = "is forbidden"
	} else if cyclic, _ := dfs.ExistsDirectedPath(r.g, b, a); cyclic {
		reason = "would create a cycle"
	}
	if reason != "" {
		r.conflict(a, b, source, reason)
		return false
	}
	if err := r.g.Orient(a, b); err != nil {
		return false
	}
	r.report.Oriented++
	if r.e.Out != nil {
		fmt.Fprintf(r.e.Out, "Orienting %s --> %s (%s)\n", r.g.Name(a), r.g.Name(b), source)
	}

	return true
}

// conflict records a skipped orientation once per directed pair.
func (r *rebuild) conflict(a, b int, source, reason string) {
	key := [2]int{a, b}
	if _, dup := r.seen[key]; dup {
		return
	}
	r.seen[key] = struct{}{}
	err := fmt.Errorf("orient: %s: %s --> %s %s: %w", source, r.g.Name(a), r.g.Name(b), reason, ErrConflict)
	r.report.Conflicts = append(r.report.Conflicts, err)
	if r.e.Logger != nil {
		r.e.Logger.Debug("orientation skipped",
			"rule", source,
			"from", r.g.Name(a),
			"to", r.g.Name(b),
			"reason", reason)
	}
	if r.e.Out != nil {
		fmt.Fprintf(r.e.Out, "Skipped %s --> %s (%s): %s\n", r.g.Name(a), r.g.Name(b), source, reason)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
