// Package knowledge holds background knowledge that restricts which edges a
// structure search may add, remove or orient: required edges, forbidden
// edges, and temporal tiers.
//
// Knowledge is name-based so it can be loaded before the data. Compile binds
// it to a variable list and yields an index-based Index for the hot path.
//
// Tier semantics: a variable in a later tier can never cause one in an
// earlier tier, so X --> Y is forbidden when tier(X) > tier(Y). A tier may
// additionally forbid edges among its own members. Variables without a tier
// are unconstrained by tiers.
package knowledge

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/fgs/core"
	"github.com/katalvlaran/fgs/dfs"
)

var (
	// ErrMalformed indicates an unparsable knowledge file.
	ErrMalformed = errors.New("knowledge: malformed knowledge")

	// ErrConflict indicates contradictory knowledge: an edge both required
	// and forbidden, or required edges forming a directed cycle.
	ErrConflict = errors.New("knowledge: conflicting knowledge")

	// ErrUnknownVariable indicates a name absent from the variable list.
	ErrUnknownVariable = errors.New("knowledge: unknown variable")
)

// Edge is a directed pair of variable names.
type Edge struct {
	From string
	To   string
}

// String renders "From --> To".
func (e Edge) String() string { return e.From + " --> " + e.To }

// Knowledge is a mutable set of constraints. It is not safe for concurrent
// mutation; the search only reads it through a compiled Index.
type Knowledge struct {
	forbidden     map[Edge]struct{}
	required      map[Edge]struct{}
	tiers         map[string]int
	forbidInTiers map[int]struct{}
}

// New returns empty knowledge.
func New() *Knowledge {
	return &Knowledge{
		forbidden:     make(map[Edge]struct{}),
		required:      make(map[Edge]struct{}),
		tiers:         make(map[string]int),
		forbidInTiers: make(map[int]struct{}),
	}
}

// Forbid forbids the edge from --> to.
func (k *Knowledge) Forbid(from, to string) { k.forbidden[Edge{from, to}] = struct{}{} }

// Require requires the edge from --> to.
func (k *Knowledge) Require(from, to string) { k.required[Edge{from, to}] = struct{}{} }

// SetTier places name in tier. Placing it again moves it.
func (k *Knowledge) SetTier(name string, tier int) { k.tiers[name] = tier }

// ForbidWithinTier forbids edges between members of tier.
func (k *Knowledge) ForbidWithinTier(tier int) { k.forbidInTiers[tier] = struct{}{} }

// Tier returns the tier of name and whether it has one.
func (k *Knowledge) Tier(name string) (int, bool) {
	t, ok := k.tiers[name]
	return t, ok
}

// IsForbidden reports whether from --> to is forbidden explicitly or by tiers.
func (k *Knowledge) IsForbidden(from, to string) bool {
	if _, ok := k.forbidden[Edge{from, to}]; ok {
		return true
	}
	tf, okF := k.tiers[from]
	tt, okT := k.tiers[to]
	if !okF || !okT {
		return false
	}
	if tf > tt {
		return true
	}
	if tf == tt {
		_, within := k.forbidInTiers[tf]
		return within
	}

	return false
}

// IsRequired reports whether from --> to is required.
func (k *Knowledge) IsRequired(from, to string) bool {
	_, ok := k.required[Edge{from, to}]
	return ok
}

// RequiredEdges returns the required edges sorted by (From, To).
func (k *Knowledge) RequiredEdges() []Edge { return sortedEdges(k.required) }

// ForbiddenEdges returns the explicitly forbidden edges sorted by (From, To).
func (k *Knowledge) ForbiddenEdges() []Edge { return sortedEdges(k.forbidden) }

func sortedEdges(set map[Edge]struct{}) []Edge {
	out := make([]Edge, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// Empty reports whether k constrains nothing.
func (k *Knowledge) Empty() bool {
	return k == nil || (len(k.forbidden) == 0 && len(k.required) == 0 && len(k.tiers) == 0)
}

// Validate checks k against names.
//
// Errors: ErrUnknownVariable, ErrConflict.
func (k *Knowledge) Validate(names []string) error {
	_, err := k.Compile(names)
	return err
}

// String renders k in the knowledge file format Parse reads.
func (k *Knowledge) String() string {
	var b strings.Builder
	b.WriteString("/knowledge\naddtemporal\n")
	byTier := make(map[int][]string)
	for name, t := range k.tiers {
		byTier[t] = append(byTier[t], name)
	}
	tiers := make([]int, 0, len(byTier))
	for t := range byTier {
		tiers = append(tiers, t)
	}
	sort.Ints(tiers)
	for _, t := range tiers {
		names := byTier[t]
		sort.Strings(names)
		b.WriteString(strconv.Itoa(t))
		if _, ok := k.forbidInTiers[t]; ok {
			b.WriteByte('*')
		}
		for _, n := range names {
			b.WriteByte(' ')
			b.WriteString(n)
		}
		b.WriteByte('\n')
	}
	b.WriteString("\nforbiddirect\n")
	for _, e := range k.ForbiddenEdges() {
		b.WriteString(e.From + " " + e.To + "\n")
	}
	b.WriteString("\nrequiredirect\n")
	for _, e := range k.RequiredEdges() {
		b.WriteString(e.From + " " + e.To + "\n")
	}

	return b.String()
}

// Index is knowledge bound to a variable list. A nil *Index forbids and
// requires nothing. Read-only; safe for concurrent use.
type Index struct {
	n         int
	forbidden []bool
	required  []bool
	reqEdges  [][2]int
}

// Compile binds k to names (index i is names[i]).
//
// Errors: ErrUnknownVariable for a name used in k but absent from names;
// ErrConflict for a required edge that is also forbidden, or required edges
// forming a directed cycle.
func (k *Knowledge) Compile(names []string) (*Index, error) {
	g, err := core.NewGraphFromNames(names)
	if err != nil {
		return nil, fmt.Errorf("knowledge: %w", err)
	}
	n := len(names)
	ix := &Index{n: n, forbidden: make([]bool, n*n), required: make([]bool, n*n)}
	if k == nil {
		return ix, nil
	}

	lookup := func(name string) (int, error) {
		i, ok := g.Index(name)
		if !ok {
			return 0, fmt.Errorf("knowledge: %q: %w", name, ErrUnknownVariable)
		}
		return i, nil
	}
	for e := range k.forbidden {
		if _, err := lookup(e.From); err != nil {
			return nil, err
		}
		if _, err := lookup(e.To); err != nil {
			return nil, err
		}
	}
	for name := range k.tiers {
		if _, err := lookup(name); err != nil {
			return nil, err
		}
	}

	// 1) Forbidden matrix from explicit edges and tiers.
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if a != b && k.IsForbidden(names[a], names[b]) {
				ix.forbidden[a*n+b] = true
			}
		}
	}

	// 2) Required edges: known names, not forbidden, acyclic.
	for _, e := range k.RequiredEdges() {
		a, err := lookup(e.From)
		if err != nil {
			return nil, err
		}
		b, err := lookup(e.To)
		if err != nil {
			return nil, err
		}
		if ix.forbidden[a*n+b] {
			return nil, fmt.Errorf("knowledge: %s is required and forbidden: %w", e, ErrConflict)
		}
		if err := g.AddDirected(a, b); err != nil {
			return nil, fmt.Errorf("knowledge: %s: %v: %w", e, err, ErrConflict)
		}
		ix.required[a*n+b] = true
		ix.reqEdges = append(ix.reqEdges, [2]int{a, b})
	}
	if cycle, _ := dfs.FindDirectedCycle(g); cycle != nil {
		return nil, fmt.Errorf("knowledge: required edges form a cycle through %s: %w", g.Name(cycle[0]), ErrConflict)
	}

	return ix, nil
}

// IsForbidden reports whether a --> b is forbidden.
func (ix *Index) IsForbidden(a, b int) bool {
	if ix == nil || a < 0 || b < 0 || a >= ix.n || b >= ix.n {
		return false
	}
	return ix.forbidden[a*ix.n+b]
}

// IsRequired reports whether a --> b is required.
func (ix *Index) IsRequired(a, b int) bool {
	if ix == nil || a < 0 || b < 0 || a >= ix.n || b >= ix.n {
		return false
	}
	return ix.required[a*ix.n+b]
}

// RequiredEdges returns the required (from, to) index pairs, ordered by name.
func (ix *Index) RequiredEdges() [][2]int {
	if ix == nil {
		return nil
	}
	return append([][2]int(nil), ix.reqEdges...)
}

// Empty reports whether the index constrains nothing.
func (ix *Index) Empty() bool {
	if ix == nil {
		return true
	}
	if len(ix.reqEdges) > 0 {
		return false
	}
	for _, f := range ix.forbidden {
		if f {
			return false
		}
	}

	return true
}
