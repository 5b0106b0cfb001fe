package orient

import "github.com/katalvlaran/fgs/core"

// Rule decides whether the undirected edge a --- b must be oriented a --> b.
// Implies is called only on undirected edges and must not mutate g.
type Rule struct {
	Name    string
	Implies func(g *core.Graph, a, b int) bool
}

// MeekRules returns R1–R4 in application order.
func MeekRules() []Rule {
	return []Rule{
		{Name: "R1", Implies: meekR1},
		{Name: "R2", Implies: meekR2},
		{Name: "R3", Implies: meekR3},
		{Name: "R4", Implies: meekR4},
	}
}

// meekR1: c --> a, c not adjacent to b  ⇒  a --> b.
func meekR1(g *core.Graph, a, b int) bool {
	for _, c := range g.Parents(a) {
		if c != b && !g.IsAdjacent(c, b) {
			return true
		}
	}

	return false
}

// meekR2: a --> c --> b  ⇒  a --> b.
func meekR2(g *core.Graph, a, b int) bool {
	for _, c := range g.Children(a) {
		if g.IsDirected(c, b) {
			return true
		}
	}

	return false
}

// meekR3: a --- c --> b, a --- d --> b, c not adjacent to d  ⇒  a --> b.
func meekR3(g *core.Graph, a, b int) bool {
	var cs []int
	for _, c := range g.Neighbors(a) {
		if c != b && g.IsDirected(c, b) {
			cs = append(cs, c)
		}
	}
	for i := 0; i < len(cs); i++ {
		for j := i + 1; j < len(cs); j++ {
			if !g.IsAdjacent(cs[i], cs[j]) {
				return true
			}
		}
	}

	return false
}

// meekR4: a --- d --> c --> b, a adjacent to c, d not adjacent to b  ⇒  a --> b.
func meekR4(g *core.Graph, a, b int) bool {
	for _, c := range g.Parents(b) {
		if c == a || !g.IsAdjacent(a, c) {
			continue
		}
		for _, d := range g.Parents(c) {
			if d != b && g.IsUndirected(a, d) && !g.IsAdjacent(d, b) {
				return true
			}
		}
	}

	return false
}
