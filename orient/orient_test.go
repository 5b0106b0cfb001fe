package orient_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fgs/core"
	"github.com/katalvlaran/fgs/knowledge"
	"github.com/katalvlaran/fgs/orient"
)

// build parses "A->B", "A--B" edge specs over names.
func build(t *testing.T, names []string, edges ...string) *core.Graph {
	t.Helper()
	g, err := core.NewGraphFromNames(names)
	require.NoError(t, err)
	for _, e := range edges {
		require.Len(t, e, 4, e)
		a, okA := g.Index(e[:1])
		b, okB := g.Index(e[3:])
		require.True(t, okA && okB, e)
		switch e[1:3] {
		case "->":
			require.NoError(t, g.AddDirected(a, b))
		case "--":
			require.NoError(t, g.AddUndirected(a, b))
		default:
			t.Fatalf("bad edge %q", e)
		}
	}

	return g
}

func TestRebuild_ChainBecomesUndirected(t *testing.T) {
	g := build(t, []string{"A", "B", "C"}, "A->B", "B->C")
	var e orient.Engine
	rep := e.Rebuild(g)

	assert.Equal(t, build(t, []string{"A", "B", "C"}, "A--B", "B--C").String(), g.String())
	assert.Equal(t, []int{1, 2}, rep.Changed)
	assert.Zero(t, rep.Oriented)
	assert.Empty(t, rep.Conflicts)
}

func TestRebuild_ColliderKept(t *testing.T) {
	g := build(t, []string{"A", "B", "C"}, "A->C", "B->C")
	var e orient.Engine
	rep := e.Rebuild(g)

	assert.True(t, g.IsDirected(0, 2))
	assert.True(t, g.IsDirected(1, 2))
	assert.Empty(t, rep.Changed)

	// Shielding the collider dissolves it.
	require.NoError(t, g.AddUndirected(0, 1))
	e.Rebuild(g)
	assert.True(t, g.IsUndirected(0, 2))
	assert.True(t, g.IsUndirected(1, 2))
}

// TestRebuild_MeekR1R2: the collider A->B<-E compels B->C (R1), and then
// A->B->C compels A->C (R2).
func TestRebuild_MeekR1R2(t *testing.T) {
	names := []string{"A", "B", "C", "E"}
	g := build(t, names, "A->B", "E->B", "B--C", "A--C")
	var out bytes.Buffer
	e := orient.Engine{Out: &out}
	rep := e.Rebuild(g)

	want := build(t, names, "A->B", "E->B", "B->C", "A->C")
	assert.True(t, want.Equal(g), g.String())
	assert.Equal(t, 2, rep.Oriented)
	assert.Equal(t, []int{2}, rep.Changed)
	assert.Equal(t, "Orienting B --> C (R1)\nOrienting A --> C (R2)\n", out.String())
}

// TestRebuild_MeekR3: C->B<-D collider with A adjacent to all three.
func TestRebuild_MeekR3(t *testing.T) {
	names := []string{"A", "B", "C", "D"}
	g := build(t, names, "C->B", "D->B", "A--B", "A--C", "A--D")
	var e orient.Engine
	e.Rebuild(g)

	assert.True(t, g.IsDirected(0, 1), g.String())
	assert.True(t, g.IsUndirected(0, 2))
	assert.True(t, g.IsUndirected(0, 3))
}

// TestMeekRules_R4: A---D-->C-->B with A adjacent to C and B, D not
// adjacent to B. Only R4 fires, and only for A --> B.
func TestMeekRules_R4(t *testing.T) {
	names := []string{"A", "B", "C", "D"}
	g := build(t, names, "A--D", "D->C", "C->B", "A--C", "A--B")
	rules := orient.MeekRules()
	require.Len(t, rules, 4)
	require.Equal(t, "R4", rules[3].Name)

	assert.True(t, rules[3].Implies(g, 0, 1))
	assert.False(t, rules[3].Implies(g, 1, 0))
	for _, r := range rules[:3] {
		assert.False(t, r.Implies(g, 0, 1), r.Name)
	}
}

// TestRebuild_MeekR4 keeps D->C->B by knowledge so the collider reduction
// leaves them, then R4 orients A --> B.
func TestRebuild_MeekR4(t *testing.T) {
	names := []string{"A", "B", "C", "D"}
	k := knowledge.New()
	k.Require("D", "C")
	k.Require("C", "B")
	ix, err := k.Compile(names)
	require.NoError(t, err)

	g := build(t, names, "A--D", "D->C", "C->B", "A--C", "A--B")
	var out bytes.Buffer
	e := orient.Engine{Knowledge: ix, Out: &out}
	rep := e.Rebuild(g)

	want := build(t, names, "A--D", "D->C", "C->B", "A--C", "A->B")
	assert.True(t, want.Equal(g), g.String())
	assert.Equal(t, []int{1}, rep.Changed)
	assert.Contains(t, out.String(), "Orienting A --> B (R4)\n")
}

func TestRebuild_NoRules(t *testing.T) {
	names := []string{"A", "B", "C", "E"}
	g := build(t, names, "A->B", "E->B", "B--C")
	e := orient.Engine{Rules: []orient.Rule{}}
	e.Rebuild(g)
	assert.True(t, g.IsUndirected(1, 2))
}

func TestRebuild_Knowledge(t *testing.T) {
	names := []string{"A", "B", "C"}
	k := knowledge.New()
	k.Forbid("A", "B")
	k.Require("C", "B")
	ix, err := k.Compile(names)
	require.NoError(t, err)

	g := build(t, names, "A--B", "B--C")
	e := orient.Engine{Knowledge: ix}
	rep := e.Rebuild(g)

	assert.True(t, g.IsDirected(1, 0), g.String())
	assert.True(t, g.IsDirected(2, 1))
	assert.Equal(t, []int{0, 1}, rep.Changed)

	// A required edge survives the collider reduction.
	g2 := build(t, names, "C->B")
	e.Rebuild(g2)
	assert.True(t, g2.IsDirected(2, 1))
}

// TestRebuild_Conflict uses a rule that wants every edge oriented; the first
// direction tried would close C->B->A->C and is skipped.
func TestRebuild_Conflict(t *testing.T) {
	names := []string{"A", "B", "C"}
	k := knowledge.New()
	k.Require("C", "B")
	k.Require("B", "A")
	ix, err := k.Compile(names)
	require.NoError(t, err)

	always := orient.Rule{Name: "always", Implies: func(*core.Graph, int, int) bool { return true }}
	var logs bytes.Buffer
	e := orient.Engine{
		Knowledge: ix,
		Rules:     []orient.Rule{always},
		Logger:    slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
	g := build(t, names, "C->B", "B->A", "A--C")
	rep := e.Rebuild(g)

	require.Len(t, rep.Conflicts, 1)
	assert.ErrorIs(t, rep.Conflicts[0], orient.ErrConflict)
	assert.Contains(t, rep.Conflicts[0].Error(), "A --> C would create a cycle")
	assert.True(t, g.IsDirected(2, 0))
	assert.Contains(t, logs.String(), "orientation skipped")
}

func TestConsistentExtension(t *testing.T) {
	chain := build(t, []string{"A", "B", "C"}, "A--B", "B--C")
	dag, err := orient.ConsistentExtension(chain)
	require.NoError(t, err)
	assert.True(t, dag.IsDirected(1, 0))
	assert.True(t, dag.IsDirected(2, 1))
	assert.True(t, chain.IsUndirected(0, 1), "input untouched")

	collider := build(t, []string{"A", "B", "C"}, "A->C", "B->C")
	dag, err = orient.ConsistentExtension(collider)
	require.NoError(t, err)
	assert.True(t, collider.Equal(dag))

	square := build(t, []string{"A", "B", "C", "D"}, "A--B", "B--C", "C--D", "A--D")
	_, err = orient.ConsistentExtension(square)
	assert.ErrorIs(t, err, orient.ErrNoExtension)
}
