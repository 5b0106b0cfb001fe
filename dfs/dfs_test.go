package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fgs/core"
	"github.com/katalvlaran/fgs/dfs"
)

// build returns a graph over names with the listed edges; "->" marks a
// directed edge and "--" an undirected one.
func build(t *testing.T, names []string, edges [][3]string) *core.Graph {
	t.Helper()
	g, err := core.NewGraphFromNames(names)
	require.NoError(t, err)
	for _, e := range edges {
		a, _ := g.Index(e[0])
		b, _ := g.Index(e[2])
		switch e[1] {
		case "->":
			require.NoError(t, g.AddDirected(a, b))
		case "--":
			require.NoError(t, g.AddUndirected(a, b))
		default:
			t.Fatalf("bad edge kind %q", e[1])
		}
	}

	return g
}

func TestReachable_NilAndRange(t *testing.T) {
	_, err := dfs.ExistsDirectedPath(nil, 0, 1)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := build(t, []string{"A", "B"}, nil)
	_, err = dfs.ExistsDirectedPath(g, 0, 5)
	assert.ErrorIs(t, err, dfs.ErrNodeNotFound)
	_, err = dfs.ExistsSemiDirectedPath(g, -1, 0, nil)
	assert.ErrorIs(t, err, dfs.ErrNodeNotFound)
}

func TestExistsDirectedPath(t *testing.T) {
	// A -> B -> C, C -- D
	g := build(t, []string{"A", "B", "C", "D"}, [][3]string{
		{"A", "->", "B"}, {"B", "->", "C"}, {"C", "--", "D"},
	})

	ok, err := dfs.ExistsDirectedPath(g, 0, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = dfs.ExistsDirectedPath(g, 2, 0)
	require.NoError(t, err)
	assert.False(t, ok, "against the arrows")

	ok, err = dfs.ExistsDirectedPath(g, 0, 3)
	require.NoError(t, err)
	assert.False(t, ok, "undirected edges are not directed paths")
}

func TestExistsSemiDirectedPath(t *testing.T) {
	// A -> B -- C -> D, E -> D
	g := build(t, []string{"A", "B", "C", "D", "E"}, [][3]string{
		{"A", "->", "B"}, {"B", "--", "C"}, {"C", "->", "D"}, {"E", "->", "D"},
	})

	ok, err := dfs.ExistsSemiDirectedPath(g, 0, 3, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = dfs.ExistsSemiDirectedPath(g, 3, 0, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = dfs.ExistsSemiDirectedPath(g, 2, 0, nil)
	require.NoError(t, err)
	assert.False(t, ok, "B -> A does not exist")

	// Blocking C cuts the only route from A to D.
	ok, err = dfs.ExistsSemiDirectedPath(g, 0, 3, map[int]struct{}{2: {}})
	require.NoError(t, err)
	assert.False(t, ok)

	// Blocking the target itself does not hide it.
	ok, err = dfs.ExistsSemiDirectedPath(g, 0, 3, map[int]struct{}{3: {}})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReachable_CustomStep(t *testing.T) {
	g := build(t, []string{"A", "B", "C"}, [][3]string{
		{"A", "--", "B"}, {"B", "--", "C"},
	})
	all := func(a, b int) bool { return true }
	ok, err := dfs.Reachable(g, 0, 2, all, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	none := func(a, b int) bool { return false }
	ok, err = dfs.Reachable(g, 0, 2, none, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}
