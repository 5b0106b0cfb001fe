package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fgs/dfs"
)

func TestFindDirectedCycle_Nil(t *testing.T) {
	_, err := dfs.FindDirectedCycle(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	_, err = dfs.HasDirectedCycle(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestFindDirectedCycle_Acyclic(t *testing.T) {
	// Diamond plus an undirected chord: no directed cycle.
	g := build(t, []string{"A", "B", "C", "D"}, [][3]string{
		{"A", "->", "B"}, {"A", "->", "C"}, {"B", "->", "D"}, {"C", "->", "D"}, {"B", "--", "C"},
	})
	cycle, err := dfs.FindDirectedCycle(g)
	require.NoError(t, err)
	assert.Nil(t, cycle)

	has, err := dfs.HasDirectedCycle(g)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestFindDirectedCycle_ThreeNodes(t *testing.T) {
	// X -> A -> B -> C -> A
	g := build(t, []string{"X", "A", "B", "C"}, [][3]string{
		{"X", "->", "A"}, {"A", "->", "B"}, {"B", "->", "C"}, {"C", "->", "A"},
	})
	cycle, err := dfs.FindDirectedCycle(g)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 1}, cycle)

	has, err := dfs.HasDirectedCycle(g)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestFindDirectedCycle_IgnoresUndirected(t *testing.T) {
	// A -> B -> C -- A would be a cycle only if the undirected edge counted.
	g := build(t, []string{"A", "B", "C"}, [][3]string{
		{"A", "->", "B"}, {"B", "->", "C"}, {"C", "--", "A"},
	})
	has, err := dfs.HasDirectedCycle(g)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestTopologicalSort(t *testing.T) {
	// C -> A, C -> B, A -> B, D isolated.
	g := build(t, []string{"A", "B", "C", "D"}, [][3]string{
		{"C", "->", "A"}, {"C", "->", "B"}, {"A", "->", "B"},
	})
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1, 3}, order)

	_, err = dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestTopologicalSort_Cycle(t *testing.T) {
	c := build(t, []string{"A", "B", "C"}, [][3]string{
		{"A", "->", "B"}, {"B", "->", "C"}, {"C", "->", "A"},
	})
	_, err := dfs.TopologicalSort(c)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 1, dfs.IndexOf([]int{4, 7, 9}, 7))
	assert.Equal(t, -1, dfs.IndexOf([]int{4, 7, 9}, 5))
	assert.Equal(t, -1, dfs.IndexOf(nil, 0))
}
