package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fgs/core"
)

func TestForEachSubset(t *testing.T) {
	var got [][]int
	forEachSubset([]int{3, 5, 9}, -1, func(s []int) { got = append(got, s) })
	assert.Equal(t, [][]int{{}, {3}, {5}, {9}, {3, 5}, {3, 9}, {5, 9}, {3, 5, 9}}, got)

	got = nil
	forEachSubset([]int{3, 5, 9}, 1, func(s []int) { got = append(got, s) })
	assert.Equal(t, [][]int{{}, {3}, {5}, {9}}, got)

	got = nil
	forEachSubset(nil, -1, func(s []int) { got = append(got, s) })
	assert.Equal(t, [][]int{{}}, got)
}

func TestUnionWithout(t *testing.T) {
	assert.Equal(t, []int{1, 2, 4, 7}, union([]int{7, 2}, []int{4, 2}, []int{1}))
	assert.Nil(t, union(nil, nil))
	assert.Equal(t, []int{1, 7}, without([]int{1, 4, 7}, 4))
	assert.Empty(t, without([]int{4}, 4))
}

func TestRing(t *testing.T) {
	graphs := make([]*core.Graph, 5)
	for i := range graphs {
		g, err := core.NewGraphFromNames([]string{"A"})
		require.NoError(t, err)
		graphs[i] = g
	}

	r := newRing(3)
	assert.Empty(t, r.snapshot())
	r.push(graphs[0])
	r.push(graphs[1])
	assert.Equal(t, graphs[:2], r.snapshot())
	r.push(graphs[2])
	r.push(graphs[3])
	r.push(graphs[4])
	snap := r.snapshot()
	require.Len(t, snap, 3)
	assert.Same(t, graphs[2], snap[0])
	assert.Same(t, graphs[4], snap[2])

	zero := newRing(0)
	zero.push(graphs[0])
	assert.Empty(t, zero.snapshot())
}
