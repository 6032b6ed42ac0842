package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/core"
)

func line(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
	for i := 1; i < n; i++ {
		require.NoError(t, g.Connect(i-1, i, float64(i)))
	}

	return g
}

// TestWalk_Errors verifies that invalid inputs and options are rejected.
func TestWalk_Errors(t *testing.T) {
	_, err := bfs.Walk(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.Walk(g, 1)
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)

	g.AddNode(1)
	_, err = bfs.Walk(g, 1, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestWalk_OrderDepthParent(t *testing.T) {
	// 0 - 1 - 2 - 3 plus a chord 0 - 2
	g := line(t, 4)
	require.NoError(t, g.Connect(0, 2, 9))

	res, err := bfs.Walk(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 1, 3: 2}, res.Depth)
	assert.Equal(t, 2, res.Parent[3])

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, path)
}

func TestWalk_TagsAreMarkers(t *testing.T) {
	g := line(t, 3)
	g.AddNode(10)
	n, _ := g.Node(10)
	n.SetTag(42)

	res, err := bfs.Walk(g, 0)
	require.NoError(t, err)
	assert.False(t, res.Reached(10))
	for _, k := range []int{0, 1, 2} {
		n, _ := g.Node(k)
		assert.Equal(t, 0.0, n.Tag())
	}
	assert.Equal(t, core.Unvisited, n.Tag(), "unreached tag is reset to the sentinel")

	_, err = res.PathTo(10)
	assert.ErrorIs(t, err, bfs.ErrNotReached)
}

func TestWalk_MaxDepthAndFilter(t *testing.T) {
	g := line(t, 5)
	res, err := bfs.Walk(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)

	// skip edges heavier than 2: weights are 1,2,3,4 along the line
	res, err = bfs.Walk(g, 0, bfs.WithFilterNeighbor(func(_, _ int, w float64) bool { return w <= 2 }))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
}

func TestWalk_OnVisitAborts(t *testing.T) {
	g := line(t, 4)
	stop := errors.New("stop")
	var seen []int
	_, err := bfs.Walk(g, 0, bfs.WithOnVisit(func(n *core.Node, _ int) error {
		seen = append(seen, n.Key())
		if n.Key() == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1}, seen)
}

func TestReachable(t *testing.T) {
	g := line(t, 3)
	g.AddNode(7)
	cnt, err := bfs.Reachable(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, cnt)
	cnt, err = bfs.Reachable(g, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, cnt)
}

func TestIsConnected(t *testing.T) {
	assert.True(t, bfs.IsConnected(nil))
	assert.True(t, bfs.IsConnected(core.NewGraph()))

	single := core.NewGraph()
	single.AddNode(0)
	assert.True(t, bfs.IsConnected(single))

	two := core.NewGraph()
	two.AddNode(0)
	two.AddNode(1)
	assert.False(t, bfs.IsConnected(two))
	require.NoError(t, two.Connect(0, 1, 1))
	assert.True(t, bfs.IsConnected(two))

	g := line(t, 6)
	assert.True(t, bfs.IsConnected(g))
	g.AddNode(9)
	assert.False(t, bfs.IsConnected(g))
	_ = g.Connect(9, 9, 0.5)
	assert.False(t, bfs.IsConnected(g))
	require.NoError(t, g.Connect(9, 2, 0.5))
	assert.True(t, bfs.IsConnected(g))
}

func TestIsConnected_EdgelessIsDisconnected(t *testing.T) {
	for n := 2; n < 8; n++ {
		g := core.NewGraph()
		for i := 0; i < n; i++ {
			g.AddNode(i * 3)
		}
		assert.False(t, bfs.IsConnected(g), "n=%d", n)
	}
}
