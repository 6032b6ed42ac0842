// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying topology, counts,
// idempotence, and default weights.
package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
)

// degrees returns key → degree for every node in g.
func degrees(t *testing.T, g *core.Graph) map[int]int {
	t.Helper()
	out := make(map[int]int, g.NodeCount())
	for _, k := range g.Keys() {
		d, err := g.Degree(k)
		require.NoError(t, err)
		out[k] = d
	}

	return out
}

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		connected   bool
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5, connected: true,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 5; i++ {
					assert.Equal(t, builder.DefaultEdgeWeight, g.Edge(i, (i+1)%5))
				}
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3, connected: true,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(0, 1))
				assert.True(t, g.HasEdge(2, 3))
				assert.False(t, g.HasEdge(0, 3))
			},
		},
		{
			name: "Star(4)", ctor: builder.Star(4), wantV: 4, wantE: 3, connected: true,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, map[int]int{0: 3, 1: 1, 2: 1, 3: 1}, degrees(t, g))
			},
		},
		{
			name: "Wheel(4)", ctor: builder.Wheel(4), wantV: 5, wantE: 8, connected: true,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(0, 1), "rim")
				assert.True(t, g.HasEdge(4, 2), "spoke")
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6, connected: true,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for k, d := range degrees(t, g) {
					assert.Equal(t, 3, d, "node %d", k)
				}
			},
		},
		{
			name: "Complete(1)", ctor: builder.Complete(1), wantV: 1, wantE: 0, connected: true,
		},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6, connected: true,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(0, 2))
				assert.True(t, g.HasEdge(1, 4))
				assert.False(t, g.HasEdge(0, 1), "no edge inside a side")
				assert.False(t, g.HasEdge(2, 3), "no edge inside a side")
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7, connected: true,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(0, 1))
				assert.True(t, g.HasEdge(0, 3))
				assert.False(t, g.HasEdge(2, 3), "row wrap must not connect")
				n, _ := g.Node(4)
				assert.Equal(t, "1,1", n.Label())
			},
		},
		{
			name: "Grid(1,1)", ctor: builder.Grid(1, 1), wantV: 1, wantE: 0, connected: true,
		},
		{
			name: "RandomSparse(5,0)", ctor: builder.RandomSparse(5, 0), wantV: 5, wantE: 0, connected: false,
		},
		{
			name: "RandomSparse(5,1)", ctor: builder.RandomSparse(5, 1), wantV: 5, wantE: 10, connected: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			assert.Equal(t, tc.connected, bfs.IsConnected(g))
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(2)", builder.Wheel(2), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", builder.RandomSparse(0, .5), builder.ErrTooFewVertices},
		{"RandomSparse(3,-.1)", builder.RandomSparse(3, -.1), builder.ErrInvalidProbability},
		{"RandomSparse(3,NaN)", builder.RandomSparse(3, math.NaN()), builder.ErrInvalidProbability},
		{"RandomSparse(3,.5) no rng", builder.RandomSparse(3, .5), builder.ErrNeedRandSource},
		{"RandomRegular(4,4)", builder.RandomRegular(4, 4), builder.ErrTooFewVertices},
		{"RandomRegular(5,3)", builder.RandomRegular(5, 3), builder.ErrTooFewVertices},
		{"RandomRegular(4,2) no rng", builder.RandomRegular(4, 2), builder.ErrNeedRandSource},
		{"RandomEdges(4,7)", builder.RandomEdges(4, 7), builder.ErrInvalidEdgeCount},
		{"RandomEdges(4,-1)", builder.RandomEdges(4, -1), builder.ErrInvalidEdgeCount},
		{"RandomEdges(4,2) no rng", builder.RandomEdges(4, 2), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestRandomEdges_ExactCount(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ n, m int }{{1, 0}, {2, 1}, {10, 30}, {10, 45}, {50, 60}, {15, 40}} {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(2)},
			builder.RandomEdges(tc.n, tc.m))
		require.NoError(t, err)
		assert.Equal(t, tc.n, g.NodeCount())
		assert.Equal(t, tc.m, g.EdgeCount(), "n=%d m=%d", tc.n, tc.m)
	}
}

func TestRandomRegular_Degrees(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
		builder.RandomRegular(10, 3))
	require.NoError(t, err)
	assert.Equal(t, 15, g.EdgeCount())
	for k, d := range degrees(t, g) {
		assert.Equal(t, 3, d, "node %d", k)
	}

	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
		builder.RandomRegular(3, 0))
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestBuilders_Deterministic(t *testing.T) {
	t.Parallel()

	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(0, 10)},
			builder.RandomSparse(20, 0.3))
		require.NoError(t, err)
		return g
	}
	a, b := build(11), build(11)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Edges(), b.Edges())

	c := build(12)
	assert.False(t, a.Equal(c))
}

func TestBuilders_ComposeWithOffsetAndLabels(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	require.NoError(t, builder.Apply(g,
		[]builder.BuilderOption{builder.WithKeyOffset(10), builder.WithSymbolLabels(), builder.WithConstantWeight(2.5)},
		builder.Cycle(3)))

	assert.Equal(t, []int{0, 1, 2, 10, 11, 12}, g.Keys())
	assert.Equal(t, 2.5, g.Edge(12, 10))
	assert.False(t, bfs.IsConnected(g))

	n, _ := g.Node(11)
	assert.Equal(t, "B", n.Label())
	first, _ := g.Node(1)
	assert.Equal(t, "", first.Label())

	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrConstructFailed)
}

func TestBuilders_Idempotent(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Complete(4), builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 6, g.EdgeCount())
}

func TestBuilders_QuantizedWeights(t *testing.T) {
	t.Parallel()

	wfn := builder.QuantizedWeightFn(builder.UniformWeightFn(0, 1), 0.01)
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithWeightFn(wfn)},
		builder.RandomEdges(10, 20))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 0.0)
		assert.LessOrEqual(t, e.Weight, 1.0)
		assert.InDelta(t, math.Round(e.Weight*100), e.Weight*100, 1e-6)
	}
}
