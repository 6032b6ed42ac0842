// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for wgraph/core.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
)

// Common weights used across core tests.
const (
	Weight0   = 0.0
	Weight1_5 = 1.5
	Weight2   = 2.0
	Weight3_5 = 3.5
)

// newNodes RETURNS a graph holding keys 0..n-1 and no edges.
func newNodes(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.True(t, g.AddNode(i), "AddNode(%d)", i)
	}

	return g
}

// mustConnect connects a-b and fails the test on error.
func mustConnect(t *testing.T, g *core.Graph, a, b int, w float64) {
	t.Helper()
	require.NoError(t, g.Connect(a, b, w), "Connect(%d,%d,%g)", a, b, w)
}

// counters captures (nodes, edges, mc) for before/after comparisons.
type counters struct{ nodes, edges, mc int }

func snapshot(g *core.Graph) counters {
	return counters{nodes: g.NodeCount(), edges: g.EdgeCount(), mc: g.ModCount()}
}

// requireSymmetric asserts Edge(u,v) == Edge(v,u) for every stored edge.
func requireSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()
	for _, e := range g.Edges() {
		require.Equal(t, g.Edge(e.From, e.To), g.Edge(e.To, e.From), "asymmetric %d-%d", e.From, e.To)
	}
}
