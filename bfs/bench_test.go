package bfs_test

import (
	"testing"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/builder"
)

// BenchmarkWalk_Path measures BFS on a linear chain of N nodes.
func BenchmarkWalk_Path(b *testing.B) {
	const N = 10000
	g, err := builder.BuildGraph(nil, nil, builder.Path(N))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(g.NodeCount() + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Walk(g, 0)
	}
}

// BenchmarkIsConnected_Grid runs the connectivity check on a 100×100 lattice.
func BenchmarkIsConnected_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = bfs.IsConnected(g)
	}
}
