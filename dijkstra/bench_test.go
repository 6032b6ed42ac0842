package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/dijkstra"
)

// BenchmarkSearch_Random measures a full single-source run (unreachable
// target) on a seeded random graph with V=2000, E=10000.
func BenchmarkSearch_Random(b *testing.B) {
	const V, E = 2000, 10000
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(0, 10)},
		builder.RandomEdges(V, E),
	)
	if err != nil {
		b.Fatal(err)
	}
	g.AddNode(-1) // isolated, forces exhaustion of the heap

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Search(g, 0, -1)
	}
}

// BenchmarkPath_Grid reconstructs a corner-to-corner path on a 50×50 lattice.
func BenchmarkPath_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(50, 50))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = dijkstra.Path(g, 0, 50*50-1)
	}
}
