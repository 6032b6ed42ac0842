// Package dijkstra implements single-pair shortest paths on a core.Graph
// with non-negative edge weights.
//
// Overview:
//
//   - A min-heap of (node, predecessor, distance) candidates drives the search.
//   - Lazy deletion: stale duplicates stay in the heap and are dropped when
//     popped for an already finalized node. No decrease-key is needed.
//   - The path is rebuilt from the predecessor chain carried by the
//     finalized target candidate.
//   - The search stops as soon as the target is finalized.
//
// Observable state:
//
//	Node tags double as the running distance. Before the search every tag
//	is reset to core.Unvisited; afterwards reached nodes hold their distance
//	from the source. Graph.Equal sees these values.
//
// API:
//
//	Search(g, src, dest, opts...) (*Result, error)
//	Distance(g, src, dest) float64      // NoPath when absent/unreachable
//	Path(g, src, dest) []*core.Node     // nil when absent/unreachable
//
// Thread safety:
//
//   - A search writes tags on g; never run two searches on the same graph concurrently.
package dijkstra
