// Package wgraph is an in-memory toolkit for weighted undirected graphs:
// a simple graph store, connectivity and shortest-path queries, fixture
// generators and durable snapshots.
//
// Layout:
//
//	core/        Graph and Node: int-keyed nodes, symmetric weighted edges,
//	             per-node label and tag, modification counter
//	bfs/         breadth-first Walk, Reachable and IsConnected
//	dijkstra/    non-negative single-source shortest paths
//	builder/     deterministic and seeded random topologies
//	snapshot/    YAML, JSON and SQLite persistence behind one Store
//	algorithms/  facade binding one current graph to the queries above
//	cmd/wgraph/  command-line front end
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Grid(3, 3))
//	alg := algorithms.New(g)
//	alg.IsConnected()            // true
//	alg.ShortestPathDist(0, 8)   // 4
//	_ = alg.Save("grid.yaml")
//
// Thread safety: none. Queries write node tags, so every access to a given
// Graph must be serialized by the caller.
package wgraph
