// Package algorithms binds the wgraph algorithms to one graph at a time.
//
// An Algorithms value holds the currently bound *core.Graph, a snapshot.Store
// for persistence and a zap logger. Every query delegates to the bfs and
// dijkstra packages; Clone delegates to core.Graph.Clone.
//
//	a := algorithms.New(g)
//	a.IsConnected()            // bfs.IsConnected
//	a.ShortestPathDist(1, 5)   // dijkstra.Distance, NoPath when absent/unreachable
//	a.ShortestPath(1, 5)       // dijkstra.Path, nil when absent/unreachable
//	a.Save("g.yaml")           // snapshot store, error on failure
//	a.Load("g.db#main")        // rebinds only on success
//
// Unbound state:
//
//	New(nil) is valid and means "uninitialized". Queries then behave as on
//	an empty graph: IsConnected is true, distances are NoPath, paths and
//	Clone are nil. Save reports ErrNoGraph.
//
// Side effects:
//
//	IsConnected and the shortest-path queries write node tags on the bound
//	graph (see bfs and dijkstra). Callers serialize access per graph.
package algorithms
