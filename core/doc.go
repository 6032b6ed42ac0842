// Package core provides the wgraph in-memory store: an undirected, weighted,
// simple graph keyed by int, with O(1) edge lookup and O(degree) neighbor
// enumeration.
//
// The Graph G = (V,E) keeps:
//
//   - nodes: key → *Node (key, label, tag)
//   - adjacency[u][v] = weight, mirrored as adjacency[v][u]
//   - edgeCount: number of unordered pairs
//   - modCount: mutation tally (see below)
//
// Request-shape policy:
//
//	Connect(v, v, w)   → ErrLoopNotAllowed, no state change
//	Connect(a, b, -1)  → ErrNegativeWeight, no state change
//	Connect(a, ?, w)   → ErrNodeNotFound,   no state change
//
// Modification counter:
//
//	AddNode        +1 on insertion only
//	Connect        +1 on create and on weight update
//	RemoveEdge     +1
//	RemoveNode     +deg(v)
//
// The counter is a change detector, not a version stamp; it is never
// decremented and Clone carries it over.
//
// Core Methods:
//
//	AddNode(key) bool                     // O(1)
//	Node(key) (*Node, error)              // O(1)
//	RemoveNode(key) (*Node, error)        // O(deg)
//	Connect(a, b, w) error                // O(1)
//	Edge(a, b) float64                    // O(1), NoEdge when absent
//	RemoveEdge(a, b) error                // O(1)
//	Neighbors(key) ([]*Node, error)       // O(d·log d), sorted
//	Nodes() []*Node / Keys() []int        // O(V·log V), sorted
//	Edges() []EdgeRecord                  // O(E·log E), From < To
//	Clone() *Graph / Equal(*Graph) bool   // O(V+E)
//
// Thread safety: none. Algorithms in bfs and dijkstra write node tags, so
// callers must serialize every access to a given Graph.
package core
