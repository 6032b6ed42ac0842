// Package bfs walks a core.Graph breadth-first.
//
// What
//
//   - Walk explores nodes in non-decreasing hop distance from a start node
//     and returns a Result with Order, Depth and Parent.
//   - OnVisit hooks run at dequeue time and may abort the walk.
//   - FilterNeighbor prunes individual edges; MaxDepth bounds the frontier.
//   - IsConnected answers global connectivity with a single walk.
//
// Side effects
//
//	Node tags are the visited markers: reset to core.Unvisited, then 0 on
//	discovery. Callers that need pristine tags should walk a Clone.
//
// Determinism
//
//	core.Graph.Neighbors is sorted by key, so the visit order is reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:  O(V + E) plus neighbor sorting.
//   - Space: O(V) for queue, Depth and Parent.
package bfs
