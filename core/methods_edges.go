// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Invariants maintained here:
//   - adjacency[u][v] == adjacency[v][u] for every stored edge.
//   - No self-loops and no negative weights are ever stored.
//   - edgeCount counts unordered pairs.
//
// Counter policy:
//   - Connect increments modCount on every successful call (create or update).
//   - RemoveEdge increments modCount by one on success.
//   - Rejected requests never touch state or counters.
package core

import (
	"fmt"
	"math"
	"sort"
)

// Connect creates the undirected edge {a,b} with weight w, or updates its weight.
//
// Implementation:
//   - Stage 1: Reject loops (ErrLoopNotAllowed) and negative/NaN weights (ErrNegativeWeight).
//   - Stage 2: Resolve both endpoints (ErrNodeNotFound).
//   - Stage 3: Write the weight into both buckets; count the pair only on first creation.
//
// Behavior highlights:
//   - A rejected request leaves the graph and modCount untouched.
//   - Re-connecting an existing pair overwrites the weight and still bumps modCount.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) Connect(a, b int, w float64) error {
	if a == b {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, a)
	}
	if w < 0 || math.IsNaN(w) {
		return fmt.Errorf("%w: %d-%d w=%g", ErrNegativeWeight, a, b, w)
	}
	ba, ok := g.adjacency[a]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, a)
	}
	bb, ok := g.adjacency[b]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, b)
	}

	if _, exists := ba[b]; !exists {
		g.edgeCount++
	}
	ba[b] = w
	bb[a] = w
	g.modCount++

	return nil
}

// HasEdge reports whether {a,b} is connected. Missing endpoints yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b int) bool {
	bucket, ok := g.adjacency[a]
	if !ok {
		return false
	}
	_, ok = bucket[b]

	return ok
}

// Edge returns the weight of {a,b}, or NoEdge if the pair is not connected
// or either endpoint is missing. Complexity: O(1).
func (g *Graph) Edge(a, b int) float64 {
	bucket, ok := g.adjacency[a]
	if !ok {
		return NoEdge
	}
	w, ok := bucket[b]
	if !ok {
		return NoEdge
	}

	return w
}

// RemoveEdge deletes {a,b}.
//
// Errors:
//   - ErrNodeNotFound if either endpoint is absent.
//   - ErrEdgeNotFound if both exist but are not connected.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(a, b int) error {
	ba, ok := g.adjacency[a]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, a)
	}
	bb, ok := g.adjacency[b]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, b)
	}
	if _, exists := ba[b]; !exists {
		return fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, a, b)
	}
	delete(ba, b)
	delete(bb, a)
	g.edgeCount--
	g.modCount++

	return nil
}

// Edges returns every edge once, with From < To, sorted by (From, To).
// Complexity: O(E log E) time, O(E) space.
func (g *Graph) Edges() []EdgeRecord {
	out := make([]EdgeRecord, 0, g.edgeCount)
	for u, bucket := range g.adjacency {
		for v, w := range bucket {
			if u < v {
				out = append(out, EdgeRecord{From: u, To: v, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of unordered connected pairs. Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// ModCount returns the modification counter. Complexity: O(1).
func (g *Graph) ModCount() int { return g.modCount }
