// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries and debug rendering.
// Policy:
//   - No algorithms or hidden state here.

package core

import (
	"fmt"
	"strings"
)

// GraphStats is a value snapshot of the graph's counters.
type GraphStats struct {
	NodeCount     int
	EdgeCount     int
	ModCount      int
	IsolatedNodes int
	MaxDegree     int
	TotalWeight   float64
}

// Stats produces a snapshot of counts plus degree and weight summaries.
// Complexity: O(V + E).
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{
		NodeCount: len(g.nodes),
		EdgeCount: g.edgeCount,
		ModCount:  g.modCount,
	}
	for u, bucket := range g.adjacency {
		d := len(bucket)
		if d == 0 {
			stats.IsolatedNodes++
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
		for v, w := range bucket {
			if u < v {
				stats.TotalWeight += w
			}
		}
	}

	return stats
}

// String renders counters, nodes and edges in key order.
func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Graph{nodes=%d edges=%d mc=%d}", len(g.nodes), g.edgeCount, g.modCount)
	for _, n := range g.Nodes() {
		fmt.Fprintf(&sb, "\n\t%s label=%q tag=%g", n, n.label, n.tag)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&sb, "\n\t%d-%d w=%g", e.From, e.To, e.Weight)
	}

	return sb.String()
}
