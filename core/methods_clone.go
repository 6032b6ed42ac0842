// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Deep copy and structural equality.
// Policy:
//   - Clone carries modCount over verbatim; the clone's counter does not
//     reflect the number of insertions performed while copying.
//   - Equal ignores modCount and compares nodes (key, label, tag) and adjacency.

package core

import "math"

// Clone returns a deep copy: nodes (key, label, tag), adjacency, edgeCount and modCount.
// The clone shares no storage with g. Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := NewGraph(WithCapacity(len(g.nodes)))
	for k, n := range g.nodes {
		clone.nodes[k] = &Node{key: n.key, label: n.label, tag: n.tag}
		bucket := make(map[int]float64, len(g.adjacency[k]))
		for nb, w := range g.adjacency[k] {
			bucket[nb] = w
		}
		clone.adjacency[k] = bucket
	}
	clone.edgeCount = g.edgeCount
	clone.modCount = g.modCount

	return clone
}

// Equal reports whether g and other hold the same nodes with equal
// (key, label, tag) and the same adjacency with equal weights.
//
// Behavior highlights:
//   - Tags participate: a graph compares unequal to its own clone once an
//     algorithm has run on only one of them.
//   - NaN tags compare equal to each other.
//   - modCount is not compared.
//
// Complexity: O(V + E).
func (g *Graph) Equal(other *Graph) bool {
	if g == other {
		return true
	}
	if g == nil || other == nil {
		return false
	}
	if len(g.nodes) != len(other.nodes) || g.edgeCount != other.edgeCount {
		return false
	}
	for k, n := range g.nodes {
		o, ok := other.nodes[k]
		if !ok || n.label != o.label || !sameFloat(n.tag, o.tag) {
			return false
		}
		mine, theirs := g.adjacency[k], other.adjacency[k]
		if len(mine) != len(theirs) {
			return false
		}
		for nb, w := range mine {
			ow, ok := theirs[nb]
			if !ok || !sameFloat(w, ow) {
				return false
			}
		}
	}

	return true
}

func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}
