// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood enumeration.
//
// Ownership:
//   - Returned slices are freshly allocated; mutating them never reaches adjacency.
//   - Determinism: neighbors are sorted by key ascending.
package core

import (
	"fmt"
	"sort"
)

// Neighbors returns references to the nodes adjacent to key.
//
// Returns:
//   - []*Node: non-nil, possibly empty, sorted by key.
//   - error: ErrNodeNotFound if key is absent (distinguishable from an isolated node).
//
// Complexity: O(d log d) time, O(d) space where d = deg(key).
func (g *Graph) Neighbors(key int) ([]*Node, error) {
	keys, err := g.NeighborKeys(key)
	if err != nil {
		return nil, err
	}
	out := make([]*Node, len(keys))
	for i, k := range keys {
		out[i] = g.nodes[k]
	}

	return out, nil
}

// NeighborKeys returns the keys adjacent to key, sorted ascending.
// Errors: ErrNodeNotFound. Complexity: O(d log d).
func (g *Graph) NeighborKeys(key int) ([]int, error) {
	bucket, ok := g.adjacency[key]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, key)
	}
	keys := make([]int, 0, len(bucket))
	for k := range bucket {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys, nil
}
