// SPDX-License-Identifier: MIT
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and Keys() return results sorted by key ascending.
//
// Counter policy:
//   - AddNode increments modCount only on actual insertion.
//   - RemoveNode increments modCount once per destroyed incident edge.
package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a node with an empty label and an Unvisited tag.
//
// Behavior highlights:
//   - Idempotent: adding an existing key is a no-op and leaves modCount unchanged.
//   - Allocates the node's adjacency bucket so edge methods can rely on it.
//
// Returns:
//   - bool: true iff a node was inserted.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(key int) bool {
	if _, exists := g.nodes[key]; exists {
		return false
	}
	g.nodes[key] = &Node{key: key, tag: Unvisited}
	g.adjacency[key] = make(map[int]float64)
	g.modCount++

	return true
}

// HasNode reports whether key is present. Complexity: O(1).
func (g *Graph) HasNode(key int) bool {
	_, ok := g.nodes[key]
	return ok
}

// Node returns the stored node for key.
//
// The returned pointer is the live node: SetLabel/SetTag on it are visible
// through the graph. Adjacency cannot be reached through it.
//
// Errors:
//   - ErrNodeNotFound if key is absent.
//
// Complexity: O(1).
func (g *Graph) Node(key int) (*Node, error) {
	n, ok := g.nodes[key]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, key)
	}

	return n, nil
}

// RemoveNode deletes the node and every incident edge.
//
// Implementation:
//   - Stage 1: Verify presence (ErrNodeNotFound).
//   - Stage 2: Drop the mirror entry from every neighbor bucket.
//   - Stage 3: Adjust edgeCount and modCount by the removed degree, then drop the node.
//
// Returns:
//   - *Node: the removed node (detached from the graph).
//   - error: ErrNodeNotFound if key is absent; graph is left untouched.
//
// Complexity:
//   - Time O(deg(key)), Space O(1).
func (g *Graph) RemoveNode(key int) (*Node, error) {
	n, ok := g.nodes[key]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, key)
	}

	bucket := g.adjacency[key]
	degree := len(bucket)
	for nb := range bucket {
		delete(g.adjacency[nb], key)
	}
	delete(g.adjacency, key)
	delete(g.nodes, key)

	g.edgeCount -= degree
	g.modCount += degree

	return n, nil
}

// Nodes returns references to all nodes sorted by key ascending.
// The slice is caller-owned; the nodes are live.
// Complexity: O(V log V) time, O(V) space.
func (g *Graph) Nodes() []*Node {
	keys := g.Keys()
	out := make([]*Node, len(keys))
	for i, k := range keys {
		out[i] = g.nodes[k]
	}

	return out
}

// Keys returns all node keys sorted ascending.
// Complexity: O(V log V) time, O(V) space.
func (g *Graph) Keys() []int {
	keys := make([]int, 0, len(g.nodes))
	for k := range g.nodes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}

// Degree returns the number of edges incident to key.
// Errors: ErrNodeNotFound. Complexity: O(1).
func (g *Graph) Degree(key int) (int, error) {
	bucket, ok := g.adjacency[key]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, key)
	}

	return len(bucket), nil
}

// ResetTags sets every node's tag to t. It does not change modCount.
// Complexity: O(V).
func (g *Graph) ResetTags(t float64) {
	for _, n := range g.nodes {
		n.tag = t
	}
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }
