// SPDX-License-Identifier: MIT
// Package core defines the central Graph and Node types of wgraph and the
// sentinel errors returned by graph mutation and query primitives.
//
// This file declares Node, Graph, GraphOption, sentinel errors, the sentinel
// numeric values, and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound    - requested node does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrLoopNotAllowed  - edge request with equal endpoints.
//	ErrNegativeWeight  - edge request with a negative (or NaN) weight.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was requested. Loops are never stored.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNegativeWeight indicates a negative or NaN weight was requested.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

const (
	// NoEdge is returned by Edge when the pair is not connected or an endpoint is missing.
	NoEdge float64 = -1

	// Unvisited is the scratch value of a freshly inserted node and the
	// "not reached" marker written by traversal algorithms.
	Unvisited float64 = -1
)

// Node is a graph vertex.
//
// The key is immutable identity. Label is free-form user data. Tag is a
// scratch slot that algorithms overwrite as working memory: BFS leaves 0 on
// reached nodes, Dijkstra leaves the final distance from its source. Tag is
// part of the observable state and participates in Graph.Equal.
type Node struct {
	key   int
	label string
	tag   float64
}

// Key returns the node's unique identifier.
func (n *Node) Key() int { return n.key }

// Label returns the node's free-form label.
func (n *Node) Label() string { return n.label }

// SetLabel replaces the node's label. It does not change the graph's modification counter.
func (n *Node) SetLabel(s string) { n.label = s }

// Tag returns the node's scratch value.
func (n *Node) Tag() float64 { return n.tag }

// SetTag replaces the node's scratch value. It does not change the graph's modification counter.
func (n *Node) SetTag(t float64) { n.tag = t }

// String renders the node as "(key)".
func (n *Node) String() string { return fmt.Sprintf("(%d)", n.key) }

// EdgeRecord is a detached description of one undirected edge.
// Edges() always reports From < To.
type EdgeRecord struct {
	From   int
	To     int
	Weight float64
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the node and adjacency maps for n nodes.
// Panics on negative n (programmer error).
func WithCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: WithCapacity(n<0)")
	}
	return func(g *Graph) {
		g.nodes = make(map[int]*Node, n)
		g.adjacency = make(map[int]map[int]float64, n)
	}
}

// Graph is an undirected, weighted, simple graph keyed by int.
//
// Storage:
//   - nodes maps key → *Node.
//   - adjacency[u][v] == adjacency[v][u] holds the weight of edge {u,v};
//     every node owns a (possibly empty) bucket.
//   - edgeCount counts unordered pairs, not directed entries.
//   - modCount is a mutation tally, not a version stamp.
//
// Graph is not safe for concurrent use. Algorithms write node tags, so even
// "read-only" analyses mutate the store; serialize access per instance.
type Graph struct {
	nodes     map[int]*Node
	adjacency map[int]map[int]float64

	edgeCount int
	modCount  int
}

// NewGraph creates an empty Graph and applies opts in order.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[int]*Node),
		adjacency: make(map[int]map[int]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
