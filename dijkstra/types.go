// Package dijkstra defines core types and configuration options
// for single-pair shortest paths on a core.Graph.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; candidates beyond it are dropped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	                    Disabled by default, so +Inf edges are traversed.
//
// Errors (sentinel):
//
//	– ErrNilGraph      if the provided graph pointer is nil.
//	– ErrNodeNotFound  if the source or target does not exist in the graph.
//	– ErrNoPath        if the target is unreachable from the source.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/wgraph/core"
)

// NoPath is the distance reported by Distance for absent or unreachable pairs.
const NoPath float64 = -1

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that the source or target does not exist.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrNoPath indicates that the target cannot be reached from the source.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero, negative or NaN.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures a search.
//
// MaxDistance      – candidates farther than this are never finalized. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ threshold are skipped. Zero (the
//                    default) disables the check.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Panics on negative or NaN values.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are non-traversable. Panics on zero, negative or NaN values.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: 0,
	}
}

// Result is the outcome of a successful search.
//
// Distance is the total weight of Path. Path runs from the source to the
// target inclusive and holds live node references.
type Result struct {
	Source   int
	Target   int
	Distance float64
	Path     []*core.Node
}

// Keys returns the path as node keys.
func (r *Result) Keys() []int {
	keys := make([]int, len(r.Path))
	for i, n := range r.Path {
		keys[i] = n.Key()
	}

	return keys
}

// candidate is one (node, predecessor, distance) record. Several candidates
// for the same node may coexist in the heap; only the first one popped counts.
type candidate struct {
	node *core.Node
	prev *candidate
	dist float64
	seq  uint64
}

// candidatePQ is a min-heap of *candidate ordered by dist, then insertion order.
type candidatePQ []*candidate

// Len returns the number of items in the heap.
func (pq candidatePQ) Len() int { return len(pq) }

// Less orders by distance; equal distances pop in insertion order.
func (pq candidatePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *candidate.
func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(*candidate)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
