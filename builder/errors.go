// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context with %w, prefixed by the constructor name.
//   - Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, degree)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidEdgeCount indicates an edge count that is negative or exceeds
// n·(n-1)/2 for a simple undirected graph.
var ErrInvalidEdgeCount = errors.New("builder: invalid edge count")

// ErrConstructFailed indicates that the builder exhausted permitted attempts
// (e.g., stub-matching retries for RandomRegular) or was handed a nil
// constructor or graph.
var ErrConstructFailed = errors.New("builder: construction failed")
