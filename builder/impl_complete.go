// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits every pair i<j, i ascending then j ascending.
//
// Complexity: O(n²) time, n·(n-1)/2 edges.
package builder

import "github.com/katalvlaran/wgraph/core"

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, 1); err != nil {
			return err
		}
		addNodes(g, cfg, n)
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}

		return connectAll(g, cfg, MethodComplete, idx)
	}
}
