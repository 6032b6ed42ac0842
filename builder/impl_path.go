// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds indices 0..n-1 in ascending order.
//   - Emits edges (i-1)-i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) edges.
//   - Space: O(1) extra.
package builder

import "github.com/katalvlaran/wgraph/core"

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, MethodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
