// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Index 0 is the hub; leaves are 1..n-1, spokes emitted in leaf order.
//
// Complexity: O(n) time, O(1) extra space.
package builder

import "github.com/katalvlaran/wgraph/core"

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, MethodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
