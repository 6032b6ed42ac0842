// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i-(i+1 mod n) for i=0..n-1.
//
// Complexity: O(n) time, O(1) extra space.
package builder

import "github.com/katalvlaran/wgraph/core"

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := connect(g, cfg, MethodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
