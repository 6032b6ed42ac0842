// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left side is indices 0..n1-1, right side n1..n1+n2-1.
//   - Emits l-r for every left l ascending, then right r ascending.
//
// Complexity: O(n1·n2) time.
package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < MinPartition || n2 < MinPartition {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartition, ErrTooFewVertices)
		}
		addNodes(g, cfg, n1+n2)
		for l := 0; l < n1; l++ {
			for r := n1; r < n1+n2; r++ {
				if err := connect(g, cfg, MethodCompleteBipartite, l, r); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
