// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 3 rim nodes (else ErrTooFewVertices).
//   - Rim indices 0..n-1 form C_n; the hub is index n.
//   - Emits the rim cycle first, then spokes n-i for i=0..n-1.
//
// Complexity: O(n) time, 2n edges.
package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// Wheel returns a Constructor that builds W_n: a rim C_n plus a hub joined
// to every rim node.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelRim); err != nil {
			return err
		}
		if err := Cycle(n)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", MethodWheel, n, err)
		}
		addNode(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := connect(g, cfg, MethodWheel, n, i); err != nil {
				return err
			}
		}

		return nil
	}
}
