// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   - 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   - Cell (r,c) has index r*cols + c (row-major).
//   - Without a label scheme, cells are labelled "r,c".
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - For each (r,c) in row-major order emit Right then Bottom if present.
//
// Complexity:
//   - Time: O(rows*cols) nodes + O(rows*cols) edges.
//   - Space: O(1) extra.
package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/wgraph/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				idx := r*cols + c
				addNode(g, cfg, idx)
				if cfg.labelFn == nil {
					n, _ := g.Node(cfg.key(idx))
					n.SetLabel(gridLabel(r, c))
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := connect(g, cfg, MethodGrid, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, cfg, MethodGrid, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// gridLabel formats a 2D grid coordinate as "r,c".
func gridLabel(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
