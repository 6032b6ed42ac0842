// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_random_edges.go - implementation of RandomEdges(n, m) constructor.
//
// Model: n nodes and exactly m distinct edges with uniformly random
// endpoints. Sparse requests (m ≤ half of all pairs) draw endpoint pairs and
// reject loops and repeats; dense requests shuffle the full pair list and
// keep the first m.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ m ≤ n·(n-1)/2 (else ErrInvalidEdgeCount).
//   - cfg.rng non-nil when m > 0 (else ErrNeedRandSource).
//
// Complexity: expected O(n + m) for sparse requests, O(n²) for dense ones.
package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// RandomEdges returns a Constructor that adds n nodes and m random edges.
func RandomEdges(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomEdges, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if m < 0 || m > maxSimpleEdges(n) {
			return fmt.Errorf("%s: m=%d not in [0,%d]: %w",
				MethodRandomEdges, m, maxSimpleEdges(n), ErrInvalidEdgeCount)
		}
		if m > 0 {
			if err := requireRand(MethodRandomEdges, cfg); err != nil {
				return err
			}
		}
		addNodes(g, cfg, n)
		if m*2 > maxSimpleEdges(n) {
			return denseRandomEdges(g, cfg, n, m)
		}

		picked := make(map[[2]int]struct{}, m)
		for len(picked) < m {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v {
				continue
			}
			if u > v {
				u, v = v, u
			}
			if _, dup := picked[[2]int{u, v}]; dup {
				continue
			}
			picked[[2]int{u, v}] = struct{}{}
			if err := connect(g, cfg, MethodRandomEdges, u, v); err != nil {
				return err
			}
		}

		return nil
	}
}

func denseRandomEdges(g *core.Graph, cfg builderConfig, n, m int) error {
	pairs := make([][2]int, 0, maxSimpleEdges(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	cfg.rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
	for _, p := range pairs[:m] {
		if err := connect(g, cfg, MethodRandomEdges, p[0], p[1]); err != nil {
			return err
		}
	}

	return nil
}
