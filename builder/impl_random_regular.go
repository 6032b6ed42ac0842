// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_random_regular.go: implementation of RandomRegular(n, d) constructor.
//
// Model: configuration (stub-matching). Each index receives d stubs; the
// stub list is shuffled and paired. A pairing that produces a loop or a
// repeated pair is rejected and the shuffle retried.
//
// Contract:
//   - n ≥ 1, 0 ≤ d < n, n·d even (else ErrTooFewVertices).
//   - cfg.rng non-nil (else ErrNeedRandSource).
//   - At most maxStubMatchingAttempts shuffles (else ErrConstructFailed).
//     Nothing is added to g when construction fails.
//
// Complexity: O(n·d) per attempt.
package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const maxStubMatchingAttempts = 64

// RandomRegular returns a Constructor that builds a random d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomRegular, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if err := requireRand(MethodRandomRegular, cfg); err != nil {
			return err
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}
			addNodes(g, cfg, n)
			for i := 0; i < len(stubs); i += 2 {
				if err := connect(g, cfg, MethodRandomRegular, stubs[i], stubs[i+1]); err != nil {
					return err
				}
			}
			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form a simple graph.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
