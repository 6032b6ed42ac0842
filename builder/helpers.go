// Package builder provides internal helper functions
// used by Constructor implementations to build common topologies.
package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// addNode inserts the node for constructor index idx and applies the
// configured label when one is set. Re-adding an existing key is a no-op
// apart from the label.
func addNode(g *core.Graph, cfg builderConfig, idx int) {
	k := cfg.key(idx)
	g.AddNode(k)
	if cfg.labelFn == nil {
		return
	}
	if n, err := g.Node(k); err == nil {
		n.SetLabel(cfg.labelFn(idx))
	}
}

// addNodes inserts indices 0..n-1.
// Complexity: O(n) time, O(1) extra space.
func addNodes(g *core.Graph, cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		addNode(g, cfg, i)
	}
}

// connect links indices u and v with the next weight from cfg.
func connect(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	a, b := cfg.key(u), cfg.key(v)
	w := cfg.weight()
	if err := g.Connect(a, b, w); err != nil {
		return fmt.Errorf("%s: Connect(%d-%d, w=%g): %w", method, a, b, w, err)
	}

	return nil
}

// connectAll links every unordered pair in idx.
// Complexity: O(m²) time where m = len(idx), O(1) extra space.
func connectAll(g *core.Graph, cfg builderConfig, method string, idx []int) error {
	for i := 0; i < len(idx); i++ {
		for j := i + 1; j < len(idx); j++ {
			if err := connect(g, cfg, method, idx[i], idx[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// maxSimpleEdges returns n·(n-1)/2.
func maxSimpleEdges(n int) int {
	return n * (n - 1) / 2
}
