package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/core"
)

// ExampleWalk shows hop depths on a small star.
func ExampleWalk() {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		g.AddNode(i)
	}
	_ = g.Connect(0, 1, 1)
	_ = g.Connect(0, 2, 1)
	_ = g.Connect(2, 3, 1)

	res, _ := bfs.Walk(g, 0)
	fmt.Println(res.Order, res.Depth[3])
	fmt.Println(bfs.IsConnected(g))

	// Output:
	// [0 1 2 3] 2
	// true
}
