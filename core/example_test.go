package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()
	for _, k := range []int{1, 2, 3} {
		g.AddNode(k)
	}
	_ = g.Connect(1, 2, 0.5)
	_ = g.Connect(2, 3, 1.25)

	fmt.Println("keys:", g.Keys())
	fmt.Println("edge 2-1:", g.Edge(2, 1))
	fmt.Println("edges:", g.EdgeCount(), "mc:", g.ModCount())

	// removing 2 destroys both incident edges
	_, _ = g.RemoveNode(2)
	fmt.Println("after remove:", g.Keys(), g.EdgeCount(), g.ModCount())

	// Output:
	// keys: [1 2 3]
	// edge 2-1: 0.5
	// edges: 2 mc: 5
	// after remove: [1 3] 0 7
}

// ExampleGraph_Connect shows the request-shape policy.
func ExampleGraph_Connect() {
	g := core.NewGraph()
	g.AddNode(1)
	g.AddNode(2)

	fmt.Println(errors.Is(g.Connect(1, 1, 1), core.ErrLoopNotAllowed))
	fmt.Println(errors.Is(g.Connect(1, 2, -1), core.ErrNegativeWeight))
	fmt.Println(errors.Is(g.Connect(1, 3, 1), core.ErrNodeNotFound))
	fmt.Println(g.EdgeCount(), g.ModCount())

	// Output:
	// true
	// true
	// true
	// 0 2
}
