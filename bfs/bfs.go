package bfs

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  *core.Node
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// Walk runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit error.
//
// Complexity: O(V + E·log d) with sorted neighbor enumeration.
func Walk(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	root, err := g.Node(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	g.ResetTags(core.Unvisited)
	w.enqueue(root, 0, nil)

	return w.res, w.loop()
}

// enqueue marks n discovered at depth d, records its parent and queues it.
func (w *walker) enqueue(n *core.Node, d int, parent *core.Node) {
	n.SetTag(0)
	w.res.Depth[n.Key()] = d
	if parent != nil {
		w.res.Parent[n.Key()] = parent.Key()
	}
	w.queue = append(w.queue, queueItem{node: n, depth: d})
}

// loop processes the queue until empty or an error occurs.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.node.Key())
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.node.Key(), err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues every undiscovered neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.node.Key())
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.node.Key(), err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if nbr.Tag() != core.Unvisited {
			continue
		}
		if !w.opts.FilterNeighbor(item.node.Key(), nbr.Key(), w.graph.Edge(item.node.Key(), nbr.Key())) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.node)
	}

	return nil
}

// Reachable returns the number of nodes reachable from start, start included.
// Errors: ErrGraphNil, ErrStartNotFound.
func Reachable(g *core.Graph, start int) (int, error) {
	res, err := Walk(g, start)
	if err != nil {
		return 0, err
	}

	return len(res.Order), nil
}

// IsConnected reports whether every node is reachable from every other.
//
// A nil or empty graph is connected, and so is a single node. Otherwise the
// walk starts from the smallest key and the graph is connected iff the
// number of dequeued nodes equals NodeCount. Tags are left as walk markers.
//
// Complexity: O(V + E).
func IsConnected(g *core.Graph) bool {
	if g == nil || g.NodeCount() == 0 {
		return true
	}
	count, err := Reachable(g, g.Keys()[0])
	if err != nil {
		return false
	}

	return count == g.NodeCount()
}
