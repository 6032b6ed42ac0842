package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// Search computes a shortest path from src to dest in g.
//
// Steps:
//  1. Validate g (ErrNilGraph) and both endpoints (ErrNodeNotFound).
//  2. Reset every tag to core.Unvisited and set src's tag to 0.
//  3. Pop candidates in ascending distance; drop those whose node is already
//     finalized. The first pop of dest ends the search.
//  4. Relax each unfinalized neighbor v of the popped node u with
//     d = dist(u) + w(u,v) when v is unvisited, or when d <= tag(v) and
//     tag(v) is not the zero marker; write d into tag(v) and push (v, u, d).
//
// Side effects:
//
//	On return every reached node's tag holds its tentative (for finalized
//	nodes, final) distance from src; unreached nodes keep core.Unvisited.
//
// Ties:
//
//	Among equal-length paths the one returned depends on neighbor order
//	(sorted keys) and insertion order. The distance is always exact.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) for the lazy heap and the candidate chain.
func Search(g *core.Graph, src, dest int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	start, err := g.Node(src)
	if err != nil {
		return nil, fmt.Errorf("%w: source %d", ErrNodeNotFound, src)
	}
	if !g.HasNode(dest) {
		return nil, fmt.Errorf("%w: target %d", ErrNodeNotFound, dest)
	}

	r := &runner{
		g:       g,
		options: cfg,
		dest:    dest,
		visited: make(map[int]struct{}, g.NodeCount()),
		pq:      make(candidatePQ, 0, g.NodeCount()),
	}
	r.init(start)
	end, err := r.process()
	if err != nil {
		return nil, err
	}
	if end == nil {
		return nil, fmt.Errorf("%w: %d to %d", ErrNoPath, src, dest)
	}

	return &Result{
		Source:   src,
		Target:   dest,
		Distance: end.dist,
		Path:     unwind(end),
	}, nil
}

// Distance returns the shortest distance from src to dest, or NoPath when
// either key is missing or dest is unreachable. Distance(k, k) is 0.
func Distance(g *core.Graph, src, dest int) float64 {
	res, err := Search(g, src, dest)
	if err != nil {
		return NoPath
	}

	return res.Distance
}

// Path returns the nodes of a shortest path from src to dest inclusive,
// or nil when either key is missing or dest is unreachable.
func Path(g *core.Graph, src, dest int) []*core.Node {
	res, err := Search(g, src, dest)
	if err != nil {
		return nil
	}

	return res.Path
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *core.Graph
	options Options
	dest    int
	visited map[int]struct{}
	pq      candidatePQ
	seq     uint64
}

// init resets tags and seeds the heap with (src, nil, 0).
func (r *runner) init(src *core.Node) {
	r.g.ResetTags(core.Unvisited)
	src.SetTag(0)
	heap.Init(&r.pq)
	r.push(src, nil, 0)
}

func (r *runner) push(n *core.Node, prev *candidate, d float64) {
	r.seq++
	heap.Push(&r.pq, &candidate{node: n, prev: prev, dist: d, seq: r.seq})
}

// process runs the main loop and returns the finalized dest candidate,
// or nil when the heap empties first.
func (r *runner) process() (*candidate, error) {
	for r.pq.Len() > 0 {
		cur := heap.Pop(&r.pq).(*candidate)
		key := cur.node.Key()
		if _, done := r.visited[key]; done {
			continue
		}
		if cur.dist > r.options.MaxDistance {
			return nil, nil
		}
		r.visited[key] = struct{}{}
		if key == r.dest {
			return cur, nil
		}
		if err := r.relax(cur); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// relax pushes improved candidates for every unfinalized neighbor of cur.
func (r *runner) relax(cur *candidate) error {
	u := cur.node.Key()
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}
	for _, nb := range neighbors {
		if _, done := r.visited[nb.Key()]; done {
			continue
		}
		w := r.g.Edge(u, nb.Key())
		if r.options.InfEdgeThreshold > 0 && w >= r.options.InfEdgeThreshold {
			continue
		}
		d := cur.dist + w
		if d > r.options.MaxDistance {
			continue
		}
		tag := nb.Tag()
		if tag == core.Unvisited || (d <= tag && tag != 0) {
			nb.SetTag(d)
			r.push(nb, cur, d)
		}
	}

	return nil
}

// unwind walks the predecessor chain back to the source and returns it in order.
func unwind(end *candidate) []*core.Node {
	var n int
	for c := end; c != nil; c = c.prev {
		n++
	}
	path := make([]*core.Node, n)
	for c := end; c != nil; c = c.prev {
		n--
		path[n] = c.node
	}

	return path
}
