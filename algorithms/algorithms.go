package algorithms

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
	"github.com/katalvlaran/wgraph/snapshot"
)

// NoPath is returned by ShortestPathDist when no path exists.
const NoPath = dijkstra.NoPath

// ErrNoGraph is returned by Save when no graph is bound.
var ErrNoGraph = errors.New("algorithms: no graph bound")

// Option configures an Algorithms value.
type Option func(*Algorithms)

// WithStore sets the persistence collaborator. Panics on nil.
func WithStore(s snapshot.Store) Option {
	if s == nil {
		panic("algorithms: WithStore(nil)")
	}
	return func(a *Algorithms) {
		a.store = s
	}
}

// WithLogger sets the logger for save/load outcomes. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("algorithms: WithLogger(nil)")
	}
	return func(a *Algorithms) {
		a.log = l
	}
}

// Algorithms runs graph algorithms against the currently bound graph.
type Algorithms struct {
	g     *core.Graph
	store snapshot.Store
	log   *zap.Logger
}

// New binds g (which may be nil) and applies opts. The default store is a
// snapshot.AutoStore and the default logger discards everything.
func New(g *core.Graph, opts ...Option) *Algorithms {
	a := &Algorithms{
		g:     g,
		store: snapshot.NewAutoStore(),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Bind retargets a to g. Passing nil unbinds.
func (a *Algorithms) Bind(g *core.Graph) {
	a.g = g
}

// Graph returns the bound graph, or nil.
func (a *Algorithms) Graph() *core.Graph {
	return a.g
}

// IsConnected reports whether every node is reachable from the first key.
// Empty, single-node and unbound graphs are connected.
func (a *Algorithms) IsConnected() bool {
	return bfs.IsConnected(a.g)
}

// ShortestPathDist returns the shortest distance from src to dest, or
// NoPath if either key is absent or dest is unreachable.
func (a *Algorithms) ShortestPathDist(src, dest int) float64 {
	return dijkstra.Distance(a.g, src, dest)
}

// ShortestPath returns the nodes of a shortest path from src to dest
// inclusive, or nil under the same conditions as ShortestPathDist.
func (a *Algorithms) ShortestPath(src, dest int) []*core.Node {
	return dijkstra.Path(a.g, src, dest)
}

// Clone returns a deep copy of the bound graph, or nil when unbound.
func (a *Algorithms) Clone() *core.Graph {
	if a.g == nil {
		return nil
	}

	return a.g.Clone()
}

// Save writes the bound graph to target through the store.
func (a *Algorithms) Save(target string) error {
	if a.g == nil {
		a.log.Warn("save skipped", zap.String("target", target), zap.Error(ErrNoGraph))
		return ErrNoGraph
	}
	if err := a.store.Save(target, a.g); err != nil {
		a.log.Error("save failed", zap.String("target", target), zap.Error(err))
		return fmt.Errorf("algorithms: save %q: %w", target, err)
	}
	a.log.Info("graph saved",
		zap.String("target", target),
		zap.Int("nodes", a.g.NodeCount()),
		zap.Int("edges", a.g.EdgeCount()),
	)

	return nil
}

// Load reads a graph from source and binds it. On failure the current
// binding is kept unchanged.
func (a *Algorithms) Load(source string) error {
	g, err := a.store.Load(source)
	if err != nil {
		a.log.Error("load failed", zap.String("source", source), zap.Error(err))
		return fmt.Errorf("algorithms: load %q: %w", source, err)
	}
	a.g = g
	a.log.Info("graph loaded",
		zap.String("source", source),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	return nil
}
