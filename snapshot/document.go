package snapshot

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// FormatVersion is the Document layout written by this package.
const FormatVersion = 1

// Sentinel errors for persistence.
var (
	// ErrCorrupt indicates a snapshot that cannot describe a valid graph.
	ErrCorrupt = errors.New("snapshot: corrupt snapshot")

	// ErrUnsupportedVersion indicates a Document.Version this package does not read.
	ErrUnsupportedVersion = errors.New("snapshot: unsupported format version")

	// ErrUnknownFormat indicates a path whose extension maps to no codec or store.
	ErrUnknownFormat = errors.New("snapshot: unknown format")

	// ErrNotFound indicates a named snapshot that does not exist in a store.
	ErrNotFound = errors.New("snapshot: not found")

	// ErrNilGraph indicates an attempt to save a nil graph.
	ErrNilGraph = errors.New("snapshot: graph is nil")
)

// Document is the storage-neutral form of a graph.
type Document struct {
	Version int          `yaml:"version" json:"version"`
	Nodes   []NodeRecord `yaml:"nodes" json:"nodes"`
	Edges   []EdgeRecord `yaml:"edges" json:"edges"`
}

// NodeRecord is one node with its label and scratch tag.
type NodeRecord struct {
	Key   int     `yaml:"key" json:"key"`
	Label string  `yaml:"label,omitempty" json:"label,omitempty"`
	Tag   float64 `yaml:"tag" json:"tag"`
}

// EdgeRecord is one undirected edge.
type EdgeRecord struct {
	From   int     `yaml:"from" json:"from"`
	To     int     `yaml:"to" json:"to"`
	Weight float64 `yaml:"weight" json:"weight"`
}

// FromGraph captures g in key order. Edges are listed once with From < To.
func FromGraph(g *core.Graph) *Document {
	nodes := g.Nodes()
	doc := &Document{
		Version: FormatVersion,
		Nodes:   make([]NodeRecord, len(nodes)),
	}
	for i, n := range nodes {
		doc.Nodes[i] = NodeRecord{Key: n.Key(), Label: n.Label(), Tag: n.Tag()}
	}
	edges := g.Edges()
	doc.Edges = make([]EdgeRecord, len(edges))
	for i, e := range edges {
		doc.Edges[i] = EdgeRecord{From: e.From, To: e.To, Weight: e.Weight}
	}

	return doc
}

// Graph rebuilds a fresh graph from the document.
//
// Errors:
//   - ErrUnsupportedVersion for an unknown Version.
//   - ErrCorrupt for duplicate node keys, duplicate edges, or edges that
//     core.Graph would reject (unknown endpoint, loop, negative weight).
func (d *Document) Graph() (*core.Graph, error) {
	if d.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, d.Version)
	}
	g := core.NewGraph(core.WithCapacity(len(d.Nodes)))
	for _, rec := range d.Nodes {
		if !g.AddNode(rec.Key) {
			return nil, fmt.Errorf("%w: duplicate node %d", ErrCorrupt, rec.Key)
		}
		n, err := g.Node(rec.Key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		n.SetLabel(rec.Label)
		n.SetTag(rec.Tag)
	}
	for _, rec := range d.Edges {
		if g.HasEdge(rec.From, rec.To) {
			return nil, fmt.Errorf("%w: duplicate edge %d-%d", ErrCorrupt, rec.From, rec.To)
		}
		if err := g.Connect(rec.From, rec.To, rec.Weight); err != nil {
			return nil, fmt.Errorf("%w: edge %d-%d: %v", ErrCorrupt, rec.From, rec.To, err)
		}
	}

	return g, nil
}
