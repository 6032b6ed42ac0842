package snapshot

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wgraph/core"
)

// YAMLCodec handles YAML snapshots.
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier.
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// Encode writes g as a YAML document.
func (c *YAMLCodec) Encode(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("snapshot: encode YAML: %w", err)
	}

	return enc.Close()
}

// Decode reads a YAML document and rebuilds the graph.
func (c *YAMLCodec) Decode(r io.Reader) (*core.Graph, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: parse YAML: %v", ErrCorrupt, err)
	}

	return doc.Graph()
}
