package snapshot

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/wgraph/core"
)

// JSONCodec handles JSON snapshots. NaN or infinite tags and weights
// cannot be represented in JSON and make Encode fail.
type JSONCodec struct {
	Indent string
}

// NewJSONCodec creates a JSON codec with two-space indentation.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{Indent: "  "}
}

// Format returns the codec format identifier.
func (c *JSONCodec) Format() string {
	return "json"
}

// Encode writes g as a JSON document.
func (c *JSONCodec) Encode(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	enc := json.NewEncoder(w)
	if c.Indent != "" {
		enc.SetIndent("", c.Indent)
	}
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("snapshot: encode JSON: %w", err)
	}

	return nil
}

// Decode reads a JSON document and rebuilds the graph.
func (c *JSONCodec) Decode(r io.Reader) (*core.Graph, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: parse JSON: %v", ErrCorrupt, err)
	}

	return doc.Graph()
}
