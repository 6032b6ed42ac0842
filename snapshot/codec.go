package snapshot

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/wgraph/core"
)

// Codec converts between a graph and a byte stream.
type Codec interface {
	// Format returns the codec format identifier.
	Format() string
	// Encode writes the whole graph to w.
	Encode(w io.Writer, g *core.Graph) error
	// Decode reads one complete graph from r.
	Decode(r io.Reader) (*core.Graph, error)
}

// CodecFor picks a codec by file extension: .yaml/.yml or .json.
func CodecFor(path string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLCodec(), nil
	case ".json":
		return NewJSONCodec(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}
