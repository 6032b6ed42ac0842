// Package snapshot persists a whole core.Graph as an opaque blob and
// rebuilds it again.
//
// Layers:
//
//	Document  – neutral, versioned description: nodes (key, label, tag) and edges.
//	Codec     – Document ⇄ byte stream (YAMLCodec, JSONCodec).
//	Store     – graph ⇄ storage medium (FileStore, SQLiteStore, AutoStore).
//
// Guarantees:
//
//   - Load(Save(g)) yields a graph for which Equal(g) holds.
//   - Load never returns a partially built graph: decoding and validation
//     complete before the graph is handed out.
//   - FileStore writes through a temporary file and renames it into place.
//   - The rebuilt graph's modification counter reflects the rebuild; it is
//     not persisted.
package snapshot
