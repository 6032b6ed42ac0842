package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/wgraph/core"
)

// Store persists whole graphs under an opaque target name.
type Store interface {
	// Save writes g to target, replacing any previous snapshot there.
	Save(target string, g *core.Graph) error
	// Load reads the snapshot at source into a new graph.
	Load(source string) (*core.Graph, error)
}

// DefaultFileMode is the permission of newly created snapshot files.
const DefaultFileMode os.FileMode = 0o644

// FileStore keeps one snapshot per file.
// A nil codec selects one per path with CodecFor.
type FileStore struct {
	codec Codec
}

// NewFileStore creates a file store. Pass nil to choose the codec by extension.
func NewFileStore(codec Codec) *FileStore {
	return &FileStore{codec: codec}
}

func (s *FileStore) codecFor(path string) (Codec, error) {
	if s.codec != nil {
		return s.codec, nil
	}
	return CodecFor(path)
}

// Save encodes g into a temporary file next to target and renames it into
// place, so a failed save never leaves a truncated target behind. An existing
// target keeps its permissions; a new one gets DefaultFileMode.
func (s *FileStore) Save(target string, g *core.Graph) (err error) {
	if g == nil {
		return ErrNilGraph
	}
	codec, err := s.codecFor(target)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(target), ".wgraph-*")
	if err != nil {
		return fmt.Errorf("snapshot: create temp for %q: %w", target, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = codec.Encode(tmp, g); err != nil {
		return err
	}
	if err = tmp.Chmod(targetMode(target)); err != nil {
		return fmt.Errorf("snapshot: chmod %q: %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("snapshot: sync %q: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("snapshot: close %q: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("snapshot: rename into %q: %w", target, err)
	}

	return nil
}

func targetMode(target string) os.FileMode {
	if fi, err := os.Stat(target); err == nil && fi.Mode().IsRegular() {
		return fi.Mode().Perm()
	}

	return DefaultFileMode
}

// Load decodes the file at source.
func (s *FileStore) Load(source string) (*core.Graph, error) {
	codec, err := s.codecFor(source)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open %q: %w", source, err)
	}
	defer f.Close()

	g, err := codec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("snapshot: load %q: %w", source, err)
	}

	return g, nil
}

// DefaultSnapshotName is used for SQLite targets that name no snapshot.
const DefaultSnapshotName = "main"

// AutoStore dispatches on the target path:
//
//	graph.yaml, graph.yml, graph.json → FileStore
//	graph.db, graph.db#name           → SQLiteStore on graph.db, snapshot "name"
//
// SQLite databases are opened per call and closed afterwards.
type AutoStore struct {
	files *FileStore
}

// NewAutoStore creates an AutoStore.
func NewAutoStore() *AutoStore {
	return &AutoStore{files: NewFileStore(nil)}
}

// Save implements Store.
func (s *AutoStore) Save(target string, g *core.Graph) error {
	path, name, ok := splitSQLiteTarget(target)
	if !ok {
		return s.files.Save(target, g)
	}
	db, err := OpenSQLite(path)
	if err != nil {
		return err
	}
	defer db.Close()

	return db.Save(name, g)
}

// Load implements Store.
func (s *AutoStore) Load(source string) (*core.Graph, error) {
	path, name, ok := splitSQLiteTarget(source)
	if !ok {
		return s.files.Load(source)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("snapshot: open %q: %w", path, err)
	}
	db, err := OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return db.Load(name)
}

// IsSQLitePath reports whether target addresses a SQLite database.
func IsSQLitePath(target string) bool {
	_, _, ok := splitSQLiteTarget(target)
	return ok
}

func splitSQLiteTarget(target string) (path, name string, ok bool) {
	path, name = target, DefaultSnapshotName
	if i := strings.LastIndexByte(target, '#'); i >= 0 {
		path, name = target[:i], target[i+1:]
		if name == "" {
			name = DefaultSnapshotName
		}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return path, name, true
	default:
		return target, "", false
	}
}
