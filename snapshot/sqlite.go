package snapshot

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/wgraph/core"
)

// SQLiteStore keeps any number of named snapshots in one SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at dsn and migrates
// the schema.
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open database: %w", err)
	}
	// one writer; keeps :memory: databases on a single connection
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("snapshot: migrate database: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		name TEXT PRIMARY KEY,
		version INTEGER NOT NULL,
		saved_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS nodes (
		snapshot TEXT NOT NULL,
		key INTEGER NOT NULL,
		label TEXT NOT NULL DEFAULT '',
		tag REAL,
		PRIMARY KEY (snapshot, key),
		FOREIGN KEY (snapshot) REFERENCES snapshots(name) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS edges (
		snapshot TEXT NOT NULL,
		a INTEGER NOT NULL,
		b INTEGER NOT NULL,
		weight REAL NOT NULL,
		PRIMARY KEY (snapshot, a, b),
		FOREIGN KEY (snapshot) REFERENCES snapshots(name) ON DELETE CASCADE
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Save replaces the snapshot called name with g inside one transaction.
func (s *SQLiteStore) Save(name string, g *core.Graph) (err error) {
	if g == nil {
		return ErrNilGraph
	}
	doc := FromGraph(g)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("snapshot: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, q := range []string{
		`DELETE FROM edges WHERE snapshot = ?`,
		`DELETE FROM nodes WHERE snapshot = ?`,
		`DELETE FROM snapshots WHERE name = ?`,
	} {
		if _, err = tx.Exec(q, name); err != nil {
			return fmt.Errorf("snapshot: clear %q: %w", name, err)
		}
	}

	if _, err = tx.Exec(`INSERT INTO snapshots (name, version, saved_at) VALUES (?, ?, ?)`,
		name, doc.Version, time.Now().UTC()); err != nil {
		return fmt.Errorf("snapshot: insert %q: %w", name, err)
	}

	nodeStmt, err := tx.Prepare(`INSERT INTO nodes (snapshot, key, label, tag) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("snapshot: prepare nodes: %w", err)
	}
	defer nodeStmt.Close()
	for _, n := range doc.Nodes {
		// SQLite has no NaN; NULL stands in for it
		tag := sql.NullFloat64{Float64: n.Tag, Valid: !math.IsNaN(n.Tag)}
		if _, err = nodeStmt.Exec(name, n.Key, n.Label, tag); err != nil {
			return fmt.Errorf("snapshot: insert node %d: %w", n.Key, err)
		}
	}

	edgeStmt, err := tx.Prepare(`INSERT INTO edges (snapshot, a, b, weight) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("snapshot: prepare edges: %w", err)
	}
	defer edgeStmt.Close()
	for _, e := range doc.Edges {
		if _, err = edgeStmt.Exec(name, e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("snapshot: insert edge %d-%d: %w", e.From, e.To, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("snapshot: commit %q: %w", name, err)
	}

	return nil
}

// Load rebuilds the snapshot called name. A missing snapshot yields ErrNotFound.
func (s *SQLiteStore) Load(name string) (*core.Graph, error) {
	doc := &Document{}
	err := s.db.QueryRow(`SELECT version FROM snapshots WHERE name = ?`, name).Scan(&doc.Version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot: query %q: %w", name, err)
	}

	rows, err := s.db.Query(`SELECT key, label, tag FROM nodes WHERE snapshot = ? ORDER BY key`, name)
	if err != nil {
		return nil, fmt.Errorf("snapshot: query nodes: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			rec NodeRecord
			tag sql.NullFloat64
		)
		if err := rows.Scan(&rec.Key, &rec.Label, &tag); err != nil {
			return nil, fmt.Errorf("snapshot: scan node: %w", err)
		}
		rec.Tag = math.NaN()
		if tag.Valid {
			rec.Tag = tag.Float64
		}
		doc.Nodes = append(doc.Nodes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("snapshot: iterate nodes: %w", err)
	}

	edgeRows, err := s.db.Query(`SELECT a, b, weight FROM edges WHERE snapshot = ? ORDER BY a, b`, name)
	if err != nil {
		return nil, fmt.Errorf("snapshot: query edges: %w", err)
	}
	defer edgeRows.Close()
	for edgeRows.Next() {
		var rec EdgeRecord
		if err := edgeRows.Scan(&rec.From, &rec.To, &rec.Weight); err != nil {
			return nil, fmt.Errorf("snapshot: scan edge: %w", err)
		}
		doc.Edges = append(doc.Edges, rec)
	}
	if err := edgeRows.Err(); err != nil {
		return nil, fmt.Errorf("snapshot: iterate edges: %w", err)
	}

	return doc.Graph()
}

// Names lists stored snapshot names in order.
func (s *SQLiteStore) Names() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM snapshots ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("snapshot: query names: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("snapshot: scan name: %w", err)
		}
		names = append(names, n)
	}

	return names, rows.Err()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
