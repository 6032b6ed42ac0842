// SPDX-License-Identifier: MIT

package snapshot_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/snapshot"
)

// sample builds a small graph exercising labels, tags, zero weights and an
// isolated node.
func sample(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, k := range []int{-3, 0, 1, 2, 7} {
		g.AddNode(k)
	}
	require.NoError(t, g.Connect(0, 1, 0))
	require.NoError(t, g.Connect(1, 2, 2.5))
	require.NoError(t, g.Connect(-3, 2, 11))
	n, _ := g.Node(1)
	n.SetLabel("hub")
	n.SetTag(4.25)

	return g
}

func TestDocument_FromGraph(t *testing.T) {
	doc := snapshot.FromGraph(sample(t))
	assert.Equal(t, snapshot.FormatVersion, doc.Version)
	require.Len(t, doc.Nodes, 5)
	assert.Equal(t, -3, doc.Nodes[0].Key)
	assert.Equal(t, snapshot.NodeRecord{Key: 1, Label: "hub", Tag: 4.25}, doc.Nodes[2])
	assert.Equal(t, []snapshot.EdgeRecord{
		{From: -3, To: 2, Weight: 11},
		{From: 0, To: 1, Weight: 0},
		{From: 1, To: 2, Weight: 2.5},
	}, doc.Edges)
}

func TestDocument_GraphRejectsCorrupt(t *testing.T) {
	cases := map[string]snapshot.Document{
		"duplicate node": {Version: 1, Nodes: []snapshot.NodeRecord{{Key: 1}, {Key: 1}}},
		"unknown endpoint": {Version: 1,
			Nodes: []snapshot.NodeRecord{{Key: 1}},
			Edges: []snapshot.EdgeRecord{{From: 1, To: 2, Weight: 1}}},
		"loop": {Version: 1,
			Nodes: []snapshot.NodeRecord{{Key: 1}},
			Edges: []snapshot.EdgeRecord{{From: 1, To: 1, Weight: 1}}},
		"negative weight": {Version: 1,
			Nodes: []snapshot.NodeRecord{{Key: 1}, {Key: 2}},
			Edges: []snapshot.EdgeRecord{{From: 1, To: 2, Weight: -1}}},
		"duplicate edge": {Version: 1,
			Nodes: []snapshot.NodeRecord{{Key: 1}, {Key: 2}},
			Edges: []snapshot.EdgeRecord{{From: 1, To: 2, Weight: 1}, {From: 2, To: 1, Weight: 3}}},
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := doc.Graph()
			assert.ErrorIs(t, err, snapshot.ErrCorrupt)
			assert.Nil(t, g)
		})
	}

	_, err := (&snapshot.Document{Version: 9}).Graph()
	assert.ErrorIs(t, err, snapshot.ErrUnsupportedVersion)
}

func TestDocument_GraphFreshCounter(t *testing.T) {
	g := sample(t)
	_ = g.Connect(0, 1, 3)
	_ = g.Connect(0, 1, 0)

	back, err := snapshot.FromGraph(g).Graph()
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
	assert.Equal(t, back.NodeCount()+back.EdgeCount(), back.ModCount())
}

func TestCodecs_RoundTrip(t *testing.T) {
	for _, c := range []snapshot.Codec{snapshot.NewYAMLCodec(), snapshot.NewJSONCodec()} {
		t.Run(c.Format(), func(t *testing.T) {
			g := sample(t)
			var buf bytes.Buffer
			require.NoError(t, c.Encode(&buf, g))

			back, err := c.Decode(&buf)
			require.NoError(t, err)
			assert.True(t, g.Equal(back))
		})
	}
}

func TestCodecs_EmptyGraph(t *testing.T) {
	for _, c := range []snapshot.Codec{snapshot.NewYAMLCodec(), snapshot.NewJSONCodec()} {
		var buf bytes.Buffer
		require.NoError(t, c.Encode(&buf, core.NewGraph()))
		back, err := c.Decode(&buf)
		require.NoError(t, err, c.Format())
		assert.Equal(t, 0, back.NodeCount())
	}
}

func TestYAMLCodec_NaNTag(t *testing.T) {
	g := sample(t)
	n, _ := g.Node(7)
	n.SetTag(math.NaN())

	var buf bytes.Buffer
	c := snapshot.NewYAMLCodec()
	require.NoError(t, c.Encode(&buf, g))
	back, err := c.Decode(&buf)
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
}

func TestJSONCodec_NaNTagFails(t *testing.T) {
	g := sample(t)
	n, _ := g.Node(7)
	n.SetTag(math.NaN())
	assert.Error(t, snapshot.NewJSONCodec().Encode(&bytes.Buffer{}, g))
}

func TestCodecs_InfiniteWeight(t *testing.T) {
	g := sample(t)
	require.NoError(t, g.Connect(0, 7, math.Inf(1)))

	var buf bytes.Buffer
	c := snapshot.NewYAMLCodec()
	require.NoError(t, c.Encode(&buf, g))
	back, err := c.Decode(&buf)
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
	assert.True(t, math.IsInf(back.Edge(7, 0), 1))

	assert.Error(t, snapshot.NewJSONCodec().Encode(&bytes.Buffer{}, g))
}

func TestSQLiteStore_InfiniteWeight(t *testing.T) {
	db, err := snapshot.OpenSQLite(filepath.Join(t.TempDir(), "graphs.db"))
	require.NoError(t, err)
	defer db.Close()

	g := sample(t)
	require.NoError(t, g.Connect(0, 7, math.Inf(1)))
	require.NoError(t, db.Save("inf", g))
	back, err := db.Load("inf")
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
	assert.True(t, math.IsInf(back.Edge(0, 7), 1))
}

func TestCodecs_DecodeGarbage(t *testing.T) {
	_, err := snapshot.NewYAMLCodec().Decode(strings.NewReader("version: [oops"))
	assert.ErrorIs(t, err, snapshot.ErrCorrupt)

	_, err = snapshot.NewYAMLCodec().Decode(strings.NewReader("version: 1\nvertices: []\n"))
	assert.ErrorIs(t, err, snapshot.ErrCorrupt, "unknown fields are rejected")

	_, err = snapshot.NewJSONCodec().Decode(strings.NewReader(`{"version":1,"nodes":[`))
	assert.ErrorIs(t, err, snapshot.ErrCorrupt)

	_, err = snapshot.NewJSONCodec().Decode(strings.NewReader(`{"version":2,"nodes":[]}`))
	assert.ErrorIs(t, err, snapshot.ErrUnsupportedVersion)
}

func TestCodecFor(t *testing.T) {
	for path, want := range map[string]string{
		"g.yaml": "yaml", "G.YML": "yaml", "dir/g.json": "json",
	} {
		c, err := snapshot.CodecFor(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, c.Format())
	}
	_, err := snapshot.CodecFor("g.txt")
	assert.ErrorIs(t, err, snapshot.ErrUnknownFormat)
}

func TestFileStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := snapshot.NewFileStore(nil)
	g := sample(t)

	for _, name := range []string{"g.yaml", "g.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, s.Save(path, g))
		back, err := s.Load(path)
		require.NoError(t, err)
		assert.True(t, g.Equal(back), name)
		assert.True(t, back.Equal(g), name)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temp files left behind")
}

func TestFileStore_FileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.yaml")
	s := snapshot.NewFileStore(nil)

	require.NoError(t, s.Save(path, sample(t)))
	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, snapshot.DefaultFileMode, fi.Mode().Perm())

	// overwrite keeps the target's permissions
	require.NoError(t, os.Chmod(path, 0o600))
	require.NoError(t, s.Save(path, sample(t)))
	fi, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
}

func TestFileStore_OverwriteAndFixedCodec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.snap")
	s := snapshot.NewFileStore(snapshot.NewYAMLCodec())

	require.NoError(t, s.Save(path, sample(t)))
	small := core.NewGraph()
	small.AddNode(1)
	require.NoError(t, s.Save(path, small))

	back, err := s.Load(path)
	require.NoError(t, err)
	assert.True(t, small.Equal(back))
}

func TestFileStore_Failures(t *testing.T) {
	dir := t.TempDir()
	s := snapshot.NewFileStore(nil)

	_, err := s.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0o644))
	_, err = s.Load(bad)
	assert.ErrorIs(t, err, snapshot.ErrCorrupt)

	assert.ErrorIs(t, s.Save(filepath.Join(dir, "g.txt"), sample(t)), snapshot.ErrUnknownFormat)
	assert.ErrorIs(t, s.Save(filepath.Join(dir, "g.yaml"), nil), snapshot.ErrNilGraph)
	assert.Error(t, s.Save(filepath.Join(dir, "no", "such", "g.yaml"), sample(t)))
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	db, err := snapshot.OpenSQLite(filepath.Join(t.TempDir(), "graphs.db"))
	require.NoError(t, err)
	defer db.Close()

	g := sample(t)
	n, _ := g.Node(7)
	n.SetTag(math.NaN())
	require.NoError(t, db.Save("a", g))

	other := core.NewGraph()
	other.AddNode(1)
	other.AddNode(2)
	require.NoError(t, other.Connect(1, 2, 0.5))
	require.NoError(t, db.Save("b", other))

	back, err := db.Load("a")
	require.NoError(t, err)
	assert.True(t, g.Equal(back))

	back, err = db.Load("b")
	require.NoError(t, err)
	assert.True(t, other.Equal(back))

	names, err := db.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	_, err = db.Load("missing")
	assert.ErrorIs(t, err, snapshot.ErrNotFound)
}

func TestSQLiteStore_Replace(t *testing.T) {
	db, err := snapshot.OpenSQLite(filepath.Join(t.TempDir(), "graphs.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Save("main", sample(t)))
	empty := core.NewGraph()
	require.NoError(t, db.Save("main", empty))

	back, err := db.Load("main")
	require.NoError(t, err)
	assert.Equal(t, 0, back.NodeCount())
	assert.Equal(t, 0, back.EdgeCount())
}

func TestAutoStore(t *testing.T) {
	dir := t.TempDir()
	s := snapshot.NewAutoStore()
	g := sample(t)

	for _, target := range []string{
		filepath.Join(dir, "g.yml"),
		filepath.Join(dir, "g.json"),
		filepath.Join(dir, "g.db"),
		filepath.Join(dir, "g.db#second"),
		filepath.Join(dir, "g.sqlite#"),
	} {
		require.NoError(t, s.Save(target, g), target)
		back, err := s.Load(target)
		require.NoError(t, err, target)
		assert.True(t, g.Equal(back), target)
	}

	_, err := s.Load(filepath.Join(dir, "g.db#nope"))
	assert.ErrorIs(t, err, snapshot.ErrNotFound)

	_, err = s.Load(filepath.Join(dir, "absent.db"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, statErr := os.Stat(filepath.Join(dir, "absent.db"))
	assert.ErrorIs(t, statErr, os.ErrNotExist, "loading must not create a database")

	assert.True(t, snapshot.IsSQLitePath("x.SQLITE3#n"))
	assert.False(t, snapshot.IsSQLitePath("x.yaml"))
}
