package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/sitegraph"
	"github.com/fwojciec/sitegraph/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadGraph(t *testing.T) {
	t.Parallel()

	t.Run("round trips a written graph", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "graph.json")
		g := &sitegraph.Graph{
			Nodes: []sitegraph.Node{
				{ID: "owner:me", Label: "Me", Kind: sitegraph.NodeOwner},
				{ID: "cat:dev", Label: "Dev", Kind: sitegraph.NodeCategory, Slug: "dev"},
				{ID: "doc:dev-tool", Label: "Tool", Kind: sitegraph.NodeDocument, Category: "dev", Path: "dev/tool.html", Tags: []string{"go"}},
			},
			Links: []sitegraph.Edge{
				{Source: "owner:me", Target: "cat:dev", Kind: sitegraph.EdgeOwns},
				{Source: "cat:dev", Target: "doc:dev-tool", Kind: sitegraph.EdgeContains},
			},
		}

		require.NoError(t, fs.WriteGraph(path, g))

		got, err := fs.ReadGraph(path)
		require.NoError(t, err)
		assert.Equal(t, g, got)
	})

	t.Run("missing file yields empty graph", func(t *testing.T) {
		t.Parallel()

		got, err := fs.ReadGraph(filepath.Join(t.TempDir(), "missing.json"))
		require.NoError(t, err)
		assert.Empty(t, got.Nodes)
		assert.Empty(t, got.Links)
	})

	t.Run("malformed file yields empty graph", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "graph.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		got, err := fs.ReadGraph(path)
		require.NoError(t, err)
		assert.Empty(t, got.Nodes)
	})
}

func TestWriteGraph_Overwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "graph.json")

	require.NoError(t, fs.WriteGraph(path, &sitegraph.Graph{Nodes: []sitegraph.Node{{ID: "cat:a", Kind: sitegraph.NodeCategory}}}))
	require.NoError(t, fs.WriteGraph(path, &sitegraph.Graph{Nodes: []sitegraph.Node{{ID: "cat:b", Kind: sitegraph.NodeCategory}}}))

	got, err := fs.ReadGraph(path)
	require.NoError(t, err)
	require.Len(t, got.Nodes, 1)
	assert.Equal(t, "cat:b", got.Nodes[0].ID)

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestWriteGraph_WorldReadable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, fs.WriteGraph(path, &sitegraph.Graph{}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}
