package synth_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/sitegraph"
	"github.com/fwojciec/sitegraph/extract"
	"github.com/fwojciec/sitegraph/mock"
	"github.com/fwojciec/sitegraph/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func nodeByID(t *testing.T, g *sitegraph.Graph, id string) sitegraph.Node {
	t.Helper()
	for _, n := range g.Nodes {
		if n.ID == id {
			return n
		}
	}
	t.Fatalf("node %q not found", id)
	return sitegraph.Node{}
}

func hasEdge(g *sitegraph.Graph, source, target string, kind sitegraph.EdgeKind) bool {
	for _, l := range g.Links {
		if l.Source == source && l.Target == target && l.Kind == kind {
			return true
		}
	}
	return false
}

func TestSynthesizer_EndToEnd(t *testing.T) {
	t.Parallel()

	docs := t.TempDir()
	writeFile(t, docs, "dev/tool.html", `<!-- ---
categoria: dev
subcategoria: cli
---
-->
<html><body>tool</body></html>`)

	cats := []sitegraph.Category{
		{Slug: "dev", Title: "Desenvolvimento", Subcategories: []string{"Web", "CLI"}},
	}

	s := &synth.Synthesizer{Extractor: extract.NewExtractor(), Logger: discardLogger()}
	g, err := s.Synthesize(context.Background(), nil, cats, docs)
	require.NoError(t, err)

	cat := nodeByID(t, g, "cat:dev")
	assert.Equal(t, "Desenvolvimento", cat.Label)
	assert.Equal(t, "dev", cat.Slug)
	assert.Equal(t, "Web · CLI", cat.About)

	sub := nodeByID(t, g, "sub:dev:cli")
	assert.Equal(t, sitegraph.NodeSubcategory, sub.Kind)
	assert.Equal(t, "dev", sub.Category)

	doc := nodeByID(t, g, "doc:dev-tool")
	assert.Equal(t, "dev", doc.Category)
	assert.Equal(t, "cli", doc.Subcategory)
	assert.Equal(t, "dev/tool.html", doc.Path)
	assert.NotEmpty(t, doc.Hash)

	assert.True(t, hasEdge(g, "cat:dev", "sub:dev:cli", sitegraph.EdgeHasSub))
	assert.True(t, hasEdge(g, "cat:dev", "doc:dev-tool", sitegraph.EdgeContains))
	assert.True(t, hasEdge(g, "sub:dev:cli", "doc:dev-tool", sitegraph.EdgeContains))
}

func TestSynthesizer_NoCategoriesIsFatal(t *testing.T) {
	t.Parallel()

	s := &synth.Synthesizer{Extractor: extract.NewExtractor(), Logger: discardLogger()}
	_, err := s.Synthesize(context.Background(), nil, nil, t.TempDir())

	require.Error(t, err)
	assert.Equal(t, sitegraph.EINVALID, sitegraph.ErrorCode(err))
}

func TestSynthesizer_SentinelFallback(t *testing.T) {
	t.Parallel()

	t.Run("created exactly once for multiple unresolved documents", func(t *testing.T) {
		t.Parallel()

		docs := t.TempDir()
		writeFile(t, docs, "a.html", "<p>categoria: nonexistent-xyz</p>")
		writeFile(t, docs, "b.html", "<p>categoria: also-missing</p>")

		s := &synth.Synthesizer{Extractor: extract.NewExtractor(), Logger: discardLogger()}
		g, err := s.Synthesize(context.Background(), nil, []sitegraph.Category{{Slug: "dev"}}, docs)
		require.NoError(t, err)

		count := 0
		for _, n := range g.Nodes {
			if n.ID == "cat:arquivo" {
				count++
				assert.Equal(t, "Arquivo / Inbox", n.Label)
			}
		}
		assert.Equal(t, 1, count)
		assert.True(t, hasEdge(g, "cat:arquivo", "doc:a", sitegraph.EdgeContains))
		assert.True(t, hasEdge(g, "cat:arquivo", "doc:b", sitegraph.EdgeContains))
	})

	t.Run("not created when every document resolves", func(t *testing.T) {
		t.Parallel()

		docs := t.TempDir()
		writeFile(t, docs, "dev/a.html", "<p>no metadata here</p>")

		s := &synth.Synthesizer{Extractor: extract.NewExtractor(), Logger: discardLogger()}
		g, err := s.Synthesize(context.Background(), nil, []sitegraph.Category{{Slug: "dev"}}, docs)
		require.NoError(t, err)

		for _, n := range g.Nodes {
			assert.NotEqual(t, "cat:arquivo", n.ID)
		}
	})

	t.Run("declared arquivo category wins over the fallback bucket", func(t *testing.T) {
		t.Parallel()

		docs := t.TempDir()
		writeFile(t, docs, "x.html", "<p>categoria: desconhecida</p>")

		cats := []sitegraph.Category{{Slug: "arquivo", Title: "Meu Arquivo"}}
		s := &synth.Synthesizer{Extractor: extract.NewExtractor(), Logger: discardLogger()}
		g, err := s.Synthesize(context.Background(), nil, cats, docs)
		require.NoError(t, err)

		cat := nodeByID(t, g, "cat:arquivo")
		assert.Equal(t, "Meu Arquivo", cat.Label)
		assert.True(t, hasEdge(g, "cat:arquivo", "doc:x", sitegraph.EdgeContains))
	})
}

func TestSynthesizer_SubcategoryGating(t *testing.T) {
	t.Parallel()

	docs := t.TempDir()
	writeFile(t, docs, "dev/tool.html", `<!-- ---
categoria: dev
subcategoria: inventada
---
-->`)

	cats := []sitegraph.Category{{Slug: "dev", Subcategories: []string{"Web"}}}
	s := &synth.Synthesizer{Extractor: extract.NewExtractor(), Logger: discardLogger()}
	g, err := s.Synthesize(context.Background(), nil, cats, docs)
	require.NoError(t, err)

	doc := nodeByID(t, g, "doc:dev-tool")
	assert.Equal(t, "inventada", doc.Subcategory, "field is retained on the node")
	assert.False(t, hasEdge(g, "sub:dev:inventada", "doc:dev-tool", sitegraph.EdgeContains))
}

func TestSynthesizer_OwnerCarryOver(t *testing.T) {
	t.Parallel()

	docs := t.TempDir()
	writeFile(t, docs, "dev/a.html", "")

	prev := &sitegraph.Graph{
		Nodes: []sitegraph.Node{
			{ID: "owner:me", Label: "Me", Kind: sitegraph.NodeOwner},
			{ID: "cat:stale", Label: "Stale", Kind: sitegraph.NodeCategory, Slug: "stale"},
			{ID: "doc:stale", Kind: sitegraph.NodeDocument, Path: "stale.html", Category: "stale"},
		},
		Links: []sitegraph.Edge{{Source: "cat:stale", Target: "doc:stale", Kind: sitegraph.EdgeContains}},
	}

	cats := []sitegraph.Category{{Slug: "dev"}, {Slug: "ml"}}
	s := &synth.Synthesizer{Extractor: extract.NewExtractor(), Logger: discardLogger()}
	g, err := s.Synthesize(context.Background(), prev, cats, docs)
	require.NoError(t, err)

	assert.Equal(t, "owner:me", g.Nodes[0].ID, "owner seeds the node list")
	assert.True(t, hasEdge(g, "owner:me", "cat:dev", sitegraph.EdgeOwns))
	assert.True(t, hasEdge(g, "owner:me", "cat:ml", sitegraph.EdgeOwns))

	// Derived state from the previous snapshot is discarded wholesale.
	for _, n := range g.Nodes {
		assert.NotEqual(t, "cat:stale", n.ID)
		assert.NotEqual(t, "doc:stale", n.ID)
	}
}

func TestSynthesizer_DefaultsFromPath(t *testing.T) {
	t.Parallel()

	docs := t.TempDir()
	writeFile(t, docs, "dev/my-first_tool.html", "<p>no metadata</p>")

	cats := []sitegraph.Category{{Slug: "dev", Title: "Desenvolvimento"}}
	s := &synth.Synthesizer{Extractor: extract.NewExtractor(), Logger: discardLogger()}
	g, err := s.Synthesize(context.Background(), nil, cats, docs)
	require.NoError(t, err)

	doc := nodeByID(t, g, "doc:dev-my-first-tool")
	assert.Equal(t, "My First Tool", doc.Label, "title derived from filename")
	assert.Equal(t, "dev", doc.Category, "category guessed from first path segment")
}

func TestSynthesizer_CategoryResolvedByTitle(t *testing.T) {
	t.Parallel()

	docs := t.TempDir()
	writeFile(t, docs, "a.html", "<p>categoria: Desenvolvimento</p>")

	cats := []sitegraph.Category{{Slug: "dev", Title: "Desenvolvimento"}}
	s := &synth.Synthesizer{Extractor: extract.NewExtractor(), Logger: discardLogger()}
	g, err := s.Synthesize(context.Background(), nil, cats, docs)
	require.NoError(t, err)

	doc := nodeByID(t, g, "doc:a")
	assert.Equal(t, "dev", doc.Category)
}

func TestSynthesizer_Deterministic(t *testing.T) {
	t.Parallel()

	docs := t.TempDir()
	writeFile(t, docs, "dev/a.html", "<p>categoria: dev</p>")
	writeFile(t, docs, "dev/b.html", "<p>categoria: dev</p>")
	writeFile(t, docs, "ml/c.html", "<p>categoria: ml</p>")
	writeFile(t, docs, "solto.html", "<p>x</p>")

	cats := []sitegraph.Category{
		{Slug: "dev", Title: "Desenvolvimento", Subcategories: []string{"Web", "CLI"}},
		{Slug: "ml", Title: "Machine Learning"},
	}

	s := &synth.Synthesizer{Extractor: extract.NewExtractor(), Logger: discardLogger(), Concurrency: 8}
	first, err := s.Synthesize(context.Background(), nil, cats, docs)
	require.NoError(t, err)
	second, err := s.Synthesize(context.Background(), nil, cats, docs)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// Node order is stable: categories and subcategories in declaration
	// order, then documents in tree-walk order.
	var ids []string
	for _, n := range first.Nodes {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{
		"cat:dev", "sub:dev:web", "sub:dev:cli", "cat:ml", "cat:arquivo",
		"doc:dev-a", "doc:dev-b", "doc:ml-c", "doc:solto",
	}, ids)
}

func TestSynthesizer_MissingDocRoot(t *testing.T) {
	t.Parallel()

	s := &synth.Synthesizer{Extractor: extract.NewExtractor(), Logger: discardLogger()}
	g, err := s.Synthesize(context.Background(), nil, []sitegraph.Category{{Slug: "dev"}}, filepath.Join(t.TempDir(), "missing"))

	require.NoError(t, err)
	assert.Empty(t, g.Documents())
}

func TestSynthesizer_DuplicateDocumentIDs(t *testing.T) {
	t.Parallel()

	docs := t.TempDir()
	// Both slugify to doc:dev-tool; the first in walk order wins.
	writeFile(t, docs, "dev/tool.html", "")
	writeFile(t, docs, "dev/tool.htm", "")

	s := &synth.Synthesizer{Extractor: extract.NewExtractor(), Logger: discardLogger()}
	g, err := s.Synthesize(context.Background(), nil, []sitegraph.Category{{Slug: "dev"}}, docs)
	require.NoError(t, err)

	require.Len(t, g.Documents(), 1)
	assert.Equal(t, "dev/tool.htm", g.Documents()[0].Path)
}

func TestSynthesizer_MetadataOverridesDefaults(t *testing.T) {
	t.Parallel()

	docs := t.TempDir()
	writeFile(t, docs, "outros/x.html", "ignored")

	extractor := &mock.MetadataExtractor{
		ExtractFn: func(string) *sitegraph.Metadata {
			return &sitegraph.Metadata{Title: "Custom", Category: "ml", Tags: []string{"a"}}
		},
	}

	cats := []sitegraph.Category{{Slug: "ml"}}
	s := &synth.Synthesizer{Extractor: extractor, Logger: discardLogger()}
	g, err := s.Synthesize(context.Background(), nil, cats, docs)
	require.NoError(t, err)

	doc := nodeByID(t, g, "doc:outros-x")
	assert.Equal(t, "Custom", doc.Label)
	assert.Equal(t, "ml", doc.Category)
	assert.Equal(t, []string{"a"}, doc.Tags)
}
