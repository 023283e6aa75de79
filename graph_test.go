package sitegraph_test

import (
	"testing"

	"github.com/fwojciec/sitegraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"nested path", "dev/tool.html", "doc:dev-tool"},
		{"htm extension", "notas/Ideia Café.htm", "doc:notas-ideia-cafe"},
		{"uppercase extension", "dev/TOOL.HTML", "doc:dev-tool"},
		{"flat file", "index.html", "doc:index"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sitegraph.DocumentID(tt.path))
		})
	}
}

func TestGraph_Owner(t *testing.T) {
	t.Parallel()

	t.Run("returns the owner node", func(t *testing.T) {
		t.Parallel()

		g := &sitegraph.Graph{Nodes: []sitegraph.Node{
			{ID: "cat:dev", Kind: sitegraph.NodeCategory},
			{ID: "owner:me", Kind: sitegraph.NodeOwner, Label: "Me"},
		}}

		owner := g.Owner()
		require.NotNil(t, owner)
		assert.Equal(t, "owner:me", owner.ID)
	})

	t.Run("nil when absent", func(t *testing.T) {
		t.Parallel()

		g := &sitegraph.Graph{Nodes: []sitegraph.Node{{ID: "cat:dev", Kind: sitegraph.NodeCategory}}}
		assert.Nil(t, g.Owner())
	})
}

func TestGraph_Documents(t *testing.T) {
	t.Parallel()

	g := &sitegraph.Graph{Nodes: []sitegraph.Node{
		{ID: "cat:dev", Kind: sitegraph.NodeCategory},
		{ID: "doc:a", Kind: sitegraph.NodeDocument, Path: "a.html"},
		{ID: "doc:b", Kind: sitegraph.NodeDocument, Path: "b.html"},
	}}

	docs := g.Documents()
	require.Len(t, docs, 2)
	assert.Equal(t, "doc:a", docs[0].ID)
	assert.Equal(t, "doc:b", docs[1].ID)
}
