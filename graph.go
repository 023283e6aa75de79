package sitegraph

import (
	"regexp"
	"strings"
)

// NodeKind discriminates the graph node variants.
type NodeKind string

// Node kinds. The JSON values are part of the snapshot contract consumed by
// the site's client code.
const (
	NodeOwner       NodeKind = "owner"
	NodeCategory    NodeKind = "category"
	NodeSubcategory NodeKind = "subcategory"
	NodeDocument    NodeKind = "doc"
)

// EdgeKind discriminates the typed directed edges.
type EdgeKind string

// Edge kinds: owner→category, category→subcategory, and
// category-or-subcategory→document.
const (
	EdgeOwns     EdgeKind = "owns"
	EdgeHasSub   EdgeKind = "has-sub"
	EdgeContains EdgeKind = "contains"
)

// Node is a tagged union over the four graph node variants. ID is globally
// unique ("kind:discriminator" composite); Label is the display name. The
// remaining fields are populated per kind and omitted from JSON otherwise.
type Node struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Kind  NodeKind `json:"kind"`

	// Category nodes.
	Slug string `json:"slug,omitempty"`

	// Category and subcategory nodes: a short display preview.
	About string `json:"about,omitempty"`

	// Subcategory and document nodes: the owning category slug. For
	// document nodes this is always resolved, never empty.
	Category string `json:"category,omitempty"`

	// Document nodes.
	Subcategory string   `json:"subcategory,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Path        string   `json:"path,omitempty"`
	Hash        string   `json:"hash,omitempty"`
}

// Edge is a typed directed link between two nodes.
type Edge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Kind   EdgeKind `json:"kind"`
}

// Graph is the assembled node/edge structure, persisted as a flat JSON
// snapshot. All derived nodes (categories, subcategories, documents) are
// rebuilt wholesale each run; only the owner node is authored state carried
// over from the previous snapshot.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Edge `json:"links"`
}

// Owner returns the owner node, or nil when the graph has none.
func (g *Graph) Owner() *Node {
	for i := range g.Nodes {
		if g.Nodes[i].Kind == NodeOwner {
			return &g.Nodes[i]
		}
	}
	return nil
}

// Documents returns the document nodes in snapshot order.
func (g *Graph) Documents() []Node {
	var docs []Node
	for _, n := range g.Nodes {
		if n.Kind == NodeDocument {
			docs = append(docs, n)
		}
	}
	return docs
}

// CategoryID returns the node ID for a category slug.
func CategoryID(slug string) string {
	return "cat:" + slug
}

// SubcategoryID returns the node ID for a subcategory slug under a category.
func SubcategoryID(catSlug, subSlug string) string {
	return "sub:" + catSlug + ":" + subSlug
}

var htmlExtRe = regexp.MustCompile(`(?i)\.html?$`)

// DocumentID derives the stable node ID for a document from its relative
// path: the extension is stripped, path separators become hyphens, and the
// result is slugified. Distinct paths can collide after slugification; the
// synthesizer deduplicates exactly.
func DocumentID(relPath string) string {
	trimmed := htmlExtRe.ReplaceAllString(relPath, "")
	return "doc:" + Slugify(strings.ReplaceAll(trimmed, "/", "-"))
}
