// Package synth assembles the site graph: it registers parsed categories,
// walks the document tree extracting metadata per file, resolves each
// document against the known category set, and emits a deterministic
// node/edge graph. All builder state is explicit and owned by a single
// synthesis run. There are no package-level accumulators.
package synth

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/sitegraph"
)

// The sentinel category absorbs documents whose declared category cannot be
// resolved. Label and about text are part of the site's published graph.
const (
	SentinelSlug  = "arquivo"
	sentinelLabel = "Arquivo / Inbox"
	sentinelAbout = "Entrada automática e rascunhos."
)

// Synthesizer builds a graph from a previous snapshot, parsed categories and
// a document tree.
type Synthesizer struct {
	// Extractor extracts per-document metadata. Required.
	Extractor sitegraph.MetadataExtractor

	// Logger receives non-fatal warnings (unreadable files, authoring
	// typos). Defaults to slog.Default.
	Logger *slog.Logger

	// Concurrency bounds parallel per-file extraction. Defaults to 4.
	Concurrency int
}

// builder is the explicit state threaded through one synthesis run.
type builder struct {
	categories []sitegraph.Category

	// slugByAny maps both a category's slug and the slugified form of its
	// title to the canonical slug, so documents may reference a category
	// by either token.
	slugByAny map[string]string

	// subsByCat holds the declared subcategory slug set per category,
	// used to gate subcategory-level containment edges.
	subsByCat map[string]map[string]bool
}

func newBuilder(cats []sitegraph.Category) *builder {
	b := &builder{
		categories: cats,
		slugByAny:  make(map[string]string, len(cats)*2),
		subsByCat:  make(map[string]map[string]bool, len(cats)),
	}
	for _, c := range cats {
		b.slugByAny[c.Slug] = c.Slug
		if c.Title != "" {
			b.slugByAny[sitegraph.Slugify(c.Title)] = c.Slug
		}
		subs := make(map[string]bool, len(c.Subcategories))
		for _, s := range c.Subcategories {
			subs[sitegraph.Slugify(s)] = true
		}
		b.subsByCat[c.Slug] = subs
	}
	return b
}

// Synthesize produces the full graph. Only the owner node is carried over
// from prev; every category, subcategory and document node is derived fresh,
// so rerunning with unchanged inputs is idempotent. Zero categories is
// fatal, since without them no document can resolve.
func (s *Synthesizer) Synthesize(ctx context.Context, prev *sitegraph.Graph, cats []sitegraph.Category, docsRoot string) (*sitegraph.Graph, error) {
	if len(cats) == 0 {
		return nil, sitegraph.Errorf(sitegraph.EINVALID, "no categories to build the graph from")
	}

	b := newBuilder(cats)

	docs, err := s.collectDocuments(ctx, docsRoot)
	if err != nil {
		return nil, err
	}
	resolved := s.resolveDocuments(b, docs)

	// Two-phase sentinel: every document is resolved before the sentinel
	// category is materialized (at most once), so node order never depends
	// on which document happened to need it first. A category the author
	// deliberately named "arquivo" wins over the fallback bucket.
	needSentinel := false
	if _, declared := b.subsByCat[SentinelSlug]; !declared {
		for _, d := range resolved {
			if d.Category == SentinelSlug {
				needSentinel = true
				break
			}
		}
	}

	return s.assemble(b, prev, resolved, needSentinel), nil
}

// resolveDocuments turns walked documents into document nodes with resolved
// category slugs. Unresolvable categories fall back to the sentinel; the
// fallback is only warned about when the token came from explicit metadata,
// since that likely indicates an authoring typo.
func (s *Synthesizer) resolveDocuments(b *builder, docs []document) []sitegraph.Node {
	logger := s.logger()

	out := make([]sitegraph.Node, 0, len(docs))
	seen := make(map[string]bool, len(docs))
	for _, d := range docs {
		title := defaultTitle(d.RelPath)
		raw := ""
		declared := false
		if d.Meta != nil {
			if d.Meta.Title != "" {
				title = d.Meta.Title
			}
			if d.Meta.Category != "" {
				raw = d.Meta.Category
				declared = true
			}
		}
		if raw == "" {
			if i := strings.IndexByte(d.RelPath, '/'); i > 0 {
				raw = strings.ToLower(d.RelPath[:i])
			}
		}

		category := SentinelSlug
		if raw != "" {
			if slug, ok := b.slugByAny[sitegraph.Slugify(raw)]; ok {
				category = slug
			} else if declared {
				logger.Warn("unknown category, using sentinel",
					"path", d.RelPath,
					"category", raw,
					"sentinel", SentinelSlug,
				)
			}
		}

		node := sitegraph.Node{
			ID:       sitegraph.DocumentID(d.RelPath),
			Label:    title,
			Kind:     sitegraph.NodeDocument,
			Category: category,
			Path:     d.RelPath,
			Hash:     d.Hash,
		}
		if d.Meta != nil {
			if d.Meta.Subcategory != "" {
				node.Subcategory = sitegraph.Slugify(d.Meta.Subcategory)
			}
			node.Tags = d.Meta.Tags
		}

		// Slugified paths can collide; keep the first occurrence so the
		// walk order decides deterministically.
		if seen[node.ID] {
			logger.Warn("duplicate document id, skipping", "path", d.RelPath, "id", node.ID)
			continue
		}
		seen[node.ID] = true
		out = append(out, node)
	}
	return out
}

// assemble emits nodes and edges in stable order: owner, declared categories
// (each followed by its subcategories) in declaration order, the sentinel if
// needed, then documents in walk order.
func (s *Synthesizer) assemble(b *builder, prev *sitegraph.Graph, docs []sitegraph.Node, needSentinel bool) *sitegraph.Graph {
	g := &sitegraph.Graph{}

	var owner *sitegraph.Node
	if prev != nil {
		if o := prev.Owner(); o != nil {
			g.Nodes = append(g.Nodes, *o)
			owner = o
		}
	}

	catIDs := make([]string, 0, len(b.categories)+1)
	for _, c := range b.categories {
		label := c.Title
		if label == "" {
			label = c.Slug
		}
		about := ""
		if len(c.Subcategories) > 0 {
			preview := c.Subcategories
			if len(preview) > 2 {
				preview = preview[:2]
			}
			about = strings.Join(preview, " · ")
		}
		catID := sitegraph.CategoryID(c.Slug)
		catIDs = append(catIDs, catID)
		g.Nodes = append(g.Nodes, sitegraph.Node{
			ID:    catID,
			Label: label,
			Kind:  sitegraph.NodeCategory,
			Slug:  c.Slug,
			About: about,
		})
		for _, sub := range c.Subcategories {
			subID := sitegraph.SubcategoryID(c.Slug, sitegraph.Slugify(sub))
			g.Nodes = append(g.Nodes, sitegraph.Node{
				ID:       subID,
				Label:    strings.Trim(sub, `"`),
				Kind:     sitegraph.NodeSubcategory,
				Category: c.Slug,
				About:    sub,
			})
			g.Links = append(g.Links, sitegraph.Edge{Source: catID, Target: subID, Kind: sitegraph.EdgeHasSub})
		}
	}

	if needSentinel {
		catIDs = append(catIDs, sitegraph.CategoryID(SentinelSlug))
		g.Nodes = append(g.Nodes, sitegraph.Node{
			ID:    sitegraph.CategoryID(SentinelSlug),
			Label: sentinelLabel,
			Kind:  sitegraph.NodeCategory,
			Slug:  SentinelSlug,
			About: sentinelAbout,
		})
	}

	if owner != nil {
		for _, id := range catIDs {
			g.Links = append(g.Links, sitegraph.Edge{Source: owner.ID, Target: id, Kind: sitegraph.EdgeOwns})
		}
	}

	g.Nodes = append(g.Nodes, docs...)
	for _, d := range docs {
		catID := sitegraph.CategoryID(d.Category)
		g.Links = append(g.Links, sitegraph.Edge{Source: catID, Target: d.ID, Kind: sitegraph.EdgeContains})

		// A declared subcategory only produces an edge when it is a known
		// member of the resolved category's declared set; otherwise the
		// field stays on the node and no edge is created.
		if d.Subcategory != "" && b.subsByCat[d.Category][d.Subcategory] {
			subID := sitegraph.SubcategoryID(d.Category, d.Subcategory)
			g.Links = append(g.Links, sitegraph.Edge{Source: subID, Target: d.ID, Kind: sitegraph.EdgeContains})
		}
	}

	return g
}

func (s *Synthesizer) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
