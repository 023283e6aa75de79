package sitegraph

import (
	"context"
	"net/url"
	"sort"
	"strings"
)

// SearchRecord is the flattened, searchable form of a document node: the
// downstream contract for the site's chat/search consumer.
type SearchRecord struct {
	Title    string   `json:"title"`
	URL      string   `json:"url"`
	Keywords []string `json:"keywords"`
}

// SearchIndex persists search records and answers keyword queries.
type SearchIndex interface {
	// ReplaceAll atomically replaces the index contents.
	ReplaceAll(ctx context.Context, records []SearchRecord) error

	// Search returns up to limit records with a positive score for the
	// query, best first.
	Search(ctx context.Context, query string, limit int) ([]SearchRecord, error)
}

// FlattenDocuments converts the graph's document nodes into search records.
// The URL is the document path under docs/ with URI escaping; keywords are
// drawn from category, subcategory, tags, path and node ID, so no further
// graph lookups are needed at query time.
func FlattenDocuments(g *Graph) []SearchRecord {
	var out []SearchRecord
	for _, n := range g.Nodes {
		if n.Kind != NodeDocument {
			continue
		}

		u := url.URL{Path: "docs/" + n.Path}
		title := n.Label
		if title == "" {
			title = displayTitle(n.Path)
		}

		var kw []string
		if n.Category != "" {
			kw = append(kw, n.Category)
		}
		if n.Subcategory != "" {
			kw = append(kw, n.Subcategory)
		}
		kw = append(kw, n.Tags...)
		if n.Path != "" {
			kw = append(kw, n.Path)
		}
		if n.ID != "" {
			kw = append(kw, n.ID)
		}

		out = append(out, SearchRecord{Title: title, URL: u.EscapedPath(), Keywords: kw})
	}
	return out
}

// ScoreRecord scores a record against a query: one point per query term
// contained in the folded title+keywords haystack, plus a small bonus when
// more than one term matched.
func ScoreRecord(rec SearchRecord, query string) float64 {
	hay := fold(rec.Title + " " + strings.Join(rec.Keywords, " "))
	var score float64
	for _, term := range strings.Fields(fold(query)) {
		if strings.Contains(hay, term) {
			score++
		}
	}
	if score > 1 {
		score += 0.5
	}
	return score
}

// SearchRecords returns up to limit records with a positive score for the
// query, best first. Ties keep input order, so results are deterministic.
func SearchRecords(records []SearchRecord, query string, limit int) []SearchRecord {
	type scored struct {
		rec   SearchRecord
		score float64
	}
	var hits []scored
	for _, rec := range records {
		if s := ScoreRecord(rec, query); s > 0 {
			hits = append(hits, scored{rec, s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]SearchRecord, len(hits))
	for i, h := range hits {
		out[i] = h.rec
	}
	return out
}

// fold lowercases and strips diacritics for accent-insensitive matching.
func fold(s string) string {
	return stripDiacritics(strings.ToLower(s))
}

// displayTitle cleans a relative path into a fallback display title.
func displayTitle(relPath string) string {
	s := htmlExtRe.ReplaceAllString(relPath, "")
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
