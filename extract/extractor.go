// Package extract implements layered fallback metadata extraction for HTML
// documents. Strategies run in order of decreasing structure/reliability;
// the first one that yields at least one field wins. No strategy builds a
// DOM; each scans a bounded prefix of the document with compiled patterns.
package extract

import (
	"github.com/fwojciec/sitegraph"
)

// headBudget bounds how much of a document is examined, trading completeness
// for bounded latency on large files.
const headBudget = 20000

// Ensure Extractor implements sitegraph.MetadataExtractor at compile time.
var _ sitegraph.MetadataExtractor = (*Extractor)(nil)

// strategy attempts one extraction approach over the document head and
// returns nil when it found nothing.
type strategy func(head string) *sitegraph.Metadata

// Extractor runs the ordered strategy pipeline: front matter, meta tags,
// inline key/value or badge markers, then a naive line scan.
type Extractor struct {
	strategies []strategy
}

// NewExtractor creates an Extractor with the default strategy order.
func NewExtractor() *Extractor {
	return &Extractor{
		strategies: []strategy{frontMatter, metaTags, inlineMarkers, lineScan},
	}
}

// Extract returns the first non-empty strategy result, or nil when every
// strategy yields zero fields. A nil result is a legitimate "no metadata"
// outcome, not an error.
func (e *Extractor) Extract(doc string) *sitegraph.Metadata {
	if doc == "" {
		return nil
	}
	head := doc
	if len(head) > headBudget {
		head = head[:headBudget]
	}
	for _, s := range e.strategies {
		if meta := s(head); meta != nil {
			return meta
		}
	}
	return nil
}
