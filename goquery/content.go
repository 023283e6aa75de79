// Package goquery provides DOM-based main-content selection for the export
// pipeline. Metadata extraction deliberately does not live here: it works
// on bounded text windows without building a DOM.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitegraph"
)

// chrome is removed before content selection regardless of where the main
// content is found.
const chrome = "script, style, noscript, nav, header, footer, aside"

// candidates are tried in order; the first with non-empty text wins.
var candidates = []string{"main", "article", "body"}

// Ensure ContentSelector implements sitegraph.ContentSelector at compile time.
var _ sitegraph.ContentSelector = (*ContentSelector)(nil)

// ContentSelector picks the main content out of a full HTML page.
type ContentSelector struct{}

// NewContentSelector creates a new ContentSelector.
func NewContentSelector() *ContentSelector {
	return &ContentSelector{}
}

// Select returns the main content as an HTML fragment with page chrome
// removed. It prefers semantic containers (main, article) and falls back to
// the whole body.
func (s *ContentSelector) Select(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", sitegraph.Errorf(sitegraph.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(chrome).Remove()

	for _, selector := range candidates {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if strings.TrimSpace(sel.Text()) == "" {
			continue
		}
		fragment, err := sel.Html()
		if err != nil {
			return "", err
		}
		return fragment, nil
	}

	return "", sitegraph.Errorf(sitegraph.EINVALID, "no content found in document")
}
