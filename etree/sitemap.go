// Package etree generates a sitemap.xml for the documents in a site graph.
package etree

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/sitegraph"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// WriteSitemap writes a sitemap urlset for the document nodes of a graph.
// Each document contributes one <url> entry with its public location under
// baseURL. Document order follows the node order of the graph.
func WriteSitemap(w io.Writer, baseURL string, docs []sitegraph.Node) error {
	base, err := url.Parse(baseURL)
	if err != nil {
		return sitegraph.Errorf(sitegraph.EINVALID, "invalid base URL: %v", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return sitegraph.Errorf(sitegraph.EINVALID, "base URL must be absolute: %s", baseURL)
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapNamespace)

	for _, n := range docs {
		if n.Kind != sitegraph.NodeDocument || n.Path == "" {
			continue
		}
		entry := urlset.CreateElement("url")
		loc := entry.CreateElement("loc")
		loc.SetText(documentLocation(base, n.Path))
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("writing sitemap: %w", err)
	}
	return nil
}

// documentLocation resolves a document path against the base URL, keeping
// any path prefix the base carries.
func documentLocation(base *url.URL, docPath string) string {
	loc := *base
	loc.Path = strings.TrimSuffix(loc.Path, "/") + "/docs/" + docPath
	return loc.String()
}
