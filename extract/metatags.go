package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/sitegraph"
)

var (
	metaCategoryRe    = regexp.MustCompile(`(?i)<meta[^>]+(?:name|property)=["'](?:categoria|category)["'][^>]*content=["']([^"']+)["'][^>]*>`)
	metaSubcategoryRe = regexp.MustCompile(`(?i)<meta[^>]+(?:name|property)=["'](?:subcategoria|subcategory)["'][^>]*content=["']([^"']+)["'][^>]*>`)
	metaTagsRe        = regexp.MustCompile(`(?i)<meta[^>]+name=["']tags["'][^>]*content=["']([^"']+)["'][^>]*>`)
	metaTitleRe       = regexp.MustCompile(`(?i)<meta[^>]+name=["']title["'][^>]*content=["']([^"']+)["'][^>]*>`)
	titleElementRe    = regexp.MustCompile(`(?i)<title[^>]*>([^<]+)</title>`)
)

// metaTags pattern-matches declarative <meta> tags. The title comes from a
// title meta tag or the <title> element, but a title alone does not count as
// success: the strategy yields only when category, subcategory or a
// non-empty tag list was found.
func metaTags(head string) *sitegraph.Metadata {
	meta := &sitegraph.Metadata{}

	if m := metaCategoryRe.FindStringSubmatch(head); m != nil {
		meta.Category = strings.TrimSpace(m[1])
	}
	if m := metaSubcategoryRe.FindStringSubmatch(head); m != nil {
		meta.Subcategory = strings.TrimSpace(m[1])
	}
	if m := metaTagsRe.FindStringSubmatch(head); m != nil {
		for _, part := range strings.Split(m[1], ",") {
			if part = strings.TrimSpace(part); part != "" {
				meta.Tags = append(meta.Tags, part)
			}
		}
	}
	if m := metaTitleRe.FindStringSubmatch(head); m != nil {
		meta.Title = strings.TrimSpace(m[1])
	} else if m := titleElementRe.FindStringSubmatch(head); m != nil {
		meta.Title = strings.TrimSpace(m[1])
	}

	if meta.Category == "" && meta.Subcategory == "" && len(meta.Tags) == 0 {
		return nil
	}
	return meta
}
