package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/sitegraph"
)

// lineScanLimit bounds the naive scan to the first lines of the head.
const lineScanLimit = 120

var (
	markupRe       = regexp.MustCompile(`<[^>]+>`)
	lineCategoryRe = regexp.MustCompile(`(?i)\bcategoria\b\s*[:=]\s*([^,;\s]+)`)
	lineCatEnRe    = regexp.MustCompile(`(?i)\bcategory\b\s*[:=]\s*([^,;\s]+)`)
	lineSubRe      = regexp.MustCompile(`(?i)\bsubcategoria\b\s*[:=]\s*([^,;\s]+)`)
	lineSubEnRe    = regexp.MustCompile(`(?i)\bsubcategory\b\s*[:=]\s*([^,;\s]+)`)
	lineTagsRe     = regexp.MustCompile(`(?i)\btags\b\s*[:=]\s*(.+)`)
)

// lineScan is the last-resort strategy: it examines the first lines with tag
// markup stripped and takes the first match for each of category,
// subcategory and tags independently, so fields may come from different
// lines.
func lineScan(head string) *sitegraph.Metadata {
	meta := &sitegraph.Metadata{}

	lines := strings.Split(head, "\n")
	if len(lines) > lineScanLimit {
		lines = lines[:lineScanLimit]
	}
	for _, raw := range lines {
		line := markupRe.ReplaceAllString(raw, " ")
		if meta.Category == "" {
			meta.Category = firstSubmatch(line, lineCategoryRe, lineCatEnRe)
		}
		if meta.Subcategory == "" {
			meta.Subcategory = firstSubmatch(line, lineSubRe, lineSubEnRe)
		}
		if len(meta.Tags) == 0 {
			if m := lineTagsRe.FindStringSubmatch(line); m != nil {
				meta.Tags = splitTags(m[1])
			}
		}
		if meta.Category != "" && meta.Subcategory != "" && len(meta.Tags) > 0 {
			break
		}
	}

	if meta.Empty() {
		return nil
	}
	return meta
}
