package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/sitegraph"
)

var (
	inlineCategoryRe    = regexp.MustCompile(`(?i)\bcategoria\s*[:=]\s*["']?([^"'\r\n<]+)["']?`)
	inlineCategoryEnRe  = regexp.MustCompile(`(?i)\bcategory\s*[:=]\s*["']?([^"'\r\n<]+)["']?`)
	inlineSubRe         = regexp.MustCompile(`(?i)\bsubcategoria\s*[:=]\s*["']?([^"'\r\n<]+)["']?`)
	inlineSubEnRe       = regexp.MustCompile(`(?i)\bsubcategory\s*[:=]\s*["']?([^"'\r\n<]+)["']?`)
	badgeCategoryRe     = regexp.MustCompile(`(?i)<b>\s*categoria\s*:\s*</b>\s*([^<\r\n]+)`)
	badgeCategoryEnRe   = regexp.MustCompile(`(?i)<b>\s*category\s*:\s*</b>\s*([^<\r\n]+)`)
	badgeSubRe          = regexp.MustCompile(`(?i)<b>\s*subcategoria\s*:\s*</b>\s*([^<\r\n]+)`)
	badgeSubEnRe        = regexp.MustCompile(`(?i)<b>\s*subcategory\s*:\s*</b>\s*([^<\r\n]+)`)
	inlineTagsListRe    = regexp.MustCompile(`(?i)\btags\s*[:=]\s*\[([^\]]+)\]`)
	keywordsMetaRe      = regexp.MustCompile(`(?i)<meta[^>]+name=["']keywords["'][^>]*content=["']([^"']+)["'][^>]*>`)
	inlineTagsFreeRe    = regexp.MustCompile(`(?i)\btags\s*[:=]\s*([^\r\n<]+)`)
)

// inlineMarkers looks for bare "categoria: value" text, bold-labeled badge
// markup ("<b>categoria:</b> value"), and tags as a bracketed list, a
// keywords meta tag, or trailing free text after "tags:". Bare markers win
// over badges.
func inlineMarkers(head string) *sitegraph.Metadata {
	meta := &sitegraph.Metadata{}

	if m := firstSubmatch(head, inlineCategoryRe, inlineCategoryEnRe); m != "" {
		meta.Category = m
	} else if m := firstSubmatch(head, badgeCategoryRe, badgeCategoryEnRe); m != "" {
		meta.Category = m
	}
	if m := firstSubmatch(head, inlineSubRe, inlineSubEnRe); m != "" {
		meta.Subcategory = m
	} else if m := firstSubmatch(head, badgeSubRe, badgeSubEnRe); m != "" {
		meta.Subcategory = m
	}
	if m := firstSubmatch(head, inlineTagsListRe, keywordsMetaRe, inlineTagsFreeRe); m != "" {
		meta.Tags = splitTags(m)
	}

	if meta.Empty() {
		return nil
	}
	return meta
}

// firstSubmatch returns the trimmed first capture of the first pattern that
// matches, or "".
func firstSubmatch(s string, patterns ...*regexp.Regexp) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(s); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
