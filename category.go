package sitegraph

import (
	"bufio"
	"regexp"
	"strings"
)

// Category represents one record parsed from the category definition file.
// Slug is the normalized identity; Title is the display name (empty when the
// file omits it, in which case callers fall back to the slug); Subcategories preserves
// declaration order.
type Category struct {
	Slug          string
	Title         string
	Subcategories []string
}

var (
	catMarkerRe = regexp.MustCompile(`(?i)^categories:`)
	catSlugRe   = regexp.MustCompile(`(?i)^-\s*slug:\s*(\S+)`)
	catTitleRe  = regexp.MustCompile(`(?i)^title:\s*"?(.+?)"?$`)
	catSubRe    = regexp.MustCompile(`(?i)^sub:\s*$`)
	catItemRe   = regexp.MustCompile(`^\s*-\s*"?(.+?)"?\s*$`)
	catTagsRe   = regexp.MustCompile(`(?i)^tags:`)
)

// ParseCategories extracts the ordered category records from the category
// definition text. The parser is inactive until a line matching
// "categories:" is seen, which lets the source document carry unrelated
// prose above the categories block. A "tags:" line flushes the record in
// progress and terminates parsing entirely. Malformed lines contribute to no
// field and are skipped silently; records with an empty slug are dropped.
// ParseCategories never fails; at worst it returns an empty slice.
func ParseCategories(text string) []Category {
	var out []Category
	var current *Category
	active := false
	inSub := false

	flush := func() {
		if current != nil && current.Slug != "" {
			out = append(out, *current)
		}
		current = nil
		inSub = false
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		raw := scanner.Text()
		line := strings.TrimSpace(raw)

		if !active {
			if catMarkerRe.MatchString(line) {
				active = true
			}
			continue
		}

		// A blank line closes the subcategory list context but not the
		// record in progress.
		if line == "" {
			inSub = false
			continue
		}

		if m := catSlugRe.FindStringSubmatch(line); m != nil {
			flush()
			current = &Category{Slug: strings.TrimSpace(m[1])}
			continue
		}
		if m := catTitleRe.FindStringSubmatch(line); m != nil && current != nil {
			current.Title = m[1]
			continue
		}
		if catSubRe.MatchString(line) {
			inSub = true
			continue
		}
		if inSub {
			if m := catItemRe.FindStringSubmatch(raw); m != nil && current != nil {
				current.Subcategories = append(current.Subcategories, m[1])
				continue
			}
		}
		if catTagsRe.MatchString(line) {
			flush()
			return out
		}
	}

	flush()
	return out
}
