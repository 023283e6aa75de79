package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/sitegraph"
	"gopkg.in/yaml.v3"
)

var (
	// A front-matter block near the top of the file, either wrapped in an
	// HTML comment or standalone. Not necessarily at offset zero.
	fmCommentRe = regexp.MustCompile(`(?s)<!--\s*---\s*\r?\n(.*?)\r?\n---\s*-->`)
	fmPlainRe   = regexp.MustCompile(`(?s)(?:\A|\n)[ \t]*---[ \t]*\r?\n(.*?)\n---`)

	fmKeyValueRe = regexp.MustCompile(`^([a-zA-Z_]+):\s*(.+)$`)
	fmListRe     = regexp.MustCompile(`^\[.*\]$`)
)

// frontMatter parses a delimiter-fenced key:value block. When the block
// exists it is authoritative: the result is returned even if no field could
// be parsed out of it, so later strategies never override explicit front
// matter.
func frontMatter(head string) *sitegraph.Metadata {
	m := fmCommentRe.FindStringSubmatch(head)
	if m == nil {
		m = fmPlainRe.FindStringSubmatch(head)
	}
	if m == nil {
		return nil
	}

	meta := &sitegraph.Metadata{}
	var categoria, category, subcategoria, subcategory string

	for _, line := range strings.Split(m[1], "\n") {
		kv := fmKeyValueRe.FindStringSubmatch(strings.TrimSpace(line))
		if kv == nil {
			continue
		}
		key := strings.ToLower(kv[1])
		value := strings.TrimSpace(kv[2])

		if key == "tags" && fmListRe.MatchString(value) {
			meta.Tags = parseListValue(value)
			continue
		}
		value = strings.Trim(value, `"`)

		switch key {
		case "title":
			meta.Title = value
		case "categoria":
			categoria = value
		case "category":
			category = value
		case "subcategoria":
			subcategoria = value
		case "subcategory":
			subcategory = value
		case "tags":
			meta.Tags = splitTags(value)
		}
	}

	// The Portuguese spelling wins when both are declared.
	meta.Category = categoria
	if meta.Category == "" {
		meta.Category = category
	}
	meta.Subcategory = subcategoria
	if meta.Subcategory == "" {
		meta.Subcategory = subcategory
	}

	return meta
}

// parseListValue parses a bracketed list value such as ["#a", "#b"] or
// ['#a', '#b']. Malformed list syntax falls back to comma-splitting with
// quote/hash characters stripped from each item.
func parseListValue(value string) []string {
	var items []string
	if err := yaml.Unmarshal([]byte(value), &items); err == nil {
		var out []string
		for _, it := range items {
			if it = strings.TrimSpace(it); it != "" {
				out = append(out, it)
			}
		}
		if len(out) > 0 {
			return out
		}
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(value, "["), "]")
	return splitTags(inner)
}

var tagJunkReplacer = strings.NewReplacer("#", "", `"`, "", "'", "")

// splitTags comma-splits a free-text tag list, stripping hash and quote
// characters and dropping empties.
func splitTags(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(tagJunkReplacer.Replace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}
